package service

import (
	"time"

	"fitplan/internal/domain"
)

// progressWindowDays limita cuántos snapshots recientes alimentan los
// porcentajes de adherencia.
const progressWindowDays = 30

// BuildFactors agrega snapshots diarios en los factores que consume el motor
// de progresión. Función pura: recibe "asOf" en lugar de leer el reloj.
// Los snapshots llegan más reciente primero, como los devuelve el repo.
func BuildFactors(programStart, asOf time.Time, snapshots []domain.ProgressSnapshot) domain.ProgressionFactors {
	programDay := int(asOf.Sub(programStart).Hours()/24) + 1
	if programDay < 1 {
		programDay = 1
	}

	f := domain.ProgressionFactors{
		ProgramDay:  programDay,
		ProgramWeek: (programDay-1)/7 + 1,
	}

	var completed, total, compliantDays int
	for _, s := range snapshots {
		completed += s.CompletedExercises
		total += s.TotalExercises
		if s.FastingCompliant {
			compliantDays++
		}
		f.TotalExercisesDone += s.CompletedExercises
	}
	if total > 0 {
		f.CompletionRate = 100 * float64(completed) / float64(total)
	}
	if len(snapshots) > 0 {
		f.FastingCompliance = 100 * float64(compliantDays) / float64(len(snapshots))
	}

	f.StreakDays = streakEndingAt(asOf, snapshots)
	return f
}

// streakEndingAt cuenta días consecutivos con workout completado terminando
// hoy o ayer (la racha no se rompe antes de reportar el día en curso).
func streakEndingAt(asOf time.Time, snapshots []domain.ProgressSnapshot) int {
	byDate := make(map[string]bool, len(snapshots))
	for _, s := range snapshots {
		if s.WorkoutCompleted {
			byDate[s.Date] = true
		}
	}

	day := asOf
	if !byDate[day.Format("2006-01-02")] {
		day = day.AddDate(0, 0, -1)
	}

	streak := 0
	for byDate[day.Format("2006-01-02")] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}
