package service

import (
	"fmt"
	"time"

	"fitplan/internal/domain"
)

const minutesPerDay = 24 * 60

// canonicalWindows fija la ventana de alimentación de cada patrón soportado.
// Ninguna ventana cruza medianoche; el ayuno sí, y el cálculo de transcurrido
// lo maneja con aritmética módulo 1440.
var canonicalWindows = map[domain.FastingPattern]domain.FastingWindow{
	domain.Fasting1212: {Pattern: domain.Fasting1212, FastingHours: 12, EatingHours: 12, EatingStart: "08:00", EatingEnd: "20:00"},
	domain.Fasting1311: {Pattern: domain.Fasting1311, FastingHours: 13, EatingHours: 11, EatingStart: "09:00", EatingEnd: "20:00"},
	domain.Fasting1410: {Pattern: domain.Fasting1410, FastingHours: 14, EatingHours: 10, EatingStart: "10:00", EatingEnd: "20:00"},
	domain.Fasting168:  {Pattern: domain.Fasting168, FastingHours: 16, EatingHours: 8, EatingStart: "12:00", EatingEnd: "20:00"},
	domain.Fasting186:  {Pattern: domain.Fasting186, FastingHours: 18, EatingHours: 6, EatingStart: "14:00", EatingEnd: "20:00"},
}

// SupportedPatterns lista los patrones con ventana canónica, de suave a estricto.
var SupportedPatterns = []domain.FastingPattern{
	domain.Fasting1212,
	domain.Fasting1311,
	domain.Fasting1410,
	domain.Fasting168,
	domain.Fasting186,
}

// FastingCalculator convierte patrones en ventanas concretas y proyecta la
// fase actual sobre un instante. Sin estado y sin timer propio: quien quiera
// una cuenta regresiva en vivo debe reinvocar StatusAt en cada tick.
type FastingCalculator struct{}

// DefaultFastingCalculator permite uso directo sin instanciar.
var DefaultFastingCalculator = FastingCalculator{}

// WindowFor devuelve la ventana canónica del patrón.
// Un patrón desconocido cae en 12:12, la ventana más permisiva.
func (FastingCalculator) WindowFor(pattern domain.FastingPattern) domain.FastingWindow {
	if w, ok := canonicalWindows[pattern]; ok {
		return w
	}
	return canonicalWindows[domain.Fasting1212]
}

// StatusAt proyecta la ventana sobre un instante de reloj.
// Justo en EatingStart la fase es eating al 0%; justo en EatingEnd la fase
// vuelve a fasting al 0%.
func (FastingCalculator) StatusAt(w domain.FastingWindow, at time.Time) domain.FastingStatus {
	now := at.Hour()*60 + at.Minute()
	start := clockToMinutes(w.EatingStart)
	end := clockToMinutes(w.EatingEnd)

	if start <= now && now < end {
		elapsed := now - start
		total := end - start
		return domain.FastingStatus{
			Phase:            domain.PhaseEating,
			PercentComplete:  clampPercent(100 * float64(elapsed) / float64(total)),
			ElapsedMinutes:   elapsed,
			RemainingMinutes: end - now,
			NextPhaseAt:      w.EatingEnd,
		}
	}

	// Fase de ayuno: el transcurrido se mide desde el fin de la ventana
	// anterior, cruzando medianoche cuando "now" cae antes del inicio.
	elapsed := (now - end + minutesPerDay) % minutesPerDay
	remaining := (start - now + minutesPerDay) % minutesPerDay
	total := w.FastingHours * 60
	return domain.FastingStatus{
		Phase:            domain.PhaseFasting,
		PercentComplete:  clampPercent(100 * float64(elapsed) / float64(total)),
		ElapsedMinutes:   elapsed,
		RemainingMinutes: remaining,
		NextPhaseAt:      w.EatingStart,
	}
}

// InWindow indica si una hora HH:MM cae dentro de la ventana de alimentación.
func (FastingCalculator) InWindow(w domain.FastingWindow, clock string) bool {
	m := clockToMinutes(clock)
	return clockToMinutes(w.EatingStart) <= m && m < clockToMinutes(w.EatingEnd)
}

// clockToMinutes convierte "HH:MM" a minutos desde medianoche.
// Entrada malformada vale 0 (medianoche); las tablas internas están bien
// formadas y la entrada externa se valida en el borde HTTP.
func clockToMinutes(clock string) int {
	var h, m int
	if _, err := fmt.Sscanf(clock, "%d:%d", &h, &m); err != nil {
		return 0
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0
	}
	return h*60 + m
}

func clampPercent(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
