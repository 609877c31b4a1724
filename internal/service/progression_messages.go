package service

import "fitplan/internal/domain"

// Los mensajes de progresión son copy puro: una tabla de datos indexada por
// (tramo de semanas, presentación de género, flag de ascenso, tramo de racha).
// Nada de branching inline para mantener la presentación fuera del motor.

type weekBucket string

const (
	weekStart       weekBucket = "start"       // semana 0-1
	weekBuilding    weekBucket = "building"    // semanas 2-4
	weekEstablished weekBucket = "established" // semana 5+
)

type streakBucket string

const (
	streakNone streakBucket = "none" // < 3 días
	streakWarm streakBucket = "warm" // 3-13 días
	streakHot  streakBucket = "hot"  // 14+ días
)

func bucketWeek(week int) weekBucket {
	switch {
	case week <= 1:
		return weekStart
	case week <= 4:
		return weekBuilding
	default:
		return weekEstablished
	}
}

func bucketStreak(days int) streakBucket {
	switch {
	case days < 3:
		return streakNone
	case days < 14:
		return streakWarm
	default:
		return streakHot
	}
}

var weekMessages = map[weekBucket]map[domain.GenderPresentation]string{
	weekStart: {
		domain.GenderFemale:  "You're laying the foundation: every session counts.",
		domain.GenderMale:    "You're laying the foundation: every session counts.",
		domain.GenderNeutral: "You're laying the foundation: every session counts.",
	},
	weekBuilding: {
		domain.GenderFemale:  "Strong habits forming. Keep showing up for yourself, queen.",
		domain.GenderMale:    "Strong habits forming. Keep showing up, champ.",
		domain.GenderNeutral: "Strong habits forming. Keep showing up for yourself.",
	},
	weekEstablished: {
		domain.GenderFemale:  "This is who you are now. Consistency looks great on you.",
		domain.GenderMale:    "This is who you are now. Consistency looks great on you.",
		domain.GenderNeutral: "This is who you are now. Consistency looks great on you.",
	},
}

var upgradeMessages = map[domain.GenderPresentation]string{
	domain.GenderFemale:  "You've outgrown this level: time to step it up!",
	domain.GenderMale:    "You've outgrown this level: time to step it up!",
	domain.GenderNeutral: "You've outgrown this level: time to step it up!",
}

var streakMessages = map[streakBucket]string{
	streakWarm: "Nice streak going. Protect it today.",
	streakHot:  "Your streak is on fire. Nothing stops you now.",
}

// progressionMessages arma la lista de mensajes para los factores dados.
// Lookup determinista y sin efectos.
func progressionMessages(user domain.UserAttributes, f domain.ProgressionFactors, upgraded bool) []string {
	gender := user.Gender
	if _, ok := upgradeMessages[gender]; !ok {
		gender = domain.GenderNeutral
	}

	var msgs []string
	if m, ok := weekMessages[bucketWeek(f.ProgramWeek)][gender]; ok {
		msgs = append(msgs, m)
	}
	if upgraded {
		msgs = append(msgs, upgradeMessages[gender])
	}
	if m, ok := streakMessages[bucketStreak(f.StreakDays)]; ok {
		msgs = append(msgs, m)
	}
	return msgs
}
