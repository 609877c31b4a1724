package domain

// FastingPattern etiqueta horas de ayuno vs. horas de alimentación por día.
type FastingPattern string

const (
	Fasting1212 FastingPattern = "12:12"
	Fasting1311 FastingPattern = "13:11"
	Fasting1410 FastingPattern = "14:10"
	Fasting168  FastingPattern = "16:8"
	Fasting186  FastingPattern = "18:6"
)

// fastingLadder ordena los patrones de más suave a más estricto.
var fastingLadder = []FastingPattern{
	Fasting1212,
	Fasting1311,
	Fasting1410,
	Fasting168,
	Fasting186,
}

func ladderIndex(p FastingPattern) int {
	for i, c := range fastingLadder {
		if c == p {
			return i
		}
	}
	return -1
}

// Stricter devuelve el patrón un escalón más estricto.
// ok=false si ya es el más estricto o el patrón es desconocido.
func (p FastingPattern) Stricter() (FastingPattern, bool) {
	i := ladderIndex(p)
	if i < 0 || i >= len(fastingLadder)-1 {
		return p, false
	}
	return fastingLadder[i+1], true
}

// Gentler devuelve el patrón un escalón más suave.
func (p FastingPattern) Gentler() (FastingPattern, bool) {
	i := ladderIndex(p)
	if i <= 0 {
		return p, false
	}
	return fastingLadder[i-1], true
}

// FastingWindow es la ventana de alimentación canónica de un patrón.
// Invariante: FastingHours + EatingHours == 24. Nunca se muta.
type FastingWindow struct {
	Pattern      FastingPattern `json:"pattern"`
	FastingHours int            `json:"fasting_hours"`
	EatingHours  int            `json:"eating_hours"`
	EatingStart  string         `json:"eating_start"` // HH:MM
	EatingEnd    string         `json:"eating_end"`   // HH:MM
}

// FastingPhase indica en qué fase del ciclo está el usuario.
type FastingPhase string

const (
	PhaseFasting FastingPhase = "fasting"
	PhaseEating  FastingPhase = "eating"
)

// FastingStatus es la proyección del ciclo sobre un instante dado.
// Es efímero: quien necesite cuenta regresiva debe recalcularlo en cada tick.
type FastingStatus struct {
	Phase            FastingPhase `json:"phase"`
	PercentComplete  float64      `json:"percent_complete"`
	ElapsedMinutes   int          `json:"elapsed_minutes"`
	RemainingMinutes int          `json:"remaining_minutes"`
	NextPhaseAt      string       `json:"next_phase_at"` // HH:MM
}
