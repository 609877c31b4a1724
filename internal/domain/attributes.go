package domain

import "time"

// WorkType clasifica el nivel de actividad del trabajo diario del usuario.
type WorkType string

const (
	WorkTypeSedentary WorkType = "sedentary"
	WorkTypeModerate  WorkType = "moderate"
	WorkTypeActive    WorkType = "active"
)

// Goal es el objetivo principal del usuario.
type Goal string

const (
	GoalLoseWeight  Goal = "lose_weight"
	GoalMaintain    Goal = "maintain"
	GoalBuildMuscle Goal = "build_muscle"
)

// Difficulty es el nivel de exigencia de los entrenamientos.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// NextTier devuelve el siguiente nivel de dificultad.
// ok=false cuando ya no hay nivel superior.
func (d Difficulty) NextTier() (Difficulty, bool) {
	switch d {
	case DifficultyBeginner:
		return DifficultyIntermediate, true
	case DifficultyIntermediate:
		return DifficultyAdvanced, true
	default:
		return d, false
	}
}

// MealIntensity es el tier calórico del plan de comidas.
type MealIntensity string

const (
	MealIntensityLight      MealIntensity = "light"
	MealIntensityStandard   MealIntensity = "standard"
	MealIntensityHighEnergy MealIntensity = "high_energy"
)

// GenderPresentation se usa únicamente para los mensajes motivacionales.
type GenderPresentation string

const (
	GenderFemale  GenderPresentation = "female"
	GenderMale    GenderPresentation = "male"
	GenderNeutral GenderPresentation = "neutral"
)

// UserAttributes es el registro de perfil que alimenta al resolver.
// Inmutable dentro de una invocación del motor.
type UserAttributes struct {
	ID          string             `json:"id"`
	WeightKg    float64            `json:"weight_kg"`
	HeightCm    float64            `json:"height_cm"`
	WorkType    WorkType           `json:"work_type"`
	Goal        Goal               `json:"goal"`
	FitnessTier Difficulty         `json:"fitness_tier"`
	Gender      GenderPresentation `json:"gender"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// BMI calcula el índice de masa corporal. Devuelve 0 con altura inválida.
func (u UserAttributes) BMI() float64 {
	if u.HeightCm <= 0 {
		return 0
	}
	meters := u.HeightCm / 100
	return u.WeightKg / (meters * meters)
}

// PersonalizationAssignment es el trío derivado de (peso, tipo de trabajo).
// No se almacena por separado: se recalcula cuando cambian los atributos.
type PersonalizationAssignment struct {
	FastingPattern    FastingPattern `json:"fasting_pattern"`
	WorkoutDifficulty Difficulty     `json:"workout_difficulty"`
	MealIntensity     MealIntensity  `json:"meal_intensity"`
}
