package domain

import "time"

// MealType distingue los cuatro horarios de comida del día.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealSnack     MealType = "snack"
	MealDinner    MealType = "dinner"
)

// ExerciseTemplate es contenido estático del catálogo de entrenamientos.
// DurationSeconds > 0 marca un ejercicio por tiempo; si es 0 se estima por reps.
type ExerciseTemplate struct {
	Name            string `json:"name"`
	Sets            int    `json:"sets"`
	Reps            int    `json:"reps"`
	DurationSeconds int    `json:"duration_seconds,omitempty"`
	RestSeconds     int    `json:"rest_seconds"`
	Calories        int    `json:"calories"`
	VideoURL        string `json:"video_url,omitempty"`
}

// WorkoutPlanTemplate es el entrenamiento de referencia para (día, dificultad).
type WorkoutPlanTemplate struct {
	Name       string             `json:"name"`
	Day        time.Weekday       `json:"day"`
	Difficulty Difficulty         `json:"difficulty"`
	Focus      string             `json:"focus"`
	Exercises  []ExerciseTemplate `json:"exercises"`
}

// MealTemplate es una comida del catálogo con su carga nutricional declarada.
// FiberG ausente se trata como 0.
type MealTemplate struct {
	Name     string   `json:"name"`
	Type     MealType `json:"type"`
	Calories int      `json:"calories"`
	ProteinG float64  `json:"protein_g"`
	CarbsG   float64  `json:"carbs_g"`
	FatG     float64  `json:"fat_g"`
	FiberG   float64  `json:"fiber_g,omitempty"`
}

// MealPlanTemplate es el menú de referencia para (día, intensidad).
type MealPlanTemplate struct {
	Day       time.Weekday   `json:"day"`
	Intensity MealIntensity  `json:"intensity"`
	Meals     []MealTemplate `json:"meals"`
}

// EnrichedExercise es un ejercicio del template con los campos calculados
// y los ajustes de progresión ya aplicados.
type EnrichedExercise struct {
	Name             string  `json:"name"`
	Sets             int     `json:"sets"`
	Reps             int     `json:"reps"`
	DurationSeconds  int     `json:"duration_seconds,omitempty"`
	RestSeconds      int     `json:"rest_seconds"`
	RestTotalSeconds int     `json:"rest_total_seconds"`
	EstimatedMinutes float64 `json:"estimated_minutes"`
	Calories         int     `json:"calories"`
	VideoURL         string  `json:"video_url,omitempty"`
}

// EnrichedWorkout agrega el entrenamiento del día con sus totales.
type EnrichedWorkout struct {
	Name          string             `json:"name"`
	Focus         string             `json:"focus"`
	Difficulty    Difficulty         `json:"difficulty"`
	Exercises     []EnrichedExercise `json:"exercises"`
	TotalMinutes  float64            `json:"total_minutes"`
	TotalCalories int                `json:"total_calories"`
}

// ScheduledMeal es una comida con hora asignada dentro de la ventana.
type ScheduledMeal struct {
	MealTemplate
	Order       int    `json:"order"`
	ScheduledAt string `json:"scheduled_at"` // HH:MM
	InWindow    bool   `json:"in_window"`
}

// NutritionTotals suma la nutrición de todas las comidas del día.
type NutritionTotals struct {
	Calories int     `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
	FiberG   float64 `json:"fiber_g"`
}

// FastingSection empaqueta patrón, ventana y estado actual para el plan.
type FastingSection struct {
	Pattern FastingPattern `json:"pattern"`
	Window  FastingWindow  `json:"window"`
	Status  FastingStatus  `json:"status"`
}

// EnrichedDailyPlan es el agregado de salida del motor. Se construye completo
// en cada generación; regenerar siempre produce un valor nuevo.
// Debe ser renderizable (pantalla o PDF) sin rederivar ninguna regla.
type EnrichedDailyPlan struct {
	UserID     string           `json:"user_id"`
	Date       string           `json:"date"` // YYYY-MM-DD
	DayOfWeek  string           `json:"day_of_week"`
	ProgramDay int              `json:"program_day"`
	IsRestDay  bool             `json:"is_rest_day"`
	Workout    *EnrichedWorkout `json:"workout,omitempty"`
	Meals      []ScheduledMeal  `json:"meals"`
	Nutrition  NutritionTotals  `json:"nutrition"`
	Fasting    FastingSection   `json:"fasting"`
	Messages   []string         `json:"messages,omitempty"`
	Validation ValidationResult `json:"validation"`
	GeneratedAt time.Time       `json:"generated_at"`
}

// ProgressSnapshot es el registro diario de adherencia que alimenta
// la agregación de factores de progresión.
type ProgressSnapshot struct {
	ID                 string    `json:"id"`
	UserID             string    `json:"user_id"`
	Date               string    `json:"date"` // YYYY-MM-DD
	CompletedExercises int       `json:"completed_exercises"`
	TotalExercises     int       `json:"total_exercises"`
	WorkoutCompleted   bool      `json:"workout_completed"`
	FastingCompliant   bool      `json:"fasting_compliant"`
	CreatedAt          time.Time `json:"created_at"`
}
