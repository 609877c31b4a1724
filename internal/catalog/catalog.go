package catalog

import (
	"time"

	"fitplan/internal/domain"
)

// WorkoutCatalog expone los templates de entrenamiento por (día, dificultad).
type WorkoutCatalog interface {
	WorkoutFor(day time.Weekday, difficulty domain.Difficulty) (domain.WorkoutPlanTemplate, bool)
}

// MealCatalog expone los menús por (día, intensidad) y la tabla de horarios
// por patrón de ayuno.
type MealCatalog interface {
	MealPlanFor(day time.Weekday, intensity domain.MealIntensity) (domain.MealPlanTemplate, bool)
	MealTimeFor(pattern domain.FastingPattern, meal domain.MealType) (string, bool)
}

// StaticCatalog sirve el contenido de referencia embebido en el binario.
// Es de solo lectura; en producción el contenido vive en un content store
// externo y este catálogo es su proyección local.
type StaticCatalog struct{}

// NewStaticCatalog devuelve el catálogo embebido.
func NewStaticCatalog() *StaticCatalog {
	return &StaticCatalog{}
}
