package service

import "fitplan/internal/domain"

// Umbrales de peso por tipo de trabajo, en kg. Por encima del umbral el
// resolver asigna el patrón de ayuno más estricto del par.
const (
	sedentaryWeightThresholdKg = 80.0
	moderateWeightThresholdKg  = 75.0
	activeWeightThresholdKg    = 70.0
)

// patternPair agrupa los dos patrones candidatos de un tipo de trabajo.
type patternPair struct {
	atOrAbove domain.FastingPattern
	below     domain.FastingPattern
}

// workTypeRules es la tabla 2xN del resolver. Dificultad e intensidad
// dependen solo del tipo de trabajo; el peso solo elige el patrón de ayuno.
var workTypeRules = map[domain.WorkType]struct {
	thresholdKg float64
	patterns    patternPair
	difficulty  domain.Difficulty
	intensity   domain.MealIntensity
}{
	domain.WorkTypeSedentary: {
		thresholdKg: sedentaryWeightThresholdKg,
		patterns:    patternPair{atOrAbove: domain.Fasting168, below: domain.Fasting1410},
		difficulty:  domain.DifficultyBeginner,
		intensity:   domain.MealIntensityLight,
	},
	domain.WorkTypeModerate: {
		thresholdKg: moderateWeightThresholdKg,
		patterns:    patternPair{atOrAbove: domain.Fasting1410, below: domain.Fasting1212},
		difficulty:  domain.DifficultyIntermediate,
		intensity:   domain.MealIntensityStandard,
	},
	domain.WorkTypeActive: {
		thresholdKg: activeWeightThresholdKg,
		patterns:    patternPair{atOrAbove: domain.Fasting1311, below: domain.Fasting1212},
		difficulty:  domain.DifficultyAdvanced,
		intensity:   domain.MealIntensityHighEnergy,
	},
}

// PersonalizationEngine mapea atributos crudos a las tres asignaciones.
// Sin estado y sin camino de error: el peso se valida aguas arriba.
type PersonalizationEngine struct{}

// DefaultPersonalizationEngine permite uso directo sin instanciar.
var DefaultPersonalizationEngine = PersonalizationEngine{}

// Resolve es una función pura y determinista de (peso, tipo de trabajo).
// Un tipo de trabajo desconocido cae en las reglas de sedentario.
func (PersonalizationEngine) Resolve(weightKg float64, work domain.WorkType) domain.PersonalizationAssignment {
	rules, ok := workTypeRules[work]
	if !ok {
		rules = workTypeRules[domain.WorkTypeSedentary]
	}

	pattern := rules.patterns.below
	if weightKg >= rules.thresholdKg {
		pattern = rules.patterns.atOrAbove
	}

	return domain.PersonalizationAssignment{
		FastingPattern:    pattern,
		WorkoutDifficulty: rules.difficulty,
		MealIntensity:     rules.intensity,
	}
}
