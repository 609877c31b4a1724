package service

import (
	"math"

	"fitplan/internal/domain"
)

// ProgressionConfig reúne los umbrales del motor de progresión. Son política,
// no derivación: se dejan nombrados y sobreescribibles en lugar de números
// mágicos inline.
type ProgressionConfig struct {
	// Sets: un escalón cada SetsStepWeeks semanas, con tope.
	SetsStepWeeks  int
	SetsStepFactor float64
	SetsCap        float64
	CompletionGate float64 // % mínimo de cumplimiento para progresar sets/reps

	// Reps: un escalón cada RepsStepDays días de programa, con tope propio.
	RepsStepDays   int
	RepsStepFactor float64
	RepsCap        float64

	// Duración de ejercicios por tiempo: dos hitos fijos con gates más altos.
	DurationFirstDay     int
	DurationFirstFactor  float64
	DurationFirstGate    float64
	DurationSecondDay    int
	DurationSecondFactor float64
	DurationSecondGate   float64

	// Descansos más cortos cuando cumplimiento y racha superan umbrales altos.
	RestFactor         float64
	RestCompletionGate float64
	RestStreakGate     int

	// Calorías y proteína en dos escalones, dirección según objetivo.
	CalorieStepOneWeek int
	CalorieStepOneGate float64
	CalorieStepTwoWeek int
	CalorieStepTwoGate float64
	LossCalorieStepOne int
	LossCalorieStepTwo int
	GainCalorieStepOne int
	GainCalorieStepTwo int
	GainProteinStepOne float64
	GainProteinStepTwo float64

	// Porciones: empujón independiente con cumplimiento muy alto.
	PortionGate       float64
	PortionLossFactor float64
	PortionGainFactor float64

	// Recomendación de patrón de ayuno.
	FastingBMICutoff      float64
	FastingComplianceGate float64
	FastingStepUpWeek     int
	GentlerPatternWeek    int

	// Ascenso de dificultad: los tres umbrales deben cumplirse a la vez.
	UpgradeCompletionGate float64
	UpgradeStreakGate     int
	UpgradeWeekGate       int
}

// DefaultProgressionConfig devuelve los umbrales de producción.
func DefaultProgressionConfig() ProgressionConfig {
	return ProgressionConfig{
		SetsStepWeeks:  2,
		SetsStepFactor: 0.10,
		SetsCap:        1.5,
		CompletionGate: 70,

		RepsStepDays:   10,
		RepsStepFactor: 0.10,
		RepsCap:        1.4,

		DurationFirstDay:     30,
		DurationFirstFactor:  1.15,
		DurationFirstGate:    75,
		DurationSecondDay:    60,
		DurationSecondFactor: 1.30,
		DurationSecondGate:   80,

		RestFactor:         0.85,
		RestCompletionGate: 85,
		RestStreakGate:     7,

		CalorieStepOneWeek: 2,
		CalorieStepOneGate: 70,
		CalorieStepTwoWeek: 4,
		CalorieStepTwoGate: 75,
		LossCalorieStepOne: -100,
		LossCalorieStepTwo: -200,
		GainCalorieStepOne: 150,
		GainCalorieStepTwo: 300,
		GainProteinStepOne: 1.15,
		GainProteinStepTwo: 1.25,

		PortionGate:       90,
		PortionLossFactor: 0.95,
		PortionGainFactor: 1.05,

		FastingBMICutoff:      30,
		FastingComplianceGate: 80,
		FastingStepUpWeek:     3,
		GentlerPatternWeek:    2,

		UpgradeCompletionGate: 80,
		UpgradeStreakGate:     14,
		UpgradeWeekGate:       4,
	}
}

// ProgressionEngine produce los ajustes multiplicativos/aditivos que el
// sintetizador aplica antes de finalizar un plan. Pura y total; nunca
// persiste ni aplica sus propias recomendaciones.
type ProgressionEngine struct {
	cfg ProgressionConfig
}

// NewProgressionEngine crea el motor con los umbrales por defecto.
func NewProgressionEngine() ProgressionEngine {
	return ProgressionEngine{cfg: DefaultProgressionConfig()}
}

// NewProgressionEngineWithConfig permite sobreescribir los umbrales.
func NewProgressionEngineWithConfig(cfg ProgressionConfig) ProgressionEngine {
	return ProgressionEngine{cfg: cfg}
}

// AdjustmentsFor es función pura de (atributos, factores). Los
// multiplicadores nunca regresan con más semanas a igual rendimiento.
func (e ProgressionEngine) AdjustmentsFor(user domain.UserAttributes, f domain.ProgressionFactors) domain.ProgressionAdjustments {
	cfg := e.cfg
	adj := domain.NeutralAdjustments()

	if f.CompletionRate >= cfg.CompletionGate {
		steps := f.ProgramWeek / cfg.SetsStepWeeks
		adj.SetsMultiplier = math.Min(1+float64(steps)*cfg.SetsStepFactor, cfg.SetsCap)

		repSteps := f.ProgramDay / cfg.RepsStepDays
		adj.RepsMultiplier = math.Min(1+float64(repSteps)*cfg.RepsStepFactor, cfg.RepsCap)
	}

	switch {
	case f.ProgramDay >= cfg.DurationSecondDay && f.CompletionRate >= cfg.DurationSecondGate:
		adj.DurationMultiplier = cfg.DurationSecondFactor
	case f.ProgramDay >= cfg.DurationFirstDay && f.CompletionRate >= cfg.DurationFirstGate:
		adj.DurationMultiplier = cfg.DurationFirstFactor
	}

	if f.CompletionRate >= cfg.RestCompletionGate && f.StreakDays >= cfg.RestStreakGate {
		adj.RestMultiplier = cfg.RestFactor
	}

	e.applyNutrition(user, f, &adj)
	e.applyFastingRecommendation(user, f, &adj)

	if f.CompletionRate >= cfg.UpgradeCompletionGate &&
		f.StreakDays >= cfg.UpgradeStreakGate &&
		f.ProgramWeek >= cfg.UpgradeWeekGate {
		if next, ok := user.FitnessTier.NextTier(); ok {
			adj.RecommendUpgrade = true
			adj.UpgradeTo = next
		}
	}

	adj.Messages = progressionMessages(user, f, adj.RecommendUpgrade)
	return adj
}

// applyNutrition mueve calorías y proteína en direcciones opuestas según el
// objetivo, y aplica el empujón de porciones de forma independiente.
func (e ProgressionEngine) applyNutrition(user domain.UserAttributes, f domain.ProgressionFactors, adj *domain.ProgressionAdjustments) {
	cfg := e.cfg

	stepTwo := f.ProgramWeek >= cfg.CalorieStepTwoWeek && f.CompletionRate >= cfg.CalorieStepTwoGate
	stepOne := f.ProgramWeek >= cfg.CalorieStepOneWeek && f.CompletionRate >= cfg.CalorieStepOneGate

	switch user.Goal {
	case domain.GoalLoseWeight:
		if stepTwo {
			adj.CalorieDelta = cfg.LossCalorieStepTwo
		} else if stepOne {
			adj.CalorieDelta = cfg.LossCalorieStepOne
		}
		if f.CompletionRate >= cfg.PortionGate {
			adj.PortionMultiplier = cfg.PortionLossFactor
		}
	case domain.GoalBuildMuscle:
		if stepTwo {
			adj.CalorieDelta = cfg.GainCalorieStepTwo
			adj.ProteinMultiplier = cfg.GainProteinStepTwo
		} else if stepOne {
			adj.CalorieDelta = cfg.GainCalorieStepOne
			adj.ProteinMultiplier = cfg.GainProteinStepOne
		}
		if f.CompletionRate >= cfg.PortionGate {
			adj.PortionMultiplier = cfg.PortionGainFactor
		}
	}
}

// applyFastingRecommendation gradúa el patrón: más estricto para pérdida de
// peso con BMI alto y buena adherencia; más suave para ganancia muscular
// desde la semana dos, sin importar la adherencia.
func (e ProgressionEngine) applyFastingRecommendation(user domain.UserAttributes, f domain.ProgressionFactors, adj *domain.ProgressionAdjustments) {
	cfg := e.cfg
	current := DefaultPersonalizationEngine.Resolve(user.WeightKg, user.WorkType).FastingPattern

	switch user.Goal {
	case domain.GoalLoseWeight:
		if user.BMI() >= cfg.FastingBMICutoff &&
			f.FastingCompliance >= cfg.FastingComplianceGate &&
			f.ProgramWeek >= cfg.FastingStepUpWeek {
			if stricter, ok := current.Stricter(); ok {
				adj.RecommendedPattern = &stricter
			}
		}
	case domain.GoalBuildMuscle:
		if f.ProgramWeek >= cfg.GentlerPatternWeek {
			if gentler, ok := current.Gentler(); ok {
				adj.RecommendedPattern = &gentler
			}
		}
	}
}
