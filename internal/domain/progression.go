package domain

// ProgressionFactors resume el historial de adherencia del usuario.
// Lo calcula el subsistema de progreso; el motor solo lo consume.
type ProgressionFactors struct {
	ProgramDay         int     `json:"program_day"`
	ProgramWeek        int     `json:"program_week"`
	CompletionRate     float64 `json:"completion_rate"`     // 0-100
	StreakDays         int     `json:"streak_days"`
	FastingCompliance  float64 `json:"fasting_compliance"`  // 0-100
	TotalExercisesDone int     `json:"total_exercises_done"`
}

// ProgressionAdjustments son los ajustes que el sintetizador aplica antes de
// finalizar un plan. Función pura de (atributos, factores); el motor nunca
// persiste ni aplica sus propias recomendaciones.
type ProgressionAdjustments struct {
	SetsMultiplier     float64 `json:"sets_multiplier"`
	RepsMultiplier     float64 `json:"reps_multiplier"`
	DurationMultiplier float64 `json:"duration_multiplier"`
	RestMultiplier     float64 `json:"rest_multiplier"`

	CalorieDelta      int     `json:"calorie_delta"`
	ProteinMultiplier float64 `json:"protein_multiplier"`
	PortionMultiplier float64 `json:"portion_multiplier"`

	RecommendedPattern *FastingPattern `json:"recommended_pattern,omitempty"`

	RecommendUpgrade bool       `json:"recommend_upgrade"`
	UpgradeTo        Difficulty `json:"upgrade_to,omitempty"`

	Messages []string `json:"messages,omitempty"`
}

// NeutralAdjustments devuelve el elemento identidad: multiplicadores en 1,
// sin deltas ni recomendaciones.
func NeutralAdjustments() ProgressionAdjustments {
	return ProgressionAdjustments{
		SetsMultiplier:     1,
		RepsMultiplier:     1,
		DurationMultiplier: 1,
		RestMultiplier:     1,
		ProteinMultiplier:  1,
		PortionMultiplier:  1,
	}
}
