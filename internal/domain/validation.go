package domain

// Severity gradúa los hallazgos de validación.
type Severity string

const (
	SeverityCritical    Severity = "critical"
	SeverityRecoverable Severity = "recoverable"
	SeverityWarning     Severity = "warning"
)

// Component identifica qué parte del motor produjo el hallazgo.
type Component string

const (
	ComponentWorkout Component = "workout"
	ComponentMeal    Component = "meal"
	ComponentFasting Component = "fasting"
	ComponentGeneral Component = "general"
)

// Códigos de hallazgo. Los críticos invalidan la confianza en el plan;
// los recuperables degradan sin abortar; los warnings nunca bloquean entrega.
const (
	CodeInvalidProfile            = "invalid_profile"
	CodeMissingWorkoutTemplate    = "missing_workout_template"
	CodeMissingMealTemplate       = "missing_meal_template"
	CodeScheduledOutsideWindow    = "scheduled_outside_window"
	CodeMissingDemonstrationMedia = "missing_demonstration_media"
)

// Finding es un hallazgo individual etiquetado con su componente.
type Finding struct {
	Code            string    `json:"code"`
	Severity        Severity  `json:"severity"`
	Component       Component `json:"component"`
	Message         string    `json:"message"`
	FallbackApplied bool      `json:"fallback_applied,omitempty"`
}

// ValidationResult agrega los hallazgos de una síntesis.
// Valid es verdadero sii no hubo hallazgos críticos.
type ValidationResult struct {
	Errors   []Finding `json:"errors"`
	Warnings []Finding `json:"warnings"`
	Valid    bool      `json:"valid"`
}

// ValidationCollector acumula hallazgos durante la síntesis.
// El valor cero está listo para usarse.
type ValidationCollector struct {
	errors   []Finding
	warnings []Finding
	critical bool
}

// Critical registra un hallazgo crítico.
func (c *ValidationCollector) Critical(component Component, code, msg string) {
	c.critical = true
	c.errors = append(c.errors, Finding{
		Code:      code,
		Severity:  SeverityCritical,
		Component: component,
		Message:   msg,
	})
}

// Recoverable registra un hallazgo recuperable; fallback indica si se
// sustituyó un valor por defecto.
func (c *ValidationCollector) Recoverable(component Component, code, msg string, fallback bool) {
	c.errors = append(c.errors, Finding{
		Code:            code,
		Severity:        SeverityRecoverable,
		Component:       component,
		Message:         msg,
		FallbackApplied: fallback,
	})
}

// Warning registra un aviso que nunca bloquea la entrega del plan.
func (c *ValidationCollector) Warning(component Component, code, msg string) {
	c.warnings = append(c.warnings, Finding{
		Code:      code,
		Severity:  SeverityWarning,
		Component: component,
		Message:   msg,
	})
}

// Result materializa el agregado final.
func (c *ValidationCollector) Result() ValidationResult {
	return ValidationResult{
		Errors:   c.errors,
		Warnings: c.warnings,
		Valid:    !c.critical,
	}
}
