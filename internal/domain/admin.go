package domain

import "time"

// OverrideKind distingue qué parámetro del plan pisa un override.
type OverrideKind string

const (
	OverrideRestDay        OverrideKind = "rest_day"
	OverrideFastingPattern OverrideKind = "fasting_pattern"
	OverrideDifficulty     OverrideKind = "difficulty"
)

// AdminOverride pisa un parámetro de síntesis para un usuario.
// Value queda vacío para rest_day; ForDate vacío aplica todos los días.
type AdminOverride struct {
	ID            string       `json:"id"`
	UserID        string       `json:"user_id"`
	Kind          OverrideKind `json:"kind"`
	Value         string       `json:"value,omitempty"`
	ForDate       string       `json:"for_date,omitempty"` // YYYY-MM-DD
	Active        bool         `json:"active"`
	CreatedAt     time.Time    `json:"created_at"`
	DeactivatedAt *time.Time   `json:"deactivated_at,omitempty"`
}

// ScheduledMessage es un mensaje motivacional programado para un usuario.
// UserID vacío significa difusión a todos. El motor no entrega mensajes;
// solo se administran aquí (crear/listar/desactivar).
type ScheduledMessage struct {
	ID            string     `json:"id"`
	UserID        string     `json:"user_id,omitempty"`
	Body          string     `json:"body"`
	DeliverAt     string     `json:"deliver_at"` // HH:MM, hora local del usuario
	Active        bool       `json:"active"`
	CreatedAt     time.Time  `json:"created_at"`
	DeactivatedAt *time.Time `json:"deactivated_at,omitempty"`
}
