package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"fitplan/internal/domain"
)

// ScheduledMessageRepository administra los mensajes motivacionales
// programados. La entrega es de otro subsistema; aquí solo se gestionan.
type ScheduledMessageRepository interface {
	Create(ctx context.Context, m domain.ScheduledMessage) error
	ListActive(ctx context.Context, userID string) ([]domain.ScheduledMessage, error)
	Deactivate(ctx context.Context, id string) error
}

type PgScheduledMessageRepository struct {
	pool *pgxpool.Pool
}

func NewPgScheduledMessageRepository(pool *pgxpool.Pool) *PgScheduledMessageRepository {
	return &PgScheduledMessageRepository{pool: pool}
}

func (r *PgScheduledMessageRepository) Create(ctx context.Context, m domain.ScheduledMessage) error {
	const query = `
		INSERT INTO scheduled_messages (id, user_id, body, deliver_at, active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.pool.Exec(ctx, query,
		m.ID,
		m.UserID,
		m.Body,
		m.DeliverAt,
		m.Active,
		m.CreatedAt,
	)
	return err
}

// ListActive lista los mensajes activos del usuario más los de difusión
// (user_id vacío).
func (r *PgScheduledMessageRepository) ListActive(ctx context.Context, userID string) ([]domain.ScheduledMessage, error) {
	const query = `
		SELECT id, user_id, body, deliver_at, active, created_at, deactivated_at
		FROM scheduled_messages
		WHERE (user_id = $1 OR user_id = '') AND active
		ORDER BY deliver_at
	`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []domain.ScheduledMessage
	for rows.Next() {
		var m domain.ScheduledMessage
		if err := rows.Scan(
			&m.ID,
			&m.UserID,
			&m.Body,
			&m.DeliverAt,
			&m.Active,
			&m.CreatedAt,
			&m.DeactivatedAt,
		); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

func (r *PgScheduledMessageRepository) Deactivate(ctx context.Context, id string) error {
	const query = `
		UPDATE scheduled_messages
		SET active = false, deactivated_at = $2
		WHERE id = $1
	`
	_, err := r.pool.Exec(ctx, query, id, time.Now().UTC())
	return err
}
