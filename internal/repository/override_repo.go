package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"fitplan/internal/domain"
)

// OverrideRepository reemplaza el array mutable ad hoc del sistema de
// referencia por un store real de crear/listar/desactivar.
type OverrideRepository interface {
	Create(ctx context.Context, o domain.AdminOverride) error
	ListActive(ctx context.Context, userID string) ([]domain.AdminOverride, error)
	Deactivate(ctx context.Context, id string) error
}

type PgOverrideRepository struct {
	pool *pgxpool.Pool
}

func NewPgOverrideRepository(pool *pgxpool.Pool) *PgOverrideRepository {
	return &PgOverrideRepository{pool: pool}
}

func (r *PgOverrideRepository) Create(ctx context.Context, o domain.AdminOverride) error {
	const query = `
		INSERT INTO admin_overrides (id, user_id, kind, value, for_date, active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.pool.Exec(ctx, query,
		o.ID,
		o.UserID,
		o.Kind,
		o.Value,
		o.ForDate,
		o.Active,
		o.CreatedAt,
	)
	return err
}

func (r *PgOverrideRepository) ListActive(ctx context.Context, userID string) ([]domain.AdminOverride, error) {
	const query = `
		SELECT id, user_id, kind, value, for_date, active, created_at, deactivated_at
		FROM admin_overrides
		WHERE user_id = $1 AND active
		ORDER BY created_at
	`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var overrides []domain.AdminOverride
	for rows.Next() {
		var o domain.AdminOverride
		if err := rows.Scan(
			&o.ID,
			&o.UserID,
			&o.Kind,
			&o.Value,
			&o.ForDate,
			&o.Active,
			&o.CreatedAt,
			&o.DeactivatedAt,
		); err != nil {
			return nil, err
		}
		overrides = append(overrides, o)
	}
	return overrides, rows.Err()
}

func (r *PgOverrideRepository) Deactivate(ctx context.Context, id string) error {
	const query = `
		UPDATE admin_overrides
		SET active = false, deactivated_at = $2
		WHERE id = $1
	`
	_, err := r.pool.Exec(ctx, query, id, time.Now().UTC())
	return err
}
