package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"fitplan/internal/domain"
)

type ProfileRepository interface {
	Create(ctx context.Context, attrs domain.UserAttributes) error
	GetByID(ctx context.Context, id string) (domain.UserAttributes, error)
	UpdateAttributes(ctx context.Context, attrs domain.UserAttributes) error
}

type PgProfileRepository struct {
	pool *pgxpool.Pool
}

func NewPgProfileRepository(pool *pgxpool.Pool) *PgProfileRepository {
	return &PgProfileRepository{pool: pool}
}

func (r *PgProfileRepository) Create(ctx context.Context, attrs domain.UserAttributes) error {
	const query = `
		INSERT INTO user_profiles (id, weight_kg, height_cm, work_type, goal, fitness_tier, gender, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.pool.Exec(ctx, query,
		attrs.ID,
		attrs.WeightKg,
		attrs.HeightCm,
		attrs.WorkType,
		attrs.Goal,
		attrs.FitnessTier,
		attrs.Gender,
		attrs.CreatedAt,
		attrs.UpdatedAt,
	)
	return err
}

func (r *PgProfileRepository) GetByID(ctx context.Context, id string) (domain.UserAttributes, error) {
	const query = `
		SELECT id, weight_kg, height_cm, work_type, goal, fitness_tier, gender, created_at, updated_at
		FROM user_profiles
		WHERE id = $1
	`
	var attrs domain.UserAttributes
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&attrs.ID,
		&attrs.WeightKg,
		&attrs.HeightCm,
		&attrs.WorkType,
		&attrs.Goal,
		&attrs.FitnessTier,
		&attrs.Gender,
		&attrs.CreatedAt,
		&attrs.UpdatedAt,
	)
	if err != nil {
		return domain.UserAttributes{}, err
	}
	return attrs, nil
}

func (r *PgProfileRepository) UpdateAttributes(ctx context.Context, attrs domain.UserAttributes) error {
	const query = `
		UPDATE user_profiles
		SET weight_kg = $2, height_cm = $3, work_type = $4, goal = $5, fitness_tier = $6, gender = $7, updated_at = $8
		WHERE id = $1
	`
	_, err := r.pool.Exec(ctx, query,
		attrs.ID,
		attrs.WeightKg,
		attrs.HeightCm,
		attrs.WorkType,
		attrs.Goal,
		attrs.FitnessTier,
		attrs.Gender,
		attrs.UpdatedAt,
	)
	return err
}
