package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"fitplan/internal/domain"
)

type ProgressRepository interface {
	Record(ctx context.Context, snap domain.ProgressSnapshot) error
	ListRecent(ctx context.Context, userID string, limit int) ([]domain.ProgressSnapshot, error)
}

type PgProgressRepository struct {
	pool *pgxpool.Pool
}

func NewPgProgressRepository(pool *pgxpool.Pool) *PgProgressRepository {
	return &PgProgressRepository{pool: pool}
}

// Record inserta o reemplaza el snapshot del día. Un usuario reporta a lo
// sumo un snapshot por fecha.
func (r *PgProgressRepository) Record(ctx context.Context, snap domain.ProgressSnapshot) error {
	const query = `
		INSERT INTO progress_snapshots (id, user_id, date, completed_exercises, total_exercises, workout_completed, fasting_compliant, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (user_id, date) DO UPDATE
		SET completed_exercises = EXCLUDED.completed_exercises,
		    total_exercises = EXCLUDED.total_exercises,
		    workout_completed = EXCLUDED.workout_completed,
		    fasting_compliant = EXCLUDED.fasting_compliant
	`
	_, err := r.pool.Exec(ctx, query,
		snap.ID,
		snap.UserID,
		snap.Date,
		snap.CompletedExercises,
		snap.TotalExercises,
		snap.WorkoutCompleted,
		snap.FastingCompliant,
		snap.CreatedAt,
	)
	return err
}

// ListRecent devuelve los últimos snapshots del usuario, más reciente primero.
func (r *PgProgressRepository) ListRecent(ctx context.Context, userID string, limit int) ([]domain.ProgressSnapshot, error) {
	const query = `
		SELECT id, user_id, date, completed_exercises, total_exercises, workout_completed, fasting_compliant, created_at
		FROM progress_snapshots
		WHERE user_id = $1
		ORDER BY date DESC
		LIMIT $2
	`
	rows, err := r.pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snapshots []domain.ProgressSnapshot
	for rows.Next() {
		var s domain.ProgressSnapshot
		if err := rows.Scan(
			&s.ID,
			&s.UserID,
			&s.Date,
			&s.CompletedExercises,
			&s.TotalExercises,
			&s.WorkoutCompleted,
			&s.FastingCompliant,
			&s.CreatedAt,
		); err != nil {
			return nil, err
		}
		snapshots = append(snapshots, s)
	}
	return snapshots, rows.Err()
}
