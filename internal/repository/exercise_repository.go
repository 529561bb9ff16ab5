package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"exercise-tracker-be/internal/entities"
)

// ExerciseRepository defines the interface for exercise database operations
type ExerciseRepository interface {
	Create(ctx context.Context, userID, description string, duration int, date time.Time) (*entities.Exercise, error)
	FindByUserID(ctx context.Context, userID string, from, to *time.Time, limit int) ([]*entities.Exercise, error)
}

type exerciseRepository struct {
	db *sql.DB
}

// NewExerciseRepository creates a new exercise repository
func NewExerciseRepository(db *sql.DB) ExerciseRepository {
	return &exerciseRepository{db: db}
}

// Create inserts a new exercise referencing the given user id. The
// caller is responsible for having verified that the user exists; the
// schema carries no foreign-key constraint.
func (r *exerciseRepository) Create(ctx context.Context, userID, description string, duration int, date time.Time) (*entities.Exercise, error) {
	query := `
		INSERT INTO exercises (user_id, description, duration, date)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, description, duration, date, created_at, updated_at
	`

	var exercise entities.Exercise
	err := r.db.QueryRowContext(ctx, query, userID, description, duration, date).Scan(
		&exercise.ID,
		&exercise.UserID,
		&exercise.Description,
		&exercise.Duration,
		&exercise.Date,
		&exercise.CreatedAt,
		&exercise.UpdatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create exercise: %w", err)
	}

	return &exercise, nil
}

// FindByUserID returns the user's exercises in creation order. from and
// to are inclusive calendar-date bounds, each independently optional.
// A positive limit caps the number of rows; zero means no cap.
func (r *exerciseRepository) FindByUserID(ctx context.Context, userID string, from, to *time.Time, limit int) ([]*entities.Exercise, error) {
	query := `
		SELECT id, user_id, description, duration, date, created_at, updated_at
		FROM exercises
		WHERE user_id = $1`
	args := []interface{}{userID}

	if from != nil {
		args = append(args, *from)
		query += fmt.Sprintf(" AND date >= $%d", len(args))
	}
	if to != nil {
		args = append(args, *to)
		query += fmt.Sprintf(" AND date <= $%d", len(args))
	}

	query += " ORDER BY created_at, id"

	if limit > 0 {
		args = append(args, limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query exercises: %w", err)
	}
	defer rows.Close()

	exercises := make([]*entities.Exercise, 0)
	for rows.Next() {
		var exercise entities.Exercise
		if err := rows.Scan(
			&exercise.ID,
			&exercise.UserID,
			&exercise.Description,
			&exercise.Duration,
			&exercise.Date,
			&exercise.CreatedAt,
			&exercise.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan exercise: %w", err)
		}
		exercises = append(exercises, &exercise)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate exercises: %w", err)
	}

	return exercises, nil
}
