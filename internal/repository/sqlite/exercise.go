package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/dayoon-dev/health-tracker/internal/apperror"
	"github.com/dayoon-dev/health-tracker/internal/model"
	"github.com/dayoon-dev/health-tracker/internal/repository"
)

var _ repository.ExerciseLogRepository = (*ExerciseLogRepo)(nil)

// ExerciseLogRepo implements repository.ExerciseLogRepository. Same shape as
// WaterLogRepo; the extra wrinkle is calories_burned, a nullable column that
// scans straight into the *int64 field (database/sql maps NULL to a nil
// pointer and back).
type ExerciseLogRepo struct {
	db *DB
}

func NewExerciseLogRepo(db *DB) *ExerciseLogRepo {
	return &ExerciseLogRepo{db: db}
}

func (r *ExerciseLogRepo) List(ctx context.Context, userID int64, opts repository.ListOptions) ([]model.ExerciseLog, error) {
	query := `SELECT id, user_id, activity, duration_min, calories_burned, logged_at
	          FROM exercise_logs
	          WHERE user_id = ?
	          ORDER BY logged_at DESC`
	args := []any{userID}
	if opts.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, opts.Limit)
	}

	rows, err := r.db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing exercise logs: %w", err)
	}
	defer rows.Close()

	logs := []model.ExerciseLog{}
	for rows.Next() {
		var l model.ExerciseLog
		if err := rows.Scan(
			&l.ID, &l.UserID, &l.Activity, &l.DurationMin,
			&l.CaloriesBurned, &l.LoggedAt,
		); err != nil {
			return nil, fmt.Errorf("sqlite: scanning exercise log row: %w", err)
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating exercise logs: %w", err)
	}
	return logs, nil
}

func (r *ExerciseLogRepo) Create(ctx context.Context, log *model.ExerciseLog) error {
	if log.LoggedAt.IsZero() {
		log.LoggedAt = time.Now()
	}

	result, err := r.db.conn.ExecContext(ctx,
		`INSERT INTO exercise_logs (user_id, activity, duration_min, calories_burned, logged_at)
		 VALUES (?, ?, ?, ?, ?)`,
		log.UserID,
		log.Activity,
		log.DurationMin,
		log.CaloriesBurned,
		log.LoggedAt,
	)
	if err != nil {
		return fmt.Errorf("sqlite: creating exercise log: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("sqlite: reading exercise log id: %w", err)
	}
	log.ID = id
	return nil
}

func (r *ExerciseLogRepo) Update(ctx context.Context, userID int64, log *model.ExerciseLog) error {
	result, err := r.db.conn.ExecContext(ctx,
		`UPDATE exercise_logs
		 SET activity = ?, duration_min = ?, calories_burned = ?, logged_at = ?
		 WHERE id = ? AND user_id = ?`,
		log.Activity,
		log.DurationMin,
		log.CaloriesBurned,
		log.LoggedAt,
		log.ID,
		userID,
	)
	if err != nil {
		return fmt.Errorf("sqlite: updating exercise log %d: %w", log.ID, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: checking rows affected: %w", err)
	}
	if affected == 0 {
		return apperror.NotFound("exercise log", log.ID)
	}
	return nil
}

func (r *ExerciseLogRepo) Delete(ctx context.Context, userID, id int64) error {
	result, err := r.db.conn.ExecContext(ctx,
		`DELETE FROM exercise_logs WHERE id = ? AND user_id = ?`,
		id, userID,
	)
	if err != nil {
		return fmt.Errorf("sqlite: deleting exercise log %d: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: checking rows affected: %w", err)
	}
	if affected == 0 {
		return apperror.NotFound("exercise log", id)
	}
	return nil
}
