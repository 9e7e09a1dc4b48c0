package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/dayoon-dev/health-tracker/internal/apperror"
	"github.com/dayoon-dev/health-tracker/internal/model"
	"github.com/dayoon-dev/health-tracker/internal/repository"
)

var _ repository.MealLogRepository = (*MealLogRepo)(nil)

// MealLogRepo implements repository.MealLogRepository. Calories and note
// are both nullable; the nil-pointer round trip matters here because an
// unrecorded calorie count must stay distinguishable from a recorded 0.
type MealLogRepo struct {
	db *DB
}

func NewMealLogRepo(db *DB) *MealLogRepo {
	return &MealLogRepo{db: db}
}

func (r *MealLogRepo) List(ctx context.Context, userID int64, opts repository.ListOptions) ([]model.MealLog, error) {
	query := `SELECT id, user_id, meal_type, calories, note, eaten_at
	          FROM meal_logs
	          WHERE user_id = ?
	          ORDER BY eaten_at DESC`
	args := []any{userID}
	if opts.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, opts.Limit)
	}

	rows, err := r.db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing meal logs: %w", err)
	}
	defer rows.Close()

	logs := []model.MealLog{}
	for rows.Next() {
		var l model.MealLog
		if err := rows.Scan(
			&l.ID, &l.UserID, &l.MealType, &l.Calories, &l.Note, &l.EatenAt,
		); err != nil {
			return nil, fmt.Errorf("sqlite: scanning meal log row: %w", err)
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating meal logs: %w", err)
	}
	return logs, nil
}

// Create inserts a meal log. The form supplies EatenAt, but a zero value
// (blank field) falls back to now.
func (r *MealLogRepo) Create(ctx context.Context, log *model.MealLog) error {
	if log.EatenAt.IsZero() {
		log.EatenAt = time.Now()
	}

	result, err := r.db.conn.ExecContext(ctx,
		`INSERT INTO meal_logs (user_id, meal_type, calories, note, eaten_at)
		 VALUES (?, ?, ?, ?, ?)`,
		log.UserID,
		log.MealType,
		log.Calories,
		log.Note,
		log.EatenAt,
	)
	if err != nil {
		return fmt.Errorf("sqlite: creating meal log: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("sqlite: reading meal log id: %w", err)
	}
	log.ID = id
	return nil
}

func (r *MealLogRepo) Update(ctx context.Context, userID int64, log *model.MealLog) error {
	result, err := r.db.conn.ExecContext(ctx,
		`UPDATE meal_logs
		 SET meal_type = ?, calories = ?, note = ?, eaten_at = ?
		 WHERE id = ? AND user_id = ?`,
		log.MealType,
		log.Calories,
		log.Note,
		log.EatenAt,
		log.ID,
		userID,
	)
	if err != nil {
		return fmt.Errorf("sqlite: updating meal log %d: %w", log.ID, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: checking rows affected: %w", err)
	}
	if affected == 0 {
		return apperror.NotFound("meal log", log.ID)
	}
	return nil
}

func (r *MealLogRepo) Delete(ctx context.Context, userID, id int64) error {
	result, err := r.db.conn.ExecContext(ctx,
		`DELETE FROM meal_logs WHERE id = ? AND user_id = ?`,
		id, userID,
	)
	if err != nil {
		return fmt.Errorf("sqlite: deleting meal log %d: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: checking rows affected: %w", err)
	}
	if affected == 0 {
		return apperror.NotFound("meal log", id)
	}
	return nil
}
