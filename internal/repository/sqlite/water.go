package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/dayoon-dev/health-tracker/internal/apperror"
	"github.com/dayoon-dev/health-tracker/internal/model"
	"github.com/dayoon-dev/health-tracker/internal/repository"
)

var _ repository.WaterLogRepository = (*WaterLogRepo)(nil)

// WaterLogRepo implements repository.WaterLogRepository.
type WaterLogRepo struct {
	db *DB
}

func NewWaterLogRepo(db *DB) *WaterLogRepo {
	return &WaterLogRepo{db: db}
}

// List returns a user's water logs newest-first. opts.Limit <= 0 returns
// everything; the dashboard passes 5. An empty result is a valid empty
// slice, never an error.
func (r *WaterLogRepo) List(ctx context.Context, userID int64, opts repository.ListOptions) ([]model.WaterLog, error) {
	query := `SELECT id, user_id, amount_ml, logged_at
	          FROM water_logs
	          WHERE user_id = ?
	          ORDER BY logged_at DESC`
	args := []any{userID}
	if opts.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, opts.Limit)
	}

	rows, err := r.db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing water logs: %w", err)
	}
	// Rows hold a pool connection — always close them.
	defer rows.Close()

	logs := []model.WaterLog{}
	for rows.Next() {
		var l model.WaterLog
		if err := rows.Scan(&l.ID, &l.UserID, &l.AmountML, &l.LoggedAt); err != nil {
			return nil, fmt.Errorf("sqlite: scanning water log row: %w", err)
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating water logs: %w", err)
	}
	return logs, nil
}

// Create inserts a water log and fills in the generated id. A zero LoggedAt
// defaults to now — the create form has no timestamp field, only the edit
// form does.
func (r *WaterLogRepo) Create(ctx context.Context, log *model.WaterLog) error {
	if log.LoggedAt.IsZero() {
		log.LoggedAt = time.Now()
	}

	result, err := r.db.conn.ExecContext(ctx,
		`INSERT INTO water_logs (user_id, amount_ml, logged_at)
		 VALUES (?, ?, ?)`,
		log.UserID,
		log.AmountML,
		log.LoggedAt,
	)
	if err != nil {
		return fmt.Errorf("sqlite: creating water log: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("sqlite: reading water log id: %w", err)
	}
	log.ID = id
	return nil
}

// Update overwrites the editable fields (amount, timestamp) of the row
// matching BOTH id and owner. Filtering on both in one statement is what
// makes a foreign id look exactly like a missing one: zero rows affected,
// reported as not found.
func (r *WaterLogRepo) Update(ctx context.Context, userID int64, log *model.WaterLog) error {
	result, err := r.db.conn.ExecContext(ctx,
		`UPDATE water_logs
		 SET amount_ml = ?, logged_at = ?
		 WHERE id = ? AND user_id = ?`,
		log.AmountML,
		log.LoggedAt,
		log.ID,
		userID,
	)
	if err != nil {
		return fmt.Errorf("sqlite: updating water log %d: %w", log.ID, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: checking rows affected: %w", err)
	}
	if affected == 0 {
		return apperror.NotFound("water log", log.ID)
	}
	return nil
}

// Delete removes the row matching id and owner. Same RowsAffected pattern
// as Update.
func (r *WaterLogRepo) Delete(ctx context.Context, userID, id int64) error {
	result, err := r.db.conn.ExecContext(ctx,
		`DELETE FROM water_logs WHERE id = ? AND user_id = ?`,
		id, userID,
	)
	if err != nil {
		return fmt.Errorf("sqlite: deleting water log %d: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: checking rows affected: %w", err)
	}
	if affected == 0 {
		return apperror.NotFound("water log", id)
	}
	return nil
}
