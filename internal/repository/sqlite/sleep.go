package sqlite

import (
	"context"
	"fmt"

	"github.com/dayoon-dev/health-tracker/internal/apperror"
	"github.com/dayoon-dev/health-tracker/internal/model"
	"github.com/dayoon-dev/health-tracker/internal/repository"
)

var _ repository.SleepLogRepository = (*SleepLogRepo)(nil)

// SleepLogRepo implements repository.SleepLogRepository. Sleep has no
// server-defaulted timestamp: every field comes from the form, so Create
// stores exactly what it is given.
type SleepLogRepo struct {
	db *DB
}

func NewSleepLogRepo(db *DB) *SleepLogRepo {
	return &SleepLogRepo{db: db}
}

// List orders by sleep date, then start time, both descending — two nights
// can share a date when a nap gets logged, and the most recent lie-down
// should come first.
func (r *SleepLogRepo) List(ctx context.Context, userID int64, opts repository.ListOptions) ([]model.SleepLog, error) {
	query := `SELECT id, user_id, sleep_date, start_time, end_time, quality
	          FROM sleep_logs
	          WHERE user_id = ?
	          ORDER BY sleep_date DESC, start_time DESC`
	args := []any{userID}
	if opts.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, opts.Limit)
	}

	rows, err := r.db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing sleep logs: %w", err)
	}
	defer rows.Close()

	logs := []model.SleepLog{}
	for rows.Next() {
		var l model.SleepLog
		if err := rows.Scan(
			&l.ID, &l.UserID, &l.SleepDate, &l.StartTime, &l.EndTime, &l.Quality,
		); err != nil {
			return nil, fmt.Errorf("sqlite: scanning sleep log row: %w", err)
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating sleep logs: %w", err)
	}
	return logs, nil
}

func (r *SleepLogRepo) Create(ctx context.Context, log *model.SleepLog) error {
	result, err := r.db.conn.ExecContext(ctx,
		`INSERT INTO sleep_logs (user_id, sleep_date, start_time, end_time, quality)
		 VALUES (?, ?, ?, ?, ?)`,
		log.UserID,
		log.SleepDate,
		log.StartTime,
		log.EndTime,
		log.Quality,
	)
	if err != nil {
		return fmt.Errorf("sqlite: creating sleep log: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("sqlite: reading sleep log id: %w", err)
	}
	log.ID = id
	return nil
}

func (r *SleepLogRepo) Update(ctx context.Context, userID int64, log *model.SleepLog) error {
	result, err := r.db.conn.ExecContext(ctx,
		`UPDATE sleep_logs
		 SET sleep_date = ?, start_time = ?, end_time = ?, quality = ?
		 WHERE id = ? AND user_id = ?`,
		log.SleepDate,
		log.StartTime,
		log.EndTime,
		log.Quality,
		log.ID,
		userID,
	)
	if err != nil {
		return fmt.Errorf("sqlite: updating sleep log %d: %w", log.ID, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: checking rows affected: %w", err)
	}
	if affected == 0 {
		return apperror.NotFound("sleep log", log.ID)
	}
	return nil
}

func (r *SleepLogRepo) Delete(ctx context.Context, userID, id int64) error {
	result, err := r.db.conn.ExecContext(ctx,
		`DELETE FROM sleep_logs WHERE id = ? AND user_id = ?`,
		id, userID,
	)
	if err != nil {
		return fmt.Errorf("sqlite: deleting sleep log %d: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: checking rows affected: %w", err)
	}
	if affected == 0 {
		return apperror.NotFound("sleep log", id)
	}
	return nil
}
