// Package repository declares the storage interfaces the service layer
// depends on. The concrete implementation lives in repository/sqlite;
// tests substitute hand-written in-memory mocks. Programming against these
// interfaces keeps SQL out of the business logic entirely.
package repository

import (
	"context"

	"github.com/dayoon-dev/health-tracker/internal/model"
)

// ListOptions controls how many rows a List call returns.
// Limit <= 0 means "all rows" — the dashboard asks for 5, the list pages
// and the report ask for everything.
type ListOptions struct {
	Limit int
}

// UserRepository manages the user table. The app only ever needs "the first
// user" (lowest id) and the ability to create one when the table is empty.
type UserRepository interface {
	// First returns the user with the lowest id, or apperror.ErrNotFound
	// when the table is empty.
	First(ctx context.Context) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
}

// The four log repositories share one shape: list newest-first for a user,
// create with a server-assigned id, and update/delete filtered by BOTH id
// and owner. An id that exists under a different user is reported as
// apperror.ErrNotFound — ownership is enforced in the WHERE clause, never
// checked after the fact.

type WaterLogRepository interface {
	List(ctx context.Context, userID int64, opts ListOptions) ([]model.WaterLog, error)
	Create(ctx context.Context, log *model.WaterLog) error
	Update(ctx context.Context, userID int64, log *model.WaterLog) error
	Delete(ctx context.Context, userID, id int64) error
}

type ExerciseLogRepository interface {
	List(ctx context.Context, userID int64, opts ListOptions) ([]model.ExerciseLog, error)
	Create(ctx context.Context, log *model.ExerciseLog) error
	Update(ctx context.Context, userID int64, log *model.ExerciseLog) error
	Delete(ctx context.Context, userID, id int64) error
}

type SleepLogRepository interface {
	List(ctx context.Context, userID int64, opts ListOptions) ([]model.SleepLog, error)
	Create(ctx context.Context, log *model.SleepLog) error
	Update(ctx context.Context, userID int64, log *model.SleepLog) error
	Delete(ctx context.Context, userID, id int64) error
}

type MealLogRepository interface {
	List(ctx context.Context, userID int64, opts ListOptions) ([]model.MealLog, error)
	Create(ctx context.Context, log *model.MealLog) error
	Update(ctx context.Context, userID int64, log *model.MealLog) error
	Delete(ctx context.Context, userID, id int64) error
}
