package service

import (
	"context"
	"log/slog"

	"github.com/dayoon-dev/health-tracker/internal/apperror"
	"github.com/dayoon-dev/health-tracker/internal/model"
	"github.com/dayoon-dev/health-tracker/internal/repository"
)

// discardLogger keeps service log output out of test results.
var discardLogger = slog.New(slog.DiscardHandler)

// The mocks below mirror the sqlite repositories' observable contracts:
// ids assigned on create, newest-first ordering is the caller's problem
// (tests insert in the order they want back), and update/delete return
// apperror.ErrNotFound unless both id and owner match.

type mockUserRepo struct {
	users    []*model.User
	nextID   int64
	firstErr error
}

func (m *mockUserRepo) First(ctx context.Context) (*model.User, error) {
	if m.firstErr != nil {
		return nil, m.firstErr
	}
	if len(m.users) == 0 {
		return nil, apperror.NotFound("user", 0)
	}
	return m.users[0], nil
}

func (m *mockUserRepo) Create(ctx context.Context, user *model.User) error {
	m.nextID++
	user.ID = m.nextID
	m.users = append(m.users, user)
	return nil
}

type mockWaterRepo struct {
	logs      []model.WaterLog
	nextID    int64
	createErr error
}

func (m *mockWaterRepo) List(ctx context.Context, userID int64, opts repository.ListOptions) ([]model.WaterLog, error) {
	out := []model.WaterLog{}
	for _, l := range m.logs {
		if l.UserID != userID {
			continue
		}
		out = append(out, l)
		if opts.Limit > 0 && len(out) == opts.Limit {
			break
		}
	}
	return out, nil
}

func (m *mockWaterRepo) Create(ctx context.Context, log *model.WaterLog) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.nextID++
	log.ID = m.nextID
	m.logs = append(m.logs, *log)
	return nil
}

func (m *mockWaterRepo) Update(ctx context.Context, userID int64, log *model.WaterLog) error {
	for i, l := range m.logs {
		if l.ID == log.ID && l.UserID == userID {
			m.logs[i] = *log
			return nil
		}
	}
	return apperror.NotFound("water log", log.ID)
}

func (m *mockWaterRepo) Delete(ctx context.Context, userID, id int64) error {
	for i, l := range m.logs {
		if l.ID == id && l.UserID == userID {
			m.logs = append(m.logs[:i], m.logs[i+1:]...)
			return nil
		}
	}
	return apperror.NotFound("water log", id)
}

type mockExerciseRepo struct {
	logs   []model.ExerciseLog
	nextID int64
}

func (m *mockExerciseRepo) List(ctx context.Context, userID int64, opts repository.ListOptions) ([]model.ExerciseLog, error) {
	out := []model.ExerciseLog{}
	for _, l := range m.logs {
		if l.UserID != userID {
			continue
		}
		out = append(out, l)
		if opts.Limit > 0 && len(out) == opts.Limit {
			break
		}
	}
	return out, nil
}

func (m *mockExerciseRepo) Create(ctx context.Context, log *model.ExerciseLog) error {
	m.nextID++
	log.ID = m.nextID
	m.logs = append(m.logs, *log)
	return nil
}

func (m *mockExerciseRepo) Update(ctx context.Context, userID int64, log *model.ExerciseLog) error {
	for i, l := range m.logs {
		if l.ID == log.ID && l.UserID == userID {
			m.logs[i] = *log
			return nil
		}
	}
	return apperror.NotFound("exercise log", log.ID)
}

func (m *mockExerciseRepo) Delete(ctx context.Context, userID, id int64) error {
	for i, l := range m.logs {
		if l.ID == id && l.UserID == userID {
			m.logs = append(m.logs[:i], m.logs[i+1:]...)
			return nil
		}
	}
	return apperror.NotFound("exercise log", id)
}

type mockSleepRepo struct {
	logs   []model.SleepLog
	nextID int64
}

func (m *mockSleepRepo) List(ctx context.Context, userID int64, opts repository.ListOptions) ([]model.SleepLog, error) {
	out := []model.SleepLog{}
	for _, l := range m.logs {
		if l.UserID != userID {
			continue
		}
		out = append(out, l)
		if opts.Limit > 0 && len(out) == opts.Limit {
			break
		}
	}
	return out, nil
}

func (m *mockSleepRepo) Create(ctx context.Context, log *model.SleepLog) error {
	m.nextID++
	log.ID = m.nextID
	m.logs = append(m.logs, *log)
	return nil
}

func (m *mockSleepRepo) Update(ctx context.Context, userID int64, log *model.SleepLog) error {
	for i, l := range m.logs {
		if l.ID == log.ID && l.UserID == userID {
			m.logs[i] = *log
			return nil
		}
	}
	return apperror.NotFound("sleep log", log.ID)
}

func (m *mockSleepRepo) Delete(ctx context.Context, userID, id int64) error {
	for i, l := range m.logs {
		if l.ID == id && l.UserID == userID {
			m.logs = append(m.logs[:i], m.logs[i+1:]...)
			return nil
		}
	}
	return apperror.NotFound("sleep log", id)
}

type mockMealRepo struct {
	logs   []model.MealLog
	nextID int64
}

func (m *mockMealRepo) List(ctx context.Context, userID int64, opts repository.ListOptions) ([]model.MealLog, error) {
	out := []model.MealLog{}
	for _, l := range m.logs {
		if l.UserID != userID {
			continue
		}
		out = append(out, l)
		if opts.Limit > 0 && len(out) == opts.Limit {
			break
		}
	}
	return out, nil
}

func (m *mockMealRepo) Create(ctx context.Context, log *model.MealLog) error {
	m.nextID++
	log.ID = m.nextID
	m.logs = append(m.logs, *log)
	return nil
}

func (m *mockMealRepo) Update(ctx context.Context, userID int64, log *model.MealLog) error {
	for i, l := range m.logs {
		if l.ID == log.ID && l.UserID == userID {
			m.logs[i] = *log
			return nil
		}
	}
	return apperror.NotFound("meal log", log.ID)
}

func (m *mockMealRepo) Delete(ctx context.Context, userID, id int64) error {
	for i, l := range m.logs {
		if l.ID == id && l.UserID == userID {
			m.logs = append(m.logs[:i], m.logs[i+1:]...)
			return nil
		}
	}
	return apperror.NotFound("meal log", id)
}

var (
	_ repository.UserRepository        = (*mockUserRepo)(nil)
	_ repository.WaterLogRepository    = (*mockWaterRepo)(nil)
	_ repository.ExerciseLogRepository = (*mockExerciseRepo)(nil)
	_ repository.SleepLogRepository    = (*mockSleepRepo)(nil)
	_ repository.MealLogRepository     = (*mockMealRepo)(nil)
)
