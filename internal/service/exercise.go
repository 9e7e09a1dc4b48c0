package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dayoon-dev/health-tracker/internal/apperror"
	"github.com/dayoon-dev/health-tracker/internal/model"
	"github.com/dayoon-dev/health-tracker/internal/repository"
)

// MaxActivityLength caps the activity name, mirroring the column definition.
const MaxActivityLength = 100

// ExerciseService handles exercise session logs.
type ExerciseService struct {
	repo   repository.ExerciseLogRepository
	logger *slog.Logger
}

func NewExerciseService(repo repository.ExerciseLogRepository, logger *slog.Logger) *ExerciseService {
	return &ExerciseService{
		repo:   repo,
		logger: logger,
	}
}

func (s *ExerciseService) List(ctx context.Context, user *model.User, limit int) ([]model.ExerciseLog, error) {
	logs, err := s.repo.List(ctx, user.ID, repository.ListOptions{Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("listing exercise logs: %w", err)
	}
	return logs, nil
}

// Create records a session. caloriesBurned may be nil — "unknown" is a valid
// answer and it must stay distinct from zero all the way to the database.
func (s *ExerciseService) Create(ctx context.Context, user *model.User, activity string, durationMin int64, caloriesBurned *int64) (*model.ExerciseLog, error) {
	activity = strings.TrimSpace(activity)
	if activity == "" {
		return nil, apperror.ValidationFailed("activity", "activity is required")
	}
	if len(activity) > MaxActivityLength {
		return nil, apperror.ValidationFailed("activity",
			fmt.Sprintf("activity must be %d characters or less", MaxActivityLength))
	}

	log := &model.ExerciseLog{
		UserID:         user.ID,
		Activity:       activity,
		DurationMin:    durationMin,
		CaloriesBurned: caloriesBurned,
	}
	if err := s.repo.Create(ctx, log); err != nil {
		s.logger.Error("failed to create exercise log",
			slog.Int64("user", user.ID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("creating exercise log: %w", err)
	}

	s.logger.Info("exercise log created",
		slog.Int64("id", log.ID),
		slog.String("activity", log.Activity),
		slog.Int64("duration_min", log.DurationMin),
	)
	return log, nil
}

// Update overwrites all editable fields of the user's log. (false, nil)
// means no such row for this user — a silent no-op for the caller.
func (s *ExerciseService) Update(ctx context.Context, user *model.User, id int64, activity string, durationMin int64, caloriesBurned *int64, loggedAt time.Time) (bool, error) {
	activity = strings.TrimSpace(activity)
	if activity == "" {
		return false, apperror.ValidationFailed("activity", "activity is required")
	}
	if len(activity) > MaxActivityLength {
		return false, apperror.ValidationFailed("activity",
			fmt.Sprintf("activity must be %d characters or less", MaxActivityLength))
	}

	log := &model.ExerciseLog{
		ID:             id,
		UserID:         user.ID,
		Activity:       activity,
		DurationMin:    durationMin,
		CaloriesBurned: caloriesBurned,
		LoggedAt:       loggedAt,
	}
	if err := s.repo.Update(ctx, user.ID, log); err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("updating exercise log %d: %w", id, err)
	}

	s.logger.Info("exercise log updated", slog.Int64("id", id))
	return true, nil
}

func (s *ExerciseService) Delete(ctx context.Context, user *model.User, id int64) (bool, error) {
	if err := s.repo.Delete(ctx, user.ID, id); err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("deleting exercise log %d: %w", id, err)
	}

	s.logger.Info("exercise log deleted", slog.Int64("id", id))
	return true, nil
}
