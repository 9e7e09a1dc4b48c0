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

// Column caps, mirroring the schema.
const (
	MaxMealTypeLength = 100
	MaxNoteLength     = 200
)

// MealService handles meal logs.
type MealService struct {
	repo   repository.MealLogRepository
	logger *slog.Logger
}

func NewMealService(repo repository.MealLogRepository, logger *slog.Logger) *MealService {
	return &MealService{
		repo:   repo,
		logger: logger,
	}
}

func (s *MealService) List(ctx context.Context, user *model.User, limit int) ([]model.MealLog, error) {
	logs, err := s.repo.List(ctx, user.ID, repository.ListOptions{Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("listing meal logs: %w", err)
	}
	return logs, nil
}

// Create records a meal. calories and note may be nil. eatenAt comes from
// the form; the zero value means "not provided" and the repository fills it
// with now.
func (s *MealService) Create(ctx context.Context, user *model.User, mealType string, calories *int64, note *string, eatenAt time.Time) (*model.MealLog, error) {
	mealType = strings.TrimSpace(mealType)
	if err := validateMealFields(mealType, note); err != nil {
		return nil, err
	}

	log := &model.MealLog{
		UserID:   user.ID,
		MealType: mealType,
		Calories: calories,
		Note:     note,
		EatenAt:  eatenAt,
	}
	if err := s.repo.Create(ctx, log); err != nil {
		s.logger.Error("failed to create meal log",
			slog.Int64("user", user.ID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("creating meal log: %w", err)
	}

	s.logger.Info("meal log created",
		slog.Int64("id", log.ID),
		slog.String("meal_type", log.MealType),
	)
	return log, nil
}

func (s *MealService) Update(ctx context.Context, user *model.User, id int64, mealType string, calories *int64, note *string, eatenAt time.Time) (bool, error) {
	mealType = strings.TrimSpace(mealType)
	if err := validateMealFields(mealType, note); err != nil {
		return false, err
	}

	log := &model.MealLog{
		ID:       id,
		UserID:   user.ID,
		MealType: mealType,
		Calories: calories,
		Note:     note,
		EatenAt:  eatenAt,
	}
	if err := s.repo.Update(ctx, user.ID, log); err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("updating meal log %d: %w", id, err)
	}

	s.logger.Info("meal log updated", slog.Int64("id", id))
	return true, nil
}

func (s *MealService) Delete(ctx context.Context, user *model.User, id int64) (bool, error) {
	if err := s.repo.Delete(ctx, user.ID, id); err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("deleting meal log %d: %w", id, err)
	}

	s.logger.Info("meal log deleted", slog.Int64("id", id))
	return true, nil
}

func validateMealFields(mealType string, note *string) error {
	if mealType == "" {
		return apperror.ValidationFailed("meal_type", "meal type is required")
	}
	if len(mealType) > MaxMealTypeLength {
		return apperror.ValidationFailed("meal_type",
			fmt.Sprintf("meal type must be %d characters or less", MaxMealTypeLength))
	}
	if note != nil && len(*note) > MaxNoteLength {
		return apperror.ValidationFailed("note",
			fmt.Sprintf("note must be %d characters or less", MaxNoteLength))
	}
	return nil
}
