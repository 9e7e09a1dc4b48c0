package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dayoon-dev/health-tracker/internal/apperror"
	"github.com/dayoon-dev/health-tracker/internal/model"
	"github.com/dayoon-dev/health-tracker/internal/repository"
)

// WaterService handles water intake logs.
type WaterService struct {
	repo   repository.WaterLogRepository
	logger *slog.Logger
}

func NewWaterService(repo repository.WaterLogRepository, logger *slog.Logger) *WaterService {
	return &WaterService{
		repo:   repo,
		logger: logger,
	}
}

// List returns the user's water logs newest-first. limit <= 0 returns all.
func (s *WaterService) List(ctx context.Context, user *model.User, limit int) ([]model.WaterLog, error) {
	logs, err := s.repo.List(ctx, user.ID, repository.ListOptions{Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("listing water logs: %w", err)
	}
	return logs, nil
}

// Create records an intake for the user. The amount is stored as submitted —
// the app never validated amounts and we keep that contract. The repository
// assigns the id and stamps logged_at with "now".
func (s *WaterService) Create(ctx context.Context, user *model.User, amountML int64) (*model.WaterLog, error) {
	log := &model.WaterLog{
		UserID:   user.ID,
		AmountML: amountML,
	}
	if err := s.repo.Create(ctx, log); err != nil {
		s.logger.Error("failed to create water log",
			slog.Int64("user", user.ID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("creating water log: %w", err)
	}

	s.logger.Info("water log created",
		slog.Int64("id", log.ID),
		slog.Int64("amount_ml", log.AmountML),
	)
	return log, nil
}

// Update overwrites the amount and timestamp of the user's log with the
// given id. The returned bool reports whether a row was actually touched:
// a missing id — or one owned by another user — yields (false, nil), never
// an error. The handlers keep redirecting either way (the observable
// contract), but the boundary states the outcome explicitly.
func (s *WaterService) Update(ctx context.Context, user *model.User, id, amountML int64, loggedAt time.Time) (bool, error) {
	log := &model.WaterLog{
		ID:       id,
		UserID:   user.ID,
		AmountML: amountML,
		LoggedAt: loggedAt,
	}
	if err := s.repo.Update(ctx, user.ID, log); err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("updating water log %d: %w", id, err)
	}

	s.logger.Info("water log updated", slog.Int64("id", id))
	return true, nil
}

// Delete removes the user's log with the given id. Same found/not-found
// semantics as Update.
func (s *WaterService) Delete(ctx context.Context, user *model.User, id int64) (bool, error) {
	if err := s.repo.Delete(ctx, user.ID, id); err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("deleting water log %d: %w", id, err)
	}

	s.logger.Info("water log deleted", slog.Int64("id", id))
	return true, nil
}
