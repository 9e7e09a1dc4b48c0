// Package service contains the business logic layer.
//
// The layering follows the usual three-tier shape:
//
//	Handler (HTTP)      → parses forms, renders templates, redirects
//	Service (business)  → validates, applies defaults, owns the contracts
//	Repository (data)   → reads/writes SQLite
//
// Services take repository interfaces, not concrete sqlite types, so tests
// swap in in-memory mocks and the business rules get exercised without a
// database.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dayoon-dev/health-tracker/internal/apperror"
	"github.com/dayoon-dev/health-tracker/internal/model"
	"github.com/dayoon-dev/health-tracker/internal/repository"
)

// DefaultUserName is the placeholder name given to the auto-provisioned
// account. There is no login: this row stands in for "whoever runs the app".
const DefaultUserName = "기본 사용자"

// UserService provisions and resolves the app's single default user.
type UserService struct {
	repo   repository.UserRepository
	logger *slog.Logger
}

func NewUserService(repo repository.UserRepository, logger *slog.Logger) *UserService {
	return &UserService{
		repo:   repo,
		logger: logger,
	}
}

// GetOrCreateDefault returns the first user on record, creating one with
// placeholder values when the table is empty. Handlers call this on every
// request; after the first insert it is a single SELECT.
//
// KNOWN RACE: two concurrent first-ever requests can both see an empty table
// and both insert. Later calls still resolve to the lowest id, so the
// duplicate is harmless dead weight. Left unmitigated on purpose — this is a
// single-user tool and the fix belongs to a real accounts feature.
func (s *UserService) GetOrCreateDefault(ctx context.Context) (*model.User, error) {
	user, err := s.repo.First(ctx)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperror.ErrNotFound) {
		return nil, fmt.Errorf("resolving default user: %w", err)
	}

	user = &model.User{Name: DefaultUserName}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("creating default user: %w", err)
	}

	s.logger.Info("default user provisioned",
		slog.Int64("id", user.ID),
		slog.String("name", user.Name),
	)
	return user, nil
}
