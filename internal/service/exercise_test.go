package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/dayoon-dev/health-tracker/internal/apperror"
	"github.com/dayoon-dev/health-tracker/internal/model"
)

func TestExerciseCreate_RejectsBlankActivity(t *testing.T) {
	repo := &mockExerciseRepo{}
	svc := NewExerciseService(repo, discardLogger)

	_, err := svc.Create(context.Background(), &model.User{ID: 1}, "   ", 30, nil)
	if !errors.Is(err, apperror.ErrValidation) {
		t.Fatalf("Create() error = %v, want ErrValidation", err)
	}
	if len(repo.logs) != 0 {
		t.Errorf("a log was created despite validation failing")
	}
}

func TestExerciseCreate_RejectsOverlongActivity(t *testing.T) {
	repo := &mockExerciseRepo{}
	svc := NewExerciseService(repo, discardLogger)

	long := strings.Repeat("a", MaxActivityLength+1)
	_, err := svc.Create(context.Background(), &model.User{ID: 1}, long, 30, nil)
	if !errors.Is(err, apperror.ErrValidation) {
		t.Fatalf("Create() error = %v, want ErrValidation", err)
	}
}

func TestExerciseCreate_AcceptsActivityAtLimit(t *testing.T) {
	repo := &mockExerciseRepo{}
	svc := NewExerciseService(repo, discardLogger)

	exact := strings.Repeat("a", MaxActivityLength)
	log, err := svc.Create(context.Background(), &model.User{ID: 1}, exact, 30, nil)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if log.Activity != exact {
		t.Errorf("Activity was altered on the way through")
	}
}

func TestExerciseCreate_TrimsActivity(t *testing.T) {
	repo := &mockExerciseRepo{}
	svc := NewExerciseService(repo, discardLogger)

	log, err := svc.Create(context.Background(), &model.User{ID: 1}, "  달리기  ", 30, nil)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if log.Activity != "달리기" {
		t.Errorf("Activity = %q, want %q", log.Activity, "달리기")
	}
}

func TestExerciseUpdate_ValidatesBeforeLookup(t *testing.T) {
	repo := &mockExerciseRepo{}
	svc := NewExerciseService(repo, discardLogger)

	// A bad payload is a 400-class failure even when the target id does not
	// exist — validation wins over the silent not-found no-op.
	_, err := svc.Update(context.Background(), &model.User{ID: 1}, 42, "", 30, nil, time.Now())
	if !errors.Is(err, apperror.ErrValidation) {
		t.Fatalf("Update() error = %v, want ErrValidation", err)
	}
}

func TestExerciseUpdate_MissingLogIsSilentNoOp(t *testing.T) {
	repo := &mockExerciseRepo{}
	svc := NewExerciseService(repo, discardLogger)

	found, err := svc.Update(context.Background(), &model.User{ID: 1}, 42, "running", 30, nil, time.Now())
	if err != nil {
		t.Fatalf("Update() error = %v, want nil for missing log", err)
	}
	if found {
		t.Errorf("Update() found = true for missing log, want false")
	}
}
