package service

import (
	"context"
	"errors"
	"testing"
)

func TestGetOrCreateDefault_ProvisionsOnEmptyTable(t *testing.T) {
	repo := &mockUserRepo{}
	svc := NewUserService(repo, discardLogger)

	user, err := svc.GetOrCreateDefault(context.Background())
	if err != nil {
		t.Fatalf("GetOrCreateDefault() error = %v", err)
	}
	if user.Name != DefaultUserName {
		t.Errorf("Name = %q, want %q", user.Name, DefaultUserName)
	}
	if user.ID == 0 {
		t.Errorf("ID = 0, want assigned")
	}
	if user.HeightCM != nil || user.WeightKG != nil {
		t.Errorf("placeholder user has measurements, want nil")
	}
}

func TestGetOrCreateDefault_ReturnsExistingUser(t *testing.T) {
	repo := &mockUserRepo{}
	svc := NewUserService(repo, discardLogger)

	first, err := svc.GetOrCreateDefault(context.Background())
	if err != nil {
		t.Fatalf("first GetOrCreateDefault() error = %v", err)
	}

	second, err := svc.GetOrCreateDefault(context.Background())
	if err != nil {
		t.Fatalf("second GetOrCreateDefault() error = %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("second call returned id %d, want %d", second.ID, first.ID)
	}
	if len(repo.users) != 1 {
		t.Errorf("repo holds %d users, want 1", len(repo.users))
	}
}

func TestGetOrCreateDefault_PropagatesLookupError(t *testing.T) {
	lookupErr := errors.New("disk on fire")
	repo := &mockUserRepo{firstErr: lookupErr}
	svc := NewUserService(repo, discardLogger)

	_, err := svc.GetOrCreateDefault(context.Background())
	if !errors.Is(err, lookupErr) {
		t.Fatalf("GetOrCreateDefault() error = %v, want wrapped %v", err, lookupErr)
	}
	if len(repo.users) != 0 {
		t.Errorf("a user was created despite the lookup failing")
	}
}
