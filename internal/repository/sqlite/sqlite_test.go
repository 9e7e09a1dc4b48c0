package sqlite

import (
	"context"
	"testing"

	"github.com/dayoon-dev/health-tracker/internal/model"
)

// Shared test helpers. ":memory:" gives every test a fresh database that
// lives only for the test — fast, isolated, destroyed on close. t.Helper()
// makes failures report at the caller's line; t.Cleanup closes the database
// even when a subtest fails.

func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := New(":memory:")
	if err != nil {
		t.Fatalf("failed to create test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// newTestUser inserts a user to own log rows — the foreign key is enforced,
// so logs cannot exist without one.
func newTestUser(t *testing.T, db *DB, name string) *model.User {
	t.Helper()
	user := &model.User{Name: name}
	if err := NewUserRepo(db).Create(context.Background(), user); err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}
