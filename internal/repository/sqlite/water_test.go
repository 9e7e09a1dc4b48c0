package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dayoon-dev/health-tracker/internal/apperror"
	"github.com/dayoon-dev/health-tracker/internal/model"
	"github.com/dayoon-dev/health-tracker/internal/repository"
)

func createWaterLog(t *testing.T, db *DB, userID, amount int64, loggedAt time.Time) *model.WaterLog {
	t.Helper()
	log := &model.WaterLog{UserID: userID, AmountML: amount, LoggedAt: loggedAt}
	if err := NewWaterLogRepo(db).Create(context.Background(), log); err != nil {
		t.Fatalf("failed to create water log: %v", err)
	}
	return log
}

func TestWaterCreate_RoundTrip(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db, "tester")
	repo := NewWaterLogRepo(db)

	loggedAt := time.Date(2024, 3, 1, 8, 30, 0, 0, time.Local)
	created := createWaterLog(t, db, user.ID, 500, loggedAt)

	if created.ID == 0 {
		t.Error("Create() did not set log.ID")
	}

	logs, err := repo.List(context.Background(), user.ID, repository.ListOptions{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("List() returned %d logs, want 1", len(logs))
	}
	if logs[0].AmountML != 500 {
		t.Errorf("AmountML = %d, want 500", logs[0].AmountML)
	}
	if !logs[0].LoggedAt.Equal(loggedAt) {
		t.Errorf("LoggedAt = %v, want %v", logs[0].LoggedAt, loggedAt)
	}
}

func TestWaterCreate_DefaultsTimestamp(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db, "tester")

	log := &model.WaterLog{UserID: user.ID, AmountML: 250}
	if err := NewWaterLogRepo(db).Create(context.Background(), log); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if log.LoggedAt.IsZero() {
		t.Error("Create() did not default LoggedAt to now")
	}
}

func TestWaterList_Empty(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db, "tester")

	logs, err := NewWaterLogRepo(db).List(context.Background(), user.ID, repository.ListOptions{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(logs) != 0 {
		t.Errorf("List() returned %d logs, want 0", len(logs))
	}
}

func TestWaterList_DescendingByLoggedAt(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db, "tester")
	repo := NewWaterLogRepo(db)

	base := time.Date(2024, 3, 1, 8, 0, 0, 0, time.Local)
	// Inserted out of order on purpose; the query must sort.
	createWaterLog(t, db, user.ID, 100, base.Add(1*time.Hour))
	createWaterLog(t, db, user.ID, 200, base.Add(3*time.Hour))
	createWaterLog(t, db, user.ID, 300, base.Add(2*time.Hour))

	logs, err := repo.List(context.Background(), user.ID, repository.ListOptions{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(logs) != 3 {
		t.Fatalf("List() returned %d logs, want 3", len(logs))
	}
	for i := 1; i < len(logs); i++ {
		if logs[i].LoggedAt.After(logs[i-1].LoggedAt) {
			t.Errorf("logs out of order: %v before %v", logs[i-1].LoggedAt, logs[i].LoggedAt)
		}
	}
	if logs[0].AmountML != 200 {
		t.Errorf("newest log amount = %d, want 200", logs[0].AmountML)
	}
}

func TestWaterList_Limit(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db, "tester")
	repo := NewWaterLogRepo(db)

	base := time.Date(2024, 3, 1, 8, 0, 0, 0, time.Local)
	for i := 0; i < 7; i++ {
		createWaterLog(t, db, user.ID, 100, base.Add(time.Duration(i)*time.Hour))
	}

	logs, err := repo.List(context.Background(), user.ID, repository.ListOptions{Limit: 5})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(logs) != 5 {
		t.Errorf("List() with limit 5 returned %d logs", len(logs))
	}
}

func TestWaterList_ScopedToUser(t *testing.T) {
	db := newTestDB(t)
	alice := newTestUser(t, db, "alice")
	bob := newTestUser(t, db, "bob")
	repo := NewWaterLogRepo(db)

	createWaterLog(t, db, alice.ID, 500, time.Now())
	createWaterLog(t, db, bob.ID, 900, time.Now())

	logs, err := repo.List(context.Background(), alice.ID, repository.ListOptions{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("List() returned %d logs, want 1", len(logs))
	}
	if logs[0].AmountML != 500 {
		t.Errorf("got bob's log in alice's list")
	}
}

func TestWaterUpdate(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db, "tester")
	repo := NewWaterLogRepo(db)

	created := createWaterLog(t, db, user.ID, 500, time.Date(2024, 3, 1, 8, 0, 0, 0, time.Local))

	edited := time.Date(2024, 3, 2, 9, 15, 0, 0, time.Local)
	created.AmountML = 750
	created.LoggedAt = edited
	if err := repo.Update(context.Background(), user.ID, created); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	logs, err := repo.List(context.Background(), user.ID, repository.ListOptions{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if logs[0].AmountML != 750 {
		t.Errorf("AmountML after update = %d, want 750", logs[0].AmountML)
	}
	if !logs[0].LoggedAt.Equal(edited) {
		t.Errorf("LoggedAt after update = %v, want %v", logs[0].LoggedAt, edited)
	}
}

func TestWaterUpdate_ForeignUserIsNotFound(t *testing.T) {
	db := newTestDB(t)
	alice := newTestUser(t, db, "alice")
	bob := newTestUser(t, db, "bob")
	repo := NewWaterLogRepo(db)

	created := createWaterLog(t, db, alice.ID, 500, time.Now())

	// Bob tries to edit Alice's row by its real id.
	attack := *created
	attack.AmountML = 1
	err := repo.Update(context.Background(), bob.ID, &attack)
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Fatalf("Update() as other user error = %v, want ErrNotFound", err)
	}

	// Alice's row is untouched.
	logs, err := repo.List(context.Background(), alice.ID, repository.ListOptions{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if logs[0].AmountML != 500 {
		t.Errorf("AmountML = %d after foreign update, want 500", logs[0].AmountML)
	}
}

func TestWaterDelete(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db, "tester")
	repo := NewWaterLogRepo(db)

	created := createWaterLog(t, db, user.ID, 500, time.Now())
	if err := repo.Delete(context.Background(), user.ID, created.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	logs, err := repo.List(context.Background(), user.ID, repository.ListOptions{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(logs) != 0 {
		t.Errorf("List() returned %d logs after delete, want 0", len(logs))
	}
}

func TestWaterDelete_MissingIDIsNotFound(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db, "tester")
	repo := NewWaterLogRepo(db)

	createWaterLog(t, db, user.ID, 500, time.Now())

	err := repo.Delete(context.Background(), user.ID, 9999)
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Fatalf("Delete() missing id error = %v, want ErrNotFound", err)
	}

	// The existing row survives the no-op.
	logs, err := repo.List(context.Background(), user.ID, repository.ListOptions{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(logs) != 1 {
		t.Errorf("List() returned %d logs, want 1", len(logs))
	}
}
