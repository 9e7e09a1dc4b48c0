package service

import (
	"context"
	"testing"
	"time"

	"github.com/dayoon-dev/health-tracker/internal/model"
)

func newDashboardFixture() (*DashboardService, *mockWaterRepo, *mockExerciseRepo) {
	waterRepo := &mockWaterRepo{}
	exerciseRepo := &mockExerciseRepo{}
	svc := NewDashboardService(
		NewWaterService(waterRepo, discardLogger),
		NewExerciseService(exerciseRepo, discardLogger),
		NewSleepService(&mockSleepRepo{}, discardLogger),
		NewMealService(&mockMealRepo{}, discardLogger),
	)
	return svc, waterRepo, exerciseRepo
}

func TestDashboardBuild_Empty(t *testing.T) {
	svc, _, _ := newDashboardFixture()

	data, err := svc.Build(context.Background(), &model.User{ID: 1})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(data.WaterLogs)+len(data.ExerciseLogs)+len(data.SleepLogs)+len(data.MealLogs) != 0 {
		t.Errorf("empty dashboard returned logs")
	}
	if data.TotalWaterML != 0 || data.TotalExerciseMin != 0 {
		t.Errorf("totals = %d ml / %d min, want zeros", data.TotalWaterML, data.TotalExerciseMin)
	}
}

func TestDashboardBuild_CapsListsButTotalsEverything(t *testing.T) {
	svc, waterRepo, exerciseRepo := newDashboardFixture()
	user := &model.User{ID: 1}

	for i := 0; i < 7; i++ {
		waterRepo.Create(context.Background(), &model.WaterLog{
			UserID: user.ID, AmountML: 100, LoggedAt: time.Now(),
		})
	}
	exerciseRepo.Create(context.Background(), &model.ExerciseLog{
		UserID: user.ID, Activity: "running", DurationMin: 30,
	})
	exerciseRepo.Create(context.Background(), &model.ExerciseLog{
		UserID: user.ID, Activity: "yoga", DurationMin: 45,
	})

	data, err := svc.Build(context.Background(), user)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(data.WaterLogs) != DashboardLimit {
		t.Errorf("WaterLogs has %d entries, want %d", len(data.WaterLogs), DashboardLimit)
	}
	// The total covers all 7 rows, not just the 5 shown.
	if data.TotalWaterML != 700 {
		t.Errorf("TotalWaterML = %d, want 700", data.TotalWaterML)
	}
	if data.TotalExerciseMin != 75 {
		t.Errorf("TotalExerciseMin = %d, want 75", data.TotalExerciseMin)
	}
}

func TestDashboardBuild_ScopedToUser(t *testing.T) {
	svc, waterRepo, _ := newDashboardFixture()

	waterRepo.Create(context.Background(), &model.WaterLog{UserID: 1, AmountML: 500})
	waterRepo.Create(context.Background(), &model.WaterLog{UserID: 2, AmountML: 9000})

	data, err := svc.Build(context.Background(), &model.User{ID: 1})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if data.TotalWaterML != 500 {
		t.Errorf("TotalWaterML = %d, want 500 (other user's logs leaked in)", data.TotalWaterML)
	}
}
