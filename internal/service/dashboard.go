package service

import (
	"context"
	"fmt"

	"github.com/dayoon-dev/health-tracker/internal/model"
)

// DashboardLimit is how many recent entries of each log type the dashboard
// shows.
const DashboardLimit = 5

// DashboardData is everything the dashboard template needs: the latest few
// entries of each type plus two lifetime totals.
type DashboardData struct {
	WaterLogs    []model.WaterLog
	ExerciseLogs []model.ExerciseLog
	SleepLogs    []model.SleepLog
	MealLogs     []model.MealLog

	TotalWaterML     int64
	TotalExerciseMin int64
}

// DashboardService aggregates the four log services for the front page.
// It composes services rather than repositories so the per-entity contracts
// (ordering, limits) stay in one place.
type DashboardService struct {
	water    *WaterService
	exercise *ExerciseService
	sleep    *SleepService
	meal     *MealService
}

func NewDashboardService(water *WaterService, exercise *ExerciseService, sleep *SleepService, meal *MealService) *DashboardService {
	return &DashboardService{
		water:    water,
		exercise: exercise,
		sleep:    sleep,
		meal:     meal,
	}
}

// Build collects the latest entries and totals for the user. The totals scan
// the full history — dataset sizes here are "one person's habit tracking",
// so summing in Go beats adding aggregate queries to every repository.
func (s *DashboardService) Build(ctx context.Context, user *model.User) (*DashboardData, error) {
	data := &DashboardData{}
	var err error

	if data.WaterLogs, err = s.water.List(ctx, user, DashboardLimit); err != nil {
		return nil, fmt.Errorf("dashboard water logs: %w", err)
	}
	if data.ExerciseLogs, err = s.exercise.List(ctx, user, DashboardLimit); err != nil {
		return nil, fmt.Errorf("dashboard exercise logs: %w", err)
	}
	if data.SleepLogs, err = s.sleep.List(ctx, user, DashboardLimit); err != nil {
		return nil, fmt.Errorf("dashboard sleep logs: %w", err)
	}
	if data.MealLogs, err = s.meal.List(ctx, user, DashboardLimit); err != nil {
		return nil, fmt.Errorf("dashboard meal logs: %w", err)
	}

	allWater, err := s.water.List(ctx, user, 0)
	if err != nil {
		return nil, fmt.Errorf("dashboard water total: %w", err)
	}
	for _, l := range allWater {
		data.TotalWaterML += l.AmountML
	}

	allExercise, err := s.exercise.List(ctx, user, 0)
	if err != nil {
		return nil, fmt.Errorf("dashboard exercise total: %w", err)
	}
	for _, l := range allExercise {
		data.TotalExerciseMin += l.DurationMin
	}

	return data, nil
}
