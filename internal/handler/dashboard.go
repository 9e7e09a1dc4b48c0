package handler

import "net/http"

// Dashboard is the front page: the latest five entries of each log type
// plus the lifetime water and exercise totals.
//
// HTTP: GET /
func (p *Pages) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, err := p.users.GetOrCreateDefault(ctx)
	if err != nil {
		p.serviceError(w, err)
		return
	}

	data, err := p.dashboard.Build(ctx, user)
	if err != nil {
		p.serviceError(w, err)
		return
	}

	p.render(w, "dashboard", map[string]any{
		"Title":            "Dashboard",
		"User":             user,
		"WaterLogs":        data.WaterLogs,
		"ExerciseLogs":     data.ExerciseLogs,
		"SleepLogs":        data.SleepLogs,
		"MealLogs":         data.MealLogs,
		"TotalWaterML":     data.TotalWaterML,
		"TotalExerciseMin": data.TotalExerciseMin,
	})
}
