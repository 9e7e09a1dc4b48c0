package handler

import (
	"log/slog"
	"net/http"
)

// MealPage lists the user's meal logs, newest first.
//
// HTTP: GET /meal
func (p *Pages) MealPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, err := p.users.GetOrCreateDefault(ctx)
	if err != nil {
		p.serviceError(w, err)
		return
	}

	logs, err := p.meals.List(ctx, user, 0)
	if err != nil {
		p.serviceError(w, err)
		return
	}

	p.render(w, "meal", map[string]any{
		"Title": "Meals",
		"User":  user,
		"Logs":  logs,
	})
}

// CreateMeal records a meal. eaten_at is the form's timestamp for the meal;
// a blank value falls back to "now" downstream, so logging a meal right
// after eating needs no clock-fiddling while a back-dated entry still works.
//
// HTTP: POST /meal  (form: meal_type, calories?, note?, eaten_at)
func (p *Pages) CreateMeal(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, err := p.users.GetOrCreateDefault(ctx)
	if err != nil {
		p.serviceError(w, err)
		return
	}

	calories, err := formOptInt64(r, "calories")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	eatenAt, err := formOptTimestamp(r, "eaten_at")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if _, err := p.meals.Create(ctx, user, r.FormValue("meal_type"), calories, formOptString(r, "note"), eatenAt); err != nil {
		p.serviceError(w, err)
		return
	}
	seeOther(w, r, "/meal")
}

// EditMeal overwrites all editable fields of a meal log. Unlike create,
// edit requires an explicit eaten_at — the form is pre-filled with the
// stored value, so "blank" can only mean a broken submission.
//
// HTTP: POST /meal/{id}/edit  (form: meal_type, calories?, note?, eaten_at)
func (p *Pages) EditMeal(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, err := p.users.GetOrCreateDefault(ctx)
	if err != nil {
		p.serviceError(w, err)
		return
	}

	id, err := pathID(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	calories, err := formOptInt64(r, "calories")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	eatenAt, err := formTimestamp(r, "eaten_at")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	found, err := p.meals.Update(ctx, user, id, r.FormValue("meal_type"), calories, formOptString(r, "note"), eatenAt)
	if err != nil {
		p.serviceError(w, err)
		return
	}
	if !found {
		p.logger.Info("meal edit ignored, log not found", slog.Int64("id", id))
	}
	seeOther(w, r, "/meal")
}

// DeleteMeal removes a log; missing ids no-op.
//
// HTTP: POST /meal/{id}/delete
func (p *Pages) DeleteMeal(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, err := p.users.GetOrCreateDefault(ctx)
	if err != nil {
		p.serviceError(w, err)
		return
	}

	id, err := pathID(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	found, err := p.meals.Delete(ctx, user, id)
	if err != nil {
		p.serviceError(w, err)
		return
	}
	if !found {
		p.logger.Info("meal delete ignored, log not found", slog.Int64("id", id))
	}
	seeOther(w, r, "/meal")
}
