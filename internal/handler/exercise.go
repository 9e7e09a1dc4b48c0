package handler

import (
	"log/slog"
	"net/http"
)

// ExercisePage lists the user's exercise logs, newest first.
//
// HTTP: GET /exercise
func (p *Pages) ExercisePage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, err := p.users.GetOrCreateDefault(ctx)
	if err != nil {
		p.serviceError(w, err)
		return
	}

	logs, err := p.exercise.List(ctx, user, 0)
	if err != nil {
		p.serviceError(w, err)
		return
	}

	p.render(w, "exercise", map[string]any{
		"Title": "Exercise",
		"User":  user,
		"Logs":  logs,
	})
}

// CreateExercise records a session. calories_burned is optional — a blank
// field is stored as NULL ("unknown"), not as zero.
//
// HTTP: POST /exercise  (form: activity, duration_min, calories_burned?)
func (p *Pages) CreateExercise(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, err := p.users.GetOrCreateDefault(ctx)
	if err != nil {
		p.serviceError(w, err)
		return
	}

	duration, err := formInt64(r, "duration_min")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	calories, err := formOptInt64(r, "calories_burned")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if _, err := p.exercise.Create(ctx, user, r.FormValue("activity"), duration, calories); err != nil {
		p.serviceError(w, err)
		return
	}
	seeOther(w, r, "/exercise")
}

// EditExercise overwrites all editable fields, timestamp included.
//
// HTTP: POST /exercise/{id}/edit  (form: activity, duration_min, calories_burned?, logged_at)
func (p *Pages) EditExercise(w http.ResponseWriter, r *http.Request) {
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
	duration, err := formInt64(r, "duration_min")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	calories, err := formOptInt64(r, "calories_burned")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	loggedAt, err := formTimestamp(r, "logged_at")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	found, err := p.exercise.Update(ctx, user, id, r.FormValue("activity"), duration, calories, loggedAt)
	if err != nil {
		p.serviceError(w, err)
		return
	}
	if !found {
		p.logger.Info("exercise edit ignored, log not found", slog.Int64("id", id))
	}
	seeOther(w, r, "/exercise")
}

// DeleteExercise removes a log; missing ids no-op.
//
// HTTP: POST /exercise/{id}/delete
func (p *Pages) DeleteExercise(w http.ResponseWriter, r *http.Request) {
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

	found, err := p.exercise.Delete(ctx, user, id)
	if err != nil {
		p.serviceError(w, err)
		return
	}
	if !found {
		p.logger.Info("exercise delete ignored, log not found", slog.Int64("id", id))
	}
	seeOther(w, r, "/exercise")
}
