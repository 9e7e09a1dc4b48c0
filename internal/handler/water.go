package handler

import (
	"log/slog"
	"net/http"
)

// WaterPage lists the user's water logs, newest first.
//
// HTTP: GET /water
func (p *Pages) WaterPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, err := p.users.GetOrCreateDefault(ctx)
	if err != nil {
		p.serviceError(w, err)
		return
	}

	logs, err := p.water.List(ctx, user, 0)
	if err != nil {
		p.serviceError(w, err)
		return
	}

	p.render(w, "water", map[string]any{
		"Title": "Water",
		"User":  user,
		"Logs":  logs,
	})
}

// CreateWater records an intake from the form and redirects back to the
// list. The create form carries only amount_ml; the timestamp is stamped
// server-side.
//
// HTTP: POST /water  (form: amount_ml)
func (p *Pages) CreateWater(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, err := p.users.GetOrCreateDefault(ctx)
	if err != nil {
		p.serviceError(w, err)
		return
	}

	amount, err := formInt64(r, "amount_ml")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if _, err := p.water.Create(ctx, user, amount); err != nil {
		p.serviceError(w, err)
		return
	}
	seeOther(w, r, "/water")
}

// EditWater overwrites a log's amount and timestamp. An id that does not
// belong to the user is a silent no-op — the browser is redirected exactly
// as if the edit had landed.
//
// HTTP: POST /water/{id}/edit  (form: amount_ml, logged_at)
func (p *Pages) EditWater(w http.ResponseWriter, r *http.Request) {
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
	amount, err := formInt64(r, "amount_ml")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	loggedAt, err := formTimestamp(r, "logged_at")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	found, err := p.water.Update(ctx, user, id, amount, loggedAt)
	if err != nil {
		p.serviceError(w, err)
		return
	}
	if !found {
		p.logger.Info("water edit ignored, log not found", slog.Int64("id", id))
	}
	seeOther(w, r, "/water")
}

// DeleteWater removes a log; missing ids no-op.
//
// HTTP: POST /water/{id}/delete
func (p *Pages) DeleteWater(w http.ResponseWriter, r *http.Request) {
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

	found, err := p.water.Delete(ctx, user, id)
	if err != nil {
		p.serviceError(w, err)
		return
	}
	if !found {
		p.logger.Info("water delete ignored, log not found", slog.Int64("id", id))
	}
	seeOther(w, r, "/water")
}
