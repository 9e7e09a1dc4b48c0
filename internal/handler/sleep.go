package handler

import (
	"log/slog"
	"net/http"
)

// SleepPage lists the user's sleep logs, most recent night first.
//
// HTTP: GET /sleep
func (p *Pages) SleepPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, err := p.users.GetOrCreateDefault(ctx)
	if err != nil {
		p.serviceError(w, err)
		return
	}

	logs, err := p.sleep.List(ctx, user, 0)
	if err != nil {
		p.serviceError(w, err)
		return
	}

	p.render(w, "sleep", map[string]any{
		"Title": "Sleep",
		"User":  user,
		"Logs":  logs,
	})
}

// CreateSleep records a sleep period. All three time fields come from the
// form; quality is optional (blank = not rated).
//
// HTTP: POST /sleep  (form: sleep_date, start_time, end_time, quality?)
func (p *Pages) CreateSleep(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, err := p.users.GetOrCreateDefault(ctx)
	if err != nil {
		p.serviceError(w, err)
		return
	}

	sleepDate, err := formDate(r, "sleep_date")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	startTime, err := formTimestamp(r, "start_time")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	endTime, err := formTimestamp(r, "end_time")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	quality, err := formOptInt64(r, "quality")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if _, err := p.sleep.Create(ctx, user, sleepDate, startTime, endTime, quality); err != nil {
		p.serviceError(w, err)
		return
	}
	seeOther(w, r, "/sleep")
}

// EditSleep overwrites all fields of a sleep log.
//
// HTTP: POST /sleep/{id}/edit  (form: sleep_date, start_time, end_time, quality?)
func (p *Pages) EditSleep(w http.ResponseWriter, r *http.Request) {
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
	sleepDate, err := formDate(r, "sleep_date")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	startTime, err := formTimestamp(r, "start_time")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	endTime, err := formTimestamp(r, "end_time")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	quality, err := formOptInt64(r, "quality")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	found, err := p.sleep.Update(ctx, user, id, sleepDate, startTime, endTime, quality)
	if err != nil {
		p.serviceError(w, err)
		return
	}
	if !found {
		p.logger.Info("sleep edit ignored, log not found", slog.Int64("id", id))
	}
	seeOther(w, r, "/sleep")
}

// DeleteSleep removes a log; missing ids no-op.
//
// HTTP: POST /sleep/{id}/delete
func (p *Pages) DeleteSleep(w http.ResponseWriter, r *http.Request) {
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

	found, err := p.sleep.Delete(ctx, user, id)
	if err != nil {
		p.serviceError(w, err)
		return
	}
	if !found {
		p.logger.Info("sleep delete ignored, log not found", slog.Int64("id", id))
	}
	seeOther(w, r, "/sleep")
}
