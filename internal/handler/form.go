package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Form parsing helpers. The contract is type coercion only: a required
// numeric field that fails to parse is a client error, an optional field
// left blank becomes nil (NOT zero — "didn't say" and "said zero" are
// different answers), and no further validation happens here.

// timestampLayouts covers what the HTML datetime-local input and hand-typed
// ISO-8601 strings actually send.
var timestampLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

const dateLayout = "2006-01-02"

// formInt64 parses a required integer field.
func formInt64(r *http.Request, field string) (int64, error) {
	raw := strings.TrimSpace(r.FormValue(field))
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("field %s: invalid integer %q", field, raw)
	}
	return v, nil
}

// formOptInt64 parses an optional integer field; blank means nil.
func formOptInt64(r *http.Request, field string) (*int64, error) {
	raw := strings.TrimSpace(r.FormValue(field))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("field %s: invalid integer %q", field, raw)
	}
	return &v, nil
}

// formOptString returns a trimmed optional text field; blank means nil.
func formOptString(r *http.Request, field string) *string {
	raw := strings.TrimSpace(r.FormValue(field))
	if raw == "" {
		return nil
	}
	return &raw
}

// formTimestamp parses a required ISO-8601 timestamp field.
func formTimestamp(r *http.Request, field string) (time.Time, error) {
	return parseTimestamp(r.FormValue(field), field)
}

// formOptTimestamp parses a timestamp field where blank means "not
// provided" (the zero time) — used for meal eaten_at, which defaults to now
// downstream.
func formOptTimestamp(r *http.Request, field string) (time.Time, error) {
	if strings.TrimSpace(r.FormValue(field)) == "" {
		return time.Time{}, nil
	}
	return parseTimestamp(r.FormValue(field), field)
}

// formDate parses a required ISO calendar date field.
func formDate(r *http.Request, field string) (time.Time, error) {
	raw := strings.TrimSpace(r.FormValue(field))
	t, err := time.ParseInLocation(dateLayout, raw, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("field %s: invalid date %q", field, raw)
	}
	return t, nil
}

func parseTimestamp(raw, field string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("field %s: invalid timestamp %q", field, raw)
}

// pathID extracts the {id} URL parameter. Chi populates the request's path
// values, so the stdlib accessor works here.
func pathID(r *http.Request) (int64, error) {
	raw := r.PathValue("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}
