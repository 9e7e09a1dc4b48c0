// Package handler contains the HTTP request handlers: the glue between the
// router and the service layer. Handlers parse form input, call a service,
// and either render a template (GET) or redirect back to the list page
// (POST) — business rules live one layer down.
package handler

import (
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/dayoon-dev/health-tracker/internal/apperror"
	"github.com/dayoon-dev/health-tracker/internal/service"
)

// pageNames lists the content templates. Each is parsed together with
// base.html into its own template set, so every page can define "content"
// without colliding with the others.
var pageNames = []string{"dashboard", "water", "exercise", "sleep", "meal", "report"}

// Pages holds the parsed templates and the services every page handler
// needs. One struct for all pages mirrors how the app actually works: every
// route resolves the same default user and renders into the same base
// layout.
type Pages struct {
	templates map[string]*template.Template
	logger    *slog.Logger

	users     *service.UserService
	water     *service.WaterService
	exercise  *service.ExerciseService
	sleep     *service.SleepService
	meals     *service.MealService
	dashboard *service.DashboardService

	// chartPath is where the report PNG is written; chartURL is how the
	// report template references it.
	chartPath string
	chartURL  string
}

// Config carries everything NewPages needs. A struct (rather than a long
// parameter list) keeps the server wiring readable.
type Config struct {
	TemplateDir string
	ChartPath   string
	ChartURL    string

	Users     *service.UserService
	Water     *service.WaterService
	Exercise  *service.ExerciseService
	Sleep     *service.SleepService
	Meals     *service.MealService
	Dashboard *service.DashboardService
}

// NewPages parses the HTML templates once at startup. Parsing is the
// expensive part; executing a parsed template per request is cheap.
func NewPages(cfg Config, logger *slog.Logger) (*Pages, error) {
	templates := make(map[string]*template.Template, len(pageNames))
	funcs := template.FuncMap{
		"optInt":    optInt,
		"optIntVal": optIntVal,
		"optStr":    optStr,
	}
	for _, name := range pageNames {
		tmpl, err := template.New("base.html").Funcs(funcs).ParseFiles(
			filepath.Join(cfg.TemplateDir, "base.html"),
			filepath.Join(cfg.TemplateDir, name+".html"),
		)
		if err != nil {
			return nil, fmt.Errorf("parsing %s template: %w", name, err)
		}
		templates[name] = tmpl
	}

	return &Pages{
		templates: templates,
		logger:    logger,
		users:     cfg.Users,
		water:     cfg.Water,
		exercise:  cfg.Exercise,
		sleep:     cfg.Sleep,
		meals:     cfg.Meals,
		dashboard: cfg.Dashboard,
		chartPath: cfg.ChartPath,
		chartURL:  cfg.ChartURL,
	}, nil
}

// render executes the named page inside the base layout.
func (p *Pages) render(w http.ResponseWriter, page string, data map[string]any) {
	tmpl, ok := p.templates[page]
	if !ok {
		p.logger.Error("unknown template requested", slog.String("page", page))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	// Headers go out before the body — set the content type first.
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(w, "base", data); err != nil {
		p.logger.Error("failed to render template",
			slog.String("page", page),
			slog.String("error", err.Error()),
		)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// serviceError maps a service failure onto an HTTP response. Validation
// failures are the client's doing (400); anything else is a storage or
// programming problem and surfaces as a bare 500 — there is no JSON error
// envelope in a form-driven app.
func (p *Pages) serviceError(w http.ResponseWriter, err error) {
	if errors.Is(err, apperror.ErrValidation) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	p.logger.Error("request failed", slog.String("error", err.Error()))
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}

// seeOther issues the post-mutation redirect. Every mutating endpoint ends
// here, including silent no-ops — 303 tells the browser to re-GET the list
// page rather than re-POST the form.
func seeOther(w http.ResponseWriter, r *http.Request, url string) {
	http.Redirect(w, r, url, http.StatusSeeOther)
}

// Template helpers for optional fields: nil renders as a dash rather than a
// misleading zero.

func optInt(v *int64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatInt(*v, 10)
}

// optIntVal is the form-input variant: nil renders as an empty value so a
// round trip through the edit form keeps "not recorded" unset.
func optIntVal(v *int64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatInt(*v, 10)
}

func optStr(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
