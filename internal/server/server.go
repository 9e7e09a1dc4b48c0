// Package server wires the application together: database, services,
// handlers, routes, and the HTTP server lifecycle.
//
// This is the composition root — every dependency is constructed here and
// injected downward, so no other package reaches for globals. Each layer
// receives only what it needs: services get repository interfaces, handlers
// get services, and nothing below this package knows the port number.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/dayoon-dev/health-tracker/internal/config"
	"github.com/dayoon-dev/health-tracker/internal/handler"
	"github.com/dayoon-dev/health-tracker/internal/middleware"
	sqliteRepo "github.com/dayoon-dev/health-tracker/internal/repository/sqlite"
	"github.com/dayoon-dev/health-tracker/internal/service"
)

// chartURL is the fixed public path of the report image; the file itself
// lives under the static dir and is rewritten on every report view.
const chartURL = "/static/img/water_report.png"

// Server owns the router, the database connection, and the config. The
// database is closed during Start's shutdown path so the WAL gets flushed
// and the file lock released.
type Server struct {
	router *chi.Mux
	config config.Config
	logger *slog.Logger
	db     *sqliteRepo.DB
}

// New opens the database and assembles the full dependency chain:
//
//	sqlite repos → services → page handlers → routes
func New(cfg config.Config, logger *slog.Logger) (*Server, error) {
	db, err := sqliteRepo.New(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Server{
		router: chi.NewRouter(),
		config: cfg,
		logger: logger,
		db:     db,
	}

	if err := s.setupRoutes(); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting up routes: %w", err)
	}
	return s, nil
}

// setupRoutes configures middleware, static files, and every page route.
//
// ROUTE MAP:
//
//	GET  /                       → dashboard (latest 5 of each + totals)
//	GET  /water                  → water list       POST /water → create
//	POST /water/{id}/edit        → update           POST /water/{id}/delete → delete
//	     (same trio for /exercise, /sleep, /meal)
//	GET  /report                 → water report + regenerated chart
//	GET  /static/*               → stylesheet and the chart image
func (s *Server) setupRoutes() error {
	// Global middleware, in order: request id, real client IP, panic
	// recovery, then our structured request log.
	s.router.Use(chimiddleware.RequestID)
	s.router.Use(chimiddleware.RealIP)
	s.router.Use(chimiddleware.Recoverer)
	s.router.Use(middleware.Logger(s.logger))

	// Static files: GET /static/css/style.css → {StaticDir}/css/style.css.
	fileServer := http.FileServer(http.Dir(s.config.StaticDir))
	s.router.Handle("/static/*", http.StripPrefix("/static/", fileServer))

	// Repositories share the one connection pool.
	users := service.NewUserService(sqliteRepo.NewUserRepo(s.db), s.logger)
	water := service.NewWaterService(sqliteRepo.NewWaterLogRepo(s.db), s.logger)
	exercise := service.NewExerciseService(sqliteRepo.NewExerciseLogRepo(s.db), s.logger)
	sleep := service.NewSleepService(sqliteRepo.NewSleepLogRepo(s.db), s.logger)
	meals := service.NewMealService(sqliteRepo.NewMealLogRepo(s.db), s.logger)
	dashboard := service.NewDashboardService(water, exercise, sleep, meals)

	pages, err := handler.NewPages(handler.Config{
		TemplateDir: s.config.TemplateDir,
		ChartPath:   filepath.Join(s.config.StaticDir, "img", "water_report.png"),
		ChartURL:    chartURL,
		Users:       users,
		Water:       water,
		Exercise:    exercise,
		Sleep:       sleep,
		Meals:       meals,
		Dashboard:   dashboard,
	}, s.logger)
	if err != nil {
		return fmt.Errorf("creating page handlers: %w", err)
	}

	s.router.Get("/", pages.Dashboard)
	s.router.Get("/report", pages.ReportPage)

	s.router.Route("/water", func(r chi.Router) {
		r.Get("/", pages.WaterPage)
		r.Post("/", pages.CreateWater)
		r.Post("/{id}/edit", pages.EditWater)
		r.Post("/{id}/delete", pages.DeleteWater)
	})
	s.router.Route("/exercise", func(r chi.Router) {
		r.Get("/", pages.ExercisePage)
		r.Post("/", pages.CreateExercise)
		r.Post("/{id}/edit", pages.EditExercise)
		r.Post("/{id}/delete", pages.DeleteExercise)
	})
	s.router.Route("/sleep", func(r chi.Router) {
		r.Get("/", pages.SleepPage)
		r.Post("/", pages.CreateSleep)
		r.Post("/{id}/edit", pages.EditSleep)
		r.Post("/{id}/delete", pages.DeleteSleep)
	})
	s.router.Route("/meal", func(r chi.Router) {
		r.Get("/", pages.MealPage)
		r.Post("/", pages.CreateMeal)
		r.Post("/{id}/edit", pages.EditMeal)
		r.Post("/{id}/delete", pages.DeleteMeal)
	})

	return nil
}

// Start runs the HTTP server until SIGINT/SIGTERM, then shuts down
// gracefully: stop accepting connections, give in-flight requests 30
// seconds, close the database.
func (s *Server) Start() error {
	defer s.db.Close()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.config.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("server starting",
			slog.Int("port", s.config.Port),
			slog.String("url", fmt.Sprintf("http://localhost:%d", s.config.Port)),
			slog.String("database", s.config.DBPath),
		)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}

	case sig := <-quit:
		s.logger.Info("shutdown signal received", slog.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		s.logger.Info("server stopped gracefully")
	}

	return nil
}
