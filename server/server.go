// SPDX-License-Identifier: MIT

// Package server exposes solver runs over HTTP.
//
// Routes:
//
//	GET  /healthz            liveness and active run count
//	GET  /metrics            Prometheus exposition
//	POST /api/v1/runs        submit a run (202 with the pending job)
//	GET  /api/v1/runs        list runs, oldest first
//	GET  /api/v1/runs/{id}   one run with its result once completed
//
// Runs execute in background goroutines; the registry lives in memory only.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sourcegraph/conc"

	"github.com/katalvlaran/twocycle/config"
	"github.com/katalvlaran/twocycle/solver"
)

// Server is the HTTP front end of the solver.
type Server struct {
	validate   *validator.Validate
	translator ut.Translator
	cfg        *config.Config
	base       solver.Options
	jobs       *JobManager
	runs       conc.WaitGroup
	log        *slog.Logger

	Mux *chi.Mux
}

// New builds a Server with its routes registered. Request options fall back
// to the solver section of cfg. A nil logger uses slog.Default().
func New(cfg *config.Config, logger *slog.Logger) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("server: nil config")
	}
	base, err := cfg.SolverOptions()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	en := en.New()
	uni := ut.New(en, en)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	s := &Server{
		validate:   validate,
		translator: trans,
		cfg:        cfg,
		base:       base,
		jobs:       NewJobManager(cfg.Server.MaxRunning),
		log:        logger,

		Mux: chi.NewRouter(),
	}
	s.registerRoutes()

	return s, nil
}

func (s *Server) registerRoutes() {
	s.Mux.Use(s.logger)
	s.Mux.Use(s.recoverer)

	s.Mux.Get("/healthz", s.Healthz)
	s.Mux.Handle("/metrics", promhttp.Handler())

	s.Mux.Route("/api/v1/runs", func(r chi.Router) {
		r.Post("/", s.CreateRun)
		r.Get("/", s.ListRuns)
		r.Get("/{id}", s.GetRun)
	})
}

// Jobs returns the run registry.
func (s *Server) Jobs() *JobManager { return s.jobs }

// Wait blocks until every submitted run has finished.
func (s *Server) Wait() { s.runs.Wait() }

// ListenAndServe serves on cfg.Server.Addr until ctx is done, then shuts the
// listener down within ShutdownTimeout and waits for in-flight runs.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Server.Addr,
		Handler:      s.Mux,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
		ErrorLog:     slog.NewLogLogger(s.log.Handler(), slog.LevelError),
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("starting server", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	s.Wait()
	s.log.Info("server stopped")

	return nil
}
