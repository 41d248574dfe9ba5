// SPDX-License-Identifier: MIT

// Package server - run handlers and the background worker.
package server

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/katalvlaran/twocycle/distance"
	"github.com/katalvlaran/twocycle/search"
	"github.com/katalvlaran/twocycle/solver"
	"github.com/katalvlaran/twocycle/tsplib"
)

var (
	// ErrNoInstance is returned when a request carries neither distances nor points.
	ErrNoInstance = errors.New("server: either distances or points is required")

	// ErrTwoInstances is returned when a request carries both.
	ErrTwoInstances = errors.New("server: distances and points are mutually exclusive")
)

// runRequest is the body of POST /api/v1/runs. Zero-valued knobs keep the
// configured defaults.
type runRequest struct {
	Distances [][]int      `json:"distances" validate:"omitempty,min=4"`
	Points    [][2]float64 `json:"points" validate:"omitempty,min=4"`

	Algo            string  `json:"algo" validate:"omitempty,oneof=msls ils lns lnsa hae"`
	Initial         string  `json:"initial" validate:"omitempty,oneof=random weighted-regret"`
	Seed            *int64  `json:"seed"`
	TimeLimitMS     int     `json:"time_limit_ms" validate:"gte=0"`
	Iterations      int     `json:"iterations" validate:"gte=0"`
	MaxIterations   int     `json:"max_iterations" validate:"gte=0"`
	NMoves          int     `json:"n_moves" validate:"gte=0"`
	DestroyFraction float64 `json:"destroy_fraction" validate:"gte=0,lt=1"`
	PopSize         int     `json:"pop_size" validate:"omitempty,gte=2"`
	MinDiff         *int    `json:"min_diff" validate:"omitempty,gte=0"`
	CandidateK      int     `json:"candidate_k" validate:"gte=0"`
	Search          string  `json:"search" validate:"omitempty,oneof=candidate steepest greedy move-list"`
	WithLocal       *bool   `json:"with_local"`
	Workers         int     `json:"workers" validate:"gte=0,lte=64"`
	RecordTrace     bool    `json:"record_trace"`
}

// matrix builds the validated instance of the request.
func (req *runRequest) matrix() (*distance.Dense, error) {
	switch {
	case len(req.Distances) > 0 && len(req.Points) > 0:
		return nil, ErrTwoInstances
	case len(req.Distances) > 0:
		d, err := distance.NewDense(req.Distances)
		if err != nil {
			return nil, err
		}
		return d, distance.Validate(d)
	case len(req.Points) > 0:
		return tsplib.FromPoints(req.Points, false)
	default:
		return nil, ErrNoInstance
	}
}

// options overlays the request knobs on base.
func (req *runRequest) options(base solver.Options) (solver.Options, error) {
	opts := base
	if req.Algo != "" {
		algo, err := solver.ParseAlgo(req.Algo)
		if err != nil {
			return opts, err
		}
		opts.Algo = algo
	}
	if req.Initial != "" {
		initial, err := solver.ParseInitial(req.Initial)
		if err != nil {
			return opts, err
		}
		opts.Initial = initial
	}
	if req.Seed != nil {
		opts.Seed = *req.Seed
	}
	if req.TimeLimitMS > 0 {
		opts.TimeLimit = time.Duration(req.TimeLimitMS) * time.Millisecond
	}
	if req.Iterations > 0 {
		opts.Iterations = req.Iterations
	}
	if req.MaxIterations > 0 {
		opts.MaxIterations = req.MaxIterations
	}
	if req.NMoves > 0 {
		opts.NMoves = req.NMoves
	}
	if req.DestroyFraction > 0 {
		opts.DestroyFraction = req.DestroyFraction
	}
	if req.PopSize > 0 {
		opts.PopSize = req.PopSize
	}
	if req.MinDiff != nil {
		opts.MinDiff = *req.MinDiff
	}
	if req.CandidateK > 0 {
		opts.CandidateK = req.CandidateK
	}
	if req.Search != "" {
		variant, err := search.ParseVariant(req.Search)
		if err != nil {
			return opts, err
		}
		opts.Search = variant
	}
	if req.WithLocal != nil {
		opts.WithLocal = *req.WithLocal
	}
	if req.Workers > 0 {
		opts.Workers = req.Workers
	}
	opts.RecordTrace = req.RecordTrace

	return opts, nil
}

// Healthz reports liveness.
func (s *Server) Healthz(w http.ResponseWriter, r *http.Request) {
	s.successResponse(w, r, http.StatusOK, "ok", map[string]int{"active": s.jobs.Active()})
}

// CreateRun validates the request and starts the run in the background.
func (s *Server) CreateRun(w http.ResponseWriter, r *http.Request) {
	var req runRequest
	if err := s.readJSON(w, r, &req); err != nil {
		s.badRequest(w, r, err)
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.badRequest(w, r, err)
		return
	}

	d, err := req.matrix()
	if err != nil {
		s.badRequest(w, r, err)
		return
	}
	if d.Len() > s.cfg.Server.MaxVertices {
		s.errorResponse(w, r, http.StatusBadRequest,
			fmt.Sprintf("instance has %d vertices, limit is %d", d.Len(), s.cfg.Server.MaxVertices))
		return
	}

	opts, err := req.options(s.base)
	if err != nil {
		s.badRequest(w, r, err)
		return
	}
	if opts.TimeLimit > s.cfg.Server.MaxTimeLimit {
		s.errorResponse(w, r, http.StatusBadRequest,
			fmt.Sprintf("time limit %s exceeds %s", opts.TimeLimit, s.cfg.Server.MaxTimeLimit))
		return
	}
	if err = opts.Validate(d.Len()); err != nil {
		s.badRequest(w, r, err)
		return
	}

	job, err := s.jobs.Create(d.Len(), opts)
	if err != nil {
		if errors.Is(err, ErrBusy) {
			s.errorResponse(w, r, http.StatusTooManyRequests, err.Error())
			return
		}
		s.internalServerError(w, r, err)
		return
	}
	s.runs.Go(func() { s.run(job.ID, d, opts) })

	s.successResponse(w, r, http.StatusAccepted, "run accepted", job)
}

// ListRuns returns every run, oldest first.
func (s *Server) ListRuns(w http.ResponseWriter, r *http.Request) {
	s.successResponse(w, r, http.StatusOK, "runs listed", s.jobs.List())
}

// GetRun returns one run.
func (s *Server) GetRun(w http.ResponseWriter, r *http.Request) {
	job, ok := s.jobs.Get(chi.URLParam(r, "id"))
	if !ok {
		s.errorResponse(w, r, http.StatusNotFound, ErrJobNotFound.Error())
		return
	}

	s.successResponse(w, r, http.StatusOK, "run found", job)
}

// run executes job id and records its outcome.
func (s *Server) run(id string, d *distance.Dense, opts solver.Options) {
	start := time.Now()
	if err := s.jobs.Update(id, func(j *Job) {
		j.State = StateRunning
		j.StartTime = &start
	}); err != nil {
		s.log.Error("run vanished", "job_id", id, "error", err)
		return
	}
	runsActive.Inc()
	defer runsActive.Dec()

	opts.Logger = s.log.With("job_id", id)
	res, err := solver.Solve(d, opts)
	end := time.Now()
	algo := opts.Algo.String()

	if err != nil {
		runsTotal.WithLabelValues(algo, string(StateFailed)).Inc()
		s.log.Error("run failed", "job_id", id, "error", err)
		_ = s.jobs.Update(id, func(j *Job) {
			j.State = StateFailed
			j.Error = err.Error()
			j.EndTime = &end
		})
		return
	}

	runsTotal.WithLabelValues(algo, string(StateCompleted)).Inc()
	runDuration.WithLabelValues(algo).Observe(res.Elapsed.Seconds())
	runIterations.WithLabelValues(algo).Observe(float64(res.Iterations))
	_ = s.jobs.Update(id, func(j *Job) {
		j.State = StateCompleted
		j.Result = &res
		j.EndTime = &end
	})
}
