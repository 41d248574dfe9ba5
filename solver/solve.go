// SPDX-License-Identifier: MIT

// Package solver - Solve entry point, Result and the shared driver engine.
package solver

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/katalvlaran/twocycle/construct"
	"github.com/katalvlaran/twocycle/distance"
	"github.com/katalvlaran/twocycle/search"
	"github.com/katalvlaran/twocycle/solution"
)

// Result is the outcome of one run, as plain values.
type Result struct {
	Algo       Algo               `json:"algo"`
	Solution   *solution.Solution `json:"-"`
	A          []int              `json:"a"`
	B          []int              `json:"b"`
	Cost       int                `json:"cost"`
	Elapsed    time.Duration      `json:"elapsed"`
	Iterations int                `json:"iterations"`
	Seed       int64              `json:"seed"`

	// Trace holds the cost of every evaluated candidate (RecordTrace only):
	// each local-search run for MSLS, each perturbed candidate for ILS/LNS/
	// LNSa, each child for HAE.
	Trace []int `json:"trace,omitempty"`

	// Population holds the final HAE population costs in slot order.
	Population []int `json:"population,omitempty"`
}

// Solve validates the instance and options, then runs opts.Algo.
//
// Errors: distance.Validate sentinels for the instance, ErrBadOption /
// ErrUnknownAlgo / ErrUnknownInitial for options.
func Solve(m distance.Matrix, opts Options) (Result, error) {
	if err := distance.Validate(m); err != nil {
		return Result{}, err
	}
	d, err := distance.Flatten(m)
	if err != nil {
		return Result{}, err
	}
	if err = validateOptions(opts, d.Len()); err != nil {
		return Result{}, err
	}

	e, err := newEngine(d, opts)
	if err != nil {
		return Result{}, err
	}

	var (
		best  *solution.Solution
		cost  int
		iters int
	)
	switch opts.Algo {
	case MSLS:
		best, cost, iters, err = e.msls()
	case ILS:
		best, cost, iters, err = e.ils()
	case LNS:
		best, cost, iters, err = e.lns(true)
	case LNSa:
		best, cost, iters, err = e.lns(false)
	case HAE:
		best, cost, iters, err = e.hae()
	}
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", opts.Algo, err)
	}

	res := Result{
		Algo:       opts.Algo,
		Solution:   best,
		Cost:       cost,
		Elapsed:    time.Since(e.start),
		Iterations: iters,
		Seed:       opts.Seed,
		Trace:      e.trace,
		Population: e.population,
	}
	res.A, res.B = best.Cycles()

	e.log.Info("run finished",
		slog.String("algo", opts.Algo.String()),
		slog.Int("cost", cost),
		slog.Int("iterations", iters),
		slog.Duration("elapsed", res.Elapsed),
	)

	return res, nil
}

// engine bundles the per-run state shared by every driver.
type engine struct {
	d      *distance.Dense
	ls     *search.LocalSearch
	regret construct.Regret
	opts   Options
	rng    *rand.Rand
	log    *slog.Logger
	start  time.Time

	trace      []int
	population []int
}

func newEngine(d *distance.Dense, opts Options) (*engine, error) {
	cand, err := distance.NewCandidateList(d, opts.CandidateK)
	if err != nil {
		return nil, err
	}
	ls, err := search.New(d, cand)
	if err != nil {
		return nil, err
	}
	if ls, err = ls.WithVariant(opts.Search); err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &engine{
		d:      d,
		ls:     ls,
		regret: construct.Regret{Weights: opts.Weights, Start: construct.StartFarthest},
		opts:   opts,
		rng:    rngFromSeed(opts.Seed),
		log:    logger.With(slog.String("algo", opts.Algo.String())),
		start:  time.Now(),
	}, nil
}

// running is the loop-head stop check of timed drivers: the time limit
// measured on the monotonic clock, plus the optional iteration cap.
func (e *engine) running(iter int) bool {
	if e.opts.MaxIterations > 0 && iter >= e.opts.MaxIterations {
		return false
	}
	return time.Since(e.start) < e.opts.TimeLimit
}

// record appends a candidate cost to the trace when enabled.
func (e *engine) record(cost int) {
	if e.opts.RecordTrace {
		e.trace = append(e.trace, cost)
	}
}

// improved logs a new incumbent.
func (e *engine) improved(cost, iter int) {
	e.log.Debug("new best", slog.Int("cost", cost), slog.Int("iteration", iter))
}

// randomLocalOptimum draws a random solution from rng and refines it.
func (e *engine) randomLocalOptimum(rng *rand.Rand) (*solution.Solution, int, error) {
	s, err := solution.Random(e.d.Len(), rng)
	if err != nil {
		return nil, 0, err
	}
	st := e.ls.Run(s)

	return s, st.FinalCost, nil
}
