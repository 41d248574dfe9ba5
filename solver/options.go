// SPDX-License-Identifier: MIT

// Package solver - Options, defaults and fail-fast validation.
package solver

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/twocycle/construct"
	"github.com/katalvlaran/twocycle/distance"
	"github.com/katalvlaran/twocycle/search"
)

// Default knob values.
const (
	DefaultCandidateK      = distance.DefaultCandidateK
	DefaultPopSize         = 20
	DefaultMinDiff         = 40
	DefaultDestroyFraction = 0.20
	DefaultNMoves          = 10
	DefaultIterations      = 200
	DefaultTimeLimit       = time.Second
)

// Options configures one Solve call. Start from DefaultOptions.
type Options struct {
	Algo Algo `json:"algo"`

	// CandidateK is the per-vertex candidate list size of local search.
	CandidateK int `json:"candidate_k"`

	// Search is the local-search variant every driver refines with.
	Search search.Variant `json:"search"`

	// PopSize and MinDiff drive the HAE population.
	PopSize int `json:"pop_size"`
	MinDiff int `json:"min_diff"`

	// DestroyFraction is the removal ratio of LNS/LNSa and the extra random
	// removal of HAE recombination.
	DestroyFraction float64 `json:"destroy_fraction"`

	// NMoves is the ILS perturbation strength.
	NMoves int `json:"n_moves"`

	// Iterations stops MSLS; TimeLimit stops every other driver.
	Iterations int           `json:"iterations"`
	TimeLimit  time.Duration `json:"time_limit"`

	// MaxIterations optionally caps timed drivers (0 = no cap).
	MaxIterations int `json:"max_iterations"`

	// WithLocal enables local search on HAE children.
	WithLocal bool `json:"with_local"`

	// Seed drives every random choice; 0 selects a fixed default stream.
	Seed int64 `json:"seed"`

	// Weights is the weighted-regret score used for repair.
	Weights construct.Weights `json:"weights"`

	// Initial selects the first solution of ILS, LNS and LNSa.
	Initial Initial `json:"initial"`

	// Workers > 1 evaluates HAE children concurrently.
	Workers int `json:"workers"`

	// RecordTrace stores the cost of every evaluated candidate in Result.Trace.
	RecordTrace bool `json:"record_trace"`

	// Logger receives progress records; nil uses slog.Default().
	Logger *slog.Logger `json:"-"`
}

// DefaultOptions returns the documented defaults with Algo = MSLS.
func DefaultOptions() Options {
	return Options{
		Algo:            MSLS,
		CandidateK:      DefaultCandidateK,
		PopSize:         DefaultPopSize,
		MinDiff:         DefaultMinDiff,
		DestroyFraction: DefaultDestroyFraction,
		NMoves:          DefaultNMoves,
		Iterations:      DefaultIterations,
		TimeLimit:       DefaultTimeLimit,
		WithLocal:       true,
		Weights:         construct.DefaultWeights,
		Initial:         InitialRandom,
		Search:          search.CandidateSteepest,
		Workers:         1,
	}
}

// Validate reports whether opts can drive a run on an n-vertex instance.
func (o Options) Validate(n int) error { return validateOptions(o, n) }

// validateOptions checks the fields relevant to opts.Algo on an n-vertex
// instance. Every failure wraps ErrBadOption with the offending field.
func validateOptions(opts Options, n int) error {
	bad := func(field string, v any) error {
		return fmt.Errorf("%s=%v: %w", field, v, ErrBadOption)
	}

	if int(opts.Algo) >= len(algoNames) {
		return fmt.Errorf("%d: %w", opts.Algo, ErrUnknownAlgo)
	}
	if opts.CandidateK < 1 {
		return bad("candidate_k", opts.CandidateK)
	}
	if opts.MaxIterations < 0 {
		return bad("max_iterations", opts.MaxIterations)
	}
	if int(opts.Initial) >= len(initialNames) {
		return fmt.Errorf("%d: %w", opts.Initial, ErrUnknownInitial)
	}
	if int(opts.Search) >= len(search.Variants()) {
		return bad("search", opts.Search)
	}

	if !opts.Algo.Timed() {
		if opts.Iterations < 1 {
			return bad("iterations", opts.Iterations)
		}
		return nil
	}
	if opts.TimeLimit <= 0 {
		return bad("time_limit", opts.TimeLimit)
	}

	switch opts.Algo {
	case ILS:
		if opts.NMoves < 1 {
			return bad("n_moves", opts.NMoves)
		}
	case LNS, LNSa, HAE:
		if opts.DestroyFraction <= 0 || opts.DestroyFraction >= 1 || int(opts.DestroyFraction*float64(n)) < 1 {
			return bad("destroy_fraction", opts.DestroyFraction)
		}
	}

	if opts.Algo == HAE {
		if opts.PopSize < 2 {
			return bad("pop_size", opts.PopSize)
		}
		if opts.MinDiff < 0 {
			return bad("min_diff", opts.MinDiff)
		}
		if opts.Workers < 0 {
			return bad("workers", opts.Workers)
		}
	}

	return nil
}
