// SPDX-License-Identifier: MIT

// Package tune - Config and the Mayfly weight search.
package tune

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/mayfly"

	"github.com/katalvlaran/twocycle/construct"
	"github.com/katalvlaran/twocycle/distance"
)

// Config bounds the Mayfly search.
type Config struct {
	Lower      float64 // lower bound of both weights
	Upper      float64 // upper bound of both weights
	Iterations int
	PopSize    int
	Seed       int64
}

// DefaultConfig searches [0, 2]² with 20 mayflies for 20 iterations.
func DefaultConfig() Config {
	return Config{Lower: 0, Upper: 2, Iterations: 20, PopSize: 20, Seed: 1}
}

// Weights returns the best weights found and the construction cost they
// achieve on d.
func Weights(d *distance.Dense, cfg Config) (construct.Weights, int, error) {
	if d == nil {
		return construct.Weights{}, 0, distance.ErrNilMatrix
	}
	if !(cfg.Lower < cfg.Upper) || math.IsInf(cfg.Upper-cfg.Lower, 0) {
		return construct.Weights{}, 0, fmt.Errorf("bounds [%g, %g]: %w", cfg.Lower, cfg.Upper, ErrBadConfig)
	}
	if cfg.Iterations < 1 {
		return construct.Weights{}, 0, fmt.Errorf("iterations=%d: %w", cfg.Iterations, ErrBadConfig)
	}
	if cfg.PopSize < 2 {
		return construct.Weights{}, 0, fmt.Errorf("pop_size=%d: %w", cfg.PopSize, ErrBadConfig)
	}

	clamp := func(x float64) float64 { return math.Max(cfg.Lower, math.Min(cfg.Upper, x)) }
	evaluate := func(x []float64) (construct.Weights, int, error) {
		w := construct.Weights{Regret: clamp(x[0]), Greedy: clamp(x[1])}
		s, err := construct.Regret{Weights: w, Start: construct.StartMaxPair}.Build(d, nil)
		if err != nil {
			return w, 0, err
		}
		return w, s.Cost(d), nil
	}

	config := mayfly.NewDefaultConfig()
	config.ObjectiveFunc = func(x []float64) float64 {
		_, cost, err := evaluate(x)
		if err != nil {
			return math.Inf(1)
		}
		return float64(cost)
	}
	config.ProblemSize = 2
	config.MaxIterations = cfg.Iterations
	config.NPop = cfg.PopSize
	config.LowerBound = cfg.Lower
	config.UpperBound = cfg.Upper
	config.Rand = rand.New(rand.NewSource(cfg.Seed))

	result, err := mayfly.Optimize(config)
	if err != nil {
		return construct.Weights{}, 0, fmt.Errorf("tune: mayfly: %w", err)
	}

	return evaluate(result.GlobalBest.Position)
}
