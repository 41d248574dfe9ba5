// SPDX-License-Identifier: MIT

// Package experiment - batch runner and summary statistics.
package experiment

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sourcegraph/conc/pool"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/twocycle/distance"
	"github.com/katalvlaran/twocycle/solver"
)

// Summary aggregates the trials of one configuration.
type Summary struct {
	ID             string        `json:"id"`
	Label          string        `json:"label"`
	Algo           solver.Algo   `json:"algo"`
	Trials         int           `json:"trials"`
	MinCost        int           `json:"min_cost"`
	MaxCost        int           `json:"max_cost"`
	MeanCost       float64       `json:"mean_cost"`
	StdDevCost     float64       `json:"stddev_cost"`
	MeanElapsed    time.Duration `json:"mean_elapsed"`
	MeanIterations float64       `json:"mean_iterations"`
	TimeLimit      time.Duration `json:"time_limit,omitempty"`
	Costs          []int         `json:"costs"`
	Best           solver.Result `json:"best"`
}

// Run executes trials independent runs of opts on up to workers goroutines.
//
// Complexity: trials × one Solve; memory O(trials·n) for the kept results.
func Run(m distance.Matrix, opts solver.Options, trials, workers int) (Summary, error) {
	if trials < 1 {
		return Summary{}, fmt.Errorf("%d: %w", trials, ErrBadTrials)
	}
	if workers < 1 {
		workers = 1
	}
	d, err := distance.Flatten(m)
	if err != nil {
		return Summary{}, err
	}

	var (
		results = make([]solver.Result, trials)
		p       = pool.New().WithErrors().WithMaxGoroutines(workers)
	)
	for i := 0; i < trials; i++ {
		trial := opts
		trial.Seed = solver.DeriveSeed(opts.Seed, uint64(i))
		p.Go(func() error {
			res, err := solver.Solve(d, trial)
			if err != nil {
				return fmt.Errorf("trial %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}
	if err = p.Wait(); err != nil {
		return Summary{}, err
	}

	for i, res := range results {
		if err = check(d, res); err != nil {
			return Summary{}, fmt.Errorf("trial %d: %w", i, err)
		}
	}

	return summarize(opts.Algo, results), nil
}

// check re-validates a trial result against the instance.
func check(d *distance.Dense, res solver.Result) error {
	if res.Solution == nil {
		return fmt.Errorf("no solution: %w", ErrInvalidResult)
	}
	if err := res.Solution.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidResult, err)
	}
	if got := res.Solution.Cost(d); got != res.Cost {
		return fmt.Errorf("reported cost %d, recomputed %d: %w", res.Cost, got, ErrInvalidResult)
	}
	return nil
}

// summarize folds the per-trial results; the lowest trial index wins cost ties.
func summarize(algo solver.Algo, results []solver.Result) Summary {
	var (
		costs   = make([]float64, len(results))
		elapsed time.Duration
		iters   int
		best    int
	)
	sum := Summary{
		ID:     uuid.New().String(),
		Label:  algo.String(),
		Algo:   algo,
		Trials: len(results),
		Costs:  make([]int, len(results)),
	}
	for i, res := range results {
		costs[i] = float64(res.Cost)
		sum.Costs[i] = res.Cost
		elapsed += res.Elapsed
		iters += res.Iterations
		if res.Cost < results[best].Cost {
			best = i
		}
		if i == 0 || res.Cost > sum.MaxCost {
			sum.MaxCost = res.Cost
		}
	}

	sum.Best = results[best]
	sum.MinCost = sum.Best.Cost
	sum.MeanCost = stat.Mean(costs, nil)
	if len(costs) > 1 {
		sum.StdDevCost = stat.StdDev(costs, nil)
	}
	sum.MeanElapsed = elapsed / time.Duration(len(results))
	sum.MeanIterations = float64(iters) / float64(len(results))

	return sum
}
