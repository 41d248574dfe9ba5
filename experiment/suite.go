// SPDX-License-Identifier: MIT

// Package experiment - equal-budget comparison of all drivers.
package experiment

import (
	"log/slog"

	"github.com/katalvlaran/twocycle/distance"
	"github.com/katalvlaran/twocycle/solver"
)

// Suite runs MSLS with base, then ILS, LNS, LNSa, HAE+LS and HAE with
// TimeLimit set to the MSLS mean wall time. Summaries are returned in that
// order, labelled "msls", "ils", "lns", "lnsa", "hae+ls" and "hae".
func Suite(m distance.Matrix, base solver.Options, trials, workers int) ([]Summary, error) {
	logger := base.Logger
	if logger == nil {
		logger = slog.Default()
	}

	msls := base
	msls.Algo = solver.MSLS
	first, err := Run(m, msls, trials, workers)
	if err != nil {
		return nil, err
	}
	out := []Summary{first}
	logSummary(logger, first)

	limit := first.MeanElapsed
	if limit <= 0 {
		limit = 1
	}
	steps := []struct {
		label     string
		algo      solver.Algo
		withLocal bool
	}{
		{"ils", solver.ILS, true},
		{"lns", solver.LNS, true},
		{"lnsa", solver.LNSa, true},
		{"hae+ls", solver.HAE, true},
		{"hae", solver.HAE, false},
	}
	for _, step := range steps {
		opts := base
		opts.Algo = step.algo
		opts.WithLocal = step.withLocal
		opts.TimeLimit = limit

		sum, err := Run(m, opts, trials, workers)
		if err != nil {
			return out, err
		}
		sum.Label = step.label
		sum.TimeLimit = limit
		out = append(out, sum)
		logSummary(logger, sum)
	}

	return out, nil
}

func logSummary(logger *slog.Logger, s Summary) {
	logger.Info("experiment finished",
		slog.String("id", s.ID),
		slog.String("label", s.Label),
		slog.Int("trials", s.Trials),
		slog.Int("min", s.MinCost),
		slog.Float64("mean", s.MeanCost),
		slog.Int("max", s.MaxCost),
		slog.Duration("mean_elapsed", s.MeanElapsed),
	)
}
