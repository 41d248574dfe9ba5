// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/twocycle/solver"
)

// Solver flags shared by run and bench. Defaults mirror the config defaults;
// only flags set on the command line override the loaded configuration.
var (
	flagAlgo            string
	flagInitial         string
	flagSeed            int64
	flagTimeLimit       = solver.DefaultTimeLimit
	flagIterations      int
	flagMaxIterations   int
	flagNMoves          int
	flagDestroyFraction float64
	flagPopSize         int
	flagMinDiff         int
	flagCandidateK      int
	flagSearch          string
	flagWithLocal       bool
	flagWorkers         int
	flagRegretWeight    float64
	flagGreedyWeight    float64
)

func addSolverFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&flagAlgo, "algo", "msls", "Algorithm: msls, ils, lns, lnsa, hae")
	f.StringVar(&flagInitial, "initial", "random", "Initial solution of ils/lns/lnsa: random, weighted-regret")
	f.Int64Var(&flagSeed, "seed", 1, "Random seed")
	f.DurationVar(&flagTimeLimit, "time-limit", solver.DefaultTimeLimit, "Time limit of timed algorithms")
	f.IntVar(&flagIterations, "iterations", solver.DefaultIterations, "MSLS restarts")
	f.IntVar(&flagMaxIterations, "max-iterations", 0, "Iteration cap of timed algorithms (0 = none)")
	f.IntVar(&flagNMoves, "n-moves", solver.DefaultNMoves, "ILS perturbation strength")
	f.Float64Var(&flagDestroyFraction, "destroy-fraction", solver.DefaultDestroyFraction, "LNS/HAE removal fraction")
	f.IntVar(&flagPopSize, "pop", solver.DefaultPopSize, "HAE population size")
	f.IntVar(&flagMinDiff, "min-diff", solver.DefaultMinDiff, "HAE minimal cost difference between members")
	f.IntVar(&flagCandidateK, "candidate-k", solver.DefaultCandidateK, "Candidate list size of local search")
	f.StringVar(&flagSearch, "search", "candidate", "Local search: candidate, steepest, greedy, move-list")
	f.BoolVar(&flagWithLocal, "with-local", true, "Apply local search to HAE children")
	f.IntVar(&flagWorkers, "workers", 1, "Concurrent HAE children")
	f.Float64Var(&flagRegretWeight, "regret-weight", 1, "Weighted-regret regret weight")
	f.Float64Var(&flagGreedyWeight, "greedy-weight", 1, "Weighted-regret greedy weight")
}

// solverOptions overlays the changed solver flags on cfg and converts the
// result into solver.Options.
func solverOptions(cmd *cobra.Command) (solver.Options, error) {
	var (
		f = cmd.Flags()
		s = &cfg.Solver
	)
	if f.Changed("algo") {
		s.Algo = flagAlgo
	}
	if f.Changed("initial") {
		s.Initial = flagInitial
	}
	if f.Changed("seed") {
		s.Seed = flagSeed
	}
	if f.Changed("time-limit") {
		s.TimeLimit = flagTimeLimit
	}
	if f.Changed("iterations") {
		s.Iterations = flagIterations
	}
	if f.Changed("max-iterations") {
		s.MaxIterations = flagMaxIterations
	}
	if f.Changed("n-moves") {
		s.NMoves = flagNMoves
	}
	if f.Changed("destroy-fraction") {
		s.DestroyFraction = flagDestroyFraction
	}
	if f.Changed("pop") {
		s.PopSize = flagPopSize
	}
	if f.Changed("min-diff") {
		s.MinDiff = flagMinDiff
	}
	if f.Changed("candidate-k") {
		s.CandidateK = flagCandidateK
	}
	if f.Changed("search") {
		s.Search = flagSearch
	}
	if f.Changed("with-local") {
		s.WithLocal = flagWithLocal
	}
	if f.Changed("workers") {
		s.Workers = flagWorkers
	}
	if f.Changed("regret-weight") {
		s.RegretWeight = flagRegretWeight
	}
	if f.Changed("greedy-weight") {
		s.GreedyWeight = flagGreedyWeight
	}
	if err := cfg.Validate(); err != nil {
		return solver.Options{}, err
	}

	opts, err := cfg.SolverOptions()
	if err != nil {
		return solver.Options{}, err
	}
	opts.Logger = logger

	return opts, nil
}
