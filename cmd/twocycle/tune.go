// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/twocycle/tsplib"
	"github.com/katalvlaran/twocycle/tune"
)

var tuneCfg = tune.DefaultConfig()

var tuneCmd = &cobra.Command{
	Use:   "tune <instance.tsp>",
	Short: "Tune the weighted-regret weights with the Mayfly optimizer",
	Args:  cobra.ExactArgs(1),
	RunE:  runTune,
}

func init() {
	tuneCmd.Flags().Float64Var(&tuneCfg.Lower, "lower", tuneCfg.Lower, "Lower bound of both weights")
	tuneCmd.Flags().Float64Var(&tuneCfg.Upper, "upper", tuneCfg.Upper, "Upper bound of both weights")
	tuneCmd.Flags().IntVar(&tuneCfg.Iterations, "iters", tuneCfg.Iterations, "Mayfly iterations")
	tuneCmd.Flags().IntVar(&tuneCfg.PopSize, "pop", tuneCfg.PopSize, "Mayfly population size")
	tuneCmd.Flags().Int64Var(&tuneCfg.Seed, "seed", tuneCfg.Seed, "Random seed")
	rootCmd.AddCommand(tuneCmd)
}

func runTune(cmd *cobra.Command, args []string) error {
	in, err := tsplib.Load(args[0])
	if err != nil {
		return err
	}
	w, cost, err := tune.Weights(in.Dense, tuneCfg)
	if err != nil {
		return err
	}
	logger.Info("tuning finished", "instance", in.Name, "regret", w.Regret, "greedy", w.Greedy, "cost", cost)

	out := struct {
		Instance     string  `json:"instance"`
		RegretWeight float64 `json:"regret_weight"`
		GreedyWeight float64 `json:"greedy_weight"`
		Cost         int     `json:"cost"`
	}{in.Name, w.Regret, w.Greedy, cost}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
