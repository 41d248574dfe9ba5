// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/twocycle/experiment"
	"github.com/katalvlaran/twocycle/tsplib"
)

var (
	benchTrials  int
	benchWorkers int
	benchSuite   bool
)

var benchCmd = &cobra.Command{
	Use:   "bench <instance.tsp>",
	Short: "Repeat runs and summarize their costs",
	Long: `Runs independent trials of one algorithm, or with --suite the whole
comparison: MSLS first, its mean wall time then bounds every other algorithm.`,
	Args: cobra.ExactArgs(1),
	RunE: runBench,
}

func init() {
	addSolverFlags(benchCmd)
	benchCmd.Flags().IntVar(&benchTrials, "trials", 10, "Independent trials per algorithm")
	benchCmd.Flags().IntVar(&benchWorkers, "parallel", 4, "Trials running at once")
	benchCmd.Flags().BoolVar(&benchSuite, "suite", false, "Run the full algorithm comparison")
	rootCmd.AddCommand(benchCmd)
}

func runBench(cmd *cobra.Command, args []string) error {
	in, err := tsplib.Load(args[0])
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("trials") {
		cfg.Experiment.Trials = benchTrials
	}
	if cmd.Flags().Changed("parallel") {
		cfg.Experiment.Workers = benchWorkers
	}
	opts, err := solverOptions(cmd)
	if err != nil {
		return err
	}

	var summaries []experiment.Summary
	if benchSuite {
		summaries, err = experiment.Suite(in, opts, cfg.Experiment.Trials, cfg.Experiment.Workers)
	} else {
		var s experiment.Summary
		s, err = experiment.Run(in, opts, cfg.Experiment.Trials, cfg.Experiment.Workers)
		summaries = []experiment.Summary{s}
	}
	if err != nil {
		return err
	}
	for i := range summaries {
		summaries[i].Label = in.Name + "/" + summaries[i].Label
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(summaries)
}
