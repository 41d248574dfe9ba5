// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/twocycle/render"
	"github.com/katalvlaran/twocycle/solver"
	"github.com/katalvlaran/twocycle/tsplib"
)

var (
	runTrace     bool
	runPlot      string
	runPlotTrace string
)

var runCmd = &cobra.Command{
	Use:   "run <instance.tsp>",
	Short: "Solve one instance with one algorithm",
	Long:  `Runs a single solver on a TSPLIB EUC_2D/CEIL_2D instance and prints the result as JSON.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runSolve,
}

func init() {
	addSolverFlags(runCmd)
	runCmd.Flags().BoolVar(&runTrace, "trace", false, "Include the cost of every evaluated candidate")
	runCmd.Flags().StringVar(&runPlot, "plot", "", "Write a PNG of the final cycles to this file")
	runCmd.Flags().StringVar(&runPlotTrace, "plot-trace", "", "Write a PNG of the cost trace to this file (implies --trace)")
	rootCmd.AddCommand(runCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	in, err := tsplib.Load(args[0])
	if err != nil {
		return err
	}
	opts, err := solverOptions(cmd)
	if err != nil {
		return err
	}
	opts.RecordTrace = runTrace || runPlotTrace != ""

	slog.Info("starting run", "instance", in.Name, "n", in.Len(), "algo", opts.Algo.String(), "seed", opts.Seed)
	res, err := solver.Solve(in, opts)
	if err != nil {
		return err
	}

	title := fmt.Sprintf("%s %s cost=%d", in.Name, res.Algo, res.Cost)
	if runPlot != "" {
		if err = writeFile(runPlot, func(f *os.File) error {
			return render.Solution(f, title, in.Points, res.Solution)
		}); err != nil {
			return err
		}
	}
	if runPlotTrace != "" {
		if err = writeFile(runPlotTrace, func(f *os.File) error {
			return render.Trace(f, title, res.Trace)
		}); err != nil {
			return err
		}
	}
	if !runTrace {
		res.Trace = nil
	}

	out := struct {
		Instance string `json:"instance"`
		N        int    `json:"n"`
		solver.Result
	}{Instance: in.Name, N: in.Len(), Result: res}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// writeFile creates path and hands it to fn.
func writeFile(path string, fn func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = fn(f); err != nil {
		_ = f.Close()
		return err
	}
	slog.Info("wrote image", "path", path)

	return f.Close()
}
