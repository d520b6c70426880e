package cli

import (
	"fmt"
	"log"

	"github.com/relab/quorumsim/plotting"
	"github.com/relab/quorumsim/simulation"
	"github.com/spf13/cobra"
)

var (
	iterations     int
	numLayers      int
	quorumSize     int
	ratio          float64
	fixedCorrupted int
	randSeed       int64
	plotDest       string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Estimate the attack success probability per corruption threshold.",
	Long: `The simulate command runs random corruption scenarios against a layered
quorum system and prints the fraction of scenarios in which at least one
quorum reached each corruption threshold, from a simple majority up to the
full quorum size.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSimulation()
	},
}

func init() {
	rootCmd.AddCommand(simulateCmd)

	simulateCmd.Flags().IntVar(&iterations, "iterations", 10000, "Number of scenarios to simulate.")
	simulateCmd.Flags().IntVar(&numLayers, "layers", 10, "Number of layers (quorums).")
	simulateCmd.Flags().IntVar(&quorumSize, "quorum-size", 11, "Number of validators per quorum.")
	simulateCmd.Flags().Float64Var(&ratio, "ratio", 0.5, "Per-validator corruption probability.")
	simulateCmd.Flags().IntVar(&fixedCorrupted, "fixed-corrupted", -1, "Corrupt this exact number of validators every scenario instead of drawing from the binomial distribution.")
	simulateCmd.Flags().Int64Var(&randSeed, "seed", 0, "Random seed (defaults to current timestamp).")
	simulateCmd.Flags().StringVar(&plotDest, "plot", "", "File to write a bar chart to (format by extension).")
}

func runSimulation() error {
	cfg := simulation.Config{
		Iterations: iterations,
		Layers:     numLayers,
		QuorumSize: quorumSize,
		Ratio:      ratio,
		Seed:       randSeed,
	}

	var (
		sim *simulation.Simulator
		err error
	)
	if fixedCorrupted >= 0 {
		sim, err = simulation.NewWithSampler(cfg, simulation.FixedSampler(fixedCorrupted))
	} else {
		sim, err = simulation.New(cfg)
	}
	checkf("failed to create simulator: %v", err)

	result := sim.Run()

	for i, t := range result.Thresholds {
		fmt.Printf("( %d, %g )\n", t, result.AttackSuccessProb[i])
	}

	if plotDest != "" {
		p := plotting.NewAttackSuccessPlot(result)
		checkf("failed to plot results: %v", p.Plot(plotDest))
	}

	return nil
}

func checkf(format string, args ...interface{}) {
	for _, arg := range args {
		if err, _ := arg.(error); err != nil {
			log.Fatalf(format, args...)
		}
	}
}
