package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"quickmedian/internal/benchmark"
)

var benchCfg = benchmark.Config{}

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Measure median latency over synthetic datasets",
	Long: `Runs repeated median computations over a generated dataset and prints
the latency distribution as an HdrHistogram percentile table. Shapes: ` +
		strings.Join(benchmark.Shapes(), ", ") + `.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return benchmark.Run(cmd.OutOrStdout(), benchCfg)
	},
}

func init() {
	benchCmd.Flags().IntVarP(&benchCfg.Size, "size", "n", 100_000, "dataset size")
	benchCmd.Flags().IntVarP(&benchCfg.Rounds, "rounds", "r", 100, "number of median computations")
	benchCmd.Flags().StringVarP(&benchCfg.Shape, "shape", "s", benchmark.ShapeUniform, "dataset shape")
	benchCmd.Flags().Uint64Var(&benchCfg.Seed, "seed", 1, "generator seed")
	rootCmd.AddCommand(benchCmd)
}
