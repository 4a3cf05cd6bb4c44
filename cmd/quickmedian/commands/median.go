package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"quickmedian/internal/dataset"
	"quickmedian/stats"
)

var (
	medianMode     string
	medianInterval float64
)

var medianCmd = &cobra.Command{
	Use:   "median [file...]",
	Short: "Compute the median of numbers read from stdin or files",
	Long: `Reads whitespace- or comma-separated numbers and prints the median.
Without file arguments, numbers are read from stdin. Multiple files are
processed concurrently, one result line per file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		interval := cfg.DefaultInterval
		if cmd.Flags().Changed("interval") {
			interval = medianInterval
		}

		if len(args) == 0 {
			values, err := dataset.Read(os.Stdin)
			if err != nil {
				return err
			}
			result, err := computeVariant(values, medianMode, interval)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatNumber(result))
			return nil
		}

		results := make([]float64, len(args))
		g := new(errgroup.Group)
		g.SetLimit(cfg.MaxParallel)
		for i, path := range args {
			g.Go(func() error {
				values, err := dataset.ReadFile(path)
				if err != nil {
					return err
				}
				result, err := computeVariant(values, medianMode, interval)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				results[i] = result
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
		for i, path := range args {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", path, formatNumber(results[i]))
		}
		return nil
	},
}

func computeVariant(values []float64, mode string, interval float64) (float64, error) {
	switch mode {
	case "median":
		return stats.Median(values)
	case "low":
		return stats.MedianLow(values)
	case "high":
		return stats.MedianHigh(values)
	case "grouped":
		return stats.MedianGrouped(values, interval)
	default:
		return 0, fmt.Errorf("unknown mode %q (expected median, low, high, or grouped)", mode)
	}
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func init() {
	medianCmd.Flags().StringVarP(&medianMode, "mode", "m", "median", "median variant: median, low, high, grouped")
	medianCmd.Flags().Float64VarP(&medianInterval, "interval", "i", 1, "class width for --mode grouped")
	rootCmd.AddCommand(medianCmd)
}
