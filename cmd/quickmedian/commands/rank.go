package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"quickmedian/internal/dataset"
	"quickmedian/selection"
)

var rankK int

var rankCmd = &cobra.Command{
	Use:   "rank [file]",
	Short: "Find the k-th smallest value (0-indexed) of a dataset",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			values []float64
			err    error
		)
		if len(args) == 1 {
			values, err = dataset.ReadFile(args[0])
		} else {
			values, err = dataset.Read(os.Stdin)
		}
		if err != nil {
			return err
		}

		result, err := selection.Select(values, rankK)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), formatNumber(result))
		return nil
	},
}

func init() {
	rankCmd.Flags().IntVarP(&rankK, "rank", "k", 0, "zero-based rank to select")
	rootCmd.AddCommand(rankCmd)
}
