package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"quickmedian/internal/dataset"
)

var summaryCmd = &cobra.Command{
	Use:   "summary [file...]",
	Short: "Print an order-statistics summary of a dataset as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			values, err := dataset.Read(os.Stdin)
			if err != nil {
				return err
			}
			sum, err := dataset.Summarize(values)
			if err != nil {
				return err
			}
			return printJSON(cmd, sum)
		}

		summaries := make(map[string]dataset.Summary, len(args))
		g := new(errgroup.Group)
		g.SetLimit(cfg.MaxParallel)
		results := make([]dataset.Summary, len(args))
		for i, path := range args {
			g.Go(func() error {
				values, err := dataset.ReadFile(path)
				if err != nil {
					return err
				}
				sum, err := dataset.Summarize(values)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				results[i] = sum
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
		for i, path := range args {
			summaries[path] = results[i]
		}
		return printJSON(cmd, summaries)
	},
}

func printJSON(cmd *cobra.Command, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}
