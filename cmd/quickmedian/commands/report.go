package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/browser"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"quickmedian/internal/dataset"
	"quickmedian/internal/report"
)

var reportOpen bool

var reportCmd = &cobra.Command{
	Use:   "report [file]",
	Short: "Write an HTML distribution report for a dataset",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			values []float64
			name   string
			err    error
		)
		if len(args) == 1 {
			values, err = dataset.ReadFile(args[0])
			name = strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
		} else {
			values, err = dataset.Read(os.Stdin)
			name = "stdin"
		}
		if err != nil {
			return err
		}

		path, err := report.Write(cfg.ReportDir, name, values)
		if err != nil {
			return err
		}
		log.Info().Str("path", path).Int("count", len(values)).Msg("Report written")
		fmt.Fprintln(cmd.OutOrStdout(), path)

		if reportOpen {
			if err := browser.OpenFile(path); err != nil {
				log.Warn().Err(err).Msg("Failed to open report in browser")
			}
		}
		return nil
	},
}

func init() {
	reportCmd.Flags().BoolVar(&reportOpen, "open", false, "open the report in the default browser")
	rootCmd.AddCommand(reportCmd)
}
