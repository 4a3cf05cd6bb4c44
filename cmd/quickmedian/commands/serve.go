package commands

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"quickmedian/internal/mcp"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server on stdio",
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(Version)
		if err != nil {
			log.Error().Err(err).Msg("Failed to initialize MCP server")
			return err
		}
		return server.Serve(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
