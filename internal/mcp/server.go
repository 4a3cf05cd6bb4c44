// Package mcp exposes the median toolbox as an MCP stdio server, so agent
// clients can run order-statistics queries without shelling out.
package mcp

import (
	"context"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog/log"
)

// Server wraps the MCP stdio server and its registered tools.
type Server struct {
	version string
	impl    *sdk.Server
}

// NewServer creates the MCP server and registers the median tools.
func NewServer(version string) (*Server, error) {
	impl := sdk.NewServer(&sdk.Implementation{
		Name:    "quickmedian",
		Version: version,
	}, nil)

	if err := registerTools(impl); err != nil {
		return nil, err
	}

	return &Server{version: version, impl: impl}, nil
}

// Serve runs the stdio loop until the client disconnects or ctx is done.
func (s *Server) Serve(ctx context.Context) error {
	log.Info().Str("version", s.version).Msg("MCP server starting stdio loop")
	return s.impl.Run(ctx, &sdk.StdioTransport{})
}
