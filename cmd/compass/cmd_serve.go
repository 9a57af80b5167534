package main

import (
	"context"

	"github.com/spf13/cobra"

	"compass/internal/logging"
	mcpserver "compass/internal/mcp"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

var serveFlags struct {
	catalog string
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the scoring engine over MCP on stdio",
	Long: `Starts an MCP server over stdin/stdout. Agent clients connect via their
MCP configuration and call the scoring tools directly.

The server monitors for parent process death. When the client disconnects,
the server self-terminates to prevent zombie processes.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveFlags.catalog, "catalog", "", "Catalogue file (default: embedded catalogue)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cat, err := loadCatalog(serveFlags.catalog)
	if err != nil {
		return err
	}
	srv, err := mcpserver.NewServer(cat)
	if err != nil {
		return err
	}
	defer srv.Shutdown()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	mcpserver.WatchParent(ctx, cancel)

	logging.New("mcp").Info("starting compass MCP server over stdio", "catalog", cat.Version)
	return srv.MCPServer.Run(ctx, &sdkmcp.StdioTransport{})
}
