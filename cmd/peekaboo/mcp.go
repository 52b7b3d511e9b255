// ABOUTME: MCP command running the Model Context Protocol server.
// ABOUTME: Serves tools and resources over stdio.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harperreed/peekaboo/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server (stdio)",
	Long: `Start the Model Context Protocol server over stdio.

Exposes tools for logging and reading session ratings plus resources
with the full program and a progress summary. Add to your MCP client
configuration:

  {
    "mcpServers": {
      "peekaboo": { "command": "peekaboo", "args": ["mcp"] }
    }
  }`,
	RunE: func(cmd *cobra.Command, args []string) error {
		srv, err := mcp.NewServer(repo)
		if err != nil {
			return fmt.Errorf("failed to create MCP server: %w", err)
		}
		return srv.Serve(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
