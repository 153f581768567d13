package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/foldcfg/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server so an AI assistant can build a
document with the same rules as the form builder.

Tools: add_protein, add_ligand, add_contact, finalize_constraint,
discard_pending, preview_yaml, generate_yaml.
Resources: foldcfg://document, foldcfg://registry.

By default the server communicates over stdio using JSON-RPC.
Use --port to start an HTTP server instead.

Examples:
  # Stdio mode (default)
  foldcfg mcp serve

  # HTTP mode (for MCP Inspector, remote access)
  foldcfg mcp serve --port 8080`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

// newMCPServer builds the server; replaced in tests.
var newMCPServer = mcp.NewServer

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	builder, err := builderService()
	if err != nil {
		return err
	}

	server, err := newMCPServer(&mcp.Ports{Builder: builder})
	if err != nil {
		return err
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.ErrOrStderr(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
