package main

import (
	"github.com/aretw0/drills/internal/cli"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Exposes the scripts as MCP tools taking a single "args" string.

Supported Transports:
- stdio (default): Uses Standard Input/Output. Ideal for local process integration.
- sse: Uses Server-Sent Events over HTTP. Ideal for remote agents or debuggers.
  Binds to loopback by default, and leaves out the scripts that read or
  write local files unless --allow-files is set.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := cli.Build(runOptions(cmd))
		if err != nil {
			return err
		}
		transport, _ := cmd.Flags().GetString("transport")
		addr, _ := cmd.Flags().GetString("listen")
		allowFiles, _ := cmd.Flags().GetBool("allow-files")
		return cli.ServeMCP(cmd.Context(), d, transport, addr, allowFiles)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)

	mcpCmd.Flags().String("transport", "stdio", "Transport protocol to use: 'stdio' or 'sse'")
	mcpCmd.Flags().String("listen", "127.0.0.1:8081", "Address to listen on (only for SSE)")
	mcpCmd.Flags().Bool("allow-files", false, "Expose the file reading and writing scripts over SSE")
}
