// ABOUTME: CLI command for starting MCP server.
// ABOUTME: Runs stdio-based MCP server over the configured backend.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/harperreed/lift/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

MCP lets AI assistants drive the progression engine through a
standardized protocol. The server communicates via stdin/stdout and
uses the same storage backend and review workflow as the CLI: analysis
queues changes, nothing lands until applied.

CONFIGURATION:

  Add this to your MCP client config:

  {
    "mcpServers": {
      "lift": {
        "command": "lift",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  analyze_workout        Analyze a logged workout, queue changes
  list_pending_changes   List changes by status
  apply_change           Apply one pending change
  apply_all_changes      Apply everything, oldest workout first
  discard_change         Discard one pending change
  get_progression_state  Current weight and stage per key
  get_history            Applied-change log per key
  import_routine         Preview importing an authored routine
  complete_import        Materialize reviewed import results

AVAILABLE RESOURCES:

  lift://state      Current state plus schedule
  lift://changes    Pending changes
  lift://history    Full history`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(repo, unit)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
