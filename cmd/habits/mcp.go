// ABOUTME: CLI command for starting MCP server.
// ABOUTME: Runs stdio-based MCP server for Claude integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/harperreed/habits/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

MCP allows AI assistants like Claude to interact with your habits through
a standardized protocol. The server communicates via stdin/stdout.

CLAUDE DESKTOP CONFIGURATION:

  Add this to your Claude Desktop config (claude_desktop_config.json):

  {
    "mcpServers": {
      "habits": {
        "command": "habits",
        "args": ["mcp"]
      }
    }
  }

  On macOS, the config is at:
    ~/Library/Application Support/Claude/claude_desktop_config.json

AVAILABLE TOOLS:

  add_habit        Create a new habit
  list_habits      List habits with progress and streaks
  delete_habit     Delete a habit by id or name
  add_progress     Record progress for a habit
  start_session    Start a timed session (minutes habits)
  end_session      End a timed session
  habit_status     Current period, progress, and streak
  past_streaks     Past streaks and breaks for a habit
  max_streak       The longest streak
  max_break        The longest break
  completion_rate  Per-habit completion rates

AVAILABLE RESOURCES:

  habits://list     All habits with their current state
  habits://streaks  Longest streak and break per habit`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server := mcp.NewServer(store)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Handle shutdown signals
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
