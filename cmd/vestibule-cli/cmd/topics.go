package cmd

import (
	"github.com/spf13/cobra"
)

// topicsCmd represents the topics command
var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "Manage and explore the application's event topics",
	Long: `The topics command provides tools for discovering the topics the
application uses for event-driven communication between modules.

Available subcommands:
  list  List all registered topics

Examples:
  # List all topics
  vestibule-cli topics list

  # List all topics in JSON format
  vestibule-cli topics list --format json

Use "vestibule-cli topics [command] --help" for more information about a specific command.`,
}

func init() {
	rootCmd.AddCommand(topicsCmd)
}
