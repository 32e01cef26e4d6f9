package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "vestibule-cli",
	Short: "Vestibule CLI tool",
	Long: `Vestibule CLI is a command-line companion for the Vestibule sign-in service.

Available commands:
  topics       Discover the event topics the application uses
  check-email  Check an address against the sign-in form's email rule

Use "vestibule-cli [command] --help" for more information about a specific command.`,
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
