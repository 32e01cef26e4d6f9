package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sagelane/vestibule/internal/validation"
)

// checkEmailCmd represents the check-email command
var checkEmailCmd = &cobra.Command{
	Use:   "check-email [address]",
	Short: "Check an address against the sign-in form's email rule",
	Long: `Check whether an address would pass the sign-in form's client-side
email validation. The rule requires a local part, an @, and a domain
containing a dot, with no whitespace anywhere.

Examples:
  vestibule-cli check-email user@example.com
  vestibule-cli check-email not-an-email`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		address := args[0]
		if validation.IsValidEmail(address) {
			fmt.Printf("✅ %q is a valid email address\n", address)
			return
		}

		fmt.Printf("❌ %q is not a valid email address\n", address)
		os.Exit(1)
	},
}

func init() {
	rootCmd.AddCommand(checkEmailCmd)
}
