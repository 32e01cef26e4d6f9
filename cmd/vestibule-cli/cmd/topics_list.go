package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	// Importing the auth package registers its topics as a side effect.
	_ "github.com/sagelane/vestibule/internal/auth"
	"github.com/sagelane/vestibule/internal/topics"
)

var listOutputFormat string

// topicsListCmd represents the topics list command
var topicsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all registered topics",
	Long: `List every topic registered by the application's packages. This helps
developers discover what events are available to subscribe to.

Examples:
  vestibule-cli topics list                # List all topics in table format
  vestibule-cli topics list --format json  # List all topics in JSON format

Output formats:
  table - Human-readable table format (default)
  json  - Machine-readable JSON format with a topic count`,
	Run: topicsListHandler,
}

func topicsListHandler(cmd *cobra.Command, args []string) {
	topicList := topics.List()

	if len(topicList) == 0 {
		fmt.Println("No topics found")
		return
	}

	switch listOutputFormat {
	case "json":
		if err := displayTopicsJSON(topicList); err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to encode JSON: %v\n", err)
			os.Exit(1)
		}
	case "table":
		displayTopicsTable(topicList)
	default:
		fmt.Fprintf(os.Stderr, "Error: Unsupported output format '%s'. Use 'table' or 'json'\n", listOutputFormat)
		os.Exit(1)
	}
}

// displayTopicsTable renders the topics as an aligned table.
func displayTopicsTable(topicList []topics.Topic) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, "NAME\tDESCRIPTION")
	fmt.Fprintln(w, "----\t-----------")
	for _, topic := range topicList {
		fmt.Fprintf(w, "%s\t%s\n", topic.Name(), topic.Description())
	}
}

// topicDisplay represents a topic for JSON output.
type topicDisplay struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func displayTopicsJSON(topicList []topics.Topic) error {
	displays := make([]topicDisplay, len(topicList))
	for i, topic := range topicList {
		displays[i] = topicDisplay{
			Name:        topic.Name(),
			Description: topic.Description(),
		}
	}

	output := struct {
		Topics []topicDisplay `json:"topics"`
		Count  int            `json:"count"`
	}{
		Topics: displays,
		Count:  len(displays),
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

func init() {
	topicsCmd.AddCommand(topicsListCmd)

	topicsListCmd.Flags().StringVarP(&listOutputFormat, "format", "f", "table", "Output format (table, json)")
}
