package cmd

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var hookCreateEvents []string

var hooksCmd = &cobra.Command{
	Use:   "hooks <owner/repo>",
	Short: "List webhooks of a repository",
	Long:  `List the webhooks configured on a repository.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runHooks,
}

var hooksCreateCmd = &cobra.Command{
	Use:   "create <owner/repo> <url>",
	Short: "Create a webhook on a repository",
	Long: `Create a JSON webhook on a repository delivering the given events.

Events default to "push" and "pull_request":

  perch hooks create octocat/hello https://ci.example.com/hook --event push`,
	Args: cobra.ExactArgs(2),
	RunE: runHooksCreate,
}

func init() {
	hooksCreateCmd.Flags().StringSliceVar(&hookCreateEvents, "event", []string{"push", "pull_request"}, "Event to subscribe to (repeatable)")
	hooksCmd.AddCommand(hooksCreateCmd)
	rootCmd.AddCommand(hooksCmd)
}

func runHooks(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	hooks := client.Hooks(args[0])
	if len(hooks) == 0 {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), "No webhooks found.")
		return err
	}

	rows := make([][]string, len(hooks))
	for i, hook := range hooks {
		activeMarker := ""
		if hook.Active {
			activeMarker = "✓" // checkmark
		}

		rows[i] = []string{
			fmt.Sprintf("%d", hook.ID),
			hook.Name,
			truncateString(hook.Config.URL, 40),
			strings.Join(hook.Events, ", "),
			activeMarker,
			humanize.Time(hook.CreatedAt),
		}
	}

	t := renderTable([]string{"ID", "Name", "URL", "Events", "Active", "Created"}, rows)
	_, err = fmt.Fprintln(cmd.OutOrStdout(), t)
	return err
}

func runHooksCreate(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	hook := client.CreateWebhook(args[0], args[1], hookCreateEvents)

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Created hook %d on %s for events: %s\n",
		hook.ID, args[0], strings.Join(hook.Events, ", "))
	return err
}
