package cmd

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var reposCmd = &cobra.Command{
	Use:   "repos <username>",
	Short: "List repositories of a user",
	Long:  `List the repositories of a GitHub user in a formatted table.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runRepos,
}

func init() {
	rootCmd.AddCommand(reposCmd)
}

func runRepos(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	repos := client.Repos(args[0])
	if len(repos) == 0 {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), "No repositories found.")
		return err
	}

	rows := make([][]string, len(repos))
	for i, repo := range repos {
		visibility := "public"
		if repo.Private {
			visibility = "private"
		}
		forkMarker := ""
		if repo.Fork {
			forkMarker = "✓" // checkmark
		}

		rows[i] = []string{
			repo.Name,
			truncateString(repo.Description, 40),
			visibility,
			forkMarker,
			fmt.Sprintf("%d", repo.Stargazers),
			humanize.Time(repo.UpdatedAt),
		}
	}

	t := renderTable([]string{"Name", "Description", "Visibility", "Fork", "Stars", "Updated"}, rows)
	_, err = fmt.Fprintln(cmd.OutOrStdout(), t)
	return err
}
