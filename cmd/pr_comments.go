package cmd

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var prCommentsCmd = &cobra.Command{
	Use:   "comments <owner/repo> <number>",
	Short: "List review comments on a pull request",
	Long:  `List the line-level review comments on a pull request.`,
	Args:  cobra.ExactArgs(2),
	RunE:  runPRComments,
}

func init() {
	prCmd.AddCommand(prCommentsCmd)
}

func runPRComments(cmd *cobra.Command, args []string) error {
	number, err := parsePRNumber(args[1])
	if err != nil {
		return err
	}

	client, err := newClient()
	if err != nil {
		return err
	}

	comments, err := client.PullRequestComments(args[0], number)
	if err != nil {
		return err
	}
	if len(comments) == 0 {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), "No review comments found.")
		return err
	}

	out := cmd.OutOrStdout()
	for _, comment := range comments {
		fmt.Fprintf(out, "%s:%d  %s (%s)\n", comment.Path, comment.Position,
			comment.User.Login, humanize.Time(comment.CreatedAt))
		fmt.Fprintf(out, "  %s\n", truncateString(comment.Body, 100))
	}
	return nil
}
