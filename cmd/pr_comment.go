package cmd

import (
	"fmt"

	"github.com/perch-dev/perch/internal/github"
	"github.com/spf13/cobra"
)

var (
	prCommentCommit   string
	prCommentPath     string
	prCommentPosition int
	prCommentBody     string
)

var prCommentCmd = &cobra.Command{
	Use:   "comment <owner/repo> <number>",
	Short: "Post a line comment on a pull request",
	Long: `Post a review comment on a specific line of a pull request diff.

The position is the line index within the unified diff, not the line
number in the file:

  perch pr comment octocat/hello 42 --commit abc123 --path main.go --position 3 --body "typo"`,
	Args: cobra.ExactArgs(2),
	RunE: runPRComment,
}

func init() {
	prCommentCmd.Flags().StringVar(&prCommentCommit, "commit", "", "Commit SHA the comment applies to")
	prCommentCmd.Flags().StringVar(&prCommentPath, "path", "", "File path within the repository")
	prCommentCmd.Flags().IntVar(&prCommentPosition, "position", 0, "Position in the unified diff")
	prCommentCmd.Flags().StringVar(&prCommentBody, "body", "", "Comment text")
	_ = prCommentCmd.MarkFlagRequired("commit")
	_ = prCommentCmd.MarkFlagRequired("path")
	_ = prCommentCmd.MarkFlagRequired("position")
	_ = prCommentCmd.MarkFlagRequired("body")
	prCmd.AddCommand(prCommentCmd)
}

func runPRComment(cmd *cobra.Command, args []string) error {
	number, err := parsePRNumber(args[1])
	if err != nil {
		return err
	}

	client, err := newClient()
	if err != nil {
		return err
	}

	created, err := client.CreatePullRequestComment(args[0], number, github.LineComment{
		CommitID: prCommentCommit,
		Path:     prCommentPath,
		Position: prCommentPosition,
		Body:     prCommentBody,
	})
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Commented on %s:%d (%s)\n",
		created.Path, created.Position, created.HTMLURL)
	return err
}
