package cmd

import (
	"github.com/spf13/cobra"
)

var catRef string

var catCmd = &cobra.Command{
	Use:   "cat <owner/repo> <path>",
	Short: "Print a file from a repository",
	Long: `Print the decoded content of a file in a repository at a given ref.

The ref defaults to the repository's default branch head:

  perch cat octocat/hello README.md --ref v1.0.0`,
	Args: cobra.ExactArgs(2),
	RunE: runCat,
}

func init() {
	catCmd.Flags().StringVar(&catRef, "ref", "HEAD", "Branch, tag or commit SHA")
	rootCmd.AddCommand(catCmd)
}

func runCat(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	content := client.FileContent(args[0], args[1], catRef)

	_, err = cmd.OutOrStdout().Write(content)
	return err
}
