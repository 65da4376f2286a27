package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var prFilesCmd = &cobra.Command{
	Use:   "files <owner/repo> <number>",
	Short: "List files changed in a pull request",
	Long:  `List the files changed in a pull request with addition/deletion counts.`,
	Args:  cobra.ExactArgs(2),
	RunE:  runPRFiles,
}

func init() {
	prCmd.AddCommand(prFilesCmd)
}

func runPRFiles(cmd *cobra.Command, args []string) error {
	number, err := parsePRNumber(args[1])
	if err != nil {
		return err
	}

	client, err := newClient()
	if err != nil {
		return err
	}

	files, err := client.PullRequestFiles(args[0], number)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), "No changed files found.")
		return err
	}

	rows := make([][]string, len(files))
	for i, file := range files {
		name := file.Filename
		if file.Status == "renamed" {
			name = fmt.Sprintf("%s -> %s", file.PreviousFilename, file.Filename)
		}

		rows[i] = []string{
			truncateString(name, 60),
			file.Status,
			fmt.Sprintf("+%d", file.Additions),
			fmt.Sprintf("-%d", file.Deletions),
		}
	}

	t := renderTable([]string{"File", "Status", "Added", "Deleted"}, rows)
	_, err = fmt.Fprintln(cmd.OutOrStdout(), t)
	return err
}
