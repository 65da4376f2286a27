package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var prCmd = &cobra.Command{
	Use:   "pr",
	Short: "Inspect and comment on pull requests",
}

func init() {
	rootCmd.AddCommand(prCmd)
}

// parsePRNumber parses a pull request number argument.
func parsePRNumber(arg string) (int, error) {
	number, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid pull request number %q: %w", arg, err)
	}
	return number, nil
}
