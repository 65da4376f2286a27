package cmd

import "github.com/spf13/cobra"

// Version is set at build time via ldflags.
var Version = "n/a"

var rootCmd = &cobra.Command{
	Use:   "perch",
	Short: "GitHub repository companion",
	Long:  `Perch inspects and manages GitHub repositories, pull requests and webhooks from the command line.`,
}

func init() {
	rootCmd.Version = Version
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
