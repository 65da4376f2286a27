package cmd

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Show the authenticated user",
	Long: `Show the profile of the user the configured credentials belong to.

Useful as a quick check that credentials are set up correctly.`,
	Args: cobra.NoArgs,
	RunE: runUser,
}

func init() {
	rootCmd.AddCommand(userCmd)
}

func runUser(cmd *cobra.Command, _ []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	user := client.User()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Login:        %s\n", user.Login)
	if user.Name != "" {
		fmt.Fprintf(out, "Name:         %s\n", user.Name)
	}
	if user.Email != "" {
		fmt.Fprintf(out, "Email:        %s\n", user.Email)
	}
	if user.Company != "" {
		fmt.Fprintf(out, "Company:      %s\n", user.Company)
	}
	fmt.Fprintf(out, "Public repos: %d\n", user.PublicRepos)
	fmt.Fprintf(out, "Joined:       %s\n", humanize.Time(user.CreatedAt))
	return nil
}
