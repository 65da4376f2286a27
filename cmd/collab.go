package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var collabCmd = &cobra.Command{
	Use:   "collab",
	Short: "Manage repository collaborators",
}

var collabAddCmd = &cobra.Command{
	Use:   "add <owner/repo> <username>",
	Short: "Invite a user as a collaborator",
	Long:  `Invite a user as a collaborator on a repository.`,
	Args:  cobra.ExactArgs(2),
	RunE:  runCollabAdd,
}

func init() {
	collabCmd.AddCommand(collabAddCmd)
	rootCmd.AddCommand(collabCmd)
}

func runCollabAdd(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	invitation := client.AddCollaborator(args[0], args[1])

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Invited %s to %s (%s access)\n",
		args[1], args[0], invitation.Permissions)
	return err
}
