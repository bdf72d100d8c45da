package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var userColumns = []string{"id", "first_name", "last_name", "email"}

// NewUsersCommand creates the users command group.
func NewUsersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "users",
		Aliases: []string{"user"},
		Short:   "Manage organization users",
	}

	cmd.AddCommand(newUsersListCommand())
	cmd.AddCommand(newUsersMeCommand())

	return cmd
}

func newUsersListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List users in the organization",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			body, err := client.Users().List(cmd.Context(), nil)
			if err != nil {
				return fmt.Errorf("listing users: %w", err)
			}

			return renderBody(body, userColumns)
		},
	}
}

func newUsersMeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Show the user the API key belongs to",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			body, err := client.Users().Me(cmd.Context(), nil)
			if err != nil {
				return fmt.Errorf("getting current user: %w", err)
			}

			return renderBody(body, userColumns)
		},
	}
}
