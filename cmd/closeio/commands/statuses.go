package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statusColumns = []string{"id", "label", "type"}

// NewStatusesCommand creates the statuses command group.
func NewStatusesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "statuses",
		Aliases: []string{"status"},
		Short:   "List lead and opportunity statuses",
	}

	cmd.AddCommand(newStatusesLeadCommand())
	cmd.AddCommand(newStatusesOpportunityCommand())

	return cmd
}

func newStatusesLeadCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "lead",
		Short: "List lead statuses",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			body, err := client.Statuses().ListLead(cmd.Context(), nil)
			if err != nil {
				return fmt.Errorf("listing lead statuses: %w", err)
			}

			return renderBody(body, statusColumns)
		},
	}
}

func newStatusesOpportunityCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "opportunity",
		Short: "List opportunity statuses",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			body, err := client.Statuses().ListOpportunity(cmd.Context(), nil)
			if err != nil {
				return fmt.Errorf("listing opportunity statuses: %w", err)
			}

			return renderBody(body, statusColumns)
		},
	}
}
