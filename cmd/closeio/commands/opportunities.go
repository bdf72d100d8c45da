package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var opportunityColumns = []string{"id", "lead_name", "status_label", "value", "date_created"}

// NewOpportunitiesCommand creates the opportunities command group.
func NewOpportunitiesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "opportunities",
		Aliases: []string{"opportunity", "opps"},
		Short:   "Manage opportunities",
		Long:    "Get, create, update, and delete opportunities",
	}

	cmd.AddCommand(newOpportunitiesGetCommand())
	cmd.AddCommand(newOpportunitiesCreateCommand())
	cmd.AddCommand(newOpportunitiesUpdateCommand())
	cmd.AddCommand(newOpportunitiesDeleteCommand())

	return cmd
}

func newOpportunitiesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get OPPORTUNITY_ID",
		Short: "Get opportunity details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			body, err := client.Opportunities().Get(cmd.Context(), args[0], nil)
			if err != nil {
				return fmt.Errorf("getting opportunity: %w", err)
			}

			return renderBody(body, opportunityColumns)
		},
	}
}

func newOpportunitiesCreateCommand() *cobra.Command {
	var (
		data     string
		fromFile string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new opportunity",
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := parsePayload(data, fromFile)
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			body, err := client.Opportunities().Create(cmd.Context(), payload, nil)
			if err != nil {
				return fmt.Errorf("creating opportunity: %w", err)
			}

			return renderBody(body, opportunityColumns)
		},
	}

	cmd.Flags().StringVarP(&data, "data", "d", "", "opportunity payload as a JSON object")
	cmd.Flags().StringVarP(&fromFile, "from-file", "f", "", "path to a JSON file with the opportunity payload")

	return cmd
}

func newOpportunitiesUpdateCommand() *cobra.Command {
	var (
		data     string
		fromFile string
	)

	cmd := &cobra.Command{
		Use:   "update OPPORTUNITY_ID",
		Short: "Update an opportunity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := parsePayload(data, fromFile)
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			body, err := client.Opportunities().Update(cmd.Context(), args[0], payload, nil)
			if err != nil {
				return fmt.Errorf("updating opportunity: %w", err)
			}

			return renderBody(body, opportunityColumns)
		},
	}

	cmd.Flags().StringVarP(&data, "data", "d", "", "fields to change as a JSON object")
	cmd.Flags().StringVarP(&fromFile, "from-file", "f", "", "path to a JSON file with the fields to change")

	return cmd
}

func newOpportunitiesDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete OPPORTUNITY_ID",
		Short: "Delete an opportunity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			if _, err := client.Opportunities().Delete(cmd.Context(), args[0], nil); err != nil {
				return fmt.Errorf("deleting opportunity: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Opportunity %s deleted\n", args[0])

			return nil
		},
	}
}
