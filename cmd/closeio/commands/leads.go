package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var leadColumns = []string{"id", "display_name", "status_label", "date_created"}

// NewLeadsCommand creates the leads command group.
func NewLeadsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "leads",
		Aliases: []string{"lead"},
		Short:   "Manage leads",
		Long:    "Find, create, update, and delete leads",
	}

	cmd.AddCommand(newLeadsFindCommand())
	cmd.AddCommand(newLeadsGetCommand())
	cmd.AddCommand(newLeadsCreateCommand())
	cmd.AddCommand(newLeadsUpdateCommand())
	cmd.AddCommand(newLeadsDeleteCommand())

	return cmd
}

func newLeadsFindCommand() *cobra.Command {
	var query string

	cmd := &cobra.Command{
		Use:   "find",
		Short: "Find leads",
		Long:  "Find leads, optionally filtered by a search query",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			body, err := client.Leads().Find(cmd.Context(), query, nil)
			if err != nil {
				return fmt.Errorf("finding leads: %w", err)
			}

			return renderBody(body, leadColumns)
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "search query, e.g. 'company: acme'")

	return cmd
}

func newLeadsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get LEAD_ID",
		Short: "Get lead details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			body, err := client.Leads().Get(cmd.Context(), args[0], nil)
			if err != nil {
				return fmt.Errorf("getting lead: %w", err)
			}

			return renderBody(body, leadColumns)
		},
	}
}

func newLeadsCreateCommand() *cobra.Command {
	var (
		data     string
		fromFile string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new lead",
		Long:  "Create a new lead from an inline JSON payload or a file",
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := parsePayload(data, fromFile)
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			body, err := client.Leads().Create(cmd.Context(), payload, nil)
			if err != nil {
				return fmt.Errorf("creating lead: %w", err)
			}

			return renderBody(body, leadColumns)
		},
	}

	cmd.Flags().StringVarP(&data, "data", "d", "", "lead payload as a JSON object")
	cmd.Flags().StringVarP(&fromFile, "from-file", "f", "", "path to a JSON file with the lead payload")

	return cmd
}

func newLeadsUpdateCommand() *cobra.Command {
	var (
		data     string
		fromFile string
	)

	cmd := &cobra.Command{
		Use:   "update LEAD_ID",
		Short: "Update a lead",
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

			body, err := client.Leads().Update(cmd.Context(), args[0], payload, nil)
			if err != nil {
				return fmt.Errorf("updating lead: %w", err)
			}

			return renderBody(body, leadColumns)
		},
	}

	cmd.Flags().StringVarP(&data, "data", "d", "", "fields to change as a JSON object")
	cmd.Flags().StringVarP(&fromFile, "from-file", "f", "", "path to a JSON file with the fields to change")

	return cmd
}

func newLeadsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete LEAD_ID",
		Short: "Delete a lead",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			if _, err := client.Leads().Delete(cmd.Context(), args[0], nil); err != nil {
				return fmt.Errorf("deleting lead: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Lead %s deleted\n", args[0])

			return nil
		},
	}
}
