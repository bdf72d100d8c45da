package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/crmkit/closeio/pkg/closeio"
)

// NewSendEmailCommand creates the send-email command.
func NewSendEmailCommand() *cobra.Command {
	var (
		data     string
		fromFile string
		leadID   string
		to       []string
		subject  string
		bodyText string
	)

	cmd := &cobra.Command{
		Use:   "send-email",
		Short: "Send an email activity",
		Long: "Send an email activity. Pass a full payload with --data or --from-file, " +
			"or build one from --lead, --to, --subject, and --body.",
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := buildEmailPayload(data, fromFile, leadID, to, subject, bodyText)
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			body, err := client.Activities().SendEmail(cmd.Context(), payload, nil)
			if err != nil {
				return fmt.Errorf("sending email: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Email sent")

			return renderBody(body, nil)
		},
	}

	cmd.Flags().StringVarP(&data, "data", "d", "", "email activity payload as a JSON object")
	cmd.Flags().StringVarP(&fromFile, "from-file", "f", "", "path to a JSON file with the email activity payload")
	cmd.Flags().StringVar(&leadID, "lead", "", "lead the email belongs to")
	cmd.Flags().StringSliceVar(&to, "to", nil, "recipient addresses")
	cmd.Flags().StringVar(&subject, "subject", "", "email subject")
	cmd.Flags().StringVar(&bodyText, "body", "", "plain-text email body")

	return cmd
}

func buildEmailPayload(data, fromFile, leadID string, to []string, subject, bodyText string) (closeio.Payload, error) {
	if data != "" || fromFile != "" {
		return parsePayload(data, fromFile)
	}

	if leadID == "" {
		return nil, ErrLeadIDRequired
	}

	recipients := make([]interface{}, 0, len(to))
	for _, address := range to {
		recipients = append(recipients, address)
	}

	return closeio.Payload{
		"lead_id":   leadID,
		"to":        recipients,
		"subject":   subject,
		"body_text": bodyText,
		"status":    "outbox",
	}, nil
}
