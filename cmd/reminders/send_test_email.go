package main

import (
	"fmt"
	"time"

	"volunteercal/internal/app/deps"
	"volunteercal/internal/app/services"
	c "volunteercal/internal/core/domain/common"
	sendreminderemail "volunteercal/internal/core/services/send_reminder_email"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	testEmailTo    string
	testEmailTitle string
)

var sendTestEmailCmd = &cobra.Command{
	Use:   "send-test-email",
	Short: "Send a sample reminder email through the configured provider",
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, shutdownDeps := deps.InitDeps(loadConfig())
		defer shutdownDeps()

		services := services.InitServices(deps)
		_, err := services.SendReminderEmail.Run(cmd.Context(), sendreminderemail.Input{
			ReminderID:     uuid.NewString(),
			RecipientEmail: c.NewEmail(testEmailTo),
			EventTitle:     testEmailTitle,
			EventStart:     deps.Now().Add(24 * time.Hour),
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Sent a test email to %s via %s.\n", testEmailTo, deps.Config.EmailProvider)
		return nil
	},
}

func init() {
	sendTestEmailCmd.Flags().StringVar(&testEmailTo, "to", "", "recipient address")
	sendTestEmailCmd.Flags().StringVar(&testEmailTitle, "title", "Test event", "event title")
	sendTestEmailCmd.MarkFlagRequired("to")
	rootCmd.AddCommand(sendTestEmailCmd)
}
