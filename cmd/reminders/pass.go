package main

import (
	"encoding/json"

	"volunteercal/internal/app/deps"
	"volunteercal/internal/app/services"
	schedulereminders "volunteercal/internal/core/services/schedule_reminders"

	"github.com/spf13/cobra"
)

type passOutput struct {
	Processed   int `json:"processed"`
	InAppSent   int `json:"inAppSent"`
	EmailSent   int `json:"emailSent"`
	EmailFailed int `json:"emailFailed"`
	Orphaned    int `json:"orphaned"`
	Skipped     int `json:"skipped"`
	Failed      int `json:"failed"`
}

var passCmd = &cobra.Command{
	Use:   "pass",
	Short: "Run one reminder pass and print its statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, shutdownDeps := deps.InitDeps(loadConfig())
		defer shutdownDeps()

		services := services.InitServices(deps)
		result, err := services.ScheduleReminders.Run(cmd.Context(), schedulereminders.Input{})
		if err != nil {
			return err
		}

		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(passOutput{
			Processed:   result.Processed,
			InAppSent:   result.InAppSent,
			EmailSent:   result.EmailSent,
			EmailFailed: result.EmailFailed,
			Orphaned:    result.Orphaned,
			Skipped:     result.Skipped,
			Failed:      result.Failed,
		})
	},
}

func init() {
	rootCmd.AddCommand(passCmd)
}
