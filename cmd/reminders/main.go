package main

import (
	"fmt"
	"os"

	"volunteercal/internal/config"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "reminders",
	Short:        "VolunteerCal reminders maintenance",
	Long:         `Runs one-off reminder passes, applies database migrations and checks email delivery.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig() *config.Config {
	cfg, err := config.Load()
	cobra.CheckErr(err)
	return cfg
}

func main() {
	Execute()
}
