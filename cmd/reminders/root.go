package main

import (
	"os"

	"github.com/spf13/cobra"

	"farmcare/config"
	"farmcare/pkg/logger"
)

var (
	cfg    config.AppConfig
	output string
)

var rootCmd = &cobra.Command{
	Use:   "reminders",
	Short: "Daily care reminders for farmcare",
	Long: `reminders composes the once-a-day notifications for farmcare users.

Commands:
  run    notify users about today's care tasks and harvests
  rules  print the adjustment rule table in effect`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg = config.Load()
		logger.Init(cfg.Env)
	},
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "yaml", "Output format (yaml, json)")
}
