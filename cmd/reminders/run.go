package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"farmcare/app"
	"farmcare/database"
	"farmcare/pkg/clock"
)

var (
	runDate   string
	runDryRun bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Send today's task and harvest reminders",
	Long: `Send one "task" notification to every user with incomplete care tasks
scheduled for the day, and one "reminder" notification to every user with a
planting harvested that day. Users already notified in a category that day
are skipped, so the job is safe to re-run.

Example:
  reminders run
  reminders run --date 2024-06-15 --dry-run`,
	RunE: runReminders,
}

func init() {
	runCmd.Flags().StringVar(&runDate, "date", "", "Calendar day to process (YYYY-MM-DD, default today)")
	runCmd.Flags().BoolVar(&runDryRun, "dry-run", false, "Compose reminders without storing them")
	rootCmd.AddCommand(runCmd)
}

func runReminders(cmd *cobra.Command, args []string) error {
	loc := cfg.Location()
	day := clock.Today(clock.Real{}, loc)
	if runDate != "" {
		d, err := time.Parse(clock.DateLayout, runDate)
		if err != nil {
			return fmt.Errorf("bad --date %q: %w", runDate, err)
		}
		day = d
	}

	db, err := database.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	svcs := app.NewServices(app.Deps{DB: db, Clock: clock.Real{}, Loc: loc})
	rep, err := svcs.Reminders.Run(day, runDryRun)
	if err != nil {
		return fmt.Errorf("run reminders: %w", err)
	}
	return render(cmd.OutOrStdout(), rep)
}
