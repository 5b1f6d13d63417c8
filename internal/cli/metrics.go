package cli

import (
	"focusday-cli/internal/mutate"

	"github.com/spf13/cobra"
)

func newMetricsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "metrics",
		Short: "Daily metric commands",
	}
	cmd.AddCommand(newMetricsLogCmd(app))
	cmd.AddCommand(newMetricsShowCmd(app))
	cmd.AddCommand(newMetricsStreakCmd(app))
	return cmd
}

func newMetricsLogCmd(app *App) *cobra.Command {
	var date string
	var sleep, energy, focus float64
	var moved, criticalDone bool
	var mood, note string

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Log metrics for a day (record is created on first write)",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			if date == "" {
				date = todayKey()
			}

			var up mutate.MetricUpdate
			if cmd.Flags().Changed("sleep") {
				up.Sleep = &sleep
			}
			if cmd.Flags().Changed("energy") {
				up.Energy = &energy
			}
			if cmd.Flags().Changed("focus") {
				up.Focus = &focus
			}
			if cmd.Flags().Changed("moved") {
				up.Moved = &moved
			}
			if cmd.Flags().Changed("critical-done") {
				up.CriticalDone = &criticalDone
			}
			if cmd.Flags().Changed("mood") {
				up.Mood = &mood
			}
			if cmd.Flags().Changed("note") {
				up.Note = &note
			}

			rec := mutate.LogMetrics(db, date, up)
			saveDB(cmd, s, db)
			return writeOut(cmd, app, map[string]any{"data": rec})
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Date key YYYY-MM-DD (default: today)")
	cmd.Flags().Float64Var(&sleep, "sleep", 0, "Hours slept")
	cmd.Flags().Float64Var(&energy, "energy", 0, "Energy level")
	cmd.Flags().Float64Var(&focus, "focus", 0, "Focus level")
	cmd.Flags().BoolVar(&moved, "moved", false, "Moved/exercised today")
	cmd.Flags().BoolVar(&criticalDone, "critical-done", false, "Critical task done")
	cmd.Flags().StringVar(&mood, "mood", "", "Mood")
	cmd.Flags().StringVar(&note, "note", "", "Free-form note")
	return cmd
}

func newMetricsShowCmd(app *App) *cobra.Command {
	var date string
	var all bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a day's record, or all records",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			if all {
				return writeOut(cmd, app, map[string]any{"data": db.Metrics})
			}
			if date == "" {
				date = todayKey()
			}
			rec, ok := db.FindMetric(date)
			if !ok {
				// Absent record means "no data for that date", not an error.
				return writeOut(cmd, app, map[string]any{"data": nil})
			}
			return writeOut(cmd, app, map[string]any{"data": rec})
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Date key YYYY-MM-DD (default: today)")
	cmd.Flags().BoolVar(&all, "all", false, "Show every stored record")
	return cmd
}

func newMetricsStreakCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "streak",
		Short: "Show the critical-task streak (consecutive days, capped at 365)",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			days := mutate.CriticalStreak(db.Metrics, timeNow())
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"days": days}})
		},
	}
	return cmd
}
