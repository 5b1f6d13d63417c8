package cli

import (
	"fmt"

	"focusday-cli/internal/mutate"

	"github.com/spf13/cobra"
)

func newTodayCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "today",
		Short: "Today's plan commands",
	}
	cmd.AddCommand(newTodayShowCmd(app))
	cmd.AddCommand(newTodaySetCmd(app))
	cmd.AddCommand(newTodayDoneCmd(app))
	return cmd
}

func newTodayShowCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show today's plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": db.Today})
		},
	}
	return cmd
}

func newTodaySetCmd(app *App) *cobra.Command {
	var critical string
	var important []string
	var minor []string
	var notes string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update today's plan",
		Long:  "Flags you pass overwrite those fields; omitted flags keep their current value (the CLI equivalent of editing a pre-filled form).",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(important) > 3 {
				return writeErr(cmd, fmt.Errorf("at most 3 important tasks (got %d)", len(important)))
			}
			if len(minor) > 5 {
				return writeErr(cmd, fmt.Errorf("at most 5 minor tasks (got %d)", len(minor)))
			}

			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}

			// Project the stored plan into form fields, then apply the flags
			// that were set.
			crit := db.Today.Critical
			imp := db.Today.Important
			min := db.Today.Minor
			nts := db.Today.Notes
			if cmd.Flags().Changed("critical") {
				crit = critical
			}
			if cmd.Flags().Changed("important") {
				imp = [3]string{}
				copy(imp[:], important)
			}
			if cmd.Flags().Changed("minor") {
				min = [5]string{}
				copy(min[:], minor)
			}
			if cmd.Flags().Changed("notes") {
				nts = notes
			}

			mutate.SavePlan(db, crit, imp, min, nts)
			saveDB(cmd, s, db)
			return writeOut(cmd, app, map[string]any{"data": db.Today})
		},
	}

	cmd.Flags().StringVar(&critical, "critical", "", "The one critical task for today")
	cmd.Flags().StringArrayVar(&important, "important", nil, "Important task (repeat up to 3 times; replaces all slots)")
	cmd.Flags().StringArrayVar(&minor, "minor", nil, "Minor task (repeat up to 5 times; replaces all slots)")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes (kept verbatim)")
	return cmd
}

func newTodayDoneCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done",
		Short: "Mark today's critical task as done",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			rec := mutate.MarkCriticalDone(db, todayKey())
			saveDB(cmd, s, db)
			streak := mutate.CriticalStreak(db.Metrics, timeNow())
			return writeOut(cmd, app, map[string]any{"data": map[string]any{
				"record": rec,
				"streak": streak,
			}})
		},
	}
	return cmd
}
