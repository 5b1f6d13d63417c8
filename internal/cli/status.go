package cli

import (
	"fmt"

	"focusday-cli/internal/model"
	"focusday-cli/internal/mutate"
	"focusday-cli/internal/tips"

	"github.com/spf13/cobra"
)

func newStatusCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Dashboard summary: counts, streak and the daily tip",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}

			blockMinutes := 0
			for _, b := range db.Blocks {
				blockMinutes += b.Minutes
			}

			return writeOut(cmd, app, map[string]any{"data": map[string]any{
				"workspace":    app.Workspace,
				"dir":          app.Dir,
				"inbox":        len(db.Inbox),
				"incubator":    len(db.Incubator),
				"projects":     fmt.Sprintf("%d/%d", len(db.Projects), model.MaxActiveProjects),
				"blocks":       len(db.Blocks),
				"blockMinutes": blockMinutes,
				"critical":     db.Today.Critical,
				"streakDays":   mutate.CriticalStreak(db.Metrics, timeNow()),
				"tip":          tips.ForDate(todayKey()),
			}})
		},
	}
	return cmd
}
