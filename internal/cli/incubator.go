package cli

import (
	"strings"

	"focusday-cli/internal/model"
	"focusday-cli/internal/mutate"

	"github.com/spf13/cobra"
)

func newIncubatorCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "incubator",
		Aliases: []string{"inc"},
		Short:   "Idea incubator commands",
	}
	cmd.AddCommand(newIncubatorAddCmd(app))
	cmd.AddCommand(newIncubatorListCmd(app))
	cmd.AddCommand(newIncubatorRmCmd(app))
	cmd.AddCommand(newIncubatorActivateCmd(app))
	return cmd
}

type indexedIncubatorItem struct {
	Index int `json:"index"`
	model.IncubatorItem
}

func newIncubatorAddCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add TITLE...",
		Short: "Park an idea in the incubator",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			it, err := mutate.AddIncubatorItem(db, strings.Join(args, " "), timeNow())
			if err != nil {
				return writeErr(cmd, err)
			}
			saveDB(cmd, s, db)
			return writeOut(cmd, app, map[string]any{"data": it})
		},
	}
	return cmd
}

func newIncubatorListCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List incubator items, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			out := make([]indexedIncubatorItem, 0, len(db.Incubator))
			for i := len(db.Incubator) - 1; i >= 0; i-- {
				out = append(out, indexedIncubatorItem{Index: i, IncubatorItem: db.Incubator[i]})
			}
			return writeOut(cmd, app, map[string]any{"data": out})
		},
	}
	return cmd
}

func newIncubatorRmCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm INDEX",
		Short: "Delete an incubator item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := parseIndexArg(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			changed := mutate.DeleteIncubatorItem(db, idx)
			if changed {
				saveDB(cmd, s, db)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"changed": changed}})
		},
	}
	return cmd
}

func newIncubatorActivateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "activate INDEX",
		Short: "Promote an idea to an active project (if a slot is free)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := parseIndexArg(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			p, changed, err := mutate.ActivateIncubatorItem(db, idx, timeNow())
			if err != nil {
				return writeErr(cmd, err)
			}
			if !changed {
				return writeOut(cmd, app, map[string]any{"data": map[string]any{"changed": false}})
			}
			saveDB(cmd, s, db)
			return writeOut(cmd, app, map[string]any{"data": p})
		},
	}
	return cmd
}
