package cli

import (
	"strings"

	"focusday-cli/internal/model"
	"focusday-cli/internal/mutate"

	"github.com/spf13/cobra"
)

func newInboxCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inbox",
		Short: "Capture inbox commands",
	}
	cmd.AddCommand(newInboxAddCmd(app))
	cmd.AddCommand(newInboxListCmd(app))
	cmd.AddCommand(newInboxRmCmd(app))
	cmd.AddCommand(newInboxPromoteCmd(app))
	cmd.AddCommand(newInboxTaskCmd(app))
	return cmd
}

// indexedInboxItem pairs an inbox item with its storage index, which is what
// rm/promote/task expect. Listings show newest first.
type indexedInboxItem struct {
	Index int `json:"index"`
	model.InboxItem
}

func newInboxAddCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add TEXT...",
		Short: "Capture a raw note into the inbox",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			it, ok := mutate.AddInboxItem(db, strings.Join(args, " "), timeNow())
			if !ok {
				return writeErr(cmd, mutate.ErrEmptyText)
			}
			saveDB(cmd, s, db)
			return writeOut(cmd, app, map[string]any{"data": it})
		},
	}
	return cmd
}

func newInboxListCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List captures, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			out := make([]indexedInboxItem, 0, len(db.Inbox))
			for i := len(db.Inbox) - 1; i >= 0; i-- {
				out = append(out, indexedInboxItem{Index: i, InboxItem: db.Inbox[i]})
			}
			return writeOut(cmd, app, map[string]any{"data": out})
		},
	}
	return cmd
}

func newInboxRmCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm INDEX",
		Short: "Delete a capture",
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
			changed := mutate.DeleteInboxItem(db, idx)
			if changed {
				saveDB(cmd, s, db)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"changed": changed}})
		},
	}
	return cmd
}

func newInboxPromoteCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "promote INDEX",
		Short: "Move a capture to the incubator",
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
			it, changed := mutate.PromoteToIncubator(db, idx)
			if !changed {
				return writeOut(cmd, app, map[string]any{"data": map[string]any{"changed": false}})
			}
			saveDB(cmd, s, db)
			return writeOut(cmd, app, map[string]any{"data": it})
		},
	}
	return cmd
}

func newInboxTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task INDEX",
		Short: "Turn a capture into a minor task for today",
		Long:  "Fills the first empty minor-task slot; when all five are taken, the capture is appended to today's notes as a bullet.",
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
			res, changed := mutate.PromoteToTask(db, idx)
			if !changed {
				return writeOut(cmd, app, map[string]any{"data": map[string]any{"changed": false}})
			}
			saveDB(cmd, s, db)
			target := "notes"
			if res.Slot >= 0 {
				target = "minor"
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{
				"text":   res.Text,
				"target": target,
				"slot":   res.Slot,
			}})
		},
	}
	return cmd
}
