package cli

import (
	"focusday-cli/internal/model"
	"focusday-cli/internal/mutate"

	"github.com/spf13/cobra"
)

func newBlocksCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "blocks",
		Short: "Focus block commands",
	}
	cmd.AddCommand(newBlocksAddCmd(app))
	cmd.AddCommand(newBlocksListCmd(app))
	cmd.AddCommand(newBlocksSetModeCmd(app))
	cmd.AddCommand(newBlocksSetMinutesCmd(app))
	cmd.AddCommand(newBlocksRmCmd(app))
	return cmd
}

type indexedBlock struct {
	Index int `json:"index"`
	model.FocusBlock
}

func newBlocksAddCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Append a focus block (create, 60 min)",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			b := mutate.AddBlock(db)
			saveDB(cmd, s, db)
			return writeOut(cmd, app, map[string]any{"data": indexedBlock{Index: len(db.Blocks) - 1, FocusBlock: b}})
		},
	}
	return cmd
}

func newBlocksListCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List focus blocks in plan order",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			out := make([]indexedBlock, 0, len(db.Blocks))
			for i, b := range db.Blocks {
				out = append(out, indexedBlock{Index: i, FocusBlock: b})
			}
			return writeOut(cmd, app, map[string]any{"data": out})
		},
	}
	return cmd
}

func newBlocksSetModeCmd(app *App) *cobra.Command {
	var modeStr string

	cmd := &cobra.Command{
		Use:   "set-mode INDEX",
		Short: "Change a block's working mode",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := parseIndexArg(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			mode, ok := model.ParseMode(modeStr)
			if !ok {
				return writeErr(cmd, mutate.ErrInvalidMode)
			}
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			changed, err := mutate.SetBlockMode(db, idx, mode)
			if err != nil {
				return writeErr(cmd, err)
			}
			if changed {
				saveDB(cmd, s, db)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"changed": changed}})
		},
	}

	cmd.Flags().StringVar(&modeStr, "mode", "", "Working mode (create|build|manage|care)")
	_ = cmd.MarkFlagRequired("mode")
	return cmd
}

func newBlocksSetMinutesCmd(app *App) *cobra.Command {
	var raw string

	cmd := &cobra.Command{
		Use:   "set-minutes INDEX",
		Short: "Change a block's length (clamped to 15-180 minutes)",
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
			minutes, changed := mutate.SetBlockMinutes(db, idx, raw)
			if changed {
				saveDB(cmd, s, db)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{
				"changed": changed,
				"minutes": minutes,
			}})
		},
	}

	cmd.Flags().StringVar(&raw, "minutes", "", "Minutes (unparseable input falls back to 60)")
	_ = cmd.MarkFlagRequired("minutes")
	return cmd
}

func newBlocksRmCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm INDEX",
		Short: "Delete a focus block",
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
			changed := mutate.DeleteBlock(db, idx)
			if changed {
				saveDB(cmd, s, db)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"changed": changed}})
		},
	}
	return cmd
}
