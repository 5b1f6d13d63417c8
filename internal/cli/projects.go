package cli

import (
	"fmt"

	"focusday-cli/internal/model"
	"focusday-cli/internal/mutate"

	"github.com/spf13/cobra"
)

func newProjectsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "Active project commands (cap: 3)",
	}
	cmd.AddCommand(newProjectsAddCmd(app))
	cmd.AddCommand(newProjectsListCmd(app))
	cmd.AddCommand(newProjectsEditCmd(app))
	cmd.AddCommand(newProjectsRmCmd(app))
	cmd.AddCommand(newProjectsPauseCmd(app))
	return cmd
}

type indexedProject struct {
	Index int `json:"index"`
	model.Project
}

func newProjectsAddCmd(app *App) *cobra.Command {
	var title, purpose, next string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an active project",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			p, err := mutate.AddProject(db, title, purpose, next, timeNow())
			if err != nil {
				return writeErr(cmd, err)
			}
			saveDB(cmd, s, db)
			return writeOut(cmd, app, map[string]any{"data": p})
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Project title")
	cmd.Flags().StringVar(&purpose, "purpose", "", "One-line purpose")
	cmd.Flags().StringVar(&next, "next", "", "Next concrete action")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

func newProjectsListCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List active projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			out := make([]indexedProject, 0, len(db.Projects))
			for i, p := range db.Projects {
				out = append(out, indexedProject{Index: i, Project: p})
			}
			return writeOut(cmd, app, map[string]any{"data": out, "capacity": fmt.Sprintf("%d/%d", len(db.Projects), model.MaxActiveProjects)})
		},
	}
	return cmd
}

func newProjectsEditCmd(app *App) *cobra.Command {
	var title, purpose, next string

	cmd := &cobra.Command{
		Use:   "edit INDEX",
		Short: "Edit a project's fields",
		Long:  "Only the flags you pass are changed; omitted fields keep their current value.",
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

			// An omitted flag behaves like a cancelled prompt: nil keeps the
			// prior value.
			var tp, pp, np *string
			if cmd.Flags().Changed("title") {
				tp = &title
			}
			if cmd.Flags().Changed("purpose") {
				pp = &purpose
			}
			if cmd.Flags().Changed("next") {
				np = &next
			}

			changed := mutate.EditProject(db, idx, tp, pp, np)
			if !changed {
				return writeOut(cmd, app, map[string]any{"data": map[string]any{"changed": false}})
			}
			saveDB(cmd, s, db)
			return writeOut(cmd, app, map[string]any{"data": db.Projects[idx]})
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Project title")
	cmd.Flags().StringVar(&purpose, "purpose", "", "One-line purpose")
	cmd.Flags().StringVar(&next, "next", "", "Next concrete action")
	return cmd
}

func newProjectsRmCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm INDEX",
		Short: "Delete a project",
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
			changed := mutate.DeleteProject(db, idx)
			if changed {
				saveDB(cmd, s, db)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"changed": changed}})
		},
	}
	return cmd
}

func newProjectsPauseCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pause INDEX",
		Short: "Move a project to the incubator, freeing a slot",
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
			it, changed := mutate.PauseProject(db, idx, timeNow())
			if !changed {
				return writeOut(cmd, app, map[string]any{"data": map[string]any{"changed": false}})
			}
			saveDB(cmd, s, db)
			return writeOut(cmd, app, map[string]any{"data": it})
		},
	}
	return cmd
}
