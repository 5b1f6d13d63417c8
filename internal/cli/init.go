package cli

import (
	"github.com/spf13/cobra"
)

func newInitCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a workspace store",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			// Writing the freshly loaded (possibly empty) state creates the
			// snapshot file so later commands find a workspace in place.
			if err := s.Save(db); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{
				"dir":       s.Dir,
				"workspace": app.Workspace,
			}})
		},
	}
	return cmd
}
