package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"focusday-cli/internal/format"
	"focusday-cli/internal/model"
	"focusday-cli/internal/store"
	"focusday-cli/internal/tui"

	"github.com/spf13/cobra"
)

type App struct {
	Dir        string
	Workspace  string
	PrettyJSON bool
	Format     string
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:           "focusday",
		Short:         "Local-first daily planner CLI + TUI",
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: strings.TrimSpace(`
  # Start the interactive dashboard
  focusday

  # Capture a thought without breaking flow
  focusday inbox add "call the bank about the mortgage"

  # Plan the day
  focusday today set --critical "ship the release"

  # Close the day
  focusday today done
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&app.Dir, "dir", envOr("FOCUSDAY_DIR", ""), "Path to workspace dir (overrides workspace resolution; mostly for fixtures/tests)")
	cmd.PersistentFlags().StringVar(&app.Workspace, "workspace", envOr("FOCUSDAY_WORKSPACE", ""), "Workspace name (default: 'default')")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("FOCUSDAY_FORMAT", "json"), "Output format (json|edn)")

	cmd.AddCommand(newInitCmd(app))
	cmd.AddCommand(newStatusCmd(app))
	cmd.AddCommand(newWorkspaceCmd(app))
	cmd.AddCommand(newInboxCmd(app))
	cmd.AddCommand(newTodayCmd(app))
	cmd.AddCommand(newBlocksCmd(app))
	cmd.AddCommand(newProjectsCmd(app))
	cmd.AddCommand(newIncubatorCmd(app))
	cmd.AddCommand(newMetricsCmd(app))
	cmd.AddCommand(newDocsCmd(app))

	return cmd
}

func runTUI(app *App) error {
	db, s, err := loadDB(app)
	if err != nil {
		return err
	}
	return tui.Run(s, db)
}

func loadDB(app *App) (*store.DB, store.Store, error) {
	dir := app.Dir
	if dir == "" {
		// Workspace-first:
		// 1) --workspace
		// 2) ~/.focusday/config.json currentWorkspace
		// 3) the implicit "default" workspace
		name := app.Workspace
		if name == "" {
			if cfg, err := store.LoadConfig(); err == nil && cfg.CurrentWorkspace != "" {
				name = cfg.CurrentWorkspace
			} else {
				name = "default"
			}
		}
		d, err := store.WorkspaceDir(name)
		if err != nil {
			return nil, store.Store{}, err
		}
		app.Workspace = name
		dir = d
		app.Dir = dir
	}

	s := store.Store{Dir: dir}
	db, err := s.Load()
	if err != nil {
		return nil, s, err
	}
	return db, s, nil
}

// saveDB is the write-through step after every mutation. A failing save is
// not fatal: the in-memory state already reflects the change and the command
// reports it, but the user is warned the change may not survive.
func saveDB(cmd *cobra.Command, s store.Store, db *store.DB) {
	if err := s.Save(db); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: changes not persisted (%v); they will be lost after this session\n", err)
	}
}

// timeNow is swappable so command tests can pin the clock.
var timeNow = time.Now

func todayKey() string {
	return model.DateKey(timeNow())
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Format, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}

func parseIndexArg(arg string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return 0, fmt.Errorf("invalid index %q (use the index shown by list)", arg)
	}
	return n, nil
}
