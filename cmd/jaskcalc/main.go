package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jask/jaskcalc/internal/calc"
	"github.com/jask/jaskcalc/internal/config"
	"github.com/jask/jaskcalc/internal/database"
	"github.com/jask/jaskcalc/internal/keypad"
	"github.com/jask/jaskcalc/internal/locale"
	"github.com/jask/jaskcalc/internal/logging"
	"github.com/jask/jaskcalc/internal/service"
	"github.com/jask/jaskcalc/internal/tui"
)

// app carries flags and the lazily opened collaborators shared by commands.
type app struct {
	configPath string
	session    string
	verbose    bool

	cfg    config.Config
	log    *zap.Logger
	locale *locale.Resolver
	db     *sql.DB
	state  *service.StateService
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "jaskcalc",
		Short: "A keypad calculator for the terminal",
		Long: `jaskcalc is a two-operand calculator with a memory register.

Run without arguments to start the interactive keypad. The screen and memory
of each named session are kept in sqlite between runs.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.Name() == "jaskcalc")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTUI(cmd.Context())
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default $HOME/.config/jaskcalc/config.toml)")
	root.PersistentFlags().StringVarP(&a.session, "session", "s", "", "session name (default from config)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newEvalCmd(a), newPressCmd(a), newHistoryCmd(a), newStateCmd(a))
	return root
}

// setup loads config and builds the logger and locale. The TUI owns the
// terminal, so it only logs when a log file is configured.
func (a *app) setup(interactive bool) error {
	path := a.configPath
	if path == "" {
		path = os.Getenv("JASKCALC_CONFIG")
	}
	cfg, err := config.LoadFrom(path)
	if err != nil {
		return err
	}
	if a.session == "" {
		a.session = strings.TrimSpace(cfg.Session.Name)
	}
	if a.session == "" {
		a.session = database.DefaultSession
	}
	if a.verbose {
		cfg.Log.Level = "debug"
	}
	a.cfg = cfg

	if a.log, err = logging.New(cfg.Log, interactive); err != nil {
		return err
	}
	if a.locale, err = locale.FromConfig(cfg.Locale); err != nil {
		return err
	}
	return nil
}

// open connects to the database on first use.
func (a *app) open(ctx context.Context) (*service.StateService, error) {
	if a.state != nil {
		return a.state, nil
	}
	db, err := database.OpenMigrated(ctx, a.cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	a.db = db
	a.state = service.NewStateService(db, a.log)
	a.log.Debug("database ready", zap.String("path", a.cfg.Database.Path))
	return a.state, nil
}

func (a *app) close() error {
	if a.log != nil {
		_ = a.log.Sync()
	}
	if a.db == nil {
		return nil
	}
	err := a.db.Close()
	a.db, a.state = nil, nil
	return err
}

// engine restores the session into a new engine that records its history.
func (a *app) engine(ctx context.Context) (*calc.Engine, *service.StateService, error) {
	svc, err := a.open(ctx)
	if err != nil {
		return nil, nil, err
	}
	st, err := svc.Load(ctx, a.session)
	if err != nil {
		return nil, nil, err
	}
	e := calc.New(
		calc.WithLocale(a.locale),
		calc.WithMessages(a.cfg.Messages.Calc()),
		calc.WithLogger(a.log.Named("calc")),
		calc.WithSolveHook(svc.Hook(ctx, a.session)),
	)
	e.Restore(st)
	return e, svc, nil
}

func (a *app) runTUI(ctx context.Context) error {
	e, svc, err := a.engine(ctx)
	if err != nil {
		return err
	}
	keys := keypad.NewRegistry()
	if err := keys.Apply(a.cfg.Keys); err != nil {
		return err
	}
	configPath := a.configPath
	if configPath == "" {
		configPath = config.Path()
	}

	m := tui.New(ctx, tui.Deps{
		Engine:     e,
		Locale:     a.locale,
		Keys:       keys,
		State:      svc,
		Config:     a.cfg,
		Session:    a.session,
		Log:        a.log.Named("tui"),
		ConfigPath: configPath,
	})
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		return err
	}
	return svc.Save(ctx, a.session, e.Snapshot())
}

func main() {
	a := &app{}
	err := newRootCmd(a).ExecuteContext(context.Background())
	if cerr := a.close(); err == nil {
		err = cerr
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
