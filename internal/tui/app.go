package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jask/jaskcalc/internal/calc"
	"github.com/jask/jaskcalc/internal/config"
	"github.com/jask/jaskcalc/internal/database/repository"
	"github.com/jask/jaskcalc/internal/keypad"
	"github.com/jask/jaskcalc/internal/locale"
	"github.com/jask/jaskcalc/internal/service"
)

const historyLimit = 10

// App is the interactive calculator.
type App struct {
	ctx     context.Context
	engine  *calc.Engine
	locale  *locale.Resolver
	keys    *keypad.Registry
	help    help.Model
	state   *service.StateService
	cfg     config.Config
	session string
	log     *zap.Logger

	// configPath receives locale switches. Empty keeps them in memory.
	configPath string

	pressed     keypad.Action
	toast       string
	toastErr    bool
	showHistory bool
	history     []repository.HistoryEntry
	width       int
}

// Deps are the collaborators of an App. State may be nil, in which case
// nothing is persisted.
type Deps struct {
	Engine     *calc.Engine
	Locale     *locale.Resolver
	Keys       *keypad.Registry
	State      *service.StateService
	Config     config.Config
	Session    string
	Log        *zap.Logger
	ConfigPath string
}

func New(ctx context.Context, d Deps) *App {
	if d.Keys == nil {
		d.Keys = keypad.NewRegistry()
	}
	if d.Log == nil {
		d.Log = zap.NewNop()
	}
	if d.Engine == nil {
		opts := []calc.Option{calc.WithLogger(d.Log)}
		if d.Locale != nil {
			opts = append(opts, calc.WithLocale(d.Locale))
		}
		d.Engine = calc.New(opts...)
	}
	return &App{
		ctx:        ctx,
		engine:     d.Engine,
		locale:     d.Locale,
		keys:       d.Keys,
		help:       help.New(),
		state:      d.State,
		cfg:        d.Config,
		session:    d.Session,
		log:        d.Log,
		configPath: d.ConfigPath,
	}
}

func (a *App) Init() tea.Cmd { return nil }

// Engine exposes the calculator for hosts that snapshot it after the
// program exits.
func (a *App) Engine() *calc.Engine { return a.engine }

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.KeyMsg:
		b := a.keys.Lookup(m.String())
		if b == nil {
			return a, nil
		}
		return a.handleAction(b.Action)
	case tea.WindowSizeMsg:
		a.width = m.Width
		a.help.Width = m.Width
	case historyMsg:
		a.history = []repository.HistoryEntry(m)
	case errMsg:
		a.log.Warn("tui command failed", zap.Error(m.error))
		a.setToast("error: "+m.Error(), true)
	}
	return a, nil
}

func (a *App) handleAction(action keypad.Action) (tea.Model, tea.Cmd) {
	a.pressed = action
	switch action {
	case keypad.Quit:
		return a, tea.Sequence(a.saveStateCmd(), tea.Quit)
	case keypad.ToggleHistory:
		a.showHistory = !a.showHistory
		if a.showHistory {
			return a, a.loadHistoryCmd()
		}
		return a, nil
	case keypad.CycleLocale:
		return a, a.cycleLocale()
	}

	a.setToast("", false)
	if err := keypad.Dispatch(a.engine, action); err != nil {
		var ce *calc.Error
		if errors.As(err, &ce) {
			a.setToast(a.engine.Messages().For(ce.Kind).Detail, true)
		} else {
			a.log.Debug("action failed", zap.String("action", string(action)), zap.Error(err))
			a.setToast(err.Error(), true)
		}
	}
	if a.showHistory {
		return a, a.loadHistoryCmd()
	}
	return a, nil
}

// cycleLocale moves to the next configured tag. A number on the screen is
// re-rendered with the new separators; anything else is cleared.
func (a *App) cycleLocale() tea.Cmd {
	if a.locale == nil || len(a.cfg.Locale.Cycle) == 0 {
		a.setToast("no locales to cycle", true)
		return nil
	}
	next := a.cfg.Locale.Cycle[0]
	for i, tag := range a.cfg.Locale.Cycle {
		if tag == a.locale.Tag() {
			next = a.cfg.Locale.Cycle[(i+1)%len(a.cfg.Locale.Cycle)]
			break
		}
	}

	v, isNumber := a.engine.Value()
	if err := a.locale.SetTag(next); err != nil {
		a.setToast(err.Error(), true)
		return nil
	}
	if isNumber {
		a.engine.Restore(calc.State{
			Screen: calc.Format(v, a.engine.Separators()),
			Memory: a.engine.Memory(),
		})
	} else {
		a.engine.Clear()
	}
	a.cfg.Locale.Tag = a.locale.Tag()
	a.setToast("locale "+a.locale.Tag(), false)
	a.log.Info("locale switched", zap.String("tag", a.locale.Tag()))
	if a.configPath == "" {
		return nil
	}
	cfg, path := a.cfg, a.configPath
	return func() tea.Msg {
		if err := config.SaveTo(path, cfg); err != nil {
			return errMsg{fmt.Errorf("save config: %w", err)}
		}
		return nil
	}
}

func (a *App) setToast(text string, isErr bool) {
	a.toast = text
	a.toastErr = isErr
}

func (a *App) saveStateCmd() tea.Cmd {
	if a.state == nil {
		return nil
	}
	st := a.engine.Snapshot()
	return func() tea.Msg {
		if err := a.state.Save(a.ctx, a.session, st); err != nil {
			return errMsg{err}
		}
		return nil
	}
}

func (a *App) loadHistoryCmd() tea.Cmd {
	if a.state == nil {
		return nil
	}
	return func() tea.Msg {
		entries, err := a.state.History(a.ctx, a.session, historyLimit)
		if err != nil {
			return errMsg{err}
		}
		return historyMsg(entries)
	}
}

type historyMsg []repository.HistoryEntry

type errMsg struct{ error }
