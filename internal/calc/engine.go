package calc

import (
	"unicode/utf8"

	"go.uber.org/zap"
)

// State is the part of an engine the host persists across restarts.
type State struct {
	Screen string  `yaml:"screen"`
	Memory float64 `yaml:"memory"`
}

// Record describes one evaluated binary expression.
type Record struct {
	Expression string
	// Result is the formatted value, empty when Kind is set.
	Result string
	Kind   ErrorKind
}

// Engine owns the screen and the memory register.
type Engine struct {
	screen   string
	memory   float64
	cursor   int
	locale   Locale
	messages Messages
	log      *zap.Logger
	hook     func(Record)
}

// Option configures an Engine.
type Option func(*Engine)

// WithLocale sets the separator source. The default is DefaultSeparators.
func WithLocale(l Locale) Option {
	return func(e *Engine) {
		if l != nil {
			e.locale = l
		}
	}
}

// WithMessages sets the error texts. Empty fields keep their defaults.
func WithMessages(m Messages) Option {
	return func(e *Engine) {
		e.messages = m.withDefaults()
	}
}

// WithLogger sets the logger used for debug tracing.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithSolveHook registers fn to receive every evaluated expression.
func WithSolveHook(fn func(Record)) Option {
	return func(e *Engine) {
		e.hook = fn
	}
}

// New returns an engine showing "0" with an empty memory.
func New(opts ...Option) *Engine {
	e := &Engine{
		locale:   FixedLocale(DefaultSeparators),
		messages: DefaultMessages(),
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.setScreen("0")
	return e
}

// Screen returns the current screen text.
func (e *Engine) Screen() string { return e.screen }

// Memory returns the memory register.
func (e *Engine) Memory() float64 { return e.memory }

// Cursor returns the cursor position in runes. Commits move it to the end.
func (e *Engine) Cursor() int { return e.cursor }

// Messages returns the error texts in use.
func (e *Engine) Messages() Messages { return e.messages }

// Separators returns the locale separators as of now.
func (e *Engine) Separators() Separators { return e.locale.Separators() }

// ErrorKind reports the error state the screen shows.
func (e *Engine) ErrorKind() ErrorKind { return e.messages.kindOf(e.screen) }

// Err returns the active error state, or nil.
func (e *Engine) Err() error {
	if kind := e.ErrorKind(); kind != ErrorNone {
		return &Error{Kind: kind}
	}
	return nil
}

// Value returns the screen as a number when it is one.
func (e *Engine) Value() (float64, bool) {
	return e.value(e.Separators())
}

func (e *Engine) value(seps Separators) (float64, bool) {
	if !IsNumber(e.screen, seps) {
		return 0, false
	}
	v, err := ParseNumber(e.screen, seps)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Snapshot returns the persistable state.
func (e *Engine) Snapshot() State {
	return State{Screen: e.screen, Memory: e.memory}
}

// Restore replaces the engine state. An empty screen becomes "0".
func (e *Engine) Restore(s State) {
	if s.Screen == "" {
		s.Screen = "0"
	}
	e.memory = s.Memory
	e.setScreen(s.Screen)
}

func (e *Engine) inError() bool { return e.ErrorKind() != ErrorNone }

func (e *Engine) setScreen(text string) {
	e.screen = text
	e.cursor = utf8.RuneCountInString(text)
}

// commit shows text unless it overflows, in which case the overflow error
// is shown instead.
func (e *Engine) commit(text string, seps Separators) error {
	if Overflows(text, seps) {
		return e.fail(ErrorOverflow)
	}
	e.setScreen(text)
	return nil
}

func (e *Engine) commitValue(v float64, seps Separators) error {
	if OverflowsValue(v, seps) {
		return e.fail(ErrorOverflow)
	}
	e.setScreen(Format(v, seps))
	return nil
}

func (e *Engine) fail(kind ErrorKind) error {
	err := &Error{Kind: kind, Screen: e.screen}
	e.log.Debug("calculator error", zap.Stringer("kind", kind), zap.String("screen", e.screen))
	e.setScreen(e.messages.For(kind).Screen)
	return err
}

func (e *Engine) record(r Record) {
	if e.hook != nil {
		e.hook(r)
	}
}
