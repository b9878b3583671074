// Package keypad maps keys and action names onto calculator operations.
package keypad

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/jask/jaskcalc/internal/calc"
)

// Action names a keypad button.
type Action string

const (
	Digit0 Action = "0"
	Digit1 Action = "1"
	Digit2 Action = "2"
	Digit3 Action = "3"
	Digit4 Action = "4"
	Digit5 Action = "5"
	Digit6 Action = "6"
	Digit7 Action = "7"
	Digit8 Action = "8"
	Digit9 Action = "9"

	Decimal  Action = "decimal"
	Add      Action = "add"
	Subtract Action = "subtract"
	Multiply Action = "multiply"
	Divide   Action = "divide"
	Power    Action = "power"
	Equals   Action = "equals"

	Clear     Action = "clear"
	Backspace Action = "backspace"

	MemoryStore  Action = "memory_store"
	MemoryRecall Action = "memory_recall"
	MemoryClear  Action = "memory_clear"
	MemoryPlus   Action = "memory_plus"
	MemoryMinus  Action = "memory_minus"

	Inverse    Action = "inverse"
	Percent    Action = "percent"
	SquareRoot Action = "sqrt"
	ToggleSign Action = "sign"

	// Host actions; Dispatch does not handle them.
	Quit          Action = "quit"
	CycleLocale   Action = "cycle_locale"
	ToggleHistory Action = "toggle_history"
)

var operators = map[Action]calc.Operator{
	Add:      calc.OpAdd,
	Subtract: calc.OpSubtract,
	Multiply: calc.OpMultiply,
	Divide:   calc.OpDivide,
	Power:    calc.OpPower,
}

var engineActions = map[Action]func(*calc.Engine) error{
	Decimal:      (*calc.Engine).AppendDecimalPoint,
	Equals:       (*calc.Engine).Equals,
	Clear:        func(e *calc.Engine) error { e.Clear(); return nil },
	Backspace:    func(e *calc.Engine) error { e.Backspace(); return nil },
	MemoryStore:  (*calc.Engine).MemoryStore,
	MemoryRecall: (*calc.Engine).MemoryRecall,
	MemoryClear:  func(e *calc.Engine) error { e.MemoryClear(); return nil },
	MemoryPlus:   (*calc.Engine).MemoryPlus,
	MemoryMinus:  (*calc.Engine).MemoryMinus,
	Inverse:      (*calc.Engine).Inverse,
	Percent:      (*calc.Engine).Percent,
	SquareRoot:   (*calc.Engine).SquareRoot,
	ToggleSign:   (*calc.Engine).ToggleSign,
}

var hostActions = map[Action]bool{Quit: true, CycleLocale: true, ToggleHistory: true}

// ErrUnknownAction is wrapped by UnknownActionError.
var ErrUnknownAction = errors.New("unknown action")

// UnknownActionError names an action that does not exist and the closest
// one that does.
type UnknownActionError struct {
	Name       string
	Suggestion Action
}

func (e *UnknownActionError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("unknown action %q (did you mean %q?)", e.Name, e.Suggestion)
	}
	return fmt.Sprintf("unknown action %q", e.Name)
}

func (e *UnknownActionError) Unwrap() error { return ErrUnknownAction }

// IsDigit reports whether a appends a digit.
func (a Action) IsDigit() bool {
	return len(a) == 1 && a[0] >= '0' && a[0] <= '9'
}

// Engine reports whether Dispatch handles a.
func (a Action) Engine() bool {
	if a.IsDigit() {
		return true
	}
	if _, ok := operators[a]; ok {
		return true
	}
	_, ok := engineActions[a]
	return ok
}

// Actions lists every known action, sorted.
func Actions() []Action {
	out := make([]Action, 0, len(operators)+len(engineActions)+len(hostActions)+10)
	for d := '0'; d <= '9'; d++ {
		out = append(out, Action(string(d)))
	}
	for a := range operators {
		out = append(out, a)
	}
	for a := range engineActions {
		out = append(out, a)
	}
	for a := range hostActions {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ParseAction resolves an action name, case-insensitively. Unknown names
// return an *UnknownActionError carrying the nearest known action.
func ParseAction(name string) (Action, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.ReplaceAll(n, "-", "_")
	for _, a := range Actions() {
		if string(a) == n {
			return a, nil
		}
	}
	return "", &UnknownActionError{Name: name, Suggestion: suggest(n)}
}

// suggest returns the known action closest to name, if any is close enough
// to be a plausible typo.
func suggest(name string) Action {
	if name == "" {
		return ""
	}
	best, bestDist := Action(""), -1
	for _, a := range Actions() {
		if a.IsDigit() {
			continue
		}
		d := levenshtein.ComputeDistance(name, string(a))
		if bestDist < 0 || d < bestDist {
			best, bestDist = a, d
		}
	}
	if bestDist > max(2, len(name)/3) {
		return ""
	}
	return best
}

// Dispatch applies a to e. Host actions and unknown actions return an error.
func Dispatch(e *calc.Engine, a Action) error {
	if a.IsDigit() {
		return e.Append(string(a))
	}
	if op, ok := operators[a]; ok {
		return e.AppendOperator(op)
	}
	if fn, ok := engineActions[a]; ok {
		return fn(e)
	}
	if hostActions[a] {
		return fmt.Errorf("keypad: %s is not an engine action", a)
	}
	return &UnknownActionError{Name: string(a), Suggestion: suggest(string(a))}
}
