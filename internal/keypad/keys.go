package keypad

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// Binding ties keys to an action.
type Binding struct {
	Action Action
	Keys   []string
	Help   string
}

// Registry resolves key names to bindings.
type Registry struct {
	bindings []*Binding
	index    map[string]*Binding
}

// NewRegistry returns the default calculator bindings.
func NewRegistry() *Registry {
	r := &Registry{index: make(map[string]*Binding)}
	reg := func(action Action, keys []string, help string) {
		r.Register(Binding{Action: action, Keys: keys, Help: help})
	}

	for d := '0'; d <= '9'; d++ {
		reg(Action(string(d)), []string{string(d)}, string(d))
	}
	reg(Decimal, []string{".", ","}, "decimal")
	reg(Add, []string{"+"}, "add")
	reg(Subtract, []string{"-"}, "subtract")
	reg(Multiply, []string{"*", "x"}, "multiply")
	reg(Divide, []string{"/"}, "divide")
	reg(Power, []string{"^"}, "power")
	reg(Equals, []string{"enter", "="}, "equals")
	reg(Clear, []string{"esc", "c"}, "clear")
	reg(Backspace, []string{"backspace"}, "del")
	reg(MemoryStore, []string{"m"}, "MS")
	reg(MemoryRecall, []string{"r"}, "MR")
	reg(MemoryClear, []string{"M"}, "MC")
	reg(MemoryPlus, []string{"p"}, "M+")
	reg(MemoryMinus, []string{"P"}, "M-")
	reg(Inverse, []string{"i"}, "1/x")
	reg(Percent, []string{"%"}, "%")
	reg(SquareRoot, []string{"s"}, "sqrt")
	reg(ToggleSign, []string{"n"}, "+/-")
	reg(ToggleHistory, []string{"h"}, "history")
	reg(CycleLocale, []string{"ctrl+l"}, "locale")
	reg(Quit, []string{"q", "ctrl+c"}, "quit")
	return r
}

// Register adds b. Keys already bound are skipped; a binding left with no
// keys is dropped.
func (r *Registry) Register(b Binding) {
	if r == nil {
		return
	}
	var keys []string
	for _, k := range normalizeKeyList(b.Keys) {
		if _, taken := r.index[k]; !taken {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return
	}
	copyBinding := b
	copyBinding.Keys = keys
	r.bindings = append(r.bindings, &copyBinding)
	for _, k := range keys {
		r.index[k] = &copyBinding
	}
}

// Lookup returns the binding for keyName, or nil.
func (r *Registry) Lookup(keyName string) *Binding {
	if r == nil || keyName == "" {
		return nil
	}
	return r.index[normalizeKeyName(keyName)]
}

// Bindings returns a copy of every binding in registration order.
func (r *Registry) Bindings() []Binding {
	if r == nil {
		return nil
	}
	out := make([]Binding, 0, len(r.bindings))
	for _, b := range r.bindings {
		out = append(out, *b)
	}
	return out
}

// KeyFor returns the first key bound to action, or "".
func (r *Registry) KeyFor(action Action) string {
	for _, b := range r.Bindings() {
		if b.Action == action {
			return b.Keys[0]
		}
	}
	return ""
}

// HelpBindings renders the given actions for bubbles/help.
func (r *Registry) HelpBindings(actions ...Action) []key.Binding {
	out := make([]key.Binding, 0, len(actions))
	for _, a := range actions {
		for _, b := range r.Bindings() {
			if b.Action != a {
				continue
			}
			out = append(out, key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(b.Keys[0], b.Help)))
			break
		}
	}
	return out
}

// Apply rebinds actions to new keys. Every action must exist and no key may
// end up on two actions.
func (r *Registry) Apply(overrides map[string][]string) error {
	if r == nil || len(overrides) == 0 {
		return nil
	}
	names := make([]string, 0, len(overrides))
	for name := range overrides {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		action, err := ParseAction(name)
		if err != nil {
			return fmt.Errorf("key override: %w", err)
		}
		keys := normalizeKeyList(overrides[name])
		if len(keys) == 0 {
			return fmt.Errorf("key override action=%q: keys are required", action)
		}
		var target *Binding
		for _, b := range r.bindings {
			if b.Action == action {
				target = b
				break
			}
		}
		if target == nil {
			r.bindings = append(r.bindings, &Binding{Action: action, Keys: keys, Help: string(action)})
			continue
		}
		target.Keys = keys
	}

	seen := make(map[string]Action)
	for _, b := range r.bindings {
		for _, k := range b.Keys {
			if prev, ok := seen[k]; ok {
				return fmt.Errorf("key override conflict: key %q used by both %q and %q", k, prev, b.Action)
			}
			seen[k] = b.Action
		}
	}
	r.rebuildIndex()
	return nil
}

func (r *Registry) rebuildIndex() {
	r.index = make(map[string]*Binding, len(r.bindings))
	for _, b := range r.bindings {
		for _, k := range b.Keys {
			r.index[k] = b
		}
	}
}

func normalizeKeyList(keys []string) []string {
	out := make([]string, 0, len(keys))
	seen := make(map[string]bool)
	for _, k := range keys {
		n := normalizeKeyName(k)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

func normalizeKeyName(k string) string {
	if k == " " {
		return "space"
	}
	trimmed := strings.TrimSpace(k)
	if trimmed == "" {
		return ""
	}
	if len(trimmed) == 1 {
		// Single characters keep their case: m and M are different keys.
		return trimmed
	}
	s := strings.ToLower(trimmed)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "control+", "ctrl+")
	s = strings.ReplaceAll(s, "ctl+", "ctrl+")
	s = strings.ReplaceAll(s, "return", "enter")
	s = strings.ReplaceAll(s, "escape", "esc")
	return s
}
