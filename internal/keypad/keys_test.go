package keypad

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistryLookup(t *testing.T) {
	t.Parallel()

	r := NewRegistry()

	require.Equal(t, Equals, r.Lookup("enter").Action)
	require.Equal(t, Equals, r.Lookup("Return").Action)
	require.Equal(t, MemoryStore, r.Lookup("m").Action)
	require.Equal(t, MemoryClear, r.Lookup("M").Action)
	require.Equal(t, Decimal, r.Lookup(",").Action)
	require.Equal(t, Digit5, r.Lookup("5").Action)
	require.Equal(t, CycleLocale, r.Lookup("Control+L").Action)
	require.Nil(t, r.Lookup("F12"))
	require.Nil(t, r.Lookup(""))
}

func TestRegistryNoDuplicateKeys(t *testing.T) {
	t.Parallel()

	r := &Registry{index: make(map[string]*Binding)}
	r.Register(Binding{Action: Add, Keys: []string{"x"}, Help: "first"})
	r.Register(Binding{Action: Multiply, Keys: []string{"x"}, Help: "duplicate"})
	r.Register(Binding{Action: Multiply, Keys: []string{"x", "*"}, Help: "partial"})

	b := r.Bindings()
	require.Len(t, b, 2)
	require.Equal(t, Add, b[0].Action)
	require.Equal(t, []string{"*"}, b[1].Keys)
}

func TestRegistryApply(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	require.NoError(t, r.Apply(map[string][]string{"clear": {"Delete"}}))
	require.Equal(t, Clear, r.Lookup("delete").Action)
	require.Nil(t, r.Lookup("esc"))
	require.Equal(t, "delete", r.KeyFor(Clear))

	require.ErrorContains(t, NewRegistry().Apply(map[string][]string{"power": {"+"}}), "conflict")
	require.ErrorIs(t, NewRegistry().Apply(map[string][]string{"nope": {"z"}}), ErrUnknownAction)
	require.Error(t, NewRegistry().Apply(map[string][]string{"add": {"", "  "}}))
}

func TestRegistryHelpBindings(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	help := r.HelpBindings(Equals, Quit, Action("missing"))
	require.Len(t, help, 2)
	require.Equal(t, "enter", help[0].Help().Key)
	require.Equal(t, "equals", help[0].Help().Desc)
	require.Equal(t, []string{"q", "ctrl+c"}, help[1].Keys())
}
