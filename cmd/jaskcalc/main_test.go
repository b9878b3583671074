package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/jaskcalc/internal/keypad"
)

func setupHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("JASKCALC_CONFIG", "")
	t.Setenv("JASKCALC_LOG_LEVEL", "error")
	return home
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	a := &app{}
	root := newRootCmd(a)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	require.NoError(t, a.close())
	return out.String(), err
}

func TestEval(t *testing.T) {
	setupHome(t)

	out, err := run(t, "eval", "12*3.5")
	require.NoError(t, err)
	require.Equal(t, "42\n", out)

	out, err = run(t, "eval", "--", "-7+2")
	require.NoError(t, err)
	require.Equal(t, "-5\n", out)

	out, err = run(t, "eval", "3--2")
	require.NoError(t, err)
	require.Equal(t, "5\n", out)

	out, err = run(t, "eval", "9/0")
	require.EqualError(t, err, "Cannot divide by zero.")
	require.Equal(t, "Error: div by 0\n", out)

	out, err = run(t, "history")
	require.NoError(t, err)
	require.Equal(t, "9/0\t! division_by_zero\n3--2\t= 5\n-7+2\t= -5\n12*3.5\t= 42\n", out)

	out, err = run(t, "history", "--limit", "1")
	require.NoError(t, err)
	require.Equal(t, "9/0\t! division_by_zero\n", out)
}

func TestPressKeepsSessionState(t *testing.T) {
	setupHome(t)

	out, err := run(t, "press", "4", "2", "memory_store", "clear", "8", "memory-plus")
	require.NoError(t, err)
	require.Equal(t, "50\n", out)

	out, err = run(t, "press", "add", "1")
	require.NoError(t, err)
	require.Equal(t, "50+1\n", out)

	out, err = run(t, "state", "show")
	require.NoError(t, err)
	require.Contains(t, out, "screen:  50+1\n")
	require.Contains(t, out, "memory:  50\n")

	// Another session starts fresh.
	out, err = run(t, "--session", "other", "state", "show")
	require.NoError(t, err)
	require.Contains(t, out, "session: other\n")
	require.Contains(t, out, "screen:  0\n")
}

func TestPressRejectsUnknownAction(t *testing.T) {
	setupHome(t)

	_, err := run(t, "press", "1", "equls")
	require.ErrorIs(t, err, keypad.ErrUnknownAction)
	require.Contains(t, err.Error(), "equals")

	_, err = run(t, "press", "quit")
	require.Error(t, err)
}

func TestHistoryClearKeepsScreen(t *testing.T) {
	setupHome(t)

	_, err := run(t, "press", "2", "power", "3", "equals")
	require.NoError(t, err)

	out, err := run(t, "history", "--clear")
	require.NoError(t, err)
	require.Empty(t, out)

	out, err = run(t, "history")
	require.NoError(t, err)
	require.Equal(t, "no history\n", out)

	out, err = run(t, "state", "show")
	require.NoError(t, err)
	require.Contains(t, out, "screen:  8\n")
}

func TestStateExportImport(t *testing.T) {
	home := setupHome(t)
	file := filepath.Join(home, "snapshots", "calc.yaml")

	_, err := run(t, "press", "7", "memory_store", "multiply")
	require.NoError(t, err)
	_, err = run(t, "state", "export", file)
	require.NoError(t, err)

	_, err = run(t, "state", "reset")
	require.NoError(t, err)
	out, err := run(t, "state", "show")
	require.NoError(t, err)
	require.Contains(t, out, "screen:  0\n")
	require.Contains(t, out, "memory:  0\n")

	_, err = run(t, "state", "import", file)
	require.NoError(t, err)
	out, err = run(t, "state", "show")
	require.NoError(t, err)
	require.Contains(t, out, "screen:  7*\n")
	require.Contains(t, out, "memory:  7\n")
}

func TestConfigFlag(t *testing.T) {
	home := setupHome(t)
	cfgPath := filepath.Join(home, "custom.toml")
	require.NoError(t, writeFile(cfgPath, "[locale]\ntag = \"de\"\n"))

	out, err := run(t, "--config", cfgPath, "eval", "1,5*3")
	require.NoError(t, err)
	require.Equal(t, "4,5\n", out)
}
