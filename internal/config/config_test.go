package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/jaskcalc/internal/calc"
)

func TestLoadDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("JASKCALC_CONFIG", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, ".local", "share", "jaskcalc", "jaskcalc.db"), cfg.Database.Path)
	require.Equal(t, "en", cfg.Locale.Tag)
	require.False(t, cfg.Locale.Grouping)
	require.Equal(t, []string{"en", "de", "fr"}, cfg.Locale.Cycle)
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, "default", cfg.Session.Name)
	require.Equal(t, calc.DefaultMessages(), cfg.Messages.Calc())
}

func TestSaveAndReload(t *testing.T) {
	home := t.TempDir()
	path := filepath.Join(home, "conf", "jaskcalc.toml")
	t.Setenv("HOME", home)
	t.Setenv("JASKCALC_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)
	cfg.Locale.Tag = "de"
	cfg.Locale.Grouping = true
	cfg.Locale.GroupingSeparator = " "
	cfg.Messages.Overflow = "E3"
	cfg.Session.Name = "work"
	cfg.Keys = map[string][]string{"clear": {"delete"}}
	require.NoError(t, Save(cfg))

	_, err = os.Stat(path)
	require.NoError(t, err)

	got, err := Load()
	require.NoError(t, err)
	require.Equal(t, "de", got.Locale.Tag)
	require.True(t, got.Locale.Grouping)
	require.Equal(t, " ", got.Locale.GroupingSeparator)
	require.Equal(t, "E3", got.Messages.Calc().Overflow.Screen)
	require.Equal(t, "work", got.Session.Name)
	require.Equal(t, []string{"delete"}, got.Keys["clear"])
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("JASKCALC_CONFIG", "")
	t.Setenv("JASKCALC_LOCALE_TAG", "fr")
	t.Setenv("JASKCALC_SESSION_NAME", "scratch")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "fr", cfg.Locale.Tag)
	require.Equal(t, "scratch", cfg.Session.Name)
}
