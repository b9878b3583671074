package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/jask/jaskcalc/internal/calc"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	Locale   LocaleConfig
	Log      LogConfig
	Session  SessionConfig
	Messages MessagesConfig
	// Keys rebinds keypad actions, e.g. clear = ["delete"].
	Keys map[string][]string
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// LocaleConfig selects the number separators. Empty separators are derived
// from Tag.
type LocaleConfig struct {
	Tag               string
	DecimalSeparator  string `mapstructure:"decimal_separator"`
	GroupingSeparator string `mapstructure:"grouping_separator"`
	Grouping          bool
	// Cycle lists the tags the TUI switches between.
	Cycle []string
}

// LogConfig holds zap settings. An empty File disables logging in the TUI.
type LogConfig struct {
	Level string
	File  string
}

// SessionConfig names the persisted calculator session.
type SessionConfig struct {
	Name string
}

// MessagesConfig holds the error texts shown on the screen and in toasts.
type MessagesConfig struct {
	MissingOperand       string `mapstructure:"missing_operand"`
	MissingOperandDetail string `mapstructure:"missing_operand_detail"`
	DivisionByZero       string `mapstructure:"division_by_zero"`
	DivisionByZeroDetail string `mapstructure:"division_by_zero_detail"`
	Overflow             string
	OverflowDetail       string `mapstructure:"overflow_detail"`
}

// Calc converts the configured texts for the engine.
func (m MessagesConfig) Calc() calc.Messages {
	return calc.Messages{
		MissingOperand: calc.Message{Screen: m.MissingOperand, Detail: m.MissingOperandDetail},
		DivisionByZero: calc.Message{Screen: m.DivisionByZero, Detail: m.DivisionByZeroDetail},
		Overflow:       calc.Message{Screen: m.Overflow, Detail: m.OverflowDetail},
	}
}

// Path returns the config file location. JASKCALC_CONFIG overrides it.
func Path() string {
	if p := os.Getenv("JASKCALC_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "jaskcalc", "config.toml")
}

// Load reads configuration from file and env. Env var overrides use prefix JASKCALC_.
func Load() (Config, error) {
	return LoadFrom(os.Getenv("JASKCALC_CONFIG"))
}

// LoadFrom is Load with an explicit config file. An empty path searches the
// default location.
func LoadFrom(path string) (Config, error) {
	v := viper.New()

	// default values
	msgs := calc.DefaultMessages()
	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "jaskcalc", "jaskcalc.db"))
	v.SetDefault("locale.tag", "en")
	v.SetDefault("locale.decimal_separator", "")
	v.SetDefault("locale.grouping_separator", "")
	v.SetDefault("locale.grouping", false)
	v.SetDefault("locale.cycle", []string{"en", "de", "fr"})
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("session.name", "default")
	v.SetDefault("messages.missing_operand", msgs.MissingOperand.Screen)
	v.SetDefault("messages.missing_operand_detail", msgs.MissingOperand.Detail)
	v.SetDefault("messages.division_by_zero", msgs.DivisionByZero.Screen)
	v.SetDefault("messages.division_by_zero_detail", msgs.DivisionByZero.Detail)
	v.SetDefault("messages.overflow", msgs.Overflow.Screen)
	v.SetDefault("messages.overflow_detail", msgs.Overflow.Detail)

	v.SetConfigType("toml")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "jaskcalc"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("JASKCALC")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory if needed.
// The TUI uses it to remember the last selected locale.
func Save(cfg Config) error {
	return SaveTo(Path(), cfg)
}

// SaveTo writes cfg to path.
func SaveTo(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("locale.tag", cfg.Locale.Tag)
	v.Set("locale.decimal_separator", cfg.Locale.DecimalSeparator)
	v.Set("locale.grouping_separator", cfg.Locale.GroupingSeparator)
	v.Set("locale.grouping", cfg.Locale.Grouping)
	v.Set("locale.cycle", cfg.Locale.Cycle)
	v.Set("log.level", cfg.Log.Level)
	v.Set("log.file", cfg.Log.File)
	v.Set("session.name", cfg.Session.Name)
	v.Set("messages.missing_operand", cfg.Messages.MissingOperand)
	v.Set("messages.missing_operand_detail", cfg.Messages.MissingOperandDetail)
	v.Set("messages.division_by_zero", cfg.Messages.DivisionByZero)
	v.Set("messages.division_by_zero_detail", cfg.Messages.DivisionByZeroDetail)
	v.Set("messages.overflow", cfg.Messages.Overflow)
	v.Set("messages.overflow_detail", cfg.Messages.OverflowDetail)
	if len(cfg.Keys) > 0 {
		v.Set("keys", cfg.Keys)
	}

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
