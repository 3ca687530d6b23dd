// Package config provides Viper-based configuration loading for the game.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
	// Output is a zap sink: "stderr", "stdout" or a file path. The console
	// game writes to stdout, so logs default to stderr.
	Output string `mapstructure:"output"`
}

// GameConfig holds save, content and randomness settings.
type GameConfig struct {
	// SaveDir holds one JSON file per save slot.
	SaveDir string `mapstructure:"save_dir"`
	// ContentDir holds the YAML tables. Empty selects the built-in tables.
	ContentDir string `mapstructure:"content_dir"`
	// AutoSaveInterval is the minimum time between auto-saves. 0 disables
	// auto-saving.
	AutoSaveInterval time.Duration `mapstructure:"autosave_interval"`
	// Seed selects a deterministic random source when non-zero.
	Seed uint64 `mapstructure:"seed"`
}

// CombatConfig holds combat tuning.
type CombatConfig struct {
	// MaxAutoRounds caps AutoBattle.
	MaxAutoRounds int `mapstructure:"max_auto_rounds"`
}

// ScriptingConfig controls the Lua status-effect hooks.
type ScriptingConfig struct {
	Enabled bool `mapstructure:"enabled"`
	// ScriptDir is loaded in lexicographic order. Relative paths are
	// resolved against game.content_dir.
	ScriptDir string `mapstructure:"script_dir"`
	// InstructionLimit caps opcodes per hook call; 0 uses the default.
	InstructionLimit int `mapstructure:"instruction_limit"`
}

// Config is the top-level application configuration.
type Config struct {
	Logging   LoggingConfig   `mapstructure:"logging"`
	Game      GameConfig      `mapstructure:"game"`
	Combat    CombatConfig    `mapstructure:"combat"`
	Scripting ScriptingConfig `mapstructure:"scripting"`
}

// ScriptPath returns the script directory with relative paths resolved
// against the content directory.
func (c Config) ScriptPath() string {
	if filepath.IsAbs(c.Scripting.ScriptDir) || c.Game.ContentDir == "" {
		return c.Scripting.ScriptDir
	}
	return filepath.Join(c.Game.ContentDir, c.Scripting.ScriptDir)
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateGame(c.Game); err != nil {
		errs = append(errs, err.Error())
	}
	if c.Combat.MaxAutoRounds < 1 {
		errs = append(errs, fmt.Sprintf("combat.max_auto_rounds must be >= 1, got %d", c.Combat.MaxAutoRounds))
	}
	if err := validateScripting(c.Scripting); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	var errs []string
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		errs = append(errs, fmt.Sprintf("logging.level must be one of [debug, info, warn, error], got %q", l.Level))
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		errs = append(errs, fmt.Sprintf("logging.format must be one of [json, console], got %q", l.Format))
	}
	if l.Output == "" {
		errs = append(errs, "logging.output must not be empty")
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateGame(g GameConfig) error {
	var errs []string
	if strings.TrimSpace(g.SaveDir) == "" {
		errs = append(errs, "game.save_dir must not be empty")
	}
	if g.AutoSaveInterval < 0 {
		errs = append(errs, "game.autosave_interval must not be negative")
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateScripting(s ScriptingConfig) error {
	var errs []string
	if s.Enabled && s.ScriptDir == "" {
		errs = append(errs, "scripting.script_dir must not be empty when scripting is enabled")
	}
	if s.InstructionLimit < 0 {
		errs = append(errs, fmt.Sprintf("scripting.instruction_limit must be >= 0, got %d", s.InstructionLimit))
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

// Load reads configuration from the given file path, applies environment
// variable overrides (RPG_ prefix) and validates the result. An empty path
// uses defaults and the environment only.
//
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetEnvPrefix("RPG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Default returns the configuration Load produces with no file and no
// environment overrides.
func Default() Config {
	v := viper.New()
	setDefaults(v)
	cfg, err := LoadFromViper(v)
	if err != nil {
		panic("config: defaults are invalid: " + err.Error())
	}
	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.output", "stderr")

	v.SetDefault("game.save_dir", "saves")
	v.SetDefault("game.content_dir", "content")
	v.SetDefault("game.autosave_interval", "5m")
	v.SetDefault("game.seed", 0)

	v.SetDefault("combat.max_auto_rounds", 50)

	v.SetDefault("scripting.enabled", false)
	v.SetDefault("scripting.script_dir", "scripts")
	v.SetDefault("scripting.instruction_limit", 0)
}
