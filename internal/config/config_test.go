package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func validConfig() Config {
	return Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Output: "stderr",
		},
		Game: GameConfig{
			SaveDir:          "saves",
			ContentDir:       "content",
			AutoSaveInterval: 5 * time.Minute,
		},
		Combat: CombatConfig{MaxAutoRounds: 50},
		Scripting: ScriptingConfig{
			ScriptDir: "scripts",
		},
	}
}

func TestValidConfig(t *testing.T) {
	cfg := validConfig()
	assert.NoError(t, cfg.Validate())
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "saves", cfg.Game.SaveDir)
	assert.Equal(t, "content", cfg.Game.ContentDir)
	assert.Equal(t, 5*time.Minute, cfg.Game.AutoSaveInterval)
	assert.Zero(t, cfg.Game.Seed)
	assert.Equal(t, 50, cfg.Combat.MaxAutoRounds)
	assert.False(t, cfg.Scripting.Enabled)
	assert.Equal(t, "stderr", cfg.Logging.Output)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yaml")
	err := os.WriteFile(path, []byte(`
logging:
  level: debug
  format: console
game:
  save_dir: /tmp/rpg-saves
  autosave_interval: 90s
  seed: 42
combat:
  max_auto_rounds: 10
scripting:
  enabled: true
  instruction_limit: 5000
`), 0644)
	require.NoError(t, err)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "/tmp/rpg-saves", cfg.Game.SaveDir)
	assert.Equal(t, 90*time.Second, cfg.Game.AutoSaveInterval)
	assert.Equal(t, uint64(42), cfg.Game.Seed)
	assert.Equal(t, 10, cfg.Combat.MaxAutoRounds)
	assert.True(t, cfg.Scripting.Enabled)
	assert.Equal(t, 5000, cfg.Scripting.InstructionLimit)
	assert.Equal(t, "content", cfg.Game.ContentDir, "unset keys keep their defaults")
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("RPG_GAME_SAVE_DIR", "/var/lib/rpg")
	t.Setenv("RPG_COMBAT_MAX_AUTO_ROUNDS", "7")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/rpg", cfg.Game.SaveDir)
	assert.Equal(t, 7, cfg.Combat.MaxAutoRounds)
}

func TestLoadInvalidPath(t *testing.T) {
	_, err := Load("/nonexistent/path.yaml")
	assert.Error(t, err)
}

func TestLoad_InvalidValuesRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("combat:\n  max_auto_rounds: 0\n"), 0644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "combat.max_auto_rounds")
}

func TestScriptPath(t *testing.T) {
	cfg := validConfig()
	assert.Equal(t, filepath.Join("content", "scripts"), cfg.ScriptPath())

	cfg.Scripting.ScriptDir = "/opt/scripts"
	assert.Equal(t, "/opt/scripts", cfg.ScriptPath())

	cfg.Scripting.ScriptDir = "scripts"
	cfg.Game.ContentDir = ""
	assert.Equal(t, "scripts", cfg.ScriptPath())
}

func TestValidateLoggingLevel(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		cfg := validConfig()
		cfg.Logging.Level = level
		assert.NoError(t, cfg.Validate(), "level %q should be valid", level)
	}
	cfg := validConfig()
	cfg.Logging.Level = "trace"
	assert.Error(t, cfg.Validate())
}

func TestValidateLoggingFormat(t *testing.T) {
	for _, format := range []string{"json", "console"} {
		cfg := validConfig()
		cfg.Logging.Format = format
		assert.NoError(t, cfg.Validate(), "format %q should be valid", format)
	}
	cfg := validConfig()
	cfg.Logging.Format = "xml"
	assert.Error(t, cfg.Validate())
}

func TestValidateSaveDirEmpty(t *testing.T) {
	cfg := validConfig()
	cfg.Game.SaveDir = "  "
	assert.Error(t, cfg.Validate())
}

func TestValidateAutoSaveInterval(t *testing.T) {
	cfg := validConfig()
	cfg.Game.AutoSaveInterval = 0
	assert.NoError(t, cfg.Validate(), "zero disables auto-save")

	cfg.Game.AutoSaveInterval = -time.Second
	assert.Error(t, cfg.Validate())
}

func TestValidateScripting(t *testing.T) {
	cfg := validConfig()
	cfg.Scripting.Enabled = true
	cfg.Scripting.ScriptDir = ""
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.Scripting.InstructionLimit = -1
	assert.Error(t, cfg.Validate())
}

func TestValidate_AggregatesAllViolations(t *testing.T) {
	cfg := validConfig()
	cfg.Logging.Level = "loud"
	cfg.Game.SaveDir = ""
	cfg.Combat.MaxAutoRounds = 0

	err := cfg.Validate()
	require.Error(t, err)
	for _, key := range []string{"logging.level", "game.save_dir", "combat.max_auto_rounds"} {
		assert.Contains(t, err.Error(), key)
	}
}

// Property-based tests

func TestPropertyMaxAutoRounds(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		rounds := rapid.IntRange(-100, 1000).Draw(t, "rounds")
		cfg := validConfig()
		cfg.Combat.MaxAutoRounds = rounds
		err := cfg.Validate()
		if rounds >= 1 && err != nil {
			t.Fatalf("valid max_auto_rounds %d rejected: %v", rounds, err)
		}
		if rounds < 1 && err == nil {
			t.Fatalf("invalid max_auto_rounds %d accepted", rounds)
		}
	})
}
