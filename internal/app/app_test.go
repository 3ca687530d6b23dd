package app_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/cory-johannsen/rpg/internal/app"
	"github.com/cory-johannsen/rpg/internal/config"
	"github.com/cory-johannsen/rpg/internal/game/character"
	"github.com/cory-johannsen/rpg/internal/game/status"
)

const repoContent = "../../content"

func repoConfig() config.Config {
	cfg := config.Default()
	cfg.Game.ContentDir = repoContent
	return cfg
}

func TestRepoContentLoads(t *testing.T) {
	cfg := repoConfig()

	table, err := app.ProvideEnemyTable(cfg)
	require.NoError(t, err)
	assert.Len(t, table.EncounterPool(), 4)

	catalog, err := app.ProvideCatalog(cfg)
	require.NoError(t, err)
	assert.Equal(t, 8, catalog.Len())
	_, ok := catalog.Lookup("health potion")
	assert.True(t, ok)

	reg, err := app.ProvideStatusRegistry(cfg)
	require.NoError(t, err)
	poison, ok := reg.Get(status.Poisoned)
	require.True(t, ok)
	assert.Equal(t, "poison_tick", poison.LuaOnTick)
	_, ok = reg.Get(status.Stunned)
	assert.True(t, ok)

	custom, err := app.ProvideCustomization(cfg)
	require.NoError(t, err)
	assert.NoError(t, custom.Validate("Aria", character.DefaultAppearance()))
}

func TestEmptyContentDirUsesBuiltins(t *testing.T) {
	cfg := config.Default()
	cfg.Game.ContentDir = ""

	table, err := app.ProvideEnemyTable(cfg)
	require.NoError(t, err)
	assert.Len(t, table.EncounterPool(), 4)

	catalog, err := app.ProvideCatalog(cfg)
	require.NoError(t, err)
	assert.Equal(t, 8, catalog.Len())

	_, err = app.ProvideStatusRegistry(cfg)
	require.NoError(t, err)
	_, err = app.ProvideCustomization(cfg)
	require.NoError(t, err)
}

func TestMissingContentDirFails(t *testing.T) {
	cfg := config.Default()
	cfg.Game.ContentDir = filepath.Join(t.TempDir(), "missing")

	_, err := app.ProvideEnemyTable(cfg)
	assert.Error(t, err)
	_, err = app.ProvideCatalog(cfg)
	assert.Error(t, err)
}

func TestProvideTickHook(t *testing.T) {
	logger := zaptest.NewLogger(t)

	cfg := repoConfig()
	hook, cleanup, err := app.ProvideTickHook(cfg, logger)
	require.NoError(t, err)
	cleanup()
	assert.Nil(t, hook)

	cfg.Scripting.Enabled = true
	hook, cleanup, err = app.ProvideTickHook(cfg, logger)
	require.NoError(t, err)
	defer cleanup()
	require.NotNil(t, hook)
	dmg, ok := hook.TickDamage("poison_tick", 100, 50, 2)
	assert.True(t, ok)
	assert.Equal(t, 5, dmg)

	cfg.Scripting.ScriptDir = "nope"
	_, _, err = app.ProvideTickHook(cfg, logger)
	assert.Error(t, err)
}

func TestInitialize_BadConfigPath(t *testing.T) {
	_, _, err := app.Initialize(app.Options{ConfigPath: filepath.Join(t.TempDir(), "missing.yaml")})
	assert.Error(t, err)
}

func TestInitialize_PlaysASession(t *testing.T) {
	dir := t.TempDir()
	content, err := filepath.Abs(repoContent)
	require.NoError(t, err)
	cfgFile := filepath.Join(dir, "rpg.yaml")
	yaml := strings.Join([]string{
		"logging:",
		"  level: warn",
		"  output: " + filepath.Join(dir, "rpg.log"),
		"game:",
		"  save_dir: " + filepath.Join(dir, "saves"),
		"  content_dir: " + content,
		"  seed: 42",
		"scripting:",
		"  enabled: true",
	}, "\n")
	require.NoError(t, os.WriteFile(cfgFile, []byte(yaml), 0o644))

	a, cleanup, err := app.Initialize(app.Options{ConfigPath: cfgFile, NoColor: true})
	require.NoError(t, err)
	defer cleanup()

	var out bytes.Buffer
	in := strings.NewReader("new Aria\nsave first\nsaves\nquit\n")
	require.NoError(t, a.Run(context.Background(), in, &out))

	assert.Contains(t, out.String(), "Welcome, Aria!")
	assert.Contains(t, out.String(), `Game saved to slot "first".`)
	assert.Contains(t, out.String(), "Farewell!")
	assert.NotContains(t, out.String(), "\033[")
	assert.FileExists(t, filepath.Join(dir, "saves", "first.json"))
}
