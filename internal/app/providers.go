// Package app assembles the game from configuration. The object graph is
// declared in wire.go and generated into wire_gen.go.
package app

import (
	"context"
	"io"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/cory-johannsen/rpg/internal/config"
	"github.com/cory-johannsen/rpg/internal/frontend"
	"github.com/cory-johannsen/rpg/internal/game/character"
	"github.com/cory-johannsen/rpg/internal/game/dice"
	"github.com/cory-johannsen/rpg/internal/game/enemy"
	"github.com/cory-johannsen/rpg/internal/game/item"
	"github.com/cory-johannsen/rpg/internal/game/status"
	"github.com/cory-johannsen/rpg/internal/observability"
	"github.com/cory-johannsen/rpg/internal/save"
	"github.com/cory-johannsen/rpg/internal/scripting"
)

// Options are the command-line inputs to Initialize.
type Options struct {
	// ConfigPath is the YAML config file; empty uses defaults and the
	// environment.
	ConfigPath string
	// NoColor disables ANSI styling regardless of saved settings.
	NoColor bool
}

// App is the assembled game.
type App struct {
	cfg     config.Config
	console *frontend.Console
	logger  *zap.Logger
}

// NewApp creates an App.
func NewApp(cfg config.Config, console *frontend.Console, logger *zap.Logger) *App {
	return &App{cfg: cfg, console: console, logger: logger}
}

// Run plays one console session.
func (a *App) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	a.logger.Info("starting game",
		zap.String("save_dir", a.cfg.Game.SaveDir),
		zap.String("content_dir", a.cfg.Game.ContentDir),
		zap.Uint64("seed", a.cfg.Game.Seed),
		zap.Bool("scripting", a.cfg.Scripting.Enabled),
	)
	err := a.console.Run(ctx, in, out)
	a.logger.Info("game stopped", zap.Error(err))
	return err
}

// ProvideConfig loads the configuration named by opts.
func ProvideConfig(opts Options) (config.Config, error) {
	return config.Load(opts.ConfigPath)
}

// ProvideLogger builds the process logger. The cleanup flushes it.
func ProvideLogger(cfg config.Config) (*zap.Logger, func(), error) {
	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		return nil, nil, err
	}
	return logger, func() { _ = logger.Sync() }, nil
}

// ProvideSource returns the one randomness source of the process.
func ProvideSource(cfg config.Config) dice.Source {
	return dice.NewSource(cfg.Game.Seed)
}

func contentPath(cfg config.Config, name string) string {
	return filepath.Join(cfg.Game.ContentDir, name)
}

// ProvideEnemyTable loads content/enemies, or the built-in table when no
// content directory is configured.
func ProvideEnemyTable(cfg config.Config) (*enemy.Table, error) {
	if cfg.Game.ContentDir == "" {
		return enemy.DefaultTable(), nil
	}
	return enemy.LoadTable(contentPath(cfg, "enemies"))
}

// ProvideCatalog loads the shop stock from content/items.
func ProvideCatalog(cfg config.Config) (*item.Catalog, error) {
	if cfg.Game.ContentDir == "" {
		return item.DefaultShopCatalog(), nil
	}
	return item.LoadCatalog(contentPath(cfg, "items"))
}

// ProvideStatusRegistry loads content/statuses.
func ProvideStatusRegistry(cfg config.Config) (*status.Registry, error) {
	if cfg.Game.ContentDir == "" {
		return status.DefaultRegistry(), nil
	}
	return status.LoadDirectory(contentPath(cfg, "statuses"))
}

// ProvideCustomization loads content/customization.yaml.
func ProvideCustomization(cfg config.Config) (*character.Customization, error) {
	if cfg.Game.ContentDir == "" {
		return character.DefaultCustomization(), nil
	}
	return character.LoadCustomization(contentPath(cfg, "customization.yaml"))
}

// ProvideTickHook returns the Lua hook when scripting is enabled and nil
// otherwise. The cleanup closes the Lua state.
func ProvideTickHook(cfg config.Config, logger *zap.Logger) (status.TickHook, func(), error) {
	if !cfg.Scripting.Enabled {
		return nil, func() {}, nil
	}
	m := scripting.NewManager(cfg.Scripting.InstructionLimit, logger)
	if err := m.LoadDir(cfg.ScriptPath()); err != nil {
		m.Close()
		return nil, nil, err
	}
	logger.Info("lua scripts loaded", zap.String("dir", cfg.ScriptPath()))
	return m, m.Close, nil
}

// ProvideStore opens the save directory.
func ProvideStore(cfg config.Config, logger *zap.Logger) (*save.Store, error) {
	return save.NewStore(cfg.Game.SaveDir, logger)
}

// ProvideAutoSaver applies the configured auto-save interval.
func ProvideAutoSaver(store *save.Store, cfg config.Config, logger *zap.Logger) *save.AutoSaver {
	return save.NewAutoSaver(store, cfg.Game.AutoSaveInterval, logger)
}

// ProvideRenderer enables color unless opts.NoColor is set.
func ProvideRenderer(opts Options) *frontend.Renderer {
	return frontend.NewRenderer(!opts.NoColor)
}
