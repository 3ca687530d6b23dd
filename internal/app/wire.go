//go:build wireinject

package app

import (
	"github.com/google/wire"

	"github.com/cory-johannsen/rpg/internal/config"
	"github.com/cory-johannsen/rpg/internal/frontend"
	"github.com/cory-johannsen/rpg/internal/game/combat"
	"github.com/cory-johannsen/rpg/internal/game/command"
	"github.com/cory-johannsen/rpg/internal/game/dice"
	"github.com/cory-johannsen/rpg/internal/game/enemy"
	"github.com/cory-johannsen/rpg/internal/game/loot"
	"github.com/cory-johannsen/rpg/internal/game/shop"
	"github.com/cory-johannsen/rpg/internal/game/status"
)

var contentSet = wire.NewSet(
	ProvideEnemyTable,
	ProvideCatalog,
	ProvideStatusRegistry,
	ProvideCustomization,
)

var combatSet = wire.NewSet(
	ProvideSource,
	dice.NewRoller,
	ProvideTickHook,
	status.NewTicker,
	loot.NewGenerator,
	enemy.NewGenerator,
	combat.NewResolver,
)

var consoleSet = wire.NewSet(
	shop.New,
	ProvideStore,
	ProvideAutoSaver,
	command.DefaultRegistry,
	ProvideRenderer,
	frontend.NewConsole,
)

// Initialize builds the App described by opts. The cleanup releases the Lua
// state and flushes the logger.
func Initialize(opts Options) (*App, func(), error) {
	wire.Build(
		ProvideConfig,
		wire.FieldsOf(new(config.Config), "Combat"),
		ProvideLogger,
		contentSet,
		combatSet,
		consoleSet,
		NewApp,
	)
	return nil, nil, nil
}
