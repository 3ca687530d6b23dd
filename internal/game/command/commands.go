// Package command provides the console command registry, parser, and
// built-in command definitions.
package command

// Categories for organizing help output.
const (
	CategoryCombat = "combat"
	CategoryHero   = "hero"
	CategoryCamp   = "camp"
	CategorySaves  = "saves"
	CategorySystem = "system"
)

// Handler identifiers dispatched by the console.
const (
	HandlerNew       = "new"
	HandlerStats     = "stats"
	HandlerExplore   = "explore"
	HandlerAttack    = "attack"
	HandlerSkill     = "skill"
	HandlerRun       = "run"
	HandlerAuto      = "auto"
	HandlerUse       = "use"
	HandlerInventory = "inventory"
	HandlerEquip     = "equip"
	HandlerUnequip   = "unequip"
	HandlerShop      = "shop"
	HandlerBuy       = "buy"
	HandlerSell      = "sell"
	HandlerRest      = "rest"
	HandlerAllocate  = "allocate"
	HandlerCustomize = "customize"
	HandlerSave      = "save"
	HandlerLoad      = "load"
	HandlerSaves     = "saves"
	HandlerDelete    = "delete"
	HandlerHelp      = "help"
	HandlerQuit      = "quit"
)

// Context restricts when a command may be used.
type Context int

const (
	// Anywhere commands work in and out of combat.
	Anywhere Context = iota
	// InCombat commands need an active enemy.
	InCombat
	// AtCamp commands are refused during combat.
	AtCamp
)

// Command defines a player-invocable command.
type Command struct {
	// Name is the canonical command name.
	Name string
	// Aliases are alternate names for this command.
	Aliases []string
	// Usage shows the argument shape, e.g. "buy <item name>".
	Usage string
	// Help is the short help text displayed to players.
	Help string
	// Category groups the command in help output.
	Category string
	// Handler selects the console handler.
	Handler string
	// Context says whether combat must be active, inactive, or either.
	Context Context
	// NeedsHero is false only for commands usable before a hero exists.
	NeedsHero bool
}

// Allowed reports whether the command may run given the combat state.
func (c *Command) Allowed(inCombat bool) bool {
	switch c.Context {
	case InCombat:
		return inCombat
	case AtCamp:
		return !inCombat
	default:
		return true
	}
}

// BuiltinCommands returns all built-in console commands.
func BuiltinCommands() []Command {
	return []Command{
		// Combat
		{Name: "attack", Aliases: []string{"a", "att"}, Usage: "attack", Help: "Attack the enemy with your weapon", Category: CategoryCombat, Handler: HandlerAttack, Context: InCombat, NeedsHero: true},
		{Name: "skill", Aliases: []string{"sk", "cast"}, Usage: "skill <number>", Help: "Use one of your skills", Category: CategoryCombat, Handler: HandlerSkill, Context: InCombat, NeedsHero: true},
		{Name: "run", Aliases: []string{"flee"}, Usage: "run", Help: "Try to escape (40% chance)", Category: CategoryCombat, Handler: HandlerRun, Context: InCombat, NeedsHero: true},
		{Name: "auto", Aliases: []string{"autobattle"}, Usage: "auto", Help: "Fight with basic attacks until the battle ends", Category: CategoryCombat, Handler: HandlerAuto, Context: InCombat, NeedsHero: true},
		{Name: "explore", Aliases: []string{"x", "fight"}, Usage: "explore", Help: "Search for an enemy to fight", Category: CategoryCombat, Handler: HandlerExplore, Context: AtCamp, NeedsHero: true},

		// Hero
		{Name: "stats", Aliases: []string{"st", "status"}, Usage: "stats", Help: "Show your hero", Category: CategoryHero, Handler: HandlerStats, NeedsHero: true},
		{Name: "inventory", Aliases: []string{"inv", "i"}, Usage: "inventory", Help: "Show your inventory and equipment", Category: CategoryHero, Handler: HandlerInventory, NeedsHero: true},
		{Name: "use", Aliases: []string{"u", "drink"}, Usage: "use <number>", Help: "Use a consumable from your inventory", Category: CategoryHero, Handler: HandlerUse, NeedsHero: true},
		{Name: "equip", Aliases: []string{"eq", "wield"}, Usage: "equip <number>", Help: "Equip an item from your inventory", Category: CategoryHero, Handler: HandlerEquip, Context: AtCamp, NeedsHero: true},
		{Name: "unequip", Aliases: []string{"ueq", "remove"}, Usage: "unequip <weapon|armor|accessory>", Help: "Move an equipped item to your inventory", Category: CategoryHero, Handler: HandlerUnequip, Context: AtCamp, NeedsHero: true},
		{Name: "allocate", Aliases: []string{"train"}, Usage: "allocate <strength|dexterity|intelligence|vitality>", Help: "Spend a stat point", Category: CategoryHero, Handler: HandlerAllocate, Context: AtCamp, NeedsHero: true},
		{Name: "customize", Aliases: []string{"look"}, Usage: "customize [category option]", Help: "Show or change your appearance", Category: CategoryHero, Handler: HandlerCustomize, Context: AtCamp, NeedsHero: true},

		// Camp
		{Name: "shop", Aliases: []string{"store"}, Usage: "shop", Help: "List the items for sale", Category: CategoryCamp, Handler: HandlerShop, Context: AtCamp, NeedsHero: true},
		{Name: "buy", Aliases: []string{"purchase"}, Usage: "buy <item name>", Help: "Buy an item", Category: CategoryCamp, Handler: HandlerBuy, Context: AtCamp, NeedsHero: true},
		{Name: "sell", Aliases: nil, Usage: "sell <number>", Help: "Sell an inventory item for half its value", Category: CategoryCamp, Handler: HandlerSell, Context: AtCamp, NeedsHero: true},
		{Name: "rest", Aliases: []string{"camp", "sleep"}, Usage: "rest", Help: "Rest at camp to restore health", Category: CategoryCamp, Handler: HandlerRest, Context: AtCamp, NeedsHero: true},

		// Saves
		{Name: "new", Aliases: []string{"create"}, Usage: "new <name>", Help: "Create a new hero", Category: CategorySaves, Handler: HandlerNew, Context: AtCamp},
		{Name: "save", Aliases: nil, Usage: "save [slot]", Help: "Save the game", Category: CategorySaves, Handler: HandlerSave, Context: AtCamp, NeedsHero: true},
		{Name: "load", Aliases: nil, Usage: "load <slot>", Help: "Load a saved game", Category: CategorySaves, Handler: HandlerLoad, Context: AtCamp},
		{Name: "saves", Aliases: []string{"ls"}, Usage: "saves", Help: "List saved games", Category: CategorySaves, Handler: HandlerSaves},
		{Name: "delete", Aliases: []string{"del", "rm"}, Usage: "delete <slot>", Help: "Delete a saved game", Category: CategorySaves, Handler: HandlerDelete, Context: AtCamp},

		// System
		{Name: "help", Aliases: []string{"?", "h"}, Usage: "help", Help: "Show available commands", Category: CategorySystem, Handler: HandlerHelp},
		{Name: "quit", Aliases: []string{"exit", "q"}, Usage: "quit", Help: "Leave the game", Category: CategorySystem, Handler: HandlerQuit},
	}
}
