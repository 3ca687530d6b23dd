package frontend

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/rpg/internal/config"
	"github.com/cory-johannsen/rpg/internal/game/character"
	"github.com/cory-johannsen/rpg/internal/game/combat"
	"github.com/cory-johannsen/rpg/internal/game/command"
	"github.com/cory-johannsen/rpg/internal/game/enemy"
	"github.com/cory-johannsen/rpg/internal/game/item"
	"github.com/cory-johannsen/rpg/internal/game/shop"
	"github.com/cory-johannsen/rpg/internal/save"
)

const prompt = "> "

// Console reads commands line by line and drives one game. It holds the
// current game state and at most one enemy; both are nil between games and
// battles respectively.
type Console struct {
	registry  *command.Registry
	resolver  *combat.Resolver
	enemies   *enemy.Generator
	shop      *shop.Shop
	store     *save.Store
	autosaver *save.AutoSaver
	custom    *character.Customization
	maxRounds int
	render    *Renderer
	logger    *zap.Logger
	now       func() time.Time

	colorAllowed bool
	state        *save.GameState
	foe          *enemy.Enemy
	since        time.Time
	out          io.Writer
}

// NewConsole wires a Console.
//
// Precondition: every pointer argument must be non-nil and
// combatCfg.MaxAutoRounds > 0.
func NewConsole(
	registry *command.Registry,
	resolver *combat.Resolver,
	enemies *enemy.Generator,
	sh *shop.Shop,
	store *save.Store,
	autosaver *save.AutoSaver,
	custom *character.Customization,
	combatCfg config.CombatConfig,
	render *Renderer,
	logger *zap.Logger,
) *Console {
	return &Console{
		registry:     registry,
		resolver:     resolver,
		enemies:      enemies,
		shop:         sh,
		store:        store,
		autosaver:    autosaver,
		custom:       custom,
		maxRounds:    combatCfg.MaxAutoRounds,
		render:       render,
		logger:       logger,
		now:          time.Now,
		colorAllowed: render.Color(),
		out:          io.Discard,
	}
}

// Run reads commands from in until quit, end of input or ctx is cancelled.
//
// Postcondition: returns nil on quit or EOF, ctx.Err() on cancellation, or
// the read error.
func (c *Console) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	c.out = out
	c.println(c.render.Title("Turn-Based RPG"))
	c.println("Type new <name> to create a hero, load <slot> to continue, or help for commands.")

	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		errc <- scanner.Err()
	}()

	for {
		c.print(prompt)
		select {
		case <-ctx.Done():
			c.finish()
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				c.finish()
				if err := <-errc; err != nil {
					return fmt.Errorf("reading input: %w", err)
				}
				return nil
			}
			if c.Execute(line) {
				c.finish()
				return nil
			}
		}
	}
}

// Execute runs one command line and reports whether the player quit.
func (c *Console) Execute(line string) (quit bool) {
	p := command.Parse(line)
	if p.Command == "" {
		return false
	}
	cmd, ok := c.registry.Resolve(p.Command)
	if !ok {
		c.println(c.render.Warn(fmt.Sprintf("Unknown command %q. Type help for a list.", p.Command)))
		return false
	}
	if cmd.NeedsHero && c.hero() == nil {
		c.println(c.render.Warn("You have no hero. Use new <name> or load <slot> first."))
		return false
	}
	if !cmd.Allowed(c.foe != nil) {
		if c.foe != nil {
			c.println(c.render.Warn("You can't do that during combat."))
		} else {
			c.println(c.render.Warn("You are not in combat."))
		}
		return false
	}
	c.logger.Debug("command", zap.String("name", cmd.Name), zap.Strings("args", p.Args))

	switch cmd.Handler {
	case command.HandlerNew:
		c.newGame(p)
	case command.HandlerStats:
		c.print(c.render.Hero(c.hero()))
	case command.HandlerExplore:
		c.explore()
	case command.HandlerAttack:
		c.act(combat.Attack())
	case command.HandlerSkill:
		c.skill(p)
	case command.HandlerRun:
		c.act(combat.Run())
	case command.HandlerAuto:
		c.auto()
	case command.HandlerUse:
		c.use(p)
	case command.HandlerInventory:
		c.print(c.render.Inventory(c.hero()))
	case command.HandlerEquip:
		c.equip(p)
	case command.HandlerUnequip:
		c.unequip(p)
	case command.HandlerShop:
		c.print(c.render.Shop(c.shop.Items(), c.hero().Gold))
	case command.HandlerBuy:
		c.buy(p)
	case command.HandlerSell:
		c.sell(p)
	case command.HandlerRest:
		c.shop.Rest(c.hero())
		c.println(c.render.Success("You rest and restore your health!"))
	case command.HandlerAllocate:
		c.allocate(p)
	case command.HandlerCustomize:
		c.customize(p)
	case command.HandlerSave:
		c.save(p)
	case command.HandlerLoad:
		c.load(p)
	case command.HandlerSaves:
		c.saves()
	case command.HandlerDelete:
		c.delete(p)
	case command.HandlerHelp:
		c.print(c.render.Help(c.registry.CommandsByCategory()))
	case command.HandlerQuit:
		c.println("Farewell!")
		return true
	default:
		c.logger.Error("command has no handler", zap.String("name", cmd.Name), zap.String("handler", cmd.Handler))
	}
	return false
}

// State returns the current game state, or nil when no game is running.
func (c *Console) State() *save.GameState { return c.state }

// Enemy returns the enemy being fought, or nil outside combat.
func (c *Console) Enemy() *enemy.Enemy { return c.foe }

func (c *Console) hero() *character.Hero {
	if c.state == nil {
		return nil
	}
	return c.state.Hero
}

func (c *Console) print(s string) { fmt.Fprint(c.out, s) }

func (c *Console) println(s string) { fmt.Fprintln(c.out, s) }

// flushPlaytime adds the time since the last flush to the running game.
func (c *Console) flushPlaytime() {
	if c.state != nil && !c.since.IsZero() {
		c.state.AddPlaytime(c.now().Sub(c.since))
	}
	c.since = c.now()
}

func (c *Console) finish() {
	c.flushPlaytime()
	if c.state != nil && c.foe == nil {
		c.autoSave()
	}
}

func (c *Console) autoSave() {
	saved, err := c.autosaver.MaybeSave(c.state)
	switch {
	case err != nil:
		c.println(c.render.Error("Auto-save failed: " + err.Error()))
	case saved:
		c.println(c.render.Info("Game auto-saved."))
	}
}

func (c *Console) startGame(state *save.GameState) {
	c.flushPlaytime()
	c.state = state
	c.foe = nil
	c.render.SetColor(c.colorAllowed && state.Settings.Color)
}

func (c *Console) newGame(p command.ParseResult) {
	if err := character.ValidateName(p.RawArgs); err != nil {
		c.println(c.render.Warn("Invalid name: " + err.Error()))
		return
	}
	c.startGame(save.NewGameState(character.NewHero(p.RawArgs)))
	c.logger.Info("new hero", zap.String("hero", p.RawArgs))
	c.println(c.render.Success(fmt.Sprintf("Welcome, %s! Type explore to find a fight.", p.RawArgs)))
	c.print(c.render.Hero(c.hero()))
}

func (c *Console) explore() {
	h := c.hero()
	c.foe = c.enemies.Random(h.Level)
	c.state.SessionStats.Battles++
	c.logger.Info("encounter",
		zap.String("hero", h.Name),
		zap.String("enemy", c.foe.Name),
		zap.Int("level", c.foe.Level),
		zap.Stringer("archetype", c.foe.Archetype),
	)
	c.println(c.render.Warn(fmt.Sprintf("A %s appears!", c.foe.Name)))
	c.print(c.render.Enemy(c.foe))
}

// act runs a round with a, replacing it with UseItem when the hero is
// stunned so that only the enemy acts.
func (c *Console) act(a combat.Action) {
	if !c.hero().CanAct() {
		c.println(c.render.Event(combat.Event{Type: combat.EventPlayerStunned}))
		a = combat.UseItem()
	}
	c.round(a)
}

func (c *Console) skill(p command.ParseResult) {
	h := c.hero()
	i, ok := p.Index(0)
	if !ok || i >= len(h.Skills) {
		c.println(c.render.Warn("Usage: skill <number>"))
		c.print(c.render.Skills(h))
		return
	}
	if !h.CanAct() {
		c.act(combat.UseItem())
		return
	}
	a := combat.UseSkill(h.Skills[i])
	if err := combat.SpendMana(h, a); err != nil {
		if errors.Is(err, combat.ErrInsufficientMana) {
			c.println(c.render.Warn(fmt.Sprintf("Not enough mana to use %s!", a.Skill.Name)))
			return
		}
		c.println(c.render.Error(err.Error()))
		return
	}
	c.round(a)
}

func (c *Console) round(a combat.Action) {
	h := c.hero()
	events, over := c.resolver.ResolveRound(h, c.foe, a)
	c.print(c.render.Events(events))
	if over {
		c.endBattle(events)
		return
	}
	c.println(c.render.Status(h, c.foe))
}

func (c *Console) auto() {
	out := c.resolver.AutoBattle(c.hero(), c.foe, c.maxRounds)
	c.print(c.render.Events(out.Events))
	c.endBattle(out.Events)
}

// endBattle records the battle in the game state. A defeated hero ends the
// game; otherwise an auto-save is attempted.
func (c *Console) endBattle(events []combat.Event) {
	st := c.state
	for _, ev := range events {
		switch ev.Type {
		case combat.EventEnemyDefeated:
			st.GameProgress.EnemiesDefeated++
			st.SessionStats.Victories++
		case combat.EventGainGold:
			st.SessionStats.GoldEarned += ev.Amount
		case combat.EventGainExperience:
			st.SessionStats.ExperienceEarned += ev.Amount
		case combat.EventLevelUp:
			st.GameProgress.HighestLevel = max(st.GameProgress.HighestLevel, ev.NewLevel)
		case combat.EventEscapeSuccess:
			st.GameProgress.BattlesFled++
		case combat.EventPlayerDefeated:
			st.GameProgress.Defeats++
		}
	}
	c.foe = nil

	h := c.hero()
	if !h.IsAlive() {
		c.logger.Info("hero defeated", zap.String("hero", h.Name), zap.Int("level", h.Level))
		c.flushPlaytime()
		c.state = nil
		c.println(c.render.Error("Game over. Use new <name> or load <slot> to play again."))
		return
	}
	c.autoSave()
}

func (c *Console) use(p command.ParseResult) {
	i, ok := p.Index(0)
	if !ok {
		c.println(c.render.Warn("Usage: use <number>"))
		return
	}
	msg, err := c.shop.Use(c.hero(), i)
	if err != nil {
		c.println(c.render.Warn(err.Error()))
		return
	}
	c.println(c.render.Success(msg))
	if c.foe != nil {
		c.round(combat.UseItem())
	}
}

func (c *Console) equip(p command.ParseResult) {
	i, ok := p.Index(0)
	if !ok {
		c.println(c.render.Warn("Usage: equip <number>"))
		return
	}
	it, err := c.shop.Equip(c.hero(), i)
	if err != nil {
		c.println(c.render.Warn(err.Error()))
		return
	}
	c.println(c.render.Success("Equipped ") + c.render.Item(it))
}

func (c *Console) unequip(p command.ParseResult) {
	slot, err := item.ParseSlot(p.RawArgs)
	if err != nil {
		c.println(c.render.Warn("Usage: unequip <weapon|armor|accessory>"))
		return
	}
	it, err := c.shop.Unequip(c.hero(), slot)
	if err != nil {
		c.println(c.render.Warn(err.Error()))
		return
	}
	c.println(c.render.Info("Unequipped ") + c.render.Item(it))
}

func (c *Console) buy(p command.ParseResult) {
	if p.RawArgs == "" {
		c.println(c.render.Warn("Usage: buy <item name>"))
		return
	}
	it, err := c.shop.Purchase(c.hero(), p.RawArgs)
	switch {
	case errors.Is(err, shop.ErrUnknownItem):
		c.println(c.render.Warn(fmt.Sprintf("The shop doesn't sell %q.", p.RawArgs)))
	case errors.Is(err, shop.ErrInsufficientGold):
		c.println(c.render.Warn(fmt.Sprintf("Not enough gold to buy %s!", p.RawArgs)))
	case err != nil:
		c.println(c.render.Error(err.Error()))
	default:
		c.println(c.render.Success(fmt.Sprintf("Purchased %s!", it.Name)))
	}
}

func (c *Console) sell(p command.ParseResult) {
	i, ok := p.Index(0)
	if !ok {
		c.println(c.render.Warn("Usage: sell <number>"))
		return
	}
	sold, price, err := c.shop.Sell(c.hero(), i)
	if err != nil {
		c.println(c.render.Warn(err.Error()))
		return
	}
	c.println(c.render.Success(fmt.Sprintf("Sold %s for %d gold!", sold.Name, price)))
}

func (c *Console) allocate(p command.ParseResult) {
	if err := c.shop.Allocate(c.hero(), p.RawArgs); err != nil {
		if errors.Is(err, character.ErrNoStatPoints) {
			c.println(c.render.Warn("No stat points available."))
			return
		}
		c.println(c.render.Warn(err.Error()))
		return
	}
	c.println(c.render.Success(fmt.Sprintf("Increased %s. %d stat points left.", p.RawArgs, c.hero().StatPoints)))
}

func (c *Console) customize(p command.ParseResult) {
	h := c.hero()
	if len(p.Args) == 0 {
		c.print(c.render.Appearance(c.custom, h.Appearance))
		return
	}
	if len(p.Args) != 2 {
		c.println(c.render.Warn("Usage: customize <category> <option>"))
		return
	}
	a := h.Appearance
	err := a.Set(p.Args[0], p.Args[1])
	if err == nil {
		err = c.custom.Validate(h.Name, a)
	}
	if err != nil {
		c.println(c.render.Warn(err.Error()))
		return
	}
	h.Appearance = a
	c.println(c.render.Success(fmt.Sprintf("%s is now %s.", p.Args[0], p.Args[1])))
}

func (c *Console) save(p command.ParseResult) {
	c.flushPlaytime()
	slot, err := c.store.Save(c.state, p.RawArgs)
	if err != nil {
		c.println(c.render.Error("Save failed: " + err.Error()))
		return
	}
	c.println(c.render.Success(fmt.Sprintf("Game saved to slot %q.", slot)))
}

func (c *Console) load(p command.ParseResult) {
	state, err := c.store.Load(p.RawArgs)
	switch {
	case errors.Is(err, save.ErrSlotNotFound):
		c.println(c.render.Warn(fmt.Sprintf("No save named %q.", save.SanitizeSlot(p.RawArgs))))
		return
	case err != nil:
		c.println(c.render.Error("Load failed: " + err.Error()))
		return
	}
	state.SessionStats = save.SessionStats{}
	c.startGame(state)
	c.println(c.render.Success(fmt.Sprintf("Welcome back, %s!", state.Hero.Name)))
	c.print(c.render.Hero(state.Hero))
}

func (c *Console) saves() {
	infos, err := c.store.List()
	if err != nil {
		c.println(c.render.Error("Listing saves failed: " + err.Error()))
		return
	}
	c.print(c.render.Saves(infos, c.now()))
}

func (c *Console) delete(p command.ParseResult) {
	slot := save.SanitizeSlot(p.RawArgs)
	err := c.store.Delete(p.RawArgs)
	switch {
	case errors.Is(err, save.ErrSlotNotFound):
		c.println(c.render.Warn(fmt.Sprintf("No save named %q.", slot)))
	case err != nil:
		c.println(c.render.Error("Delete failed: " + err.Error()))
	default:
		c.println(c.render.Success(fmt.Sprintf("Deleted save %q.", slot)))
	}
}
