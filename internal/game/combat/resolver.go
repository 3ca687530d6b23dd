package combat

import (
	"go.uber.org/zap"

	"github.com/cory-johannsen/rpg/internal/game/character"
	"github.com/cory-johannsen/rpg/internal/game/damage"
	"github.com/cory-johannsen/rpg/internal/game/dice"
	"github.com/cory-johannsen/rpg/internal/game/enemy"
	"github.com/cory-johannsen/rpg/internal/game/loot"
	"github.com/cory-johannsen/rpg/internal/game/status"
)

const (
	critMultiplier     = 1.5
	escapeChance       = 0.4
	enemySpecialChance = 0.3
)

// Resolver runs combat rounds. It owns no combat state; the hero and enemy
// are mutated in place.
type Resolver struct {
	roller *dice.Roller
	loot   *loot.Generator
	ticker *status.Ticker
	logger *zap.Logger
}

// NewResolver creates a Resolver.
//
// Precondition: all arguments must be non-nil.
func NewResolver(roller *dice.Roller, lootGen *loot.Generator, ticker *status.Ticker, logger *zap.Logger) *Resolver {
	return &Resolver{roller: roller, loot: lootGen, ticker: ticker, logger: logger}
}

// ResolveRound runs one round: the hero's action, the enemy's counter and the
// status tick, stopping at the first terminal outcome.
//
// Precondition: a passed ValidateAction and any skill mana is already spent.
// Postcondition: over is true iff events holds exactly one terminal event.
func (r *Resolver) ResolveRound(h *character.Hero, e *enemy.Enemy, a Action) (events []Event, over bool) {
	defer func() {
		r.logger.Debug("combat round resolved",
			zap.Stringer("action", a.Type),
			zap.String("enemy", e.Name),
			zap.Int("hero_health", h.Health),
			zap.Int("enemy_health", e.Health),
			zap.Int("events", len(events)),
			zap.Bool("over", over),
		)
	}()

	switch a.Type {
	case ActionAttack:
		events = r.heroAttack(h, e, events)
	case ActionUseSkill:
		events = append(events, Event{Type: EventUseSkill, SkillName: a.Skill.Name})
		dmg := a.Skill.Damage
		if a.Skill.Type == character.SkillMagic {
			dmg += h.Intelligence / 2
		} else {
			dmg += h.Strength / 2
		}
		events = r.hitEnemy(e, dmg, a.Skill.Type.DamageType(), events)
	case ActionRun:
		if r.roller.Chance("escape", escapeChance) {
			return append(events, Event{Type: EventEscapeSuccess}), true
		}
		events = append(events, Event{Type: EventEscapeFail})
	case ActionUseItem:
	}

	if a.Type == ActionAttack || a.Type == ActionUseSkill {
		if !e.IsAlive() {
			return r.defeat(h, e, events), true
		}
	}

	if e.IsAlive() {
		if events, over = r.enemyTurn(h, e, events); over {
			return events, true
		}
	}
	return r.statusTick(h, events)
}

func (r *Resolver) heroAttack(h *character.Hero, e *enemy.Enemy, events []Event) []Event {
	dmg := h.AttackPower()
	if r.roller.Percent("hero crit") < h.CritChance() {
		dmg = damage.Scale(dmg, critMultiplier)
		events = append(events, Event{Type: EventCriticalHit})
	}
	return r.hitEnemy(e, dmg, damage.Physical, events)
}

func (r *Resolver) hitEnemy(e *enemy.Enemy, dmg int, t damage.Type, events []Event) []Event {
	dealt := e.TakeDamage(dmg, t)
	if dealt > 0 {
		return append(events, Event{Type: EventPlayerDamage, Damage: dealt, Target: e.Name})
	}
	return append(events, Event{Type: EventPlayerMiss, Target: e.Name})
}

// defeat awards experience, gold and a possible item drop.
func (r *Resolver) defeat(h *character.Hero, e *enemy.Enemy, events []Event) []Event {
	levels := h.GainExperience(e.ExpReward)
	h.Gold += e.GoldReward
	events = append(events,
		Event{Type: EventEnemyDefeated, EnemyName: e.Name},
		Event{Type: EventGainExperience, Amount: e.ExpReward},
		Event{Type: EventGainGold, Amount: e.GoldReward},
	)
	if levels > 0 {
		events = append(events, Event{Type: EventLevelUp, NewLevel: h.Level, Message: h.LevelUpMessage()})
	}
	if it, ok := r.loot.RollDrop(e.Level); ok {
		h.AddItem(it)
		events = append(events, Event{Type: EventItemDrop, ItemName: it.Name, Rarity: it.Rarity})
	}
	r.logger.Info("enemy defeated",
		zap.String("enemy", e.Name),
		zap.Int("exp", e.ExpReward),
		zap.Int("gold", e.GoldReward),
		zap.Int("levels_gained", levels),
	)
	return events
}

// enemyTurn rolls the special-attack chance before checking whether the
// enemy has any specials, so the roll is consumed either way.
func (r *Resolver) enemyTurn(h *character.Hero, e *enemy.Enemy, events []Event) ([]Event, bool) {
	t, dmg, special := damage.Physical, e.Attack, ""
	if r.roller.Chance("enemy special", enemySpecialChance) {
		if s, st, sd, ok := e.PerformSpecialAttack(r.roller); ok {
			t, dmg, special = st, sd, s.String()
		}
	}

	dealt, dodged := h.TakeDamage(dmg, t, r.roller)
	if dodged {
		events = append(events, Event{Type: EventEnemyMiss, EnemyName: e.Name, AttackType: t, Special: special})
	} else {
		events = append(events, Event{Type: EventEnemyDamage, Damage: dealt, EnemyName: e.Name, AttackType: t, Special: special})
	}

	if !h.IsAlive() {
		r.logger.Info("hero defeated", zap.String("hero", h.Name), zap.String("enemy", e.Name))
		return append(events, Event{Type: EventPlayerDefeated}), true
	}
	return events, false
}

// statusTick ends the round. A hero killed by the tick is defeated.
func (r *Resolver) statusTick(h *character.Hero, events []Event) ([]Event, bool) {
	if dmg := h.ProcessStatusEffects(r.ticker); dmg > 0 {
		events = append(events, Event{Type: EventStatusEffectDamage, Damage: dmg})
	}
	if !h.IsAlive() {
		return append(events, Event{Type: EventPlayerDefeated}), true
	}
	return events, false
}
