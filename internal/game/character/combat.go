package character

import (
	"github.com/cory-johannsen/rpg/internal/game/damage"
	"github.com/cory-johannsen/rpg/internal/game/dice"
	"github.com/cory-johannsen/rpg/internal/game/status"
)

const (
	poisonApplyChance = 0.3
	poisonDuration    = 3
)

var heroDamageMultipliers = map[damage.Type]float64{
	damage.Physical: 1.0,
	damage.Magic:    1.2,
	damage.Poison:   0.8,
}

// TakeDamage rolls dodge, then applies max(1, raw-defense) scaled by the
// damage type. Poison hits have a 30% chance to add a 3-turn poisoned effect.
//
// Rolls, in order: dodge percent; poison chance (poison hits only).
// Postcondition: dodged implies dealt == 0 and no state change.
func (h *Hero) TakeDamage(raw int, t damage.Type, r *dice.Roller) (dealt int, dodged bool) {
	if r.Percent("hero dodge") < h.DodgeChance() {
		return 0, true
	}
	dealt = damage.Reduce(raw, h.Defense(), heroDamageMultipliers[t])
	h.Health -= dealt
	if t == damage.Poison && r.Chance("poison apply", poisonApplyChance) {
		h.AddStatusEffect(status.Poisoned, poisonDuration)
	}
	return dealt, false
}

// AddStatusEffect appends an effect; duplicates are allowed.
func (h *Hero) AddStatusEffect(t status.Type, duration int) {
	h.StatusEffects = append(h.StatusEffects, status.NewEffect(t, duration))
}

// RemoveStatusEffect removes every effect of type t.
func (h *Hero) RemoveStatusEffect(t status.Type) {
	kept := h.StatusEffects[:0]
	for _, e := range h.StatusEffects {
		if e.Type != t {
			kept = append(kept, e)
		}
	}
	h.StatusEffects = kept
}

// HasStatus reports whether any effect of type t is active.
func (h *Hero) HasStatus(t status.Type) bool {
	for _, e := range h.StatusEffects {
		if e.Type == t {
			return true
		}
	}
	return false
}

// CanAct is false while the hero is stunned.
func (h *Hero) CanAct() bool {
	return !h.HasStatus(status.Stunned)
}

// ProcessStatusEffects ticks every effect once, subtracts the damage and
// prunes expired effects.
func (h *Hero) ProcessStatusEffects(t *status.Ticker) int {
	remaining, dmg := t.Tick(h.StatusEffects, h.MaxHealth, h.Health)
	h.StatusEffects = remaining
	h.Health -= dmg
	return dmg
}
