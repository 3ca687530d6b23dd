package status

import "go.uber.org/zap"

// Effect is one timed status effect attached to a hero.
type Effect struct {
	Type     Type   `json:"type"`
	Duration int    `json:"duration"`
	Name     string `json:"name"`
}

// NewEffect builds an effect with its display name.
func NewEffect(t Type, duration int) Effect {
	return Effect{Type: t, Duration: duration, Name: DisplayName(t)}
}

// TickHook lets a script override an effect's per-tick damage. ok is false
// when the script could not produce a value.
type TickHook interface {
	TickDamage(fn string, maxHealth, health, duration int) (dmg int, ok bool)
}

// Ticker advances status effects by one round.
type Ticker struct {
	reg    *Registry
	hook   TickHook
	logger *zap.Logger
}

// NewTicker creates a Ticker. hook may be nil.
//
// Precondition: reg and logger must be non-nil.
func NewTicker(reg *Registry, hook TickHook, logger *zap.Logger) *Ticker {
	return &Ticker{reg: reg, hook: hook, logger: logger}
}

// Tick applies one round of every effect and returns the surviving effects
// and the total damage dealt.
//
// Effects whose type is not registered are left untouched. Duplicate effects
// each tick. Effects with duration <= 0 are pruned after the tick.
//
// Postcondition: every returned effect has Duration > 0; effects is not
// modified.
func (t *Ticker) Tick(effects []Effect, maxHealth, health int) ([]Effect, int) {
	total := 0
	remaining := make([]Effect, 0, len(effects))
	for _, e := range effects {
		if def, ok := t.reg.Get(e.Type); ok {
			total += t.damage(def, e, maxHealth, health-total)
			e.Duration--
		}
		if e.Duration > 0 {
			remaining = append(remaining, e)
		}
	}
	return remaining, total
}

func (t *Ticker) damage(def *Def, e Effect, maxHealth, health int) int {
	if def.LuaOnTick != "" && t.hook != nil {
		if dmg, ok := t.hook.TickDamage(def.LuaOnTick, maxHealth, health, e.Duration); ok {
			return max(0, dmg)
		}
		t.logger.Warn("status tick hook failed; using built-in rule",
			zap.String("status", string(def.ID)),
			zap.String("hook", def.LuaOnTick),
		)
	}
	if def.TickDamageDivisor == 0 {
		return 0
	}
	return max(1, maxHealth/def.TickDamageDivisor)
}
