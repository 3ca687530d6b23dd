package enemy

import (
	"math"

	"github.com/cory-johannsen/rpg/internal/game/damage"
	"github.com/cory-johannsen/rpg/internal/game/dice"
)

// goldPerLevel is rolled once per encounter and multiplied by the level.
var goldPerLevel = dice.MustParse("1d6+4")

const magicTakenMultiplier = 1.1

// Enemy is created fresh for each encounter and never persisted.
type Enemy struct {
	Name      string
	Level     int
	Archetype Archetype

	Health      int
	MaxHealth   int
	Attack      int
	Defense     int
	MagicAttack int

	ExpReward  int
	GoldReward int

	Specials []SpecialAttack
	Traits   Traits
}

// New builds an enemy of the given level shaped by def.
//
// Rolls: one gold roll.
// Precondition: level >= 1; def and r must be non-nil.
// Postcondition: Health == MaxHealth.
func New(name string, level int, def *ArchetypeDef, r *dice.Roller) *Enemy {
	lv := float64(level)
	e := &Enemy{
		Name:        name,
		Level:       level,
		Archetype:   def.Archetype,
		MaxHealth:   50 + 15*level + def.HealthBonus,
		Attack:      8 + 2*level + def.AttackBonus,
		Defense:     int(math.Floor(3+1.5*lv)) + def.DefenseBonus,
		MagicAttack: int(math.Floor(5+1.5*lv)) + def.MagicAttackBonus,
		ExpReward:   25 * level,
		GoldReward:  level * r.Roll("enemy gold", goldPerLevel).Total(),
		Specials:    append([]SpecialAttack(nil), def.Specials...),
		Traits:      def.Traits,
	}
	e.Health = e.MaxHealth
	return e
}

// TakeDamage applies max(1, raw-defense), scaled by 1.1 for magic.
// Enemies never dodge.
func (e *Enemy) TakeDamage(raw int, t damage.Type) int {
	mult := 1.0
	if t == damage.Magic {
		mult = magicTakenMultiplier
	}
	dealt := damage.Reduce(raw, e.Defense, mult)
	e.Health -= dealt
	return dealt
}

// PerformSpecialAttack picks one special uniformly. ok is false, and no roll
// is made, when the enemy has none.
func (e *Enemy) PerformSpecialAttack(r *dice.Roller) (s SpecialAttack, t damage.Type, dmg int, ok bool) {
	if len(e.Specials) == 0 {
		return 0, damage.Physical, e.Attack, false
	}
	s = e.Specials[r.Intn("enemy special", len(e.Specials))]
	t, dmg = s.Resolve(e.Attack, e.MagicAttack)
	return s, t, dmg, true
}

// IsAlive reports Health > 0.
func (e *Enemy) IsAlive() bool { return e.Health > 0 }
