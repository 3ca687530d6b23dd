// Package enemy defines the Enemy entity, the archetype table that shapes
// it, special attacks, and the random encounter generator.
package enemy

import (
	"fmt"

	"github.com/cory-johannsen/rpg/internal/game/damage"
)

// Archetype is the closed set of enemy kinds.
type Archetype int

const (
	Normal Archetype = iota
	Warrior
	Mage
	Rogue
	Tank
	Giant
	Undead
	Beast
	Elemental
)

var archetypeNames = [...]string{"normal", "warrior", "mage", "rogue", "tank", "giant", "undead", "beast", "elemental"}

// Archetypes lists every archetype in declaration order.
func Archetypes() []Archetype {
	out := make([]Archetype, len(archetypeNames))
	for i := range out {
		out[i] = Archetype(i)
	}
	return out
}

func (a Archetype) String() string {
	if a < 0 || int(a) >= len(archetypeNames) {
		return fmt.Sprintf("archetype(%d)", int(a))
	}
	return archetypeNames[a]
}

// ParseArchetype is the inverse of String.
func ParseArchetype(s string) (Archetype, error) {
	for i, n := range archetypeNames {
		if n == s {
			return Archetype(i), nil
		}
	}
	return 0, fmt.Errorf("enemy: unknown archetype %q", s)
}

func (a Archetype) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

func (a *Archetype) UnmarshalText(b []byte) error {
	v, err := ParseArchetype(string(b))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// SpecialAttack is one entry of the fixed special attack table.
type SpecialAttack int

const (
	PowerStrike SpecialAttack = iota
	MagicMissile
	Fireball
	Backstab
	PoisonStrike
	ShieldBash
)

type specialFormula struct {
	name   string
	magic  bool // scales with magic attack instead of attack
	factor float64
	typ    damage.Type
}

var specials = [...]specialFormula{
	PowerStrike:  {"power_strike", false, 1.5, damage.Physical},
	MagicMissile: {"magic_missile", true, 1.2, damage.Magic},
	Fireball:     {"fireball", true, 1.8, damage.Magic},
	Backstab:     {"backstab", false, 2.0, damage.Physical},
	PoisonStrike: {"poison_strike", false, 1.3, damage.Poison},
	ShieldBash:   {"shield_bash", false, 1.2, damage.Physical},
}

func (s SpecialAttack) String() string {
	if s < 0 || int(s) >= len(specials) {
		return fmt.Sprintf("special(%d)", int(s))
	}
	return specials[s].name
}

// ParseSpecialAttack is the inverse of String.
func ParseSpecialAttack(str string) (SpecialAttack, error) {
	for i, f := range specials {
		if f.name == str {
			return SpecialAttack(i), nil
		}
	}
	return 0, fmt.Errorf("enemy: unknown special attack %q", str)
}

func (s SpecialAttack) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *SpecialAttack) UnmarshalText(b []byte) error {
	v, err := ParseSpecialAttack(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Resolve returns the damage type and floored damage of s for an enemy with
// the given attack and magic attack.
func (s SpecialAttack) Resolve(attack, magicAttack int) (damage.Type, int) {
	f := specials[s]
	base := attack
	if f.magic {
		base = magicAttack
	}
	return f.typ, damage.Scale(base, f.factor)
}
