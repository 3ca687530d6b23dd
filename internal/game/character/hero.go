// Package character defines the Hero entity: primary attributes, derived
// combat stats, equipment, inventory, progression and status effects.
package character

import (
	"errors"
	"math"

	"github.com/cory-johannsen/rpg/internal/game/item"
	"github.com/cory-johannsen/rpg/internal/game/status"
)

// ErrNoStatPoints is returned by AllocateStat when the hero has no unspent
// stat points.
var ErrNoStatPoints = errors.New("no stat points available")

const (
	startingHealth     = 100
	startingMana       = 50
	startingGold       = 100
	startingExpToLevel = 100

	critCap  = 50.0
	dodgeCap = 30.0
)

// Hero is the player character.
//
// Derived combat stats are methods computed from the primary attributes,
// level and equipment, so they can never drift from their inputs.
//
// Health may drop below zero while damage is applied; IsAlive reads
// Health > 0.
type Hero struct {
	Name  string `json:"name"`
	Level int    `json:"level"`

	Health    int `json:"health"`
	MaxHealth int `json:"max_health"`
	Mana      int `json:"mana"`
	MaxMana   int `json:"max_mana"`

	Strength     int `json:"strength"`
	Dexterity    int `json:"dexterity"`
	Intelligence int `json:"intelligence"`
	Vitality     int `json:"vitality"`

	Equipment Equipment   `json:"equipment"`
	Inventory []item.Item `json:"inventory"`
	Gold      int         `json:"gold"`

	Experience        int `json:"experience"`
	ExperienceToLevel int `json:"experience_to_level"`
	StatPoints        int `json:"stat_points"`
	SkillPoints       int `json:"skill_points"`

	StatusEffects []status.Effect `json:"status_effects"`
	Skills        []Skill         `json:"unlocked_skills"`
	Appearance    Appearance      `json:"customization"`
}

// NewHero creates a level 1 hero with the starter weapon and armor equipped.
//
// Postcondition: Health == MaxHealth and Mana == MaxMana.
func NewHero(name string) *Hero {
	weapon, armor := item.StarterWeapon(), item.StarterArmor()
	return &Hero{
		Name:              name,
		Level:             1,
		Health:            startingHealth,
		MaxHealth:         startingHealth,
		Mana:              startingMana,
		MaxMana:           startingMana,
		Strength:          12,
		Dexterity:         10,
		Intelligence:      8,
		Vitality:          10,
		Equipment:         Equipment{Weapon: &weapon, Armor: &armor},
		Inventory:         []item.Item{},
		Gold:              startingGold,
		ExperienceToLevel: startingExpToLevel,
		StatusEffects:     []status.Effect{},
		Skills:            StartingSkills(),
		Appearance:        DefaultAppearance(),
	}
}

// AttackPower is strength + level*2 + the weapon's attack bonus.
// Accessory bonuses do not contribute.
func (h *Hero) AttackPower() int {
	ap := h.Strength + h.Level*2
	if w := h.Equipment.Weapon; w != nil {
		ap += w.AttackBonus
	}
	return ap
}

// MagicPower is intelligence + level*1.5.
func (h *Hero) MagicPower() float64 {
	return float64(h.Intelligence) + float64(h.Level)*1.5
}

// Defense is floor(vitality + level*1.5) + the armor's defense bonus.
func (h *Hero) Defense() int {
	def := int(math.Floor(float64(h.Vitality) + float64(h.Level)*1.5))
	if a := h.Equipment.Armor; a != nil {
		def += a.DefenseBonus
	}
	return def
}

// CritChance is a percentage capped at 50.
func (h *Hero) CritChance() float64 {
	return math.Min(critCap, float64(h.Dexterity)*0.5+float64(h.Level)*0.2)
}

// DodgeChance is a percentage capped at 30.
func (h *Hero) DodgeChance() float64 {
	return math.Min(dodgeCap, float64(h.Dexterity)*0.3+float64(h.Level)*0.1)
}

// IsAlive reports Health > 0.
func (h *Hero) IsAlive() bool { return h.Health > 0 }

// Rest restores the hero to full health.
func (h *Hero) Rest() {
	h.Health = h.MaxHealth
}

// Skill returns the unlocked skill with the given name.
func (h *Hero) Skill(name string) (Skill, bool) {
	for _, s := range h.Skills {
		if s.Name == name {
			return s, true
		}
	}
	return Skill{}, false
}
