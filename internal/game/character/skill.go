package character

import (
	"fmt"

	"github.com/cory-johannsen/rpg/internal/game/damage"
)

// SkillType is the damage family a skill scales with.
type SkillType string

const (
	SkillPhysical SkillType = "physical"
	SkillMagic    SkillType = "magic"
)

// DamageType maps the skill family onto the damage pipeline.
func (t SkillType) DamageType() damage.Type {
	if t == SkillMagic {
		return damage.Magic
	}
	return damage.Physical
}

// Skill is an immutable value object.
type Skill struct {
	Name        string    `json:"name"`
	Type        SkillType `json:"skill_type"`
	Damage      int       `json:"damage"`
	ManaCost    int       `json:"mana_cost"`
	Description string    `json:"description"`
}

// Validate reports whether the skill is well formed.
func (s Skill) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("skill name must not be empty")
	}
	if s.Type != SkillPhysical && s.Type != SkillMagic {
		return fmt.Errorf("skill %q: type must be physical or magic; got %q", s.Name, s.Type)
	}
	if s.Damage < 0 || s.ManaCost < 0 {
		return fmt.Errorf("skill %q: damage and mana cost must be >= 0", s.Name)
	}
	return nil
}

// StartingSkills returns the skills every new hero knows.
func StartingSkills() []Skill {
	return []Skill{
		{Name: "Power Strike", Type: SkillPhysical, Damage: 20, ManaCost: 10, Description: "A powerful physical attack."},
		{Name: "Fireball", Type: SkillMagic, Damage: 30, ManaCost: 20, Description: "A fiery magic attack."},
	}
}
