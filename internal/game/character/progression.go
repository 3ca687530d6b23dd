package character

import (
	"fmt"
	"strings"
)

const (
	statPointsPerLevel  = 3
	skillPointsPerLevel = 1
)

// GainExperience adds exp and performs every level-up it pays for.
//
// Postcondition: Experience < ExperienceToLevel; StatPoints and SkillPoints
// grow by 3 and 1 per level gained.
func (h *Hero) GainExperience(exp int) (levels int) {
	h.Experience += exp
	for h.Experience >= h.ExperienceToLevel {
		h.levelUp()
		levels++
	}
	h.StatPoints += levels * statPointsPerLevel
	h.SkillPoints += levels * skillPointsPerLevel
	return levels
}

func (h *Hero) levelUp() {
	h.Level++
	h.Experience -= h.ExperienceToLevel
	h.ExperienceToLevel = int(float64(h.ExperienceToLevel) * thresholdGrowth(h.Level))

	h.MaxHealth += h.Vitality
	h.MaxMana += h.Intelligence / 2
	h.Health = h.MaxHealth
	h.Mana = h.MaxMana
}

// thresholdGrowth is the experience threshold multiplier applied on reaching
// level.
func thresholdGrowth(level int) float64 {
	switch {
	case level <= 10:
		return 1.4
	case level <= 25:
		return 1.3
	default:
		return 1.2
	}
}

// LevelUpMessage describes the gains of the most recent level.
func (h *Hero) LevelUpMessage() string {
	return fmt.Sprintf("%s reached level %d!\nGained +%d Max Health\nGained +%d Max Mana\nEarned %d Stat Points and %d Skill Point!",
		h.Name, h.Level, h.Vitality, h.Intelligence/2, statPointsPerLevel, skillPointsPerLevel)
}

// AllocateStat spends one stat point on a primary attribute. Besides the
// attribute names it accepts the aliases "defense" (vitality), "magic"
// (intelligence) and "speed" (dexterity).
func (h *Hero) AllocateStat(stat string) error {
	if h.StatPoints <= 0 {
		return ErrNoStatPoints
	}
	switch strings.ToLower(strings.TrimSpace(stat)) {
	case "strength", "str":
		h.Strength++
	case "dexterity", "dex", "speed":
		h.Dexterity++
	case "intelligence", "int", "magic":
		h.Intelligence++
	case "vitality", "vit", "defense":
		h.Vitality++
	default:
		return fmt.Errorf("unknown stat %q", stat)
	}
	h.StatPoints--
	return nil
}
