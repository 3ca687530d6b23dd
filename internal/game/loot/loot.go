// Package loot generates random item drops from defeated enemies.
package loot

import (
	"math"

	"go.uber.org/zap"

	"github.com/cory-johannsen/rpg/internal/game/dice"
	"github.com/cory-johannsen/rpg/internal/game/item"
)

const (
	baseDropChance     = 0.2
	dropChancePerLevel = 0.05
	maxDropChance      = 0.8

	baseRarityChance     = 0.1
	rarityChancePerLevel = 0.02
	maxRarityChance      = 0.5
	rareShare            = 0.3
)

var (
	kinds = []item.Kind{item.KindWeapon, item.KindArmor, item.KindAccessory, item.KindConsumable}

	weaponNames    = []string{"Iron Sword", "Steel Blade", "Magic Sword", "Enchanted Blade", "Legendary Sword"}
	armorNames     = []string{"Leather Armor", "Chain Mail", "Plate Armor", "Magic Armor", "Legendary Armor"}
	accessoryNames = []string{"Silver Ring", "Gold Amulet", "Magic Pendant", "Enchanted Gem", "Legendary Artifact"}
)

func consumables() []item.Item {
	return []item.Item{item.HealthPotion(), item.ManaPotion(), item.GreaterHealthPotion()}
}

// DropChance is the probability that an enemy of level drops an item.
func DropChance(level int) float64 {
	return math.Min(maxDropChance, baseDropChance+dropChancePerLevel*float64(level))
}

// RarityChance is the probability that generated equipment is better than
// common.
func RarityChance(level int) float64 {
	return math.Min(maxRarityChance, baseRarityChance+rarityChancePerLevel*float64(level))
}

// Generator rolls random items.
type Generator struct {
	roller *dice.Roller
	logger *zap.Logger
}

// NewGenerator creates a Generator.
func NewGenerator(roller *dice.Roller, logger *zap.Logger) *Generator {
	return &Generator{roller: roller, logger: logger}
}

// RollDrop rolls the drop chance for an enemy of level and, on success,
// generates the item.
func (g *Generator) RollDrop(level int) (item.Item, bool) {
	if !g.roller.Chance("item drop", DropChance(level)) {
		return item.Item{}, false
	}
	return g.RandomItem(level), true
}

// RandomItem generates an item for an enemy of level.
//
// Rolls, in order: kind; then either the consumable pick, or the rarity
// chance, the rare share (only when the rarity chance hit) and the name.
func (g *Generator) RandomItem(level int) item.Item {
	kind := kinds[g.roller.Intn("loot kind", len(kinds))]
	if kind == item.KindConsumable {
		pool := consumables()
		return pool[g.roller.Intn("loot consumable", len(pool))]
	}

	rarity := item.Common
	if g.roller.Chance("loot rarity", RarityChance(level)) {
		rarity = item.Uncommon
		if g.roller.Chance("loot rare", rareShare) {
			rarity = item.Rare
		}
	}
	m := rarity.Multiplier()
	lv := float64(level)

	it := item.Item{Kind: kind, Rarity: rarity, Slot: item.DefaultSlot(kind)}
	switch kind {
	case item.KindWeapon:
		it.Name = weaponNames[g.roller.Intn("loot name", len(weaponNames))]
		it.AttackBonus = scale(5+lv, m)
		it.Value = scale(50, m)
	case item.KindArmor:
		it.Name = armorNames[g.roller.Intn("loot name", len(armorNames))]
		it.DefenseBonus = scale(3+lv, m)
		it.Value = scale(40, m)
	case item.KindAccessory:
		it.Name = accessoryNames[g.roller.Intn("loot name", len(accessoryNames))]
		it.AttackBonus = scale(2+0.5*lv, m)
		it.DefenseBonus = it.AttackBonus
		it.Value = scale(60, m)
	}
	g.logger.Debug("loot generated",
		zap.String("item", it.Name),
		zap.String("rarity", string(it.Rarity)),
		zap.Int("level", level),
	)
	return it
}

func scale(base, m float64) int {
	return int(math.Floor(base * m))
}
