package item

// Rarity grades equipment quality.
type Rarity string

const (
	Common    Rarity = "common"
	Uncommon  Rarity = "uncommon"
	Rare      Rarity = "rare"
	Epic      Rarity = "epic"
	Legendary Rarity = "legendary"
)

type rarityInfo struct {
	color      string
	multiplier float64
}

var rarities = map[Rarity]rarityInfo{
	Common:    {"#ffffff", 1.0},
	Uncommon:  {"#00ff00", 1.5},
	Rare:      {"#0088ff", 2.0},
	Epic:      {"#aa00ff", 3.0},
	Legendary: {"#ffaa00", 5.0},
}

// Color returns the display colour as a hex string; unknown rarities render
// white.
func (r Rarity) Color() string {
	if info, ok := rarities[r]; ok {
		return info.color
	}
	return rarities[Common].color
}

// Multiplier scales generated equipment bonuses and value.
func (r Rarity) Multiplier() float64 {
	if info, ok := rarities[r]; ok {
		return info.multiplier
	}
	return 1.0
}
