package item

// StarterWeapon is equipped on every new hero.
func StarterWeapon() Item {
	return Item{Name: "Rusty Sword", Kind: KindWeapon, Rarity: Common, Slot: SlotWeapon,
		AttackBonus: 3, Value: 10, Description: "A worn but functional blade"}
}

// StarterArmor is equipped on every new hero.
func StarterArmor() Item {
	return Item{Name: "Cloth Tunic", Kind: KindArmor, Rarity: Common, Slot: SlotArmor,
		DefenseBonus: 2, Value: 8, Description: "Simple protective clothing"}
}

// HealthPotion restores 50 HP.
func HealthPotion() Item {
	return Item{Name: "Health Potion", Kind: KindConsumable, Rarity: Common,
		Effect: EffectHeal, Power: 50, Value: 25, Description: "Restores 50 HP"}
}

// ManaPotion restores 30 MP.
func ManaPotion() Item {
	return Item{Name: "Mana Potion", Kind: KindConsumable, Rarity: Common,
		Effect: EffectRestoreMana, Power: 30, Value: 20, Description: "Restores 30 MP"}
}

// GreaterHealthPotion restores 100 HP.
func GreaterHealthPotion() Item {
	return Item{Name: "Greater Health Potion", Kind: KindConsumable, Rarity: Uncommon,
		Effect: EffectHeal, Power: 100, Value: 50, Description: "Restores 100 HP"}
}

// DefaultShopItems is the built-in shop stock used when no content
// directory is configured.
func DefaultShopItems() []Item {
	return []Item{
		HealthPotion(),
		ManaPotion(),
		{Name: "Iron Sword", Kind: KindWeapon, Rarity: Common, Slot: SlotWeapon, AttackBonus: 8, Value: 75, Description: "+8 Attack Power"},
		{Name: "Steel Sword", Kind: KindWeapon, Rarity: Uncommon, Slot: SlotWeapon, AttackBonus: 15, Value: 150, Description: "+15 Attack Power"},
		{Name: "Leather Armor", Kind: KindArmor, Rarity: Common, Slot: SlotArmor, DefenseBonus: 5, Value: 60, Description: "+5 Defense"},
		{Name: "Chain Mail", Kind: KindArmor, Rarity: Uncommon, Slot: SlotArmor, DefenseBonus: 12, Value: 120, Description: "+12 Defense"},
		{Name: "Silver Ring", Kind: KindAccessory, Rarity: Common, Slot: SlotAccessory, AttackBonus: 3, DefenseBonus: 3, Value: 80, Description: "+3 Attack, +3 Defense"},
		{Name: "Gold Ring", Kind: KindAccessory, Rarity: Uncommon, Slot: SlotAccessory, AttackBonus: 6, DefenseBonus: 6, Value: 160, Description: "+6 Attack, +6 Defense"},
	}
}

// DefaultShopCatalog wraps DefaultShopItems in a Catalog.
func DefaultShopCatalog() *Catalog {
	c, err := NewCatalog(DefaultShopItems())
	if err != nil {
		panic("item: built-in shop catalog is invalid: " + err.Error())
	}
	return c
}
