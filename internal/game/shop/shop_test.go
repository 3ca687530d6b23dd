package shop_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/rpg/internal/game/character"
	"github.com/cory-johannsen/rpg/internal/game/item"
	"github.com/cory-johannsen/rpg/internal/game/shop"
)

func newShop(t *testing.T) *shop.Shop {
	t.Helper()
	return shop.New(item.DefaultShopCatalog(), zaptest.NewLogger(t))
}

func TestPurchase(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	s := shop.New(item.DefaultShopCatalog(), zap.New(core))
	h := character.NewHero("Aria")

	it, err := s.Purchase(h, "health potion")
	require.NoError(t, err)
	assert.Equal(t, "Health Potion", it.Name)
	assert.Equal(t, 75, h.Gold)
	require.Len(t, h.Inventory, 1)
	assert.Equal(t, "Health Potion", h.Inventory[0].Name)
	assert.Equal(t, 1, logs.FilterMessage("item purchased").Len())
}

func TestPurchase_InsufficientGold(t *testing.T) {
	s := newShop(t)
	h := character.NewHero("Aria")

	_, err := s.Purchase(h, "Steel Sword")
	assert.ErrorIs(t, err, shop.ErrInsufficientGold)
	assert.Equal(t, 100, h.Gold)
	assert.Empty(t, h.Inventory)
}

func TestPurchase_ExactGold(t *testing.T) {
	s := newShop(t)
	h := character.NewHero("Aria")
	h.Gold = 150

	_, err := s.Purchase(h, "Steel Sword")
	require.NoError(t, err)
	assert.Zero(t, h.Gold)
}

func TestPurchase_UnknownItem(t *testing.T) {
	s := newShop(t)
	h := character.NewHero("Aria")

	_, err := s.Purchase(h, "Excalibur")
	assert.ErrorIs(t, err, shop.ErrUnknownItem)
}

func TestPurchase_ItemsAreCopies(t *testing.T) {
	s := newShop(t)
	h := character.NewHero("Aria")

	_, err := s.Purchase(h, "Iron Sword")
	require.NoError(t, err)
	h.Inventory[0].AttackBonus = 99

	again, ok := item.DefaultShopCatalog().Lookup("Iron Sword")
	require.True(t, ok)
	assert.Equal(t, 8, again.AttackBonus)
	for _, it := range s.Items() {
		if it.Name == "Iron Sword" {
			assert.Equal(t, 8, it.AttackBonus)
		}
	}
}

func TestSell(t *testing.T) {
	s := newShop(t)
	h := character.NewHero("Aria")
	h.AddItem(item.HealthPotion())
	h.AddItem(item.ManaPotion())

	sold, price, err := s.Sell(h, 1)
	require.NoError(t, err)
	assert.Equal(t, "Mana Potion", sold.Name)
	assert.Equal(t, 10, price)
	assert.Equal(t, 110, h.Gold)
	assert.Equal(t, []item.Item{item.HealthPotion()}, h.Inventory)

	_, _, err = s.Sell(h, 5)
	assert.ErrorIs(t, err, shop.ErrNotInInventory)
	_, _, err = s.Sell(h, -1)
	assert.ErrorIs(t, err, shop.ErrNotInInventory)
}

func TestSellPrice_RoundsDown(t *testing.T) {
	assert.Equal(t, 12, shop.SellPrice(item.HealthPotion()))
	assert.Equal(t, 4, shop.SellPrice(item.StarterArmor()))
}

func TestBuyThenSell_NeverProfits(t *testing.T) {
	catalog := item.DefaultShopCatalog()
	names := make([]string, 0, catalog.Len())
	for _, it := range catalog.Items() {
		names = append(names, it.Name)
	}
	rapid.Check(t, func(rt *rapid.T) {
		s := shop.New(catalog, zap.NewNop())
		h := character.NewHero("Prop")
		h.Gold = rapid.IntRange(0, 1000).Draw(rt, "gold")
		start := h.Gold
		name := rapid.SampledFrom(names).Draw(rt, "item")

		if _, err := s.Purchase(h, name); err != nil {
			assert.Equal(rt, start, h.Gold)
			return
		}
		_, _, err := s.Sell(h, len(h.Inventory)-1)
		require.NoError(rt, err)
		assert.LessOrEqual(rt, h.Gold, start)
		assert.Empty(rt, h.Inventory)
	})
}

func TestEquip_SwapsPreviousIntoInventory(t *testing.T) {
	s := newShop(t)
	h := character.NewHero("Aria")
	_, err := s.Purchase(h, "Iron Sword")
	require.NoError(t, err)

	it, err := s.Equip(h, 0)
	require.NoError(t, err)
	assert.Equal(t, "Iron Sword", it.Name)
	assert.Equal(t, 12+2+8, h.AttackPower())
	require.Len(t, h.Inventory, 1)
	assert.Equal(t, "Rusty Sword", h.Inventory[0].Name)

	_, err = s.Equip(h, 3)
	assert.ErrorIs(t, err, shop.ErrNotInInventory)
}

func TestEquip_RejectsConsumable(t *testing.T) {
	s := newShop(t)
	h := character.NewHero("Aria")
	h.AddItem(item.HealthPotion())

	_, err := s.Equip(h, 0)
	assert.Error(t, err)
	assert.Len(t, h.Inventory, 1)
}

func TestUnequip(t *testing.T) {
	s := newShop(t)
	h := character.NewHero("Aria")

	it, err := s.Unequip(h, item.SlotArmor)
	require.NoError(t, err)
	assert.Equal(t, "Cloth Tunic", it.Name)
	assert.Len(t, h.Inventory, 1)

	_, err = s.Unequip(h, item.SlotAccessory)
	assert.Error(t, err)
}

func TestUse(t *testing.T) {
	s := newShop(t)
	h := character.NewHero("Aria")
	h.Health = 30
	h.AddItem(item.HealthPotion())

	msg, err := s.Use(h, 0)
	require.NoError(t, err)
	assert.Equal(t, "Restored 50 health!", msg)
	assert.Equal(t, 80, h.Health)
	assert.Empty(t, h.Inventory)

	_, err = s.Use(h, 0)
	assert.ErrorIs(t, err, shop.ErrNotInInventory)
}

func TestRest(t *testing.T) {
	s := newShop(t)
	h := character.NewHero("Aria")
	h.Health, h.Mana = 1, 1

	s.Rest(h)
	assert.Equal(t, h.MaxHealth, h.Health)
	assert.Equal(t, 1, h.Mana)
}

func TestAllocate(t *testing.T) {
	s := newShop(t)
	h := character.NewHero("Aria")

	assert.ErrorIs(t, s.Allocate(h, "str"), character.ErrNoStatPoints)

	h.StatPoints = 1
	require.NoError(t, s.Allocate(h, "defense"))
	assert.Equal(t, 11, h.Vitality)
	assert.Zero(t, h.StatPoints)
}
