package item_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/rpg/internal/game/item"
)

func TestRarity_ColorAndMultiplier(t *testing.T) {
	assert.Equal(t, "#ffffff", item.Common.Color())
	assert.Equal(t, "#00ff00", item.Uncommon.Color())
	assert.Equal(t, "#0088ff", item.Rare.Color())
	assert.Equal(t, "#aa00ff", item.Epic.Color())
	assert.Equal(t, "#ffaa00", item.Legendary.Color())
	assert.Equal(t, "#ffffff", item.Rarity("mythic").Color())

	assert.Equal(t, 2.0, item.Rare.Multiplier())
	assert.Equal(t, 5.0, item.Legendary.Multiplier())
	assert.Equal(t, 1.0, item.Rarity("mythic").Multiplier())
}

func TestItem_NormalizeFillsSlotAndRarity(t *testing.T) {
	it := item.Item{Name: "Dagger", Kind: item.KindWeapon, AttackBonus: 2}.Normalize()
	assert.Equal(t, item.SlotWeapon, it.Slot)
	assert.Equal(t, item.Common, it.Rarity)
	assert.True(t, it.Equippable())
	assert.False(t, item.HealthPotion().Equippable())
}

func TestItem_Validate(t *testing.T) {
	require.NoError(t, item.StarterWeapon().Validate())
	require.NoError(t, item.ManaPotion().Validate())

	bad := item.Item{Kind: item.KindConsumable, Rarity: "shiny", Value: -1}
	err := bad.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name must not be empty")
	assert.Contains(t, err.Error(), "consumable effect")
	assert.Contains(t, err.Error(), "unknown rarity")
	assert.Contains(t, err.Error(), "value must be >= 0")

	mismatched := item.Item{Name: "Odd", Kind: item.KindArmor, Rarity: item.Common, Slot: item.SlotWeapon}
	assert.ErrorContains(t, mismatched.Validate(), "does not match kind")
}

func TestParseSlot(t *testing.T) {
	s, err := item.ParseSlot(" Armor ")
	require.NoError(t, err)
	assert.Equal(t, item.SlotArmor, s)
	_, err = item.ParseSlot("boots")
	assert.Error(t, err)
}

func TestDefaultShopCatalog(t *testing.T) {
	c := item.DefaultShopCatalog()
	assert.Equal(t, 8, c.Len())

	ring, ok := c.Lookup("gold ring")
	require.True(t, ok)
	assert.Equal(t, 6, ring.AttackBonus)
	assert.Equal(t, 6, ring.DefenseBonus)
	assert.Equal(t, 160, ring.Value)

	_, ok = c.Lookup("Excalibur")
	assert.False(t, ok)
}

func TestCatalog_LookupReturnsCopy(t *testing.T) {
	c := item.DefaultShopCatalog()
	a, _ := c.Lookup("Iron Sword")
	a.AttackBonus = 99
	b, _ := c.Lookup("Iron Sword")
	assert.Equal(t, 8, b.AttackBonus)
}

func TestNewCatalog_RejectsDuplicates(t *testing.T) {
	_, err := item.NewCatalog([]item.Item{item.HealthPotion(), item.HealthPotion()})
	assert.ErrorContains(t, err, "duplicate")
}

func TestLoadCatalog(t *testing.T) {
	dir := t.TempDir()
	yml := `items:
  - name: Bronze Axe
    kind: weapon
    attack_bonus: 6
    value: 40
  - name: Elixir
    kind: consumable
    rarity: rare
    effect: heal
    power: 200
    value: 100
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "stock.yaml"), []byte(yml), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.txt"), []byte("ignored"), 0o644))

	c, err := item.LoadCatalog(dir)
	require.NoError(t, err)
	require.Equal(t, 2, c.Len())

	axe, ok := c.Lookup("Bronze Axe")
	require.True(t, ok)
	assert.Equal(t, item.SlotWeapon, axe.Slot)
	assert.Equal(t, item.Common, axe.Rarity)
}

func TestLoadCatalog_InvalidItem(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte("items:\n  - name: Ghost\n    kind: relic\n"), 0o644))
	_, err := item.LoadCatalog(dir)
	assert.ErrorContains(t, err, "kind must be one of")
}

func TestLoadCatalog_MissingDir(t *testing.T) {
	_, err := item.LoadCatalog(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
