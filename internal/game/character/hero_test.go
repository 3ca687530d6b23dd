package character_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/rpg/internal/game/character"
	"github.com/cory-johannsen/rpg/internal/game/damage"
	"github.com/cory-johannsen/rpg/internal/game/item"
	"github.com/cory-johannsen/rpg/internal/game/status"
	"github.com/cory-johannsen/rpg/internal/testutil"
)

func TestNewHero_DerivedStats(t *testing.T) {
	h := character.NewHero("Aria")
	assert.Equal(t, 1, h.Level)
	assert.Equal(t, 100, h.Health)
	assert.Equal(t, 50, h.Mana)
	assert.Equal(t, 100, h.Gold)
	assert.Equal(t, 17, h.AttackPower())
	assert.Equal(t, 13, h.Defense())
	assert.InDelta(t, 5.2, h.CritChance(), 1e-9)
	assert.InDelta(t, 3.1, h.DodgeChance(), 1e-9)
	assert.InDelta(t, 9.5, h.MagicPower(), 1e-9)
	assert.Len(t, h.Skills, 2)
	assert.True(t, h.IsAlive())
	assert.True(t, h.CanAct())
}

func TestHero_AccessoryDoesNotChangeAttackOrDefense(t *testing.T) {
	h := character.NewHero("Aria")
	ring, _ := item.DefaultShopCatalog().Lookup("Gold Ring")
	_, _, err := h.Equip(ring)
	require.NoError(t, err)
	assert.Equal(t, 17, h.AttackPower())
	assert.Equal(t, 13, h.Defense())
}

func TestHero_CapsHold(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		h := character.NewHero("Cap")
		h.Dexterity = rapid.IntRange(0, 1000).Draw(rt, "dex")
		h.Level = rapid.IntRange(1, 500).Draw(rt, "level")
		assert.LessOrEqual(rt, h.CritChance(), 50.0)
		assert.LessOrEqual(rt, h.DodgeChance(), 30.0)
	})
}

func TestHero_EquipUnequipRoundTrip(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		h := character.NewHero("Eq")
		slot := rapid.SampledFrom(item.Slots).Draw(rt, "slot")
		kinds := map[item.Slot]item.Kind{
			item.SlotWeapon: item.KindWeapon, item.SlotArmor: item.KindArmor, item.SlotAccessory: item.KindAccessory,
		}
		x := item.Item{
			Name:         rapid.StringMatching(`[A-Z][a-z]{2,8}`).Draw(rt, "name"),
			Kind:         kinds[slot],
			Rarity:       item.Common,
			Slot:         slot,
			AttackBonus:  rapid.IntRange(0, 50).Draw(rt, "atk"),
			DefenseBonus: rapid.IntRange(0, 50).Draw(rt, "def"),
		}
		invBefore := len(h.Inventory)

		_, _, err := h.Equip(x)
		require.NoError(rt, err)
		got, ok := h.Unequip(slot)
		require.True(rt, ok)
		assert.Equal(rt, x, got)
		_, still := h.Equipment.Get(slot)
		assert.False(rt, still)
		assert.Len(rt, h.Inventory, invBefore)
	})
}

func TestHero_EquipReturnsPrevious(t *testing.T) {
	h := character.NewHero("Aria")
	sword, _ := item.DefaultShopCatalog().Lookup("Iron Sword")
	prev, had, err := h.Equip(sword)
	require.NoError(t, err)
	require.True(t, had)
	assert.Equal(t, item.StarterWeapon(), prev)
	assert.Equal(t, 12+2+8, h.AttackPower())

	_, _, err = h.Equip(item.HealthPotion())
	assert.Error(t, err)
}

func TestHero_EquipCopiesItem(t *testing.T) {
	h := character.NewHero("Aria")
	sword, _ := item.DefaultShopCatalog().Lookup("Iron Sword")
	_, _, err := h.Equip(sword)
	require.NoError(t, err)
	sword.AttackBonus = 100
	assert.Equal(t, 22, h.AttackPower())
}

func TestHero_UnequipEmptySlot(t *testing.T) {
	h := character.NewHero("Aria")
	_, ok := h.Unequip(item.SlotAccessory)
	assert.False(t, ok)
}

func TestHero_TakeDamage(t *testing.T) {
	h := character.NewHero("Aria")

	// Percent just under 100 never dodges.
	r := testutil.Roller(t, testutil.NewScripted(testutil.High))
	dealt, dodged := h.TakeDamage(20, damage.Physical, r)
	assert.False(t, dodged)
	assert.Equal(t, 7, dealt)
	assert.Equal(t, 93, h.Health)

	dealt, _ = h.TakeDamage(20, damage.Magic, r)
	assert.Equal(t, 8, dealt)

	dealt, _ = h.TakeDamage(20, damage.Poison, r)
	assert.Equal(t, 5, dealt)
	assert.False(t, h.HasStatus(status.Poisoned))
}

func TestHero_TakeDamage_Dodge(t *testing.T) {
	h := character.NewHero("Aria")
	r := testutil.Roller(t, testutil.NewScripted(testutil.Low))
	dealt, dodged := h.TakeDamage(50, damage.Physical, r)
	assert.True(t, dodged)
	assert.Zero(t, dealt)
	assert.Equal(t, 100, h.Health)
}

func TestHero_TakeDamage_PoisonApplies(t *testing.T) {
	h := character.NewHero("Aria")
	r := testutil.Roller(t, testutil.NewScripted(testutil.High, testutil.Low))
	_, _ = h.TakeDamage(20, damage.Poison, r)
	require.True(t, h.HasStatus(status.Poisoned))
	assert.Equal(t, status.NewEffect(status.Poisoned, 3), h.StatusEffects[0])
}

func TestHero_TakeDamage_AtLeastOneBeforeMultiplier(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		h := character.NewHero("Tank")
		h.Vitality = rapid.IntRange(0, 200).Draw(rt, "vit")
		raw := rapid.IntRange(0, 100).Draw(rt, "raw")
		r := testutil.NopRoller(testutil.Fixed(testutil.High))
		dealt, dodged := h.TakeDamage(raw, damage.Physical, r)
		assert.False(rt, dodged)
		assert.Equal(rt, max(1, raw-h.Defense()), dealt)
	})
}

func TestHero_StatusEffects(t *testing.T) {
	h := character.NewHero("Aria")
	ticker := status.NewTicker(status.DefaultRegistry(), nil, zap.NewNop())

	h.AddStatusEffect(status.Stunned, 1)
	h.AddStatusEffect(status.Poisoned, 2)
	assert.False(t, h.CanAct())

	dmg := h.ProcessStatusEffects(ticker)
	assert.Equal(t, 5, dmg)
	assert.Equal(t, 95, h.Health)
	assert.True(t, h.CanAct())
	require.Len(t, h.StatusEffects, 1)

	h.RemoveStatusEffect(status.Poisoned)
	assert.Empty(t, h.StatusEffects)
}

func TestHero_Rest(t *testing.T) {
	h := character.NewHero("Aria")
	h.Health = 3
	h.Mana = 1
	h.Rest()
	assert.Equal(t, h.MaxHealth, h.Health)
	assert.Equal(t, 1, h.Mana)
}
