package character

import (
	"fmt"
	"slices"

	"github.com/cory-johannsen/rpg/internal/game/item"
)

// AddItem appends a copy of it to the inventory.
func (h *Hero) AddItem(it item.Item) {
	h.Inventory = append(h.Inventory, it)
}

// RemoveItem removes the first inventory item equal to it.
func (h *Hero) RemoveItem(it item.Item) bool {
	for i, held := range h.Inventory {
		if held == it {
			h.Inventory = slices.Delete(h.Inventory, i, i+1)
			return true
		}
	}
	return false
}

// TakeItem removes and returns the inventory item at index i.
func (h *Hero) TakeItem(i int) (item.Item, error) {
	if i < 0 || i >= len(h.Inventory) {
		return item.Item{}, fmt.Errorf("no inventory item at position %d", i+1)
	}
	it := h.Inventory[i]
	h.Inventory = slices.Delete(h.Inventory, i, i+1)
	return it, nil
}

// UseItem applies a consumable's effect. ok is false for anything that is
// not a consumable with a known effect.
//
// Postcondition: Health <= MaxHealth and Mana <= MaxMana.
func (h *Hero) UseItem(it item.Item) (msg string, ok bool) {
	if it.Kind != item.KindConsumable {
		return "", false
	}
	switch it.Effect {
	case item.EffectHeal:
		amount := max(0, min(it.Power, h.MaxHealth-h.Health))
		h.Health += amount
		return fmt.Sprintf("Restored %d health!", amount), true
	case item.EffectRestoreMana:
		amount := max(0, min(it.Power, h.MaxMana-h.Mana))
		h.Mana += amount
		return fmt.Sprintf("Restored %d mana!", amount), true
	}
	return "", false
}

// EquipFromInventory equips the inventory item at index i and returns the
// previous occupant of its slot to the inventory.
func (h *Hero) EquipFromInventory(i int) (equipped item.Item, err error) {
	if i < 0 || i >= len(h.Inventory) {
		return item.Item{}, fmt.Errorf("no inventory item at position %d", i+1)
	}
	it := h.Inventory[i]
	if !it.Normalize().Equippable() {
		return item.Item{}, fmt.Errorf("%s cannot be equipped", it.Name)
	}
	if _, err := h.TakeItem(i); err != nil {
		return item.Item{}, err
	}
	prev, hadPrev, err := h.Equip(it)
	if err != nil {
		return item.Item{}, err
	}
	if hadPrev {
		h.AddItem(prev)
	}
	return it, nil
}

// UseFromInventory uses the consumable at index i and removes it.
func (h *Hero) UseFromInventory(i int) (string, error) {
	if i < 0 || i >= len(h.Inventory) {
		return "", fmt.Errorf("no inventory item at position %d", i+1)
	}
	it := h.Inventory[i]
	msg, ok := h.UseItem(it)
	if !ok {
		return "", fmt.Errorf("%s cannot be used", it.Name)
	}
	_, _ = h.TakeItem(i)
	return msg, nil
}
