package character

import (
	"fmt"

	"github.com/cory-johannsen/rpg/internal/game/item"
)

// Equipment holds at most one item per slot.
type Equipment struct {
	Weapon    *item.Item `json:"weapon"`
	Armor     *item.Item `json:"armor"`
	Accessory *item.Item `json:"accessory"`
}

// Clone returns a deep copy; the copies share no item pointers.
func (e Equipment) Clone() Equipment {
	return Equipment{Weapon: clonePtr(e.Weapon), Armor: clonePtr(e.Armor), Accessory: clonePtr(e.Accessory)}
}

func clonePtr(it *item.Item) *item.Item {
	if it == nil {
		return nil
	}
	c := *it
	return &c
}

func (e *Equipment) slot(s item.Slot) **item.Item {
	switch s {
	case item.SlotWeapon:
		return &e.Weapon
	case item.SlotArmor:
		return &e.Armor
	case item.SlotAccessory:
		return &e.Accessory
	}
	return nil
}

// Get returns a copy of the item in slot s.
func (e *Equipment) Get(s item.Slot) (item.Item, bool) {
	p := e.slot(s)
	if p == nil || *p == nil {
		return item.Item{}, false
	}
	return **p, true
}

// Equip puts a copy of it into its slot and returns the previous occupant.
// The inventory is not touched; the caller reconciles it.
//
// Precondition: it must be equippable.
// Postcondition: Equipment.Get(it.Slot) == it.
func (h *Hero) Equip(it item.Item) (prev item.Item, hadPrev bool, err error) {
	it = it.Normalize()
	p := h.Equipment.slot(it.Slot)
	if !it.Equippable() || p == nil {
		return item.Item{}, false, fmt.Errorf("%s cannot be equipped", it.Name)
	}
	if *p != nil {
		prev, hadPrev = **p, true
	}
	*p = &it
	return prev, hadPrev, nil
}

// Unequip empties slot s and returns what it held.
//
// Postcondition: Equipment.Get(s) reports false.
func (h *Hero) Unequip(s item.Slot) (item.Item, bool) {
	p := h.Equipment.slot(s)
	if p == nil || *p == nil {
		return item.Item{}, false
	}
	old := **p
	*p = nil
	return old, true
}
