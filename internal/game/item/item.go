// Package item defines the Item value object and the YAML item catalog.
//
// Items have value semantics: every transfer between the shop, loot, the
// inventory and equipment slots copies the struct. Nothing in the game relies
// on item identity.
package item

import (
	"errors"
	"fmt"
	"strings"
)

// Kind is the item category.
type Kind string

const (
	KindWeapon     Kind = "weapon"
	KindArmor      Kind = "armor"
	KindAccessory  Kind = "accessory"
	KindConsumable Kind = "consumable"
)

// Slot is an equipment slot.
type Slot string

const (
	SlotNone      Slot = ""
	SlotWeapon    Slot = "weapon"
	SlotArmor     Slot = "armor"
	SlotAccessory Slot = "accessory"
)

// Slots lists the equipment slots in display order.
var Slots = []Slot{SlotWeapon, SlotArmor, SlotAccessory}

// ParseSlot accepts a slot name in any case.
func ParseSlot(s string) (Slot, error) {
	switch Slot(strings.ToLower(strings.TrimSpace(s))) {
	case SlotWeapon:
		return SlotWeapon, nil
	case SlotArmor:
		return SlotArmor, nil
	case SlotAccessory:
		return SlotAccessory, nil
	}
	return SlotNone, fmt.Errorf("item: unknown slot %q", s)
}

// Effect is what a consumable does when used.
type Effect string

const (
	EffectNone        Effect = ""
	EffectHeal        Effect = "heal"
	EffectRestoreMana Effect = "restore_mana"
)

// Item is an immutable value object.
type Item struct {
	Name         string `yaml:"name"          json:"name"`
	Kind         Kind   `yaml:"kind"          json:"item_type"`
	Rarity       Rarity `yaml:"rarity"        json:"rarity"`
	Slot         Slot   `yaml:"slot"          json:"slot,omitempty"`
	AttackBonus  int    `yaml:"attack_bonus"  json:"attack_bonus"`
	DefenseBonus int    `yaml:"defense_bonus" json:"defense_bonus"`
	Effect       Effect `yaml:"effect"        json:"effect,omitempty"`
	Power        int    `yaml:"power"         json:"power"`
	Value        int    `yaml:"value"         json:"value"`
	Description  string `yaml:"description"   json:"description"`
}

// DefaultSlot returns the slot an item of kind k occupies.
func DefaultSlot(k Kind) Slot {
	switch k {
	case KindWeapon:
		return SlotWeapon
	case KindArmor:
		return SlotArmor
	case KindAccessory:
		return SlotAccessory
	}
	return SlotNone
}

// Normalize fills the slot from the kind and defaults an empty rarity to
// common.
func (it Item) Normalize() Item {
	if it.Slot == SlotNone {
		it.Slot = DefaultSlot(it.Kind)
	}
	if it.Rarity == "" {
		it.Rarity = Common
	}
	return it
}

// Equippable reports whether the item can occupy an equipment slot.
func (it Item) Equippable() bool {
	return it.Kind != KindConsumable && it.Slot != SlotNone
}

// Validate checks the item's invariants.
//
// Postcondition: returns nil iff all fields are valid.
func (it Item) Validate() error {
	var errs []error
	if strings.TrimSpace(it.Name) == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	switch it.Kind {
	case KindWeapon, KindArmor, KindAccessory:
		if it.Slot != DefaultSlot(it.Kind) {
			errs = append(errs, fmt.Errorf("slot %q does not match kind %q", it.Slot, it.Kind))
		}
	case KindConsumable:
		if it.Effect != EffectHeal && it.Effect != EffectRestoreMana {
			errs = append(errs, fmt.Errorf("consumable effect must be heal or restore_mana; got %q", it.Effect))
		}
		if it.Power <= 0 {
			errs = append(errs, errors.New("consumable power must be > 0"))
		}
	default:
		errs = append(errs, fmt.Errorf("kind must be one of weapon, armor, accessory, consumable; got %q", it.Kind))
	}
	if _, ok := rarities[it.Rarity]; !ok {
		errs = append(errs, fmt.Errorf("unknown rarity %q", it.Rarity))
	}
	if it.Value < 0 {
		errs = append(errs, errors.New("value must be >= 0"))
	}
	if it.AttackBonus < 0 || it.DefenseBonus < 0 {
		errs = append(errs, errors.New("bonuses must be >= 0"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("item %q: %w", it.Name, errors.Join(errs...))
	}
	return nil
}
