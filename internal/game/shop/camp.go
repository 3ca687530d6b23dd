package shop

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/rpg/internal/game/character"
	"github.com/cory-johannsen/rpg/internal/game/item"
)

// Equip moves the inventory item at index i into its slot. The previous
// occupant goes back into the inventory.
func (s *Shop) Equip(h *character.Hero, i int) (item.Item, error) {
	if i < 0 || i >= len(h.Inventory) {
		return item.Item{}, fmt.Errorf("position %d: %w", i+1, ErrNotInInventory)
	}
	it, err := h.EquipFromInventory(i)
	if err != nil {
		return item.Item{}, fmt.Errorf("equipping: %w", err)
	}
	s.logger.Debug("item equipped", zap.String("hero", h.Name), zap.String("item", it.Name))
	return it, nil
}

// Unequip moves the item in slot back into the inventory.
func (s *Shop) Unequip(h *character.Hero, slot item.Slot) (item.Item, error) {
	it, ok := h.Unequip(slot)
	if !ok {
		return item.Item{}, fmt.Errorf("nothing equipped in %s slot", slot)
	}
	h.AddItem(it)
	s.logger.Debug("item unequipped", zap.String("hero", h.Name), zap.String("item", it.Name))
	return it, nil
}

// Use consumes the inventory item at index i.
func (s *Shop) Use(h *character.Hero, i int) (string, error) {
	if i < 0 || i >= len(h.Inventory) {
		return "", fmt.Errorf("position %d: %w", i+1, ErrNotInInventory)
	}
	msg, err := h.UseFromInventory(i)
	if err != nil {
		return "", fmt.Errorf("using item: %w", err)
	}
	s.logger.Debug("item used", zap.String("hero", h.Name), zap.String("result", msg))
	return msg, nil
}

// Rest heals the hero to full. Mana is not restored.
func (s *Shop) Rest(h *character.Hero) {
	h.Rest()
	s.logger.Info("hero rested", zap.String("hero", h.Name), zap.Int("health", h.Health))
}

// Allocate spends one stat point on stat.
func (s *Shop) Allocate(h *character.Hero, stat string) error {
	if err := h.AllocateStat(stat); err != nil {
		return fmt.Errorf("allocating %q: %w", stat, err)
	}
	s.logger.Info("stat point allocated",
		zap.String("hero", h.Name),
		zap.String("stat", stat),
		zap.Int("remaining", h.StatPoints),
	)
	return nil
}
