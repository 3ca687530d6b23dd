// Package shop implements the camp between fights: buying and selling items,
// managing the inventory, resting and spending stat points.
package shop

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/rpg/internal/game/character"
	"github.com/cory-johannsen/rpg/internal/game/item"
)

var (
	// ErrInsufficientGold is returned when the hero cannot afford an item.
	ErrInsufficientGold = errors.New("not enough gold")
	// ErrNotInInventory is returned for an inventory position that holds no item.
	ErrNotInInventory = errors.New("no such inventory item")
	// ErrUnknownItem is returned when the catalog has no item of that name.
	ErrUnknownItem = errors.New("item not sold here")
)

// Shop sells a fixed catalog and buys back anything at half its value.
type Shop struct {
	catalog *item.Catalog
	logger  *zap.Logger
}

// New creates a Shop over catalog.
//
// Precondition: catalog and logger must be non-nil.
func New(catalog *item.Catalog, logger *zap.Logger) *Shop {
	return &Shop{catalog: catalog, logger: logger}
}

// Items lists the catalog in display order.
func (s *Shop) Items() []item.Item {
	return s.catalog.Items()
}

// Purchase buys the named item.
//
// Precondition: h must be non-nil.
// Postcondition: on success Gold drops by the item's value and a copy of the
// item is appended to the inventory; on error the hero is unchanged.
func (s *Shop) Purchase(h *character.Hero, name string) (item.Item, error) {
	it, ok := s.catalog.Lookup(name)
	if !ok {
		return item.Item{}, fmt.Errorf("%q: %w", name, ErrUnknownItem)
	}
	if h.Gold < it.Value {
		return item.Item{}, fmt.Errorf("%s costs %d, have %d: %w", it.Name, it.Value, h.Gold, ErrInsufficientGold)
	}
	h.Gold -= it.Value
	h.AddItem(it)
	s.logger.Info("item purchased",
		zap.String("hero", h.Name),
		zap.String("item", it.Name),
		zap.Int("price", it.Value),
		zap.Int("gold", h.Gold),
	)
	return it, nil
}

// SellPrice is half the item's value, rounded down.
func SellPrice(it item.Item) int {
	return it.Value / 2
}

// Sell removes the inventory item at index i and pays SellPrice for it.
//
// Postcondition: on error the hero is unchanged.
func (s *Shop) Sell(h *character.Hero, i int) (sold item.Item, price int, err error) {
	if i < 0 || i >= len(h.Inventory) {
		return item.Item{}, 0, fmt.Errorf("position %d: %w", i+1, ErrNotInInventory)
	}
	sold, _ = h.TakeItem(i)
	price = SellPrice(sold)
	h.Gold += price
	s.logger.Info("item sold",
		zap.String("hero", h.Name),
		zap.String("item", sold.Name),
		zap.Int("price", price),
		zap.Int("gold", h.Gold),
	)
	return sold, price, nil
}
