package item

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Catalog is an ordered, name-indexed list of items.
type Catalog struct {
	items  []Item
	byName map[string]int
}

// NewCatalog normalizes and validates items and indexes them by name.
//
// Postcondition: returns an error if any item is invalid or a name repeats
// (names compare case-insensitively).
func NewCatalog(items []Item) (*Catalog, error) {
	c := &Catalog{byName: make(map[string]int, len(items))}
	for _, it := range items {
		it = it.Normalize()
		if err := it.Validate(); err != nil {
			return nil, err
		}
		key := strings.ToLower(it.Name)
		if _, dup := c.byName[key]; dup {
			return nil, fmt.Errorf("item: duplicate catalog entry %q", it.Name)
		}
		c.byName[key] = len(c.items)
		c.items = append(c.items, it)
	}
	return c, nil
}

type catalogFile struct {
	Items []Item `yaml:"items"`
}

// LoadCatalog reads every *.yaml/*.yml file in dir, each holding an "items"
// list, in file-name order.
//
// Precondition: dir is a readable directory.
func LoadCatalog(dir string) (*Catalog, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("LoadCatalog: cannot read directory %q: %w", dir, err)
	}
	var all []Item
	for _, entry := range entries {
		ext := filepath.Ext(entry.Name())
		if entry.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("LoadCatalog: cannot read file %q: %w", path, err)
		}
		var f catalogFile
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("LoadCatalog: cannot parse file %q: %w", path, err)
		}
		all = append(all, f.Items...)
	}
	c, err := NewCatalog(all)
	if err != nil {
		return nil, fmt.Errorf("LoadCatalog: %w", err)
	}
	return c, nil
}

// Items returns a copy of the catalog in load order.
func (c *Catalog) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Lookup finds an item by name, ignoring case. The returned Item is a copy.
func (c *Catalog) Lookup(name string) (Item, bool) {
	i, ok := c.byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Item{}, false
	}
	return c.items[i], true
}

// Len returns the number of items.
func (c *Catalog) Len() int { return len(c.items) }
