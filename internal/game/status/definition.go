// Package status defines timed status effects (poisoned, stunned) and the
// per-round tick that applies them to a hero.
package status

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Type identifies a status effect.
type Type string

const (
	Poisoned Type = "poisoned"
	Stunned  Type = "stunned"
)

// Def is the static definition of a status effect, loaded from YAML.
type Def struct {
	ID          Type   `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	// TickDamageDivisor makes each tick deal max(1, max_health/divisor).
	// Zero means the effect deals no damage.
	TickDamageDivisor int    `yaml:"tick_damage_divisor"`
	LuaOnTick         string `yaml:"lua_on_tick"`
}

// Validate checks the definition's invariants.
func (d *Def) Validate() error {
	var errs []error
	if d.ID == "" {
		errs = append(errs, errors.New("id must not be empty"))
	}
	if d.TickDamageDivisor < 0 {
		errs = append(errs, errors.New("tick_damage_divisor must be >= 0"))
	}
	return errors.Join(errs...)
}

// Registry holds all known status definitions keyed by ID.
type Registry struct {
	defs map[Type]*Def
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{defs: make(map[Type]*Def)}
}

// Register adds def, replacing any existing entry with the same ID.
//
// Precondition: def must not be nil.
func (r *Registry) Register(def *Def) error {
	if err := def.Validate(); err != nil {
		return fmt.Errorf("status %q: %w", def.ID, err)
	}
	if def.Name == "" {
		def.Name = DisplayName(def.ID)
	}
	r.defs[def.ID] = def
	return nil
}

// Get returns the definition for id.
func (r *Registry) Get(id Type) (*Def, bool) {
	d, ok := r.defs[id]
	return d, ok
}

// All returns the definitions sorted by ID.
func (r *Registry) All() []*Def {
	out := make([]*Def, 0, len(r.defs))
	for _, d := range r.defs {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// DefaultRegistry returns the built-in poisoned and stunned definitions.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	_ = r.Register(&Def{ID: Poisoned, Name: "Poisoned", Description: "Loses a twentieth of max health each round.", TickDamageDivisor: 20})
	_ = r.Register(&Def{ID: Stunned, Name: "Stunned", Description: "Cannot act."})
	return r
}

// LoadDirectory reads every *.yaml file in dir, one definition per file.
//
// Precondition: dir must be a readable directory.
// Postcondition: Returns a populated Registry, or an error naming the first
// file that fails to parse or validate.
func LoadDirectory(dir string) (*Registry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading status dir %q: %w", dir, err)
	}
	reg := NewRegistry()
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %q: %w", path, err)
		}
		var def Def
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&def); err != nil {
			return nil, fmt.Errorf("parsing %q: %w", path, err)
		}
		if err := reg.Register(&def); err != nil {
			return nil, fmt.Errorf("loading %q: %w", path, err)
		}
	}
	return reg, nil
}

// DisplayName capitalises each word of an effect type: "poisoned" becomes
// "Poisoned".
func DisplayName(t Type) string {
	words := strings.FieldsFunc(string(t), func(r rune) bool { return r == '_' || r == ' ' })
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}
