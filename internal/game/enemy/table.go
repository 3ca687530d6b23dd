package enemy

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Traits is descriptive metadata. Nothing in the damage pipeline reads it.
type Traits struct {
	ElementalType     string   `yaml:"elemental_type"`
	ElementalStrength int      `yaml:"elemental_strength"`
	Weaknesses        []string `yaml:"weaknesses"`
	Resistances       []string `yaml:"resistances"`
	Immunities        []string `yaml:"immunities"`
	ThreatLevel       string   `yaml:"threat_level"`
	Rarity            string   `yaml:"rarity"`
	CombatStyle       string   `yaml:"combat_style"`
	Size              string   `yaml:"size"`
	Description       string   `yaml:"description"`
}

// ArchetypeDef holds the fixed stat deltas and special attacks of one
// archetype.
type ArchetypeDef struct {
	Archetype        Archetype       `yaml:"archetype"`
	HealthBonus      int             `yaml:"health_bonus"`
	AttackBonus      int             `yaml:"attack_bonus"`
	DefenseBonus     int             `yaml:"defense_bonus"`
	MagicAttackBonus int             `yaml:"magic_attack_bonus"`
	Specials         []SpecialAttack `yaml:"special_attacks"`
	// Names feed the random generator. An archetype joins the encounter
	// pool only when Encounter is set.
	Names     []string `yaml:"names"`
	Encounter bool     `yaml:"encounter"`
	Traits    Traits   `yaml:"traits"`
}

// Validate checks the definition's invariants.
func (d *ArchetypeDef) Validate() error {
	var errs []error
	if d.Encounter && len(d.Names) == 0 {
		errs = append(errs, errors.New("encounter archetypes need at least one name"))
	}
	for _, n := range d.Names {
		if strings.TrimSpace(n) == "" {
			errs = append(errs, errors.New("names must not be blank"))
			break
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("archetype %s: %w", d.Archetype, errors.Join(errs...))
	}
	return nil
}

// Table maps every archetype to its definition. It is built once at startup.
type Table struct {
	defs map[Archetype]*ArchetypeDef
}

// NewTable validates defs and fills any archetype left out with a plain
// definition that has no deltas.
func NewTable(defs []*ArchetypeDef) (*Table, error) {
	t := &Table{defs: make(map[Archetype]*ArchetypeDef, len(archetypeNames))}
	for _, d := range defs {
		if err := d.Validate(); err != nil {
			return nil, err
		}
		if _, dup := t.defs[d.Archetype]; dup {
			return nil, fmt.Errorf("archetype %s defined twice", d.Archetype)
		}
		t.defs[d.Archetype] = d
	}
	for _, a := range Archetypes() {
		if _, ok := t.defs[a]; !ok {
			t.defs[a] = &ArchetypeDef{Archetype: a}
		}
	}
	return t, nil
}

// Get returns the definition for a.
//
// Postcondition: never nil for a declared archetype.
func (t *Table) Get(a Archetype) *ArchetypeDef {
	return t.defs[a]
}

// EncounterPool returns the archetypes the random generator draws from, in
// declaration order.
func (t *Table) EncounterPool() []Archetype {
	var out []Archetype
	for _, a := range Archetypes() {
		if t.defs[a].Encounter {
			out = append(out, a)
		}
	}
	return out
}

// LoadTable reads every *.yaml file in dir, one archetype per file.
//
// Precondition: dir must be a readable directory.
func LoadTable(dir string) (*Table, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading enemy dir %q: %w", dir, err)
	}
	var defs []*ArchetypeDef
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %q: %w", path, err)
		}
		var d ArchetypeDef
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&d); err != nil {
			return nil, fmt.Errorf("parsing %q: %w", path, err)
		}
		defs = append(defs, &d)
	}
	t, err := NewTable(defs)
	if err != nil {
		return nil, fmt.Errorf("loading %q: %w", dir, err)
	}
	return t, nil
}

// DefaultTable returns the built-in archetype table.
func DefaultTable() *Table {
	t, err := NewTable([]*ArchetypeDef{
		{Archetype: Normal},
		{
			Archetype: Warrior, AttackBonus: 3, DefenseBonus: 2,
			Specials:  []SpecialAttack{PowerStrike},
			Names:     []string{"Orc Warrior", "Goblin Fighter", "Bandit Chief", "Knight"},
			Encounter: true,
			Traits:    Traits{ThreatLevel: "moderate", CombatStyle: "aggressive", Size: "medium"},
		},
		{
			Archetype: Mage, MagicAttackBonus: 5, AttackBonus: -2,
			Specials:  []SpecialAttack{MagicMissile, Fireball},
			Names:     []string{"Dark Sorcerer", "Shadow Mage", "Fire Wizard", "Ice Witch"},
			Encounter: true,
			Traits:    Traits{ElementalType: "arcane", ElementalStrength: 2, Weaknesses: []string{"physical"}, ThreatLevel: "high", CombatStyle: "ranged", Size: "medium"},
		},
		{
			Archetype: Rogue, AttackBonus: 2,
			Specials:  []SpecialAttack{Backstab, PoisonStrike},
			Names:     []string{"Assassin", "Thief", "Shadow Walker", "Night Blade"},
			Encounter: true,
			Traits:    Traits{ThreatLevel: "moderate", CombatStyle: "evasive", Size: "medium"},
		},
		{
			Archetype: Tank, HealthBonus: 30, DefenseBonus: 5, AttackBonus: -2,
			Specials:  []SpecialAttack{ShieldBash},
			Names:     []string{"Stone Golem", "Iron Guardian", "Rock Beast", "Earth Elemental"},
			Encounter: true,
			Traits:    Traits{ElementalType: "earth", ElementalStrength: 1, Resistances: []string{"physical"}, ThreatLevel: "moderate", CombatStyle: "defensive", Size: "large"},
		},
		{Archetype: Giant, HealthBonus: 40, AttackBonus: 3, Specials: []SpecialAttack{PowerStrike}, Traits: Traits{Size: "huge", ThreatLevel: "high"}},
		{Archetype: Undead, DefenseBonus: 2, Specials: []SpecialAttack{PoisonStrike}, Traits: Traits{Weaknesses: []string{"fire", "holy"}, Immunities: []string{"poison"}}},
		{Archetype: Beast, AttackBonus: 2, Specials: []SpecialAttack{Backstab}, Traits: Traits{CombatStyle: "aggressive"}},
		{Archetype: Elemental, MagicAttackBonus: 4, Specials: []SpecialAttack{Fireball}, Traits: Traits{ElementalType: "fire", ElementalStrength: 3, Weaknesses: []string{"water"}, Immunities: []string{"fire"}}},
	})
	if err != nil {
		panic("enemy: built-in archetype table is invalid: " + err.Error())
	}
	return t
}
