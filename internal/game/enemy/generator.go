package enemy

import (
	"errors"

	"go.uber.org/zap"

	"github.com/cory-johannsen/rpg/internal/game/dice"
)

const maxLevelAboveHero = 5

// Generator produces random encounters from a Table.
type Generator struct {
	table  *Table
	roller *dice.Roller
	logger *zap.Logger
}

// NewGenerator creates a Generator. It fails when no archetype is marked for
// encounters.
func NewGenerator(table *Table, roller *dice.Roller, logger *zap.Logger) (*Generator, error) {
	if len(table.EncounterPool()) == 0 {
		return nil, errors.New("enemy: encounter pool is empty")
	}
	return &Generator{table: table, roller: roller, logger: logger}, nil
}

// Random returns an enemy for a hero of heroLevel.
//
// Rolls, in order: archetype, name, level offset in [-2, 2], gold.
// Postcondition: 1 <= Level <= heroLevel+5.
func (g *Generator) Random(heroLevel int) *Enemy {
	pool := g.table.EncounterPool()
	def := g.table.Get(pool[g.roller.Intn("encounter archetype", len(pool))])
	name := def.Names[g.roller.Intn("encounter name", len(def.Names))]
	level := heroLevel + g.roller.Between("encounter level", -2, 2)
	level = max(1, min(level, heroLevel+maxLevelAboveHero))

	e := New(name, level, def, g.roller)
	g.logger.Info("encounter generated",
		zap.String("enemy", e.Name),
		zap.Stringer("archetype", e.Archetype),
		zap.Int("level", e.Level),
	)
	return e
}

// Pool returns the archetypes Random draws from.
func (g *Generator) Pool() []Archetype {
	return g.table.EncounterPool()
}
