// Package save persists game state as one indented JSON document per slot.
package save

import (
	"errors"
	"time"

	"github.com/cory-johannsen/rpg/internal/game/character"
	"github.com/cory-johannsen/rpg/internal/game/item"
)

// FormatVersion is written to every save's metadata.
const FormatVersion = "1.0"

// ErrNoHero is returned when a state without a named hero is saved or loaded.
var ErrNoHero = errors.New("game state has no hero")

// Metadata describes the save itself.
type Metadata struct {
	SaveID    string    `json:"save_id"`
	Version   string    `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	LastSaved time.Time `json:"last_saved"`
	// TotalPlaytime is in whole seconds.
	TotalPlaytime int64 `json:"total_playtime"`
}

// Playtime returns TotalPlaytime as a Duration.
func (m Metadata) Playtime() time.Duration {
	return time.Duration(m.TotalPlaytime) * time.Second
}

// Progress holds lifetime counters.
type Progress struct {
	EnemiesDefeated int `json:"enemies_defeated"`
	BattlesFled     int `json:"battles_fled"`
	Defeats         int `json:"defeats"`
	HighestLevel    int `json:"highest_level"`
}

// Settings holds player preferences.
type Settings struct {
	Color    bool `json:"color"`
	AutoSave bool `json:"auto_save"`
}

// SessionStats counts what happened since the game was started or loaded.
type SessionStats struct {
	Battles          int `json:"battles"`
	Victories        int `json:"victories"`
	GoldEarned       int `json:"gold_earned"`
	ExperienceEarned int `json:"experience_earned"`
}

// GameState is the unit of persistence.
//
// Inventory and Equipment mirror the hero's own for readers of the file; the
// hero's copies are authoritative on load.
type GameState struct {
	Metadata     Metadata            `json:"metadata"`
	Hero         *character.Hero     `json:"hero"`
	Inventory    []item.Item         `json:"inventory"`
	Equipment    character.Equipment `json:"equipment"`
	GameProgress Progress            `json:"game_progress"`
	Settings     Settings            `json:"settings"`
	SessionStats SessionStats        `json:"session_stats"`
}

// NewGameState wraps h with default settings.
func NewGameState(h *character.Hero) *GameState {
	s := &GameState{
		Metadata:  Metadata{Version: FormatVersion},
		Hero:      h,
		Inventory: []item.Item{},
		Settings:  Settings{Color: true, AutoSave: true},
	}
	if h != nil {
		s.GameProgress.HighestLevel = h.Level
	}
	return s
}

// Validate reports ErrNoHero when there is no hero or it has no name.
func (s *GameState) Validate() error {
	if s == nil || s.Hero == nil || s.Hero.Name == "" {
		return ErrNoHero
	}
	return nil
}

// AddPlaytime accumulates d, truncated to whole seconds.
func (s *GameState) AddPlaytime(d time.Duration) {
	if d > 0 {
		s.Metadata.TotalPlaytime += int64(d / time.Second)
	}
}

// syncMirrors copies the hero's inventory and equipment into the top-level
// fields.
func (s *GameState) syncMirrors() {
	s.Inventory = append([]item.Item{}, s.Hero.Inventory...)
	s.Equipment = s.Hero.Equipment.Clone()
	s.GameProgress.HighestLevel = max(s.GameProgress.HighestLevel, s.Hero.Level)
}
