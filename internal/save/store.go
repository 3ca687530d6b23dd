package save

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cory-johannsen/rpg/internal/game/character"
	"github.com/cory-johannsen/rpg/internal/game/item"
	"github.com/cory-johannsen/rpg/internal/game/status"
)

const (
	fileExt     = ".json"
	defaultSlot = "default"
)

// ErrSlotNotFound is returned when no save exists for a slot.
var ErrSlotNotFound = errors.New("save slot not found")

// Info summarises one save file for listings.
type Info struct {
	Slot      string
	LastSaved time.Time
	HeroName  string
	HeroLevel int
	Playtime  time.Duration
}

// Store reads and writes save files in one directory.
type Store struct {
	dir    string
	now    func() time.Time
	logger *zap.Logger
}

// NewStore creates dir if needed and returns a Store over it.
//
// Precondition: logger must be non-nil.
func NewStore(dir string, logger *zap.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating save dir %q: %w", dir, err)
	}
	return &Store{dir: dir, now: time.Now, logger: logger}, nil
}

// Dir returns the save directory.
func (s *Store) Dir() string { return s.dir }

// SanitizeSlot keeps letters, digits, space, '-' and '_' and trims the
// result. An empty result becomes "default".
func SanitizeSlot(name string) string {
	safe := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' || r == '-' || r == '_' {
			return r
		}
		return -1
	}, name)
	safe = strings.TrimSpace(safe)
	if safe == "" {
		return defaultSlot
	}
	return safe
}

func (s *Store) path(slot string) string {
	return filepath.Join(s.dir, SanitizeSlot(slot)+fileExt)
}

// Save writes state to slot and returns the sanitised slot name.
//
// Precondition: state has a named hero.
// Postcondition: on success LastSaved is stamped, SaveID and CreatedAt are
// assigned on first save, and the mirrors match the hero. The file is
// replaced atomically.
func (s *Store) Save(state *GameState, slot string) (string, error) {
	if err := state.Validate(); err != nil {
		return "", err
	}
	name := SanitizeSlot(slot)
	now := s.now().UTC()

	if state.Metadata.SaveID == "" {
		state.Metadata.SaveID = uuid.NewString()
	}
	if state.Metadata.CreatedAt.IsZero() {
		state.Metadata.CreatedAt = now
	}
	state.Metadata.Version = FormatVersion
	state.Metadata.LastSaved = now
	state.syncMirrors()

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding save %q: %w", name, err)
	}
	if err := writeAtomic(s.path(name), data); err != nil {
		return "", fmt.Errorf("writing save %q: %w", name, err)
	}
	s.logger.Info("game saved",
		zap.String("slot", name),
		zap.String("save_id", state.Metadata.SaveID),
		zap.String("hero", state.Hero.Name),
		zap.Int("level", state.Hero.Level),
	)
	return name, nil
}

func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".save-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// Load reads slot. Keys missing from the file keep the defaults of a new
// game; the hero must be present.
func (s *Store) Load(slot string) (*GameState, error) {
	name := SanitizeSlot(slot)
	data, err := os.ReadFile(s.path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%q: %w", name, ErrSlotNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("reading save %q: %w", name, err)
	}

	state, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("save %q: %w", name, err)
	}
	s.logger.Info("game loaded",
		zap.String("slot", name),
		zap.String("hero", state.Hero.Name),
		zap.Int("level", state.Hero.Level),
	)
	return state, nil
}

// decode layers data over a new game. Equipment starts empty so that saved
// items never merge into the starter gear.
func decode(data []byte) (*GameState, error) {
	h := character.NewHero("")
	h.Equipment = character.Equipment{}
	state := NewGameState(h)
	if err := json.Unmarshal(data, state); err != nil {
		return nil, fmt.Errorf("decoding: %w", err)
	}
	if err := state.Validate(); err != nil {
		return nil, err
	}
	h = state.Hero
	if h.Inventory == nil {
		h.Inventory = []item.Item{}
	}
	if h.StatusEffects == nil {
		h.StatusEffects = []status.Effect{}
	}
	return state, nil
}

// List returns every readable save, newest first. Unreadable files are
// logged and skipped.
func (s *Store) List() ([]Info, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("listing saves in %q: %w", s.dir, err)
	}
	var out []Info
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != fileExt {
			continue
		}
		slot := strings.TrimSuffix(e.Name(), fileExt)
		data, err := os.ReadFile(filepath.Join(s.dir, e.Name()))
		if err != nil {
			s.logger.Warn("skipping unreadable save", zap.String("slot", slot), zap.Error(err))
			continue
		}
		state, err := decode(data)
		if err != nil {
			s.logger.Warn("skipping invalid save", zap.String("slot", slot), zap.Error(err))
			continue
		}
		out = append(out, Info{
			Slot:      slot,
			LastSaved: state.Metadata.LastSaved,
			HeroName:  state.Hero.Name,
			HeroLevel: state.Hero.Level,
			Playtime:  state.Metadata.Playtime(),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].LastSaved.Equal(out[j].LastSaved) {
			return out[i].Slot < out[j].Slot
		}
		return out[i].LastSaved.After(out[j].LastSaved)
	})
	return out, nil
}

// Delete removes slot.
func (s *Store) Delete(slot string) error {
	name := SanitizeSlot(slot)
	err := os.Remove(s.path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%q: %w", name, ErrSlotNotFound)
	}
	if err != nil {
		return fmt.Errorf("deleting save %q: %w", name, err)
	}
	s.logger.Info("save deleted", zap.String("slot", name))
	return nil
}
