// Package testutil provides deterministic randomness and logging helpers for
// tests.
package testutil

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"github.com/cory-johannsen/rpg/internal/game/dice"
)

const (
	// Low makes every Percent roll 0 and every Chance with p > 0 succeed.
	Low = 0
	// High makes every Percent roll just under 100 and every Chance with
	// p < 1 fail.
	High = 999_999
)

// Scripted is a dice.Source that replays a fixed list of values and then
// repeats Fallback. Every value is clamped into [0, n).
type Scripted struct {
	values   []int
	pos      int
	Fallback int
}

// NewScripted returns a source replaying values, then High.
func NewScripted(values ...int) *Scripted {
	return &Scripted{values: values, Fallback: High}
}

// Fixed returns a source that always yields v.
func Fixed(v int) *Scripted {
	return &Scripted{Fallback: v}
}

// Intn implements dice.Source.
func (s *Scripted) Intn(n int) int {
	v := s.Fallback
	if s.pos < len(s.values) {
		v = s.values[s.pos]
		s.pos++
	}
	if v >= n {
		v = n - 1
	}
	if v < 0 {
		v = 0
	}
	return v
}

// Consumed reports how many scripted values have been used.
func (s *Scripted) Consumed() int { return s.pos }

// Roller returns a dice.Roller over src that logs to the test output.
func Roller(t testing.TB, src dice.Source) *dice.Roller {
	t.Helper()
	return dice.NewRoller(src, zaptest.NewLogger(t))
}

// NopRoller returns a dice.Roller over src that discards its log output.
// Property tests use it to avoid flooding the test log.
func NopRoller(src dice.Source) *dice.Roller {
	return dice.NewRoller(src, zap.NewNop())
}
