// Package dice provides the single shared randomness source used by every
// roll in the game, plus dice expressions such as "1d6+4".
package dice

import (
	"fmt"
	"strings"
)

// Source is the randomness provider for every roll.
//
// Exactly one Source is constructed per process and passed to every consumer;
// consumers never reseed.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	//
	// Precondition: n > 0.
	Intn(n int) int
}

// RollResult records the individual dice of one evaluated expression.
//
// Postcondition: Total() == sum(Dice) + Modifier.
type RollResult struct {
	Expression string
	Dice       []int
	Modifier   int
}

// Total returns the sum of all die results plus the modifier.
func (r RollResult) Total() int {
	total := r.Modifier
	for _, d := range r.Dice {
		total += d
	}
	return total
}

// String renders the roll as "1d6+4: [3] +4 = 7".
func (r RollResult) String() string {
	parts := make([]string, len(r.Dice))
	for i, d := range r.Dice {
		parts[i] = fmt.Sprint(d)
	}
	return fmt.Sprintf("%s: [%s] %+d = %d", r.Expression, strings.Join(parts, " "), r.Modifier, r.Total())
}
