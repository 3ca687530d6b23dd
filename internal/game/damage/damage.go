// Package damage defines the damage types shared by heroes, enemies and
// skills, and the defense-reduction rule every hit goes through.
package damage

import (
	"fmt"
	"math"
)

// Type classifies a hit.
type Type int

const (
	Physical Type = iota
	Magic
	Poison
)

var typeNames = [...]string{"physical", "magic", "poison"}

// String returns the lower-case name used in events and content files.
func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return "unknown"
	}
	return typeNames[t]
}

// ParseType is the inverse of String.
func ParseType(s string) (Type, error) {
	for i, n := range typeNames {
		if n == s {
			return Type(i), nil
		}
	}
	return 0, fmt.Errorf("damage: unknown type %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (t Type) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Type) UnmarshalText(b []byte) error {
	v, err := ParseType(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// Reduce applies defense and then the type multiplier.
//
// Postcondition: the pre-multiplier value is max(1, raw-defense); the result is
// floor(pre * mult).
func Reduce(raw, defense int, mult float64) int {
	return int(math.Floor(float64(max(1, raw-defense)) * mult))
}

// Scale returns floor(v * factor).
func Scale(v int, factor float64) int {
	return int(math.Floor(float64(v) * factor))
}
