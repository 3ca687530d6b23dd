package dice

import (
	"math"

	"go.uber.org/zap"
)

// resolution is the number of discrete outcomes behind Percent and Chance.
const resolution = 1_000_000

// Roller draws every game roll from one Source and logs each at debug level.
type Roller struct {
	src    Source
	logger *zap.Logger
}

// NewRoller creates a Roller over src.
//
// Precondition: src and logger must be non-nil.
func NewRoller(src Source, logger *zap.Logger) *Roller {
	return &Roller{src: src, logger: logger}
}

// Percent returns a uniform value in [0, 100).
func (r *Roller) Percent(label string) float64 {
	v := float64(r.src.Intn(resolution)) * 100 / resolution
	r.logger.Debug("percent roll", zap.String("roll", label), zap.Float64("value", v))
	return v
}

// Chance reports whether an event with probability p happens. A roll is
// consumed even when p is 0 or 1.
func (r *Roller) Chance(label string, p float64) bool {
	v := r.src.Intn(resolution)
	hit := v < int(math.Round(p*resolution))
	r.logger.Debug("chance roll",
		zap.String("roll", label),
		zap.Float64("probability", p),
		zap.Bool("hit", hit),
	)
	return hit
}

// Intn returns a uniform value in [0, n).
//
// Precondition: n > 0.
func (r *Roller) Intn(label string, n int) int {
	v := r.src.Intn(n)
	r.logger.Debug("index roll", zap.String("roll", label), zap.Int("n", n), zap.Int("value", v))
	return v
}

// Between returns a uniform value in [lo, hi].
//
// Precondition: lo <= hi.
func (r *Roller) Between(label string, lo, hi int) int {
	return lo + r.Intn(label, hi-lo+1)
}

// Roll evaluates expr and logs the individual dice.
func (r *Roller) Roll(label string, expr Expression) RollResult {
	result := expr.Roll(r.src)
	r.logger.Debug("dice roll",
		zap.String("roll", label),
		zap.String("expression", result.Expression),
		zap.Ints("dice", result.Dice),
		zap.Int("modifier", result.Modifier),
		zap.Int("total", result.Total()),
	)
	return result
}

// RollExpr parses expr and rolls it.
func (r *Roller) RollExpr(label, expr string) (RollResult, error) {
	e, err := Parse(expr)
	if err != nil {
		return RollResult{}, err
	}
	return r.Roll(label, e), nil
}
