package dice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/rpg/internal/game/dice"
	"github.com/cory-johannsen/rpg/internal/testutil"
)

func TestRollResult_Total(t *testing.T) {
	r := dice.RollResult{Expression: "2d6+3", Dice: []int{4, 5}, Modifier: 3}
	assert.Equal(t, 12, r.Total())
	assert.Equal(t, "2d6+3: [4 5] +3 = 12", r.String())
}

func TestParse(t *testing.T) {
	cases := []struct {
		in                    string
		count, sides, modifer int
	}{
		{"d6", 1, 6, 0},
		{"2d6", 2, 6, 0},
		{"1d6+4", 1, 6, 4},
		{"3D8-2", 3, 8, -2},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			e, err := dice.Parse(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.count, e.Count)
			assert.Equal(t, tc.sides, e.Sides)
			assert.Equal(t, tc.modifer, e.Modifier)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	for _, in := range []string{"", "6", "0d6", "xd6", "1d1", "1d", "1d6+x"} {
		_, err := dice.Parse(in)
		assert.Error(t, err, "input %q", in)
	}
}

func TestMustParse_Panics(t *testing.T) {
	assert.Panics(t, func() { dice.MustParse("nope") })
}

func TestExpression_Roll_StaysInBounds(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		count := rapid.IntRange(1, 6).Draw(rt, "count")
		sides := rapid.IntRange(2, 20).Draw(rt, "sides")
		mod := rapid.IntRange(-10, 10).Draw(rt, "mod")
		e := dice.Expression{Raw: "x", Count: count, Sides: sides, Modifier: mod}

		res := e.Roll(dice.NewCryptoSource())
		require.Len(rt, res.Dice, count)
		assert.GreaterOrEqual(rt, res.Total(), e.Min())
		assert.LessOrEqual(rt, res.Total(), e.Max())
	})
}

func TestCryptoSource_Intn(t *testing.T) {
	src := dice.NewCryptoSource()
	for i := 0; i < 1000; i++ {
		v := src.Intn(6)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 6)
	}
	assert.Panics(t, func() { src.Intn(0) })
}

func TestSeededSource_IsDeterministic(t *testing.T) {
	a := dice.NewSeededSource(42)
	b := dice.NewSeededSource(42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Intn(1000), b.Intn(1000))
	}
}

func TestNewSource_ZeroSeedUsesCrypto(t *testing.T) {
	assert.Equal(t, dice.NewCryptoSource(), dice.NewSource(0))
	assert.NotEqual(t, dice.NewCryptoSource(), dice.NewSource(7))
}

func TestRoller_PercentAndChance(t *testing.T) {
	r := testutil.Roller(t, testutil.NewScripted(testutil.Low, testutil.High, 399_999, 400_000))

	assert.Equal(t, 0.0, r.Percent("crit"))
	assert.InDelta(t, 99.9999, r.Percent("crit"), 1e-9)
	assert.True(t, r.Chance("run", 0.4))
	assert.False(t, r.Chance("run", 0.4))
}

func TestRoller_ChanceConsumesARollAtTheBounds(t *testing.T) {
	src := testutil.NewScripted(testutil.Low, testutil.High)
	r := testutil.Roller(t, src)

	assert.False(t, r.Chance("never", 0))
	assert.True(t, r.Chance("always", 1))
	assert.Equal(t, 2, src.Consumed())
}

func TestRoller_Between(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		lo := rapid.IntRange(-5, 5).Draw(rt, "lo")
		hi := lo + rapid.IntRange(0, 10).Draw(rt, "span")
		r := dice.NewRoller(dice.NewCryptoSource(), zap.NewNop())
		v := r.Between("offset", lo, hi)
		assert.GreaterOrEqual(rt, v, lo)
		assert.LessOrEqual(rt, v, hi)
	})
}

func TestRoller_RollExpr(t *testing.T) {
	r := testutil.Roller(t, testutil.Fixed(2))
	res, err := r.RollExpr("gold", "1d6+4")
	require.NoError(t, err)
	assert.Equal(t, 7, res.Total())

	_, err = r.RollExpr("gold", "bogus")
	assert.Error(t, err)
}
