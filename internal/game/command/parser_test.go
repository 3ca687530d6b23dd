package command

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestParse_Empty(t *testing.T) {
	result := Parse("")
	assert.Equal(t, "", result.Command)
	assert.Nil(t, result.Args)
}

func TestParse_SingleWord(t *testing.T) {
	result := Parse("look")
	assert.Equal(t, "look", result.Command)
	assert.Nil(t, result.Args)
	assert.Equal(t, "", result.RawArgs)
}

func TestParse_Lowercase(t *testing.T) {
	result := Parse("BUY Iron Sword")
	assert.Equal(t, "buy", result.Command)
	assert.Equal(t, "Iron Sword", result.RawArgs, "arguments keep their case")
}

func TestParse_WithArgs(t *testing.T) {
	result := Parse("customize hair_color black")
	assert.Equal(t, "customize", result.Command)
	assert.Equal(t, []string{"hair_color", "black"}, result.Args)
	assert.Equal(t, "hair_color black", result.RawArgs)
}

func TestParse_ExtraWhitespace(t *testing.T) {
	result := Parse("  new   Sir   Reginald  ")
	assert.Equal(t, "new", result.Command)
	assert.Equal(t, []string{"Sir", "Reginald"}, result.Args)
	assert.Equal(t, "Sir   Reginald", result.RawArgs)
}

func TestParse_Alias(t *testing.T) {
	result := Parse("i")
	assert.Equal(t, "i", result.Command)
}

func TestParseResult_Index(t *testing.T) {
	idx, ok := Parse("use 2").Index(0)
	assert.True(t, ok)
	assert.Equal(t, 1, idx)

	for _, line := range []string{"use", "use 0", "use -1", "use two"} {
		_, ok := Parse(line).Index(0)
		assert.False(t, ok, line)
	}
}

func TestPropertyIndexIsOneBased(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 1000).Draw(t, "n")
		idx, ok := Parse("sell " + strconv.Itoa(n)).Index(0)
		if !ok || idx != n-1 {
			t.Fatalf("sell %d parsed to (%d, %v)", n, idx, ok)
		}
	})
}

func TestPropertyParseAlwaysLowercasesCommand(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		word := rapid.StringMatching(`[A-Za-z]{1,20}`).Draw(t, "word")
		result := Parse(word)
		for _, c := range result.Command {
			if c >= 'A' && c <= 'Z' {
				t.Fatalf("command %q contains uppercase char in Parse result %q", word, result.Command)
			}
		}
	})
}

func TestPropertyParseNonEmptyInputHasCommand(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		word := rapid.StringMatching(`[a-z]{1,10}`).Draw(t, "word")
		result := Parse(word)
		if result.Command == "" {
			t.Fatalf("non-empty input %q produced empty command", word)
		}
	})
}
