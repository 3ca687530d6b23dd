package character_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/rpg/internal/game/character"
)

func TestValidateName(t *testing.T) {
	assert.NoError(t, character.ValidateName("Aria"))
	assert.NoError(t, character.ValidateName("Sir Lance-a_lot 2"))
	assert.Error(t, character.ValidateName(""))
	assert.Error(t, character.ValidateName(strings.Repeat("a", 21)))
	assert.Error(t, character.ValidateName("bad!name"))
}

func TestCustomization_ValidateDefaults(t *testing.T) {
	c := character.DefaultCustomization()
	assert.NoError(t, c.Validate("Hero", character.DefaultAppearance()))
}

func TestCustomization_ValidateRejects(t *testing.T) {
	c := character.DefaultCustomization()
	a := character.DefaultAppearance()
	a.HairColor = "green"
	a.Headgear = "crown"

	err := c.Validate("Hero", a)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid hair_color option: "green"`)
	assert.Contains(t, err.Error(), `headgear option "crown" is locked`)
}

func TestCustomization_OptionAndUnlocked(t *testing.T) {
	c := character.DefaultCustomization()
	o, ok := c.Option("skin_tone", "olive")
	require.True(t, ok)
	assert.Equal(t, "#BCB88A", o.Color)

	ids := []string{}
	for _, o := range c.Unlocked("accessory") {
		ids = append(ids, o.ID)
	}
	assert.Equal(t, []string{"none", "scarf"}, ids)
	assert.Empty(t, c.Unlocked("wings"))
}

func TestLoadCustomization(t *testing.T) {
	path := filepath.Join(t.TempDir(), "customization.yaml")
	yml := `categories:
  hair_color: [{id: brown, name: Brown, unlocked: true}]
  hair_style: [{id: medium, name: Medium, unlocked: true}]
  skin_tone: [{id: medium, name: Medium, unlocked: true}]
  eye_color: [{id: brown, name: Brown, unlocked: true}]
  headgear: [{id: none, name: None, unlocked: true}]
  accessory: [{id: none, name: None, unlocked: true}]
  facial_hair: [{id: none, name: None, unlocked: true}]
`
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o644))
	c, err := character.LoadCustomization(path)
	require.NoError(t, err)
	assert.NoError(t, c.Validate("Hero", character.DefaultAppearance()))

	require.NoError(t, os.WriteFile(path, []byte("categories:\n  hair_color: []\n"), 0o644))
	_, err = character.LoadCustomization(path)
	assert.Error(t, err)
}

func TestAppearance_Set(t *testing.T) {
	a := character.DefaultAppearance()
	require.NoError(t, a.Set("headgear", "cap"))
	require.NoError(t, a.Set("facial_hair", "beard"))
	assert.Equal(t, "cap", a.Headgear)
	assert.Equal(t, "beard", a.FacialHair)
	assert.NoError(t, character.DefaultCustomization().Validate("Aria", a))

	assert.Error(t, a.Set("tattoo", "dragon"))
}

func TestAppearance_FieldsCoverEveryCategory(t *testing.T) {
	c := character.DefaultCustomization()
	fields := character.DefaultAppearance().Fields()
	assert.Len(t, fields, len(c.Categories))
	for _, f := range fields {
		_, ok := c.Option(f[0], f[1])
		assert.True(t, ok, "%s=%s", f[0], f[1])
	}
}
