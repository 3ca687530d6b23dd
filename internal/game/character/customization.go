package character

import (
	"errors"
	"fmt"
	"os"
	"unicode"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

const (
	nameMinLen = 1
	nameMaxLen = 20
)

// Appearance is the hero's chosen look. Every field holds an option ID.
type Appearance struct {
	HairColor  string `json:"hair_color"  yaml:"hair_color"`
	HairStyle  string `json:"hair_style"  yaml:"hair_style"`
	SkinTone   string `json:"skin_tone"   yaml:"skin_tone"`
	EyeColor   string `json:"eye_color"   yaml:"eye_color"`
	Headgear   string `json:"headgear"    yaml:"headgear"`
	Accessory  string `json:"accessory"   yaml:"accessory"`
	FacialHair string `json:"facial_hair" yaml:"facial_hair"`
}

// DefaultAppearance is the look of a hero created without customization.
func DefaultAppearance() Appearance {
	return Appearance{
		HairColor:  "brown",
		HairStyle:  "medium",
		SkinTone:   "medium",
		EyeColor:   "brown",
		Headgear:   "none",
		Accessory:  "none",
		FacialHair: "none",
	}
}

// Fields pairs each category name with its value, in display order.
func (a Appearance) Fields() [][2]string {
	return [][2]string{
		{"hair_color", a.HairColor},
		{"hair_style", a.HairStyle},
		{"skin_tone", a.SkinTone},
		{"eye_color", a.EyeColor},
		{"headgear", a.Headgear},
		{"accessory", a.Accessory},
		{"facial_hair", a.FacialHair},
	}
}

// Set assigns id to category. It does not check id against a catalog; use
// Customization.Validate for that.
func (a *Appearance) Set(category, id string) error {
	var field *string
	switch category {
	case "hair_color":
		field = &a.HairColor
	case "hair_style":
		field = &a.HairStyle
	case "skin_tone":
		field = &a.SkinTone
	case "eye_color":
		field = &a.EyeColor
	case "headgear":
		field = &a.Headgear
	case "accessory":
		field = &a.Accessory
	case "facial_hair":
		field = &a.FacialHair
	default:
		return fmt.Errorf("unknown appearance category %q", category)
	}
	*field = id
	return nil
}

// Option is one selectable value in a customization category.
type Option struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Color    string `yaml:"color,omitempty"`
	Unlocked bool   `yaml:"unlocked"`
}

// Customization is the catalog of appearance options. It is constructed
// explicitly at startup and passed to whoever needs it.
type Customization struct {
	Categories map[string][]Option `yaml:"categories"`
}

func unlocked(opts ...Option) []Option {
	for i := range opts {
		opts[i].Unlocked = true
	}
	return opts
}

// DefaultCustomization returns the built-in option catalog.
func DefaultCustomization() *Customization {
	return &Customization{Categories: map[string][]Option{
		"hair_color": unlocked(
			Option{ID: "black", Name: "Black", Color: "#1a1a1a"},
			Option{ID: "brown", Name: "Brown", Color: "#8B4513"},
			Option{ID: "blonde", Name: "Blonde", Color: "#FFD700"},
			Option{ID: "red", Name: "Red", Color: "#DC143C"},
			Option{ID: "gray", Name: "Gray", Color: "#808080"},
			Option{ID: "white", Name: "White", Color: "#FFFFFF"},
		),
		"hair_style": unlocked(
			Option{ID: "short", Name: "Short"},
			Option{ID: "long", Name: "Long"},
			Option{ID: "medium", Name: "Medium"},
			Option{ID: "buzzcut", Name: "Buzz Cut"},
			Option{ID: "ponytail", Name: "Ponytail"},
		),
		"skin_tone": unlocked(
			Option{ID: "pale", Name: "Pale", Color: "#F5DEB3"},
			Option{ID: "fair", Name: "Fair", Color: "#DEB887"},
			Option{ID: "medium", Name: "Medium", Color: "#D2B48C"},
			Option{ID: "tan", Name: "Tan", Color: "#CD853F"},
			Option{ID: "olive", Name: "Olive", Color: "#BCB88A"},
			Option{ID: "dark", Name: "Dark", Color: "#8B4513"},
		),
		"eye_color": unlocked(
			Option{ID: "brown", Name: "Brown", Color: "#8B4513"},
			Option{ID: "blue", Name: "Blue", Color: "#4169E1"},
			Option{ID: "green", Name: "Green", Color: "#228B22"},
			Option{ID: "hazel", Name: "Hazel", Color: "#8B7355"},
			Option{ID: "gray", Name: "Gray", Color: "#708090"},
		),
		"headgear": {
			{ID: "none", Name: "None", Unlocked: true},
			{ID: "cap", Name: "Baseball Cap", Unlocked: true},
			{ID: "helmet", Name: "Warrior Helmet"},
			{ID: "crown", Name: "Golden Crown"},
		},
		"accessory": {
			{ID: "none", Name: "None", Unlocked: true},
			{ID: "scarf", Name: "Silk Scarf", Unlocked: true},
			{ID: "necklace", Name: "Silver Necklace"},
			{ID: "cape", Name: "Hero Cape"},
		},
		"facial_hair": unlocked(
			Option{ID: "none", Name: "None"},
			Option{ID: "beard", Name: "Beard"},
			Option{ID: "mustache", Name: "Mustache"},
		),
	}}
}

// LoadCustomization reads an option catalog from a YAML file with a top-level
// "categories" map.
func LoadCustomization(path string) (*Customization, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading customization %q: %w", path, err)
	}
	var c Customization
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing customization %q: %w", path, err)
	}
	for _, cat := range DefaultAppearance().Fields() {
		if len(c.Categories[cat[0]]) == 0 {
			return nil, fmt.Errorf("customization %q: category %s has no options", path, cat[0])
		}
	}
	return &c, nil
}

// Option returns the option with id in category.
func (c *Customization) Option(category, id string) (Option, bool) {
	for _, o := range c.Categories[category] {
		if o.ID == id {
			return o, true
		}
	}
	return Option{}, false
}

// Unlocked returns the options of category that a new hero may pick.
func (c *Customization) Unlocked(category string) []Option {
	var out []Option
	for _, o := range c.Categories[category] {
		if o.Unlocked {
			out = append(out, o)
		}
	}
	return out
}

// Validate checks the name and that every appearance field names an unlocked
// option.
func (c *Customization) Validate(name string, a Appearance) error {
	var errs []error
	if err := ValidateName(name); err != nil {
		errs = append(errs, err)
	}
	for _, cat := range a.Fields() {
		o, ok := c.Option(cat[0], cat[1])
		switch {
		case !ok:
			errs = append(errs, fmt.Errorf("invalid %s option: %q", cat[0], cat[1]))
		case !o.Unlocked:
			errs = append(errs, fmt.Errorf("%s option %q is locked", cat[0], cat[1]))
		}
	}
	return errors.Join(errs...)
}

// ValidateName accepts 1 to 20 letters, digits, spaces, hyphens and
// underscores.
func ValidateName(name string) error {
	if n := utf8.RuneCountInString(name); n < nameMinLen || n > nameMaxLen {
		return fmt.Errorf("name must be %d-%d characters", nameMinLen, nameMaxLen)
	}
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != ' ' && r != '-' && r != '_' {
			return fmt.Errorf("name can only contain letters, numbers, spaces, hyphens, and underscores")
		}
	}
	return nil
}
