// Package theme owns the runtime theme configuration: the values rendered as
// root data-* attributes (theme mode, palette choices, border and surface
// styles, scaling) and the store that mutates them.
package theme

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/onceui/internal/validation"
	onceerrors "github.com/alexisbeaulieu97/onceui/pkg/errors"
)

var (
	// ErrUnknownAttribute is returned for attribute names outside the theme.
	ErrUnknownAttribute = errors.New("unknown theme attribute")
	// ErrInvalidValue is returned when a value is not one of the attribute's options.
	ErrInvalidValue = errors.New("invalid theme value")
)

// Config is the theme state applied to the document root.
type Config struct {
	Theme      string `yaml:"theme,omitempty" toml:"theme,omitempty" json:"theme" validate:"oneof=light dark system"`
	Neutral    string `yaml:"neutral,omitempty" toml:"neutral,omitempty" json:"neutral" validate:"oneof=sand gray slate"`
	Brand      string `yaml:"brand,omitempty" toml:"brand,omitempty" json:"brand" validate:"oneof=blue indigo violet magenta pink red orange yellow moss green emerald aqua cyan"`
	Accent     string `yaml:"accent,omitempty" toml:"accent,omitempty" json:"accent" validate:"oneof=blue indigo violet magenta pink red orange yellow moss green emerald aqua cyan"`
	Solid      string `yaml:"solid,omitempty" toml:"solid,omitempty" json:"solid" validate:"oneof=color contrast inverse"`
	SolidStyle string `yaml:"solid_style,omitempty" toml:"solid_style,omitempty" json:"solid-style" validate:"oneof=flat plastic"`
	Border     string `yaml:"border,omitempty" toml:"border,omitempty" json:"border" validate:"oneof=rounded playful conservative"`
	Surface    string `yaml:"surface,omitempty" toml:"surface,omitempty" json:"surface" validate:"oneof=filled translucent"`
	Transition string `yaml:"transition,omitempty" toml:"transition,omitempty" json:"transition" validate:"oneof=all micro macro none"`
	Scaling    string `yaml:"scaling,omitempty" toml:"scaling,omitempty" json:"scaling" validate:"oneof=90 95 100 105 110"`
}

// DefaultConfig returns the theme applied when nothing is configured.
func DefaultConfig() Config {
	return Config{
		Theme:      "system",
		Neutral:    "gray",
		Brand:      "cyan",
		Accent:     "red",
		Solid:      "contrast",
		SolidStyle: "flat",
		Border:     "playful",
		Surface:    "translucent",
		Transition: "all",
		Scaling:    "100",
	}
}

var palette = []string{
	"blue", "indigo", "violet", "magenta", "pink", "red", "orange",
	"yellow", "moss", "green", "emerald", "aqua", "cyan",
}

type attribute struct {
	name    string
	options []string
	field   func(*Config) *string
}

var attributes = []attribute{
	{"theme", []string{"light", "dark", "system"}, func(c *Config) *string { return &c.Theme }},
	{"neutral", []string{"sand", "gray", "slate"}, func(c *Config) *string { return &c.Neutral }},
	{"brand", palette, func(c *Config) *string { return &c.Brand }},
	{"accent", palette, func(c *Config) *string { return &c.Accent }},
	{"solid", []string{"color", "contrast", "inverse"}, func(c *Config) *string { return &c.Solid }},
	{"solid-style", []string{"flat", "plastic"}, func(c *Config) *string { return &c.SolidStyle }},
	{"border", []string{"rounded", "playful", "conservative"}, func(c *Config) *string { return &c.Border }},
	{"surface", []string{"filled", "translucent"}, func(c *Config) *string { return &c.Surface }},
	{"transition", []string{"all", "micro", "macro", "none"}, func(c *Config) *string { return &c.Transition }},
	{"scaling", []string{"90", "95", "100", "105", "110"}, func(c *Config) *string { return &c.Scaling }},
}

// lookup accepts "solid-style", "solid_style" and "data-solid-style".
func lookup(name string) (attribute, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.TrimPrefix(name, "data-")
	name = strings.ReplaceAll(name, "_", "-")
	for _, a := range attributes {
		if a.name == name {
			return a, true
		}
	}
	return attribute{}, false
}

// Names lists the theme attributes in display order.
func Names() []string {
	names := make([]string, len(attributes))
	for i, a := range attributes {
		names[i] = a.name
	}
	return names
}

// Options returns the allowed values of an attribute.
func Options(name string) ([]string, bool) {
	a, ok := lookup(name)
	if !ok {
		return nil, false
	}
	return append([]string(nil), a.options...), true
}

// Get returns the current value of an attribute.
func (c Config) Get(name string) (string, bool) {
	a, ok := lookup(name)
	if !ok {
		return "", false
	}
	return *a.field(&c), true
}

// Set assigns an attribute without validating the value; Validate (or the
// store) decides whether the result is acceptable.
func (c *Config) Set(name, value string) error {
	a, ok := lookup(name)
	if !ok {
		return onceerrors.NewThemeError(name, value, ErrUnknownAttribute)
	}
	*a.field(c) = strings.TrimSpace(value)
	return nil
}

// Attributes renders the root data-* attributes.
func (c Config) Attributes() map[string]string {
	out := make(map[string]string, len(attributes))
	for _, a := range attributes {
		out["data-"+a.name] = *a.field(&c)
	}
	return out
}

// Normalize fills unset attributes from DefaultConfig.
func (c Config) Normalize() Config {
	defaults := DefaultConfig()
	for _, a := range attributes {
		if strings.TrimSpace(*a.field(&c)) == "" {
			*a.field(&c) = *a.field(&defaults)
		}
	}
	return c
}

// Validate checks every attribute against its options. The first offending
// attribute is reported as a ThemeError wrapping ErrInvalidValue.
func Validate(c Config) error {
	err := validation.Instance().Struct(c)
	if err == nil {
		return nil
	}
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) || len(ves) == 0 {
		return onceerrors.NewThemeError("", "", err)
	}
	fe := ves[0]
	name := validation.FieldPath(fe)
	if a, ok := lookup(name); ok {
		name = a.name
	}
	value := fmt.Sprint(fe.Value())
	return onceerrors.NewThemeError(name, value, fmt.Errorf("%w: expected one of [%s]", ErrInvalidValue, fe.Param()))
}
