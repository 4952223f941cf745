// Package tokens holds the design-token vocabulary the style engine compiles
// against and the validators that classify raw prop values into tokens.
//
// Tables is plain configuration data. It can be swapped for another design
// system without touching the compiler; Registry is the read-only lookup form
// built from it once at process start.
package tokens

import (
	"fmt"
	"slices"
	"strings"

	onceerrors "github.com/alexisbeaulieu97/onceui/pkg/errors"
)

// Category names one closed token set.
type Category string

const (
	CategoryStaticSpacing     Category = "static_spacing"
	CategoryResponsiveSpacing Category = "responsive_spacing"
	CategoryColorSchemes      Category = "color_schemes"
	CategoryColorWeights      Category = "color_weights"
	CategoryReservedColors    Category = "reserved_colors"
	CategoryRadius            Category = "radius"
	CategoryShadows           Category = "shadows"
	CategoryBorderStyles      Category = "border_styles"
	CategoryBorderWidths      Category = "border_widths"
	CategoryOpacity           Category = "opacity"
	CategoryZIndex            Category = "z_index"
	CategoryFlexGrow          Category = "flex_grow"
	CategoryColumns           Category = "columns"
	CategoryFontTypes         Category = "font_types"
	CategoryFontWeights       Category = "font_weights"
	CategoryFontSizes         Category = "font_sizes"
	CategoryDirections        Category = "directions"
	CategoryAlignments        Category = "alignments"
	CategoryOverflows         Category = "overflows"
	CategoryPositions         Category = "positions"
	CategoryCursors           Category = "cursors"
	CategoryPointerEvents     Category = "pointer_events"
	CategoryBreakpoints       Category = "breakpoints"
)

// Categories lists every category in display order.
func Categories() []Category {
	return []Category{
		CategoryStaticSpacing,
		CategoryResponsiveSpacing,
		CategoryColorSchemes,
		CategoryColorWeights,
		CategoryReservedColors,
		CategoryRadius,
		CategoryShadows,
		CategoryBorderStyles,
		CategoryBorderWidths,
		CategoryOpacity,
		CategoryZIndex,
		CategoryFlexGrow,
		CategoryColumns,
		CategoryFontTypes,
		CategoryFontWeights,
		CategoryFontSizes,
		CategoryDirections,
		CategoryAlignments,
		CategoryOverflows,
		CategoryPositions,
		CategoryCursors,
		CategoryPointerEvents,
		CategoryBreakpoints,
	}
}

// ParseCategory resolves a category name as written in configuration files.
func ParseCategory(name string) (Category, bool) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	for _, c := range Categories() {
		if string(c) == normalized {
			return c, true
		}
	}
	return "", false
}

// Tables is the static token configuration.
type Tables struct {
	StaticSpacing     []string `yaml:"static_spacing,omitempty" toml:"static_spacing,omitempty" validate:"required,unique,dive,required,token"`
	ResponsiveSpacing []string `yaml:"responsive_spacing,omitempty" toml:"responsive_spacing,omitempty" validate:"required,unique,dive,required,token"`
	ColorSchemes      []string `yaml:"color_schemes,omitempty" toml:"color_schemes,omitempty" validate:"required,unique,dive,required,token"`
	ColorWeights      []string `yaml:"color_weights,omitempty" toml:"color_weights,omitempty" validate:"required,unique,dive,required,token,excludes=-"`
	ReservedColors    []string `yaml:"reserved_colors,omitempty" toml:"reserved_colors,omitempty" validate:"unique,dive,required,token"`
	Radius            []string `yaml:"radius,omitempty" toml:"radius,omitempty" validate:"required,unique,dive,required,token"`
	Shadows           []string `yaml:"shadows,omitempty" toml:"shadows,omitempty" validate:"required,unique,dive,required,token"`
	BorderStyles      []string `yaml:"border_styles,omitempty" toml:"border_styles,omitempty" validate:"required,unique,dive,required,token"`
	BorderWidths      []string `yaml:"border_widths,omitempty" toml:"border_widths,omitempty" validate:"required,unique,dive,required,token"`
	Opacity           []string `yaml:"opacity,omitempty" toml:"opacity,omitempty" validate:"required,unique,dive,required,token"`
	ZIndex            []string `yaml:"z_index,omitempty" toml:"z_index,omitempty" validate:"required,unique,dive,required,token"`
	FlexGrow          []string `yaml:"flex_grow,omitempty" toml:"flex_grow,omitempty" validate:"required,unique,dive,required,token"`
	Columns           []string `yaml:"columns,omitempty" toml:"columns,omitempty" validate:"required,unique,dive,required,token"`
	FontTypes         []string `yaml:"font_types,omitempty" toml:"font_types,omitempty" validate:"required,unique,dive,required,token,excludes=-"`
	FontWeights       []string `yaml:"font_weights,omitempty" toml:"font_weights,omitempty" validate:"required,unique,dive,required,token,excludes=-"`
	FontSizes         []string `yaml:"font_sizes,omitempty" toml:"font_sizes,omitempty" validate:"required,unique,dive,required,token,excludes=-"`
	Directions        []string `yaml:"directions,omitempty" toml:"directions,omitempty" validate:"required,unique,dive,required,token"`
	Alignments        []string `yaml:"alignments,omitempty" toml:"alignments,omitempty" validate:"required,unique,dive,required,token"`
	Overflows         []string `yaml:"overflows,omitempty" toml:"overflows,omitempty" validate:"required,unique,dive,required,token"`
	Positions         []string `yaml:"positions,omitempty" toml:"positions,omitempty" validate:"required,unique,dive,required,token"`
	Cursors           []string `yaml:"cursors,omitempty" toml:"cursors,omitempty" validate:"required,unique,dive,required,token"`
	PointerEvents     []string `yaml:"pointer_events,omitempty" toml:"pointer_events,omitempty" validate:"required,unique,dive,required,token"`
	Breakpoints       []string `yaml:"breakpoints,omitempty" toml:"breakpoints,omitempty" validate:"required,unique,dive,required,token"`
}

// DefaultTables returns the once-ui token vocabulary.
func DefaultTables() Tables {
	return Tables{
		StaticSpacing: []string{
			"0", "1", "2", "4", "8", "12", "16", "20", "24",
			"32", "40", "48", "56", "64", "80", "104", "128", "160",
		},
		ResponsiveSpacing: []string{"xs", "s", "m", "l", "xl"},
		ColorSchemes:      []string{"neutral", "brand", "accent", "info", "danger", "warning", "success"},
		ColorWeights:      []string{"weak", "medium", "strong"},
		ReservedColors:    []string{"surface", "page", "transparent"},
		Radius:            []string{"xs", "s", "m", "l", "xl", "full"},
		Shadows:           []string{"xs", "s", "m", "l", "xl"},
		BorderStyles:      []string{"solid", "dashed"},
		BorderWidths:      []string{"1", "2"},
		Opacity:           []string{"0", "10", "20", "30", "40", "50", "60", "70", "80", "90", "100"},
		ZIndex:            []string{"-1", "0", "1", "2", "3", "4", "5", "6", "7", "8", "9", "10"},
		FlexGrow:          []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12"},
		Columns:           []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12"},
		FontTypes:         []string{"display", "heading", "body", "label", "code"},
		FontWeights:       []string{"default", "strong"},
		FontSizes:         []string{"xs", "s", "m", "l", "xl"},
		Directions:        []string{"row", "column", "row-reverse", "column-reverse"},
		Alignments:        []string{"start", "center", "end", "space-between", "space-around", "space-evenly", "stretch"},
		Overflows:         []string{"visible", "hidden", "scroll", "auto", "clip"},
		Positions:         []string{"static", "relative", "absolute", "fixed", "sticky"},
		Cursors:           []string{"pointer", "interactive", "default", "text", "grab", "grabbing", "move", "not-allowed", "help", "crosshair"},
		PointerEvents:     []string{"none", "all", "auto"},
		Breakpoints:       []string{"tablet", "mobile"},
	}
}

// List returns a copy of the values for the category.
func (t Tables) List(c Category) []string {
	field := t.field(c)
	if field == nil {
		return nil
	}
	return slices.Clone(*field)
}

// Normalize returns tables where every empty category is filled from the
// defaults. Reserved colors may legitimately be empty, so an explicit empty
// list is only replaced when the whole table set is zero.
func (t Tables) Normalize() Tables {
	defaults := DefaultTables()
	zero := t.isZero()
	for _, c := range Categories() {
		if c == CategoryReservedColors && !zero {
			continue
		}
		field := t.field(c)
		if len(*field) == 0 {
			*field = slices.Clone(*defaults.field(c))
		}
	}
	if zero {
		t.ReservedColors = slices.Clone(defaults.ReservedColors)
	}
	return t
}

// Check runs the cross-table rules struct tags cannot express.
func (t Tables) Check() error {
	for _, token := range t.StaticSpacing {
		if slices.Contains(t.ResponsiveSpacing, token) {
			return onceerrors.NewValidationError("tokens.static_spacing", fmt.Sprintf("token %q is also a responsive spacing token", token), nil)
		}
	}
	for _, weight := range t.ColorWeights {
		if weight == alphaSegment {
			return onceerrors.NewValidationError("tokens.color_weights", fmt.Sprintf("%q is reserved for alpha colors", alphaSegment), nil)
		}
	}
	if slices.Contains(t.ColorSchemes, alphaSegment) {
		return onceerrors.NewValidationError("tokens.color_schemes", fmt.Sprintf("%q is reserved for alpha colors", alphaSegment), nil)
	}
	for _, literal := range t.ReservedColors {
		if slices.Contains(t.ColorSchemes, literal) {
			return onceerrors.NewValidationError("tokens.reserved_colors", fmt.Sprintf("%q collides with a color scheme", literal), nil)
		}
	}
	return nil
}

func (t Tables) isZero() bool {
	for _, c := range Categories() {
		if len(*t.field(c)) > 0 {
			return false
		}
	}
	return true
}

func (t *Tables) field(c Category) *[]string {
	switch c {
	case CategoryStaticSpacing:
		return &t.StaticSpacing
	case CategoryResponsiveSpacing:
		return &t.ResponsiveSpacing
	case CategoryColorSchemes:
		return &t.ColorSchemes
	case CategoryColorWeights:
		return &t.ColorWeights
	case CategoryReservedColors:
		return &t.ReservedColors
	case CategoryRadius:
		return &t.Radius
	case CategoryShadows:
		return &t.Shadows
	case CategoryBorderStyles:
		return &t.BorderStyles
	case CategoryBorderWidths:
		return &t.BorderWidths
	case CategoryOpacity:
		return &t.Opacity
	case CategoryZIndex:
		return &t.ZIndex
	case CategoryFlexGrow:
		return &t.FlexGrow
	case CategoryColumns:
		return &t.Columns
	case CategoryFontTypes:
		return &t.FontTypes
	case CategoryFontWeights:
		return &t.FontWeights
	case CategoryFontSizes:
		return &t.FontSizes
	case CategoryDirections:
		return &t.Directions
	case CategoryAlignments:
		return &t.Alignments
	case CategoryOverflows:
		return &t.Overflows
	case CategoryPositions:
		return &t.Positions
	case CategoryCursors:
		return &t.Cursors
	case CategoryPointerEvents:
		return &t.PointerEvents
	case CategoryBreakpoints:
		return &t.Breakpoints
	default:
		return nil
	}
}
