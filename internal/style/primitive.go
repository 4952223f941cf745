package style

import "strings"

// Family is one rule family of the class and inline-style compilers.
type Family int

const (
	FamilyDisplay Family = iota
	FamilyPosition
	FamilyPadding
	FamilyMargin
	FamilyGap
	FamilyOffsets
	FamilyBackground
	FamilySolid
	FamilyBorder
	FamilyRadius
	FamilyDirection
	FamilyColumns
	FamilyAlignment
	FamilySizing
	FamilyVisibility
	FamilyOpacity
	FamilyOverflow
	FamilyTypography
	FamilyFlex
	FamilyShadow
	FamilyZIndex
	FamilyCursor
	FamilyPointerEvents
	FamilyFontColor
	FamilyThemeMode
	FamilyDimensions
	FamilyAspectRatio
	FamilyTextAlign

	familyCount
)

var familyNames = [familyCount]string{
	FamilyDisplay:       "display",
	FamilyPosition:      "position",
	FamilyPadding:       "padding",
	FamilyMargin:        "margin",
	FamilyGap:           "gap",
	FamilyOffsets:       "offsets",
	FamilyBackground:    "background",
	FamilySolid:         "solid",
	FamilyBorder:        "border",
	FamilyRadius:        "radius",
	FamilyDirection:     "direction",
	FamilyColumns:       "columns",
	FamilyAlignment:     "alignment",
	FamilySizing:        "sizing",
	FamilyVisibility:    "visibility",
	FamilyOpacity:       "opacity",
	FamilyOverflow:      "overflow",
	FamilyTypography:    "typography",
	FamilyFlex:          "flex",
	FamilyShadow:        "shadow",
	FamilyZIndex:        "z-index",
	FamilyCursor:        "cursor",
	FamilyPointerEvents: "pointer-events",
	FamilyFontColor:     "font-color",
	FamilyThemeMode:     "theme-mode",
	FamilyDimensions:    "dimensions",
	FamilyAspectRatio:   "aspect-ratio",
	FamilyTextAlign:     "text-align",
}

func (f Family) String() string {
	if f < 0 || f >= familyCount {
		return "unknown"
	}
	return familyNames[f]
}

// FamilySet is the capability subset a primitive supports.
type FamilySet uint64

// NewFamilySet builds a set from the given families.
func NewFamilySet(families ...Family) FamilySet {
	var s FamilySet
	for _, f := range families {
		s |= 1 << uint(f)
	}
	return s
}

// Has reports whether f is in the set.
func (s FamilySet) Has(f Family) bool {
	return s&(1<<uint(f)) != 0
}

// Without returns the set minus the given families.
func (s FamilySet) Without(families ...Family) FamilySet {
	return s &^ NewFamilySet(families...)
}

// Families lists the members in compile order.
func (s FamilySet) Families() []Family {
	out := make([]Family, 0, familyCount)
	for f := Family(0); f < familyCount; f++ {
		if s.Has(f) {
			out = append(out, f)
		}
	}
	return out
}

func allFamilies() FamilySet {
	return FamilySet(1<<uint(familyCount)) - 1
}

// Primitive describes one base layout or text primitive: its display name,
// the class scope used for scoped classes such as "flex-hide", and the rule
// families it supports.
type Primitive struct {
	Name           string
	Display        string
	Scope          string
	DefaultVariant string
	Families       FamilySet
}

// Supports reports whether the primitive compiles the family.
func (p Primitive) Supports(f Family) bool {
	return p.Families.Has(f)
}

var textFamilies = NewFamilySet(
	FamilyPadding,
	FamilyMargin,
	FamilyBackground,
	FamilySolid,
	FamilyTypography,
	FamilyFontColor,
	FamilyTextAlign,
)

var (
	// Flex is the flexible container.
	Flex = Primitive{
		Name:     "flex",
		Display:  "flex",
		Scope:    "flex",
		Families: allFamilies().Without(FamilyColumns),
	}

	// Grid is the grid container. It has no flex axis, so direction,
	// axis alignment and flex-grow do not apply.
	Grid = Primitive{
		Name:     "grid",
		Display:  "grid",
		Scope:    "grid",
		Families: allFamilies().Without(FamilyDirection, FamilyAlignment, FamilyFlex),
	}

	// Text is the inline text primitive.
	Text = Primitive{
		Name:     "text",
		Scope:    "text",
		Families: textFamilies,
	}

	// Heading is the heading text primitive.
	Heading = Primitive{
		Name:           "heading",
		Scope:          "heading",
		DefaultVariant: "heading-strong-m",
		Families:       textFamilies,
	}
)

// Primitives lists the built-in primitives.
func Primitives() []Primitive {
	return []Primitive{Flex, Grid, Text, Heading}
}

// LookupPrimitive finds a built-in primitive by name.
func LookupPrimitive(name string) (Primitive, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, p := range Primitives() {
		if p.Name == name {
			return p, true
		}
	}
	return Primitive{}, false
}
