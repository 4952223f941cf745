package tokens

import "strings"

const alphaSegment = "alpha"

// Color is a decomposed color descriptor. Either Literal is set (one of the
// reserved colors) or Scheme and Weight are.
type Color struct {
	Scheme  string
	Weight  string
	Alpha   bool
	Literal string
}

// IsLiteral reports whether the color is a reserved literal.
func (c Color) IsLiteral() bool {
	return c.Literal != ""
}

// String recomposes the descriptor into the form ClassifyColor accepts.
func (c Color) String() string {
	switch {
	case c.Literal != "":
		return c.Literal
	case c.Alpha:
		return c.Scheme + "-" + alphaSegment + "-" + c.Weight
	default:
		return c.Scheme + "-" + c.Weight
	}
}

// Class renders the class name for the color within a family such as
// "background", "border" or "solid".
func (c Color) Class(family string) string {
	switch {
	case c.Literal != "":
		return c.Literal + "-" + family
	case c.Alpha:
		return c.Scheme + "-" + family + "-" + alphaSegment + "-" + c.Weight
	default:
		return c.Scheme + "-" + family + "-" + c.Weight
	}
}

// ClassifyColor decomposes a color descriptor. Reserved literals bypass
// decomposition. A value containing the alpha segment is read as
// scheme-alpha-weight; anything else splits at the last hyphen. Scheme and
// weight must both be known tokens.
func (r *Registry) ClassifyColor(value string) (Color, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return Color{}, false
	}
	if r.Has(CategoryReservedColors, value) {
		return Color{Literal: value}, true
	}

	var c Color
	parts := strings.Split(value, "-")
	if idx := indexOf(parts, alphaSegment); idx >= 0 {
		c = Color{
			Scheme: strings.Join(parts[:idx], "-"),
			Weight: strings.Join(parts[idx+1:], "-"),
			Alpha:  true,
		}
	} else {
		cut := strings.LastIndex(value, "-")
		if cut < 0 {
			return Color{}, false
		}
		c = Color{Scheme: value[:cut], Weight: value[cut+1:]}
	}

	if !r.Has(CategoryColorSchemes, c.Scheme) || !r.Has(CategoryColorWeights, c.Weight) {
		return Color{}, false
	}
	return c, true
}

func indexOf(parts []string, target string) int {
	for i, p := range parts {
		if p == target {
			return i
		}
	}
	return -1
}
