package tokens

import (
	"math"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Space is a spacing-shaped prop value: a token name, a bare number meaning
// rem units, or unset.
type Space struct {
	token   string
	rem     float64
	literal bool
}

// Token wraps a spacing token name.
func Token(name string) Space {
	return Space{token: name}
}

// Rem wraps an explicit rem dimension.
func Rem(n float64) Space {
	return Space{rem: n, literal: true}
}

// IsZero reports whether the value is unset.
func (s Space) IsZero() bool {
	return !s.literal && s.token == ""
}

// IsNumber reports whether the value was supplied as a bare number.
func (s Space) IsNumber() bool {
	return s.literal
}

// TokenName returns the token name, empty for numbers.
func (s Space) TokenName() string {
	return s.token
}

func (s Space) String() string {
	if s.literal {
		return formatRem(s.rem)
	}
	return s.token
}

// UnmarshalYAML decodes numeric scalars as rem values and every other scalar
// as a token name. Non-scalar nodes leave the value unset.
func (s *Space) UnmarshalYAML(node *yaml.Node) error {
	*s = Space{}
	if node == nil || node.Kind != yaml.ScalarNode {
		return nil
	}
	switch node.ShortTag() {
	case "!!null":
		return nil
	case "!!int", "!!float":
		n, err := strconv.ParseFloat(node.Value, 64)
		if err != nil {
			// hex and octal ints are still numbers
			i, ierr := strconv.ParseInt(node.Value, 0, 64)
			if ierr != nil {
				return nil
			}
			n = float64(i)
		}
		*s = Rem(n)
	default:
		*s = Token(node.Value)
	}
	return nil
}

// MarshalYAML keeps numbers numeric so documents round-trip.
func (s Space) MarshalYAML() (interface{}, error) {
	if s.literal {
		return s.rem, nil
	}
	if s.token == "" {
		return nil, nil
	}
	return s.token, nil
}

// SpacingKind is the outcome of spacing classification.
type SpacingKind int

const (
	SpacingNone SpacingKind = iota
	SpacingStatic
	SpacingResponsive
	SpacingLiteral
)

func (k SpacingKind) String() string {
	switch k {
	case SpacingStatic:
		return "static"
	case SpacingResponsive:
		return "responsive"
	case SpacingLiteral:
		return "literal"
	default:
		return "none"
	}
}

// Spacing is a classified spacing value.
type Spacing struct {
	Kind  SpacingKind
	Token string
	Rem   float64
}

// Valid reports whether the value resolved to something emit-able.
func (s Spacing) Valid() bool {
	return s.Kind != SpacingNone
}

// Literal renders a literal value as a CSS length, empty otherwise.
func (s Spacing) Literal() string {
	if s.Kind != SpacingLiteral {
		return ""
	}
	return formatRem(s.Rem)
}

// ClassifySpacing resolves v to exactly one of static token, responsive
// token, literal rem value, or none. Numbers take precedence over token
// lookup; unknown strings resolve to none.
func (r *Registry) ClassifySpacing(v Space) Spacing {
	if v.literal {
		if math.IsNaN(v.rem) || math.IsInf(v.rem, 0) {
			return Spacing{}
		}
		return Spacing{Kind: SpacingLiteral, Rem: v.rem}
	}
	switch {
	case v.token == "":
		return Spacing{}
	case r.Has(CategoryStaticSpacing, v.token):
		return Spacing{Kind: SpacingStatic, Token: v.token}
	case r.Has(CategoryResponsiveSpacing, v.token):
		return Spacing{Kind: SpacingResponsive, Token: v.token}
	default:
		return Spacing{}
	}
}

func formatRem(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64) + "rem"
}
