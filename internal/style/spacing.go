package style

import "github.com/alexisbeaulieu97/onceui/internal/tokens"

// spacingSlot ties a spacing prop to its class prefix and to the CSS
// properties a literal rem value falls through to.
type spacingSlot struct {
	prefix     string
	value      func(Props) tokens.Space
	properties []string
}

// Slots run generic, then axis, then edge so the more specific class is
// emitted later.
var paddingSlots = []spacingSlot{
	{"p", func(p Props) tokens.Space { return p.Padding }, []string{"padding"}},
	{"px", func(p Props) tokens.Space { return p.PaddingX }, []string{"padding-left", "padding-right"}},
	{"py", func(p Props) tokens.Space { return p.PaddingY }, []string{"padding-top", "padding-bottom"}},
	{"pt", func(p Props) tokens.Space { return p.PaddingTop }, []string{"padding-top"}},
	{"pr", func(p Props) tokens.Space { return p.PaddingRight }, []string{"padding-right"}},
	{"pb", func(p Props) tokens.Space { return p.PaddingBottom }, []string{"padding-bottom"}},
	{"pl", func(p Props) tokens.Space { return p.PaddingLeft }, []string{"padding-left"}},
}

var marginSlots = []spacingSlot{
	{"m", func(p Props) tokens.Space { return p.Margin }, []string{"margin"}},
	{"mx", func(p Props) tokens.Space { return p.MarginX }, []string{"margin-left", "margin-right"}},
	{"my", func(p Props) tokens.Space { return p.MarginY }, []string{"margin-top", "margin-bottom"}},
	{"mt", func(p Props) tokens.Space { return p.MarginTop }, []string{"margin-top"}},
	{"mr", func(p Props) tokens.Space { return p.MarginRight }, []string{"margin-right"}},
	{"mb", func(p Props) tokens.Space { return p.MarginBottom }, []string{"margin-bottom"}},
	{"ml", func(p Props) tokens.Space { return p.MarginLeft }, []string{"margin-left"}},
}

var gapSlots = []spacingSlot{
	{"g", func(p Props) tokens.Space { return p.Gap }, []string{"gap"}},
}

var offsetSlots = []spacingSlot{
	{"top", func(p Props) tokens.Space { return p.Top }, []string{"top"}},
	{"right", func(p Props) tokens.Space { return p.Right }, []string{"right"}},
	{"bottom", func(p Props) tokens.Space { return p.Bottom }, []string{"bottom"}},
	{"left", func(p Props) tokens.Space { return p.Left }, []string{"left"}},
}

// dimensionSlot is a width/height prop emitted inline only.
type dimensionSlot struct {
	property string
	axis     string
	value    func(Props) tokens.Space
}

var dimensionSlots = []dimensionSlot{
	{"width", "width", func(p Props) tokens.Space { return p.Width }},
	{"height", "height", func(p Props) tokens.Space { return p.Height }},
	{"min-width", "width", func(p Props) tokens.Space { return p.MinWidth }},
	{"max-width", "width", func(p Props) tokens.Space { return p.MaxWidth }},
	{"min-height", "height", func(p Props) tokens.Space { return p.MinHeight }},
	{"max-height", "height", func(p Props) tokens.Space { return p.MaxHeight }},
}

// dimensionValue renders a spacing value as a CSS length: static tokens via
// the static space variable, responsive tokens via the per-axis responsive
// variable, numbers as rem.
func dimensionValue(reg *tokens.Registry, v tokens.Space, axis string) string {
	s := reg.ClassifySpacing(v)
	switch s.Kind {
	case tokens.SpacingStatic:
		return "var(--static-space-" + s.Token + ")"
	case tokens.SpacingResponsive:
		return "var(--responsive-" + axis + "-" + s.Token + ")"
	case tokens.SpacingLiteral:
		return s.Literal()
	default:
		return ""
	}
}
