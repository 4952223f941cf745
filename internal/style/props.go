package style

import (
	"strings"

	"github.com/alexisbeaulieu97/onceui/internal/tokens"
)

// Props is the style-prop bag a primitive receives from its caller. Every
// field is optional; the zero value compiles to the primitive's bare display
// class. Keys the struct does not know land in Unknown and are ignored.
type Props struct {
	Inline   bool   `yaml:"inline,omitempty"`
	Position string `yaml:"position,omitempty"`

	Padding       tokens.Space `yaml:"padding,omitempty"`
	PaddingX      tokens.Space `yaml:"paddingX,omitempty"`
	PaddingY      tokens.Space `yaml:"paddingY,omitempty"`
	PaddingTop    tokens.Space `yaml:"paddingTop,omitempty"`
	PaddingRight  tokens.Space `yaml:"paddingRight,omitempty"`
	PaddingBottom tokens.Space `yaml:"paddingBottom,omitempty"`
	PaddingLeft   tokens.Space `yaml:"paddingLeft,omitempty"`

	Margin       tokens.Space `yaml:"margin,omitempty"`
	MarginX      tokens.Space `yaml:"marginX,omitempty"`
	MarginY      tokens.Space `yaml:"marginY,omitempty"`
	MarginTop    tokens.Space `yaml:"marginTop,omitempty"`
	MarginRight  tokens.Space `yaml:"marginRight,omitempty"`
	MarginBottom tokens.Space `yaml:"marginBottom,omitempty"`
	MarginLeft   tokens.Space `yaml:"marginLeft,omitempty"`

	Gap tokens.Space `yaml:"gap,omitempty"`

	Top    tokens.Space `yaml:"top,omitempty"`
	Right  tokens.Space `yaml:"right,omitempty"`
	Bottom tokens.Space `yaml:"bottom,omitempty"`
	Left   tokens.Space `yaml:"left,omitempty"`

	Width     tokens.Space `yaml:"width,omitempty"`
	Height    tokens.Space `yaml:"height,omitempty"`
	MinWidth  tokens.Space `yaml:"minWidth,omitempty"`
	MaxWidth  tokens.Space `yaml:"maxWidth,omitempty"`
	MinHeight tokens.Space `yaml:"minHeight,omitempty"`
	MaxHeight tokens.Space `yaml:"maxHeight,omitempty"`

	AspectRatio string `yaml:"aspectRatio,omitempty"`
	Align       string `yaml:"align,omitempty"`

	Background string `yaml:"background,omitempty"`
	Solid      string `yaml:"solid,omitempty"`

	Border       string `yaml:"border,omitempty"`
	BorderTop    string `yaml:"borderTop,omitempty"`
	BorderRight  string `yaml:"borderRight,omitempty"`
	BorderBottom string `yaml:"borderBottom,omitempty"`
	BorderLeft   string `yaml:"borderLeft,omitempty"`
	BorderStyle  string `yaml:"borderStyle,omitempty"`
	BorderWidth  string `yaml:"borderWidth,omitempty"`

	Radius            string `yaml:"radius,omitempty"`
	TopRadius         string `yaml:"topRadius,omitempty"`
	RightRadius       string `yaml:"rightRadius,omitempty"`
	BottomRadius      string `yaml:"bottomRadius,omitempty"`
	LeftRadius        string `yaml:"leftRadius,omitempty"`
	TopLeftRadius     string `yaml:"topLeftRadius,omitempty"`
	TopRightRadius    string `yaml:"topRightRadius,omitempty"`
	BottomRightRadius string `yaml:"bottomRightRadius,omitempty"`
	BottomLeftRadius  string `yaml:"bottomLeftRadius,omitempty"`

	Direction       string `yaml:"direction,omitempty"`
	TabletDirection string `yaml:"tabletDirection,omitempty"`
	MobileDirection string `yaml:"mobileDirection,omitempty"`
	Wrap            bool   `yaml:"wrap,omitempty"`

	Columns       string `yaml:"columns,omitempty"`
	TabletColumns string `yaml:"tabletColumns,omitempty"`
	MobileColumns string `yaml:"mobileColumns,omitempty"`

	// Breakpoints carries overrides for breakpoint scopes beyond the
	// tablet/mobile shorthands above.
	Breakpoints map[string]BreakpointProps `yaml:"breakpoints,omitempty"`

	Horizontal string `yaml:"horizontal,omitempty"`
	Vertical   string `yaml:"vertical,omitempty"`
	Center     bool   `yaml:"center,omitempty"`

	Fill       bool `yaml:"fill,omitempty"`
	FillWidth  bool `yaml:"fillWidth,omitempty"`
	FillHeight bool `yaml:"fillHeight,omitempty"`
	FitWidth   bool `yaml:"fitWidth,omitempty"`
	FitHeight  bool `yaml:"fitHeight,omitempty"`

	Hide      bool   `yaml:"hide,omitempty"`
	Opacity   string `yaml:"opacity,omitempty"`
	Overflow  string `yaml:"overflow,omitempty"`
	OverflowX string `yaml:"overflowX,omitempty"`
	OverflowY string `yaml:"overflowY,omitempty"`

	Variant string `yaml:"variant,omitempty"`
	Type    string `yaml:"type,omitempty"`
	Weight  string `yaml:"weight,omitempty"`
	Size    string `yaml:"size,omitempty"`

	Flex          string `yaml:"flex,omitempty"`
	Shadow        string `yaml:"shadow,omitempty"`
	ZIndex        string `yaml:"zIndex,omitempty"`
	Cursor        string `yaml:"cursor,omitempty"`
	PointerEvents string `yaml:"pointerEvents,omitempty"`

	OnBackground string `yaml:"onBackground,omitempty"`
	OnSolid      string `yaml:"onSolid,omitempty"`

	Dark  bool `yaml:"dark,omitempty"`
	Light bool `yaml:"light,omitempty"`

	ClassName string            `yaml:"className,omitempty"`
	Style     map[string]string `yaml:"style,omitempty"`

	Unknown map[string]interface{} `yaml:",inline"`
}

// BreakpointProps holds the props that may vary per breakpoint scope.
type BreakpointProps struct {
	Direction string `yaml:"direction,omitempty"`
	Columns   string `yaml:"columns,omitempty"`
}

// breakpoint returns the overrides for a scope. The tablet/mobile shorthand
// fields win over the generic map.
func (p Props) breakpoint(scope string) BreakpointProps {
	bp := p.Breakpoints[scope]
	switch scope {
	case "tablet":
		if isSet(p.TabletDirection) {
			bp.Direction = p.TabletDirection
		}
		if isSet(p.TabletColumns) {
			bp.Columns = p.TabletColumns
		}
	case "mobile":
		if isSet(p.MobileDirection) {
			bp.Direction = p.MobileDirection
		}
		if isSet(p.MobileColumns) {
			bp.Columns = p.MobileColumns
		}
	}
	return bp
}

func isSet(value string) bool {
	return strings.TrimSpace(value) != ""
}
