package style

import (
	"strings"

	"github.com/alexisbeaulieu97/onceui/internal/tokens"
)

const (
	defaultBorderStyle = "solid"
	defaultBorderWidth = "1"
	negativeGap        = "-1"
)

type classRule struct {
	family Family
	apply  func(*classCompiler)
}

// classRules is the fixed family order of the class compiler. Emission order
// is load-bearing: stylesheet ties between same-specificity classes resolve
// to the later class, so e.g. per-edge border widths must follow the generic
// border width.
var classRules = []classRule{
	{FamilyDisplay, (*classCompiler).display},
	{FamilyPosition, (*classCompiler).position},
	{FamilyPadding, (*classCompiler).padding},
	{FamilyMargin, (*classCompiler).margin},
	{FamilyGap, (*classCompiler).gap},
	{FamilyOffsets, (*classCompiler).offsets},
	{FamilyBackground, (*classCompiler).background},
	{FamilySolid, (*classCompiler).solid},
	{FamilyBorder, (*classCompiler).border},
	{FamilyRadius, (*classCompiler).radius},
	{FamilyDirection, (*classCompiler).direction},
	{FamilyColumns, (*classCompiler).columns},
	{FamilyAlignment, (*classCompiler).alignment},
	{FamilySizing, (*classCompiler).sizing},
	{FamilyVisibility, (*classCompiler).visibility},
	{FamilyOpacity, (*classCompiler).opacity},
	{FamilyOverflow, (*classCompiler).overflow},
	{FamilyTypography, (*classCompiler).typography},
	{FamilyFlex, (*classCompiler).flex},
	{FamilyShadow, (*classCompiler).shadow},
	{FamilyZIndex, (*classCompiler).zIndex},
	{FamilyCursor, (*classCompiler).cursor},
	{FamilyPointerEvents, (*classCompiler).pointerEvents},
	{FamilyFontColor, (*classCompiler).fontColor},
	{FamilyThemeMode, (*classCompiler).themeMode},
}

type classCompiler struct {
	reg     *tokens.Registry
	prim    Primitive
	props   Props
	classes *ClassSet
}

// CompileClasses runs the class rule families the primitive supports, in
// family order, and returns the base-scope class set. Unknown tokens are
// dropped.
func CompileClasses(reg *tokens.Registry, prim Primitive, props Props) *ClassSet {
	if reg == nil {
		reg = tokens.DefaultRegistry()
	}
	c := &classCompiler{reg: reg, prim: prim, props: props, classes: NewClassSet()}
	for _, rule := range classRules {
		if prim.Supports(rule.family) {
			rule.apply(c)
		}
	}
	return c.classes
}

func (c *classCompiler) add(names ...string) {
	c.classes.Add(names...)
}

// token emits prefix-value when value belongs to the category.
func (c *classCompiler) token(category tokens.Category, prefix, value string) {
	value = strings.TrimSpace(value)
	if c.reg.Has(category, value) {
		c.add(prefix + "-" + value)
	}
}

// space emits prefix-token for static and responsive spacing tokens. Literal
// numbers have no class; the inline compiler picks them up.
func (c *classCompiler) space(prefix string, v tokens.Space) {
	s := c.reg.ClassifySpacing(v)
	switch s.Kind {
	case tokens.SpacingStatic, tokens.SpacingResponsive:
		c.add(prefix + "-" + s.Token)
	}
}

func (c *classCompiler) display() {
	if c.prim.Display == "" {
		return
	}
	if c.props.Inline {
		c.add("display-inline-" + c.prim.Display)
		return
	}
	c.add("display-" + c.prim.Display)
}

func (c *classCompiler) position() {
	c.token(tokens.CategoryPositions, "position", c.props.Position)
}

func (c *classCompiler) padding() {
	for _, slot := range paddingSlots {
		c.space(slot.prefix, slot.value(c.props))
	}
}

func (c *classCompiler) margin() {
	for _, slot := range marginSlots {
		c.space(slot.prefix, slot.value(c.props))
	}
}

func (c *classCompiler) gap() {
	if strings.TrimSpace(c.props.Gap.TokenName()) == negativeGap && !c.props.Gap.IsNumber() {
		if c.isColumn() {
			c.add("g-vertical--1")
		} else {
			c.add("g-horizontal--1")
		}
		return
	}
	c.space("g", c.props.Gap)
}

func (c *classCompiler) offsets() {
	for _, slot := range offsetSlots {
		c.space(slot.prefix, slot.value(c.props))
	}
}

func (c *classCompiler) background() {
	if color, ok := c.reg.ClassifyColor(c.props.Background); ok {
		c.add(color.Class("background"))
	}
}

// solid yields to background whenever background is set, valid or not.
func (c *classCompiler) solid() {
	if isSet(c.props.Background) {
		return
	}
	if color, ok := c.reg.ClassifyColor(c.props.Solid); ok {
		c.add(color.Class("solid"))
	}
}

type borderEdge struct {
	side  string
	color tokens.Color
}

// border emits color classes (generic, then edges), one style class, the
// generic width class, then the edge reset followed by per-edge widths.
func (c *classCompiler) border() {
	p := c.props
	generic, hasGeneric := c.reg.ClassifyColor(p.Border)

	var edges []borderEdge
	for _, e := range []struct{ side, value string }{
		{"top", p.BorderTop},
		{"right", p.BorderRight},
		{"bottom", p.BorderBottom},
		{"left", p.BorderLeft},
	} {
		if color, ok := c.reg.ClassifyColor(e.value); ok {
			edges = append(edges, borderEdge{side: e.side, color: color})
		}
	}
	if !hasGeneric && len(edges) == 0 {
		return
	}

	if hasGeneric {
		c.add(generic.Class("border"))
	}
	for _, e := range edges {
		c.add(e.color.Class("border"))
	}

	borderStyle := defaultBorderStyle
	if c.reg.Has(tokens.CategoryBorderStyles, p.BorderStyle) {
		borderStyle = p.BorderStyle
	}
	c.add("border-" + borderStyle)

	width := defaultBorderWidth
	if c.reg.Has(tokens.CategoryBorderWidths, p.BorderWidth) {
		width = p.BorderWidth
	}
	if hasGeneric {
		c.add("border-" + width)
	}
	if len(edges) > 0 {
		c.add("border-reset")
		for _, e := range edges {
			c.add("border-" + e.side + "-" + width)
		}
	}
}

func (c *classCompiler) radius() {
	p := c.props
	c.token(tokens.CategoryRadius, "radius", p.Radius)
	for _, r := range []struct{ suffix, value string }{
		{"top", p.TopRadius},
		{"right", p.RightRadius},
		{"bottom", p.BottomRadius},
		{"left", p.LeftRadius},
		{"top-left", p.TopLeftRadius},
		{"top-right", p.TopRightRadius},
		{"bottom-right", p.BottomRightRadius},
		{"bottom-left", p.BottomLeftRadius},
	} {
		value := strings.TrimSpace(r.value)
		if c.reg.Has(tokens.CategoryRadius, value) {
			c.add("radius-" + value + "-" + r.suffix)
		}
	}
}

func (c *classCompiler) direction() {
	if dir := c.validDirection(); dir != "" {
		c.add("flex-" + dir)
	}
	if c.props.Wrap {
		c.add("flex-wrap")
	}
}

func (c *classCompiler) columns() {
	c.token(tokens.CategoryColumns, "columns", c.props.Columns)
}

// alignment maps horizontal/vertical onto the flex axes. In a row (the
// default) horizontal is the main axis and maps to justify; in a column the
// axes swap.
func (c *classCompiler) alignment() {
	horizontal, vertical := "justify", "align"
	if c.isColumn() {
		horizontal, vertical = "align", "justify"
	}
	c.token(tokens.CategoryAlignments, horizontal, c.props.Horizontal)
	c.token(tokens.CategoryAlignments, vertical, c.props.Vertical)
	if c.props.Center {
		c.add("center")
	}
}

// sizing keeps fill and the min-size guards together so flex and grid
// children can actually shrink to the container.
func (c *classCompiler) sizing() {
	p := c.props
	if p.Fill {
		c.add("fill")
	}
	if p.FillWidth {
		c.add("fill-width")
	}
	if p.FitWidth {
		c.add("fit-width")
	}
	if p.FillHeight {
		c.add("fill-height")
	}
	if p.FitHeight {
		c.add("fit-height")
	}

	maxWidth, maxHeight := false, false
	if c.prim.Supports(FamilyDimensions) {
		maxWidth = c.reg.ClassifySpacing(p.MaxWidth).Valid()
		maxHeight = c.reg.ClassifySpacing(p.MaxHeight).Valid()
	}
	if p.Fill || p.FillWidth || maxWidth {
		c.add("min-width-0")
	}
	if p.Fill || p.FillHeight || maxHeight {
		c.add("min-height-0")
	}
}

func (c *classCompiler) visibility() {
	if c.props.Hide {
		c.add(c.prim.Scope + "-hide")
	}
}

func (c *classCompiler) opacity() {
	c.token(tokens.CategoryOpacity, "opacity", c.props.Opacity)
}

func (c *classCompiler) overflow() {
	c.token(tokens.CategoryOverflows, "overflow", c.props.Overflow)
	c.token(tokens.CategoryOverflows, "overflow-x", c.props.OverflowX)
	c.token(tokens.CategoryOverflows, "overflow-y", c.props.OverflowY)
}

var typographySlots = []tokens.Category{
	tokens.CategoryFontTypes,
	tokens.CategoryFontWeights,
	tokens.CategoryFontSizes,
}

// typography treats a variant as authoritative: when one is present the
// individual type, weight and size props are not consulted. Segments that do
// not parse are skipped.
func (c *classCompiler) typography() {
	p := c.props
	variant := strings.TrimSpace(p.Variant)
	if variant == "" && !isSet(p.Type) && !isSet(p.Weight) && !isSet(p.Size) {
		variant = c.prim.DefaultVariant
	}
	if variant != "" {
		for i, segment := range strings.Split(variant, "-") {
			if i >= len(typographySlots) {
				break
			}
			c.token(typographySlots[i], "font", segment)
		}
		return
	}
	c.token(tokens.CategoryFontTypes, "font", p.Type)
	c.token(tokens.CategoryFontWeights, "font", p.Weight)
	c.token(tokens.CategoryFontSizes, "font", p.Size)
}

func (c *classCompiler) flex() {
	c.token(tokens.CategoryFlexGrow, "flex", c.props.Flex)
}

func (c *classCompiler) shadow() {
	c.token(tokens.CategoryShadows, "shadow", c.props.Shadow)
}

func (c *classCompiler) zIndex() {
	c.token(tokens.CategoryZIndex, "z-index", c.props.ZIndex)
}

func (c *classCompiler) cursor() {
	c.token(tokens.CategoryCursors, "cursor", c.props.Cursor)
}

func (c *classCompiler) pointerEvents() {
	c.token(tokens.CategoryPointerEvents, "pointer-events", c.props.PointerEvents)
}

// fontColor honours onBackground over onSolid. Reserved literals and alpha
// forms have no text color classes.
func (c *classCompiler) fontColor() {
	family, value := "on-background", c.props.OnBackground
	if !isSet(value) {
		family, value = "on-solid", c.props.OnSolid
	}
	color, ok := c.reg.ClassifyColor(value)
	if !ok || color.IsLiteral() || color.Alpha {
		return
	}
	c.add(color.Class(family))
}

func (c *classCompiler) themeMode() {
	switch {
	case c.props.Dark:
		c.add("dark-" + c.prim.Scope)
	case c.props.Light:
		c.add("light-" + c.prim.Scope)
	}
}

func (c *classCompiler) validDirection() string {
	dir := strings.TrimSpace(c.props.Direction)
	if c.prim.Supports(FamilyDirection) && c.reg.Has(tokens.CategoryDirections, dir) {
		return dir
	}
	return ""
}

func (c *classCompiler) isColumn() bool {
	return strings.HasPrefix(c.validDirection(), "column")
}
