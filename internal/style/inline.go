package style

import (
	"sort"
	"strings"

	"github.com/alexisbeaulieu97/onceui/internal/tokens"
)

// CompileInlineStyle builds the declarations that have no class form:
// dimensions, literal rem spacing, aspect ratio and text alignment, followed
// by the caller's raw style map, which always wins. An empty raw value
// removes the property.
func CompileInlineStyle(reg *tokens.Registry, prim Primitive, props Props) Declarations {
	if reg == nil {
		reg = tokens.DefaultRegistry()
	}
	decl := Declarations{}

	if prim.Supports(FamilyDimensions) {
		for _, slot := range dimensionSlots {
			if value := dimensionValue(reg, slot.value(props), slot.axis); value != "" {
				decl[slot.property] = value
			}
		}
	}

	literalSpacing(reg, decl, prim, FamilyPadding, paddingSlots, props)
	literalSpacing(reg, decl, prim, FamilyMargin, marginSlots, props)
	literalSpacing(reg, decl, prim, FamilyGap, gapSlots, props)
	literalSpacing(reg, decl, prim, FamilyOffsets, offsetSlots, props)

	if prim.Supports(FamilyAspectRatio) && isSet(props.AspectRatio) {
		decl["aspect-ratio"] = strings.TrimSpace(props.AspectRatio)
	}
	if prim.Supports(FamilyTextAlign) && isSet(props.Align) {
		decl["text-align"] = strings.TrimSpace(props.Align)
	}

	keys := make([]string, 0, len(props.Style))
	for key := range props.Style {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		value := props.Style[key]
		name := propertyName(key)
		if name == "" {
			continue
		}
		if strings.TrimSpace(value) == "" {
			delete(decl, name)
			continue
		}
		decl[name] = value
	}

	return decl
}

func literalSpacing(reg *tokens.Registry, decl Declarations, prim Primitive, family Family, slots []spacingSlot, props Props) {
	if !prim.Supports(family) {
		return
	}
	for _, slot := range slots {
		s := reg.ClassifySpacing(slot.value(props))
		if s.Kind != tokens.SpacingLiteral {
			continue
		}
		for _, property := range slot.properties {
			decl[property] = s.Literal()
		}
	}
}
