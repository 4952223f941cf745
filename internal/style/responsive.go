package style

import (
	"strings"

	"github.com/alexisbeaulieu97/onceui/internal/tokens"
)

// CompileResponsive emits breakpoint-prefixed classes for direction and
// column overrides, one scope at a time in registry order. The result is
// layered after the base set and never removes a base class; the stylesheet
// media queries decide which applies.
func CompileResponsive(reg *tokens.Registry, prim Primitive, props Props) *ClassSet {
	if reg == nil {
		reg = tokens.DefaultRegistry()
	}
	out := NewClassSet()
	for _, scope := range reg.Breakpoints() {
		bp := props.breakpoint(scope)
		direction := strings.TrimSpace(bp.Direction)
		if prim.Supports(FamilyDirection) && reg.Has(tokens.CategoryDirections, direction) {
			out.Add(scope + "-flex-" + direction)
		}
		columns := strings.TrimSpace(bp.Columns)
		if prim.Supports(FamilyColumns) && reg.Has(tokens.CategoryColumns, columns) {
			out.Add(scope + "-columns-" + columns)
		}
	}
	return out
}
