package style

import "fmt"

// Diagnostic codes.
const (
	CodeConflict        = "conflicting-props"
	CodeVariantOverride = "variant-override"
)

// Diagnostic is a non-fatal finding about a prop bag. Compilation always
// completes; diagnostics tell the caller what it should fix.
type Diagnostic struct {
	Code      string   `json:"code" yaml:"code"`
	Primitive string   `json:"primitive" yaml:"primitive"`
	Props     []string `json:"props" yaml:"props"`
	Message   string   `json:"message" yaml:"message"`
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s [%s]: %s", d.Primitive, d.Code, d.Message)
}

type exclusivePair struct {
	family        Family
	first, second string
	values        func(Props) (bool, bool)
}

// exclusivePairs lists mutually exclusive prop pairs. The first member is
// the one the class compiler honours.
var exclusivePairs = []exclusivePair{
	{
		family: FamilyBackground,
		first:  "background",
		second: "solid",
		values: func(p Props) (bool, bool) { return isSet(p.Background), isSet(p.Solid) },
	},
	{
		family: FamilyFontColor,
		first:  "onBackground",
		second: "onSolid",
		values: func(p Props) (bool, bool) { return isSet(p.OnBackground), isSet(p.OnSolid) },
	},
	{
		family: FamilyThemeMode,
		first:  "dark",
		second: "light",
		values: func(p Props) (bool, bool) { return p.Dark, p.Light },
	},
}

// CheckConflicts reports mutually exclusive props set together and
// individual typography props shadowed by a variant. Only families the
// primitive supports are checked.
func CheckConflicts(prim Primitive, props Props) []Diagnostic {
	var diags []Diagnostic
	for _, pair := range exclusivePairs {
		if !prim.Supports(pair.family) {
			continue
		}
		first, second := pair.values(props)
		if !first || !second {
			continue
		}
		diags = append(diags, Diagnostic{
			Code:      CodeConflict,
			Primitive: prim.Name,
			Props:     []string{pair.first, pair.second},
			Message:   fmt.Sprintf("%s and %s cannot be combined; only %s is applied", pair.first, pair.second, pair.first),
		})
	}

	if prim.Supports(FamilyTypography) && isSet(props.Variant) {
		shadowed := make([]string, 0, 3)
		if isSet(props.Type) {
			shadowed = append(shadowed, "type")
		}
		if isSet(props.Weight) {
			shadowed = append(shadowed, "weight")
		}
		if isSet(props.Size) {
			shadowed = append(shadowed, "size")
		}
		if len(shadowed) > 0 {
			diags = append(diags, Diagnostic{
				Code:      CodeVariantOverride,
				Primitive: prim.Name,
				Props:     append([]string{"variant"}, shadowed...),
				Message:   fmt.Sprintf("variant %q is set; %v ignored", props.Variant, shadowed),
			})
		}
	}
	return diags
}
