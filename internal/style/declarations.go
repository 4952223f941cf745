package style

import (
	"sort"
	"strings"
	"unicode"
)

// Declarations is an inline style: CSS property name to value.
type Declarations map[string]string

// Keys returns the property names sorted. Shorthands sort before their
// longhands ("padding" < "padding-left"), which keeps String well-formed.
func (d Declarations) Keys() []string {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// String renders a style attribute value.
func (d Declarations) String() string {
	keys := d.Keys()
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+d[k])
	}
	return strings.Join(parts, "; ")
}

// propertyName converts camelCase keys to CSS property names. Custom
// properties and names that are already kebab-case are kept. Vendor
// prefixes follow the React convention: a leading capital (WebkitLineClamp,
// MozAppearance, OTransition) and a leading "ms" both gain a dash.
func propertyName(key string) string {
	key = strings.TrimSpace(key)
	if strings.HasPrefix(key, "--") {
		return key
	}
	var b strings.Builder
	for _, r := range key {
		if unicode.IsUpper(r) {
			b.WriteByte('-')
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	name := b.String()
	if strings.HasPrefix(name, "ms-") {
		return "-" + name
	}
	return name
}
