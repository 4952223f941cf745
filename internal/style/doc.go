// Package style compiles style-prop bags into class names and inline
// declarations against a fixed design-token vocabulary.
//
// # Pipeline
//
// A call to Resolver.Resolve runs four pure passes:
//
//  1. CheckConflicts reports mutually exclusive props (background/solid,
//     onBackground/onSolid, dark/light) and typography props shadowed by a
//     variant.
//  2. CompileClasses walks the rule families in a fixed order and emits
//     class names for every prop whose value is a known token.
//  3. CompileResponsive layers breakpoint-prefixed classes (tablet, mobile)
//     after the base set.
//  4. CompileInlineStyle emits declarations for values with no class form
//     and merges the caller's raw style map last.
//
// Class order is insertion order and is part of the contract: the
// stylesheet relies on later classes overriding earlier ones of equal
// specificity.
//
// # Primitives
//
// Flex, Grid, Text and Heading share one compiler. Each declares the
// families it supports as a FamilySet:
//
//	out := style.NewResolver(nil).Resolve(style.Flex, style.Props{
//		Direction:  "column",
//		Horizontal: "center",
//		Padding:    tokens.Token("16"),
//	})
//	out.ClassName() // "display-flex p-16 flex-column align-center"
//
// Invalid input never fails a call. Unknown tokens are omitted, malformed
// composites are parsed as far as they go, and conflicts resolve to the
// first member of the pair.
package style
