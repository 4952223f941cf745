package style

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckConflicts(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		prim      Primitive
		props     Props
		codes     []string
		wantProps []string
	}{
		{
			name:      "background and solid",
			prim:      Flex,
			props:     Props{Background: "neutral-weak", Solid: "brand-strong"},
			codes:     []string{CodeConflict},
			wantProps: []string{"background", "solid"},
		},
		{
			name:      "onBackground and onSolid",
			prim:      Text,
			props:     Props{OnBackground: "brand-strong", OnSolid: "danger-weak"},
			codes:     []string{CodeConflict},
			wantProps: []string{"onBackground", "onSolid"},
		},
		{
			name:      "dark and light",
			prim:      Grid,
			props:     Props{Dark: true, Light: true},
			codes:     []string{CodeConflict},
			wantProps: []string{"dark", "light"},
		},
		{
			name:      "variant shadows size",
			prim:      Text,
			props:     Props{Variant: "heading-strong-l", Size: "s"},
			codes:     []string{CodeVariantOverride},
			wantProps: []string{"variant", "size"},
		},
		{
			name:      "variant shadows everything",
			prim:      Heading,
			props:     Props{Variant: "body-default-m", Type: "code", Weight: "strong", Size: "s"},
			codes:     []string{CodeVariantOverride},
			wantProps: []string{"variant", "type", "weight", "size"},
		},
		{
			name:  "theme mode outside primitive families",
			prim:  Text,
			props: Props{Dark: true, Light: true},
		},
		{
			name:  "single member is fine",
			prim:  Flex,
			props: Props{Solid: "brand-strong", OnSolid: "brand-strong"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			diags := CheckConflicts(tc.prim, tc.props)
			require.Len(t, diags, len(tc.codes))
			for i, code := range tc.codes {
				require.Equal(t, code, diags[i].Code)
				require.Equal(t, tc.prim.Name, diags[i].Primitive)
			}
			if len(diags) > 0 {
				require.Equal(t, tc.wantProps, diags[0].Props)
			}
		})
	}
}

func TestConflictMessageNamesWinner(t *testing.T) {
	t.Parallel()

	diags := CheckConflicts(Flex, Props{Background: "a", Solid: "b"})
	require.Len(t, diags, 1)
	require.Equal(t, "background and solid cannot be combined; only background is applied", diags[0].Message)
	require.Equal(t, "flex [conflicting-props]: background and solid cannot be combined; only background is applied", diags[0].String())
}
