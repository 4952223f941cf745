package tokens

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestClassifySpacing(t *testing.T) {
	t.Parallel()

	reg := DefaultRegistry()
	cases := []struct {
		name  string
		input Space
		want  Spacing
	}{
		{name: "static token", input: Token("16"), want: Spacing{Kind: SpacingStatic, Token: "16"}},
		{name: "responsive token", input: Token("m"), want: Spacing{Kind: SpacingResponsive, Token: "m"}},
		{name: "number is literal rem", input: Rem(1.5), want: Spacing{Kind: SpacingLiteral, Rem: 1.5}},
		{name: "number wins over token lookup", input: Rem(16), want: Spacing{Kind: SpacingLiteral, Rem: 16}},
		{name: "unknown token", input: Token("not-a-token"), want: Spacing{}},
		{name: "unset", input: Space{}, want: Spacing{}},
		{name: "nan is dropped", input: Rem(math.NaN()), want: Spacing{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := reg.ClassifySpacing(tc.input)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestSpacingLiteral(t *testing.T) {
	t.Parallel()

	require.Equal(t, "1.5rem", Spacing{Kind: SpacingLiteral, Rem: 1.5}.Literal())
	require.Equal(t, "10rem", Spacing{Kind: SpacingLiteral, Rem: 10}.Literal())
	require.Equal(t, "", Spacing{Kind: SpacingStatic, Token: "4"}.Literal())
	require.Equal(t, "literal", SpacingLiteral.String())
	require.Equal(t, "none", SpacingNone.String())
}

func TestSpaceUnmarshalYAML(t *testing.T) {
	t.Parallel()

	var doc struct {
		Quoted   Space `yaml:"quoted"`
		Number   Space `yaml:"number"`
		Float    Space `yaml:"float"`
		Named    Space `yaml:"named"`
		Null     Space `yaml:"null"`
		Sequence Space `yaml:"sequence"`
		Missing  Space `yaml:"missing"`
	}
	input := `
quoted: "16"
number: 16
float: 2.5
named: xl
null: ~
sequence: [1, 2]
`
	require.NoError(t, yaml.Unmarshal([]byte(input), &doc))

	require.Equal(t, Token("16"), doc.Quoted)
	require.Equal(t, Rem(16), doc.Number)
	require.True(t, doc.Number.IsNumber())
	require.Equal(t, Rem(2.5), doc.Float)
	require.Equal(t, "xl", doc.Named.TokenName())
	require.True(t, doc.Null.IsZero())
	require.True(t, doc.Sequence.IsZero())
	require.True(t, doc.Missing.IsZero())
}

func TestSpaceMarshalYAMLKeepsNumbers(t *testing.T) {
	t.Parallel()

	out, err := yaml.Marshal(map[string]Space{"a": Rem(3), "b": Token("16")})
	require.NoError(t, err)
	require.Equal(t, "a: 3\nb: \"16\"\n", string(out))
	require.Equal(t, "3rem", Rem(3).String())
}
