package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/onceui/internal/theme"
	"github.com/alexisbeaulieu97/onceui/internal/tokens"
	onceerrors "github.com/alexisbeaulieu97/onceui/pkg/errors"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	require.Equal(t, tokens.DefaultTables(), cfg.Tokens)
	require.Equal(t, theme.DefaultConfig(), cfg.Theme)
	require.Equal(t, "info", cfg.Log.Level)
	require.NoError(t, Validate(cfg))
}

func TestLoadYAML(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "onceui.yaml", `
tokens:
  radius: [s, m, round]
  breakpoints: [tablet, mobile, watch]
theme:
  theme: dark
  brand: emerald
  solid_style: plastic
  scaling: 105
log:
  level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, []string{"s", "m", "round"}, cfg.Tokens.Radius)
	require.Equal(t, []string{"tablet", "mobile", "watch"}, cfg.Tokens.Breakpoints)
	require.Equal(t, tokens.DefaultTables().Shadows, cfg.Tokens.Shadows)
	require.Equal(t, "dark", cfg.Theme.Theme)
	require.Equal(t, "emerald", cfg.Theme.Brand)
	require.Equal(t, "plastic", cfg.Theme.SolidStyle)
	require.Equal(t, "105", cfg.Theme.Scaling)
	require.Equal(t, "red", cfg.Theme.Accent)
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadTOML(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "theme.toml", `
[tokens]
color_schemes = ["neutral", "brand", "accent", "brand-dark"]
color_weights = ["weak", "strong"]

[theme]
neutral = "sand"
border = "conservative"
scaling = "95"

[log]
json = true
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, []string{"neutral", "brand", "accent", "brand-dark"}, cfg.Tokens.ColorSchemes)
	require.Equal(t, []string{"weak", "strong"}, cfg.Tokens.ColorWeights)
	require.Equal(t, "sand", cfg.Theme.Neutral)
	require.Equal(t, "conservative", cfg.Theme.Border)
	require.Equal(t, "95", cfg.Theme.Scaling)
	require.True(t, cfg.Log.JSON)
	require.Equal(t, "info", cfg.Log.Level)
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	var parseErr *onceerrors.ParseError
	require.True(t, errors.As(err, &parseErr))
	require.True(t, errors.Is(err, os.ErrNotExist))
}

func TestParseReportsYAMLLine(t *testing.T) {
	t.Parallel()

	_, err := Parse("bad.yaml", []byte("tokens:\n  radius:\n    a: b\n"))
	var parseErr *onceerrors.ParseError
	require.True(t, errors.As(err, &parseErr))
	require.Equal(t, "bad.yaml", parseErr.Path)
	require.Equal(t, 3, parseErr.Line)
}

func TestParseReportsTOMLLine(t *testing.T) {
	t.Parallel()

	_, err := Parse("bad.toml", []byte("[theme]\nbrand = \n"))
	var parseErr *onceerrors.ParseError
	require.True(t, errors.As(err, &parseErr))
	require.Positive(t, parseErr.Line)
}

func TestParseRejectsUnknownExtension(t *testing.T) {
	t.Parallel()

	_, err := Parse("config.ini", []byte(""))
	var parseErr *onceerrors.ParseError
	require.True(t, errors.As(err, &parseErr))
	require.Contains(t, err.Error(), `unsupported configuration extension ".ini"`)
}

func TestValidationErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		doc   string
		field string
	}{
		{
			name:  "theme value outside options",
			doc:   "theme:\n  brand: teal\n",
			field: "theme.brand",
		},
		{
			name:  "token name with spaces",
			doc:   "tokens:\n  radius: [s, Big One]\n",
			field: "tokens.radius[1]",
		},
		{
			name:  "duplicate tokens",
			doc:   "tokens:\n  shadows: [s, s]\n",
			field: "tokens.shadows",
		},
		{
			name:  "hyphenated weight",
			doc:   "tokens:\n  color_weights: [weak, extra-strong]\n",
			field: "tokens.color_weights[1]",
		},
		{
			name:  "spacing tables overlap",
			doc:   "tokens:\n  responsive_spacing: [s, m, \"16\"]\n",
			field: "tokens.static_spacing",
		},
		{
			name:  "alpha weight",
			doc:   "tokens:\n  color_weights: [weak, alpha]\n",
			field: "tokens.color_weights",
		},
		{
			name:  "reserved color shadows scheme",
			doc:   "tokens:\n  reserved_colors: [brand]\n",
			field: "tokens.reserved_colors",
		},
		{
			name:  "log level",
			doc:   "log:\n  level: chatty\n",
			field: "log.level",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse("onceui.yaml", []byte(tc.doc))
			require.Error(t, err)

			var valErr *onceerrors.ValidationError
			require.True(t, errors.As(err, &valErr), "got %T: %v", err, err)
			require.Equal(t, tc.field, valErr.Field)
		})
	}
}

func TestValidateNil(t *testing.T) {
	t.Parallel()

	err := Validate(nil)
	var valErr *onceerrors.ValidationError
	require.True(t, errors.As(err, &valErr))
	require.Equal(t, "config", valErr.Field)
}
