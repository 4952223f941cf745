package main

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/onceui/internal/theme"
)

func TestThemeShow(t *testing.T) {
	t.Parallel()

	res := executeCommand(t, nil, "theme", "show")
	require.NoError(t, res.err)
	require.Contains(t, res.stdout, "data-accent=\"red\"\n")
	require.Contains(t, res.stdout, "data-brand=\"cyan\"\n")
	require.Contains(t, res.stdout, "data-theme=\"system\"\n")
}

func TestThemeShowUsesConfig(t *testing.T) {
	t.Parallel()

	cfg := writeFile(t, "onceui.yml", "theme:\n  theme: dark\n  surface: filled\n")
	res := executeCommand(t, nil, "--config", cfg, "theme", "show", "--json")
	require.NoError(t, res.err)

	var attrs map[string]string
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &attrs))
	require.Equal(t, "dark", attrs["data-theme"])
	require.Equal(t, "filled", attrs["data-surface"])
	require.Equal(t, "cyan", attrs["data-brand"])
}

func TestThemeSetAppliesAssignments(t *testing.T) {
	t.Parallel()

	res := executeCommand(t, nil, "theme", "set", "brand=violet", "scaling=110")
	require.NoError(t, res.err)
	require.Contains(t, res.stdout, "brand: cyan → violet\n")
	require.Contains(t, res.stdout, "scaling: 100 → 110\n")
	require.Contains(t, res.stdout, "data-brand=\"violet\"\n")
	require.Contains(t, res.stdout, "data-scaling=\"110\"\n")
	require.Contains(t, res.stderr, "theme attribute changed")
}

func TestThemeSetUnchanged(t *testing.T) {
	t.Parallel()

	res := executeCommand(t, nil, "theme", "set", "theme=system")
	require.NoError(t, res.err)
	require.Contains(t, res.stdout, "theme unchanged\n")
}

func TestThemeSetRejectsInvalidValue(t *testing.T) {
	t.Parallel()

	res := executeCommand(t, nil, "theme", "set", "brand=violet", "solid-style=glossy")
	require.Error(t, res.err)
	require.True(t, errors.Is(res.err, theme.ErrInvalidValue))

	themeErr, ok := asThemeError(res.err)
	require.True(t, ok)
	require.Equal(t, "solid-style", themeErr.Attribute)
	require.Contains(t, res.err.Error(), "Valid values for solid-style: flat, plastic.")
	require.Empty(t, res.stdout)
}

func TestThemeSetRejectsMalformedArguments(t *testing.T) {
	t.Parallel()

	res := executeCommand(t, nil, "theme", "set", "brand")
	require.Error(t, res.err)
	require.Contains(t, res.err.Error(), "expected ATTRIBUTE=VALUE")

	res = executeCommand(t, nil, "theme", "set", "font=serif")
	require.Error(t, res.err)
	require.True(t, errors.Is(res.err, theme.ErrUnknownAttribute))
}

func TestThemePanelRequiresTerminal(t *testing.T) {
	t.Parallel()

	res := executeCommand(t, nil, "theme", "panel")
	require.Error(t, res.err)
	require.Contains(t, res.err.Error(), "stdin and stdout must be a terminal")
}
