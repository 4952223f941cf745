package main

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	onceerrors "github.com/alexisbeaulieu97/onceui/pkg/errors"
)

func TestRootRejectsMissingConfig(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "missing.yaml")
	res := executeCommand(t, nil, "--config", missing, "tokens")
	require.Error(t, res.err)
	require.Contains(t, res.err.Error(), "Failed to load configuration: "+missing)

	var parseErr *onceerrors.ParseError
	require.True(t, errors.As(res.err, &parseErr))
}

func TestRootRejectsInvalidConfig(t *testing.T) {
	t.Parallel()

	cfg := writeFile(t, "onceui.yaml", "tokens:\n  color_weights: [weak, alpha]\n")
	res := executeCommand(t, nil, "--config", cfg, "tokens")
	require.Error(t, res.err)

	var valErr *onceerrors.ValidationError
	require.True(t, errors.As(res.err, &valErr))
	require.Equal(t, "tokens.color_weights", valErr.Field)
}

func TestVerboseEnablesDebugLogs(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "card.yaml", "padding: \"16\"\nsparkle: true\n")
	res := executeCommand(t, nil, "--verbose", "--log-json", "compile", path)
	require.NoError(t, res.err)
	require.Contains(t, res.stderr, `"message":"ignoring unknown props"`)
	require.Contains(t, res.stderr, `"message":"compiled props document"`)
}
