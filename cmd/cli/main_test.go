package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	args := []string{"-h"}
	out := &bytes.Buffer{}

	// --- Act ---
	// The run function should see `shouldExit=true` and return a nil error.
	err := run(out, args)

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
	require.Contains(t, out.String(), "--jobs <JOBS>", "Expected the option listing inside the help text")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// Providing an unknown flag will cause cli.Parse to return an error.
	args := []string{"--this-is-not-a-valid-flag"}
	out := &bytes.Buffer{}

	// --- Act ---
	// The run function should propagate the error from cli.Parse.
	err := run(out, args)

	// --- Assert ---
	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

func TestRun_SessionLoadError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// Define an HCL string with a syntax error that is guaranteed to fail
	// during the session defaults loading phase.
	invalidHCL := `
		options {
			jobs =
	`
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "defaults.hcl")
	err := os.WriteFile(filePath, []byte(invalidHCL), 0600)
	require.NoError(t, err, "failed to set up test file")

	args := []string{"-config", filePath, "-log-level=error"}
	out := &bytes.Buffer{}

	// --- Act ---
	runErr := run(out, args)

	// --- Assert ---
	require.Error(t, runErr, "run() should surface a session defaults loading failure")
	require.Contains(t, runErr.Error(), "failed to load session defaults")
}

func TestRun_ResolveError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// An unknown item name fails the whole resolution; the option argument
	// itself must pass through flag parsing untouched.
	args := []string{"columns=bogus", "-log-level=error"}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, args)

	// --- Assert ---
	require.Error(t, err)
	require.Contains(t, err.Error(), "Column with name 'bogus' is not registered")
}

func TestRun_ListFlag(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	args := []string{"-list", "-log-level=error"}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, args)

	// --- Assert ---
	require.NoError(t, err)
	require.Contains(t, out.String(), "--columns <COLUMNS>")
	require.Contains(t, out.String(), "Allowed values")
}

func TestRun_ReportsEffectiveConfiguration(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	args := []string{"jobs=dry", "columns=mean,p95", "-log-level=error"}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, args)

	// --- Assert ---
	require.NoError(t, err)
	require.Contains(t, out.String(), "Effective run configuration:")
	require.Contains(t, out.String(), "Dry")
	require.Contains(t, out.String(), "Mean, P95")
}
