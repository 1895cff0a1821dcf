package testutil

import (
	"testing"
)

// RunSessionFileTest provides a simplified harness for resolving with a single
// HCL session defaults file and no command-line arguments. It wraps the main
// resolution harness for the common one-file case.
func RunSessionFileTest(t *testing.T, sessionHCL string) *HarnessResult {
	t.Helper()

	files := map[string]string{
		"session/defaults.hcl": sessionHCL,
	}

	return RunResolutionTest(t, files, nil)
}
