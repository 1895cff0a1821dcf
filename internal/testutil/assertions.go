package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// AssertOptionApplied checks the log output within a HarnessResult to confirm
// that a category applied a specific value. It abstracts the underlying log
// format, making tests more resilient to internal refactoring.
func AssertOptionApplied(t *testing.T, result *HarnessResult, category, value string) {
	t.Helper()

	expectedLogSubstring := fmt.Sprintf("category=%s value=%s", category, value)

	require.True(t,
		strings.Contains(result.LogOutput, expectedLogSubstring),
		"expected log output for applied option '%s=%s' was not found in logs", category, value,
	)
}
