package testutil

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/benchgridgo/internal/app"
	"github.com/vk/benchgridgo/internal/runcfg"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of a resolution test run.
type HarnessResult struct {
	LogOutput string
	Err       error
	Config    *runcfg.Config
	App       *app.App
}

// RunResolutionTest provides a standardized harness for resolving command-line
// arguments against a set of session default files, using a default background
// context.
func RunResolutionTest(t *testing.T, files map[string]string, args []string) *HarnessResult {
	t.Helper()
	return RunResolutionTestWithContext(context.Background(), t, files, args)
}

// RunResolutionTestWithContext provides a standardized harness for resolution
// tests with a specific context provided by the caller.
func RunResolutionTestWithContext(ctx context.Context, t *testing.T, files map[string]string, args []string) *HarnessResult {
	t.Helper()

	// 1. Create a temporary root directory for the test.
	tmpDir, err := os.MkdirTemp("", ".tmp-resolution-test-*")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(tmpDir) })

	sessionDir := filepath.Join(tmpDir, "session")
	require.NoError(t, os.Mkdir(sessionDir, 0755))

	// 2. Write all session files to the temporary directory.
	//    The test provides relative paths (e.g., "session/defaults.hcl"),
	//    which naturally creates the subdirectory structure within the root tmpDir.
	for name, content := range files {
		filePath := filepath.Join(tmpDir, name)
		dir := filepath.Dir(filePath)
		require.NoError(t, os.MkdirAll(dir, 0755))
		err = os.WriteFile(filePath, []byte(content), 0644)
		require.NoError(t, err)
	}

	// 3. Point the app at the session subdirectory only when the test
	//    actually provided default files.
	configPath := ""
	if len(files) > 0 {
		configPath = sessionDir
	}

	appConfig, err := app.NewConfig(app.Config{
		ConfigPath: configPath,
		RawArgs:    args,
		LogLevel:   "debug",
		LogFormat:  "text",
	})
	require.NoError(t, err)

	logBuffer := &SafeBuffer{}

	var testApp *app.App
	var panicErr any
	func() {
		defer func() {
			if r := recover(); r != nil {
				if os.Getenv("BENCHGRID_TEST_LOGS") == "true" {
					t.Logf("--- HARNESS RECOVERED PANIC ---\n%q", fmt.Sprintf("%v", r))
				}
				panicErr = r
			}
		}()
		testApp = app.NewApp(logBuffer, appConfig)
	}()

	if panicErr != nil {
		return &HarnessResult{
			LogOutput: logBuffer.String(),
			Err:       fmt.Errorf("application startup panicked | %v", panicErr),
		}
	}

	// Calling Resolve directly instead of the full app.Run keeps these tests
	// focused on resolution and lets errors propagate untouched.
	cfg, runErr := testApp.Resolve(ctx)

	if os.Getenv("BENCHGRID_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
	}

	return &HarnessResult{
		LogOutput: logBuffer.String(),
		Err:       runErr,
		Config:    cfg,
		App:       testApp,
	}
}
