// Package testutil provides the end-to-end harness used by the integration
// tests: it lays out files in a temporary directory and runs the full
// CLI -> profile -> app pipeline against them.
package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/vcfconvert/internal/app"
	"github.com/specialistvlad/vcfconvert/internal/cli"
	"github.com/specialistvlad/vcfconvert/internal/hcl"
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

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	Stdout     string
	LogOutput  string
	Err        error
	ShouldExit bool
}

// Harness is a temporary working directory populated with test files.
type Harness struct {
	t   *testing.T
	Dir string
}

// NewHarness writes files (relative path -> content) into a fresh temporary
// directory.
func NewHarness(t *testing.T, files map[string]string) *Harness {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return &Harness{t: t, Dir: dir}
}

// Path returns the absolute path of a file inside the harness directory.
func (h *Harness) Path(name string) string {
	return filepath.Join(h.Dir, name)
}

// ReadFile returns the content of a file inside the harness directory.
func (h *Harness) ReadFile(name string) string {
	h.t.Helper()
	data, err := os.ReadFile(h.Path(name))
	require.NoError(h.t, err)
	return string(data)
}

// Exists reports whether name exists inside the harness directory.
func (h *Harness) Exists(name string) bool {
	_, err := os.Stat(h.Path(name))
	return err == nil
}

// Run executes the command line. Arguments of the form "@name" are replaced
// by the absolute path of name inside the harness directory.
func (h *Harness) Run(args ...string) *HarnessResult {
	h.t.Helper()

	resolved := make([]string, len(args))
	for i, a := range args {
		if name, ok := strings.CutPrefix(a, "@"); ok {
			a = h.Path(name)
		}
		resolved[i] = a
	}

	stdout := &SafeBuffer{}
	logs := &SafeBuffer{}

	cfg, shouldExit, err := cli.Parse(resolved, stdout, hcl.NewLoader())
	if err == nil && !shouldExit {
		var a *app.App
		a, err = app.NewApp(stdout, logs, cfg)
		if err == nil {
			err = a.Run(context.Background())
		}
	}

	if os.Getenv("VCFCONVERT_TEST_LOGS") == "true" {
		h.t.Logf("--- Full Log Output for %s ---\n%s", h.t.Name(), logs.String())
	}

	return &HarnessResult{
		Stdout:     stdout.String(),
		LogOutput:  logs.String(),
		Err:        err,
		ShouldExit: shouldExit,
	}
}
