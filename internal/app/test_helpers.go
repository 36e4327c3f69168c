package app

import (
	"bytes"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/specialistvlad/vcfconvert/internal/registry"
)

// SafeBuffer is a thread-safe buffer for capturing output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// SetupAppTest creates a new app instance for system testing. It returns the
// app with its stdout and log buffers. The clock is fixed to now.
func SetupAppTest(t *testing.T, cfg *Config, now time.Time, modules ...registry.Module) (*App, *SafeBuffer, *SafeBuffer) {
	t.Helper()

	outBuffer := &SafeBuffer{}
	logBuffer := &SafeBuffer{}
	cfg.LogLevel = "debug"
	testApp, err := NewApp(outBuffer, logBuffer, cfg, modules...)
	if err != nil {
		t.Fatalf("NewApp() failed: %v", err)
	}
	testApp.now = func() time.Time { return now }

	t.Cleanup(func() {
		if os.Getenv("VCFCONVERT_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
		}
	})

	return testApp, outBuffer, logBuffer
}
