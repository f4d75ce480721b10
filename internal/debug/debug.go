// Package debug provides env-gated debug logging.
package debug

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

var (
	enabled = os.Getenv("PAINTOURNEY_DEBUG") == "1"

	mu  sync.Mutex
	out io.Writer = os.Stderr
)

// Logf writes a debug message if PAINTOURNEY_DEBUG=1.
func Logf(format string, args ...any) {
	if !enabled {
		return
	}
	timestamp := time.Now().Format("15:04:05.000")
	msg := fmt.Sprintf(format, args...)

	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintf(out, "[DEBUG %s] %s\n", timestamp, msg)
}

// Enabled returns true if debug logging is enabled.
func Enabled() bool {
	return enabled
}

// SetOutput redirects debug output and returns a func restoring the previous
// writer. The terminal UI uses it so log lines don't land on the alt screen.
func SetOutput(w io.Writer) (restore func()) {
	mu.Lock()
	defer mu.Unlock()
	prev := out
	out = w
	return func() {
		mu.Lock()
		out = prev
		mu.Unlock()
	}
}

func setEnabled(v bool) (restore func()) {
	prev := enabled
	enabled = v
	return func() { enabled = prev }
}
