package debug

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// EnvVar names the environment variable that enables logging at startup.
const EnvVar = "DPAD_DEBUG"

var (
	out      io.Writer
	closer   io.Closer
	mu       sync.Mutex
	envTried bool
)

// Init initializes debug logging to the specified file path.
// If path is empty, uses "dpad-debug.log" in the current directory.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	envTried = true
	return initLocked(path)
}

// initLocked does the actual init work. Caller must hold mu.
func initLocked(path string) error {
	if path == "" {
		path = "dpad-debug.log"
	}

	// Ensure directory exists
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}

	closeLocked()
	out = f
	closer = f
	return nil
}

// SetOutput redirects logging to w. Passing nil disables logging.
// Used by tests and by hosts that already own a log sink.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()

	closeLocked()
	envTried = true
	out = w
}

// Close closes the debug log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	return closeLocked()
}

func closeLocked() error {
	var err error
	if closer != nil {
		err = closer.Close()
		closer = nil
	}
	out = nil
	return err
}

// Enabled reports whether log lines are currently written anywhere.
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return ensureLocked()
}

func ensureLocked() bool {
	if out == nil && !envTried {
		envTried = true
		if path := os.Getenv(EnvVar); path != "" {
			_ = initLocked(path)
		}
	}
	return out != nil
}

// Log writes a message to the debug log with a timestamp.
func Log(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	if !ensureLocked() {
		return
	}

	timestamp := time.Now().Format("15:04:05.000")
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(out, "[%s] %s\n", timestamp, msg)
	if f, ok := out.(*os.File); ok {
		f.Sync()
	}
}
