package debug

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// EnvVar names the environment variable holding the log file path.
const EnvVar = "DATAGRID_DEBUG"

var (
	mu       sync.Mutex
	logFile  *os.File
	logger   *slog.Logger
	envTried bool
)

// Init starts logging to path, creating parent directories as needed.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	return initLocked(path)
}

// initLocked does the actual init work. Caller must hold mu.
func initLocked(path string) error {
	if path == "" {
		return fmt.Errorf("debug log path is empty")
	}

	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}

	if logFile != nil {
		logFile.Close()
	}
	logFile = f
	logger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return nil
}

// Close closes the debug log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	logger = nil
	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}

// Log writes a formatted message to the debug log.
func Log(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	ensureLocked()
	if logger == nil {
		return
	}
	logger.Debug(fmt.Sprintf(format, args...))
}

// ensureLocked opens the file named by EnvVar the first time it is needed.
func ensureLocked() {
	if logger != nil || envTried {
		return
	}
	envTried = true
	if path := os.Getenv(EnvVar); path != "" {
		_ = initLocked(path)
	}
}
