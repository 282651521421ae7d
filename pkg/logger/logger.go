// Package logger provides the suite's global leveled logger.
package logger

import (
	"fmt"
	"log"
	"os"
	"sync"
)

var (
	globalLogger *log.Logger
	logFile      *os.File
	verbose      bool
	mu           sync.Mutex
)

// Init initializes the global logger with the specified log file path.
func Init(logPath string) error {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		logFile.Close()
	}

	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}

	logFile = f
	globalLogger = log.New(f, "", log.Ltime|log.Lmicroseconds)

	return nil
}

// InitStderr routes logging to stderr (used by the CLI with --verbose).
func InitStderr() {
	mu.Lock()
	defer mu.Unlock()

	globalLogger = log.New(os.Stderr, "", log.Ltime|log.Lmicroseconds)
}

// SetVerbose enables debug-level output.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// Close closes the log file.
func Close() {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}

// Info logs an info message.
func Info(format string, v ...interface{}) {
	logf("[INFO] "+format, v...)
}

// Debug logs a debug message. Dropped unless verbose is enabled.
func Debug(format string, v ...interface{}) {
	mu.Lock()
	enabled := verbose
	mu.Unlock()
	if enabled {
		logf("[DEBUG] "+format, v...)
	}
}

// Error logs an error message.
func Error(format string, v ...interface{}) {
	logf("[ERROR] "+format, v...)
}

// Warn logs a warning message.
func Warn(format string, v ...interface{}) {
	logf("[WARN] "+format, v...)
}

func logf(format string, v ...interface{}) {
	mu.Lock()
	defer mu.Unlock()

	if globalLogger != nil {
		globalLogger.Printf(format, v...)
	}
}
