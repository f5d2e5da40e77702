package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Logger defines the interface for logging throughout the application.
// Different implementations can be used for different contexts (console, silent, file).
type Logger interface {
	Info(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Debug(msg string, args ...interface{})
}

// ConsoleLogger writes human-readable logs to stdout/stderr.
// Used for CLI commands and debugging.
type ConsoleLogger struct{}

func NewConsoleLogger() *ConsoleLogger {
	return &ConsoleLogger{}
}

func (c *ConsoleLogger) Info(msg string, args ...interface{}) {
	fmt.Printf("[INFO] "+msg+"\n", args...)
}

func (c *ConsoleLogger) Error(msg string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "[ERROR] "+msg+"\n", args...)
}

func (c *ConsoleLogger) Debug(msg string, args ...interface{}) {
	fmt.Printf("[DEBUG] "+msg+"\n", args...)
}

// SilentLogger discards all log messages.
type SilentLogger struct{}

func NewSilentLogger() *SilentLogger {
	return &SilentLogger{}
}

func (s *SilentLogger) Info(msg string, args ...interface{})  {}
func (s *SilentLogger) Error(msg string, args ...interface{}) {}
func (s *SilentLogger) Debug(msg string, args ...interface{}) {}

// FileLogger appends timestamped lines to a log file. Used while the TUI owns
// the terminal: remote-call failures must be recorded for diagnostics without
// corrupting the display.
type FileLogger struct {
	mu   sync.Mutex
	file *os.File
}

// NewFileLogger opens (creating if needed) the log file at path.
func NewFileLogger(path string) (*FileLogger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return &FileLogger{file: f}, nil
}

func (f *FileLogger) Info(msg string, args ...interface{})  { f.write("INFO", msg, args...) }
func (f *FileLogger) Error(msg string, args ...interface{}) { f.write("ERROR", msg, args...) }
func (f *FileLogger) Debug(msg string, args ...interface{}) { f.write("DEBUG", msg, args...) }

func (f *FileLogger) write(level, msg string, args ...interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	fmt.Fprintf(f.file, "%s [%s] %s\n", time.Now().Format(time.RFC3339), level, fmt.Sprintf(msg, args...))
}

// Close closes the underlying file.
func (f *FileLogger) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.file.Close()
}
