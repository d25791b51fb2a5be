package log

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/mattn/go-isatty"
)

// GlobalWriter is the global log writer.
var GlobalWriter *LogWriter = nil

// LogWriter serializes log output to stderr or a file.
type LogWriter struct {
	writeLock sync.Mutex
	isStderr  bool
	file      *os.File
}

// NewStderrWriter creates a new log writer that will write to stderr, keeping
// stdout free for command output.
func NewStderrWriter() *LogWriter {
	return &LogWriter{
		file:     os.Stderr,
		isStderr: true,
	}
}

// NewFileWriter creates a new log writer that appends to the given file.
func NewFileWriter(path string) (*LogWriter, error) {
	if dir := filepath.Dir(path); dir != "" {
		_ = os.MkdirAll(dir, 0o755)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	return &LogWriter{
		file:     file,
		isStderr: false,
	}, nil
}

// Write writes the buffer to the writer.
func (l *LogWriter) Write(buf []byte) (int, error) {
	if l == nil {
		return 0, fmt.Errorf("log writer not initialized")
	}
	l.writeLock.Lock()
	defer l.writeLock.Unlock()

	return l.file.Write(buf)
}

// IsStderr returns true if writer was initialized with stderr.
func (l *LogWriter) IsStderr() bool {
	return l != nil && l.isStderr
}

// IsTerminal returns whether the writer is stderr attached to a terminal.
func (l *LogWriter) IsTerminal() bool {
	if !l.IsStderr() {
		return false
	}
	fd := l.file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Close closes the writer.
func (l *LogWriter) Close() {
	if l != nil && !l.isStderr {
		_ = l.file.Close()
	}
}
