package log

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	for _, level := range []Severity{TraceLevel, DebugLevel, InfoLevel, WarningLevel, ErrorLevel, CriticalLevel} {
		assert.Equal(t, level, ParseLevel(level.Name()), level.Name())
	}
	assert.Equal(t, WarningLevel, ParseLevel("WARN"))
	assert.Equal(t, Severity(0), ParseLevel("loud"))
	assert.Equal(t, "none", Severity(0).Name())
}

func TestLogging(t *testing.T) { //nolint:paralleltest // Modifies global state.
	logFile := filepath.Join(t.TempDir(), "logs", "taxglobe.log")
	require.NoError(t, Start("debug", logFile))
	defer Shutdown()

	warnings := TotalWarningLogLines()

	// log
	Trace("Trace")
	Debug("Debug")
	Info("Info")
	Warning("Warning")
	Error("Error")

	// logf
	Tracef("Trace %s", "f")
	Debugf("Debug %s", "f")
	Infof("Info %s", "f")
	Warningf("Warning %s", "f")
	Errorf("Error %s", "f")

	// play with levels
	SetLogLevel(CriticalLevel)
	Warning("hidden")
	SetLogLevel(DebugLevel)

	assert.Equal(t, warnings+3, TotalWarningLogLines())

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Debug f")
	assert.Contains(t, string(data), "Warning f")
	assert.NotContains(t, string(data), "Trace f")
	assert.NotContains(t, string(data), "hidden")
}

func TestConsoleWriterUsesStderr(t *testing.T) {
	t.Parallel()

	w := NewStderrWriter()
	assert.True(t, w.IsStderr())
	assert.Same(t, os.Stderr, w.file)

	fileWriter, err := NewFileWriter(filepath.Join(t.TempDir(), "out.log"))
	require.NoError(t, err)
	defer fileWriter.Close()
	assert.False(t, fileWriter.IsStderr())
	assert.False(t, fileWriter.IsTerminal())
}
