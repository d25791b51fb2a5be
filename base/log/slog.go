package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"sync/atomic"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-colorable"
)

const timeFormat = "060102 15:04:05.000"

// levelTrace sits below slog's debug level.
const levelTrace = slog.LevelDebug - 4

var (
	warnLogLines = new(uint64)
	errLogLines  = new(uint64)
	critLogLines = new(uint64)
)

func (s Severity) toSLogLevel() slog.Level {
	// Convert to slog level.
	switch s {
	case TraceLevel:
		return levelTrace
	case DebugLevel:
		return slog.LevelDebug
	case InfoLevel:
		return slog.LevelInfo
	case WarningLevel:
		return slog.LevelWarn
	case ErrorLevel:
		return slog.LevelError
	case CriticalLevel:
		return slog.LevelError + 4
	}
	// Failed to convert, return default log level
	return slog.LevelWarn
}

func setupSLog(level Severity) {
	handlerLogLevel := level.toSLogLevel()

	var out io.Writer = GlobalWriter
	if GlobalWriter == nil {
		out = os.Stderr
	}
	useColor := GlobalWriter.IsTerminal()
	if useColor && runtime.GOOS == "windows" {
		out = colorable.NewColorable(os.Stderr)
	}

	logHandler := tint.NewHandler(out, &tint.Options{
		Level:      handlerLogLevel,
		TimeFormat: timeFormat,
		NoColor:    !useColor,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key != slog.LevelKey || len(groups) > 0 {
				return a
			}
			switch a.Value.Any().(slog.Level) {
			case levelTrace:
				return slog.String(a.Key, "TRC")
			case slog.LevelError + 4:
				return slog.String(a.Key, "CRT")
			}
			return a
		},
	})

	slog.SetDefault(slog.New(logHandler))
}

func log(level Severity, msg string) {
	slog.Default().Log(context.Background(), level.toSLogLevel(), msg)
}

func enabled(level Severity) bool {
	return uint32(level) >= atomic.LoadUint32(logLevel)
}

// Trace is used to log tiny steps.
func Trace(msg string) {
	if enabled(TraceLevel) {
		log(TraceLevel, msg)
	}
}

// Tracef is used to log tiny steps.
func Tracef(format string, things ...interface{}) {
	if enabled(TraceLevel) {
		log(TraceLevel, fmt.Sprintf(format, things...))
	}
}

// Debug is used to log minor errors or unexpected events.
func Debug(msg string) {
	if enabled(DebugLevel) {
		log(DebugLevel, msg)
	}
}

// Debugf is used to log minor errors or unexpected events.
func Debugf(format string, things ...interface{}) {
	if enabled(DebugLevel) {
		log(DebugLevel, fmt.Sprintf(format, things...))
	}
}

// Info is used to log mildly significant events.
func Info(msg string) {
	if enabled(InfoLevel) {
		log(InfoLevel, msg)
	}
}

// Infof is used to log mildly significant events.
func Infof(format string, things ...interface{}) {
	if enabled(InfoLevel) {
		log(InfoLevel, fmt.Sprintf(format, things...))
	}
}

// Warning is used to log (potentially) bad events, but nothing broke.
func Warning(msg string) {
	atomic.AddUint64(warnLogLines, 1)
	if enabled(WarningLevel) {
		log(WarningLevel, msg)
	}
}

// Warningf is used to log (potentially) bad events, but nothing broke.
func Warningf(format string, things ...interface{}) {
	atomic.AddUint64(warnLogLines, 1)
	if enabled(WarningLevel) {
		log(WarningLevel, fmt.Sprintf(format, things...))
	}
}

// Error is used to log errors that break or impair functionality.
func Error(msg string) {
	atomic.AddUint64(errLogLines, 1)
	if enabled(ErrorLevel) {
		log(ErrorLevel, msg)
	}
}

// Errorf is used to log errors that break or impair functionality.
func Errorf(format string, things ...interface{}) {
	atomic.AddUint64(errLogLines, 1)
	if enabled(ErrorLevel) {
		log(ErrorLevel, fmt.Sprintf(format, things...))
	}
}

// Critical is used to log events that abort the run.
func Critical(msg string) {
	atomic.AddUint64(critLogLines, 1)
	if enabled(CriticalLevel) {
		log(CriticalLevel, msg)
	}
}

// Criticalf is used to log events that abort the run.
func Criticalf(format string, things ...interface{}) {
	atomic.AddUint64(critLogLines, 1)
	if enabled(CriticalLevel) {
		log(CriticalLevel, fmt.Sprintf(format, things...))
	}
}

// TotalWarningLogLines returns the total amount of warning log lines since
// start of the program.
func TotalWarningLogLines() uint64 {
	return atomic.LoadUint64(warnLogLines)
}

// TotalErrorLogLines returns the total amount of error log lines since start
// of the program.
func TotalErrorLogLines() uint64 {
	return atomic.LoadUint64(errLogLines)
}

// TotalCriticalLogLines returns the total amount of critical log lines since
// start of the program.
func TotalCriticalLogLines() uint64 {
	return atomic.LoadUint64(critLogLines)
}
