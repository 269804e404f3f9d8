package log

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/golang/glog"
)

// Level is a log severity threshold. Messages below the current
// threshold are dropped before they reach glog.
type Level int32

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

var currentLevel int32 = int32(DebugLevel)

// ParseLevel maps a config string to a Level. Unknown strings fall
// back to debug so a bad config never silences the log.
func ParseLevel(level string) Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "info":
		return InfoLevel
	case "warn", "warning":
		return WarnLevel
	case "error":
		return ErrorLevel
	default:
		return DebugLevel
	}
}

// SetLevel changes the severity threshold at runtime.
func SetLevel(level Level) {
	atomic.StoreInt32(&currentLevel, int32(level))
}

func enabled(level Level) bool {
	return int32(level) >= atomic.LoadInt32(&currentLevel)
}

// InitFileLog routes output to rotated files under dir/module and sets
// the severity threshold. An empty dir keeps logging on stderr, which
// is what the tool subcommands want.
func InitFileLog(dir, module, level string) {
	if dir != "" {
		logDir := filepath.Join(dir, module)
		if err := os.MkdirAll(logDir, 0755); err == nil {
			setGlogFlag("log_dir", logDir)
			setGlogFlag("logtostderr", "false")
			setGlogFlag("alsologtostderr", "false")
		}
	} else {
		setGlogFlag("logtostderr", "true")
	}
	SetLevel(ParseLevel(level))
}

func setGlogFlag(name, value string) {
	if f := flag.Lookup(name); f != nil {
		_ = flag.Set(name, value)
	}
}

// Debug logs a formatted message at debug severity.
func Debug(format string, v ...interface{}) {
	if !enabled(DebugLevel) {
		return
	}
	glog.InfoDepth(1, fmt.Sprintf(format, v...))
}

// Info logs a formatted message at info severity.
func Info(format string, v ...interface{}) {
	if !enabled(InfoLevel) {
		return
	}
	glog.InfoDepth(1, fmt.Sprintf(format, v...))
}

// Warn logs a formatted message at warn severity.
func Warn(format string, v ...interface{}) {
	if !enabled(WarnLevel) {
		return
	}
	glog.WarningDepth(1, fmt.Sprintf(format, v...))
}

// Error logs a formatted message at error severity.
func Error(format string, v ...interface{}) {
	if !enabled(ErrorLevel) {
		return
	}
	glog.ErrorDepth(1, fmt.Sprintf(format, v...))
}

// Panic logs at error severity, flushes and panics. Config adjusters
// use it to abort startup on an invalid setting.
func Panic(format string, v ...interface{}) {
	msg := fmt.Sprintf(format, v...)
	glog.ErrorDepth(1, msg)
	glog.Flush()
	panic(msg)
}

// Fatal logs at fatal severity and exits the process.
func Fatal(format string, v ...interface{}) {
	glog.FatalDepth(1, fmt.Sprintf(format, v...))
}

// Flush drains buffered output to the log files.
func Flush() {
	glog.Flush()
}
