package logx

import (
	"fmt"
	"log"
	"os"
	"sync"
)

// Level controls which messages are emitted
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var (
	mu       sync.RWMutex
	minLevel = LevelInfo
	std      = log.New(os.Stderr, "", log.LstdFlags)
)

// SetLevel sets the minimum level that will be logged
func SetLevel(l Level) {
	mu.Lock()
	defer mu.Unlock()
	minLevel = l
}

func enabled(l Level) bool {
	mu.RLock()
	defer mu.RUnlock()
	return l >= minLevel
}

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

func output(l Level, msg string) {
	if !enabled(l) {
		return
	}
	std.Printf("[%s] %s", l, msg)
}

// Debug logs a message at debug level
func Debug(msg string) { output(LevelDebug, msg) }

// Debugf logs a formatted message at debug level
func Debugf(format string, args ...any) { output(LevelDebug, fmt.Sprintf(format, args...)) }

// Info logs a message at info level
func Info(msg string) { output(LevelInfo, msg) }

// Infof logs a formatted message at info level
func Infof(format string, args ...any) { output(LevelInfo, fmt.Sprintf(format, args...)) }

// Warn logs a message at warn level
func Warn(msg string) { output(LevelWarn, msg) }

// Warnf logs a formatted message at warn level
func Warnf(format string, args ...any) { output(LevelWarn, fmt.Sprintf(format, args...)) }

// Error logs a message at error level
func Error(msg string) { output(LevelError, msg) }

// Errorf logs a formatted message at error level
func Errorf(format string, args ...any) { output(LevelError, fmt.Sprintf(format, args...)) }

// Fatal logs a message and exits the process
func Fatal(msg string) {
	std.Printf("[FATAL] %s", msg)
	os.Exit(1)
}

// Fatalf logs a formatted message and exits the process
func Fatalf(format string, args ...any) {
	std.Printf("[FATAL] %s", fmt.Sprintf(format, args...))
	os.Exit(1)
}
