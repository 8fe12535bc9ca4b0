// Package dlog is the diagnostic logger of finders. Messages are written to
// stderr, so they never interleave with match output on stdout, and can be
// mirrored into a size-rotated log file.
package dlog

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Common is the process wide logger. It logs at info level to stderr until
// Setup replaces it.
var Common = New(os.Stderr, "info", false)

type level int

const (
	levelTrace level = iota
	levelDebug
	levelInfo
	levelWarn
	levelError
)

var levelNames = map[string]level{
	"trace": levelTrace,
	"debug": levelDebug,
	"info":  levelInfo,
	"warn":  levelWarn,
	"error": levelError,
}

func (l level) String() string {
	switch l {
	case levelTrace:
		return "TRACE"
	case levelDebug:
		return "DEBUG"
	case levelWarn:
		return "WARN"
	case levelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// parseLevel returns info for empty or unknown names.
func parseLevel(name string) level {
	if l, ok := levelNames[strings.ToLower(strings.TrimSpace(name))]; ok {
		return l
	}
	return levelInfo
}

// ValidLevel reports whether name is a known log level.
func ValidLevel(name string) bool {
	_, ok := levelNames[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

// Logger writes leveled messages. It is safe for concurrent use.
type Logger struct {
	mutex   sync.Mutex
	out     io.Writer
	file    io.WriteCloser
	level   level
	colored bool
	now     func() time.Time
}

// New returns a logger writing to out. Messages below logLevel are dropped.
func New(out io.Writer, logLevel string, colored bool) *Logger {
	return &Logger{
		out:     out,
		level:   parseLevel(logLevel),
		colored: colored,
		now:     time.Now,
	}
}

// Config controls Setup.
type Config struct {
	// Out receives all messages. Defaults to stderr.
	Out   io.Writer
	Level string
	// File additionally receives all messages, rotated by lumberjack.
	File    string
	Colored bool
}

// Setup replaces Common according to cfg.
func Setup(cfg Config) {
	out := cfg.Out
	if out == nil {
		out = os.Stderr
	}
	l := New(out, cfg.Level, cfg.Colored)
	if cfg.File != "" {
		l.file = &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    100,
			MaxBackups: 3,
			MaxAge:     30,
			Compress:   true,
		}
	}
	Common = l
}

// Close flushes and closes the log file, if any.
func (l *Logger) Close() error {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

// Trace logs a trace message and returns it.
func (l *Logger) Trace(args ...interface{}) string { return l.log(levelTrace, args) }

// Debug logs a debug message and returns it.
func (l *Logger) Debug(args ...interface{}) string { return l.log(levelDebug, args) }

// Info logs an info message and returns it.
func (l *Logger) Info(args ...interface{}) string { return l.log(levelInfo, args) }

// Warn logs a warning and returns it.
func (l *Logger) Warn(args ...interface{}) string { return l.log(levelWarn, args) }

// Error logs an error and returns it.
func (l *Logger) Error(args ...interface{}) string { return l.log(levelError, args) }

// Enabled reports whether messages of the named level would be written.
func (l *Logger) Enabled(name string) bool {
	return l.enabled(parseLevel(name))
}

func (l *Logger) enabled(lvl level) bool {
	return lvl >= l.level
}

// log formats args as "arg1|arg2|..." and writes
// "[HH:MM:SS] LEVEL|message". Filtered messages are never formatted and
// come back empty.
func (l *Logger) log(lvl level, args []interface{}) string {
	if !l.enabled(lvl) {
		return ""
	}

	parts := make([]string, 0, len(args))
	for _, arg := range args {
		parts = append(parts, fmt.Sprint(arg))
	}
	message := strings.Join(parts, "|")

	l.mutex.Lock()
	defer l.mutex.Unlock()

	stamp := l.now().Format("15:04:05")
	if l.out != nil {
		label := lvl.String()
		if l.colored {
			label = levelColor(lvl).Sprint(label)
		}
		fmt.Fprintf(l.out, "[%s] %s|%s\n", stamp, label, message)
	}
	if l.file != nil {
		fmt.Fprintf(l.file, "[%s] %s|%s\n", stamp, lvl, message)
	}
	return message
}

func levelColor(lvl level) *color.Color {
	switch lvl {
	case levelError:
		return color.New(color.FgRed, color.Bold)
	case levelWarn:
		return color.New(color.FgYellow)
	case levelDebug, levelTrace:
		return color.New(color.FgCyan)
	default:
		return color.New(color.FgGreen)
	}
}
