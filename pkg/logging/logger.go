package logging

import (
	"fmt"
	"os"
	"regexp"
	"runtime"
	"strings"
	"sync"
)

// EnvLevel names the environment variable consulted when the default
// logger initializes itself: one of the seven severity names, exact
// case. Anything else resolves to DISABLED.
const EnvLevel = "GATELOG_LEVEL"

// failedToFormat replaces the message body when the caller's template
// and arguments cannot be reconciled. The prefix is kept so the line
// still identifies the broken call site.
const failedToFormat = "Failed to format"

var (
	defaultLogger *Logger
	mu            sync.RWMutex
)

// Logger gates messages by severity and writes accepted ones as single
// prefixed lines. The threshold is fixed at construction; there is no
// mutator.
type Logger struct {
	threshold Severity
	output    Output
}

// Config carries logger construction parameters.
type Config struct {
	Threshold Severity
	Output    Output
}

// NewLogger creates a new logger with the given configuration.
func NewLogger(cfg Config) *Logger {
	out := cfg.Output
	if out == nil {
		out = NewConsoleOutput(false)
	}
	return &Logger{
		threshold: cfg.Threshold,
		output:    out,
	}
}

// logf is the shared emission routine behind every level entry point.
// It never returns or raises an error: formatting failures degrade to a
// placeholder message and write failures are ignored, so logging can
// never fail the caller's operation.
func (l *Logger) logf(s Severity, format string, args ...interface{}) {
	// Gate first; a suppressed call does nothing beyond this compare.
	if l.threshold < s {
		return
	}

	priority := s.SyslogPriority()

	_, file, line, ok := runtime.Caller(2)
	if !ok {
		file, line = "???", 0
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d[%s:%d] ", priority, shortFile(file), line)
	b.WriteString(formatMessage(format, args))
	b.WriteByte('\n')

	// Intentionally ignore both errors: best-effort transport.
	_ = l.output.Write([]byte(b.String()))
	_ = l.output.Sync()
}

// shortFile reduces a captured file path to its tail after the last
// path separator; a path with no separator passes through unchanged.
func shortFile(path string) string {
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		return path[i+1:]
	}
	return path
}

// formatErrMarker matches the %!verb(...) and %!(...) markers fmt
// embeds for template/argument mismatches.
var formatErrMarker = regexp.MustCompile(`%![a-zA-Z]?\(`)

// formatMessage renders the caller's template, containing any failure.
// fmt surfaces template/argument mismatches as %!-marked text rather
// than errors, and a misbehaving Formatter or Stringer can panic; both
// collapse to the placeholder so one broken call site cannot take
// logging down.
func formatMessage(format string, args []interface{}) (msg string) {
	defer func() {
		if recover() != nil {
			msg = failedToFormat
		}
	}()
	msg = fmt.Sprintf(format, args...)
	if formatErrMarker.MatchString(msg) {
		return failedToFormat
	}
	return msg
}

// Critical logs a message at CRITICAL severity, capturing the call site.
func (l *Logger) Critical(format string, args ...interface{}) {
	l.logf(CRITICAL, format, args...)
}

// Error logs a message at ERROR severity, capturing the call site.
func (l *Logger) Error(format string, args ...interface{}) {
	l.logf(ERROR, format, args...)
}

// Warning logs a message at WARNING severity, capturing the call site.
func (l *Logger) Warning(format string, args ...interface{}) {
	l.logf(WARNING, format, args...)
}

// Info logs a message at INFO severity, capturing the call site.
func (l *Logger) Info(format string, args ...interface{}) {
	l.logf(INFO, format, args...)
}

// Debug logs a message at DEBUG severity, capturing the call site.
func (l *Logger) Debug(format string, args ...interface{}) {
	l.logf(DEBUG, format, args...)
}

// GetLogger returns the process-wide logger, building it on first use
// from the EnvLevel environment variable. The build happens at most
// once; the resolved threshold is fixed for the process lifetime.
func GetLogger() *Logger {
	// First try reading without a write lock.
	mu.RLock()
	if l := defaultLogger; l != nil {
		mu.RUnlock()
		return l
	}
	mu.RUnlock()

	mu.Lock()
	defer mu.Unlock()

	if defaultLogger == nil {
		defaultLogger = NewLogger(Config{
			Threshold: ParseSeverity(os.Getenv(EnvLevel)),
			Output:    NewConsoleOutput(false),
		})
	}

	return defaultLogger
}

// SetLogger installs a configured logger as the process-wide instance.
// Meant to be called once during process startup, before any logging.
func SetLogger(l *Logger) {
	mu.Lock()
	defaultLogger = l
	mu.Unlock()
}

// Critical logs through the process-wide logger.
func Critical(format string, args ...interface{}) {
	GetLogger().logf(CRITICAL, format, args...)
}

// Error logs through the process-wide logger.
func Error(format string, args ...interface{}) {
	GetLogger().logf(ERROR, format, args...)
}

// Warning logs through the process-wide logger.
func Warning(format string, args ...interface{}) {
	GetLogger().logf(WARNING, format, args...)
}

// Info logs through the process-wide logger.
func Info(format string, args ...interface{}) {
	GetLogger().logf(INFO, format, args...)
}

// Debug logs through the process-wide logger.
func Debug(format string, args ...interface{}) {
	GetLogger().logf(DEBUG, format, args...)
}
