package logger

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/AlibekovAA/course-advisor/backend/internal/common/constants"
)

type Fields map[string]interface{}

type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARNING
	ERROR
	CRITICAL
)

func (l LogLevel) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARNING:
		return "WARNING"
	case ERROR:
		return "ERROR"
	default:
		return "CRITICAL"
	}
}

// Field values under these keys are never written out.
var redactedKeys = map[string]struct{}{
	"password":        {},
	"hashed_password": {},
	"access_token":    {},
	"token":           {},
	"authorization":   {},
}

const redacted = "[REDACTED]"

// Logger is configured once at construction and is safe for concurrent use.
type Logger struct {
	level   LogLevel
	out     *log.Logger
	service string
}

// New builds a logger writing to stdout. When logDir is set, output is also
// written to a rotating app.log inside it.
func New(logDir, service, level string) (*Logger, error) {
	var w io.Writer = os.Stdout

	if logDir != "" {
		if err := os.MkdirAll(logDir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		w = io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   filepath.Join(logDir, "app.log"),
			MaxSize:    constants.LoggerMaxSize,
			MaxBackups: constants.LoggerMaxBackups,
			MaxAge:     constants.LoggerMaxAge,
			Compress:   true,
		})
	}

	return NewWithWriter(w, service, level), nil
}

func NewWithWriter(w io.Writer, service, level string) *Logger {
	return &Logger{
		level:   parseLevel(level),
		out:     log.New(w, "", log.LstdFlags),
		service: service,
	}
}

// Discard is meant for tests that do not inspect log output.
func Discard() *Logger {
	return NewWithWriter(io.Discard, "test", "critical")
}

func (l *Logger) ShouldLog(level LogLevel) bool {
	return level >= l.level
}

// write must sit exactly two frames below the public logging call.
func (l *Logger) write(level LogLevel, ctx context.Context, msg string, fields Fields) {
	if !l.ShouldLog(level) {
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[%s]", level)
	if l.service != "" {
		fmt.Fprintf(&b, " [%s]", l.service)
	}
	if attrs := formatFields(ctx, fields); attrs != "" {
		fmt.Fprintf(&b, " [%s]", attrs)
	}

	file, line := "unknown", 0
	if _, path, n, ok := runtime.Caller(3); ok {
		file, line = filepath.Base(path), n
	}
	fmt.Fprintf(&b, " %s:%d %s", file, line, msg)

	_ = l.out.Output(0, b.String())
}

func formatFields(ctx context.Context, fields Fields) string {
	var parts []string

	if ctx != nil {
		if traceID, ok := ctx.Value(constants.TraceIDKey).(string); ok && traceID != "" {
			parts = append(parts, "trace_id="+traceID)
		}
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		v := fields[k]
		if _, secret := redactedKeys[strings.ToLower(k)]; secret {
			v = redacted
		}
		parts = append(parts, fmt.Sprintf("%s=%v", k, v))
	}
	return strings.Join(parts, " ")
}

func (l *Logger) log(level LogLevel, msg string) {
	l.write(level, nil, msg, nil)
}

func (l *Logger) Debug(msg string) { l.log(DEBUG, msg) }
func (l *Logger) Info(msg string)  { l.log(INFO, msg) }
func (l *Logger) Warn(msg string)  { l.log(WARNING, msg) }
func (l *Logger) Error(msg string) { l.log(ERROR, msg) }

func (l *Logger) Debugf(format string, args ...any) { l.log(DEBUG, fmt.Sprintf(format, args...)) }
func (l *Logger) Infof(format string, args ...any)  { l.log(INFO, fmt.Sprintf(format, args...)) }
func (l *Logger) Warnf(format string, args ...any)  { l.log(WARNING, fmt.Sprintf(format, args...)) }
func (l *Logger) Errorf(format string, args ...any) { l.log(ERROR, fmt.Sprintf(format, args...)) }

func (l *Logger) Criticalf(format string, args ...any) {
	l.log(CRITICAL, fmt.Sprintf(format, args...))
}

func (l *Logger) Fatalf(format string, args ...any) {
	l.log(CRITICAL, fmt.Sprintf(format, args...))
	os.Exit(1)
}

// WithFields attaches structured fields and the request's trace id.
func (l *Logger) WithFields(ctx context.Context, fields Fields) *Entry {
	return &Entry{logger: l, ctx: ctx, fields: fields}
}

type Entry struct {
	logger *Logger
	ctx    context.Context
	fields Fields
}

func (e *Entry) emit(level LogLevel, msg string) {
	e.logger.write(level, e.ctx, msg, e.fields)
}

func (e *Entry) Debug(msg string) { e.emit(DEBUG, msg) }
func (e *Entry) Info(msg string)  { e.emit(INFO, msg) }
func (e *Entry) Warn(msg string)  { e.emit(WARNING, msg) }
func (e *Entry) Error(msg string) { e.emit(ERROR, msg) }

func (e *Entry) Debugf(format string, args ...any) { e.emit(DEBUG, fmt.Sprintf(format, args...)) }
func (e *Entry) Warnf(format string, args ...any)  { e.emit(WARNING, fmt.Sprintf(format, args...)) }
func (e *Entry) Errorf(format string, args ...any) { e.emit(ERROR, fmt.Sprintf(format, args...)) }

func parseLevel(value string) LogLevel {
	switch strings.TrimSpace(strings.ToUpper(value)) {
	case "DEBUG":
		return DEBUG
	case "WARNING", "WARN":
		return WARNING
	case "ERROR":
		return ERROR
	case "CRITICAL":
		return CRITICAL
	default:
		return INFO
	}
}
