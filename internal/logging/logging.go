package logging

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// ANSI color codes for terminal output
const (
	colorRed    = "\033[97;41m" // White text on red background
	colorGreen  = "\033[97;42m" // White text on green background
	colorYellow = "\033[90;43m" // Black text on yellow background
	colorBlue   = "\033[97;44m" // White text on blue background
	colorCyan   = "\033[97;46m" // White text on cyan background
	colorReset  = "\033[0m"
)

// Log levels
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

var levelRank = map[string]int{
	LevelDebug: 0,
	LevelInfo:  1,
	LevelWarn:  2,
	LevelError: 3,
}

type Logger struct {
	*log.Logger
	writer   *lumberjack.Logger
	minLevel int
	requests bool
	colors   bool
}

// NewLogger creates a logger writing to stdout and, when config.File is set,
// to a rotated log file as well.
func NewLogger(config *LogConfig) (*Logger, error) {
	if config.Level == "" {
		config.Level = LevelInfo
	}
	if err := config.Validate(); err != nil {
		return nil, WrapError(err, "logging")
	}

	var out io.Writer = os.Stdout
	var writer *lumberjack.Logger

	if config.File != "" {
		// Expand home directory in log file path
		logFile := config.File
		if strings.HasPrefix(logFile, "~/") {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return nil, fmt.Errorf("failed to get home directory: %w", err)
			}
			logFile = filepath.Join(homeDir, logFile[2:])
		}

		if err := os.MkdirAll(filepath.Dir(logFile), 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}

		writer = &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    config.MaxSize, // MB
			MaxBackups: config.MaxBackups,
			MaxAge:     config.MaxAge, // days
			Compress:   true,
		}
		out = io.MultiWriter(writer, os.Stdout)
	}

	logger := NewLoggerWithWriter(out, config.Level)
	logger.writer = writer
	logger.requests = config.Requests
	// Colors only make sense on a terminal; CloudWatch shows raw escapes.
	logger.colors = os.Getenv("AWS_LAMBDA_FUNCTION_NAME") == ""
	return logger, nil
}

// NewLoggerWithWriter creates an uncolored logger on an arbitrary writer
func NewLoggerWithWriter(w io.Writer, level string) *Logger {
	rank, ok := levelRank[strings.ToLower(level)]
	if !ok {
		rank = levelRank[LevelInfo]
	}
	return &Logger{
		Logger:   log.New(w, "", log.LstdFlags),
		minLevel: rank,
	}
}

func (l *Logger) Close() error {
	if l.writer == nil {
		return nil
	}
	return l.writer.Close()
}

func (l *Logger) logf(level, color, format string, v ...interface{}) {
	if levelRank[level] < l.minLevel {
		return
	}
	prefix := "[" + strings.ToUpper(level) + "]"
	if l.colors {
		prefix = color + prefix + colorReset
	}
	l.Printf(prefix+" "+format, v...)
}

func (l *Logger) Debug(format string, v ...interface{}) {
	l.logf(LevelDebug, colorBlue, format, v...)
}

func (l *Logger) Info(format string, v ...interface{}) {
	l.logf(LevelInfo, colorGreen, format, v...)
}

func (l *Logger) Warn(format string, v ...interface{}) {
	l.logf(LevelWarn, colorYellow, format, v...)
}

func (l *Logger) Error(format string, v ...interface{}) {
	l.logf(LevelError, colorRed, format, v...)
}

// Error handling utilities
type ErrorWithContext struct {
	Err     error
	Context string
}

func (e *ErrorWithContext) Error() string {
	return fmt.Sprintf("%s: %v", e.Context, e.Err)
}

func (e *ErrorWithContext) Unwrap() error {
	return e.Err
}

func WrapError(err error, context string) error {
	if err == nil {
		return nil
	}
	return &ErrorWithContext{
		Err:     err,
		Context: context,
	}
}

// Common errors
var (
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrService       = errors.New("service error")
)

// FormatHTTPMethod returns a colored string based on the HTTP method
func (l *Logger) FormatHTTPMethod(method string) string {
	if !l.colors {
		return method
	}
	var color string
	switch method {
	case http.MethodGet:
		color = colorBlue
	case http.MethodPost:
		color = colorCyan
	case http.MethodOptions:
		color = colorYellow
	default:
		color = colorBlue
	}
	return fmt.Sprintf("%s %s %s", color, method, colorReset)
}

// FormatHTTPStatus returns a colored string based on the status code
func (l *Logger) FormatHTTPStatus(status int) string {
	if !l.colors {
		return fmt.Sprintf("%d", status)
	}
	var color string
	switch {
	case status >= 500:
		color = colorRed
	case status >= 400:
		color = colorYellow
	case status >= 300:
		color = colorCyan
	case status >= 200:
		color = colorGreen
	default:
		color = colorBlue
	}
	return fmt.Sprintf("%s %d %s", color, status, colorReset)
}

// RequestsEnabled reports whether per-request logging is on
func (l *Logger) RequestsEnabled() bool {
	return l.requests
}

// SetRequests toggles per-request logging
func (l *Logger) SetRequests(enabled bool) {
	l.requests = enabled
}

// LogHTTPRequest logs an HTTP request with colored output
func (l *Logger) LogHTTPRequest(method, path, clientIP string, status, bytes int, latency string) {
	if !l.requests {
		return
	}

	l.Printf("[HTTP] %s | %15s | %-17s | %s | %d bytes | %s",
		l.FormatHTTPStatus(status),
		clientIP,
		l.FormatHTTPMethod(method),
		path,
		bytes,
		latency,
	)
}
