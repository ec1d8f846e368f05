package logger

import "strings"

type LogLevel int

const (
	DebugLevel LogLevel = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

// Logger provides component-scoped structured logging
type Logger interface {
	Info(component string, message string, fields map[string]interface{})
	Error(component string, err error, fields map[string]interface{})
	Warning(component string, message string, fields map[string]interface{})
	Debug(component string, message string, fields map[string]interface{})
}

// ParseLevel maps a level name to a LogLevel, falling back to InfoLevel.
func ParseLevel(name string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return DebugLevel
	case "warn", "warning":
		return WarnLevel
	case "error":
		return ErrorLevel
	default:
		return InfoLevel
	}
}

func (l LogLevel) String() string {
	switch l {
	case DebugLevel:
		return "debug"
	case InfoLevel:
		return "info"
	case WarnLevel:
		return "warn"
	case ErrorLevel:
		return "error"
	default:
		return "unknown"
	}
}

// NoOpLogger discards everything
type NoOpLogger struct{}

func (n NoOpLogger) Info(component string, message string, fields map[string]interface{})    {}
func (n NoOpLogger) Error(component string, err error, fields map[string]interface{})        {}
func (n NoOpLogger) Warning(component string, message string, fields map[string]interface{}) {}
func (n NoOpLogger) Debug(component string, message string, fields map[string]interface{})   {}
