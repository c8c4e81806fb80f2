// Package logging is a small leveled logger with structured fields.
// Debug/Info go to stdout, Warn/Error to stderr with ANSI colors when the
// output is a terminal.
package logging

import (
	"fmt"
	"log"
	"os"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
)

// Level represents log levels
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Fields represents structured logging fields
type Fields map[string]any

type Logger struct {
	stdout    *log.Logger
	stderr    *log.Logger
	level     Level
	fields    Fields
	useColors bool
}

func New() *Logger {
	return &Logger{
		stdout:    log.New(os.Stdout, "", log.LstdFlags),
		stderr:    log.New(os.Stderr, "", log.LstdFlags),
		level:     InfoLevel,
		fields:    make(Fields),
		useColors: isTerminal(),
	}
}

func isTerminal() bool {
	if fileInfo, _ := os.Stdout.Stat(); fileInfo != nil {
		return (fileInfo.Mode() & os.ModeCharDevice) != 0
	}
	return false
}

func (l *Logger) SetLevel(level Level) {
	l.level = level
}

// WithFields returns a logger carrying preset fields.
func (l *Logger) WithFields(fields Fields) *Logger {
	merged := make(Fields, len(l.fields)+len(fields))
	for k, v := range l.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return &Logger{
		stdout:    l.stdout,
		stderr:    l.stderr,
		level:     l.level,
		fields:    merged,
		useColors: l.useColors,
	}
}

func (l *Logger) format(level Level, err error, msg string, fields ...Fields) string {
	all := make(Fields)
	for k, v := range l.fields {
		all[k] = v
	}
	for _, f := range fields {
		for k, v := range f {
			all[k] = v
		}
	}

	logMsg := fmt.Sprintf("[%s] %s", level.String(), msg)
	if err != nil {
		logMsg += fmt.Sprintf(": %v", err)
	}
	if len(all) > 0 {
		logMsg += fmt.Sprintf(" %+v", all)
	}

	if l.useColors {
		switch level {
		case WarnLevel:
			logMsg = colorYellow + logMsg + colorReset
		case ErrorLevel:
			logMsg = colorRed + logMsg + colorReset
		}
	}
	return logMsg
}

func (l *Logger) Debug(msg string, fields ...Fields) {
	if l.level <= DebugLevel {
		l.stdout.Println(l.format(DebugLevel, nil, msg, fields...))
	}
}

func (l *Logger) Info(msg string, fields ...Fields) {
	if l.level <= InfoLevel {
		l.stdout.Println(l.format(InfoLevel, nil, msg, fields...))
	}
}

func (l *Logger) Warn(msg string, fields ...Fields) {
	if l.level <= WarnLevel {
		l.stderr.Println(l.format(WarnLevel, nil, msg, fields...))
	}
}

func (l *Logger) Error(err error, msg string, fields ...Fields) {
	if l.level <= ErrorLevel {
		l.stderr.Println(l.format(ErrorLevel, err, msg, fields...))
	}
}
