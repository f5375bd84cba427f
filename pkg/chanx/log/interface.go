package log

import "io"

const (
	LevelPanic = iota
	LevelFatal
	LevelError
	LevelWarn
	LevelInfo
	LevelDebug
	LevelTrace
)

type level string

const (
	TraceLevel level = "trace"
	DebugLevel level = "debug"
	InfoLevel  level = "info"
	WarnLevel  level = "warn"
	ErrorLevel level = "error"
)

// Logger is the logging surface used by channels and pipes.
type Logger interface {
	Trace(format string, v ...interface{})

	Debug(format string, v ...interface{})

	Info(format string, v ...interface{})

	Warn(format string, v ...interface{})

	Error(format string, v ...interface{})

	// WithField returns a logger that adds key=value to every entry.
	WithField(key string, value interface{}) Logger

	SetLevel(level string)

	GetLevel() int

	SetOutput(out io.Writer)

	GetOutput() io.Writer
}
