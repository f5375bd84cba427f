package log

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

type LoggerImpl struct {
	mu     *sync.Mutex
	l      *logrus.Logger
	fields logrus.Fields
}

var defaultLogger *LoggerImpl
var defaultLoggerInit sync.Once

// Default returns the process-wide logger, created on first use at info level.
func Default() *LoggerImpl {
	defaultLoggerInit.Do(func() {
		defaultLogger = New()
	})
	return defaultLogger
}

// New creates a logrus-backed logger at info level writing to stderr.
func New() *LoggerImpl {
	l := &LoggerImpl{
		mu: &sync.Mutex{},
		l:  logrus.New(),
	}
	l.SetLevel(string(InfoLevel))
	return l
}

// NewWithLogger wraps an already configured logrus logger.
func NewWithLogger(l *logrus.Logger) *LoggerImpl {
	return &LoggerImpl{mu: &sync.Mutex{}, l: l}
}

func (l *LoggerImpl) decorate(skip int) *logrus.Entry {
	entry := l.l.WithFields(l.fields)
	if pc, file, line, ok := runtime.Caller(skip); ok {
		fName := runtime.FuncForPC(pc).Name()
		path := strings.Split(file, string(os.PathSeparator))
		var position string
		if len(path) > 3 {
			position = fmt.Sprintf("%s:%d", strings.Join(path[len(path)-3:], string(os.PathSeparator)), line)
		} else {
			position = fmt.Sprintf("%s:%d", strings.Join(path, string(os.PathSeparator)), line)
		}
		return entry.WithField("position", position).WithField("func", fName)
	}
	return entry
}

func (l *LoggerImpl) Trace(format string, v ...interface{}) {
	if !l.l.IsLevelEnabled(logrus.TraceLevel) {
		return
	}
	l.decorate(2).Tracef(format, v...)
}

func (l *LoggerImpl) Debug(format string, v ...interface{}) {
	if !l.l.IsLevelEnabled(logrus.DebugLevel) {
		return
	}
	l.decorate(2).Debugf(format, v...)
}

func (l *LoggerImpl) Info(format string, v ...interface{}) {
	if !l.l.IsLevelEnabled(logrus.InfoLevel) {
		return
	}
	l.decorate(2).Infof(format, v...)
}

func (l *LoggerImpl) Warn(format string, v ...interface{}) {
	if !l.l.IsLevelEnabled(logrus.WarnLevel) {
		return
	}
	l.decorate(2).Warnf(format, v...)
}

func (l *LoggerImpl) Error(format string, v ...interface{}) {
	if !l.l.IsLevelEnabled(logrus.ErrorLevel) {
		return
	}
	l.decorate(2).Errorf(format, v...)
}

// WithField shares the underlying logrus logger, so level and output changes
// on either logger apply to both.
func (l *LoggerImpl) WithField(key string, value interface{}) Logger {
	fields := make(logrus.Fields, len(l.fields)+1)
	for k, v := range l.fields {
		fields[k] = v
	}
	fields[key] = value
	return &LoggerImpl{mu: l.mu, l: l.l, fields: fields}
}

func (l *LoggerImpl) setLevel(level int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.l.SetLevel(logrus.Level(level))
}

func (l *LoggerImpl) SetLevel(level string) {
	switch strings.ToLower(level) {
	case string(TraceLevel):
		l.setLevel(LevelTrace)
	case string(DebugLevel):
		l.setLevel(LevelDebug)
	case string(InfoLevel):
		l.setLevel(LevelInfo)
	case string(WarnLevel):
		l.setLevel(LevelWarn)
	case string(ErrorLevel):
		l.setLevel(LevelError)
	default:
		l.setLevel(LevelInfo)
	}
}

func (l *LoggerImpl) GetLevel() int {
	return int(l.l.GetLevel())
}

func (l *LoggerImpl) SetOutput(out io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.l.SetOutput(out)
}

func (l *LoggerImpl) GetOutput() io.Writer {
	if l.l != nil && l.l.Out != nil {
		return l.l.Out
	}
	return nil
}

func (l *LoggerImpl) SetReportCaller(b bool) {
	l.l.SetReportCaller(b)
}

func (l *LoggerImpl) SetFormatter(formatter logrus.Formatter) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.l.SetFormatter(formatter)
}
