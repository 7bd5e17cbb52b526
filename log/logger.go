package log

import (
	"fmt"
	"io"
	stdlog "log"
	"os"
	"strings"

	"github.com/stremovskyy/go-nvp/nvp"
)

// Logger is a minimal printf-style logger used by the SDK.
//
// Implement this interface if you want to plug in your own logging (zap/logrus/etc).
// StdLogger also masks PWD, SIGNATURE, ACCT and CVV2 values in every line.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Level controls what gets written by StdLogger.
//
// The ordering is: Debug < Info < Warn < Error < Off.
// Any message below the configured level is ignored.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelOff
)

var levelNames = map[Level]string{
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO",
	LevelWarn:  "WARN",
	LevelError: "ERROR",
}

// ParseLevel accepts debug, info, warn, error and off.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	case "off", "none":
		return LevelOff, nil
	}
	return LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// StdLogger is a tiny default implementation of Logger using the standard library log package.
type StdLogger struct {
	l     *stdlog.Logger
	level Level
	tag   string
}

func NewStdLogger(w io.Writer, level Level) *StdLogger {
	if w == nil {
		w = os.Stderr
	}
	return &StdLogger{
		l:     stdlog.New(w, "", stdlog.LstdFlags),
		level: level,
		tag:   "PayPal NVP",
	}
}

func NewDefault() *StdLogger {
	return NewStdLogger(os.Stderr, LevelInfo)
}

func (s *StdLogger) SetLevel(level Level) {
	if s == nil {
		return
	}
	s.level = level
}

func (s *StdLogger) SetTag(tag string) {
	if s == nil {
		return
	}
	s.tag = tag
}

// printf writes one line at level. Credentials and card data in NVP bodies
// passed through args are masked.
func (s *StdLogger) printf(level Level, format string, args ...any) {
	if s == nil || s.level > level {
		return
	}
	line := format
	if s.tag != "" {
		line = s.tag + ": " + format
	}
	s.l.Print(levelNames[level] + ": " + nvp.Redact(fmt.Sprintf(line, args...)))
}

func (s *StdLogger) Debugf(format string, args ...any) { s.printf(LevelDebug, format, args...) }
func (s *StdLogger) Infof(format string, args ...any)  { s.printf(LevelInfo, format, args...) }
func (s *StdLogger) Warnf(format string, args ...any)  { s.printf(LevelWarn, format, args...) }
func (s *StdLogger) Errorf(format string, args ...any) { s.printf(LevelError, format, args...) }

// NopLogger discards all logs.
type NopLogger struct{}

func (NopLogger) Debugf(string, ...any) {}
func (NopLogger) Infof(string, ...any)  {}
func (NopLogger) Warnf(string, ...any)  {}
func (NopLogger) Errorf(string, ...any) {}
