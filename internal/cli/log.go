package cli

import (
	"context"
	"io"

	charmlog "github.com/charmbracelet/log"

	sdklog "github.com/stremovskyy/go-nvp/log"
)

// newLogger creates a logger with timestamp formatting.
func newLogger(w io.Writer, level charmlog.Level) *charmlog.Logger {
	return charmlog.NewWithOptions(w, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
		Prefix:          "nvp",
	})
}

// sdkLogger lets the SDK client write through a charm logger.
type sdkLogger struct{ l *charmlog.Logger }

var _ sdklog.Logger = sdkLogger{}

func (s sdkLogger) Debugf(format string, args ...any) { s.l.Debugf(format, args...) }
func (s sdkLogger) Infof(format string, args ...any)  { s.l.Infof(format, args...) }
func (s sdkLogger) Warnf(format string, args ...any)  { s.l.Warnf(format, args...) }
func (s sdkLogger) Errorf(format string, args ...any) { s.l.Errorf(format, args...) }

// SetLevel maps SDK levels onto charm levels.
func (s sdkLogger) SetLevel(level sdklog.Level) {
	switch level {
	case sdklog.LevelDebug:
		s.l.SetLevel(charmlog.DebugLevel)
	case sdklog.LevelInfo:
		s.l.SetLevel(charmlog.InfoLevel)
	case sdklog.LevelWarn:
		s.l.SetLevel(charmlog.WarnLevel)
	case sdklog.LevelError:
		s.l.SetLevel(charmlog.ErrorLevel)
	default:
		s.l.SetLevel(charmlog.FatalLevel)
	}
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *charmlog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext falls back to charmlog.Default().
func loggerFromContext(ctx context.Context) *charmlog.Logger {
	if l, ok := ctx.Value(loggerKey).(*charmlog.Logger); ok {
		return l
	}
	return charmlog.Default()
}
