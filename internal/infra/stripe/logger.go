package stripe

import (
	"context"
	"fmt"
	"log/slog"

	stripego "github.com/stripe/stripe-go/v81"
)

// leveledLogger routes the SDK's own logging into slog.
type leveledLogger struct {
	logger *slog.Logger
}

var _ stripego.LeveledLoggerInterface = (*leveledLogger)(nil)

func newLeveledLogger(logger *slog.Logger) *leveledLogger {
	if logger == nil {
		logger = slog.Default()
	}

	return &leveledLogger{logger: logger.With(slog.String("component", "stripe"))}
}

func (l *leveledLogger) Debugf(format string, v ...interface{}) {
	l.log(slog.LevelDebug, format, v...)
}

func (l *leveledLogger) Infof(format string, v ...interface{}) {
	// The SDK logs every request at info; keep those out of the service log.
	l.log(slog.LevelDebug, format, v...)
}

func (l *leveledLogger) Warnf(format string, v ...interface{}) {
	l.log(slog.LevelWarn, format, v...)
}

func (l *leveledLogger) Errorf(format string, v ...interface{}) {
	l.log(slog.LevelError, format, v...)
}

func (l *leveledLogger) log(level slog.Level, format string, v ...interface{}) {
	if !l.logger.Enabled(context.Background(), level) {
		return
	}
	l.logger.Log(context.Background(), level, fmt.Sprintf(format, v...))
}
