// Package logging provides log/slog adapter for mot.Logger.
package logging

import (
	"log/slog"

	"github.com/LdDl/centroid-mot/mot"
)

// SlogLogger implements mot.Logger using Go's standard log/slog package.
type SlogLogger struct {
	logger *slog.Logger
}

var _ mot.Logger = (*SlogLogger)(nil)

// NewSlog wraps provided slog.Logger. Nil falls back to slog.Default().
//
// Example:
//
//	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
//	tracker, err := mot.NewCentroidTracker(cfg, mot.WithLogger(logging.NewSlog(slog.New(handler))))
func NewSlog(logger *slog.Logger) *SlogLogger {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogLogger{logger: logger}
}

// NewSlogDefault creates logger backed by slog.Default()
func NewSlogDefault() *SlogLogger {
	return &SlogLogger{logger: slog.Default()}
}

func (l *SlogLogger) Debug(msg string, keysAndValues ...any) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l *SlogLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Info(msg, keysAndValues...)
}

func (l *SlogLogger) Warn(msg string, keysAndValues ...any) {
	l.logger.Warn(msg, keysAndValues...)
}

func (l *SlogLogger) Error(msg string, keysAndValues ...any) {
	l.logger.Error(msg, keysAndValues...)
}
