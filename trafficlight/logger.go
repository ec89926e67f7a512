package trafficlight

import (
	"fmt"
	"log"
	"log/slog"
)

type Logger interface {
	Error(format string, args ...any)
	Warn(format string, args ...any)
	Info(format string, args ...any)
}

type myLogger struct{}

func (myLogger) Error(format string, args ...any) {
	log.Printf("ERROR "+format, args...)
}

func (myLogger) Warn(format string, args ...any) {
	log.Printf("WARN "+format, args...)
}

func (myLogger) Info(format string, args ...any) {
	log.Printf("INFO "+format, args...)
}

// SlogLogger routes the formatted messages to a structured logger.
type SlogLogger struct {
	logger *slog.Logger
}

// NewSlogLogger wraps logger. A nil logger discards everything.
func NewSlogLogger(logger *slog.Logger) SlogLogger {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return SlogLogger{logger: logger}
}

func (l SlogLogger) Error(format string, args ...any) {
	l.logger.Error(fmt.Sprintf(format, args...))
}

func (l SlogLogger) Warn(format string, args ...any) {
	l.logger.Warn(fmt.Sprintf(format, args...))
}

func (l SlogLogger) Info(format string, args ...any) {
	l.logger.Info(fmt.Sprintf(format, args...))
}
