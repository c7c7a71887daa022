package audit

import (
	"log/slog"
	"time"
)

// SlogSink mirrors audit events into the structured application log.
type SlogSink struct {
	logger *slog.Logger
}

// NewSlogSink creates a sink logging through the given logger.
func NewSlogSink(logger *slog.Logger) *SlogSink {
	return &SlogSink{logger: logger}
}

// RecordEvent logs the event at debug level, keeping the interactive
// session quiet unless verbose logging is enabled.
func (s *SlogSink) RecordEvent(operation string, args []string, now time.Time) {
	s.logger.Debug("operation invoked",
		"operation", operation,
		"arguments", args,
		"at", now.Format(eventTimeLayout),
	)
}

var _ Sink = (*SlogSink)(nil)
