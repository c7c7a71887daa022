// Package audit provides the sink the operation layer reports every
// externally invoked operation to. Sinks are logging side effects only and
// never influence control flow.
package audit

import "time"

// Sink receives one event per externally invoked operation, after the
// operation returns, success and failure alike.
type Sink interface {
	RecordEvent(operation string, args []string, now time.Time)
}

// Multi fans one event out to several sinks in order.
type Multi []Sink

// RecordEvent forwards the event to every sink.
func (m Multi) RecordEvent(operation string, args []string, now time.Time) {
	for _, s := range m {
		s.RecordEvent(operation, args, now)
	}
}

var _ Sink = Multi(nil)
