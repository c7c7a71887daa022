package audit

import "time"

// Event is one recorded audit entry.
type Event struct {
	At        time.Time
	Operation string
	Args      []string
}

// Recorder keeps events in memory for tests.
type Recorder struct {
	Events []Event
}

// RecordEvent stores the event.
func (r *Recorder) RecordEvent(operation string, args []string, now time.Time) {
	r.Events = append(r.Events, Event{Operation: operation, Args: args, At: now})
}

var _ Sink = (*Recorder)(nil)
