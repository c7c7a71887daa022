package audit

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"
)

const eventTimeLayout = "02/01/2006 15:04:05"

// FileSink appends one human-readable line per event to a log file. Write
// failures are logged and swallowed; auditing never fails an operation.
type FileSink struct {
	path   string
	logger *slog.Logger
}

// NewFileSink creates a sink appending to the file at path.
func NewFileSink(path string, logger *slog.Logger) *FileSink {
	return &FileSink{path: path, logger: logger}
}

// RecordEvent appends the event line, creating the file if needed.
func (s *FileSink) RecordEvent(operation string, args []string, now time.Time) {
	line := fmt.Sprintf("[%s] - Operation: %s() || Arguments: %s\n",
		now.Format(eventTimeLayout), operation, strings.Join(args, ", "))

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		s.logger.Error("failed to open audit log", "path", s.path, "error", err)
		return
	}
	defer f.Close()

	if _, err := f.WriteString(line); err != nil {
		s.logger.Error("failed to write audit event", "path", s.path, "error", err)
	}
}

var _ Sink = (*FileSink)(nil)
