package notify

import (
	"io"
	"log"

	"autodrill/internal/domain/drill"
)

// LogSink writes drill notifications to a prefixed logger.
type LogSink struct {
	logger *log.Logger
}

func NewLogSink(w io.Writer) LogSink {
	return LogSink{logger: log.New(w, "[drill] ", log.LstdFlags)}
}

func (s LogSink) Notify(n drill.Notification) {
	s.logger.Printf("%s %s: %s", n.Severity, n.DrillID, n.Text)
}

// Fanout forwards every notification to each sink in order.
type Fanout []drill.Notifier

func (f Fanout) Notify(n drill.Notification) {
	for _, s := range f {
		if s != nil {
			s.Notify(n)
		}
	}
}
