package classifier

import (
	"fmt"
	"io"
	"time"
)

// CallEvent records metadata about a single classification call.
type CallEvent struct {
	Model     string
	Label     string
	LatencyMs int64
	Success   bool
	ErrorCode string
}

// Observer receives events about classifier calls for logging and metrics.
type Observer interface {
	OnCallComplete(event CallEvent)
}

// LogObserver writes classifier call events to an io.Writer.
type LogObserver struct {
	w io.Writer
}

// NewLogObserver creates an Observer that logs events to w.
func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{w: w}
}

func (o *LogObserver) OnCallComplete(event CallEvent) {
	ts := time.Now().UTC().Format(time.RFC3339)
	status := "ok"
	if !event.Success {
		status = "err:" + event.ErrorCode
	}
	fmt.Fprintf(o.w, "[%s] classifier_call model=%s label=%s latency_ms=%d status=%s\n",
		ts, event.Model, event.Label, event.LatencyMs, status)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(CallEvent) {}
