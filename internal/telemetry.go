package internal

import (
	"io"
	"time"

	"github.com/guilherme-santos/datecalc"
)

// LogTelemetry writes diagnostic events to w. NopTelemetry discards them.
type LogTelemetry struct {
	W io.Writer
}

func (t LogTelemetry) DateClippedTimeDifferenceFound(calendarID string, clipped time.Time) {
	Logf(t.W, "telemetry:", "clipping changed day of week (calendar=%s clipped=%s)",
		calendarID, clipped.Format(time.RFC3339))
}

type NopTelemetry struct{}

func (NopTelemetry) DateClippedTimeDifferenceFound(string, time.Time) {}

var _ datecalc.Telemetry = LogTelemetry{}
var _ datecalc.Telemetry = NopTelemetry{}
