package kafka

import (
	// Go Internal Packages
	"context"

	// Local Packages
	models "tap-terminal/models"
)

// Loopback hands published records straight to a processor. It stands in
// for the broker in demo mode.
type Loopback struct {
	processor RecordProcessor
}

func NewLoopback(processor RecordProcessor) *Loopback {
	return &Loopback{processor: processor}
}

func (l *Loopback) Publish(ctx context.Context, records []models.Record) error {
	return l.processor.ProcessRecords(ctx, records)
}
