package memory

import (
	// Go Internal Packages
	"context"
	"sync"

	// Local Packages
	models "tap-terminal/models"
)

// DeadLetterQueue holds parked records in process.
type DeadLetterQueue struct {
	mu      sync.Mutex
	records []models.Record
}

func NewDeadLetterQueue() *DeadLetterQueue {
	return &DeadLetterQueue{}
}

func (q *DeadLetterQueue) Send(_ context.Context, records []models.Record) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.records = append(q.records, records...)
	return nil
}

func (q *DeadLetterQueue) Len(_ context.Context) (int64, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return int64(len(q.records)), nil
}
