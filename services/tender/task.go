package tender

import (
	// Go Internal Packages
	"context"
	"sync"
	"time"

	// Local Packages
	models "tap-terminal/models"
)

// Result is the outcome of a finished tender.
type Result struct {
	Method      models.Method `json:"method"`
	Card        *models.Card  `json:"card,omitempty"`
	StartedAt   time.Time     `json:"started_at"`
	CompletedAt time.Time     `json:"completed_at"`
}

// Task is a tender running in the background. Result is only meaningful once
// the task has finished.
type Task struct {
	method models.Method
	done   chan struct{}

	mu     sync.RWMutex
	phase  models.TenderPhase
	result Result
	err    error
}

func newTask(method models.Method) *Task {
	return &Task{method: method, done: make(chan struct{}), phase: models.PhaseIdle}
}

func (t *Task) Method() models.Method {
	return t.method
}

func (t *Task) Phase() models.TenderPhase {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.phase
}

// Result returns the outcome. Before the task finishes it returns a zero
// result and a nil error.
func (t *Task) Result() (Result, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.result, t.err
}

// Wait blocks until the task finishes or ctx is done.
func (t *Task) Wait(ctx context.Context) (Result, error) {
	select {
	case <-t.done:
		return t.Result()
	case <-ctx.Done():
		return Result{}, ctx.Err()
	}
}

func (t *Task) setPhase(p models.TenderPhase) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.phase = p
}

func (t *Task) finish(res Result, err error) {
	t.mu.Lock()
	t.result, t.err = res, err
	t.mu.Unlock()

	if err != nil {
		t.setPhase(models.PhaseFailed)
	}
	close(t.done)
}
