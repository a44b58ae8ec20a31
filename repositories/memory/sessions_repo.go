package memory

import (
	// Go Internal Packages
	"context"
	"encoding/json"
	"sync"

	// Local Packages
	errors "tap-terminal/errors"
	models "tap-terminal/models"
)

// SessionsRepository keeps sessions encoded the same way the redis store
// does, so callers never share pointers with the stored copy.
type SessionsRepository struct {
	mu       sync.RWMutex
	sessions map[string][]byte
}

func NewSessionsRepository() *SessionsRepository {
	return &SessionsRepository{sessions: make(map[string][]byte)}
}

func (r *SessionsRepository) Save(_ context.Context, s models.Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.ID] = data
	return nil
}

func (r *SessionsRepository) Get(_ context.Context, id string) (models.Session, error) {
	r.mu.RLock()
	data, ok := r.sessions[id]
	r.mu.RUnlock()
	if !ok {
		return models.Session{}, errors.NotFoundErr("session", id)
	}

	var s models.Session
	if err := json.Unmarshal(data, &s); err != nil {
		return models.Session{}, errors.CorruptStateErr(id, err)
	}
	return s, nil
}

func (r *SessionsRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
	return nil
}
