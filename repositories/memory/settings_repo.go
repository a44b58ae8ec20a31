// Package memory holds in-process repositories used in demo mode and tests.
package memory

import (
	// Go Internal Packages
	"context"
	"sync"
)

type SettingsRepository struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewSettingsRepository() *SettingsRepository {
	return &SettingsRepository{values: make(map[string]string)}
}

func (r *SettingsRepository) All(_ context.Context) (map[string]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]string, len(r.values))
	for k, v := range r.values {
		out[k] = v
	}
	return out, nil
}

func (r *SettingsRepository) Set(_ context.Context, values map[string]string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for k, v := range values {
		r.values[k] = v
	}
	return nil
}

func (r *SettingsRepository) Delete(_ context.Context, keys ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, k := range keys {
		delete(r.values, k)
	}
	return nil
}
