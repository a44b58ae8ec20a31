package redis

import (
	// Go Internal Packages
	"context"
	"encoding/json"
	"fmt"
	"time"

	// Local Packages
	errors "tap-terminal/errors"
	models "tap-terminal/models"

	// External Packages
	"github.com/redis/go-redis/v9"
)

// SessionsRepository stores each payment session as JSON under
// "session:{id}". Sessions expire ttl after their last change.
type SessionsRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSessionsRepository(client *redis.Client, ttl time.Duration) *SessionsRepository {
	return &SessionsRepository{client: client, ttl: ttl}
}

func sessionKey(id string) string {
	return fmt.Sprintf("session:%s", id)
}

func (r *SessionsRepository) Save(ctx context.Context, s models.Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, sessionKey(s.ID), data, r.ttl).Err()
}

func (r *SessionsRepository) Get(ctx context.Context, id string) (models.Session, error) {
	data, err := r.client.Get(ctx, sessionKey(id)).Bytes()
	if err == redis.Nil {
		return models.Session{}, errors.NotFoundErr("session", id)
	}
	if err != nil {
		return models.Session{}, err
	}

	var s models.Session
	if err := json.Unmarshal(data, &s); err != nil {
		return models.Session{}, errors.CorruptStateErr(id, err)
	}
	return s, nil
}

func (r *SessionsRepository) Delete(ctx context.Context, id string) error {
	return r.client.Del(ctx, sessionKey(id)).Err()
}
