package redis

import (
	// Go Internal Packages
	"context"
	"testing"
	"time"

	// Local Packages
	errors "tap-terminal/errors"
	models "tap-terminal/models"

	// External Packages
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSessionsRepository(t *testing.T) {
	ctx := context.Background()
	mr, client := newTestClient(t)
	repo := NewSessionsRepository(client, time.Hour)

	_, err := repo.Get(ctx, "nope")
	assert.Equal(t, errors.NotFound, errors.KindOf(err))

	s := models.Session{ID: "s1", Stage: models.StageMethodSelection, Amount: 1234, Memo: "hedge trim"}
	require.NoError(t, repo.Save(ctx, s))
	assert.Equal(t, time.Hour, mr.TTL("session:s1"))

	got, err := repo.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, s.Amount, got.Amount)
	assert.Equal(t, s.Stage, got.Stage)
	assert.Equal(t, "hedge trim", got.Memo)

	require.NoError(t, mr.Set("session:bad", "{not json"))
	_, err = repo.Get(ctx, "bad")
	assert.Equal(t, errors.InvalidState, errors.KindOf(err))

	mr.FastForward(2 * time.Hour)
	_, err = repo.Get(ctx, "s1")
	assert.Equal(t, errors.NotFound, errors.KindOf(err))

	require.NoError(t, repo.Save(ctx, s))
	require.NoError(t, repo.Delete(ctx, "s1"))
	assert.False(t, mr.Exists("session:s1"))
}

func TestDeadLetterQueue(t *testing.T) {
	ctx := context.Background()
	mr, client := newTestClient(t)
	dlq := NewDeadLetterQueue(client, zap.NewNop())

	require.NoError(t, dlq.Send(ctx, nil))
	require.NoError(t, dlq.Send(ctx, []models.Record{
		{Key: []byte("rcpt-1"), Value: []byte(`{"transaction_id":"TXN-1"}`), Topic: "receipt-shares"},
		{Key: []byte("rcpt-2"), Value: []byte(`{}`), Topic: "receipt-shares"},
	}))

	n, err := dlq.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	assert.True(t, mr.Exists("receipt:rcpt-1"))
}
