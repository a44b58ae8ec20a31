package kafka

import (
	// Go Internal Packages
	"context"
	"testing"

	// Local Packages
	models "tap-terminal/models"

	// External Packages
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type collector struct {
	got []models.Record
}

func (c *collector) ProcessRecords(_ context.Context, records []models.Record) error {
	c.got = append(c.got, records...)
	return nil
}

func TestLoopback(t *testing.T) {
	c := &collector{}
	lb := NewLoopback(c)

	require.NoError(t, lb.Publish(context.Background(), []models.Record{{Key: []byte("k"), Value: []byte("v")}}))
	require.Len(t, c.got, 1)
	assert.Equal(t, "k", string(c.got[0].Key))
}
