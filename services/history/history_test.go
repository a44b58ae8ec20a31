package history

import (
	// Go Internal Packages
	"context"
	"testing"
	"time"

	// Local Packages
	config "tap-terminal/config"
	errors "tap-terminal/errors"
	models "tap-terminal/models"
	memory "tap-terminal/repositories/memory"
	mockdata "tap-terminal/services/mockdata"

	// External Packages
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var today = time.Date(2024, time.January, 15, 15, 30, 0, 0, time.UTC)

func newService(t *testing.T) (*Service, *memory.TransactionsRepository) {
	t.Helper()
	repo := memory.NewTransactionsRepository()
	svc := NewService(repo, mockdata.NewRandom(99, 0), config.Delays{}, zap.NewNop())
	svc.now = func() time.Time { return today }
	return svc, repo
}

func TestParseFilter(t *testing.T) {
	f, err := ParseFilter("")
	require.NoError(t, err)
	assert.Equal(t, FilterAll, f)

	f, err = ParseFilter("Declined")
	require.NoError(t, err)
	assert.Equal(t, FilterDeclined, f)

	_, err = ParseFilter("pending")
	assert.Equal(t, errors.Invalid, errors.KindOf(err))
}

func TestListMergesStored(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	mock, err := svc.List(ctx, today, FilterAll)
	require.NoError(t, err)
	require.NotEmpty(t, mock)

	tx := models.Transaction{
		ID: "TXN-01HMABCDEF", Amount: 10000, Fee: 399, Tip: 1500, Total: 11899,
		Method: models.MethodTap, Status: models.StatusComplete,
		CreatedAt: today.Add(-time.Minute),
	}
	require.NoError(t, svc.Record(ctx, tx))

	all, err := svc.List(ctx, today, FilterAll)
	require.NoError(t, err)
	assert.Len(t, all, len(mock)+1)

	yesterday, err := svc.List(ctx, today.AddDate(0, 0, -1), FilterAll)
	require.NoError(t, err)
	for _, got := range yesterday {
		assert.NotEqual(t, tx.ID, got.ID)
	}

	declined, err := svc.List(ctx, today, FilterDeclined)
	require.NoError(t, err)
	for _, got := range declined {
		assert.Equal(t, models.StatusDeclined, got.Status)
	}

	old, err := svc.List(ctx, today.AddDate(0, 0, -30), FilterAll)
	require.NoError(t, err)
	assert.Empty(t, old)
}

func TestGetMock(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	list, err := svc.List(ctx, today.AddDate(0, 0, -2), FilterAll)
	require.NoError(t, err)
	require.NotEmpty(t, list)

	got, err := svc.Get(ctx, list[0].ID)
	require.NoError(t, err)
	assert.Equal(t, list[0], got)

	_, err = svc.Get(ctx, "TXN-20240115-999")
	assert.Equal(t, errors.NotFound, errors.KindOf(err))
}

func TestRefund(t *testing.T) {
	ctx := context.Background()
	svc, repo := newService(t)

	list, err := svc.List(ctx, today, FilterComplete)
	require.NoError(t, err)
	require.NotEmpty(t, list)
	target := list[0]

	refunded, err := svc.Refund(ctx, target.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusRefunded, refunded.Status)
	assert.False(t, refunded.Mock)

	stored, err := repo.Get(ctx, target.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusRefunded, stored.Status)

	after, err := svc.List(ctx, today, FilterAll)
	require.NoError(t, err)
	count := 0
	for _, tx := range after {
		if tx.ID == target.ID {
			count++
			assert.Equal(t, models.StatusRefunded, tx.Status)
		}
	}
	assert.Equal(t, 1, count)

	_, err = svc.Refund(ctx, target.ID)
	assert.Equal(t, errors.Conflict, errors.KindOf(err))
}

func TestRefundCancelled(t *testing.T) {
	svc, _ := newService(t)
	svc.delays.RefundProcessing = time.Hour

	list, err := svc.List(context.Background(), today, FilterComplete)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = svc.Refund(ctx, list[0].ID)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDaysAvailable(t *testing.T) {
	svc, _ := newService(t)
	days := svc.DaysAvailable()
	require.Len(t, days, Days)
	assert.Equal(t, time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC), days[0])
	assert.Equal(t, time.Date(2023, time.October, 18, 0, 0, 0, 0, time.UTC), days[Days-1])
}
