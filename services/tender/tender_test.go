package tender

import (
	// Go Internal Packages
	"context"
	"testing"
	"time"

	// Local Packages
	config "tap-terminal/config"
	errors "tap-terminal/errors"
	models "tap-terminal/models"

	// External Packages
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fixedCard struct{}

func (fixedCard) Card() models.Card {
	return models.Card{Brand: models.BrandDiscover, LastFour: "6011"}
}

func fastDelays() config.Delays {
	step := config.Phases{Processing: 5 * time.Millisecond, Complete: 5 * time.Millisecond}
	return config.Delays{
		ProcessingTimeout: time.Second,
		Tap:               step,
		KeyIn:             config.Phases{},
		ACH:               step,
		CashApp:           step,
		PayPal:            step,
		Venmo:             step,
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		req  Request
		kind errors.Kind
	}{
		{name: "tap", req: Request{Method: models.MethodTap}},
		{name: "venmo", req: Request{Method: models.MethodVenmo}},
		{name: "unknown", req: Request{Method: "cash"}, kind: errors.Invalid},
		{name: "ach ok", req: Request{Method: models.MethodACH, AccountNumber: "000123456789", RoutingNumber: "021000021"}},
		{name: "ach missing", req: Request{Method: models.MethodACH, AccountNumber: "1234"}, kind: errors.Invalid},
		{name: "ach short routing", req: Request{Method: models.MethodACH, AccountNumber: "1234", RoutingNumber: "12345678"}, kind: errors.Invalid},
		{name: "ach long account", req: Request{Method: models.MethodACH, AccountNumber: "123456789012345678", RoutingNumber: "021000021"}, kind: errors.Invalid},
		{name: "card ok", req: Request{Method: models.MethodKeyIn, CardNumber: "4242 4242 4242 4242", Expiry: "12/27", CVV: "123"}},
		{name: "card raw expiry", req: Request{Method: models.MethodKeyIn, CardNumber: "4242424242424242", Expiry: "0128", CVV: "1234"}},
		{name: "card bad month", req: Request{Method: models.MethodKeyIn, CardNumber: "4242424242424242", Expiry: "13/27", CVV: "123"}, kind: errors.Invalid},
		{name: "card short", req: Request{Method: models.MethodKeyIn, CardNumber: "424242", Expiry: "12/27", CVV: "123"}, kind: errors.Invalid},
		{name: "card bad cvv", req: Request{Method: models.MethodKeyIn, CardNumber: "4242424242424242", Expiry: "12/27", CVV: "12"}, kind: errors.Invalid},
		{name: "card missing", req: Request{Method: models.MethodKeyIn}, kind: errors.Invalid},
		{name: "card amex grouped", req: Request{Method: models.MethodKeyIn, CardNumber: "3782 8224 6310 005", Expiry: "12/27", CVV: "1234"}},
		{name: "card odd grouping", req: Request{Method: models.MethodKeyIn, CardNumber: "4242-42-4242-4242-42", Expiry: "12/27", CVV: "123"}, kind: errors.Invalid},
		{name: "card uneven spaces", req: Request{Method: models.MethodKeyIn, CardNumber: "42424 24242 424242", Expiry: "12/27", CVV: "123"}, kind: errors.Invalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.req)
			if tt.kind == errors.Other {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.kind, errors.KindOf(err))
		})
	}
}

func TestDetectBrand(t *testing.T) {
	assert.Equal(t, models.BrandVisa, DetectBrand("4111 1111 1111 1111"))
	assert.Equal(t, models.BrandMastercard, DetectBrand("5555555555554444"))
	assert.Equal(t, models.BrandAmex, DetectBrand("378282246310005"))
	assert.Equal(t, models.BrandDiscover, DetectBrand("6011111111111117"))
	assert.Equal(t, models.CardBrand(""), DetectBrand("9999"))
}

func TestSimulateTap(t *testing.T) {
	sim := NewSimulator(fastDelays(), fixedCard{}, zap.NewNop())

	task, err := sim.Simulate(context.Background(), Request{Method: models.MethodTap})
	require.NoError(t, err)
	assert.Equal(t, models.PhaseProcessing, task.Phase())

	res, err := task.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.PhaseComplete, task.Phase())
	assert.Equal(t, models.MethodTap, res.Method)
	require.NotNil(t, res.Card)
	assert.Equal(t, "6011", res.Card.LastFour)
	assert.False(t, res.CompletedAt.Before(res.StartedAt))
}

func TestSimulateKeyIn(t *testing.T) {
	sim := NewSimulator(fastDelays(), fixedCard{}, zap.NewNop())

	task, err := sim.Simulate(context.Background(), Request{
		Method: models.MethodKeyIn, CardNumber: "5555 5555 5555 4444", Expiry: "09/29", CVV: "321",
	})
	require.NoError(t, err)
	res, err := task.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &models.Card{Brand: models.BrandMastercard, LastFour: "4444"}, res.Card)
}

func TestSimulatePhases(t *testing.T) {
	delays := fastDelays()
	delays.PayPal = config.Phases{Processing: 50 * time.Millisecond, Complete: 5 * time.Millisecond}
	sim := NewSimulator(delays, fixedCard{}, zap.NewNop())

	task, err := sim.Simulate(context.Background(), Request{Method: models.MethodPayPal})
	require.NoError(t, err)
	assert.Equal(t, models.PhaseProcessing, task.Phase())

	assert.Eventually(t, func() bool {
		return task.Phase() == models.PhaseComplete
	}, time.Second, time.Millisecond)

	_, err = task.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.PhaseComplete, task.Phase())
}

func TestSimulateRejectsInvalid(t *testing.T) {
	sim := NewSimulator(fastDelays(), fixedCard{}, zap.NewNop())
	task, err := sim.Simulate(context.Background(), Request{Method: models.MethodACH})
	require.Error(t, err)
	assert.Nil(t, task)
}

func TestSimulateTimeout(t *testing.T) {
	delays := fastDelays()
	delays.ProcessingTimeout = 10 * time.Millisecond
	delays.ACH = config.Phases{Processing: time.Second}
	sim := NewSimulator(delays, fixedCard{}, zap.NewNop())

	task, err := sim.Simulate(context.Background(), Request{Method: models.MethodACH, AccountNumber: "1234", RoutingNumber: "021000021"})
	require.NoError(t, err)

	_, err = task.Wait(context.Background())
	require.Error(t, err)
	assert.Equal(t, errors.Timeout, errors.KindOf(err))
	assert.Equal(t, models.PhaseFailed, task.Phase())
}

func TestSimulateCancelled(t *testing.T) {
	delays := fastDelays()
	delays.CashApp = config.Phases{Processing: time.Second}
	sim := NewSimulator(delays, fixedCard{}, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	task, err := sim.Simulate(ctx, Request{Method: models.MethodCashApp})
	require.NoError(t, err)
	cancel()

	_, err = task.Wait(context.Background())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, errors.Other, errors.KindOf(err))
}
