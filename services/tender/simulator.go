// Package tender simulates the processing of each payment method: a card tap,
// a keyed card, an ACH transfer and the wallet apps.
package tender

import (
	// Go Internal Packages
	"context"
	"time"

	// Local Packages
	config "tap-terminal/config"
	errors "tap-terminal/errors"
	models "tap-terminal/models"
	utils "tap-terminal/utils"

	// External Packages
	"go.uber.org/zap"
)

// CardSource hands out the card presented on a tap.
type CardSource interface {
	Card() models.Card
}

type Simulator struct {
	profiles map[models.Method]config.Phases
	timeout  time.Duration
	cards    CardSource
	logger   *zap.Logger
	now      func() time.Time
}

func NewSimulator(delays config.Delays, cards CardSource, logger *zap.Logger) *Simulator {
	return &Simulator{
		profiles: map[models.Method]config.Phases{
			models.MethodTap:     delays.Tap,
			models.MethodKeyIn:   delays.KeyIn,
			models.MethodACH:     delays.ACH,
			models.MethodCashApp: delays.CashApp,
			models.MethodPayPal:  delays.PayPal,
			models.MethodVenmo:   delays.Venmo,
		},
		timeout: delays.ProcessingTimeout,
		cards:   cards,
		logger:  logger,
		now:     time.Now,
	}
}

// Simulate validates req and starts the tender. The returned task keeps
// running after the call returns; cancelling ctx aborts it.
func (s *Simulator) Simulate(ctx context.Context, req Request) (*Task, error) {
	if err := Validate(req); err != nil {
		return nil, err
	}

	task := newTask(req.Method)
	task.setPhase(models.PhaseProcessing)
	go s.run(ctx, task, req)
	return task, nil
}

func (s *Simulator) run(parent context.Context, task *Task, req Request) {
	ctx := parent
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(parent, s.timeout)
		defer cancel()
	}

	profile := s.profiles[req.Method]
	res := Result{Method: req.Method, StartedAt: s.now()}
	logger := s.logger.With(zap.String("method", string(req.Method)))

	if err := utils.Sleep(ctx, profile.Processing); err != nil {
		task.finish(Result{}, s.abortErr(parent, req.Method, err))
		logger.Warn("tender aborted while processing", zap.Error(err))
		return
	}

	res.Card = s.card(req)
	task.setPhase(models.PhaseComplete)

	if err := utils.Sleep(ctx, profile.Complete); err != nil {
		task.finish(Result{}, s.abortErr(parent, req.Method, err))
		logger.Warn("tender aborted before completion", zap.Error(err))
		return
	}

	res.CompletedAt = s.now()
	task.finish(res, nil)
	logger.Debug("tender complete", zap.Duration("took", res.CompletedAt.Sub(res.StartedAt)))
}

func (s *Simulator) card(req Request) *models.Card {
	switch req.Method {
	case models.MethodTap:
		c := s.cards.Card()
		return &c
	case models.MethodKeyIn:
		return &models.Card{Brand: DetectBrand(req.CardNumber), LastFour: utils.LastFour(req.CardNumber)}
	case models.MethodACH:
		return &models.Card{LastFour: utils.LastFour(req.AccountNumber)}
	default:
		return nil
	}
}

// abortErr tells a processing timeout apart from the caller giving up.
func (s *Simulator) abortErr(parent context.Context, method models.Method, err error) error {
	if parent.Err() == nil && err == context.DeadlineExceeded {
		return errors.ProcessingTimeoutErr(string(method), err)
	}
	return err
}
