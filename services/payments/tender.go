package payments

import (
	// Go Internal Packages
	"context"

	// Local Packages
	errors "tap-terminal/errors"
	models "tap-terminal/models"
	tender "tap-terminal/services/tender"

	// External Packages
	"go.uber.org/zap"
)

// SelectMethod picks the tender. The method may be changed until the tender
// starts.
func (o *Orchestrator) SelectMethod(ctx context.Context, id string, method models.Method) (models.Session, error) {
	if !method.Valid() {
		return models.Session{}, errors.E(errors.Invalid, "unknown payment method "+string(method), nil)
	}
	return o.update(ctx, id, func(s *models.Session) error {
		switch s.Stage {
		case models.StageMethodSelection:
		case models.StageTenderSimulation:
			if s.Tender.Method == method {
				return errUnchanged
			}
			if s.Tender.Phase != models.PhaseIdle && s.Tender.Phase != models.PhaseFailed {
				return errors.TransitionErr("change the payment method", "tender "+string(s.Tender.Phase))
			}
		default:
			return errors.TransitionErr("select a payment method", string(s.Stage))
		}
		s.Stage = models.StageTenderSimulation
		s.Tender = models.Tender{Method: method, Phase: models.PhaseIdle}
		return nil
	})
}

// Simulate starts the tender of the selected method. Calling it again while
// the tender runs, or once it has completed, returns the current session.
// The tender outlives ctx; use Await to block until it settles.
func (o *Orchestrator) Simulate(ctx context.Context, id string, req tender.Request) (models.Session, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	s, err := o.load(ctx, id)
	if err != nil {
		return models.Session{}, err
	}
	switch s.Stage {
	case models.StageTipping, models.StageConfirmation:
		return o.overlay(s), nil
	case models.StageTenderSimulation:
	default:
		return models.Session{}, errors.TransitionErr("process a payment", string(s.Stage))
	}
	if s.Tender.Phase == models.PhaseProcessing || s.Tender.Phase == models.PhaseComplete {
		return o.overlay(s), nil
	}

	if req.Method == "" {
		req.Method = s.Tender.Method
	}
	if req.Method != s.Tender.Method {
		return models.Session{}, errors.E(errors.Invalid, "request is for "+string(req.Method)+" but "+string(s.Tender.Method)+" is selected", nil)
	}

	detached := context.WithoutCancel(ctx)
	task, err := o.simulator.Simulate(detached, req)
	if err != nil {
		return models.Session{}, err
	}

	s.Tender.Phase = models.PhaseProcessing
	s.Tender.Error = ""
	s.Tender.Card = nil
	s.Tender.Started = o.now()
	s.UpdatedAt = s.Tender.Started
	if err := o.sessions.Save(ctx, s); err != nil {
		return models.Session{}, errors.E(errors.Internal, "failed to save session", err)
	}

	f := &flight{task: task, settled: make(chan struct{})}
	o.flights[id] = f
	go o.settle(detached, id, f)

	o.logger.Info("tender started", zap.String("session_id", id), zap.String("method", string(req.Method)), zap.Stringer("amount", s.Amount))
	return o.overlay(s), nil
}

// Await blocks until the running tender of the session settles, then returns
// the session. Without a running tender it returns immediately.
func (o *Orchestrator) Await(ctx context.Context, id string) (models.Session, error) {
	o.mu.Lock()
	f, ok := o.flights[id]
	o.mu.Unlock()

	if ok {
		select {
		case <-f.settled:
		case <-ctx.Done():
			return models.Session{}, ctx.Err()
		}
	}
	return o.Get(ctx, id)
}

// settle writes the outcome of a finished tender to the session.
func (o *Orchestrator) settle(ctx context.Context, id string, f *flight) {
	res, taskErr := f.task.Wait(ctx)
	defer close(f.settled)

	o.mu.Lock()
	defer o.mu.Unlock()
	if o.flights[id] == f {
		delete(o.flights, id)
	}

	logger := o.logger.With(zap.String("session_id", id), zap.String("method", string(f.task.Method())))

	_, err := o.updateLocked(ctx, id, func(s *models.Session) error {
		if s.Stage != models.StageTenderSimulation || s.Tender.Phase != models.PhaseProcessing {
			return errUnchanged
		}
		s.Tender.Finished = o.now()
		if taskErr != nil {
			s.Tender.Phase = models.PhaseFailed
			s.Tender.Error = taskErr.Error()
			return nil
		}

		s.Tender.Phase = models.PhaseComplete
		s.Tender.Card = res.Card

		settings, err := o.settings.Load(ctx)
		if err != nil {
			return err
		}
		if settings.TippingEnabled {
			s.Stage = models.StageTipping
			return nil
		}
		tip, err := o.tips.Quote(s.Amount, models.TipSelection{})
		if err != nil {
			return err
		}
		return o.finalize(ctx, s, tip)
	})
	if err != nil {
		logger.Error("failed to settle tender", zap.Error(err))
		o.failTender(ctx, id, err, logger)
		return
	}
	if taskErr != nil {
		logger.Warn("tender failed", zap.Error(taskErr))
		return
	}
	logger.Info("tender complete")
}

// failTender marks a processing tender as failed so the operator can retry,
// go back or reset. mu must be held.
func (o *Orchestrator) failTender(ctx context.Context, id string, cause error, logger *zap.Logger) {
	_, err := o.updateLocked(ctx, id, func(s *models.Session) error {
		if s.Stage != models.StageTenderSimulation || s.Tender.Phase != models.PhaseProcessing {
			return errUnchanged
		}
		s.Tender.Phase = models.PhaseFailed
		s.Tender.Error = "payment could not be completed: " + cause.Error()
		s.Tender.Finished = o.now()
		return nil
	})
	if err != nil {
		logger.Error("failed to mark tender as failed", zap.Error(err))
	}
}
