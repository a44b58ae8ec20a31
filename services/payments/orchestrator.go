// Package payments drives a payment session through amount entry, method
// selection, tender simulation, tipping and confirmation.
package payments

import (
	// Go Internal Packages
	"context"
	stderrors "errors"
	"sync"
	"time"

	// Local Packages
	errors "tap-terminal/errors"
	models "tap-terminal/models"
	attachments "tap-terminal/services/attachments"
	tender "tap-terminal/services/tender"
	tipping "tap-terminal/services/tipping"

	// External Packages
	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
)

type SessionRepository interface {
	Save(ctx context.Context, s models.Session) error
	Get(ctx context.Context, id string) (models.Session, error)
	Delete(ctx context.Context, id string) error
}

type SettingsLoader interface {
	Load(ctx context.Context) (models.Settings, error)
}

// Recorder stores settled transactions.
type Recorder interface {
	Record(ctx context.Context, tx models.Transaction) error
}

type Simulator interface {
	Simulate(ctx context.Context, req tender.Request) (*tender.Task, error)
}

type Options struct {
	MaxAmount    models.Cents
	AutopayDelay time.Duration
}

// flight is a tender in progress. settled is closed once its outcome has
// been written to the session.
type flight struct {
	task    *tender.Task
	settled chan struct{}
}

// Orchestrator owns every session mutation. Changes are serialized by mu.
type Orchestrator struct {
	sessions    SessionRepository
	settings    SettingsLoader
	history     Recorder
	simulator   Simulator
	tips        *tipping.Calculator
	attachments *attachments.Service
	opts        Options
	logger      *zap.Logger
	now         func() time.Time

	mu      sync.Mutex
	flights map[string]*flight
}

func NewOrchestrator(
	sessions SessionRepository,
	settings SettingsLoader,
	history Recorder,
	simulator Simulator,
	tips *tipping.Calculator,
	attach *attachments.Service,
	opts Options,
	logger *zap.Logger,
) *Orchestrator {
	if opts.MaxAmount <= 0 {
		opts.MaxAmount = 999999
	}
	return &Orchestrator{
		sessions:    sessions,
		settings:    settings,
		history:     history,
		simulator:   simulator,
		tips:        tips,
		attachments: attach,
		opts:        opts,
		logger:      logger,
		now:         time.Now,
		flights:     make(map[string]*flight),
	}
}

// errUnchanged lets an update step return the session as is, without saving.
var errUnchanged = stderrors.New("unchanged")

// update loads a session, applies fn and saves the result.
func (o *Orchestrator) update(ctx context.Context, id string, fn func(s *models.Session) error) (models.Session, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.updateLocked(ctx, id, fn)
}

func (o *Orchestrator) updateLocked(ctx context.Context, id string, fn func(s *models.Session) error) (models.Session, error) {
	s, err := o.load(ctx, id)
	if err != nil {
		return models.Session{}, err
	}
	if err := fn(&s); err != nil {
		if err == errUnchanged {
			return o.overlay(s), nil
		}
		return models.Session{}, err
	}
	s.UpdatedAt = o.now()
	if err := o.sessions.Save(ctx, s); err != nil {
		return models.Session{}, errors.E(errors.Internal, "failed to save session", err)
	}
	return o.overlay(s), nil
}

func (o *Orchestrator) load(ctx context.Context, id string) (models.Session, error) {
	s, err := o.sessions.Get(ctx, id)
	if err != nil {
		if errors.KindOf(err) == errors.Other {
			return models.Session{}, errors.E(errors.Internal, "failed to load session", err)
		}
		return models.Session{}, err
	}
	return s, nil
}

// overlay shows the live phase of a running tender.
func (o *Orchestrator) overlay(s models.Session) models.Session {
	if f, ok := o.flights[s.ID]; ok && s.Tender.Phase == models.PhaseProcessing {
		if p := f.task.Phase(); p == models.PhaseComplete {
			s.Tender.Phase = p
		}
	}
	return s
}

// Start opens a new session at amount entry.
func (o *Orchestrator) Start(ctx context.Context) (models.Session, error) {
	settings, err := o.settings.Load(ctx)
	if err != nil {
		return models.Session{}, err
	}

	now := o.now()
	s := models.Session{
		ID:        uuid.NewString(),
		Site:      settings.SelectedSite,
		Stage:     models.StageAmountEntry,
		Source:    models.SourceKeypad,
		Tender:    models.Tender{Phase: models.PhaseIdle},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := o.sessions.Save(ctx, s); err != nil {
		return models.Session{}, errors.E(errors.Internal, "failed to save session", err)
	}
	o.logger.Debug("session started", zap.String("session_id", s.ID))
	return s, nil
}

func (o *Orchestrator) Get(ctx context.Context, id string) (models.Session, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	s, err := o.load(ctx, id)
	if err != nil {
		return models.Session{}, err
	}
	return o.overlay(s), nil
}

// Reset abandons the session and opens a fresh one ("New Payment"). A session
// with a tender in flight cannot be reset.
func (o *Orchestrator) Reset(ctx context.Context, id string) (models.Session, error) {
	o.mu.Lock()
	s, err := o.load(ctx, id)
	if err == nil && s.Tender.Phase == models.PhaseProcessing {
		err = errors.TransitionErr("start a new payment", "tender processing")
	}
	if err == nil {
		err = o.sessions.Delete(ctx, id)
	}
	o.mu.Unlock()
	if err != nil {
		return models.Session{}, err
	}
	return o.Start(ctx)
}

func newTransactionID() string {
	return "TXN-" + ulid.Make().String()
}
