// Package history lists the sales of a day and refunds settled payments.
package history

import (
	// Go Internal Packages
	"context"
	"sort"
	"strings"
	"time"

	// Local Packages
	config "tap-terminal/config"
	errors "tap-terminal/errors"
	models "tap-terminal/models"
	mockdata "tap-terminal/services/mockdata"
	utils "tap-terminal/utils"

	// External Packages
	"go.uber.org/zap"
)

// Days is how far back the day picker goes.
const Days = 90

// Filter narrows a day listing by status.
type Filter string

const (
	FilterAll      Filter = "all"
	FilterComplete Filter = "complete"
	FilterDeclined Filter = "declined"
	FilterRefunded Filter = "refunded"
)

// ParseFilter accepts a filter name in any case. Empty means all.
func ParseFilter(s string) (Filter, error) {
	switch f := Filter(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FilterAll, nil
	case FilterAll, FilterComplete, FilterDeclined, FilterRefunded:
		return f, nil
	default:
		return "", errors.E(errors.Invalid, "unknown status filter "+s, nil)
	}
}

func (f Filter) match(s models.Status) bool {
	return f == FilterAll || strings.EqualFold(string(f), string(s))
}

type Repository interface {
	Save(ctx context.Context, tx models.Transaction) error
	Get(ctx context.Context, id string) (models.Transaction, error)
	Between(ctx context.Context, from, to time.Time) ([]models.Transaction, error)
}

type Service struct {
	repo   Repository
	mock   mockdata.Provider
	delays config.Delays
	logger *zap.Logger
	now    func() time.Time
}

func NewService(repo Repository, mock mockdata.Provider, delays config.Delays, logger *zap.Logger) *Service {
	return &Service{repo: repo, mock: mock, delays: delays, logger: logger, now: time.Now}
}

// Record stores a settled transaction.
func (s *Service) Record(ctx context.Context, tx models.Transaction) error {
	if err := s.repo.Save(ctx, tx); err != nil {
		return errors.E(errors.Internal, "failed to save transaction", err)
	}
	return nil
}

// DaysAvailable lists the selectable days, today first.
func (s *Service) DaysAvailable() []time.Time {
	today := startOfDay(s.now())
	out := make([]time.Time, Days)
	for i := range out {
		out[i] = today.AddDate(0, 0, -i)
	}
	return out
}

// List returns the transactions of day matching filter, newest first. Stored
// records replace mock records with the same id.
func (s *Service) List(ctx context.Context, day time.Time, filter Filter) ([]models.Transaction, error) {
	from := startOfDay(day)
	to := from.AddDate(0, 0, 1)

	stored, err := s.repo.Between(ctx, from, to)
	if err != nil {
		return nil, errors.E(errors.Internal, "failed to list transactions", err)
	}

	byID := make(map[string]models.Transaction)
	for _, tx := range s.mock.DayTransactions(from, s.now()) {
		byID[tx.ID] = tx
	}
	for _, tx := range stored {
		byID[tx.ID] = tx
	}

	out := make([]models.Transaction, 0, len(byID))
	for _, tx := range byID {
		if filter.match(tx.Status) {
			out = append(out, tx)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// Get finds a stored transaction or regenerates the mock one.
func (s *Service) Get(ctx context.Context, id string) (models.Transaction, error) {
	tx, err := s.repo.Get(ctx, id)
	if err == nil {
		return tx, nil
	}
	if !errors.Is(errors.NotFound, err) {
		return models.Transaction{}, errors.E(errors.Internal, "failed to load transaction", err)
	}

	now := s.now()
	if day, ok := mockdata.MockDay(id, now.Location()); ok {
		for _, m := range s.mock.DayTransactions(day, now) {
			if m.ID == id {
				return m, nil
			}
		}
	}
	return models.Transaction{}, errors.NotFoundErr("transaction", id)
}

// Refund reverses a completed transaction after the simulated processor
// round trip.
func (s *Service) Refund(ctx context.Context, id string) (models.Transaction, error) {
	tx, err := s.Get(ctx, id)
	if err != nil {
		return models.Transaction{}, err
	}
	if tx.Status != models.StatusComplete {
		return models.Transaction{}, errors.E(errors.Conflict, "only completed transactions can be refunded, "+id+" is "+string(tx.Status), nil)
	}

	if err := utils.Sleep(ctx, s.delays.RefundProcessing); err != nil {
		return models.Transaction{}, err
	}
	if err := utils.Sleep(ctx, s.delays.RefundComplete); err != nil {
		return models.Transaction{}, err
	}

	tx.Status = models.StatusRefunded
	tx.UpdatedAt = s.now()
	if err := s.Record(ctx, tx); err != nil {
		return models.Transaction{}, err
	}
	tx.Mock = false

	s.logger.Info("transaction refunded", zap.String("transaction_id", id), zap.Stringer("amount", tx.Total))
	return tx, nil
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
