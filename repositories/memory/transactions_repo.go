package memory

import (
	// Go Internal Packages
	"context"
	"sort"
	"sync"
	"time"

	// Local Packages
	errors "tap-terminal/errors"
	models "tap-terminal/models"
)

type TransactionsRepository struct {
	mu  sync.RWMutex
	txs map[string]models.Transaction
}

func NewTransactionsRepository() *TransactionsRepository {
	return &TransactionsRepository{txs: make(map[string]models.Transaction)}
}

func (r *TransactionsRepository) Save(_ context.Context, tx models.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	tx.Mock = false
	r.txs[tx.ID] = tx
	return nil
}

func (r *TransactionsRepository) Get(_ context.Context, id string) (models.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tx, ok := r.txs[id]
	if !ok {
		return models.Transaction{}, errors.NotFoundErr("transaction", id)
	}
	return tx, nil
}

func (r *TransactionsRepository) Between(_ context.Context, from, to time.Time) ([]models.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.Transaction
	for _, tx := range r.txs {
		if !tx.CreatedAt.Before(from) && tx.CreatedAt.Before(to) {
			out = append(out, tx)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}
