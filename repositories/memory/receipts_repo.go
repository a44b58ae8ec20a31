package memory

import (
	// Go Internal Packages
	"context"
	"sync"

	// Local Packages
	models "tap-terminal/models"
)

// ReceiptsRepository keeps delivered receipts, ignoring repeated share ids.
type ReceiptsRepository struct {
	mu         sync.RWMutex
	deliveries map[string]models.ReceiptShare
	order      []string
}

func NewReceiptsRepository() *ReceiptsRepository {
	return &ReceiptsRepository{deliveries: make(map[string]models.ReceiptShare)}
}

func (r *ReceiptsRepository) InsertDeliveries(_ context.Context, shares []models.ReceiptShare) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range shares {
		if _, dup := r.deliveries[s.ShareID]; dup {
			continue
		}
		r.deliveries[s.ShareID] = s
		r.order = append(r.order, s.ShareID)
	}
	return nil
}

// Deliveries lists the stored receipts in arrival order.
func (r *ReceiptsRepository) Deliveries() []models.ReceiptShare {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.ReceiptShare, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.deliveries[id])
	}
	return out
}
