// Package mockdata generates the demo data that stands in for a processor
// backend: card details, daily transaction history, pending orders, the shop
// catalog, scanned loan contracts and dashboard figures.
package mockdata

import (
	// Go Internal Packages
	"math/rand/v2"
	"sync"
	"time"

	// Local Packages
	models "tap-terminal/models"
)

// Provider is implemented by anything that can feed the terminal with data.
// A real backend integration replaces Random behind this interface.
type Provider interface {
	Card() models.Card
	DayTransactions(day, today time.Time) []models.Transaction
	Orders() []models.Order
	RecentOrders() []models.Order
	Catalog() models.Catalog
	LoanDocument(now time.Time) models.ScannedDocument
	CompleteDocument(doc models.ScannedDocument, now time.Time) models.ScannedDocument
	RangeStats(r models.TimeRange) (RangeStats, bool)
}

var _ Provider = (*Random)(nil)

// Random is a seeded Provider. It is safe for concurrent use.
type Random struct {
	mu        sync.Mutex
	rng       *rand.Rand
	seed      uint64
	laborRate models.Cents
}

func NewRandom(seed uint64, laborRate models.Cents) *Random {
	if laborRate <= 0 {
		laborRate = 8500
	}
	return &Random{
		rng:       rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		seed:      seed,
		laborRate: laborRate,
	}
}

func (r *Random) intN(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.IntN(n)
}

func (r *Random) float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Float64()
}

// Card picks a brand and a four digit suffix between 1000 and 9999.
func (r *Random) Card() models.Card {
	return models.Card{
		Brand:    models.CardBrands[r.intN(len(models.CardBrands))],
		LastFour: fourDigits(r.intN(9000)),
	}
}

func fourDigits(n int) string {
	v := 1000 + n
	return string([]byte{byte('0' + v/1000), byte('0' + v/100%10), byte('0' + v/10%10), byte('0' + v%10)})
}
