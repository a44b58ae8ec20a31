package mockdata

import (
	// Go Internal Packages
	"fmt"
	"math"
	"math/rand/v2"
	"sort"
	"time"

	// Local Packages
	models "tap-terminal/models"
)

// HistoryDays is how many days back, today included, carry mock sales.
const HistoryDays = 7

// DayTransactions returns the mock sales of day. The same seed and day always
// give the same list so ids can be looked up again later. Days outside the
// last HistoryDays days are empty.
func (r *Random) DayTransactions(day, today time.Time) []models.Transaction {
	day = startOfDay(day)
	age := int(math.Round(startOfDay(today).Sub(day).Hours() / 24))
	if age < 0 || age >= HistoryDays {
		return nil
	}

	key := uint64(day.Year()*10000 + int(day.Month())*100 + day.Day())
	rng := rand.New(rand.NewPCG(r.seed, key))

	n := 15 + rng.IntN(11)
	completed := n * 85 / 100
	declined := rng.IntN(4)
	refunded := rng.IntN(2)

	txs := make([]models.Transaction, 0, completed+declined+refunded)
	add := func(status models.Status, maxDollars int) {
		amount := models.Cents(1000 + rng.IntN(maxDollars*100))
		at := day.Add(time.Duration(6+rng.IntN(12))*time.Hour + time.Duration(rng.IntN(60))*time.Minute)
		txs = append(txs, models.Transaction{
			ID:     fmt.Sprintf("TXN-%s-%03d", day.Format("20060102"), len(txs)+1),
			Amount: amount,
			Total:  amount,
			Method: models.MethodTap,
			Card: models.Card{
				Brand:    models.CardBrands[rng.IntN(len(models.CardBrands))],
				LastFour: fourDigits(rng.IntN(9000)),
			},
			Status:    status,
			CreatedAt: at,
			UpdatedAt: at,
			Mock:      true,
		})
	}
	for i := 0; i < completed; i++ {
		add(models.StatusComplete, 500)
	}
	for i := 0; i < declined; i++ {
		add(models.StatusDeclined, 300)
	}
	for i := 0; i < refunded; i++ {
		add(models.StatusRefunded, 200)
	}

	sort.SliceStable(txs, func(i, j int) bool { return txs[i].CreatedAt.After(txs[j].CreatedAt) })
	return txs
}

// MockDay extracts the day encoded in a mock transaction id.
func MockDay(id string, loc *time.Location) (time.Time, bool) {
	var date string
	var seq int
	if _, err := fmt.Sscanf(id, "TXN-%8s-%d", &date, &seq); err != nil {
		return time.Time{}, false
	}
	day, err := time.ParseInLocation("20060102", date, loc)
	if err != nil {
		return time.Time{}, false
	}
	return day, true
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
