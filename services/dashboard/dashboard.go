// Package dashboard summarizes sales for the home screen.
package dashboard

import (
	// Go Internal Packages
	"fmt"
	"strings"

	// Local Packages
	errors "tap-terminal/errors"
	models "tap-terminal/models"
	mockdata "tap-terminal/services/mockdata"

	// External Packages
	"github.com/shopspring/decimal"
)

type Service struct {
	data mockdata.Provider
}

func NewService(data mockdata.Provider) *Service {
	return &Service{data: data}
}

// ParseRange accepts "1d", "1W" and so on. Empty means one day.
func ParseRange(s string) (models.TimeRange, error) {
	if s == "" {
		return models.Range1D, nil
	}
	r := models.TimeRange(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range models.TimeRanges {
		if r == known {
			return r, nil
		}
	}
	return "", errors.E(errors.Invalid, "unknown time range "+s, nil)
}

// Growth is (volume - previous) / previous * 100 rounded to one decimal.
func Growth(points []models.ChartPoint) decimal.Decimal {
	var volume, previous int64
	for _, p := range points {
		volume += p.Volume
		previous += p.Previous
	}
	if previous == 0 {
		return decimal.Zero
	}
	diff := decimal.NewFromInt(volume - previous)
	return diff.Div(decimal.NewFromInt(previous)).Mul(decimal.NewFromInt(100)).Round(1)
}

func (s *Service) Get(r models.TimeRange) (models.Dashboard, error) {
	stats, ok := s.data.RangeStats(r)
	if !ok {
		return models.Dashboard{}, errors.E(errors.Invalid, "unknown time range "+string(r), nil)
	}

	var volume int64
	for _, p := range stats.Chart {
		volume += p.Volume
	}
	total := models.Cents(volume * 100).String()
	growth := Growth(stats.Chart)

	return models.Dashboard{
		Range: r,
		Chart: stats.Chart,
		Metrics: []models.Metric{
			{Title: "Transactions", Value: stats.Transactions, Change: stats.Changes[0]},
			{Title: "Volume", Value: total, Change: stats.Changes[1]},
			{Title: "Success Rate", Value: stats.SuccessRate, Change: stats.Changes[2]},
			{Title: "Average Tender", Value: stats.AverageTender, Change: stats.Changes[3]},
		},
		Total:    total,
		Growth:   signed(growth) + "%",
		Positive: !growth.IsNegative(),
	}, nil
}

func signed(d decimal.Decimal) string {
	if d.IsNegative() {
		return d.StringFixed(1)
	}
	return fmt.Sprintf("+%s", d.StringFixed(1))
}
