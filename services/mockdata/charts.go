package mockdata

import (
	// Local Packages
	models "tap-terminal/models"
)

// RangeStats are the headline figures of the home screen for one range.
type RangeStats struct {
	Chart         []models.ChartPoint
	Transactions  string
	SuccessRate   string
	AverageTender string
	// Changes against the previous period for transactions, volume, success
	// rate and average tender, in that order.
	Changes [4]string
}

var rangeStats = map[models.TimeRange]RangeStats{
	models.Range1D: {
		Chart: []models.ChartPoint{
			{Label: "00:00", Volume: 1200, Previous: 1100},
			{Label: "04:00", Volume: 800, Previous: 700},
			{Label: "08:00", Volume: 2100, Previous: 1800},
			{Label: "12:00", Volume: 3400, Previous: 3200},
			{Label: "16:00", Volume: 2800, Previous: 2500},
			{Label: "20:00", Volume: 1800, Previous: 1600},
			{Label: "23:59", Volume: 900, Previous: 800},
		},
		Transactions: "156", SuccessRate: "96.2%", AverageTender: "$79.81",
		Changes: [4]string{"+12.3%", "+8.7%", "+1.4%", "+5.2%"},
	},
	models.Range1W: {
		Chart: []models.ChartPoint{
			{Label: "Mon", Volume: 3200, Previous: 2800},
			{Label: "Tue", Volume: 4100, Previous: 3500},
			{Label: "Wed", Volume: 3800, Previous: 3200},
			{Label: "Thu", Volume: 5200, Previous: 4800},
			{Label: "Fri", Volume: 6100, Previous: 5200},
			{Label: "Sat", Volume: 5800, Previous: 4900},
			{Label: "Sun", Volume: 4500, Previous: 3800},
		},
		Transactions: "1,359", SuccessRate: "94.8%", AverageTender: "$110.94",
		Changes: [4]string{"+15.2%", "+12.8%", "+2.1%", "+7.6%"},
	},
	models.Range1M: {
		Chart: []models.ChartPoint{
			{Label: "Week 1", Volume: 18500, Previous: 16200},
			{Label: "Week 2", Volume: 22100, Previous: 19800},
			{Label: "Week 3", Volume: 19800, Previous: 17500},
			{Label: "Week 4", Volume: 25600, Previous: 23100},
		},
		Transactions: "5,847", SuccessRate: "95.1%", AverageTender: "$147.12",
		Changes: [4]string{"+18.7%", "+14.3%", "+1.8%", "+9.2%"},
	},
	models.Range1Y: {
		Chart: []models.ChartPoint{
			{Label: "Jan", Volume: 85000, Previous: 72000},
			{Label: "Feb", Volume: 92000, Previous: 78000},
			{Label: "Mar", Volume: 88000, Previous: 75000},
			{Label: "Apr", Volume: 95000, Previous: 82000},
			{Label: "May", Volume: 102000, Previous: 88000},
			{Label: "Jun", Volume: 98000, Previous: 84000},
			{Label: "Jul", Volume: 105000, Previous: 91000},
			{Label: "Aug", Volume: 112000, Previous: 96000},
			{Label: "Sep", Volume: 108000, Previous: 93000},
			{Label: "Oct", Volume: 115000, Previous: 99000},
			{Label: "Nov", Volume: 118000, Previous: 102000},
			{Label: "Dec", Volume: 125000, Previous: 108000},
		},
		Transactions: "68,432", SuccessRate: "96.5%", AverageTender: "$181.89",
		Changes: [4]string{"+22.4%", "+19.8%", "+2.7%", "+12.3%"},
	},
}

func (r *Random) RangeStats(tr models.TimeRange) (RangeStats, bool) {
	s, ok := rangeStats[tr]
	if !ok {
		return RangeStats{}, false
	}
	s.Chart = append([]models.ChartPoint(nil), s.Chart...)
	return s, true
}
