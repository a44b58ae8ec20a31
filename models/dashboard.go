package models

type TimeRange string

const (
	Range1D TimeRange = "1D"
	Range1W TimeRange = "1W"
	Range1M TimeRange = "1M"
	Range1Y TimeRange = "1Y"
)

var TimeRanges = []TimeRange{Range1D, Range1W, Range1M, Range1Y}

// ChartPoint is the sales volume of one bucket against the previous period.
type ChartPoint struct {
	Label    string `json:"label"`
	Volume   int64  `json:"volume"`
	Previous int64  `json:"previous"`
}

type Metric struct {
	Title  string `json:"title"`
	Value  string `json:"value"`
	Change string `json:"change"`
}

type Dashboard struct {
	Range    TimeRange    `json:"range"`
	Chart    []ChartPoint `json:"chart"`
	Metrics  []Metric     `json:"metrics"`
	Total    string       `json:"total"`
	Growth   string       `json:"growth"`
	Positive bool         `json:"positive"`
}
