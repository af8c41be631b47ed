package model

import "time"

// ViewStatus tags a gated view result. A closed view is a state of its own,
// distinct from an open view that happened to match no records.
type ViewStatus string

const (
	ViewOpen   ViewStatus = "open"
	ViewClosed ViewStatus = "closed"
)

// ScatterPoint is one revenue-vs-installs point for a paid app.
type ScatterPoint struct {
	Installs uint64  `json:"installs"`
	Revenue  float64 `json:"revenue"`
	Category string  `json:"category"`
}

// ChoroplethRow is a per-country install total for one category.
type ChoroplethRow struct {
	Country  string `json:"country"`
	Category string `json:"category"`
	Installs uint64 `json:"installs"`
}

// TimeSeriesRow is one month of one category's install series.
type TimeSeriesRow struct {
	Category   string    `json:"category"`
	Month      time.Time `json:"month"`
	Installs   uint64    `json:"installs"`
	Growth     *float64  `json:"growth,omitempty"`
	HighGrowth bool      `json:"high_growth"`
}

// ScatterView is the assembled scatter table. It carries no status because
// the scatter view is never gated.
type ScatterView struct {
	Points []ScatterPoint `json:"points"`
}

// ChoroplethView is the assembled choropleth table, or a closed marker when
// its time window is shut.
type ChoroplethView struct {
	Status ViewStatus      `json:"status"`
	Rows   []ChoroplethRow `json:"rows,omitempty"`
}

// TimeSeriesView is the assembled time-series table, or a closed marker when
// its time window is shut.
type TimeSeriesView struct {
	Status ViewStatus      `json:"status"`
	Rows   []TimeSeriesRow `json:"rows,omitempty"`
}

// Report bundles all three views as computed for a single timestamp.
type Report struct {
	GeneratedAt time.Time      `json:"generated_at"`
	Scatter     ScatterView    `json:"scatter"`
	Choropleth  ChoroplethView `json:"choropleth"`
	TimeSeries  TimeSeriesView `json:"time_series"`
}
