package model

import "time"

// CategoryAggregate is a per-category install rollup. Growth is nil when no
// prior period exists for the category.
type CategoryAggregate struct {
	Category      string   `json:"category"`
	TotalInstalls uint64   `json:"total_installs"`
	RecordCount   int      `json:"record_count"`
	Growth        *float64 `json:"growth,omitempty"`
	Rank          int      `json:"rank"`
}

// TimeBucket holds total installs for one (category, calendar month) pair.
// Growth is the fractional change versus the category's previous bucket; nil
// means no prior bucket or a zero-install prior, which is absence of signal,
// not zero growth.
type TimeBucket struct {
	Category   string    `json:"category"`
	Month      time.Time `json:"month"`
	Installs   uint64    `json:"installs"`
	Growth     *float64  `json:"growth,omitempty"`
	HighGrowth bool      `json:"high_growth"`
}
