package model

// SkippedRow records one source row the loader rejected. The pipeline never
// aborts on a bad row; it reports it and moves on.
type SkippedRow struct {
	Line   int    `json:"line"`
	App    string `json:"app,omitempty"`
	Column string `json:"column"`
	Value  string `json:"value"`
	Reason string `json:"reason"`
}
