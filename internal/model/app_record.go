package model

import "time"

// AppType classifies a record as free or paid.
type AppType string

const (
	AppTypeFree AppType = "Free"
	AppTypePaid AppType = "Paid"
)

// AppRecord is one application's row from the source dataset. Records are
// built once at load time and never mutated; every transform downstream
// produces new slices.
type AppRecord struct {
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Installs    uint64    `json:"installs"`
	Price       float64   `json:"price"`
	Rating      *float64  `json:"rating,omitempty"`
	Reviews     uint64    `json:"reviews"`
	LastUpdated time.Time `json:"last_updated"`
	Country     string    `json:"country"`
	Type        AppType   `json:"type"`
}

// Revenue is price times installs for paid apps. Free apps always report
// zero, whatever noise the price column carried.
func (r AppRecord) Revenue() float64 {
	if r.Type != AppTypePaid {
		return 0
	}
	return r.Price * float64(r.Installs)
}
