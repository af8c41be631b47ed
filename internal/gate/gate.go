// Package gate decides, from a supplied timestamp, which optional views are
// currently available. It never reads the system clock itself.
package gate

import "time"

// View identifies one of the dashboard views.
type View string

const (
	ScatterView    View = "scatter"
	ChoroplethView View = "choropleth"
	TimeSeriesView View = "timeseries"
)

// IST is the fixed reference zone all gating decisions are made in.
var IST = time.FixedZone("IST", 5*3600+30*60)

// window is a half-open [OpenHour, CloseHour) range of local hours.
type window struct {
	OpenHour  int
	CloseHour int
}

// Gate maps views to their daily availability windows. The zero set of
// windows means a view is always open.
type Gate struct {
	loc     *time.Location
	windows map[View]window
}

// New returns the production gate: choropleth open 18:00-20:00 IST,
// time series 18:00-21:00 IST, scatter ungated.
func New() *Gate {
	return &Gate{
		loc: IST,
		windows: map[View]window{
			ChoroplethView: {OpenHour: 18, CloseHour: 20},
			TimeSeriesView: {OpenHour: 18, CloseHour: 21},
		},
	}
}

// IsOpen reports whether the view is available at now. The timestamp is
// converted to the gate's reference zone first; windows are half-open, so a
// view opens at its start hour and is already closed at its end hour.
func (g *Gate) IsOpen(view View, now time.Time) bool {
	w, gated := g.windows[view]
	if !gated {
		return true
	}
	hour := now.In(g.loc).Hour()
	return hour >= w.OpenHour && hour < w.CloseHour
}
