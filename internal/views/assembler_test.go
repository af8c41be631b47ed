package views

import (
	"testing"
	"time"

	"playscope/internal/config"
	"playscope/internal/gate"
	"playscope/internal/model"
)

func testRules() config.Rules {
	return config.Rules{
		TopN:                      5,
		ChoroplethMinInstalls:     1_000_000,
		ChoroplethExcludePrefixes: "ACGS",
		SeriesIncludePrefixes:     "BCE",
		SeriesExcludePrefixes:     "XYZ",
		SeriesExcludeSubstring:    "S",
		SeriesMinReviews:          500,
		HighGrowthThreshold:       0.20,
	}
}

func openTime() time.Time {
	return time.Date(2024, 5, 10, 18, 30, 0, 0, gate.IST)
}

func closedTime() time.Time {
	return time.Date(2024, 5, 10, 22, 0, 0, 0, gate.IST)
}

func TestScatterPaidOnlyWithTranslation(t *testing.T) {
	records := []model.AppRecord{
		{Name: "Ledger", Category: "Business", Installs: 1000, Price: 2.0, Type: model.AppTypePaid},
		{Name: "Mirror", Category: "Beauty", Installs: 500, Price: 3.0, Type: model.AppTypeFree},
	}

	got := NewAssembler(testRules(), nil, nil).Scatter(records)
	if len(got.Points) != 1 {
		t.Fatalf("expected one paid point, got %d", len(got.Points))
	}
	p := got.Points[0]
	if p.Installs != 1000 || p.Revenue != 2000 {
		t.Fatalf("unexpected point: %+v", p)
	}
	if p.Category != "வணிகம்" {
		t.Fatalf("category label should be translated, got %q", p.Category)
	}
}

func TestScatterEmptyIsNotNil(t *testing.T) {
	got := NewAssembler(testRules(), nil, nil).Scatter(nil)
	if got.Points == nil {
		t.Fatalf("empty scatter must carry an empty slice, not nil")
	}
}

func TestChoroplethClosedIsDistinctFromEmpty(t *testing.T) {
	a := NewAssembler(testRules(), nil, nil)

	closed := a.Choropleth(nil, closedTime())
	if closed.Status != model.ViewClosed {
		t.Fatalf("expected closed status, got %q", closed.Status)
	}
	if closed.Rows != nil {
		t.Fatalf("closed view must not carry rows")
	}

	open := a.Choropleth(nil, openTime())
	if open.Status != model.ViewOpen {
		t.Fatalf("expected open status, got %q", open.Status)
	}
	if open.Rows == nil {
		t.Fatalf("open-but-empty view must carry an empty slice")
	}
}

func TestChoroplethFiltersAndAggregates(t *testing.T) {
	records := []model.AppRecord{
		{Name: "a", Category: "Events", Country: "USA", Installs: 2_000_000},
		{Name: "b", Category: "Events", Country: "USA", Installs: 3_000_000},
		{Name: "c", Category: "Events", Country: "IND", Installs: 1_500_000},
		{Name: "d", Category: "Art", Country: "USA", Installs: 9_000_000},   // excluded prefix
		{Name: "e", Category: "Weather", Country: "CAN", Installs: 500_000}, // below threshold
	}

	got := NewAssembler(testRules(), nil, nil).Choropleth(records, openTime())
	if got.Status != model.ViewOpen {
		t.Fatalf("expected open view")
	}
	if len(got.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %+v", got.Rows)
	}
	if got.Rows[0].Country != "IND" || got.Rows[0].Installs != 1_500_000 {
		t.Fatalf("unexpected first row: %+v", got.Rows[0])
	}
	if got.Rows[1].Country != "USA" || got.Rows[1].Installs != 5_000_000 {
		t.Fatalf("USA installs should sum per category: %+v", got.Rows[1])
	}
}

func TestChoroplethKeepsOnlyTopCategories(t *testing.T) {
	categories := []string{"Beauty", "Business", "Events", "Medical", "Weather", "Tools"}
	records := make([]model.AppRecord, 0, len(categories))
	for i, category := range categories {
		records = append(records, model.AppRecord{
			Name:     category,
			Category: category,
			Country:  "USA",
			Installs: uint64(10_000_000 - i*1_000_000),
		})
	}

	got := NewAssembler(testRules(), nil, nil).Choropleth(records, openTime())
	if len(got.Rows) != 5 {
		t.Fatalf("expected 5 rows, got %d", len(got.Rows))
	}
	for _, row := range got.Rows {
		if row.Category == "Tools" {
			t.Fatalf("sixth-ranked category must be cut")
		}
	}
}

func TestTimeSeriesClosedIsDistinct(t *testing.T) {
	a := NewAssembler(testRules(), nil, nil)
	got := a.TimeSeries(nil, closedTime())
	if got.Status != model.ViewClosed || got.Rows != nil {
		t.Fatalf("expected closed marker without rows, got %+v", got)
	}
}

func TestTimeSeriesOpenAfterChoroplethCloses(t *testing.T) {
	a := NewAssembler(testRules(), nil, nil)
	at := time.Date(2024, 5, 10, 20, 30, 0, 0, gate.IST)

	if a.Choropleth(nil, at).Status != model.ViewClosed {
		t.Fatalf("choropleth should be closed at 20:30 IST")
	}
	if a.TimeSeries(nil, at).Status != model.ViewOpen {
		t.Fatalf("time series should still be open at 20:30 IST")
	}
}

func TestTimeSeriesRowsAndTranslation(t *testing.T) {
	records := []model.AppRecord{
		{Name: "Glow", Category: "Beauty", Reviews: 800, Installs: 100, LastUpdated: time.Date(2023, 1, 5, 0, 0, 0, 0, time.UTC)},
		{Name: "Shine", Category: "Beauty", Reviews: 800, Installs: 150, LastUpdated: time.Date(2023, 2, 5, 0, 0, 0, 0, time.UTC)},
		{Name: "Ledger", Category: "Business", Reviews: 800, Installs: 999, LastUpdated: time.Date(2023, 1, 5, 0, 0, 0, 0, time.UTC)}, // contains "s"
		{Name: "Campus", Category: "Education", Reviews: 100, Installs: 999, LastUpdated: time.Date(2023, 1, 5, 0, 0, 0, 0, time.UTC)}, // too few reviews
		{Name: "Trail", Category: "Travel", Reviews: 800, Installs: 999, LastUpdated: time.Date(2023, 1, 5, 0, 0, 0, 0, time.UTC)},     // prefix not included
	}

	got := NewAssembler(testRules(), nil, nil).TimeSeries(records, openTime())
	if got.Status != model.ViewOpen {
		t.Fatalf("expected open view")
	}
	if len(got.Rows) != 2 {
		t.Fatalf("expected two Beauty buckets, got %+v", got.Rows)
	}
	if got.Rows[0].Category != "सौंदर्य" || got.Rows[1].Category != "सौंदर्य" {
		t.Fatalf("labels should be translated: %+v", got.Rows)
	}
	if got.Rows[0].Growth != nil {
		t.Fatalf("first bucket must have no growth")
	}
	if got.Rows[1].Growth == nil || !got.Rows[1].HighGrowth {
		t.Fatalf("second bucket should be flagged high-growth: %+v", got.Rows[1])
	}
}
