// Package views assembles the exact tables each dashboard view consumes.
package views

import (
	"sort"
	"time"

	"playscope/internal/aggregate"
	"playscope/internal/config"
	"playscope/internal/filter"
	"playscope/internal/gate"
	"playscope/internal/model"
	"playscope/internal/translate"
)

// Assembler builds view tables from app records. Category labels are
// translated here, on the way out; everything upstream works on raw names.
type Assembler struct {
	rules      config.Rules
	translator translate.Table
	gate       *gate.Gate
}

// NewAssembler builds an Assembler over the given rules, locale table, and
// clock gate.
func NewAssembler(rules config.Rules, translator translate.Table, g *gate.Gate) *Assembler {
	if translator == nil {
		translator = translate.Default
	}
	if g == nil {
		g = gate.New()
	}
	return &Assembler{rules: rules, translator: translator, gate: g}
}

// Scatter emits one (installs, revenue, category) point per paid app. The
// scatter view is never gated.
func (a *Assembler) Scatter(records []model.AppRecord) model.ScatterView {
	paid := filter.Apply(records, filter.PaidOnly())

	points := make([]model.ScatterPoint, 0, len(paid))
	for _, r := range paid {
		points = append(points, model.ScatterPoint{
			Installs: r.Installs,
			Revenue:  r.Revenue(),
			Category: a.translator.Translate(r.Category),
		})
	}
	return model.ScatterView{Points: points}
}

// Choropleth emits per-country install totals for the top-ranked categories,
// or a closed marker outside the view's time window.
func (a *Assembler) Choropleth(records []model.AppRecord, now time.Time) model.ChoroplethView {
	if !a.gate.IsOpen(gate.ChoroplethView, now) {
		return model.ChoroplethView{Status: model.ViewClosed}
	}

	filtered := filter.Apply(records, filter.All(
		filter.MinInstallsExclusive(a.rules.ChoroplethMinInstalls),
		filter.CategoryPrefixNotIn(a.rules.ChoroplethExcludePrefixes),
	))

	top := aggregate.TopCategories(filtered, a.rules.TopN, a.rules.ChoroplethExcludePrefixes)
	topSet := make(map[string]bool, len(top))
	for _, agg := range top {
		topSet[agg.Category] = true
	}

	type key struct{ country, category string }
	totals := make(map[key]uint64)
	for _, r := range filtered {
		if !topSet[r.Category] {
			continue
		}
		totals[key{country: r.Country, category: r.Category}] += r.Installs
	}

	rows := make([]model.ChoroplethRow, 0, len(totals))
	for k, installs := range totals {
		rows = append(rows, model.ChoroplethRow{
			Country:  k.country,
			Category: a.translator.Translate(k.category),
			Installs: installs,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Category != rows[j].Category {
			return rows[i].Category < rows[j].Category
		}
		return rows[i].Country < rows[j].Country
	})

	return model.ChoroplethView{Status: model.ViewOpen, Rows: rows}
}

// TimeSeries emits each matching category's monthly install series with
// month-over-month growth annotations, or a closed marker outside the view's
// time window.
func (a *Assembler) TimeSeries(records []model.AppRecord, now time.Time) model.TimeSeriesView {
	if !a.gate.IsOpen(gate.TimeSeriesView, now) {
		return model.TimeSeriesView{Status: model.ViewClosed}
	}

	filtered := filter.Apply(records, filter.All(
		filter.CategoryPrefixIn(a.rules.SeriesIncludePrefixes),
		filter.MinReviews(a.rules.SeriesMinReviews),
		filter.CategoryPrefixNotIn(a.rules.SeriesExcludePrefixes),
		filter.CategoryNotContaining(a.rules.SeriesExcludeSubstring),
	))

	buckets := aggregate.ComputeGrowth(aggregate.MonthlyBuckets(filtered), a.rules.HighGrowthThreshold)

	rows := make([]model.TimeSeriesRow, 0, len(buckets))
	for _, b := range buckets {
		rows = append(rows, model.TimeSeriesRow{
			Category:   a.translator.Translate(b.Category),
			Month:      b.Month,
			Installs:   b.Installs,
			Growth:     b.Growth,
			HighGrowth: b.HighGrowth,
		})
	}

	return model.TimeSeriesView{Status: model.ViewOpen, Rows: rows}
}
