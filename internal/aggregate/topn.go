// Package aggregate rolls filtered app records up into ranked category
// totals and monthly install buckets.
package aggregate

import (
	"sort"
	"strings"

	"playscope/internal/model"
)

// TopCategories groups records by category, sums installs, drops categories
// whose name starts with one of excludePrefixes (case-insensitive), and
// returns at most n aggregates sorted by total installs descending. Equal
// totals order by category name ascending so output is deterministic. Fewer
// than n surviving categories returns them all; the result is never padded.
func TopCategories(records []model.AppRecord, n int, excludePrefixes string) []model.CategoryAggregate {
	excluded := strings.ToUpper(excludePrefixes)

	totals := make(map[string]*model.CategoryAggregate)
	for _, r := range records {
		if startsWithAny(r.Category, excluded) {
			continue
		}
		agg, ok := totals[r.Category]
		if !ok {
			agg = &model.CategoryAggregate{Category: r.Category}
			totals[r.Category] = agg
		}
		agg.TotalInstalls += r.Installs
		agg.RecordCount++
	}

	out := make([]model.CategoryAggregate, 0, len(totals))
	for _, agg := range totals {
		out = append(out, *agg)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalInstalls != out[j].TotalInstalls {
			return out[i].TotalInstalls > out[j].TotalInstalls
		}
		return out[i].Category < out[j].Category
	})

	if n > 0 && len(out) > n {
		out = out[:n]
	}
	for i := range out {
		out[i].Rank = i + 1
	}
	return out
}

func startsWithAny(s, upperLetters string) bool {
	for _, r := range strings.ToUpper(s) {
		return strings.ContainsRune(upperLetters, r)
	}
	return false
}
