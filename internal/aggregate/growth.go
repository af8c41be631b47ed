package aggregate

import (
	"sort"
	"time"

	"playscope/internal/model"
)

// MonthlyBuckets groups records into (category, calendar month) buckets keyed
// on the month of each record's last-updated date, summing installs. Buckets
// come back sorted by category, then month ascending.
func MonthlyBuckets(records []model.AppRecord) []model.TimeBucket {
	type key struct {
		category string
		month    time.Time
	}

	totals := make(map[key]uint64)
	for _, r := range records {
		month := time.Date(r.LastUpdated.Year(), r.LastUpdated.Month(), 1, 0, 0, 0, 0, time.UTC)
		totals[key{category: r.Category, month: month}] += r.Installs
	}

	out := make([]model.TimeBucket, 0, len(totals))
	for k, installs := range totals {
		out = append(out, model.TimeBucket{
			Category: k.category,
			Month:    k.month,
			Installs: installs,
		})
	}
	sortBuckets(out)
	return out
}

// ComputeGrowth annotates each bucket with its month-over-month install
// growth within its category. The first bucket of a category, and any bucket
// following a zero-install month, keeps a nil growth: no prior signal is not
// the same thing as zero growth. Growth strictly above threshold sets the
// high-growth flag. The input is not mutated.
func ComputeGrowth(buckets []model.TimeBucket, threshold float64) []model.TimeBucket {
	out := make([]model.TimeBucket, len(buckets))
	copy(out, buckets)
	sortBuckets(out)

	for i := range out {
		out[i].Growth = nil
		out[i].HighGrowth = false
		if i == 0 || out[i-1].Category != out[i].Category {
			continue
		}
		prev := out[i-1].Installs
		if prev == 0 {
			continue
		}
		g := (float64(out[i].Installs) - float64(prev)) / float64(prev)
		out[i].Growth = &g
		out[i].HighGrowth = g > threshold
	}
	return out
}

func sortBuckets(buckets []model.TimeBucket) {
	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].Category != buckets[j].Category {
			return buckets[i].Category < buckets[j].Category
		}
		return buckets[i].Month.Before(buckets[j].Month)
	})
}
