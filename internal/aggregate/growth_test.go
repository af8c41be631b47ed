package aggregate

import (
	"math"
	"testing"
	"time"

	"playscope/internal/model"
)

func month(m time.Month) time.Time {
	return time.Date(2023, m, 1, 0, 0, 0, 0, time.UTC)
}

func TestMonthlyBucketsGroupsAndSorts(t *testing.T) {
	records := []model.AppRecord{
		{Category: "Business", Installs: 100, LastUpdated: time.Date(2023, 2, 17, 10, 0, 0, 0, time.UTC)},
		{Category: "Business", Installs: 50, LastUpdated: time.Date(2023, 2, 3, 0, 0, 0, 0, time.UTC)},
		{Category: "Business", Installs: 75, LastUpdated: time.Date(2023, 1, 20, 0, 0, 0, 0, time.UTC)},
		{Category: "Beauty", Installs: 10, LastUpdated: time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC)},
	}

	got := MonthlyBuckets(records)
	if len(got) != 3 {
		t.Fatalf("expected 3 buckets, got %d", len(got))
	}
	if got[0].Category != "Beauty" || !got[0].Month.Equal(month(time.March)) {
		t.Fatalf("unexpected first bucket: %+v", got[0])
	}
	if got[1].Category != "Business" || !got[1].Month.Equal(month(time.January)) || got[1].Installs != 75 {
		t.Fatalf("unexpected second bucket: %+v", got[1])
	}
	if got[2].Installs != 150 {
		t.Fatalf("February installs should sum to 150, got %d", got[2].Installs)
	}
}

func TestComputeGrowthSequence(t *testing.T) {
	buckets := []model.TimeBucket{
		{Category: "Business", Month: month(time.January), Installs: 100},
		{Category: "Business", Month: month(time.February), Installs: 150},
		{Category: "Business", Month: month(time.March), Installs: 90},
	}

	got := ComputeGrowth(buckets, 0.20)

	if got[0].Growth != nil {
		t.Fatalf("first bucket must have no growth, got %v", *got[0].Growth)
	}
	if got[1].Growth == nil || math.Abs(*got[1].Growth-0.5) > 1e-9 {
		t.Fatalf("second bucket growth should be 0.5, got %v", got[1].Growth)
	}
	if !got[1].HighGrowth {
		t.Fatalf("0.5 growth must be flagged high-growth")
	}
	if got[2].Growth == nil || math.Abs(*got[2].Growth-(-0.4)) > 1e-9 {
		t.Fatalf("third bucket growth should be -0.4, got %v", got[2].Growth)
	}
	if got[2].HighGrowth {
		t.Fatalf("negative growth must not be flagged")
	}
}

func TestComputeGrowthResetsPerCategory(t *testing.T) {
	buckets := []model.TimeBucket{
		{Category: "Beauty", Month: month(time.February), Installs: 10},
		{Category: "Business", Month: month(time.March), Installs: 999},
	}

	got := ComputeGrowth(buckets, 0.20)
	for _, b := range got {
		if b.Growth != nil {
			t.Fatalf("category-first buckets must have no growth: %+v", b)
		}
	}
}

func TestComputeGrowthZeroPriorIsNoSignal(t *testing.T) {
	buckets := []model.TimeBucket{
		{Category: "Business", Month: month(time.January), Installs: 0},
		{Category: "Business", Month: month(time.February), Installs: 50},
	}

	got := ComputeGrowth(buckets, 0.20)
	if got[1].Growth != nil {
		t.Fatalf("zero prior must yield no growth, got %v", *got[1].Growth)
	}
	if got[1].HighGrowth {
		t.Fatalf("no-signal bucket must not be flagged")
	}
}

func TestComputeGrowthZeroIsNotAbsent(t *testing.T) {
	buckets := []model.TimeBucket{
		{Category: "Business", Month: month(time.January), Installs: 50},
		{Category: "Business", Month: month(time.February), Installs: 50},
	}

	got := ComputeGrowth(buckets, 0.20)
	if got[1].Growth == nil || *got[1].Growth != 0 {
		t.Fatalf("flat installs mean zero growth, not absence: %+v", got[1])
	}
}

func TestComputeGrowthDoesNotMutateInput(t *testing.T) {
	buckets := []model.TimeBucket{
		{Category: "Business", Month: month(time.February), Installs: 150},
		{Category: "Business", Month: month(time.January), Installs: 100},
	}

	_ = ComputeGrowth(buckets, 0.20)
	if buckets[0].Growth != nil || !buckets[0].Month.Equal(month(time.February)) {
		t.Fatalf("input slice was mutated: %+v", buckets[0])
	}
}
