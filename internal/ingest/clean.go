package ingest

import (
	"fmt"
	"hash/fnv"
	"strconv"
	"strings"
	"time"

	"playscope/internal/model"
)

// Accepted layouts for the Last Updated column. The Play Store export writes
// "January 2, 2006"; ISO dates show up in re-exported datasets.
var dateLayouts = []string{
	"January 2, 2006",
	"2006-01-02",
	"2-Jan-06",
}

// parseCount parses an install or review count, tolerating the "1,000,000+"
// formatting of the raw export.
func parseCount(raw string) (uint64, error) {
	cleaned := strings.NewReplacer(",", "", "+", "").Replace(raw)
	if cleaned == "" {
		return 0, fmt.Errorf("empty count")
	}
	n, err := strconv.ParseUint(cleaned, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("non-numeric count %q", raw)
	}
	return n, nil
}

// parsePrice parses a price, tolerating a leading dollar sign. "0" and
// "Free" both mean free.
func parsePrice(raw string) (float64, error) {
	cleaned := strings.TrimPrefix(raw, "$")
	if cleaned == "" || strings.EqualFold(cleaned, "Free") {
		return 0, nil
	}
	p, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("non-numeric price %q", raw)
	}
	if p < 0 {
		return 0, fmt.Errorf("negative price %q", raw)
	}
	return p, nil
}

// parseRating parses an optional rating. Empty and "NaN" cells mean absent,
// which is distinct from a zero rating.
func parseRating(raw string) (*float64, error) {
	if raw == "" || strings.EqualFold(raw, "NaN") {
		return nil, nil
	}
	r, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("non-numeric rating %q", raw)
	}
	if r < 0 || r > 5 {
		return nil, fmt.Errorf("rating %q out of range", raw)
	}
	return &r, nil
}

func parseDate(raw string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", raw)
}

// parseType resolves the Free/Paid type, falling back to the price when the
// Type column is absent or unrecognized.
func parseType(raw string, price float64) model.AppType {
	switch strings.ToLower(raw) {
	case "paid":
		return model.AppTypePaid
	case "free":
		return model.AppTypeFree
	}
	if price > 0 {
		return model.AppTypePaid
	}
	return model.AppTypeFree
}

// assignCountry picks a country for the geo dimension by a stable hash of
// the app name, so repeated loads of the same dataset are identical.
func (l *Loader) assignCountry(name string) string {
	if len(l.countries) == 0 {
		return ""
	}
	h := fnv.New32a()
	h.Write([]byte(name))
	return l.countries[h.Sum32()%uint32(len(l.countries))]
}
