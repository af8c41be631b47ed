// Package filter applies composable predicate chains to app records.
package filter

import (
	"strings"

	"playscope/internal/model"
)

// Predicate reports whether a record passes one filter condition.
type Predicate func(model.AppRecord) bool

// All combines predicates conjunctively: every predicate must pass.
func All(preds ...Predicate) Predicate {
	return func(r model.AppRecord) bool {
		for _, p := range preds {
			if !p(r) {
				return false
			}
		}
		return true
	}
}

// Apply returns the records passing pred, in input order. The result is
// never nil, so empty output stays distinguishable from a missing table.
func Apply(records []model.AppRecord, pred Predicate) []model.AppRecord {
	out := make([]model.AppRecord, 0, len(records))
	for _, r := range records {
		if pred(r) {
			out = append(out, r)
		}
	}
	return out
}

// PaidOnly keeps records of the Paid type.
func PaidOnly() Predicate {
	return func(r model.AppRecord) bool {
		return r.Type == model.AppTypePaid
	}
}

// CategoryPrefixIn keeps records whose category starts with one of the
// letters, case-insensitively.
func CategoryPrefixIn(letters string) Predicate {
	set := strings.ToUpper(letters)
	return func(r model.AppRecord) bool {
		return hasPrefixLetter(r.Category, set)
	}
}

// CategoryPrefixNotIn drops records whose category starts with one of the
// letters, case-insensitively.
func CategoryPrefixNotIn(letters string) Predicate {
	set := strings.ToUpper(letters)
	return func(r model.AppRecord) bool {
		return !hasPrefixLetter(r.Category, set)
	}
}

// CategoryNotContaining drops records whose category contains the substring,
// case-insensitively.
func CategoryNotContaining(sub string) Predicate {
	needle := strings.ToUpper(sub)
	return func(r model.AppRecord) bool {
		return !strings.Contains(strings.ToUpper(r.Category), needle)
	}
}

// NamePrefixNotIn drops records whose app name starts with one of the
// letters, case-insensitively.
func NamePrefixNotIn(letters string) Predicate {
	set := strings.ToUpper(letters)
	return func(r model.AppRecord) bool {
		return !hasPrefixLetter(r.Name, set)
	}
}

// NameNotContaining drops records whose app name contains the substring,
// case-insensitively.
func NameNotContaining(sub string) Predicate {
	needle := strings.ToUpper(sub)
	return func(r model.AppRecord) bool {
		return !strings.Contains(strings.ToUpper(r.Name), needle)
	}
}

// MinInstallsExclusive keeps records with installs strictly above n.
func MinInstallsExclusive(n uint64) Predicate {
	return func(r model.AppRecord) bool {
		return r.Installs > n
	}
}

// MinReviews keeps records with at least n reviews.
func MinReviews(n uint64) Predicate {
	return func(r model.AppRecord) bool {
		return r.Reviews >= n
	}
}

// MinRating keeps records whose rating is present and at least x.
func MinRating(x float64) Predicate {
	return func(r model.AppRecord) bool {
		return r.Rating != nil && *r.Rating >= x
	}
}

func hasPrefixLetter(s, upperSet string) bool {
	for _, r := range strings.ToUpper(s) {
		return strings.ContainsRune(upperSet, r)
	}
	return false
}
