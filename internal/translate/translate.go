// Package translate maps category names to localized display strings.
package translate

// Table is a category-to-display-string mapping. Swapping locales means
// supplying a different table; entries are never edited at call time.
type Table map[string]string

// Default is the mapping the production dashboard ships with.
var Default = Table{
	"Beauty":   "सौंदर्य",
	"Business": "வணிகம்",
	"Dating":   "Partnersuche",
}

// Translate returns the display string for a category. Categories without a
// mapping pass through unchanged.
func (t Table) Translate(category string) string {
	if display, ok := t[category]; ok {
		return display
	}
	return category
}
