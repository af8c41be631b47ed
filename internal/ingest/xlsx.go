package ingest

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// readXLSX reads the first sheet whose header row carries the required
// dataset columns.
func readXLSX(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil || len(rows) == 0 {
			continue
		}
		if hasRequiredHeader(rows[0]) {
			return rows, nil
		}
	}
	return nil, fmt.Errorf("no sheet with dataset columns in %s", path)
}

func hasRequiredHeader(header []string) bool {
	seen := make(map[string]bool, len(header))
	for _, name := range header {
		seen[strings.TrimSpace(name)] = true
	}
	for _, name := range requiredColumns {
		if !seen[name] {
			return false
		}
	}
	return true
}
