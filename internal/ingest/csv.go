package ingest

import (
	"encoding/csv"
	"fmt"
	"os"
)

// readCSV reads the whole file as a header-led row table. Ragged rows are
// allowed; the record builder treats missing trailing cells as empty.
func readCSV(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return rows, nil
}
