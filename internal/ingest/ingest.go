// Package ingest loads the Play Store dataset from CSV or XLSX files into
// typed, immutable app records. Malformed rows are skipped and reported,
// never fatal.
package ingest

import (
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"playscope/internal/model"
)

// Required dataset columns. Rating and Type are optional; Type defaults from
// the price when the column is missing.
var requiredColumns = []string{"App", "Category", "Installs", "Price", "Reviews", "Last Updated"}

// Loader reads tabular dataset files into app records.
type Loader struct {
	countries []string
	logger    *zap.Logger
}

// NewLoader builds a Loader. countries is the pool the geo dimension is
// assigned from; records map onto it by a stable hash of the app name so
// repeated loads of the same file give identical records.
func NewLoader(countries []string, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{countries: countries, logger: logger}
}

// Load reads the dataset at path, chosen by file extension (.csv or .xlsx).
// Bad rows come back in the skipped report with a warning logged per row;
// the returned error covers file-level failures only.
func (l *Loader) Load(path string) ([]model.AppRecord, []model.SkippedRow, error) {
	var (
		rows [][]string
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		rows, err = readCSV(path)
	case ".xlsx":
		rows, err = readXLSX(path)
	default:
		return nil, nil, fmt.Errorf("unsupported dataset format: %s", path)
	}
	if err != nil {
		return nil, nil, err
	}
	return l.fromRows(rows)
}

// fromRows converts a header-led row table into records.
func (l *Loader) fromRows(rows [][]string) ([]model.AppRecord, []model.SkippedRow, error) {
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("dataset is empty")
	}

	columns, err := mapHeader(rows[0])
	if err != nil {
		return nil, nil, err
	}

	records := make([]model.AppRecord, 0, len(rows)-1)
	skipped := make([]model.SkippedRow, 0)

	for i, row := range rows[1:] {
		line := i + 2
		record, skip := l.buildRecord(line, row, columns)
		if skip != nil {
			skipped = append(skipped, *skip)
			l.logger.Warn("skip row",
				zap.Int("line", skip.Line),
				zap.String("column", skip.Column),
				zap.String("reason", skip.Reason),
			)
			continue
		}
		records = append(records, record)
	}

	l.logger.Info("dataset loaded",
		zap.Int("total", len(rows)-1),
		zap.Int("loaded", len(records)),
		zap.Int("skipped", len(skipped)),
	)
	return records, skipped, nil
}

// mapHeader resolves column positions by name, whitespace-trimmed.
func mapHeader(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}
	var missing []string
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing columns: %s", strings.Join(missing, ", "))
	}
	return columns, nil
}

func (l *Loader) buildRecord(line int, row []string, columns map[string]int) (model.AppRecord, *model.SkippedRow) {
	cell := func(name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	name := cell("App")
	if name == "" {
		return model.AppRecord{}, &model.SkippedRow{Line: line, Column: "App", Reason: "empty app name"}
	}
	category := cell("Category")
	if category == "" {
		return model.AppRecord{}, &model.SkippedRow{Line: line, App: name, Column: "Category", Reason: "empty category"}
	}

	installs, err := parseCount(cell("Installs"))
	if err != nil {
		return model.AppRecord{}, &model.SkippedRow{Line: line, App: name, Column: "Installs", Value: cell("Installs"), Reason: err.Error()}
	}
	reviews, err := parseCount(cell("Reviews"))
	if err != nil {
		return model.AppRecord{}, &model.SkippedRow{Line: line, App: name, Column: "Reviews", Value: cell("Reviews"), Reason: err.Error()}
	}
	price, err := parsePrice(cell("Price"))
	if err != nil {
		return model.AppRecord{}, &model.SkippedRow{Line: line, App: name, Column: "Price", Value: cell("Price"), Reason: err.Error()}
	}
	updated, err := parseDate(cell("Last Updated"))
	if err != nil {
		return model.AppRecord{}, &model.SkippedRow{Line: line, App: name, Column: "Last Updated", Value: cell("Last Updated"), Reason: err.Error()}
	}

	rating, err := parseRating(cell("Rating"))
	if err != nil {
		return model.AppRecord{}, &model.SkippedRow{Line: line, App: name, Column: "Rating", Value: cell("Rating"), Reason: err.Error()}
	}

	return model.AppRecord{
		Name:        name,
		Category:    category,
		Installs:    installs,
		Price:       price,
		Rating:      rating,
		Reviews:     reviews,
		LastUpdated: updated,
		Country:     l.assignCountry(name),
		Type:        parseType(cell("Type"), price),
	}, nil
}
