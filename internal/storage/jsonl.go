package storage

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"playscope/internal/model"
)

const (
	scatterFile    = "scatter.jsonl"
	choroplethFile = "choropleth.jsonl"
	timeSeriesFile = "timeseries.jsonl"
)

// JsonlStorage writes each view of a report to its own JSONL file under a
// directory. Files are replaced wholesale per report; a report is a snapshot,
// not a log.
type JsonlStorage struct {
	dir string
	mu  sync.Mutex
}

func NewJsonlStorage(dir string) *JsonlStorage {
	return &JsonlStorage{dir: dir}
}

// WriteReport writes scatter, choropleth, and time-series files. Gated views
// lead with a status marker line; a closed view writes the marker and no
// rows, which keeps "closed" distinguishable from "open but empty".
func (s *JsonlStorage) WriteReport(report model.Report) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	scatterLines := make([]any, 0, len(report.Scatter.Points))
	for _, p := range report.Scatter.Points {
		scatterLines = append(scatterLines, p)
	}
	if err := s.writeFile(scatterFile, scatterLines); err != nil {
		return err
	}

	choroLines := []any{statusMarker{Status: report.Choropleth.Status}}
	for _, row := range report.Choropleth.Rows {
		choroLines = append(choroLines, row)
	}
	if err := s.writeFile(choroplethFile, choroLines); err != nil {
		return err
	}

	seriesLines := []any{statusMarker{Status: report.TimeSeries.Status}}
	for _, row := range report.TimeSeries.Rows {
		seriesLines = append(seriesLines, row)
	}
	return s.writeFile(timeSeriesFile, seriesLines)
}

type statusMarker struct {
	Status model.ViewStatus `json:"status"`
}

func (s *JsonlStorage) writeFile(name string, lines []any) error {
	path := filepath.Join(s.dir, name)
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("open output file: %w", err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	for _, line := range lines {
		encoded, err := json.Marshal(line)
		if err != nil {
			return fmt.Errorf("marshal view row: %w", err)
		}
		if _, err := writer.Write(encoded); err != nil {
			return fmt.Errorf("write view row: %w", err)
		}
		if err := writer.WriteByte('\n'); err != nil {
			return fmt.Errorf("write newline: %w", err)
		}
	}

	if err := writer.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	return nil
}
