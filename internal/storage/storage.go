package storage

import "playscope/internal/model"

// Storage defines a sink for assembled view reports.
type Storage interface {
	WriteReport(report model.Report) error
}
