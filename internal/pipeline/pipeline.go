// Package pipeline runs the full record-to-report transformation.
package pipeline

import (
	"time"

	"go.uber.org/zap"

	"playscope/internal/config"
	"playscope/internal/gate"
	"playscope/internal/model"
	"playscope/internal/translate"
	"playscope/internal/views"
)

// Pipeline assembles all three views from an in-memory record set. It holds
// no mutable state, so running it twice with the same records and the same
// timestamp produces identical reports.
type Pipeline struct {
	assembler *views.Assembler
	logger    *zap.Logger
}

// New builds a Pipeline. A nil translator or gate falls back to the
// production defaults; a nil logger is replaced by a no-op.
func New(rules config.Rules, translator translate.Table, g *gate.Gate, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{
		assembler: views.NewAssembler(rules, translator, g),
		logger:    logger,
	}
}

// Run computes the report for now. The gate sees only this timestamp; the
// system clock is never read here.
func (p *Pipeline) Run(records []model.AppRecord, now time.Time) model.Report {
	report := model.Report{
		GeneratedAt: now,
		Scatter:     p.assembler.Scatter(records),
		Choropleth:  p.assembler.Choropleth(records, now),
		TimeSeries:  p.assembler.TimeSeries(records, now),
	}

	p.logger.Info("report assembled",
		zap.Int("records", len(records)),
		zap.Int("scatter_points", len(report.Scatter.Points)),
		zap.String("choropleth", string(report.Choropleth.Status)),
		zap.String("time_series", string(report.TimeSeries.Status)),
	)
	return report
}
