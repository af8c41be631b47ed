package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"playscope/internal/config"
	"playscope/internal/gate"
	"playscope/internal/ingest"
	"playscope/internal/pipeline"
	"playscope/internal/storage"
	"playscope/internal/translate"
)

func runViews(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadViews(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if cfg.Dataset == "" {
		return fmt.Errorf("dataset path is required")
	}

	now := time.Now()
	if at, _ := cmd.Flags().GetString("at"); at != "" {
		now, err = time.Parse(time.RFC3339, at)
		if err != nil {
			return fmt.Errorf("parse at: %w", err)
		}
	}

	loader := ingest.NewLoader(cfg.Countries, logger)
	records, skipped, err := loader.Load(cfg.Dataset)
	if err != nil {
		return err
	}

	logger.Info("views start",
		zap.String("dataset", cfg.Dataset),
		zap.String("out_dir", cfg.OutDir),
		zap.Int("records", len(records)),
		zap.Int("skipped", len(skipped)),
		zap.Time("at", now),
	)

	p := pipeline.New(cfg.Rules, translate.Default, gate.New(), logger)
	report := p.Run(records, now)

	sink := storage.NewJsonlStorage(cfg.OutDir)
	if err := sink.WriteReport(report); err != nil {
		return err
	}

	logger.Info("views written", zap.String("out_dir", cfg.OutDir))
	return nil
}
