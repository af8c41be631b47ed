package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"playscope/internal/config"
	"playscope/internal/gate"
	"playscope/internal/httpapi"
	"playscope/internal/ingest"
	"playscope/internal/pipeline"
	"playscope/internal/translate"
)

func runServe(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadServe(cfgFile, cmd.Flags())
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

	loader := ingest.NewLoader(cfg.Countries, logger)
	records, skipped, err := loader.Load(cfg.Dataset)
	if err != nil {
		return err
	}

	logger.Info("serve start",
		zap.String("dataset", cfg.Dataset),
		zap.String("addr", cfg.Addr),
		zap.Int("records", len(records)),
		zap.Int("skipped", len(skipped)),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	p := pipeline.New(cfg.Rules, translate.Default, gate.New(), logger)
	server := httpapi.New(cfg.Addr, records, p, nil, logger)

	if err := server.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
