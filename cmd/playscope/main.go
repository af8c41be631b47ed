package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	root := &cobra.Command{
		Use:          "playscope",
		Short:        "Play Store analytics pipeline",
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", "", "config file path")

	viewsCmd := &cobra.Command{
		Use:   "views",
		Short: "Compute the view tables and write them as JSONL",
		RunE:  runViews,
	}

	viewsCmd.Flags().String("dataset", "", "dataset path (.csv or .xlsx)")
	viewsCmd.Flags().String("out-dir", "./data/views", "output directory for view JSONL files")
	viewsCmd.Flags().StringSlice("countries", nil, "country pool for the geo dimension (comma-separated)")
	viewsCmd.Flags().String("at", "", "timestamp to gate views at (RFC3339, default now)")
	viewsCmd.Flags().Int("top-n", 5, "category count for the choropleth ranking")
	viewsCmd.Flags().Uint64("choropleth-min-installs", 1_000_000, "minimum installs (exclusive) for choropleth rows")
	viewsCmd.Flags().String("choropleth-exclude-prefixes", "ACGS", "category prefixes excluded from the choropleth")
	viewsCmd.Flags().String("series-include-prefixes", "BCE", "category prefixes included in the time series")
	viewsCmd.Flags().String("series-exclude-prefixes", "XYZ", "category prefixes excluded from the time series")
	viewsCmd.Flags().String("series-exclude-substring", "S", "category substring excluded from the time series")
	viewsCmd.Flags().Uint64("series-min-reviews", 500, "minimum reviews (inclusive) for time-series rows")
	viewsCmd.Flags().Float64("high-growth-threshold", 0.20, "month-over-month growth above which a bucket is flagged")
	viewsCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(viewsCmd)

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the view tables over HTTP",
		RunE:  runServe,
	}

	serveCmd.Flags().String("dataset", "", "dataset path (.csv or .xlsx)")
	serveCmd.Flags().String("addr", ":8080", "listen address")
	serveCmd.Flags().StringSlice("countries", nil, "country pool for the geo dimension (comma-separated)")
	serveCmd.Flags().Int("top-n", 5, "category count for the choropleth ranking")
	serveCmd.Flags().Uint64("choropleth-min-installs", 1_000_000, "minimum installs (exclusive) for choropleth rows")
	serveCmd.Flags().String("choropleth-exclude-prefixes", "ACGS", "category prefixes excluded from the choropleth")
	serveCmd.Flags().String("series-include-prefixes", "BCE", "category prefixes included in the time series")
	serveCmd.Flags().String("series-exclude-prefixes", "XYZ", "category prefixes excluded from the time series")
	serveCmd.Flags().String("series-exclude-substring", "S", "category substring excluded from the time series")
	serveCmd.Flags().Uint64("series-min-reviews", 500, "minimum reviews (inclusive) for time-series rows")
	serveCmd.Flags().Float64("high-growth-threshold", 0.20, "month-over-month growth above which a bucket is flagged")
	serveCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(serveCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevel()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}

	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}
