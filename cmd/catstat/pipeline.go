package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vmunix/catstat/internal/catalog"
	"github.com/vmunix/catstat/internal/clean"
	"github.com/vmunix/catstat/internal/config"
	"github.com/vmunix/catstat/internal/extract"
)

// loadConfig loads the config file named by --config. A missing file is
// only an error when the flag was set explicitly; otherwise defaults apply.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err == nil {
		return cfg, nil
	}
	if errors.Is(err, os.ErrNotExist) && !cmd.Flags().Changed("config") {
		return config.Default(), nil
	}
	return nil, err
}

// newLogger builds the process logger at the configured level.
func newLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// runPipeline loads, cleans, and extracts the dataset. The input path
// overrides the configured dataset path when non-empty.
func runPipeline(ctx context.Context, cfg *config.Config, logger *slog.Logger, input string) ([]extract.Row, clean.Report, extract.Report, error) {
	path := cfg.Dataset.Path
	if input != "" {
		path = input
	}

	fetcher := catalog.NewFetcher(catalog.WithLogger(logger))
	records, err := fetcher.LoadOrFetch(ctx, path, cfg.Dataset.RemoteURL)
	if err != nil {
		return nil, clean.Report{}, extract.Report{}, fmt.Errorf("load dataset: %w", err)
	}
	logger.Info("dataset loaded", "path", path, "rows", len(records))

	cleaned, cleanReport := clean.Apply(records)
	logger.Info("cleaning done",
		"dropped", cleanReport.Dropped,
		"missing_rating", cleanReport.MissingRating,
		"missing_duration", cleanReport.MissingDuration,
		"missing_date_added", cleanReport.MissingDateAdded)

	rows, extractReport := extract.Apply(cleaned)
	if extractReport.FailedDates > 0 {
		logger.Warn("unparsable dates dropped", "count", extractReport.FailedDates)
	}

	return rows, cleanReport, extractReport, nil
}
