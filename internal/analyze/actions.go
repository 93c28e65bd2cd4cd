package analyze

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/dtnitsch/text-analyzer/models"
	"github.com/dtnitsch/text-analyzer/pkg/db"
	"github.com/dtnitsch/text-analyzer/pkg/langdetect"
	"github.com/dtnitsch/text-analyzer/pkg/report"
	"github.com/urfave/cli/v2"
)

// AnalyzeAction analyzes one or more input files and renders a report per
// file. Files are processed by a bounded worker pool; each individual
// analysis is a single sequential pass.
func AnalyzeAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	config, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyFlags(c, config)

	files := c.Args().Slice()
	if len(files) == 0 {
		return fmt.Errorf("no input files provided")
	}

	opts := reportOptions(c, config)

	var detector *langdetect.Detector
	if config.DetectLanguage {
		logger.Info("loading language detection models")
		detector = langdetect.New()
	}

	var history *db.DB
	if !config.NoHistory {
		history, err = db.Open()
		if err != nil {
			// History is best-effort; analysis still runs without it.
			logger.Warn("failed to open history database", "error", err)
		} else {
			defer history.Close()
		}
	}

	logger.Info("analyzing files", "count", len(files), "workers", config.WorkerCount, "html", c.Bool("html"))

	results := runPool(files, config.WorkerCount, &jobContext{
		logger:      logger,
		bucketCount: config.BucketCount,
		htmlInput:   c.Bool("html"),
		detector:    detector,
		opts:        opts,
	})

	out := os.Stdout
	if outPath := c.String("output"); outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("failed to open output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	failed := 0
	for _, result := range results {
		if result.Err != nil {
			logger.Error("analysis failed", "file", result.Path, "error", result.Err)
			failed++
			continue
		}

		if err := result.Report.Render(out, config.Format); err != nil {
			return fmt.Errorf("failed to render report for %s: %w", result.Path, err)
		}

		if history != nil {
			if _, err := history.InsertRun(&db.Run{
				FileName:      result.Path,
				CharCount:     result.Report.CharCount,
				WordCount:     result.Report.WordCount,
				LineCount:     result.Report.LineCount,
				DistinctWords: result.Report.DistinctWords,
				Language:      result.Report.Language,
				TopWords:      result.Report.TopWordsMap(),
			}); err != nil {
				logger.Warn("failed to record run", "file", result.Path, "error", err)
			}
		}
	}

	if failed == len(files) {
		return fmt.Errorf("all %d analyses failed", failed)
	}
	if failed > 0 {
		logger.Warn("some analyses failed", "failed", failed, "total", len(files))
	}
	return nil
}

// applyFlags overlays explicitly-set CLI flags on the loaded config.
func applyFlags(c *cli.Context, config *models.Config) {
	if c.IsSet("buckets") {
		config.BucketCount = c.Int("buckets")
	}
	if c.IsSet("top") {
		config.TopWords = c.Int("top")
	}
	if c.IsSet("workers") {
		config.WorkerCount = c.Int("workers")
	}
	if c.IsSet("format") {
		config.Format = c.String("format")
	}
	if c.IsSet("no-stopwords") {
		config.SkipStopwords = c.Bool("no-stopwords")
	}
	if c.IsSet("detect-language") {
		config.DetectLanguage = c.Bool("detect-language")
	}
	if c.IsSet("no-history") {
		config.NoHistory = c.Bool("no-history")
	}
}

// reportOptions selects report sections from the section flags. With no
// section flag the full report is rendered, matching the behavior of
// running with no options at all.
func reportOptions(c *cli.Context, config *models.Config) report.Options {
	opts := report.Options{
		TopWords:      config.TopWords,
		SkipStopwords: config.SkipStopwords,
	}

	if c.Bool("counts") {
		opts.ShowOverall = true
	}
	if c.Bool("freq") {
		opts.ShowCharFreq = true
		opts.ShowWordFreq = true
	}
	if !opts.ShowOverall && !opts.ShowCharFreq && !opts.ShowWordFreq {
		opts = report.FullReport()
		opts.TopWords = config.TopWords
		opts.SkipStopwords = config.SkipStopwords
	}
	return opts
}
