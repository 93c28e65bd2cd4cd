package analyze

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/dtnitsch/text-analyzer/pkg/analyzer"
	"github.com/dtnitsch/text-analyzer/pkg/htmltext"
	"github.com/dtnitsch/text-analyzer/pkg/langdetect"
	"github.com/dtnitsch/text-analyzer/pkg/report"
)

// languageSampleLen is how much of a plain-text input is read as the
// language-detection sample.
const languageSampleLen = 4096

// Job defines a task for a worker to perform.
type Job struct {
	Path string
}

// Result holds the outcome of a processed job.
type Result struct {
	Path   string
	Report *report.Report
	Err    error
}

// jobContext carries the shared, read-only state every worker needs.
type jobContext struct {
	logger      *slog.Logger
	bucketCount int
	htmlInput   bool
	detector    *langdetect.Detector
	opts        report.Options
}

// runPool analyzes the given files with workerCount workers and returns one
// result per file, in input order. Concurrency exists only across files; a
// single file is always one sequential scan.
func runPool(files []string, workerCount int, ctx *jobContext) []Result {
	if workerCount < 1 {
		workerCount = 1
	}
	if workerCount > len(files) {
		workerCount = len(files)
	}

	var wg sync.WaitGroup
	jobs := make(chan Job, len(files))
	results := make(chan Result, len(files))

	for w := 1; w <= workerCount; w++ {
		wg.Add(1)
		go worker(w, ctx, &wg, jobs, results)
	}

	for _, path := range files {
		jobs <- Job{Path: path}
	}
	close(jobs)

	wg.Wait()
	close(results)

	byPath := make(map[string]Result, len(files))
	for result := range results {
		byPath[result.Path] = result
	}

	ordered := make([]Result, 0, len(files))
	for _, path := range files {
		ordered = append(ordered, byPath[path])
	}
	return ordered
}

// worker is a goroutine that processes jobs from the jobs channel and sends
// results to the results channel.
func worker(id int, ctx *jobContext, wg *sync.WaitGroup, jobs <-chan Job, results chan<- Result) {
	defer wg.Done()
	for job := range jobs {
		ctx.logger.Info("worker started job", "worker", id, "file", job.Path)
		rep, err := analyzeOne(job.Path, ctx)
		results <- Result{Path: job.Path, Report: rep, Err: err}
		ctx.logger.Info("worker finished job", "worker", id, "file", job.Path)
	}
}

// analyzeOne runs the full pipeline for a single input file: optional HTML
// text extraction, the single-pass scan, optional language detection, and
// report assembly.
func analyzeOne(path string, ctx *jobContext) (*report.Report, error) {
	stats, err := analyzer.NewStats(ctx.bucketCount)
	if err != nil {
		return nil, err
	}

	var sample string
	if ctx.htmlInput {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read input: %w", err)
		}
		text, err := htmltext.FromHTML(path, string(raw))
		if err != nil {
			return nil, err
		}
		stats.FileName = path
		if err := analyzer.Analyze(strings.NewReader(text), stats); err != nil {
			return nil, err
		}
		sample = text
	} else {
		if err := analyzer.AnalyzeFile(path, stats); err != nil {
			return nil, err
		}
		if ctx.detector != nil {
			sample, err = readSample(path)
			if err != nil {
				return nil, err
			}
		}
	}

	rep := report.Build(stats, ctx.opts)
	if ctx.detector != nil {
		if lang, ok := ctx.detector.Detect(sample); ok {
			rep.Language = lang
		}
	}
	return rep, nil
}

// readSample reads up to languageSampleLen bytes from path.
func readSample(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, languageSampleLen))
	if err != nil {
		return "", fmt.Errorf("failed to read sample: %w", err)
	}
	return string(data), nil
}
