package db

import (
	"encoding/json"
	"fmt"
	"time"
)

// Run is one recorded analysis.
type Run struct {
	RunID         int64          `yaml:"run_id"`
	FileName      string         `yaml:"file"`
	AnalyzedAt    time.Time      `yaml:"analyzed_at"`
	CharCount     int64          `yaml:"char_count"`
	WordCount     int            `yaml:"word_count"`
	LineCount     int            `yaml:"line_count"`
	DistinctWords int            `yaml:"distinct_words"`
	Language      string         `yaml:"language,omitempty"`
	TopWords      map[string]int `yaml:"top_words,omitempty"`
}

// InsertRun records a completed analysis and returns its run ID. topWords is
// stored as a JSON object; nil stores NULL.
func (db *DB) InsertRun(run *Run) (int64, error) {
	var topJSON interface{}
	if len(run.TopWords) > 0 {
		data, err := json.Marshal(run.TopWords)
		if err != nil {
			return 0, fmt.Errorf("failed to marshal top words: %w", err)
		}
		topJSON = string(data)
	}

	res, err := db.Exec(`
		INSERT INTO runs (file_name, char_count, word_count, line_count, distinct_words, language, top_words)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.FileName, run.CharCount, run.WordCount, run.LineCount,
		run.DistinctWords, nullable(run.Language), topJSON,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get run ID: %w", err)
	}
	run.RunID = id
	return id, nil
}

// ListRuns returns the most recent runs, newest first. limit <= 0 means all.
func (db *DB) ListRuns(limit int) ([]Run, error) {
	return db.queryRuns(`
		SELECT run_id, file_name, analyzed_at, char_count, word_count, line_count, distinct_words, language, top_words
		FROM runs ORDER BY analyzed_at DESC, run_id DESC LIMIT ?`, limitArg(limit))
}

// RunsForFile returns the most recent runs for one file, newest first.
func (db *DB) RunsForFile(fileName string, limit int) ([]Run, error) {
	return db.queryRuns(`
		SELECT run_id, file_name, analyzed_at, char_count, word_count, line_count, distinct_words, language, top_words
		FROM runs WHERE file_name = ? ORDER BY analyzed_at DESC, run_id DESC LIMIT ?`,
		fileName, limitArg(limit))
}

func (db *DB) queryRuns(query string, args ...interface{}) ([]Run, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var language, topJSON *string
		if err := rows.Scan(
			&run.RunID, &run.FileName, &run.AnalyzedAt,
			&run.CharCount, &run.WordCount, &run.LineCount,
			&run.DistinctWords, &language, &topJSON,
		); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		if language != nil {
			run.Language = *language
		}
		if topJSON != nil && *topJSON != "" {
			if err := json.Unmarshal([]byte(*topJSON), &run.TopWords); err != nil {
				return nil, fmt.Errorf("failed to unmarshal top words for run %d: %w", run.RunID, err)
			}
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// limitArg maps "no limit" onto SQLite's LIMIT -1.
func limitArg(limit int) int {
	if limit <= 0 {
		return -1
	}
	return limit
}
