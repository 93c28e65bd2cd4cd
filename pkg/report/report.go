// Package report turns populated analyzer stats into a presentable report:
// plain text for the terminal, JSON or YAML for machine consumers.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/dtnitsch/text-analyzer/pkg/analyzer"
	"gopkg.in/yaml.v3"
)

// Options controls which sections a report carries and how the word table is
// presented. The zero value renders everything with no limit.
type Options struct {
	ShowOverall   bool
	ShowCharFreq  bool
	ShowWordFreq  bool
	TopWords      int  // 0 means all words
	SkipStopwords bool // filter stopwords from the word-frequency section
}

// FullReport selects every section with no word limit.
func FullReport() Options {
	return Options{ShowOverall: true, ShowCharFreq: true, ShowWordFreq: true}
}

// CharFreqRow is one printable byte and how often it occurred.
type CharFreqRow struct {
	Char  string `json:"char" yaml:"char"`
	Count int64  `json:"count" yaml:"count"`
}

// WordFreqRow is one normalized word and how often it occurred.
type WordFreqRow struct {
	Word  string `json:"word" yaml:"word"`
	Count int    `json:"count" yaml:"count"`
}

// Report is the assembled, render-ready result of one analysis run.
type Report struct {
	FileName      string        `json:"file" yaml:"file"`
	CharCount     int64         `json:"char_count" yaml:"char_count"`
	WordCount     int           `json:"word_count" yaml:"word_count"`
	LineCount     int           `json:"line_count" yaml:"line_count"`
	DistinctWords int           `json:"distinct_words" yaml:"distinct_words"`
	Language      string        `json:"language,omitempty" yaml:"language,omitempty"`
	CharFreq      []CharFreqRow `json:"char_freq,omitempty" yaml:"char_freq,omitempty"`
	WordFreq      []WordFreqRow `json:"word_freq,omitempty" yaml:"word_freq,omitempty"`

	opts Options
}

// Build assembles a Report from populated stats. The word-frequency section
// is sorted by count descending, ties broken alphabetically; the original
// tool printed bucket order, but a sorted table is what readers actually
// want and the order was never a contract.
func Build(stats *analyzer.Stats, opts Options) *Report {
	r := &Report{
		FileName:      stats.FileName,
		CharCount:     stats.CharCount,
		WordCount:     stats.WordCount,
		LineCount:     stats.LineCount,
		DistinctWords: stats.Words.Len(),
		opts:          opts,
	}

	if opts.ShowCharFreq {
		for i := 0; i < 256; i++ {
			// Printable ASCII only, same restriction the original applied.
			if stats.CharFreq[i] > 0 && i >= 0x20 && i < 0x7f {
				r.CharFreq = append(r.CharFreq, CharFreqRow{
					Char:  string(rune(i)),
					Count: stats.CharFreq[i],
				})
			}
		}
	}

	if opts.ShowWordFreq {
		rows := make([]WordFreqRow, 0, stats.Words.Len())
		stats.Words.Each(func(word string, count int) bool {
			if opts.SkipStopwords && IsStopword(word) {
				return true
			}
			rows = append(rows, WordFreqRow{Word: word, Count: count})
			return true
		})

		sort.Slice(rows, func(i, j int) bool {
			if rows[i].Count != rows[j].Count {
				return rows[i].Count > rows[j].Count
			}
			return rows[i].Word < rows[j].Word
		})

		if opts.TopWords > 0 && len(rows) > opts.TopWords {
			rows = rows[:opts.TopWords]
		}
		r.WordFreq = rows
	}

	return r
}

// TopWordsMap returns the word-frequency section as a word->count map,
// suitable for history storage.
func (r *Report) TopWordsMap() map[string]int {
	out := make(map[string]int, len(r.WordFreq))
	for _, row := range r.WordFreq {
		out[row.Word] = row.Count
	}
	return out
}

// RenderText writes the sectioned plain-text report.
func (r *Report) RenderText(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "--- Analysis Report for %s ---\n\n", r.FileName); err != nil {
		return err
	}

	if r.opts.ShowOverall {
		fmt.Fprintf(w, "Overall Statistics:\n")
		fmt.Fprintf(w, "Total Characters:\t%d\n", r.CharCount)
		fmt.Fprintf(w, "Total Words:\t\t%d\n", r.WordCount)
		fmt.Fprintf(w, "Total Lines:\t\t%d\n", r.LineCount)
		if r.Language != "" {
			fmt.Fprintf(w, "Language:\t\t%s\n", r.Language)
		}
		fmt.Fprintln(w)
	}

	if r.opts.ShowCharFreq {
		fmt.Fprintf(w, "Character Frequency:\n")
		fmt.Fprintf(w, "  %-10s %-10s\n", "Character", "Count")
		fmt.Fprintf(w, "  %-10s %-10s\n", "---------", "-----")
		for _, row := range r.CharFreq {
			fmt.Fprintf(w, "  %-10s %-10d\n", row.Char, row.Count)
		}
		fmt.Fprintln(w)
	}

	if r.opts.ShowWordFreq {
		fmt.Fprintf(w, "Word Frequency:\n")
		fmt.Fprintf(w, "  %-20s %s\n", "Word", "Count")
		fmt.Fprintf(w, "  %-20s %s\n", "--------------------", "-----")
		for _, row := range r.WordFreq {
			fmt.Fprintf(w, "  %-20s %d\n", row.Word, row.Count)
		}
	}

	return nil
}

// RenderJSON writes the report as indented JSON.
func (r *Report) RenderJSON(w io.Writer) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// RenderYAML writes the report as YAML.
func (r *Report) RenderYAML(w io.Writer) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// Render dispatches on format: "text", "json", or "yaml".
func (r *Report) Render(w io.Writer, format string) error {
	switch format {
	case "", "text":
		return r.RenderText(w)
	case "json":
		return r.RenderJSON(w)
	case "yaml":
		return r.RenderYAML(w)
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}
