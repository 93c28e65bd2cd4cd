package analyzer

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dtnitsch/text-analyzer/pkg/wordtable"
)

func newTestStats(t *testing.T) *Stats {
	t.Helper()
	stats, err := NewStats(wordtable.DefaultSize)
	if err != nil {
		t.Fatalf("NewStats() error = %v", err)
	}
	return stats
}

func analyzeString(t *testing.T, input string) *Stats {
	t.Helper()
	stats := newTestStats(t)
	if err := Analyze(strings.NewReader(input), stats); err != nil {
		t.Fatalf("Analyze(%q) error = %v", input, err)
	}
	return stats
}

func checkWords(t *testing.T, stats *Stats, want map[string]int) {
	t.Helper()
	if got := stats.Words.Len(); got != len(want) {
		t.Errorf("distinct words = %d, want %d", got, len(want))
	}
	for word, count := range want {
		if got := stats.Words.Count(word); got != count {
			t.Errorf("word count for %q = %d, want %d", word, got, count)
		}
	}
}

func TestAnalyze_Scenarios(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		charCount int64
		wordCount int
		lineCount int
		words     map[string]int
	}{
		{
			name:      "mixed case with punctuation",
			input:     "Hi hi! HI.",
			charCount: 10,
			wordCount: 3,
			lineCount: 0,
			words:     map[string]int{"hi": 3},
		},
		{
			name:      "empty input",
			input:     "",
			charCount: 0,
			wordCount: 0,
			lineCount: 0,
			words:     map[string]int{},
		},
		{
			name:      "no trailing delimiter",
			input:     "cat",
			charCount: 3,
			wordCount: 1,
			lineCount: 0,
			words:     map[string]int{"cat": 1},
		},
		{
			name:      "newline terminated lines",
			input:     "a\nb\n",
			charCount: 4,
			wordCount: 2,
			lineCount: 2,
			words:     map[string]int{"a": 1, "b": 1},
		},
		{
			name:      "consecutive delimiters",
			input:     "one   two\t\tthree",
			charCount: 16,
			wordCount: 3,
			lineCount: 0,
			words:     map[string]int{"one": 1, "two": 1, "three": 1},
		},
		{
			name:      "non-alphabetic runs split tokens",
			input:     "foo123bar foo-bar",
			charCount: 17,
			wordCount: 2,
			lineCount: 0,
			words:     map[string]int{"foo": 2, "bar": 2},
		},
		{
			name:      "only whitespace",
			input:     " \t\n \r\n",
			charCount: 6,
			wordCount: 0,
			lineCount: 2,
			words:     map[string]int{},
		},
		{
			name:      "non-alphabetic words still counted as words",
			input:     "123 ... 456",
			charCount: 11,
			wordCount: 3,
			lineCount: 0,
			words:     map[string]int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := analyzeString(t, tt.input)

			if stats.CharCount != tt.charCount {
				t.Errorf("CharCount = %d, want %d", stats.CharCount, tt.charCount)
			}
			if stats.WordCount != tt.wordCount {
				t.Errorf("WordCount = %d, want %d", stats.WordCount, tt.wordCount)
			}
			if stats.LineCount != tt.lineCount {
				t.Errorf("LineCount = %d, want %d", stats.LineCount, tt.lineCount)
			}
			checkWords(t, stats, tt.words)
		})
	}
}

func TestAnalyze_CharFreqSumsToCharCount(t *testing.T) {
	input := "The quick brown fox\njumps over the lazy dog.\n\x00\xff binary bytes too"
	stats := analyzeString(t, input)

	if stats.CharCount != int64(len(input)) {
		t.Errorf("CharCount = %d, want %d", stats.CharCount, len(input))
	}

	var sum int64
	for _, n := range stats.CharFreq {
		sum += n
	}
	if sum != stats.CharCount {
		t.Errorf("sum(CharFreq) = %d, want CharCount %d", sum, stats.CharCount)
	}

	if got := stats.CharFreq['o']; got != 6 {
		t.Errorf("CharFreq['o'] = %d, want 6", got)
	}
	if got := stats.CharFreq[0xff]; got != 1 {
		t.Errorf("CharFreq[0xff] = %d, want 1", got)
	}
}

func TestAnalyze_TokenSumMatchesAlphabeticRuns(t *testing.T) {
	// 7 maximal alphabetic runs in total.
	input := "Go go GO! x1y2z3 end"
	stats := analyzeString(t, input)

	sum := 0
	stats.Words.Each(func(word string, count int) bool {
		sum += count
		return true
	})
	if sum != 7 {
		t.Errorf("sum of word table counts = %d, want 7", sum)
	}
}

func TestAnalyze_LongTokenTruncated(t *testing.T) {
	// Runs beyond 99 alphabetic bytes are cut; the truncated prefix is still
	// counted once. Deliberate boundary, not a bug.
	long := strings.Repeat("ab", 100) // 200 alphabetic bytes
	stats := analyzeString(t, long+" "+long)

	want := long[:99]
	if got := stats.Words.Count(want); got != 2 {
		t.Errorf("count of truncated token = %d, want 2", got)
	}
	if got := stats.Words.Len(); got != 1 {
		t.Errorf("distinct words = %d, want 1", got)
	}
	if stats.WordCount != 2 {
		t.Errorf("WordCount = %d, want 2", stats.WordCount)
	}
}

// failingReader yields some real data and then a read error.
type failingReader struct {
	data []byte
	err  error
}

func (r *failingReader) Read(p []byte) (int, error) {
	if len(r.data) == 0 {
		return 0, r.err
	}
	n := copy(p, r.data)
	r.data = r.data[n:]
	return n, nil
}

func TestAnalyze_MidStreamReadError(t *testing.T) {
	readErr := errors.New("device gone")
	stats := newTestStats(t)

	err := Analyze(&failingReader{data: []byte("ok so far"), err: readErr}, stats)
	if !errors.Is(err, readErr) {
		t.Fatalf("Analyze() error = %v, want wrapped %v", err, readErr)
	}

	// Bytes consumed before the failure remain valid partial counts.
	if stats.CharCount != 9 {
		t.Errorf("CharCount = %d, want 9", stats.CharCount)
	}
	if stats.WordCount != 3 {
		t.Errorf("WordCount = %d, want 3", stats.WordCount)
	}
	var sum int64
	for _, n := range stats.CharFreq {
		sum += n
	}
	if sum != stats.CharCount {
		t.Errorf("sum(CharFreq) = %d, want %d", sum, stats.CharCount)
	}
}

func TestAnalyzeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.txt")
	if err := os.WriteFile(path, []byte("Hello hello\nworld"), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	stats := newTestStats(t)
	if err := AnalyzeFile(path, stats); err != nil {
		t.Fatalf("AnalyzeFile() error = %v", err)
	}

	if stats.FileName != path {
		t.Errorf("FileName = %q, want %q", stats.FileName, path)
	}
	if stats.CharCount != 17 {
		t.Errorf("CharCount = %d, want 17", stats.CharCount)
	}
	if stats.LineCount != 1 {
		t.Errorf("LineCount = %d, want 1", stats.LineCount)
	}
	checkWords(t, stats, map[string]int{"hello": 2, "world": 1})
}

func TestAnalyzeFile_Missing(t *testing.T) {
	stats := newTestStats(t)
	err := AnalyzeFile(filepath.Join(t.TempDir(), "no-such-file"), stats)
	if err == nil {
		t.Fatal("AnalyzeFile() on missing file returned nil error")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("AnalyzeFile() error = %v, want wrapped os.ErrNotExist", err)
	}
	if stats.CharCount != 0 {
		t.Errorf("CharCount after failed open = %d, want 0", stats.CharCount)
	}
}
