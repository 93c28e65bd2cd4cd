// Package analyzer implements the single-pass text scan that produces
// character, word, and line counts plus the per-byte and per-word frequency
// tables.
package analyzer

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/dtnitsch/text-analyzer/pkg/wordtable"
)

// maxWordLen caps the alphabetic-token accumulator. Alphabetic runs longer
// than this are truncated: the extra bytes are dropped and the prefix is
// still counted. Reference behavior, kept for compatibility.
const maxWordLen = 99

// Stats collects everything a single analysis pass produces. The zero value
// is not usable on its own; the Words table must be wired in (see NewStats).
type Stats struct {
	FileName  string
	CharCount int64
	WordCount int
	LineCount int
	CharFreq  [256]int64
	Words     *wordtable.Table
}

// NewStats returns a zeroed Stats with an empty word table of the given
// bucket count.
func NewStats(buckets int) (*Stats, error) {
	words, err := wordtable.New(buckets)
	if err != nil {
		return nil, err
	}
	return &Stats{Words: words}, nil
}

// isSpace reports whether c is ASCII whitespace (space, tab, newline,
// vertical tab, form feed, carriage return).
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isAlpha(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func toLower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// Analyze reads r one byte at a time to end-of-stream and accumulates every
// statistic into stats in a single pass. The reader is borrowed, never
// closed. On a read error the counts already accumulated remain valid for
// the bytes actually consumed.
//
// Each byte feeds three independent pieces of state: the plain counters
// (chars, newlines, per-byte frequency), the whitespace-run word counter,
// and the bounded alphabetic-token accumulator that feeds the word table. A
// token still in the buffer at end-of-stream is flushed, so a file that does
// not end in a delimiter still counts its last word.
func Analyze(r io.Reader, stats *Stats) error {
	br := bufio.NewReader(r)

	var wordBuf [maxWordLen]byte
	wordLen := 0
	inWord := false

	flush := func() {
		if wordLen > 0 {
			stats.Words.Insert(string(wordBuf[:wordLen]))
			wordLen = 0
		}
	}

	for {
		c, err := br.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("read failed after %d bytes: %w", stats.CharCount, err)
		}

		stats.CharCount++
		if c == '\n' {
			stats.LineCount++
		}
		stats.CharFreq[c]++

		// Whitespace-delimited word counting: one count per maximal run
		// of non-whitespace bytes.
		if isSpace(c) {
			inWord = false
		} else if !inWord {
			stats.WordCount++
			inWord = true
		}

		// Alphabetic tokens for the frequency table, lowercased. Any
		// non-alphabetic byte ends the current token.
		if isAlpha(c) {
			if wordLen < maxWordLen {
				wordBuf[wordLen] = toLower(c)
				wordLen++
			}
		} else {
			flush()
		}
	}

	flush()
	return nil
}

// AnalyzeFile opens path and analyzes its contents. The open failure case is
// the caller-facing I/O error for a missing or unreadable input.
func AnalyzeFile(path string, stats *Stats) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()

	stats.FileName = path
	return Analyze(f, stats)
}
