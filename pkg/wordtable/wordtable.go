// Package wordtable implements the word-frequency table used by the analyzer:
// a chained hash table with a fixed bucket count, keyed by normalized words.
package wordtable

import (
	"errors"
	"fmt"
)

// DefaultSize is the bucket count used when the caller has no preference.
const DefaultSize = 4096

// ErrInvalidSize is returned by New for a non-positive bucket count.
var ErrInvalidSize = errors.New("bucket count must be positive")

type entry struct {
	word  string
	count int
}

// Table maps words to occurrence counts. The bucket count is fixed at
// construction; there is no resizing or rehashing. Not safe for concurrent
// use.
type Table struct {
	buckets [][]entry
	length  int
}

// New creates an empty table with the given number of buckets.
func New(size int) (*Table, error) {
	if size < 1 {
		return nil, fmt.Errorf("wordtable: size %d: %w", size, ErrInvalidSize)
	}
	return &Table{buckets: make([][]entry, size)}, nil
}

// hash is the djb2 string hash: h = 5381, then h = h*33 + byte for every
// byte of the word. Kept bit-for-bit so bucket distribution matches the
// reference behavior.
func hash(word string) uint64 {
	var h uint64 = 5381
	for i := 0; i < len(word); i++ {
		h = ((h << 5) + h) + uint64(word[i])
	}
	return h
}

// Insert records one occurrence of word. If the word is already present its
// count is incremented, otherwise a new entry with count 1 is appended to its
// bucket. The word must be non-empty and already normalized (lowercase,
// alphabetic-only) by the caller.
func (t *Table) Insert(word string) {
	idx := hash(word) % uint64(len(t.buckets))
	bucket := t.buckets[idx]
	for i := range bucket {
		if bucket[i].word == word {
			bucket[i].count++
			return
		}
	}
	t.buckets[idx] = append(bucket, entry{word: word, count: 1})
	t.length++
}

// Count returns the recorded count for word, or 0 if it was never inserted.
func (t *Table) Count(word string) int {
	bucket := t.buckets[hash(word)%uint64(len(t.buckets))]
	for i := range bucket {
		if bucket[i].word == word {
			return bucket[i].count
		}
	}
	return 0
}

// Len returns the number of distinct words in the table.
func (t *Table) Len() int {
	return t.length
}

// Size returns the bucket count the table was constructed with.
func (t *Table) Size() int {
	return len(t.buckets)
}

// Each calls fn for every (word, count) pair, in bucket-index order and, within
// a bucket, in insertion order. Iteration stops early if fn returns false.
// The order is stable for a given insertion sequence but is not a contract
// consumers should depend on.
func (t *Table) Each(fn func(word string, count int) bool) {
	for _, bucket := range t.buckets {
		for i := range bucket {
			if !fn(bucket[i].word, bucket[i].count) {
				return
			}
		}
	}
}

// Entry is one word and its occurrence count.
type Entry struct {
	Word  string
	Count int
}

// Entries returns all pairs in Each order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, 0, t.length)
	t.Each(func(word string, count int) bool {
		out = append(out, Entry{Word: word, Count: count})
		return true
	})
	return out
}

// Reset drops every entry, keeping the bucket array for reuse.
func (t *Table) Reset() {
	for i := range t.buckets {
		t.buckets[i] = nil
	}
	t.length = 0
}
