// Package freqlist reads a frequency list written as "<word> <count>" lines
// and answers questions about it: how often a word occurs, its rank and
// which words start with a given prefix.
package freqlist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/derekparker/trie"
	"github.com/npillmayer/schuko/tracing"
)

var ErrMalformed = errors.New("freqlist: malformed line")

// tracer writes to trace with key 'freqlist'
func tracer() tracing.Trace {
	return tracing.Select("freqlist")
}

// Entry is one line of a list.
type Entry struct {
	Word  string
	Count int
}

// List is an immutable frequency list in file order.
type List struct {
	entries []Entry
	total   int
	// index maps every word to its position in entries
	index *trie.Trie
}

// Read parses a list; blank lines are skipped, a repeated word or a line
// without a non-negative count is an error.
func Read(r io.Reader) (*List, error) {
	l := &List{index: trie.New()}

	s := bufio.NewScanner(r)
	for line := 1; s.Scan(); line++ {
		text := strings.TrimRight(s.Text(), "\r")
		if text == "" {
			continue
		}

		pos := strings.LastIndexByte(text, ' ')
		if pos <= 0 {
			return nil, fmt.Errorf("%w %d: %q", ErrMalformed, line, text)
		}

		word := text[:pos]
		count, err := strconv.Atoi(text[pos+1:])
		if err != nil || count < 0 {
			return nil, fmt.Errorf("%w %d: %q", ErrMalformed, line, text)
		}
		if _, found := l.index.Find(word); found {
			return nil, fmt.Errorf("%w %d: duplicate word %q", ErrMalformed, line, word)
		}

		l.index.Add(word, len(l.entries))
		l.entries = append(l.entries, Entry{word, count})
		l.total += count
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("freqlist: read: %w", err)
	}

	tracer().Debugf("read %d words, %d occurrences", len(l.entries), l.total)

	return l, nil
}

// Len returns the number of distinct words.
func (l *List) Len() int {
	return len(l.entries)
}

// Total returns the number of occurrences of all words.
func (l *List) Total() int {
	return l.total
}

// At returns the entry with 0-based index i.
func (l *List) At(i int) Entry {
	return l.entries[i]
}

// Has reports whether word is in the list.
func (l *List) Has(word string) bool {
	_, found := l.index.Find(word)
	return found
}

// Occurrences returns the count of word, 0 if absent.
func (l *List) Occurrences(word string) int {
	if i := l.indexOf(word); i >= 0 {
		return l.entries[i].Count
	}
	return 0
}

// Position returns the 1-based rank of word (the most frequent word has
// position 1) or -1 if it is not in the list.
func (l *List) Position(word string) int {
	if i := l.indexOf(word); i >= 0 {
		return i + 1
	}
	return -1
}

// WithPrefix returns the entries whose word starts with prefix, in list order.
func (l *List) WithPrefix(prefix string) []Entry {
	if prefix == "" {
		return append([]Entry(nil), l.entries...)
	}

	words := l.index.PrefixSearch(prefix)
	idx := make([]int, 0, len(words))
	for _, w := range words {
		idx = append(idx, l.indexOf(w))
	}
	sort.Ints(idx)

	found := make([]Entry, 0, len(idx))
	for _, i := range idx {
		found = append(found, l.entries[i])
	}
	return found
}

func (l *List) indexOf(word string) int {
	node, found := l.index.Find(word)
	if !found {
		return -1
	}
	return node.Meta().(int)
}
