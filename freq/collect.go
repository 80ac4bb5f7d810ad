package freq

import (
	"sort"

	"github.com/aglyzov/go-freqlist/alphabet"
	"github.com/aglyzov/go-freqlist/bittrie"
)

// Entry is a word in canonical case with its number of occurrences.
type Entry struct {
	Word  string
	Count int
}

// EntrySlice sorts by count (descending), then by word.
type EntrySlice []Entry

// Total returns the sum of all counts.
func (v EntrySlice) Total() int {
	total := 0
	for _, e := range v {
		total += e.Count
	}
	return total
}

// Collect ends the current word and returns every counted word with its
// number of occurrences, most frequent first. Words of equal count are
// ordered byte-wise.
func (b *Builder) Collect() EntrySlice {
	b.Flush()

	type frame struct {
		cur    bittrie.Cursor
		depth  uint
		acc    alphabet.Code // bits of the unfinished letter
		prefix string        // letters decoded so far
	}

	var (
		width   = b.alpha.Width()
		entries = make(EntrySlice, 0, b.trie.Words())
		// Walk the tree without function recursion
		toVisit = []frame{{cur: b.trie.Root()}}
	)

	for l := len(toVisit); l > 0; l = len(toVisit) {
		f := toVisit[l-1]
		toVisit = toVisit[:l-1]

		if f.depth > 0 && f.depth%width == 0 {
			if count := b.trie.Count(f.cur); count > 0 {
				entries = append(entries, Entry{f.prefix, count})
			}
		}

		for bit := 1; bit >= 0; bit-- {
			next, ok := b.trie.Child(f.cur, uint8(bit))
			if !ok {
				continue
			}

			child := frame{
				cur:    next,
				depth:  f.depth + 1,
				acc:    f.acc<<1 | alphabet.Code(bit),
				prefix: f.prefix,
			}
			if child.depth%width == 0 {
				child.prefix += string(b.alpha.Decode(child.acc))
				child.acc = 0
			}

			toVisit = append(toVisit, child)
		}
	}

	sort.Stable(entries)

	tracer().Debugf("collected %d entries, %d occurrences", len(entries), b.trie.Occurrences())

	return entries
}

// -- EntrySlice sort interface --

func (v EntrySlice) Len() int      { return len(v) }
func (v EntrySlice) Swap(i, j int) { v[i], v[j] = v[j], v[i] }
func (v EntrySlice) Less(i, j int) bool {
	if v[i].Count == v[j].Count {
		return v[i].Word < v[j].Word
	}
	return v[i].Count > v[j].Count // inverted logic
}
