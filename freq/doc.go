/*
Package freq builds frequency lists: the words of a text ordered from the most
to the least frequent.

A Builder owns all state of one run. Characters are classified by an
alphabet.Alphabet; maximal runs of in-alphabet characters form words, which
are folded to lowercase and cut at Options.MaxWordLength characters. Each
letter of a word is inserted into a bittrie.Trie as Width() bits, most
significant first, and the node reached after the last letter counts the
occurrence. Collect walks the trie, rebuilds every word from its path and
returns the entries sorted by count.

	b := freq.NewBuilder(freq.Options{})
	if _, err := b.Consume(f); err != nil {
		return err
	}
	return freq.WriteFile("out.txt", b.Collect())

A Builder is not safe for concurrent use. Collect must not be interleaved with
feeding characters from another goroutine.
*/
package freq

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'freq'
func tracer() tracing.Trace {
	return tracing.Select("freq")
}
