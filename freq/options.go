package freq

import "github.com/aglyzov/go-freqlist/alphabet"

// DefaultMaxWordLength is M, the number of characters kept from a word.
const DefaultMaxWordLength = 49

type Options struct {
	// Alphabet defines word characters; alphabet.Armenian if nil.
	Alphabet *alphabet.Alphabet
	// MaxWordLength truncates longer words; DefaultMaxWordLength if not positive.
	MaxWordLength int
	// PreAlloc is a capacity hint for the trie node pool.
	PreAlloc int
	// NormalizeNFC composes the input to NFC before segmentation (off by
	// default, see NewRuneReader).
	NormalizeNFC bool
}

func (o Options) withDefaults() Options {
	if o.Alphabet == nil {
		o.Alphabet = alphabet.Armenian
	}
	if o.MaxWordLength <= 0 {
		o.MaxWordLength = DefaultMaxWordLength
	}
	return o
}
