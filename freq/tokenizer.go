package freq

import (
	"fmt"
	"io"
)

// Word is a completed maximal run of alphabet characters in canonical case.
type Word struct {
	Text string
	// Truncated is set when characters beyond MaxWordLength were dropped.
	Truncated bool
}

// Tokenizer splits a character stream into words, feeding them into a
// Builder as it goes.
type Tokenizer struct {
	src io.RuneReader
	b   *Builder
	err error
}

// NewTokenizer reads characters from src and feeds them into b.
func NewTokenizer(src io.RuneReader, b *Builder) *Tokenizer {
	return &Tokenizer{src: src, b: b}
}

// Next returns the next counted word. It returns io.EOF after the last word
// of the stream; any other read error drops the unfinished word and is
// returned wrapped, repeated on subsequent calls.
func (t *Tokenizer) Next() (Word, error) {
	if t.err != nil {
		return Word{}, t.err
	}

	for {
		r, _, err := t.src.ReadRune()

		switch {
		case err == io.EOF:
			t.err = io.EOF
			// a trailing word without a delimiter still counts
			if w, ok := t.b.Flush(); ok {
				return w, nil
			}
			return Word{}, t.err

		case err != nil:
			// the unfinished word may be a fragment, never count it
			t.b.discard()
			t.err = fmt.Errorf("freq: read input: %w", err)
			return Word{}, t.err
		}

		if w, ok := t.b.Feed(r); ok {
			return w, nil
		}
	}
}
