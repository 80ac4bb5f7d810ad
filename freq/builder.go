package freq

import (
	"io"

	"github.com/aglyzov/go-freqlist/alphabet"
	"github.com/aglyzov/go-freqlist/bittrie"
)

// Builder accumulates word counts in a bit trie.
type Builder struct {
	opts  Options
	alpha *alphabet.Alphabet
	trie  *bittrie.Trie

	// current word
	cur       bittrie.Cursor
	buf       []rune
	truncated bool
}

// NewBuilder creates a Builder with an empty trie; zero Options fields take
// their defaults.
func NewBuilder(opts Options) *Builder {
	opts = opts.withDefaults()
	b := &Builder{
		opts:  opts,
		alpha: opts.Alphabet,
		trie:  bittrie.New(opts.PreAlloc),
		buf:   make([]rune, 0, opts.MaxWordLength),
	}
	b.cur = b.trie.Root()
	return b
}

// Alphabet returns the alphabet words are made of.
func (b *Builder) Alphabet() *alphabet.Alphabet {
	return b.alpha
}

// MaxWordLength returns M.
func (b *Builder) MaxWordLength() int {
	return b.opts.MaxWordLength
}

// Trie gives read access to the underlying counter, e.g. for Stats or a
// snapshot.
func (b *Builder) Trie() *bittrie.Trie {
	return b.trie
}

// InWord reports whether a word is being accumulated.
func (b *Builder) InWord() bool {
	return len(b.buf) > 0
}

// Feed processes one character. It returns the completed word when r ends
// one. Characters of a word beyond MaxWordLength are dropped together with
// their trie bits, so an over-long word is counted as its truncated prefix.
func (b *Builder) Feed(r rune) (Word, bool) {
	code, ok := b.alpha.Classify(r)
	if !ok {
		return b.Flush()
	}

	if len(b.buf) >= b.opts.MaxWordLength {
		b.truncated = true
		return Word{}, false
	}

	b.buf = append(b.buf, b.alpha.Decode(code))
	for i := uint(0); i < b.alpha.Width(); i++ {
		b.cur = b.trie.InsertBit(b.cur, b.alpha.Bit(code, i))
	}

	return Word{}, false
}

// Flush ends the current word, if any, counting it once.
func (b *Builder) Flush() (Word, bool) {
	if len(b.buf) == 0 {
		return Word{}, false
	}

	b.trie.Bump(b.cur)

	w := Word{Text: string(b.buf), Truncated: b.truncated}

	b.buf = b.buf[:0]
	b.cur = b.trie.Root()
	b.truncated = false

	return w, true
}

// discard drops the current word without counting it. Trie nodes already
// created for it stay in place with a zero counter.
func (b *Builder) discard() {
	b.buf = b.buf[:0]
	b.cur = b.trie.Root()
	b.truncated = false
}

// Consume feeds the whole text read from r and returns the number of words
// counted. A read error aborts the run: words completed before it are kept,
// the word being read when it happened is dropped.
func (b *Builder) Consume(r io.Reader) (int, error) {
	var (
		tok   = NewTokenizer(NewRuneReader(r, b.opts.NormalizeNFC), b)
		words int
	)

	for {
		_, err := tok.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			tracer().Errorf("consume stopped after %d words: %v", words, err)
			return words, err
		}
		words++
	}

	tracer().Debugf("consumed %d words, %d distinct, %d trie nodes",
		words, b.trie.Words(), b.trie.Len())

	return words, nil
}

// Count returns the number of occurrences of word counted so far. The word
// is folded to lowercase; words longer than MaxWordLength or containing
// non-alphabet characters are never stored and yield 0.
func (b *Builder) Count(word string) int {
	codes, ok := b.alpha.Encode(word)
	if !ok || len(codes) == 0 || len(codes) > b.opts.MaxWordLength {
		return 0
	}

	cur := b.trie.Root()
	for _, code := range codes {
		for i := uint(0); i < b.alpha.Width(); i++ {
			if cur, ok = b.trie.Child(cur, b.alpha.Bit(code, i)); !ok {
				return 0
			}
		}
	}

	return b.trie.Count(cur)
}
