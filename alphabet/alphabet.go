// Package alphabet maps the letters of a single script to small integer codes.
//
// An Alphabet is a window of two contiguous code point ranges, one for the
// lowercase and one for the uppercase letters of the script. The n-th letter
// of either range gets the code n, so case folding is plain arithmetic: both
// forms of a letter collide on the same code. Every code fits into Width()
// bits, which is the number of trie levels a single letter occupies.
package alphabet

import (
	"errors"
	"fmt"
	"math/bits"
	"unicode"
)

// Code is the folded value of an in-alphabet character, [0, 1<<Width()).
type Code uint8

// MaxWidth is the widest code supported.
const MaxWidth = 8

var (
	ErrEmpty     = errors.New("alphabet: empty lowercase range")
	ErrTooNarrow = errors.New("alphabet: bit width too narrow")
	ErrTooWide   = errors.New("alphabet: bit width too wide")
	ErrOverlap   = errors.New("alphabet: lowercase and uppercase ranges overlap")
)

// Alphabet is a case-folding codec for one script.
type Alphabet struct {
	lowerBase rune
	lowerSize int
	upperBase rune
	upperSize int
	width     uint
}

// Armenian covers U+0561..U+0587 (including the ligature ech-yiwn) and the
// capitals U+0531..U+0556 which lie exactly 0x30 below their lowercase forms.
var Armenian = Must(NewWidth(0x0561, 39, 0x0531, 38, 6))

// Latin covers the ASCII letters a..z and A..Z.
var Latin = Must(New('a', 26, 'A', 26))

// New creates an alphabet using the narrowest width able to hold all codes.
// An upperSize of 0 describes a script without case.
func New(lowerBase rune, lowerSize int, upperBase rune, upperSize int) (*Alphabet, error) {
	return NewWidth(lowerBase, lowerSize, upperBase, upperSize, 0)
}

// NewWidth creates an alphabet with a fixed code width (0 picks the narrowest).
func NewWidth(lowerBase rune, lowerSize int, upperBase rune, upperSize int, width uint) (*Alphabet, error) {
	if lowerSize <= 0 || upperSize < 0 {
		return nil, ErrEmpty
	}

	var (
		size = lowerSize
		need = uint(1)
	)

	if upperSize > size {
		size = upperSize
	}

	if n := uint(bits.Len(uint(size - 1))); n > need {
		need = n
	}

	if width == 0 {
		width = need
	}

	switch {
	case width < need:
		return nil, fmt.Errorf("%w: %d bits for %d letters", ErrTooNarrow, width, size)
	case width > MaxWidth:
		return nil, fmt.Errorf("%w: %d bits (max %d)", ErrTooWide, width, MaxWidth)
	}

	if upperSize > 0 &&
		lowerBase < upperBase+rune(upperSize) && upperBase < lowerBase+rune(lowerSize) {
		return nil, ErrOverlap
	}

	return &Alphabet{
		lowerBase: lowerBase,
		lowerSize: lowerSize,
		upperBase: upperBase,
		upperSize: upperSize,
		width:     width,
	}, nil
}

// Must panics on a construction error; meant for package level variables.
func Must(a *Alphabet, err error) *Alphabet {
	if err != nil {
		panic(err)
	}
	return a
}

// Width returns B, the number of bits per code.
func (a *Alphabet) Width() uint {
	return a.width
}

// Size returns the number of distinct codes in use.
func (a *Alphabet) Size() int {
	if a.upperSize > a.lowerSize {
		return a.upperSize
	}
	return a.lowerSize
}

// Capacity returns 1<<Width(), the number of structurally valid codes.
func (a *Alphabet) Capacity() int {
	return 1 << a.width
}

// Classify returns the code of r, or false if r is not a word character.
func (a *Alphabet) Classify(r rune) (Code, bool) {
	switch {
	case r >= a.lowerBase && r < a.lowerBase+rune(a.lowerSize):
		return Code(r - a.lowerBase), true
	case r >= a.upperBase && r < a.upperBase+rune(a.upperSize):
		return Code(r - a.upperBase), true
	}
	return 0, false
}

// Decode is the inverse of Classify re-biased to the canonical (lowercase)
// range. Codes only reachable through the uppercase range decode to uppercase;
// unused codes decode to unicode.ReplacementChar.
func (a *Alphabet) Decode(c Code) rune {
	switch n := int(c); {
	case n < a.lowerSize:
		return a.lowerBase + rune(n)
	case n < a.upperSize:
		return a.upperBase + rune(n)
	}
	return unicode.ReplacementChar
}

// Fold returns the canonical form of r.
func (a *Alphabet) Fold(r rune) (rune, bool) {
	c, ok := a.Classify(r)
	if !ok {
		return r, false
	}
	return a.Decode(c), true
}

// Encode converts a whole word; it fails on the first non-alphabet rune.
func (a *Alphabet) Encode(word string) ([]Code, bool) {
	codes := make([]Code, 0, len(word))

	for _, r := range word {
		c, ok := a.Classify(r)
		if !ok {
			return nil, false
		}
		codes = append(codes, c)
	}

	return codes, true
}

// Bit returns the i-th most significant of the Width() bits of c.
func (a *Alphabet) Bit(c Code, i uint) uint8 {
	return uint8(c>>(a.width-1-i)) & 1
}
