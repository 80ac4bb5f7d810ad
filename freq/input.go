package freq

import (
	"bufio"
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NewRuneReader decodes UTF-8 text (or UTF-16 announced by a byte order mark)
// into runes. Invalid bytes decode to U+FFFD and therefore act as word
// boundaries.
//
// With nfc set the runes are NFC normalized as well. Composition may turn an
// alphabet letter followed by a combining mark into a non-alphabet rune, so
// word runs then follow the normalized text rather than the raw input.
func NewRuneReader(r io.Reader, nfc bool) io.RuneReader {
	var t transform.Transformer = unicode.BOMOverride(unicode.UTF8.NewDecoder())
	if nfc {
		t = transform.Chain(t, norm.NFC)
	}
	return bufio.NewReader(transform.NewReader(r, t))
}
