package freqlist

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aglyzov/go-freqlist/freq"
)

const sample = "բարև 5\nբարի 3\nաշխարհ 3\n\nբար 1\nողջույն 1\n"

func TestRead(t *testing.T) {
	t.Parallel()

	l, err := Read(strings.NewReader(sample))
	require.NoError(t, err)

	assert.Equal(t, 5, l.Len())
	assert.Equal(t, 13, l.Total())
	assert.Equal(t, Entry{"բարև", 5}, l.At(0))
	assert.Equal(t, Entry{"ողջույն", 1}, l.At(4))

	for _, tcase := range []*struct {
		Word           string
		ExpHas         bool
		ExpOccurrences int
		ExpPosition    int
	}{
		{"բարև", true, 5, 1},
		{"բարի", true, 3, 2},
		{"աշխարհ", true, 3, 3},
		{"բար", true, 1, 4},
		{"ողջույն", true, 1, 5},
		{"բա", false, 0, -1},
		{"բարևը", false, 0, -1},
		{"", false, 0, -1},
	} {
		assert.Equal(t, tcase.ExpHas, l.Has(tcase.Word), tcase.Word)
		assert.Equal(t, tcase.ExpOccurrences, l.Occurrences(tcase.Word), tcase.Word)
		assert.Equal(t, tcase.ExpPosition, l.Position(tcase.Word), tcase.Word)
	}
}

func TestWithPrefix(t *testing.T) {
	t.Parallel()

	l, err := Read(strings.NewReader(sample))
	require.NoError(t, err)

	for _, tcase := range []*struct {
		Prefix     string
		ExpEntries []Entry
	}{
		{"բար", []Entry{{"բարև", 5}, {"բարի", 3}, {"բար", 1}}},
		{"բարի", []Entry{{"բարի", 3}}},
		{"ա", []Entry{{"աշխարհ", 3}}},
		{"x", []Entry{}},
		{"", []Entry{
			{"բարև", 5}, {"բարի", 3}, {"աշխարհ", 3}, {"բար", 1}, {"ողջույն", 1},
		}},
	} {
		assert.Equal(t, tcase.ExpEntries, l.WithPrefix(tcase.Prefix), tcase.Prefix)
	}
}

func TestRead_Malformed(t *testing.T) {
	t.Parallel()

	for _, tcase := range []*struct {
		Name  string
		Input string
	}{
		{"no-count", "բարև\n"},
		{"no-word", " 3\n"},
		{"not-a-number", "բարև x\n"},
		{"negative", "բարև -1\n"},
		{"duplicate", "բարև 2\nբարև 1\n"},
	} {
		tcase := tcase

		t.Run(tcase.Name, func(t *testing.T) {
			t.Parallel()

			_, err := Read(strings.NewReader(tcase.Input))
			assert.ErrorIs(t, err, ErrMalformed)
		})
	}
}

func TestRead_Empty(t *testing.T) {
	t.Parallel()

	l, err := Read(strings.NewReader(""))
	require.NoError(t, err)

	assert.Zero(t, l.Len())
	assert.Zero(t, l.Total())
	assert.Empty(t, l.WithPrefix("ա"))
}

func TestRead_WrittenList(t *testing.T) {
	t.Parallel()

	b := freq.NewBuilder(freq.Options{})
	_, err := b.Consume(strings.NewReader("Բարև, բարև աշխարհ։ Բարի լույս, աշխարհ, բարև"))
	require.NoError(t, err)

	var (
		entries = b.Collect()
		buf     bytes.Buffer
	)

	require.NoError(t, freq.WriteList(&buf, entries))

	l, err := Read(&buf)
	require.NoError(t, err)

	require.Equal(t, len(entries), l.Len())
	assert.Equal(t, entries.Total(), l.Total())

	for i, e := range entries {
		assert.Equal(t, i+1, l.Position(e.Word))
		assert.Equal(t, e.Count, l.Occurrences(e.Word))
	}

	assert.Equal(t, 1, l.Position("բարև"))
	assert.Equal(t, 2, l.Position("աշխարհ"))
}
