package bittrie

import (
	"testing"

	"github.com/brianvoe/gofakeit/v6"
)

func BenchmarkGoMap_Inc(b *testing.B) {
	var (
		keys = getKeys(b.N)
		m    = make(map[string]int)
	)

	b.ResetTimer()

	for _, key := range keys {
		m[key]++
	}
}

func BenchmarkBitTrie_Inc(b *testing.B) {
	var (
		keys = getKeys(b.N)
		tr   = New(0)
	)

	b.ResetTimer()

	for _, key := range keys {
		cur := tr.Root()
		for i := 0; i < len(key); i++ {
			for shift := 7; shift >= 0; shift-- {
				cur = tr.InsertBit(cur, (key[i]>>shift)&1)
			}
		}
		tr.Bump(cur)
	}
}

func BenchmarkBitTrie_Marshal(b *testing.B) {
	tr := New(0)
	for _, key := range getKeys(10_000) {
		tr.Bump(insertPath(tr, bytePath(key)))
	}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = tr.MarshalBinary()
	}
}

func getKeys(total int) []string {
	const seed = 1234567890

	var (
		faker = gofakeit.New(seed)
		keys  = make([]string, total)
	)

	for i := range keys {
		keys[i] = faker.Word()
	}

	return keys
}
