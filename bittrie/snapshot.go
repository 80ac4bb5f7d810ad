package bittrie

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/hideo55/go-popcount"
	"github.com/icza/bitio"
	"google.golang.org/protobuf/encoding/protowire"
)

// A snapshot is a protobuf-wire message:
//
//	1: nodes  (varint)  number of nodes
//	2: masks  (bytes)   2-bit child masks of all nodes in preorder, bit-packed
//	3: counts (bytes)   packed varint counters of all nodes in preorder
//
// Arena indices are not stored, so two tries of the same shape produce the
// same snapshot regardless of their insertion history.
const (
	fieldNodes  protowire.Number = 1
	fieldMasks  protowire.Number = 2
	fieldCounts protowire.Number = 3

	maskWidth = 2
)

var ErrCorrupt = errors.New("bittrie: corrupt snapshot")

// MarshalBinary implements encoding.BinaryMarshaler.
func (t *Trie) MarshalBinary() ([]byte, error) {
	var (
		masks  bytes.Buffer
		counts []byte
		nodes  uint64
		err    error
		bw     = bitio.NewWriter(&masks)
	)

	t.Walk(func(cur Cursor, _ uint) bool {
		n := &t.pool.Nodes[cur]
		if err = bw.WriteBits(n.fanout(), maskWidth); err != nil {
			return false
		}
		counts = protowire.AppendVarint(counts, uint64(n.count))
		nodes++
		return true
	})

	if err != nil {
		return nil, fmt.Errorf("bittrie: write masks: %w", err)
	}
	if err = bw.Close(); err != nil {
		return nil, fmt.Errorf("bittrie: flush masks: %w", err)
	}

	var b []byte

	b = protowire.AppendTag(b, fieldNodes, protowire.VarintType)
	b = protowire.AppendVarint(b, nodes)
	b = protowire.AppendTag(b, fieldMasks, protowire.BytesType)
	b = protowire.AppendBytes(b, masks.Bytes())
	b = protowire.AppendTag(b, fieldCounts, protowire.BytesType)
	b = protowire.AppendBytes(b, counts)

	return b, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. The trie is replaced
// by the decoded one; on error it is left empty.
func (t *Trie) UnmarshalBinary(data []byte) error {
	if t.pool == nil {
		t.pool = NewNodePool(0)
	}
	t.Reset()

	nodes, masks, counts, err := parseSnapshot(data)
	if err != nil {
		return err
	}

	if err = t.rebuild(nodes, masks, counts); err != nil {
		t.Reset()
		return err
	}

	return nil
}

func parseSnapshot(b []byte) (nodes uint64, masks, counts []byte, err error) {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return 0, nil, nil, fmt.Errorf("%w: %v", ErrCorrupt, protowire.ParseError(n))
		}
		b = b[n:]

		switch {
		case num == fieldNodes && typ == protowire.VarintType:
			nodes, n = protowire.ConsumeVarint(b)
		case num == fieldMasks && typ == protowire.BytesType:
			masks, n = protowire.ConsumeBytes(b)
		case num == fieldCounts && typ == protowire.BytesType:
			counts, n = protowire.ConsumeBytes(b)
		default:
			n = protowire.ConsumeFieldValue(num, typ, b)
		}
		if n < 0 {
			return 0, nil, nil, fmt.Errorf("%w: field %d: %v", ErrCorrupt, num, protowire.ParseError(n))
		}
		b = b[n:]
	}

	if nodes == 0 {
		return 0, nil, nil, fmt.Errorf("%w: no root", ErrCorrupt)
	}

	return nodes, masks, counts, nil
}

// rebuild restores the preorder sequence into the (reset) pool.
func (t *Trie) rebuild(nodes uint64, masks, counts []byte) error {
	type slot struct {
		parent Cursor
		dir    int
	}

	var (
		br      = bitio.NewReader(bytes.NewReader(masks))
		pending []slot
		edges   uint64
	)

	read := func(cur Cursor) error {
		mask, err := br.ReadBits(maskWidth)
		if err != nil {
			return fmt.Errorf("%w: masks: %v", ErrCorrupt, err)
		}

		count, n := protowire.ConsumeVarint(counts)
		if n < 0 {
			return fmt.Errorf("%w: counts: %v", ErrCorrupt, protowire.ParseError(n))
		}
		counts = counts[n:]

		t.pool.Nodes[cur].count = int(count)
		if count > 0 {
			t.words++
			t.total += int(count)
		}

		edges += popcount.Count(mask)
		if edges >= nodes {
			return fmt.Errorf("%w: more edges than nodes", ErrCorrupt)
		}

		// child[1] is pushed first so that child[0] is restored next
		for dir := 1; dir >= 0; dir-- {
			if mask&(1<<dir) != 0 {
				pending = append(pending, slot{cur, dir})
			}
		}

		return nil
	}

	if err := read(t.Root()); err != nil {
		return err
	}

	for l := len(pending); l > 0; l = len(pending) {
		s := pending[l-1]
		pending = pending[:l-1]

		cur := t.pool.GetNode()
		t.pool.Nodes[s.parent].child[s.dir] = cur

		if err := read(cur); err != nil {
			return err
		}
	}

	if uint64(t.Len()) != nodes || len(counts) != 0 {
		return fmt.Errorf("%w: expected %d nodes, restored %d", ErrCorrupt, nodes, t.Len())
	}

	return nil
}
