// Package bittrie implements a counting binary trie stored in a node arena.
//
// Every edge of the trie consumes one bit. A caller encodes its keys into bit
// sequences, walks them from Root() with InsertBit (creating missing nodes on
// the way) and finally calls Bump on the reached node. The trie knows nothing
// about the key alphabet: the bit width of a symbol and the meaning of a path
// are decided by the caller.
//
// Nodes live in a NodePool and refer to their children by index. Slot 0 is
// always the root; since the root is never anyone's child, a zero child index
// means "absent".
package bittrie

import (
	"github.com/hideo55/go-popcount"
)

// Cursor addresses a node in the pool.
type Cursor uint32

const none Cursor = 0

// Node is one arena slot: two child cursors and a counter.
type Node struct {
	child [2]Cursor
	// count is the number of keys ending at this node
	count int
}

// fanout returns a 2-bit mask of present children: bit 0 for child[0],
// bit 1 for child[1].
func (n *Node) fanout() uint64 {
	var mask uint64
	if n.child[0] != none {
		mask |= 0b01
	}
	if n.child[1] != none {
		mask |= 0b10
	}
	return mask
}

// Trie is a counting binary trie. Create it with New or by UnmarshalBinary
// into a zero value.
type Trie struct {
	pool  *NodePool
	words int
	total int
}

// New creates an empty trie, preAlloc is a capacity hint for the node pool.
func New(preAlloc int) *Trie {
	t := &Trie{pool: NewNodePool(preAlloc)}
	t.pool.GetNode() // root
	return t
}

// Root returns the cursor of the root node.
func (t *Trie) Root() Cursor {
	return none
}

// InsertBit returns the child of cur along the given bit, creating it first
// if necessary. Any non-zero bit is treated as 1.
func (t *Trie) InsertBit(cur Cursor, bit uint8) Cursor {
	var dir uint8
	if bit != 0 {
		dir = 1
	}

	if next := t.pool.Nodes[cur].child[dir]; next != none {
		return next
	}

	next := t.pool.GetNode()
	t.pool.Nodes[cur].child[dir] = next

	return next
}

// Child returns the existing child of cur along bit.
func (t *Trie) Child(cur Cursor, bit uint8) (Cursor, bool) {
	var dir uint8
	if bit != 0 {
		dir = 1
	}
	next := t.pool.Nodes[cur].child[dir]
	return next, next != none
}

// Bump increments the counter of cur and returns the new value.
func (t *Trie) Bump(cur Cursor) int {
	n := &t.pool.Nodes[cur]
	n.count++
	if n.count == 1 {
		t.words++
	}
	t.total++
	return n.count
}

// Count returns the counter of cur.
func (t *Trie) Count(cur Cursor) int {
	return t.pool.Nodes[cur].count
}

// Len returns the number of nodes including the root.
func (t *Trie) Len() int {
	return len(t.pool.Nodes)
}

// Words returns the number of nodes having a positive counter.
func (t *Trie) Words() int {
	return t.words
}

// Occurrences returns the sum of all counters.
func (t *Trie) Occurrences() int {
	return t.total
}

// Reset empties the trie keeping the allocated memory.
func (t *Trie) Reset() {
	t.pool.Reset()
	t.pool.GetNode()
	t.words = 0
	t.total = 0
}

// Walk visits every node in preorder, child[0] before child[1], passing the
// node and its bit depth. The walk stops as soon as visit returns false;
// Walk reports whether all nodes were visited.
func (t *Trie) Walk(visit func(cur Cursor, depth uint) bool) bool {
	type frame struct {
		cur   Cursor
		depth uint
	}

	// Walk the tree without function recursion
	toVisit := make([]frame, 1, 64)
	toVisit[0] = frame{t.Root(), 0}

	for l := len(toVisit); l > 0; l = len(toVisit) {
		f := toVisit[l-1]
		toVisit = toVisit[:l-1]

		if !visit(f.cur, f.depth) {
			return false
		}

		// push child[1] first so that child[0] is visited next
		n := &t.pool.Nodes[f.cur]
		for dir := 1; dir >= 0; dir-- {
			if next := n.child[dir]; next != none {
				toVisit = append(toVisit, frame{next, f.depth + 1})
			}
		}
	}

	return true
}

// Stats describes the shape of a trie.
type Stats struct {
	Nodes       int
	Words       int
	Occurrences int
	Leaves      int
	Branches    int // nodes with both children
	Edges       int
	MaxDepth    uint
}

// Stats walks the whole trie and reports its shape.
func (t *Trie) Stats() Stats {
	s := Stats{
		Nodes:       t.Len(),
		Words:       t.words,
		Occurrences: t.total,
	}

	t.Walk(func(cur Cursor, depth uint) bool {
		switch deg := popcount.Count(t.pool.Nodes[cur].fanout()); deg {
		case 0:
			s.Leaves++
		case 2:
			s.Branches++
			s.Edges += 2
		default:
			s.Edges += int(deg)
		}
		if depth > s.MaxDepth {
			s.MaxDepth = depth
		}
		return true
	})

	return s
}
