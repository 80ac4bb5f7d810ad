package bittrie

// --- NodePool ---

// NodePool is the arena holding every node of a trie. Nodes are addressed by
// their index in the Nodes slice and never move to another index.
type NodePool struct {
	Nodes []Node
}

// NewNodePool creates an empty pool with room for preAlloc nodes.
func NewNodePool(preAlloc int) *NodePool {
	if preAlloc <= 0 {
		preAlloc = 256
	}
	return &NodePool{
		Nodes: make([]Node, 0, preAlloc),
	}
}

// GetNode allocates a new empty node and returns its index.
// Pointers into Nodes obtained before the call may be stale afterwards.
func (p *NodePool) GetNode() Cursor {
	p.Nodes = append(p.Nodes, Node{})
	return Cursor(len(p.Nodes) - 1)
}

// Reset forgets about stored nodes (not freeing the memory)
func (p *NodePool) Reset() {
	p.Nodes = p.Nodes[:0]
}
