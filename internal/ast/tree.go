package ast

import (
	"fmt"

	"fortio.org/safecast"

	"weld/internal/source"
)

// Tree stores nodes in a compact slice-based arena. Index 0 is reserved
// for NoNodeID. Both freshly decoded front-end output and fully linked
// environments use the same representation.
type Tree struct {
	Strings *source.Interner
	Root    NodeID

	nodes []Node
}

// NewTree creates a tree with an optional capacity hint. If strings is
// nil, a fresh interner is allocated.
func NewTree(strings *source.Interner, capacity uint) *Tree {
	if strings == nil {
		strings = source.NewInterner()
	}
	if capacity == 0 {
		capacity = 1 << 6
	}
	return &Tree{
		Strings: strings,
		nodes:   make([]Node, 1, capacity+1),
	}
}

// New allocates a node and returns its ID.
func (t *Tree) New(n Node) NodeID {
	value, err := safecast.Conv[uint32](len(t.nodes))
	if err != nil {
		panic(fmt.Errorf("node arena overflow: %w", err))
	}
	id := NodeID(value)
	t.nodes = append(t.nodes, n)
	return id
}

// Get returns the node pointer or nil if ID is invalid.
func (t *Tree) Get(id NodeID) *Node {
	if !id.IsValid() || int(id) >= len(t.nodes) {
		return nil
	}
	return &t.nodes[id]
}

// Len reports the number of nodes excluding the sentinel.
func (t *Tree) Len() int { return len(t.nodes) - 1 }

// Walk visits id and its whole subtree in pre-order, passing each node
// together with the parent it was reached from.
func (t *Tree) Walk(id, parent NodeID, visit func(id, parent NodeID)) {
	n := t.Get(id)
	if n == nil {
		return
	}
	visit(id, parent)
	for _, child := range n.Children(nil) {
		t.Walk(child, id, visit)
	}
}

// Name returns the interned name of id, or "" for unnamed nodes.
func (t *Tree) Name(id NodeID) string {
	n := t.Get(id)
	if n == nil || n.Name == source.NoStringID {
		return ""
	}
	s, _ := t.Strings.Lookup(n.Name)
	return s
}
