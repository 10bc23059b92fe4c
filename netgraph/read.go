package netgraph

import (
	"sort"

	"github.com/KarolexDev/latticegraph/lattice"
)

// ID returns the Network's stable identity.
func (n *Network[C]) ID() NetworkID {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.id
}

// Size returns the number of positions this Network occupies.
func (n *Network[C]) Size() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.componentMap)
}

// Contains reports whether p is a member of this Network.
func (n *Network[C]) Contains(p lattice.Position) bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	_, ok := n.componentMap[p]
	return ok
}

// Positions returns every position this Network occupies, in no
// particular order (callers needing determinism should sort).
func (n *Network[C]) Positions() []lattice.Position {
	n.mu.RLock()
	defer n.mu.RUnlock()
	out := make([]lattice.Position, 0, len(n.componentMap))
	for p := range n.componentMap {
		out = append(out, p)
	}
	return out
}

// Nodes returns all nodes, sorted by ID for deterministic iteration.
func (n *Network[C]) Nodes() []*Node[C] {
	n.mu.RLock()
	defer n.mu.RUnlock()
	out := make([]*Node[C], 0, len(n.nodes))
	for _, nd := range n.nodes {
		out = append(out, nd)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })
	return out
}

// Edges returns all edges, sorted by ID for deterministic iteration.
func (n *Network[C]) Edges() []*Edge[C] {
	n.mu.RLock()
	defer n.mu.RUnlock()
	out := make([]*Edge[C], 0, len(n.edges))
	for _, e := range n.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })
	return out
}

// NodeAt returns the node occupying p, or nil if p is not a node position.
func (n *Network[C]) NodeAt(p lattice.Position) *Node[C] {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.nodeAtLocked(p)
}

func (n *Network[C]) nodeAtLocked(p lattice.Position) *Node[C] {
	id, ok := n.nodeMap[p]
	if !ok {
		return nil
	}
	return n.nodes[id]
}

// EdgeAt returns the edge whose intermediate path contains p, or nil if
// p is not an intermediate position of any edge.
func (n *Network[C]) EdgeAt(p lattice.Position) *Edge[C] {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.edgeAtLocked(p)
}

func (n *Network[C]) edgeAtLocked(p lattice.Position) *Edge[C] {
	id, ok := n.edgeBlockMap[p]
	if !ok {
		return nil
	}
	return n.edges[id]
}

// IsNode reports whether p is currently a node position.
func (n *Network[C]) IsNode(p lattice.Position) bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	_, ok := n.nodeMap[p]
	return ok
}

// ComponentAt returns the component value attributed to p (from the
// owning node or edge) and whether p is a member of this Network.
func (n *Network[C]) ComponentAt(p lattice.Position) (C, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	c, ok := n.componentMap[p]
	return c, ok
}

// RawAt returns p's own raw per-block contribution (the value it was
// placed or seeded with) and whether p is a member of this Network.
// Unlike ComponentAt, this is never an owner's aggregate — it is the
// one genuine input needed to reconstruct totals by folding (Rebuild,
// or a caller copying positions between Networks), where ComponentAt's
// aggregate would be double-counted.
func (n *Network[C]) RawAt(p lattice.Position) (C, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	c, ok := n.rawMap[p]
	return c, ok
}

// SeedComponent populates componentMap[p] and rawMap[p] directly,
// bypassing the node/edge bookkeeping AddBlock performs. It exists for
// bulk loaders (the registry's network-merge and RecalculateNetworks
// paths) that populate many positions before a single trailing Rebuild,
// rather than paying for incremental graph surgery on every one. c must
// be p's raw per-block value, not an aggregate read back from another
// Network's node or edge.
func (n *Network[C]) SeedComponent(p lattice.Position, c C) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.componentMap[p] = c
	n.rawMap[p] = c
}

// Stats is a read-only snapshot of this Network's shape, used by the
// CLI and by tests asserting structural properties without depending
// on node/edge iteration order.
type Stats struct {
	Positions int
	Nodes     int
	Edges     int
	// DegreeHistogram maps degree -> number of nodes with that degree.
	DegreeHistogram map[int]int
}

// Stats returns a point-in-time structural summary of the Network.
func (n *Network[C]) Stats() Stats {
	n.mu.RLock()
	defer n.mu.RUnlock()
	hist := make(map[int]int)
	for _, nd := range n.nodes {
		hist[nd.Degree()]++
	}
	return Stats{
		Positions:       len(n.componentMap),
		Nodes:           len(n.nodes),
		Edges:           len(n.edges),
		DegreeHistogram: hist,
	}
}
