package netgraph

import "github.com/KarolexDev/latticegraph/lattice"

// calculateNetworkNeighbors is the lattice-walk neighbor calculation:
// it consults only componentMap membership (never the graph structure),
// so it remains correct while the graph is mid-mutation (spec §4.3).
func (n *Network[C]) calculateNetworkNeighbors(p lattice.Position) []lattice.Position {
	var out []lattice.Position
	for _, q := range lattice.Neighbors(p) {
		if _, ok := n.componentMap[q]; ok {
			out = append(out, q)
		}
	}
	return out
}

// shouldBeNode reports whether p must be a node: the is_always_node
// predicate says so, p's in-network degree is not 2, or p is extendable
// and shares an edge with an extendable neighbor. That last clause is
// load-bearing even when p's degree happens to be exactly 2: two
// extendable positions adjacent to each other must always end up on the
// same node (spec §8's "adjacent extendable positions share the same
// node" invariant), regardless of how many other in-network neighbors
// either one has.
func (n *Network[C]) shouldBeNode(p lattice.Position) bool {
	if n.isAlwaysNode(p) {
		return true
	}
	if n.isExtendableNode(p) {
		for _, q := range n.calculateNetworkNeighbors(p) {
			if n.isExtendableNode(q) {
				return true
			}
		}
	}
	return len(n.calculateNetworkNeighbors(p)) != 2
}

// networkNeighbors is the graph-aware neighbor calculation for a
// stable (non-mutating) query: for a node position, it is the set of
// positions immediately reachable by stepping one block along each
// incident edge. O(degree). Structural mutations use
// calculateNetworkNeighbors instead since the graph is transiently
// inconsistent mid-operation.
func (n *Network[C]) networkNeighbors(p lattice.Position) []lattice.Position {
	nodeID, ok := n.nodeMap[p]
	if !ok {
		return nil
	}
	node := n.nodes[nodeID]
	out := make([]lattice.Position, 0, len(node.edgeIDs))
	for eid := range node.edgeIDs {
		e := n.edges[eid]
		out = append(out, e.stepFrom(nodeID))
	}
	return out
}

// stepFrom returns the first position outside node `from` as one walks
// along e: the first intermediate block, or (for a direct link) the
// node-side position of the opposite endpoint.
func (e *Edge[C]) stepFrom(from NodeID) lattice.Position {
	fromStart := e.start == from
	if len(e.intermediate) > 0 {
		if fromStart {
			return e.intermediate[0]
		}
		return e.intermediate[len(e.intermediate)-1]
	}
	if fromStart {
		return e.endPos
	}
	return e.startPos
}
