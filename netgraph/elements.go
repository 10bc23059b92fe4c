package netgraph

import (
	"github.com/KarolexDev/latticegraph/component"
	"github.com/KarolexDev/latticegraph/lattice"
)

// syncNodeComponentMap rewrites componentMap for every position owned by
// node to the node's current aggregate component. componentMap always
// holds, for each owned position, the aggregate component of the
// element that owns it (not a per-position share) — this is what makes
// ComponentAt(p) meaningful for any p inside a multi-block node.
func (n *Network[C]) syncNodeComponentMap(node *Node[C]) {
	for pos := range node.blockPositions {
		n.componentMap[pos] = node.comp
	}
}

// syncEdgeComponentMap rewrites componentMap for every intermediate
// position of e to e's current aggregate component.
func (n *Network[C]) syncEdgeComponentMap(e *Edge[C]) {
	for _, pos := range e.intermediate {
		n.componentMap[pos] = e.comp
	}
}

// registerNode adds node to the node set and indexes all of its positions.
func (n *Network[C]) registerNode(node *Node[C]) {
	n.nodes[node.id] = node
	for pos := range node.blockPositions {
		n.nodeMap[pos] = node.id
	}
	n.syncNodeComponentMap(node)
}

// deregisterNode removes node from the node set and its position index.
// Any edges still incident to it are NOT touched — callers must
// deregister those edges first (ownership: an edge's lifetime is bounded
// by both endpoints, spec §3).
func (n *Network[C]) deregisterNode(node *Node[C]) {
	delete(n.nodes, node.id)
	for pos := range node.blockPositions {
		delete(n.nodeMap, pos)
	}
}

// registerEdge adds e to the edge set, indexes its intermediate
// positions, and attaches it to both endpoint nodes' incident-edge sets.
func (n *Network[C]) registerEdge(e *Edge[C]) {
	n.edges[e.id] = e
	for _, pos := range e.intermediate {
		n.edgeBlockMap[pos] = e.id
	}
	n.syncEdgeComponentMap(e)
	if start, ok := n.nodes[e.start]; ok {
		start.edgeIDs[e.id] = struct{}{}
	}
	if end, ok := n.nodes[e.end]; ok {
		end.edgeIDs[e.id] = struct{}{}
	}
}

// deregisterEdge removes e from the edge set and its intermediate
// position index, and detaches it from both endpoint nodes. The
// componentMap and rawMap entries of its intermediate positions are left
// in place; callers either re-register those positions or drop them with
// removePosition.
func (n *Network[C]) deregisterEdge(e *Edge[C]) {
	delete(n.edges, e.id)
	for _, pos := range e.intermediate {
		delete(n.edgeBlockMap, pos)
	}
	if start, ok := n.nodes[e.start]; ok {
		delete(start.edgeIDs, e.id)
	}
	if end, ok := n.nodes[e.end]; ok {
		delete(end.edgeIDs, e.id)
	}
}

// removePosition deletes p from componentMap and rawMap entirely (used
// once a position is no longer owned by any node or edge).
func (n *Network[C]) removePosition(p lattice.Position) {
	delete(n.componentMap, p)
	delete(n.rawMap, p)
}

// newDirectEdge builds and returns an unregistered direct-link edge
// between start/end at startPos/endPos with the given component.
func newDirectEdge[C component.Component[C]](start, end NodeID, startPos, endPos lattice.Position, comp C) *Edge[C] {
	return &Edge[C]{
		id:       newEdgeID(),
		start:    start,
		end:      end,
		startPos: startPos,
		endPos:   endPos,
		comp:     comp,
	}
}
