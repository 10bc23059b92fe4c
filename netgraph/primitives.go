package netgraph

import (
	"github.com/KarolexDev/latticegraph/component"
	"github.com/KarolexDev/latticegraph/lattice"
)

// splitEdgeAt carves a new node out of e at an intermediate position,
// producing two edges either side of it (spec §4.3.3). Fails if pos is
// not one of e's intermediate blocks.
//
// The new node takes from_length(1) out of e's component; the
// remainder is partitioned between the two new edges proportional to
// (max(left_len,1), max(right_len,1)) — both sides are floored to 1
// even when empty, so an edge shrinking to a direct link on one side
// still receives a proportional, non-zero share (as if it held one
// block) rather than an undefined 0:n ratio.
func (n *Network[C]) splitEdgeAt(e *Edge[C], pos lattice.Position) (*Node[C], error) {
	idx := -1
	for i, p := range e.intermediate {
		if p == pos {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrPositionNotIntermediate
	}

	left := append([]lattice.Position(nil), e.intermediate[:idx]...)
	right := append([]lattice.Position(nil), e.intermediate[idx+1:]...)

	nodeComp := n.fromLength(1)
	remainder := e.comp.Del(nodeComp)

	leftLen, rightLen := len(left), len(right)
	if leftLen == 0 {
		leftLen = 1
	}
	if rightLen == 0 {
		rightLen = 1
	}
	lcomp, rcomp := remainder.Partition(leftLen, rightLen)

	n.deregisterEdge(e)

	node := newNode[C](pos, nodeComp)
	n.registerNode(node)

	leftEdge := &Edge[C]{
		id: newEdgeID(), start: e.start, end: node.id,
		startPos: e.startPos, endPos: pos,
		intermediate: left, comp: lcomp,
	}
	n.registerEdge(leftEdge)

	rightEdge := &Edge[C]{
		id: newEdgeID(), start: node.id, end: e.end,
		startPos: pos, endPos: e.endPos,
		intermediate: right, comp: rcomp,
	}
	n.registerEdge(rightEdge)

	return node, nil
}

// mergeNodes absorbs drop's block positions, component, and edges into
// keep (spec §4.3.4). An edge directly linking keep and drop becomes
// degenerate once they are the same node and is dropped rather than
// turned into a self-loop. drop is removed from the node set; keep's
// componentMap entries (old and newly absorbed) are rewritten to the
// merged component.
func (n *Network[C]) mergeNodes(keep, drop *Node[C]) {
	if keep.id == drop.id {
		return
	}
	for pos := range drop.blockPositions {
		keep.blockPositions[pos] = struct{}{}
		n.nodeMap[pos] = keep.id
	}
	keep.comp = keep.comp.Add(drop.comp)

	for eid := range drop.edgeIDs {
		e, ok := n.edges[eid]
		if !ok {
			continue
		}
		other, err := e.opposite(drop.id)
		if err != nil {
			continue
		}
		if other == keep.id {
			n.deregisterEdge(e)
			continue
		}
		if e.start == drop.id {
			e.start = keep.id
		} else {
			e.end = keep.id
		}
		keep.edgeIDs[eid] = struct{}{}
	}

	n.deregisterNode(drop)
	n.syncNodeComponentMap(keep)
}

// collapseDegreeTwoNode splices node out of the graph when it has
// become a plain pass-through (exactly two distinct incident edges,
// neither a self-loop, and not pinned by is_always_node), replacing
// node and its two edges with a single edge between the two opposite
// endpoints (spec §4.3.5). Returns false, nil when node is not eligible
// for collapse — that is a normal outcome, not an error.
func (n *Network[C]) collapseDegreeTwoNode(node *Node[C]) (bool, error) {
	if len(node.edgeIDs) != 2 {
		return false, nil
	}
	for p := range node.blockPositions {
		if n.isAlwaysNode(p) {
			return false, nil
		}
	}

	var eids [2]EdgeID
	i := 0
	for id := range node.edgeIDs {
		eids[i] = id
		i++
	}
	e1, e2 := n.edges[eids[0]], n.edges[eids[1]]
	if e1.start == e1.end || e2.start == e2.end {
		return false, nil
	}
	// Orient the merged edge from the endpoint whose attachment position
	// sorts first (x, then y, then z), as Rebuild does, so the result does
	// not depend on map iteration order.
	farPos := func(e *Edge[C]) lattice.Position {
		if e.start == node.id {
			return e.endPos
		}
		return e.startPos
	}
	a, b := farPos(e1), farPos(e2)
	if b.X < a.X || (b.X == a.X && (b.Y < a.Y || (b.Y == a.Y && b.Z < a.Z))) {
		e1, e2 = e2, e1
	}

	o1, err := e1.opposite(node.id)
	if err != nil {
		return false, err
	}
	o2, err := e2.opposite(node.id)
	if err != nil {
		return false, err
	}

	attach1 := e1.endPos
	if e1.start == node.id {
		attach1 = e1.startPos
	}
	attach2 := e2.endPos
	if e2.start == node.id {
		attach2 = e2.startPos
	}

	ordered, err := orderedBlockPositions[C](node, attach1, attach2)
	if err != nil {
		return false, err
	}

	merged := e1.comp.Add(node.comp).Add(e2.comp)

	var path []lattice.Position
	if e1.end == node.id {
		path = append(path, e1.intermediate...)
	} else {
		path = append(path, reversePositions(e1.intermediate)...)
	}
	path = append(path, ordered...)
	if e2.start == node.id {
		path = append(path, e2.intermediate...)
	} else {
		path = append(path, reversePositions(e2.intermediate)...)
	}

	var newStartPos lattice.Position
	if e1.start == o1 {
		newStartPos = e1.startPos
	} else {
		newStartPos = e1.endPos
	}
	var newEndPos lattice.Position
	if e2.start == o2 {
		newEndPos = e2.startPos
	} else {
		newEndPos = e2.endPos
	}

	n.deregisterEdge(e1)
	n.deregisterEdge(e2)
	n.deregisterNode(node)

	newEdge := &Edge[C]{
		id: newEdgeID(), start: o1, end: o2,
		startPos: newStartPos, endPos: newEndPos,
		intermediate: path, comp: merged,
	}
	n.registerEdge(newEdge)
	return true, nil
}

// orderedBlockPositions walks node's own block positions into a simple
// path running from the edge-attachment position `from` to `to`,
// inclusive. Returns an InvariantError if the positions do not form
// such a path (a node eligible for degree-two collapse always does, in
// practice — this guards the assumption rather than handling a
// reachable case).
func orderedBlockPositions[C component.Component[C]](node *Node[C], from, to lattice.Position) ([]lattice.Position, error) {
	positions := node.BlockPositions()
	if len(positions) == 1 {
		return positions, nil
	}
	set := make(map[lattice.Position]bool, len(positions))
	for _, p := range positions {
		set[p] = true
	}
	adj := make(map[lattice.Position][]lattice.Position, len(positions))
	for _, p := range positions {
		for _, q := range lattice.Neighbors(p) {
			if set[q] {
				adj[p] = append(adj[p], q)
			}
		}
	}

	ordered := []lattice.Position{from}
	visited := map[lattice.Position]bool{from: true}
	cur := from
	for cur != to {
		advanced := false
		for _, q := range adj[cur] {
			if !visited[q] {
				ordered = append(ordered, q)
				visited[q] = true
				cur = q
				advanced = true
				break
			}
		}
		if !advanced {
			return nil, invariantf("collapse_degree_two_node", "node block positions do not form a simple path between edge attachment points")
		}
	}
	if len(ordered) != len(positions) {
		return nil, invariantf("collapse_degree_two_node", "node block positions are not all on the path between edge attachment points")
	}
	return ordered, nil
}

func reversePositions(s []lattice.Position) []lattice.Position {
	out := make([]lattice.Position, len(s))
	for i, p := range s {
		out[len(s)-1-i] = p
	}
	return out
}
