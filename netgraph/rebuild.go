package netgraph

import (
	"sort"

	"github.com/KarolexDev/latticegraph/lattice"
)

// Rebuild discards the current graph structure and reconstructs nodes
// and edges from scratch against the existing componentMap (spec
// §4.3.6). It is the reference semantics: any sequence of AddBlock and
// RemoveBlock calls must leave the Network in a state indistinguishable
// (up to node/edge identity) from rebuilding against the resulting
// componentMap.
func (n *Network[C]) Rebuild() error {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.rebuildLocked()
}

func (n *Network[C]) rebuildLocked() error {
	n.nodes = make(map[NodeID]*Node[C])
	n.edges = make(map[EdgeID]*Edge[C])
	n.nodeMap = make(map[lattice.Position]NodeID)
	n.edgeBlockMap = make(map[lattice.Position]EdgeID)

	positions := make([]lattice.Position, 0, len(n.componentMap))
	for p := range n.componentMap {
		positions = append(positions, p)
	}
	sortPositions(positions)

	// Pass 1: every position that must be a node becomes a singleton node,
	// seeded with its own raw contribution — componentMap[p] may still
	// hold a stale owner aggregate from before the rebuild, not p's share.
	for _, p := range positions {
		if n.shouldBeNode(p) {
			n.registerNode(newNode[C](p, n.rawMap[p]))
		}
	}

	// Pass 2: walk each node's neighbors, merging extendable pairs,
	// registering direct-link edges (deduplicated by endpoint pair), or
	// tracing and registering the edge through a run of intermediates.
	visited := make(map[lattice.Position]bool)
	registeredPairs := make(map[[2]NodeID]bool)

	nodePositions := make([]lattice.Position, 0, len(n.nodeMap))
	for p := range n.nodeMap {
		nodePositions = append(nodePositions, p)
	}
	sortPositions(nodePositions)

	for _, p := range nodePositions {
		pNode := n.nodes[n.nodeMap[p]]
		if pNode == nil {
			continue // absorbed into another node by an earlier merge
		}
		for _, q := range lattice.Neighbors(p) {
			if _, ok := n.componentMap[q]; !ok {
				continue
			}
			if !n.areConnected(p, q) {
				continue
			}
			if qNodeID, ok := n.nodeMap[q]; ok {
				qNode := n.nodes[qNodeID]
				if qNode.id == pNode.id {
					continue
				}
				if n.isExtendableNode(p) && n.isExtendableNode(q) {
					n.mergeNodes(pNode, qNode)
					continue
				}
				key := unorderedPairKey(pNode.id, qNode.id)
				if registeredPairs[key] {
					continue
				}
				registeredPairs[key] = true
				edge := &Edge[C]{
					id: newEdgeID(), start: pNode.id, end: qNode.id,
					startPos: p, endPos: q,
					comp: n.fromLength(0),
				}
				n.registerEdge(edge)
				continue
			}

			if visited[q] {
				continue
			}
			path, endPos, endNodeID, err := n.traceIntermediatePath(p, q, visited)
			if err != nil {
				return err
			}
			edge := &Edge[C]{
				id: newEdgeID(), start: pNode.id, end: endNodeID,
				startPos: p, endPos: endPos,
				intermediate: path,
				comp:         n.foldIntermediateComponent(path),
			}
			n.registerEdge(edge)
		}
	}
	return nil
}

// foldIntermediateComponent folds Add over rawMap[p] for every p in
// path, or returns from_length(0) for an empty path. It must fold raw
// per-block contributions, not componentMap's owner-aggregate values —
// those are already sums across every position a node or edge owns, and
// folding them again would multiply the true total.
func (n *Network[C]) foldIntermediateComponent(path []lattice.Position) C {
	if len(path) == 0 {
		return n.fromLength(0)
	}
	comp := n.rawMap[path[0]]
	for _, p := range path[1:] {
		comp = comp.Add(n.rawMap[p])
	}
	return comp
}

// traceIntermediatePath walks a linear run of intermediate positions
// starting at firstQ (reached from fromNodePos) until it lands on a
// node position, marking every position it crosses as visited so the
// opposite end of the same run is never traced a second time.
func (n *Network[C]) traceIntermediatePath(fromNodePos, firstQ lattice.Position, visited map[lattice.Position]bool) ([]lattice.Position, lattice.Position, NodeID, error) {
	var path []lattice.Position
	prev := fromNodePos
	cur := firstQ
	for {
		if nodeID, ok := n.nodeMap[cur]; ok {
			return path, cur, nodeID, nil
		}
		if visited[cur] {
			return nil, lattice.Position{}, "", invariantf("rebuild", "intermediate path revisits a position")
		}
		visited[cur] = true
		path = append(path, cur)

		next, found := lattice.Position{}, false
		for _, r := range lattice.Neighbors(cur) {
			if r == prev {
				continue
			}
			if _, ok := n.componentMap[r]; !ok {
				continue
			}
			if !n.areConnected(cur, r) {
				continue
			}
			next, found = r, true
			break
		}
		if !found {
			return nil, lattice.Position{}, "", invariantf("rebuild", "intermediate path dead-ends before reaching a node")
		}
		prev, cur = cur, next
	}
}

func unorderedPairKey(a, b NodeID) [2]NodeID {
	if a < b {
		return [2]NodeID{a, b}
	}
	return [2]NodeID{b, a}
}

func sortPositions(ps []lattice.Position) {
	sort.Slice(ps, func(i, j int) bool {
		a, b := ps[i], ps[j]
		if a.X != b.X {
			return a.X < b.X
		}
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.Z < b.Z
	})
}
