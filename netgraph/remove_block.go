package netgraph

import "github.com/KarolexDev/latticegraph/lattice"

// RemoveBlock deletes the block at p, shrinking the graph in place
// (spec §4.3.2). A p not currently a member of this Network is a
// silent no-op (spec §7: unknown-position failures are never fatal).
//
// Single-block removal can silently disconnect the network; this
// method does not detect that split — callers doing bulk removal (or
// loading external state) must follow up with the registry's
// RecalculateNetworks, per spec's split-detection caveat (§4.4).
func (n *Network[C]) RemoveBlock(p lattice.Position) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if _, exists := n.componentMap[p]; !exists {
		return nil
	}

	var err error
	if node := n.nodeAtLocked(p); node != nil {
		err = n.removeNodePosition(p, node)
	} else {
		err = n.removeIntermediatePosition(p)
	}
	if err != nil {
		return err
	}

	n.hooks.fireBlockRemoved(n)
	n.hooks.fireGraphUpdated(n)
	return nil
}

// removeNodePosition handles p being a node position: detach-only for a
// multi-block node, or full tip-node reconstruction for a singleton.
func (n *Network[C]) removeNodePosition(p lattice.Position, node *Node[C]) error {
	if len(node.blockPositions) > 1 {
		// node.comp is the node's aggregate; componentMap[p] mirrors that
		// same aggregate at every position the node owns, so only rawMap[p]
		// holds the one block's own raw contribution to subtract out.
		removed := n.rawMap[p]
		node.comp = node.comp.Del(removed)
		delete(node.blockPositions, p)
		delete(n.nodeMap, p)
		n.removePosition(p)
		n.syncNodeComponentMap(node)
		return nil
	}
	return n.removeSingletonNode(p, node)
}

// removeSingletonNode implements spec §4.3.2's singleton-node branch:
// every incident edge either vanishes (direct link) or is replaced by
// a shorter edge ending in a freshly split-off tip node, after which
// each opposite endpoint is checked for degree-two collapse.
//
// Read-then-delete order: the full set of incident edges is read
// before any are deregistered, because deregistering one edge mutates
// node.edgeIDs out from under a live range over it.
func (n *Network[C]) removeSingletonNode(p lattice.Position, node *Node[C]) error {
	edgeIDs := make([]EdgeID, 0, len(node.edgeIDs))
	for eid := range node.edgeIDs {
		edgeIDs = append(edgeIDs, eid)
	}

	opposites := make(map[NodeID]struct{}, len(edgeIDs))
	for _, eid := range edgeIDs {
		e := n.edges[eid]
		opp, err := e.opposite(node.id)
		if err != nil {
			return err
		}
		opposites[opp] = struct{}{}

		if e.IsDirectLink() {
			n.deregisterEdge(e)
			continue
		}

		fromStart := e.start == node.id
		var tip lattice.Position
		if fromStart {
			tip = e.intermediate[0]
		} else {
			tip = e.intermediate[len(e.intermediate)-1]
		}

		tipNodeComp := n.fromLength(1)
		var remainingIntermediate []lattice.Position
		var edgeComp C
		if len(e.intermediate) > 1 {
			if fromStart {
				remainingIntermediate = append([]lattice.Position(nil), e.intermediate[1:]...)
			} else {
				remainingIntermediate = append([]lattice.Position(nil), e.intermediate[:len(e.intermediate)-1]...)
			}
			edgeComp = e.comp.Del(tipNodeComp)
		} else {
			edgeComp = n.fromLength(0)
		}

		n.deregisterEdge(e)

		tipNode := newNode[C](tip, tipNodeComp)
		n.registerNode(tipNode)

		// The new edge always runs opp->tip. remainingIntermediate keeps
		// E's original start-to-end order, which already runs
		// opp-side-first when opp==E.start (fromStart==false) but needs
		// reversing when opp==E.end (fromStart==true).
		path := remainingIntermediate
		if fromStart {
			path = reversePositions(remainingIntermediate)
		}
		newEdge := &Edge[C]{id: newEdgeID(), comp: edgeComp, intermediate: path}
		if fromStart {
			// opp == e.end, so opp's own side position is e.endPos.
			newEdge.start, newEdge.end = opp, tipNode.id
			newEdge.startPos, newEdge.endPos = e.endPos, tip
		} else {
			// opp == e.start, so opp's own side position is e.startPos.
			newEdge.start, newEdge.end = opp, tipNode.id
			newEdge.startPos, newEdge.endPos = e.startPos, tip
		}
		n.registerEdge(newEdge)
	}

	n.deregisterNode(node)
	n.removePosition(p)

	for opp := range opposites {
		oppNode, ok := n.nodes[opp]
		if !ok {
			continue
		}
		if _, err := n.collapseDegreeTwoNode(oppNode); err != nil {
			return err
		}
	}
	return nil
}

// removeIntermediatePosition handles p being an intermediate of edge E
// (spec §4.3.2, second branch): split the remaining path into two
// halves around the gap left by p, turning each non-empty half into a
// new tip node plus a shorter edge back to E's original endpoint on
// that side.
func (n *Network[C]) removeIntermediatePosition(p lattice.Position) error {
	e := n.edgeAtLocked(p)
	if e == nil {
		return invariantf("remove_block", "position is indexed as an intermediate but owns no edge")
	}

	idx := -1
	for i, q := range e.intermediate {
		if q == p {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrPositionNotIntermediate
	}

	first := append([]lattice.Position(nil), e.intermediate[:idx]...)
	second := append([]lattice.Position(nil), e.intermediate[idx+1:]...)

	removed := n.fromLength(1)
	remainder := e.comp.Del(removed)
	left, right := remainder.Partition(len(first), len(second))

	startNode, endNode := e.start, e.end
	startPos, endPos := e.startPos, e.endPos

	n.deregisterEdge(e)
	n.removePosition(p)

	if len(first) > 0 {
		if err := n.reattachTip(startNode, startPos, first, left, true); err != nil {
			return err
		}
	}
	if len(second) > 0 {
		if err := n.reattachTip(endNode, endPos, second, right, false); err != nil {
			return err
		}
	}

	for _, opp := range []NodeID{startNode, endNode} {
		oppNode, ok := n.nodes[opp]
		if !ok {
			continue
		}
		if _, err := n.collapseDegreeTwoNode(oppNode); err != nil {
			return err
		}
	}
	return nil
}

// reattachTip builds the new tip node and shortened edge for one
// non-empty half of a split edge path. fromStart indicates whether
// half runs away from the original start endpoint (so its first
// element is nearest that endpoint) or away from the end endpoint
// (so its last element is nearest that endpoint).
func (n *Network[C]) reattachTip(endpoint NodeID, endpointPos lattice.Position, halfPath []lattice.Position, halfComp C, fromStart bool) error {
	var tipPos lattice.Position
	if fromStart {
		tipPos = halfPath[len(halfPath)-1]
	} else {
		tipPos = halfPath[0]
	}

	tipNodeComp := n.fromLength(1)
	var inner []lattice.Position
	var edgeComp C
	if len(halfPath) > 1 {
		if fromStart {
			inner = append([]lattice.Position(nil), halfPath[:len(halfPath)-1]...)
		} else {
			inner = append([]lattice.Position(nil), halfPath[1:]...)
		}
		edgeComp = halfComp.Del(tipNodeComp)
	} else {
		edgeComp = n.fromLength(0)
	}

	tipNode := newNode[C](tipPos, tipNodeComp)
	n.registerNode(tipNode)

	newEdge := &Edge[C]{id: newEdgeID(), comp: edgeComp}
	if fromStart {
		newEdge.start, newEdge.end = endpoint, tipNode.id
		newEdge.startPos, newEdge.endPos = endpointPos, tipPos
		newEdge.intermediate = inner
	} else {
		newEdge.start, newEdge.end = tipNode.id, endpoint
		newEdge.startPos, newEdge.endPos = tipPos, endpointPos
		newEdge.intermediate = inner
	}
	n.registerEdge(newEdge)
	return nil
}
