package netgraph

import "github.com/KarolexDev/latticegraph/lattice"

// AddBlock places a new block at p with component c, growing the graph
// in place (spec §4.3.1). Returns ErrBlockExists if p is already a
// member of this Network.
func (n *Network[C]) AddBlock(p lattice.Position, c C) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if _, exists := n.componentMap[p]; exists {
		return ErrBlockExists
	}
	n.componentMap[p] = c
	n.rawMap[p] = c

	var err error
	if n.shouldBeNode(p) {
		err = n.addBlockAsNode(p, c)
	} else {
		err = n.addBlockAsIntermediate(p, c)
	}
	if err != nil {
		return err
	}

	n.hooks.fireBlockAdded(n)
	n.hooks.fireGraphUpdated(n)
	return nil
}

// addBlockAsNode handles the "p should be a node" branch: create a
// singleton node at p, then for every in-network neighbor either merge
// it in (both extendable), bridge it with a direct-link edge, or split
// the edge it is an intermediate of and bridge to the resulting node.
func (n *Network[C]) addBlockAsNode(p lattice.Position, c C) error {
	node := newNode[C](p, c)
	n.registerNode(node)

	for _, q := range n.calculateNetworkNeighbors(p) {
		switch qNode := n.nodeAtLocked(q); {
		case qNode != nil:
			if n.isExtendableNode(p) && n.isExtendableNode(q) {
				n.mergeNodes(node, qNode)
				continue
			}
			edge := &Edge[C]{
				id: newEdgeID(), start: node.id, end: qNode.id,
				startPos: p, endPos: q,
				comp: n.fromLength(0),
			}
			n.registerEdge(edge)
			if _, err := n.collapseDegreeTwoNode(qNode); err != nil {
				return err
			}
		case n.edgeAtLocked(q) != nil:
			splitNode, err := n.splitEdgeAt(n.edgeAtLocked(q), q)
			if err != nil {
				return err
			}
			if n.isExtendableNode(p) && n.isExtendableNode(q) {
				n.mergeNodes(node, splitNode)
				continue
			}
			edge := &Edge[C]{
				id: newEdgeID(), start: node.id, end: splitNode.id,
				startPos: p, endPos: q,
				comp: n.fromLength(0),
			}
			n.registerEdge(edge)
		default:
			return invariantf("add_block", "in-network neighbor is neither a node nor an edge intermediate")
		}
	}
	return nil
}

// addBlockAsIntermediate handles the "p should not be a node" branch:
// p bridges its exactly-two in-network neighbors, which are each
// either an existing node or an edge intermediate to be split first.
func (n *Network[C]) addBlockAsIntermediate(p lattice.Position, c C) error {
	neighbors := n.calculateNetworkNeighbors(p)
	if len(neighbors) != 2 {
		return invariantf("add_block", "non-node insertion requires exactly two in-network neighbors")
	}
	n1, n2 := neighbors[0], neighbors[1]

	startNode, err := n.resolveBridgeEndpoint(n1)
	if err != nil {
		return err
	}
	// Re-resolve n2 after any split at n1: if n1 and n2 were intermediates
	// of the same edge, splitting at n1 moved n2 onto a new edge instance.
	endNode, err := n.resolveBridgeEndpoint(n2)
	if err != nil {
		return err
	}

	edge := &Edge[C]{
		id: newEdgeID(), start: startNode, end: endNode,
		startPos: n1, endPos: n2,
		intermediate: []lattice.Position{p},
		comp:         c,
	}
	n.registerEdge(edge)
	return nil
}

// resolveBridgeEndpoint returns the NodeID that a bridge edge through q
// should attach to: q's own node if it already is one, or the node
// produced by splitting the edge q is currently an intermediate of.
func (n *Network[C]) resolveBridgeEndpoint(q lattice.Position) (NodeID, error) {
	if node := n.nodeAtLocked(q); node != nil {
		return node.id, nil
	}
	e := n.edgeAtLocked(q)
	if e == nil {
		return "", invariantf("add_block", "bridge neighbor is neither a node nor an edge intermediate")
	}
	newNode, err := n.splitEdgeAt(e, q)
	if err != nil {
		return "", err
	}
	return newNode.id, nil
}
