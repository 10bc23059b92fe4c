package netgraph

import (
	"sync"

	"github.com/KarolexDev/latticegraph/component"
	"github.com/KarolexDev/latticegraph/lattice"
)

// Node is a graph vertex covering one or more mutually adjacent
// positions. Degree is the size of its incident-edge set.
type Node[C component.Component[C]] struct {
	id             NodeID
	blockPositions map[lattice.Position]struct{}
	comp           C
	edgeIDs        map[EdgeID]struct{}
}

// ID returns the node's stable identity.
func (n *Node[C]) ID() NodeID { return n.id }

// Component returns the node's current aggregated payload.
func (n *Node[C]) Component() C { return n.comp }

// Degree returns the number of incident edges.
func (n *Node[C]) Degree() int { return len(n.edgeIDs) }

// BlockPositions returns the set of positions this node covers.
func (n *Node[C]) BlockPositions() []lattice.Position {
	out := make([]lattice.Position, 0, len(n.blockPositions))
	for p := range n.blockPositions {
		out = append(out, p)
	}
	return out
}

func newNode[C component.Component[C]](pos lattice.Position, comp C) *Node[C] {
	return &Node[C]{
		id:             newNodeID(),
		blockPositions: map[lattice.Position]struct{}{pos: {}},
		comp:           comp,
		edgeIDs:        make(map[EdgeID]struct{}),
	}
}

// Edge is a path connecting two (not necessarily distinct) nodes.
// IntermediateBlocks is the ordered sequence of lattice positions
// strictly between StartPos and EndPos; it may be empty ("direct
// link"). Length (in block-to-block segments) is len(Intermediate)+1.
type Edge[C component.Component[C]] struct {
	id           EdgeID
	start, end   NodeID
	startPos     lattice.Position
	endPos       lattice.Position
	intermediate []lattice.Position
	comp         C
}

// ID returns the edge's stable identity.
func (e *Edge[C]) ID() EdgeID { return e.id }

// Start returns the node ID at the start endpoint.
func (e *Edge[C]) Start() NodeID { return e.start }

// End returns the node ID at the end endpoint.
func (e *Edge[C]) End() NodeID { return e.end }

// StartPos returns the lattice position on the start node's side.
func (e *Edge[C]) StartPos() lattice.Position { return e.startPos }

// EndPos returns the lattice position on the end node's side.
func (e *Edge[C]) EndPos() lattice.Position { return e.endPos }

// IntermediateBlocks returns the ordered path strictly between the endpoints.
func (e *Edge[C]) IntermediateBlocks() []lattice.Position {
	out := make([]lattice.Position, len(e.intermediate))
	copy(out, e.intermediate)
	return out
}

// Component returns the edge's own aggregated payload (excluding node positions).
func (e *Edge[C]) Component() C { return e.comp }

// Length returns the number of block-to-block segments: len(intermediate)+1.
func (e *Edge[C]) Length() int { return len(e.intermediate) + 1 }

// IsDirectLink reports whether the edge has no intermediate blocks.
func (e *Edge[C]) IsDirectLink() bool { return len(e.intermediate) == 0 }

// opposite returns the endpoint of e that is not id. Fails with an
// InvariantError if id is not an endpoint of e (spec §7: "opposite-of
// called with a non-endpoint").
func (e *Edge[C]) opposite(id NodeID) (NodeID, error) {
	switch id {
	case e.start:
		return e.end, nil
	case e.end:
		return e.start, nil
	default:
		return "", invariantf("opposite", "node is not an endpoint of this edge")
	}
}

// Hooks is the capability-style callback table fired on structural
// change, replacing subclass-overridden hooks with plain closures
// (Design Notes §9). Every field is optional; nil hooks are no-ops.
// OnBlockAdded/OnBlockRemoved/OnGraphUpdated are fired by Network
// directly from AddBlock/RemoveBlock (spec §4.3.1/§4.3.2). Network never
// fires OnNetworkCreated/OnNetworkDestroyed, and neither does the
// registry: it reports network lifecycle through its own registry.Hooks
// table instead.
type Hooks[C component.Component[C]] struct {
	OnNetworkCreated   func(n *Network[C])
	OnNetworkDestroyed func(n *Network[C])
	OnBlockAdded       func(n *Network[C])
	OnBlockRemoved     func(n *Network[C])
	OnGraphUpdated     func(n *Network[C])
}

func (h Hooks[C]) fireBlockAdded(n *Network[C]) {
	if h.OnBlockAdded != nil {
		h.OnBlockAdded(n)
	}
}

func (h Hooks[C]) fireBlockRemoved(n *Network[C]) {
	if h.OnBlockRemoved != nil {
		h.OnBlockRemoved(n)
	}
}

func (h Hooks[C]) fireGraphUpdated(n *Network[C]) {
	if h.OnGraphUpdated != nil {
		h.OnGraphUpdated(n)
	}
}

// Network is the owning container of a connected lattice component: its
// position->element maps, node set, and edge set, plus the pluggable
// predicates that drive node promotion/collapse and connectivity.
type Network[C component.Component[C]] struct {
	mu sync.RWMutex

	id NetworkID

	componentMap map[lattice.Position]C
	// rawMap holds each position's raw per-block value, the one it was
	// placed or seeded with — never an owner's aggregate. Rebuild and any
	// caller reconstructing totals by folding must read this, not
	// componentMap, to avoid double-counting an already-aggregated value.
	rawMap       map[lattice.Position]C
	nodeMap      map[lattice.Position]NodeID // position -> owning node, node positions only
	edgeBlockMap map[lattice.Position]EdgeID // position -> owning edge, intermediate positions only

	nodes map[NodeID]*Node[C]
	edges map[EdgeID]*Edge[C]

	fromLength       component.FromLengthFunc[C]
	isAlwaysNode     func(lattice.Position) bool
	isExtendableNode func(lattice.Position) bool
	areConnected     func(a, b lattice.Position) bool

	hooks Hooks[C]
}

// NetworkOption configures a Network before first use, mirroring
// core.GraphOption / bfs.Option's functional-option shape.
type NetworkOption[C component.Component[C]] func(*Network[C])

// WithAlwaysNode supplies the is_always_node predicate (default: never).
func WithAlwaysNode[C component.Component[C]](pred func(lattice.Position) bool) NetworkOption[C] {
	return func(n *Network[C]) { n.isAlwaysNode = pred }
}

// WithExtendableNode supplies the is_extendable_node predicate (default: never).
func WithExtendableNode[C component.Component[C]](pred func(lattice.Position) bool) NetworkOption[C] {
	return func(n *Network[C]) { n.isExtendableNode = pred }
}

// WithAreConnected overrides the connectivity filter used by Rebuild
// (default: lattice.Adjacent).
func WithAreConnected[C component.Component[C]](pred func(a, b lattice.Position) bool) NetworkOption[C] {
	return func(n *Network[C]) { n.areConnected = pred }
}

// WithHooks installs the lifecycle hook table (default: all no-op).
func WithHooks[C component.Component[C]](h Hooks[C]) NetworkOption[C] {
	return func(n *Network[C]) { n.hooks = h }
}

// NewNetwork constructs an empty Network with the given id and
// component algebra constructor, applying any NetworkOptions.
func NewNetwork[C component.Component[C]](id NetworkID, fromLength component.FromLengthFunc[C], opts ...NetworkOption[C]) *Network[C] {
	n := &Network[C]{
		id:               id,
		componentMap:     make(map[lattice.Position]C),
		rawMap:           make(map[lattice.Position]C),
		nodeMap:          make(map[lattice.Position]NodeID),
		edgeBlockMap:     make(map[lattice.Position]EdgeID),
		nodes:            make(map[NodeID]*Node[C]),
		edges:            make(map[EdgeID]*Edge[C]),
		fromLength:       fromLength,
		isAlwaysNode:     func(lattice.Position) bool { return false },
		isExtendableNode: func(lattice.Position) bool { return false },
		areConnected:     lattice.Adjacent,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}
