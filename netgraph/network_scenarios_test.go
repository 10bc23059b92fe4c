package netgraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KarolexDev/latticegraph/component"
	"github.com/KarolexDev/latticegraph/lattice"
	"github.com/KarolexDev/latticegraph/netgraph"
)

func pos(x, y, z int) lattice.Position { return lattice.Position{X: x, Y: y, Z: z} }

func newTestNetwork(opts ...netgraph.NetworkOption[component.IntCapacity]) *netgraph.Network[component.IntCapacity] {
	return netgraph.NewNetwork[component.IntCapacity](netgraph.NewNetworkID(), component.FromLength, opts...)
}

// TestStraightLineCompression is spec §8 scenario 1: five collinear
// blocks compress to two end nodes joined by one edge.
func TestStraightLineCompression(t *testing.T) {
	n := newTestNetwork()
	for i := 0; i <= 4; i++ {
		require.NoError(t, n.AddBlock(pos(i, 0, 0), component.FromLength(1)))
	}

	require.Len(t, n.Nodes(), 2)
	require.True(t, n.IsNode(pos(0, 0, 0)))
	require.True(t, n.IsNode(pos(4, 0, 0)))
	for i := 1; i <= 3; i++ {
		require.False(t, n.IsNode(pos(i, 0, 0)))
	}

	edges := n.Edges()
	require.Len(t, edges, 1)
	e := edges[0]
	require.Equal(t, 4, e.Length())
	require.Equal(t, component.IntCapacity(300), e.Component())
	require.Equal(t, []lattice.Position{pos(1, 0, 0), pos(2, 0, 0), pos(3, 0, 0)}, e.IntermediateBlocks())
}

// TestTJunctionFormation is spec §8 scenario 2.
func TestTJunctionFormation(t *testing.T) {
	n := newTestNetwork()
	for i := 0; i <= 4; i++ {
		require.NoError(t, n.AddBlock(pos(i, 0, 0), component.FromLength(1)))
	}
	require.NoError(t, n.AddBlock(pos(2, 1, 0), component.FromLength(1)))

	require.Len(t, n.Nodes(), 4)
	for _, p := range []lattice.Position{pos(0, 0, 0), pos(4, 0, 0), pos(2, 1, 0), pos(2, 0, 0)} {
		require.True(t, n.IsNode(p), "expected %v to be a node", p)
	}
	require.Len(t, n.Edges(), 3)

	junctionEdge := n.EdgeAt(pos(1, 0, 0))
	require.NotNil(t, junctionEdge)
	require.Equal(t, []lattice.Position{pos(1, 0, 0)}, junctionEdge.IntermediateBlocks())

	otherEdge := n.EdgeAt(pos(3, 0, 0))
	require.NotNil(t, otherEdge)
	require.Equal(t, []lattice.Position{pos(3, 0, 0)}, otherEdge.IntermediateBlocks())

	spur := n.NodeAt(pos(2, 1, 0))
	require.NotNil(t, spur)
	require.Equal(t, 1, spur.Degree())
}

// TestMiddleRemoval is spec §8 scenario 3.
func TestMiddleRemoval(t *testing.T) {
	n := newTestNetwork()
	for i := 0; i <= 4; i++ {
		require.NoError(t, n.AddBlock(pos(i, 0, 0), component.FromLength(1)))
	}

	require.NoError(t, n.RemoveBlock(pos(2, 0, 0)))

	require.Len(t, n.Nodes(), 4)
	require.Len(t, n.Edges(), 2)
	require.False(t, n.Contains(pos(2, 0, 0)))

	total := component.IntCapacity(0)
	for _, node := range n.Nodes() {
		total = total.Add(node.Component())
	}
	for _, e := range n.Edges() {
		total = total.Add(e.Component())
		require.True(t, e.IsDirectLink())
	}
	require.Equal(t, component.IntCapacity(400), total)
}

// TestMultiBlockExtendableNode is spec §8 scenario 5.
func TestMultiBlockExtendableNode(t *testing.T) {
	extendable := map[lattice.Position]bool{
		pos(0, 0, 0): true,
		pos(1, 0, 0): true,
		pos(0, 1, 0): true,
	}
	n := newTestNetwork(
		netgraph.WithExtendableNode[component.IntCapacity](func(p lattice.Position) bool { return extendable[p] }),
	)
	for p := range extendable {
		require.NoError(t, n.AddBlock(p, component.FromLength(1)))
	}

	require.Len(t, n.Nodes(), 1)
	node := n.Nodes()[0]
	require.Equal(t, 3, len(node.BlockPositions()))
	require.Equal(t, component.IntCapacity(300), node.Component())
	require.Equal(t, 0, node.Degree())
}

// TestAddThenRemoveRoundTrip checks spec §8's round-trip property for a
// simple pair of adjacent blocks.
func TestAddThenRemoveRoundTrip(t *testing.T) {
	n := newTestNetwork()
	require.NoError(t, n.AddBlock(pos(0, 0, 0), component.FromLength(1)))
	require.NoError(t, n.AddBlock(pos(1, 0, 0), component.FromLength(1)))
	require.NoError(t, n.RemoveBlock(pos(1, 0, 0)))

	require.Len(t, n.Nodes(), 1)
	require.Len(t, n.Edges(), 0)
	require.True(t, n.IsNode(pos(0, 0, 0)))
}

// TestRebuildMatchesIncrementalStraightLine asserts rebuild() against
// the same component_map reproduces an isomorphic graph, per the
// rebuild-is-reference-semantics invariant (spec §4.3.6).
func TestRebuildMatchesIncrementalStraightLine(t *testing.T) {
	n := newTestNetwork()
	for i := 0; i <= 4; i++ {
		require.NoError(t, n.AddBlock(pos(i, 0, 0), component.FromLength(1)))
	}
	require.NoError(t, n.Rebuild())

	require.Len(t, n.Nodes(), 2)
	edges := n.Edges()
	require.Len(t, edges, 1)
	require.Equal(t, component.IntCapacity(300), edges[0].Component())
	require.Equal(t, []lattice.Position{pos(1, 0, 0), pos(2, 0, 0), pos(3, 0, 0)}, edges[0].IntermediateBlocks())
}
