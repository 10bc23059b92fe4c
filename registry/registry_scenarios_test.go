package registry_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KarolexDev/latticegraph/component"
	"github.com/KarolexDev/latticegraph/lattice"
	"github.com/KarolexDev/latticegraph/netgraph"
	"github.com/KarolexDev/latticegraph/registry"
)

func pos(x, y, z int) lattice.Position { return lattice.Position{X: x, Y: y, Z: z} }

func newTestRegistry() *registry.Registry[component.IntCapacity] {
	return registry.New[component.IntCapacity](component.FromLength)
}

// TestBridgeMergeOfTwoNetworks is spec §8 scenario 4.
func TestBridgeMergeOfTwoNetworks(t *testing.T) {
	r := newTestRegistry()

	for _, p := range []lattice.Position{pos(0, 0, 0), pos(1, 0, 0)} {
		_, err := r.OnBlockPlaced(p, component.FromLength(1))
		require.NoError(t, err)
	}
	for _, p := range []lattice.Position{pos(3, 0, 0), pos(4, 0, 0)} {
		_, err := r.OnBlockPlaced(p, component.FromLength(1))
		require.NoError(t, err)
	}
	require.Len(t, r.AllNetworks(), 2)

	merged, err := r.OnBlockPlaced(pos(2, 0, 0), component.FromLength(1))
	require.NoError(t, err)

	require.Len(t, r.AllNetworks(), 1)
	require.Len(t, merged.Nodes(), 2)
	edges := merged.Edges()
	require.Len(t, edges, 1)
	require.Equal(t, []lattice.Position{pos(1, 0, 0), pos(2, 0, 0), pos(3, 0, 0)}, edges[0].IntermediateBlocks())

	for _, p := range []lattice.Position{pos(0, 0, 0), pos(1, 0, 0), pos(2, 0, 0), pos(3, 0, 0), pos(4, 0, 0)} {
		require.Equal(t, merged, r.NetworkAt(p))
	}
}

// TestRecalculateAfterDisconnectingRemoval is spec §8 scenario 6.
func TestRecalculateAfterDisconnectingRemoval(t *testing.T) {
	r := newTestRegistry()
	store := make(map[lattice.Position]component.IntCapacity)
	place := func(p lattice.Position) {
		c := component.FromLength(1)
		store[p] = c
		_, err := r.OnBlockPlaced(p, c)
		require.NoError(t, err)
	}
	for i := 0; i <= 4; i++ {
		place(pos(i, 0, 0))
	}
	require.Len(t, r.AllNetworks(), 1)

	require.NoError(t, r.OnBlockRemoved(pos(2, 0, 0)))
	delete(store, pos(2, 0, 0))
	// Removal alone doesn't detect the split: still reported as one network.
	require.Len(t, r.AllNetworks(), 1)

	require.NoError(t, r.RecalculateNetworks(func(p lattice.Position) component.IntCapacity {
		return store[p]
	}))

	nets := r.AllNetworks()
	require.Len(t, nets, 2)

	sizes := []int{nets[0].Size(), nets[1].Size()}
	require.ElementsMatch(t, []int{2, 2}, sizes)
	require.Equal(t, r.NetworkAt(pos(0, 0, 0)), r.NetworkAt(pos(1, 0, 0)))
	require.Equal(t, r.NetworkAt(pos(3, 0, 0)), r.NetworkAt(pos(4, 0, 0)))
	require.NotEqual(t, r.NetworkAt(pos(0, 0, 0)), r.NetworkAt(pos(3, 0, 0)))
}

// TestOnBlockPlacedCreatesThenDestroysOnRemoval exercises the
// create/destroy lifecycle hooks end to end.
func TestOnBlockPlacedCreatesThenDestroysOnRemoval(t *testing.T) {
	var created, destroyed int
	r := registry.New[component.IntCapacity](component.FromLength,
		registry.WithLifecycleHooks[component.IntCapacity](registry.Hooks[component.IntCapacity]{
			OnNetworkCreated:   func(n *netgraph.Network[component.IntCapacity]) { created++ },
			OnNetworkDestroyed: func(n *netgraph.Network[component.IntCapacity]) { destroyed++ },
		}),
	)

	_, err := r.OnBlockPlaced(pos(0, 0, 0), component.FromLength(1))
	require.NoError(t, err)
	require.Equal(t, 1, created)
	require.Equal(t, 0, destroyed)

	require.NoError(t, r.OnBlockRemoved(pos(0, 0, 0)))
	require.Equal(t, 1, created)
	require.Equal(t, 1, destroyed)
	require.Empty(t, r.AllNetworks())
}

// TestBlockPlacedDelegatesToSingleNeighboringNetwork covers the len(seen)==1
// branch of OnBlockPlaced, distinct from both the new-network and
// merge branches already exercised above.
func TestBlockPlacedDelegatesToSingleNeighboringNetwork(t *testing.T) {
	r := newTestRegistry()
	_, err := r.OnBlockPlaced(pos(0, 0, 0), component.FromLength(1))
	require.NoError(t, err)

	net, err := r.OnBlockPlaced(pos(1, 0, 0), component.FromLength(1))
	require.NoError(t, err)

	require.Len(t, r.AllNetworks(), 1)
	require.Equal(t, net, r.NetworkAt(pos(0, 0, 0)))
	require.Equal(t, net, r.NetworkAt(pos(1, 0, 0)))
}
