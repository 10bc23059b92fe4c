package registry

import (
	"sort"

	"github.com/KarolexDev/latticegraph/lattice"
	"github.com/KarolexDev/latticegraph/netgraph"
)

// RecalculateNetworks performs a full world recompute (spec §4.4): it
// takes the registry's current position set, discards all existing
// Networks, and flood-fills via lattice adjacency plus the
// areConnected predicate to rediscover connected components. Each
// component becomes a fresh Network, seeded from componentSource and
// rebuilt. componentSource must return each position's raw per-block
// value (what it was originally placed with), not an aggregate read
// back from a node or edge — Rebuild folds these values back into
// totals, and folding an aggregate would double-count it.
//
// This is the caller's tool for detecting splits that single-block
// removal leaves silent (spec §4.4's split-detection caveat): run it
// after bulk removals or on load.
func (r *Registry[C]) RecalculateNetworks(componentSource func(lattice.Position) C) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	known := make(map[lattice.Position]bool, len(r.posToNetwork))
	positions := make([]lattice.Position, 0, len(r.posToNetwork))
	for p := range r.posToNetwork {
		known[p] = true
		positions = append(positions, p)
	}
	sort.Slice(positions, func(i, j int) bool {
		a, b := positions[i], positions[j]
		if a.X != b.X {
			return a.X < b.X
		}
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.Z < b.Z
	})

	r.posToNetwork = make(map[lattice.Position]netgraph.NetworkID)
	r.networks = make(map[netgraph.NetworkID]*netgraph.Network[C])

	visited := make(map[lattice.Position]bool, len(positions))
	for _, p := range positions {
		if visited[p] {
			continue
		}
		w := newWalker(known, r.areConnected, visited)
		component := w.component(p)

		net := netgraph.NewNetwork[C](netgraph.NewNetworkID(), r.fromLength, r.networkOptions()...)
		for _, q := range component {
			net.SeedComponent(q, componentSource(q))
		}
		if err := net.Rebuild(); err != nil {
			return err
		}

		for _, q := range component {
			r.posToNetwork[q] = net.ID()
		}
		r.networks[net.ID()] = net
		r.metrics.rebuilt()
		r.fireNetworkCreated(net)
	}

	r.metrics.setNetworkCount(len(r.networks))
	r.refreshElementMetrics()
	r.logger.Info("recalculated networks", "position_count", len(positions), "network_count", len(r.networks))
	return nil
}
