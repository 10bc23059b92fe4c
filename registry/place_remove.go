package registry

import (
	"github.com/KarolexDev/latticegraph/lattice"
	"github.com/KarolexDev/latticegraph/netgraph"
)

// OnBlockPlaced routes a new block at p into the world (spec §4.4). It
// scans p's six lattice neighbors, collects the distinct networks they
// belong to in first-seen order, and either starts a fresh Network,
// delegates to the single bridged Network, or merges every bridged
// Network into the first and rebuilds it.
func (r *Registry[C]) OnBlockPlaced(p lattice.Position, c C) (*netgraph.Network[C], error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make([]netgraph.NetworkID, 0, 6)
	seenSet := make(map[netgraph.NetworkID]bool, 6)
	for _, q := range lattice.Neighbors(p) {
		id, ok := r.posToNetwork[q]
		if !ok || seenSet[id] {
			continue
		}
		seenSet[id] = true
		seen = append(seen, id)
	}

	var target *netgraph.Network[C]
	switch len(seen) {
	case 0:
		target = netgraph.NewNetwork[C](netgraph.NewNetworkID(), r.fromLength, r.networkOptions()...)
		if err := target.AddBlock(p, c); err != nil {
			return nil, err
		}
		r.networks[target.ID()] = target
		r.posToNetwork[p] = target.ID()
		r.fireNetworkCreated(target)

	case 1:
		target = r.networks[seen[0]]
		if err := target.AddBlock(p, c); err != nil {
			return nil, err
		}
		r.posToNetwork[p] = target.ID()

	default:
		target = r.networks[seen[0]]
		for _, otherID := range seen[1:] {
			other := r.networks[otherID]
			for _, pos := range other.Positions() {
				// Raw per-block value, not other.ComponentAt's owner
				// aggregate — Rebuild folds these back into totals, and
				// folding an aggregate again would multiply it.
				raw, _ := other.RawAt(pos)
				target.SeedComponent(pos, raw)
				r.posToNetwork[pos] = target.ID()
			}
			delete(r.networks, otherID)
			r.fireNetworkDestroyed(other)
			r.metrics.merged()
		}
		target.SeedComponent(p, c)
		r.posToNetwork[p] = target.ID()
		if err := target.Rebuild(); err != nil {
			return nil, err
		}
		r.metrics.rebuilt()
	}

	r.metrics.blockPlaced()
	r.metrics.setNetworkCount(len(r.networks))
	r.refreshElementMetrics()
	r.logger.Debug("block placed", "position", p, "network_id", target.ID())
	return target, nil
}

// OnBlockRemoved removes p from the world (spec §4.4). A p unknown to
// the registry is a silent no-op. If the owning Network becomes empty,
// it is destroyed.
//
// Removing a single block can silently disconnect its Network without
// this method noticing — see RecalculateNetworks.
func (r *Registry[C]) OnBlockRemoved(p lattice.Position) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.posToNetwork[p]
	if !ok {
		return nil
	}
	net := r.networks[id]
	if err := net.RemoveBlock(p); err != nil {
		return err
	}
	delete(r.posToNetwork, p)
	r.metrics.blockRemoved()

	if net.Size() == 0 {
		delete(r.networks, id)
		r.fireNetworkDestroyed(net)
	}
	r.metrics.setNetworkCount(len(r.networks))
	r.refreshElementMetrics()
	r.logger.Debug("block removed", "position", p, "network_id", id)
	return nil
}
