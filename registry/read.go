package registry

import (
	"sort"

	"github.com/KarolexDev/latticegraph/lattice"
	"github.com/KarolexDev/latticegraph/netgraph"
)

// NetworkAt returns the Network owning p, or nil if p is unknown to the
// registry (spec §7: unknown-position lookups are a no-op, never fatal).
func (r *Registry[C]) NetworkAt(p lattice.Position) *netgraph.Network[C] {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.posToNetwork[p]
	if !ok {
		return nil
	}
	return r.networks[id]
}

// ComponentAt returns the component value at p and whether p is known
// to the registry at all.
func (r *Registry[C]) ComponentAt(p lattice.Position) (c C, ok bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.posToNetwork[p]
	if !ok {
		return c, false
	}
	return r.networks[id].ComponentAt(p)
}

// AllNetworks returns every live Network, sorted by ID for
// deterministic iteration.
func (r *Registry[C]) AllNetworks() []*netgraph.Network[C] {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*netgraph.Network[C], 0, len(r.networks))
	for _, n := range r.networks {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}

// NetworkSnapshot is a point-in-time structural summary of one Network.
type NetworkSnapshot struct {
	ID    netgraph.NetworkID
	Stats netgraph.Stats
}

// Snapshot returns a deterministic, sorted structural summary of every
// live Network — useful for diagnostics and tests that assert on
// overall world shape without depending on map iteration order.
func (r *Registry[C]) Snapshot() []NetworkSnapshot {
	nets := r.AllNetworks()
	out := make([]NetworkSnapshot, len(nets))
	for i, n := range nets {
		out[i] = NetworkSnapshot{ID: n.ID(), Stats: n.Stats()}
	}
	return out
}
