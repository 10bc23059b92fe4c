package registry

import (
	"log/slog"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/KarolexDev/latticegraph/component"
	"github.com/KarolexDev/latticegraph/lattice"
	"github.com/KarolexDev/latticegraph/netgraph"
)

// Hooks is the registry-level lifecycle callback table. Network
// lifetime is a registry concern (spec §4.4) — a Network only comes
// into or out of existence through the registry's placement/removal
// paths — so OnNetworkCreated/OnNetworkDestroyed live here rather than
// on netgraph.Hooks, which covers in-place graph mutation instead.
type Hooks[C component.Component[C]] struct {
	OnNetworkCreated   func(n *netgraph.Network[C])
	OnNetworkDestroyed func(n *netgraph.Network[C])
}

// Registry is the world-wide position->network index. It routes
// placement and removal events to the owning Network, creates fresh
// Networks for blocks placed in empty space, and merges the Networks a
// single placement bridges together (spec §4.4). The registry and
// every Network it owns form one ownership domain: concurrent callers
// must arrange their own coarse-grained exclusion between public calls
// (spec §5); the mutex here only protects the registry's own index
// during a single call.
type Registry[C component.Component[C]] struct {
	mu sync.RWMutex

	posToNetwork map[lattice.Position]netgraph.NetworkID
	networks     map[netgraph.NetworkID]*netgraph.Network[C]

	fromLength       component.FromLengthFunc[C]
	isAlwaysNode     func(lattice.Position) bool
	isExtendableNode func(lattice.Position) bool
	areConnected     func(a, b lattice.Position) bool
	networkHooks     netgraph.Hooks[C]

	hooks   Hooks[C]
	logger  *slog.Logger
	metrics *metrics
}

// Option configures a Registry before first use.
type Option[C component.Component[C]] func(*Registry[C])

// WithAlwaysNode supplies is_always_node, propagated to every Network
// the registry creates (default: never).
func WithAlwaysNode[C component.Component[C]](pred func(lattice.Position) bool) Option[C] {
	return func(r *Registry[C]) { r.isAlwaysNode = pred }
}

// WithExtendableNode supplies is_extendable_node, propagated to every
// Network the registry creates (default: never).
func WithExtendableNode[C component.Component[C]](pred func(lattice.Position) bool) Option[C] {
	return func(r *Registry[C]) { r.isExtendableNode = pred }
}

// WithAreConnected overrides the connectivity filter used by Rebuild
// and RecalculateNetworks' flood-fill (default: lattice.Adjacent).
func WithAreConnected[C component.Component[C]](pred func(a, b lattice.Position) bool) Option[C] {
	return func(r *Registry[C]) { r.areConnected = pred }
}

// WithNetworkHooks installs the per-Network hook table (OnBlockAdded,
// OnBlockRemoved, OnGraphUpdated) applied to every Network the registry
// creates.
func WithNetworkHooks[C component.Component[C]](h netgraph.Hooks[C]) Option[C] {
	return func(r *Registry[C]) { r.networkHooks = h }
}

// WithLifecycleHooks installs the registry-level OnNetworkCreated and
// OnNetworkDestroyed callbacks.
func WithLifecycleHooks[C component.Component[C]](h Hooks[C]) Option[C] {
	return func(r *Registry[C]) { r.hooks = h }
}

// WithLogger installs a structured logger (default: slog.Default()).
func WithLogger[C component.Component[C]](logger *slog.Logger) Option[C] {
	return func(r *Registry[C]) { r.logger = logger }
}

// WithMetrics registers the registry's prometheus instrumentation
// against reg. Omitting this option leaves metrics collection disabled.
func WithMetrics[C component.Component[C]](reg prometheus.Registerer) Option[C] {
	return func(r *Registry[C]) { r.metrics = newMetrics(reg) }
}

// New constructs an empty Registry using fromLength as the component
// algebra constructor for every Network it creates.
func New[C component.Component[C]](fromLength component.FromLengthFunc[C], opts ...Option[C]) *Registry[C] {
	r := &Registry[C]{
		posToNetwork:     make(map[lattice.Position]netgraph.NetworkID),
		networks:         make(map[netgraph.NetworkID]*netgraph.Network[C]),
		fromLength:       fromLength,
		isAlwaysNode:     func(lattice.Position) bool { return false },
		isExtendableNode: func(lattice.Position) bool { return false },
		areConnected:     lattice.Adjacent,
		logger:           slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// networkOptions builds the NetworkOption set every Network the
// registry creates is configured with, so predicates and hooks stay
// consistent across the whole world.
func (r *Registry[C]) networkOptions() []netgraph.NetworkOption[C] {
	return []netgraph.NetworkOption[C]{
		netgraph.WithAlwaysNode[C](r.isAlwaysNode),
		netgraph.WithExtendableNode[C](r.isExtendableNode),
		netgraph.WithAreConnected[C](r.areConnected),
		netgraph.WithHooks[C](r.networkHooks),
	}
}

func (r *Registry[C]) fireNetworkCreated(n *netgraph.Network[C]) {
	r.logger.Debug("network created", "network_id", n.ID())
	if r.hooks.OnNetworkCreated != nil {
		r.hooks.OnNetworkCreated(n)
	}
}

func (r *Registry[C]) fireNetworkDestroyed(n *netgraph.Network[C]) {
	r.logger.Debug("network destroyed", "network_id", n.ID())
	if r.hooks.OnNetworkDestroyed != nil {
		r.hooks.OnNetworkDestroyed(n)
	}
}

func (r *Registry[C]) refreshElementMetrics() {
	if r.metrics == nil {
		return
	}
	nodes, edges := 0, 0
	for _, n := range r.networks {
		s := n.Stats()
		nodes += s.Nodes
		edges += s.Edges
	}
	r.metrics.setElementCounts(nodes, edges)
}
