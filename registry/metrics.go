package registry

import "github.com/prometheus/client_golang/prometheus"

// metrics wraps the registry's optional prometheus instrumentation.
// A nil *metrics (the default, no registerer supplied) makes every
// method a no-op, so call sites never need a presence check.
type metrics struct {
	networksTotal      prometheus.Gauge
	nodesTotal         prometheus.Gauge
	edgesTotal         prometheus.Gauge
	blocksPlacedTotal  prometheus.Counter
	blocksRemovedTotal prometheus.Counter
	networkMergesTotal prometheus.Counter
	rebuildsTotal      prometheus.Counter
}

func newMetrics(reg prometheus.Registerer) *metrics {
	if reg == nil {
		return nil
	}
	m := &metrics{
		networksTotal: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "latticegraph", Subsystem: "registry", Name: "networks_total",
			Help: "Current number of live networks.",
		}),
		nodesTotal: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "latticegraph", Subsystem: "registry", Name: "nodes_total",
			Help: "Current number of nodes across all networks.",
		}),
		edgesTotal: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "latticegraph", Subsystem: "registry", Name: "edges_total",
			Help: "Current number of edges across all networks.",
		}),
		blocksPlacedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "latticegraph", Subsystem: "registry", Name: "blocks_placed_total",
			Help: "Total blocks placed via OnBlockPlaced.",
		}),
		blocksRemovedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "latticegraph", Subsystem: "registry", Name: "blocks_removed_total",
			Help: "Total blocks removed via OnBlockRemoved.",
		}),
		networkMergesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "latticegraph", Subsystem: "registry", Name: "network_merges_total",
			Help: "Total networks absorbed into another during a bridging placement.",
		}),
		rebuildsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "latticegraph", Subsystem: "registry", Name: "rebuilds_total",
			Help: "Total full Network.Rebuild invocations driven by the registry.",
		}),
	}
	reg.MustRegister(
		m.networksTotal, m.nodesTotal, m.edgesTotal,
		m.blocksPlacedTotal, m.blocksRemovedTotal,
		m.networkMergesTotal, m.rebuildsTotal,
	)
	return m
}

func (m *metrics) blockPlaced() {
	if m == nil {
		return
	}
	m.blocksPlacedTotal.Inc()
}

func (m *metrics) blockRemoved() {
	if m == nil {
		return
	}
	m.blocksRemovedTotal.Inc()
}

func (m *metrics) merged() {
	if m == nil {
		return
	}
	m.networkMergesTotal.Inc()
}

func (m *metrics) rebuilt() {
	if m == nil {
		return
	}
	m.rebuildsTotal.Inc()
}

func (m *metrics) setNetworkCount(n int) {
	if m == nil {
		return
	}
	m.networksTotal.Set(float64(n))
}

func (m *metrics) setElementCounts(nodes, edges int) {
	if m == nil {
		return
	}
	m.nodesTotal.Set(float64(nodes))
	m.edgesTotal.Set(float64(edges))
}
