package main

import (
	"fmt"
	"io"

	"github.com/KarolexDev/latticegraph/component"
	"github.com/KarolexDev/latticegraph/registry"
)

func printWorld(out io.Writer, r *registry.Registry[component.IntCapacity]) {
	nets := r.AllNetworks()
	fmt.Fprintf(out, "\n%d network(s)\n", len(nets))
	for _, net := range nets {
		stats := net.Stats()
		fmt.Fprintf(out, "\nnetwork %s (positions=%d nodes=%d edges=%d)\n",
			net.ID(), stats.Positions, stats.Nodes, stats.Edges)

		for _, node := range net.Nodes() {
			fmt.Fprintf(out, "  node %s  degree=%d  component=%v  blocks=%v\n",
				node.ID(), node.Degree(), node.Component(), node.BlockPositions())
		}
		for _, e := range net.Edges() {
			kind := "bridge"
			if e.IsDirectLink() {
				kind = "direct"
			}
			fmt.Fprintf(out, "  edge %s  %s->%s  %s  length=%d  component=%v  intermediate=%v\n",
				e.ID(), e.Start(), e.End(), kind, e.Length(), e.Component(), e.IntermediateBlocks())
		}
	}
}
