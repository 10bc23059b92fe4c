// Package component defines the per-block payload algebra carried by
// every graph element (node and edge) in package netgraph.
//
// Implementations are supplied by the caller; netgraph is generic over
// any type satisfying the Component contract. See IntCapacity for a
// concrete, tested default (the "capacity" example used throughout
// spec.md's end-to-end scenarios).
package component
