// Package netgraph implements one connected-component "Network": a
// compressed graph of Nodes and Edges over a sparse set of lattice
// positions, where linear pass-through runs of blocks collapse into a
// single multi-block Edge.
//
// A Network owns its own position->element maps, node set, and edge
// set, and performs every structural mutation (AddBlock, RemoveBlock,
// Rebuild, and the internal primitives mergeNodes,
// collapseDegreeTwoNode, splitEdgeAt) incrementally, preserving the
// invariants listed in spec §3/§8 after every public call.
//
// Network is generic over any per-block payload satisfying
// component.Component; a Network never inspects a C value beyond
// calling Add/Del/Partition/FromLength on it.
package netgraph
