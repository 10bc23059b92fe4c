package netgraph

import "github.com/google/uuid"

// NodeID, EdgeID, and NetworkID are opaque stable identities (Design
// Notes §9: "Model with stable element identities and separate
// collections" rather than cyclic pointer ownership between nodes and
// edges).
type (
	NodeID    string
	EdgeID    string
	NetworkID string
)

func newNodeID() NodeID       { return NodeID(uuid.NewString()) }
func newEdgeID() EdgeID       { return EdgeID(uuid.NewString()) }

// NewNetworkID generates a fresh opaque Network identity. Exported
// because registry (and callers who pre-allocate IDs, e.g. for logging
// before a Network exists) need it too.
func NewNetworkID() NetworkID { return NetworkID(uuid.NewString()) }
