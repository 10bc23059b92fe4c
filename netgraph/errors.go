package netgraph

import "errors"

// Sentinel errors for Network operations. Mirrors lvlath's core/bfs/
// prim_kruskal convention of package-scoped errors.New values.
var (
	// ErrBlockExists is returned by AddBlock when the position is already occupied.
	ErrBlockExists = errors.New("netgraph: block already present at position")

	// ErrBlockAbsent signals that no block is present at a position.
	// RemoveBlock does not return it: removing an absent position is a
	// silent no-op.
	ErrBlockAbsent = errors.New("netgraph: no block at position")

	// ErrPositionNotIntermediate is returned by splitEdgeAt when pos is not
	// one of the edge's intermediate blocks.
	ErrPositionNotIntermediate = errors.New("netgraph: position is not an intermediate of this edge")
)

// InvariantError marks a programmer-error class failure (spec §7):
// placing a non-node block with an unexpected neighbor count, or asking
// for the opposite endpoint of a non-incident edge. Splitting an edge at
// a position it does not hold is reported as ErrPositionNotIntermediate
// instead. These are never recovered — the
// caller must treat the Network as unusable for further mutation.
type InvariantError struct {
	Op  string
	Msg string
}

func (e *InvariantError) Error() string {
	return "netgraph: invariant violation in " + e.Op + ": " + e.Msg
}

func invariantf(op, msg string) error {
	return &InvariantError{Op: op, Msg: msg}
}
