package registry

import "github.com/KarolexDev/latticegraph/lattice"

// walker performs a single flood-fill over a fixed set of known world
// positions using the registry's areConnected predicate, as a
// queue-driven breadth-first enqueue/dequeue walk.
type walker struct {
	known        map[lattice.Position]bool
	areConnected func(a, b lattice.Position) bool
	visited      map[lattice.Position]bool
	queue        []lattice.Position
}

func newWalker(known map[lattice.Position]bool, areConnected func(a, b lattice.Position) bool, visited map[lattice.Position]bool) *walker {
	return &walker{known: known, areConnected: areConnected, visited: visited}
}

// component returns every position reachable from start by repeatedly
// stepping to a known, as-yet-unvisited, areConnected neighbor.
func (w *walker) component(start lattice.Position) []lattice.Position {
	w.visited[start] = true
	w.queue = []lattice.Position{start}
	out := []lattice.Position{start}
	for len(w.queue) > 0 {
		cur := w.dequeue()
		out = append(out, w.enqueueNeighbors(cur)...)
	}
	return out
}

func (w *walker) dequeue() lattice.Position {
	item := w.queue[0]
	w.queue = w.queue[1:]
	return item
}

func (w *walker) enqueueNeighbors(cur lattice.Position) []lattice.Position {
	var newlyVisited []lattice.Position
	for _, q := range lattice.Neighbors(cur) {
		if !w.known[q] || w.visited[q] {
			continue
		}
		if !w.areConnected(cur, q) {
			continue
		}
		w.visited[q] = true
		w.queue = append(w.queue, q)
		newlyVisited = append(newlyVisited, q)
	}
	return newlyVisited
}
