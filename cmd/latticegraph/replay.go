package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/KarolexDev/latticegraph/component"
	"github.com/KarolexDev/latticegraph/lattice"
	"github.com/KarolexDev/latticegraph/registry"
)

// componentStore tracks the component value last placed at each
// position. A real embedder (a game server's block storage, say) would
// already have this; RecalculateNetworks needs a componentSource and
// the registry itself stops tracking a position's component once it
// leaves the index.
type componentStore struct {
	values map[lattice.Position]component.IntCapacity
}

func newComponentStore() *componentStore {
	return &componentStore{values: make(map[lattice.Position]component.IntCapacity)}
}

func (s *componentStore) set(p lattice.Position, c component.IntCapacity) { s.values[p] = c }
func (s *componentStore) clear(p lattice.Position)                       { delete(s.values, p) }
func (s *componentStore) lookup(p lattice.Position) component.IntCapacity {
	return s.values[p]
}

func newRegistry(logger *slog.Logger, reg prometheus.Registerer) *registry.Registry[component.IntCapacity] {
	return registry.New[component.IntCapacity](
		component.FromLength,
		registry.WithLogger[component.IntCapacity](logger),
		registry.WithMetrics[component.IntCapacity](reg),
	)
}

func replay(out io.Writer, r *registry.Registry[component.IntCapacity], store *componentStore, events []event) error {
	for i, ev := range events {
		switch ev.Kind {
		case "place":
			c := component.FromLength(ev.Capacity)
			if _, err := r.OnBlockPlaced(ev.Position, c); err != nil {
				return fmt.Errorf("event %d: place %v: %w", i, ev.Position, err)
			}
			store.set(ev.Position, c)

		case "remove":
			if err := r.OnBlockRemoved(ev.Position); err != nil {
				return fmt.Errorf("event %d: remove %v: %w", i, ev.Position, err)
			}
			store.clear(ev.Position)

		case "recalc":
			if err := r.RecalculateNetworks(store.lookup); err != nil {
				return fmt.Errorf("event %d: recalc: %w", i, err)
			}

		default:
			return fmt.Errorf("event %d: unknown kind %q", i, ev.Kind)
		}
		fmt.Fprintf(out, "-- event %d: %s %v\n", i, ev.Kind, ev.Position)
	}
	return nil
}
