package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/KarolexDev/latticegraph/lattice"
)

// event is one line of a replayed script. Kind selects which of
// Position/Capacity apply: "place" uses both, "remove" uses only
// Position, "recalc" uses neither.
type event struct {
	Kind     string          `json:"kind"`
	Position lattice.Position `json:"position,omitempty"`
	Capacity int             `json:"capacity,omitempty"`
}

func loadScript(path string) ([]event, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var events []event
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return events, nil
}
