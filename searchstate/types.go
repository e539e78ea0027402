package searchstate

import (
	"github.com/katalvlaran/lvmapf/core"
)

// Phase tells whether a state sits on a timestep boundary or inside one.
type Phase int

const (
	// Standard states have every move of the timestep applied; nothing is pending.
	Standard Phase = iota
	// Intermediate states have some agents' moves recorded but not yet applied.
	Intermediate
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case Standard:
		return "Standard"
	case Intermediate:
		return "Intermediate"
	}

	return "Phase(?)"
}

// entry is one agent and its pending move; move is nil when none is recorded.
type entry struct {
	agent core.Agent
	move  core.Position
}

// SearchState is an immutable joint snapshot of all agents.
// entries is keyed by agent ID; ids holds the same IDs in ascending order
// so that every traversal is deterministic.
type SearchState struct {
	timestep int
	phase    Phase
	entries  map[int]entry
	ids      []int
}
