package searchstate

import (
	"github.com/katalvlaran/lvmapf/core"
)

// IsColliding reports whether agent moving to move conflicts with a move
// already recorded in this timestep: either the two segments intersect,
// or move enters the cell of an agent that is waiting there.
// Agents without a recorded move never conflict.
func (s *SearchState) IsColliding(agent core.Agent, move core.Position) bool {
	test := core.Segment{From: agent.Location, To: move}
	for _, id := range s.ids {
		if id == agent.ID {
			continue
		}
		other := s.entries[id]
		if other.move == nil {
			continue
		}
		if move.Intersects(test, core.Segment{From: other.agent.Location, To: other.move}) {
			return true
		}
		if move.Equals(other.agent.Location) && other.agent.Location.Equals(other.move) {
			return true
		}
	}

	return false
}

// Adjacent returns every successor state: for each unassigned agent in ID
// order, one state per non-colliding position adjacent to its location
// (including waiting in place).
func (s *SearchState) Adjacent() ([]*SearchState, error) {
	var out []*SearchState
	for _, id := range s.ids {
		e := s.entries[id]
		if e.move != nil {
			continue
		}
		for _, p := range e.agent.Location.Adjacent() {
			if s.IsColliding(e.agent, p) {
				continue
			}
			next, err := s.MakeNextState(e.agent, p)
			if err != nil {
				return nil, err
			}
			out = append(out, next)
		}
	}

	return out, nil
}

// HeuristicDistance sums, over all agents, the estimate from the agent's
// effective position (its pending move if any, else its location) to its
// destination. It ignores interactions between agents and is therefore not
// admissible for the joint problem; it is only a ranking key.
func (s *SearchState) HeuristicDistance() float64 {
	total := 0.0
	for _, id := range s.ids {
		e := s.entries[id]
		from := e.agent.Location
		if e.move != nil {
			from = e.move
		}
		total += from.HeuristicDistance(e.agent.Destination)
	}

	return total
}
