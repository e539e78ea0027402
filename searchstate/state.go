package searchstate

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvmapf/core"
)

// MakeInitialState returns the Standard state at timestep 0 with every
// agent settled at its Location and nothing pending.
//
// Agents are keyed by ID; two agents sharing an ID are rejected with an
// *core.InvariantError (a destination mismatch is reported as such).
func MakeInitialState(agents []core.Agent) (*SearchState, error) {
	s := &SearchState{
		timestep: 0,
		phase:    Standard,
		entries:  make(map[int]entry, len(agents)),
		ids:      make([]int, 0, len(agents)),
	}
	for i := range agents {
		a := agents[i]
		if prev, ok := s.entries[a.ID]; ok {
			if _, err := prev.agent.SameID(a); err != nil {
				return nil, err
			}
			return nil, core.Violation("MakeInitialState", fmt.Sprintf("duplicate agent id %d", a.ID), &a, nil)
		}
		s.entries[a.ID] = entry{agent: a}
		s.ids = append(s.ids, a.ID)
	}
	sort.Ints(s.ids)

	return s, nil
}

// MakeNextState records move for agent.
//
// agent must belong to the state (matched by ID) and must not have a move
// recorded yet. If agent is the last unassigned one, every recorded move is
// applied and the result is the Standard state of timestep+1. Otherwise the
// result is an Intermediate state of the same timestep with the move
// recorded. The receiver is never modified.
func (s *SearchState) MakeNextState(agent core.Agent, move core.Position) (*SearchState, error) {
	const op = "MakeNextState"

	e, err := s.lookup(op, agent)
	if err != nil {
		return nil, err
	}
	if e.move != nil {
		return nil, core.Violation(op, fmt.Sprintf("agent already has move %v", e.move), &e.agent, s)
	}

	if s.unassignedCount() == 1 {
		return s.closeTimestep(e.agent, move)
	}

	next := s.derive(s.timestep, Intermediate)
	for _, id := range s.ids {
		next.entries[id] = s.entries[id]
	}
	next.entries[agent.ID] = entry{agent: e.agent, move: move}

	return next, nil
}

// closeTimestep applies every recorded move plus last's move and returns
// the Standard state of the next timestep.
func (s *SearchState) closeTimestep(last core.Agent, move core.Position) (*SearchState, error) {
	next := s.derive(s.timestep+1, Standard)
	for _, id := range s.ids {
		e := s.entries[id]
		target := e.move
		if id == last.ID {
			target = move
		}
		if target == nil {
			return nil, core.Violation("MakeNextState", "no move recorded when closing the timestep", &e.agent, s)
		}
		next.entries[id] = entry{agent: e.agent.MoveTo(target)}
	}

	return next, nil
}

// derive allocates an empty successor sharing the receiver's agent order.
func (s *SearchState) derive(timestep int, phase Phase) *SearchState {
	return &SearchState{
		timestep: timestep,
		phase:    phase,
		entries:  make(map[int]entry, len(s.entries)),
		ids:      s.ids, // read-only after construction
	}
}

// lookup finds agent by ID and enforces the destination invariant.
func (s *SearchState) lookup(op string, agent core.Agent) (entry, error) {
	e, ok := s.entries[agent.ID]
	if !ok {
		return entry{}, core.Violation(op, "agent is not part of the state", &agent, s)
	}
	if _, err := e.agent.SameID(agent); err != nil {
		return entry{}, err
	}

	return e, nil
}

func (s *SearchState) unassignedCount() int {
	n := 0
	for _, id := range s.ids {
		if s.entries[id].move == nil {
			n++
		}
	}

	return n
}

// Timestep returns the number of completed timesteps.
func (s *SearchState) Timestep() int { return s.timestep }

// Phase returns whether the state is Standard or Intermediate.
func (s *SearchState) Phase() Phase { return s.phase }

// Len returns the number of agents.
func (s *SearchState) Len() int { return len(s.ids) }

// Agents returns every agent in ascending ID order.
func (s *SearchState) Agents() []core.Agent {
	out := make([]core.Agent, len(s.ids))
	for i, id := range s.ids {
		out[i] = s.entries[id].agent
	}

	return out
}

// Agent returns the agent with the given ID.
func (s *SearchState) Agent(id int) (core.Agent, bool) {
	e, ok := s.entries[id]

	return e.agent, ok
}

// PendingMove returns the move recorded for agent id in this timestep.
// ok is false when the agent is unknown or has no move yet.
func (s *SearchState) PendingMove(id int) (move core.Position, ok bool) {
	e, found := s.entries[id]
	if !found || e.move == nil {
		return nil, false
	}

	return e.move, true
}

// Unassigned returns the agents without a recorded move, in ID order.
func (s *SearchState) Unassigned() []core.Agent {
	var out []core.Agent
	for _, id := range s.ids {
		if e := s.entries[id]; e.move == nil {
			out = append(out, e.agent)
		}
	}

	return out
}
