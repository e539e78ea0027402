package core

import "fmt"

// Agent is an immutable mobile entity: who it is, where it stands now,
// and where it must end up.
type Agent struct {
	ID          int
	Location    Position
	Destination Position
}

// NewAgent returns an Agent with the given identity and endpoints.
func NewAgent(id int, location, destination Position) Agent {
	return Agent{ID: id, Location: location, Destination: destination}
}

// MoveTo returns a copy of a relocated to target. ID and Destination are kept.
func (a Agent) MoveTo(target Position) Agent {
	return Agent{ID: a.ID, Location: target, Destination: a.Destination}
}

// Key is the identity used when agents key a map: the ID alone.
func (a Agent) Key() int { return a.ID }

// AtDestination reports whether the agent already stands on its destination.
func (a Agent) AtDestination() bool {
	return a.Location.Equals(a.Destination)
}

// SameID reports whether a and other denote the same agent.
// Agents sharing an ID must share a Destination; otherwise an
// *InvariantError is returned.
func (a Agent) SameID(other Agent) (bool, error) {
	if a.ID != other.ID {
		return false, nil
	}
	if !a.Destination.Equals(other.Destination) {
		return false, Violation("Agent.SameID",
			fmt.Sprintf("agents with id %d have different destinations %v and %v", a.ID, a.Destination, other.Destination),
			&a, nil)
	}

	return true, nil
}

// DeepEquals reports whether a and other are the same agent at the same location.
// The destination invariant of SameID applies.
func (a Agent) DeepEquals(other Agent) (bool, error) {
	same, err := a.SameID(other)
	if err != nil || !same {
		return false, err
	}

	return a.Location.Equals(other.Location), nil
}

// String returns the identity-only form "Agent<id>".
func (a Agent) String() string {
	return fmt.Sprintf("Agent%d", a.ID)
}

// Verbose returns every field: "{id, location, destination}".
func (a Agent) Verbose() string {
	return fmt.Sprintf("{%d, %v, %v}", a.ID, a.Location, a.Destination)
}
