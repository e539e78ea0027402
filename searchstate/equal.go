package searchstate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvmapf/core"
)

// IsEquivalent reports whether s and other have the same phase and the
// same agents at the same locations with the same pending moves.
// Timesteps are ignored.
//
// Both states must hold the same agent IDs, and agents sharing an ID must
// share a destination; otherwise an *core.InvariantError is returned.
func (s *SearchState) IsEquivalent(other *SearchState) (bool, error) {
	const op = "IsEquivalent"

	if len(s.entries) != len(other.entries) {
		return false, core.Violation(op,
			fmt.Sprintf("states hold %d and %d agents", len(s.entries), len(other.entries)), nil, s)
	}

	equal := s.phase == other.phase
	for _, id := range s.ids {
		a := s.entries[id]
		b, ok := other.entries[id]
		if !ok {
			return false, core.Violation(op, "agent missing from the other state", &a.agent, other)
		}
		same, err := a.agent.DeepEquals(b.agent)
		if err != nil {
			return false, err
		}
		if !same || !movesEqual(a.move, b.move) {
			equal = false
		}
	}

	return equal, nil
}

// IsIdentical is IsEquivalent with equal timesteps.
func (s *SearchState) IsIdentical(other *SearchState) (bool, error) {
	eq, err := s.IsEquivalent(other)
	if err != nil {
		return false, err
	}

	return eq && s.timestep == other.timestep, nil
}

func movesEqual(a, b core.Position) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	return a.Equals(b)
}

// Key returns a canonical string that is equal for two states (over the
// same agents) iff they are identical.
func (s *SearchState) Key() string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(s.timestep))
	b.WriteByte('|')
	s.writeBody(&b)

	return b.String()
}

// EquivalenceKey is Key without the timestep: equal iff the states are equivalent.
func (s *SearchState) EquivalenceKey() string {
	var b strings.Builder
	s.writeBody(&b)

	return b.String()
}

func (s *SearchState) writeBody(b *strings.Builder) {
	b.WriteString(strconv.Itoa(int(s.phase)))
	for _, id := range s.ids {
		e := s.entries[id]
		b.WriteByte('|')
		b.WriteString(strconv.Itoa(id))
		b.WriteByte('@')
		b.WriteString(e.agent.Location.String())
		if e.move != nil {
			b.WriteByte('>')
			b.WriteString(e.move.String())
		}
	}
}

// String renders "{timestep, phase, ({id, location, destination} => move), ...}".
// A missing move prints as <nil>.
func (s *SearchState) String() string {
	parts := make([]string, len(s.ids))
	for i, id := range s.ids {
		e := s.entries[id]
		parts[i] = fmt.Sprintf("%s => %v", e.agent.Verbose(), e.move)
	}

	return fmt.Sprintf("{%d, %v, (%s)}", s.timestep, s.phase, strings.Join(parts, "), ("))
}
