package core

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvariantViolation indicates that a search precondition was broken:
// an agent missing from a state, a second move for an already assigned
// agent, agents sharing an ID with different destinations, a missing move
// when closing a timestep, or keyed collections of different sizes.
var ErrInvariantViolation = errors.New("core: invariant violation")

// Position is a discrete place an Agent can occupy.
//
// Implementations must be immutable and comparable through Equals.
// String must return the same text for any two positions that are Equals;
// the searches use it as the map key of explored nodes.
type Position interface {
	fmt.Stringer

	// HeuristicDistance estimates the cost of travelling to 'to'.
	// It must be non-negative and should not over-estimate.
	HeuristicDistance(to Position) float64

	// Adjacent lists every position reachable in one timestep,
	// including the receiver itself (the "wait" move).
	Adjacent() []Position

	// Equals reports whether other denotes the same place.
	Equals(other Position) bool

	// Intersects reports whether the two simultaneous moves a and b
	// would swap, cross, or otherwise collide in transit. Implementations
	// may also report moves that end on the same position.
	Intersects(a, b Segment) bool
}

// Segment is a single timestep move From → To. A wait has From == To.
type Segment struct {
	From Position
	To   Position
}

// String renders the segment as "from->to".
func (s Segment) String() string {
	return fmt.Sprintf("%v->%v", s.From, s.To)
}

// InvariantError describes a broken precondition with enough context to
// diagnose it. It matches ErrInvariantViolation under errors.Is.
type InvariantError struct {
	Op     string // operation that detected the violation
	Agent  string // offending agent (verbose form), if any
	State  string // offending state, if any
	Reason string // what was violated
}

// Error implements error.
func (e *InvariantError) Error() string {
	var b strings.Builder
	b.WriteString(ErrInvariantViolation.Error())
	if e.Op != "" {
		b.WriteString(" in ")
		b.WriteString(e.Op)
	}
	b.WriteString(": ")
	b.WriteString(e.Reason)
	if e.Agent != "" {
		b.WriteString("; agent=")
		b.WriteString(e.Agent)
	}
	if e.State != "" {
		b.WriteString("; state=")
		b.WriteString(e.State)
	}

	return b.String()
}

// Unwrap lets errors.Is match ErrInvariantViolation.
func (e *InvariantError) Unwrap() error { return ErrInvariantViolation }

// Violation builds an *InvariantError for operation op.
func Violation(op, reason string, agent *Agent, state fmt.Stringer) *InvariantError {
	e := &InvariantError{Op: op, Reason: reason}
	if agent != nil {
		e.Agent = agent.Verbose()
	}
	if state != nil {
		e.State = state.String()
	}

	return e
}
