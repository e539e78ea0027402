// Package core defines the domain primitives shared by every lvmapf search:
// the Position contract, movement Segments, immutable Agents, and the
// invariant-violation error raised when callers break a precondition.
//
// Position:
//
//	Any discretized space (grid, road graph, lattice) plugs into the
//	searches by implementing Position. The searches never look at
//	coordinates; they only call the four contract methods plus String,
//	which must be a stable key (Equals positions print identically).
//
// Agent:
//
//	Agent{ID, Location, Destination} is a value. Moving produces a new
//	Agent via MoveTo. Identity for keying is the ID alone; two Agents that
//	share an ID but disagree on Destination are an invariant violation.
//
// Errors:
//
//	ErrInvariantViolation - a broken precondition, never bad external input.
//	                        Concrete errors are *InvariantError and carry the
//	                        operation, the offending agent and state.
//
// Dependency order is strict: core is imported by searchstate and
// pathfinder, and imports nothing from lvmapf.
package core
