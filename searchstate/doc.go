// Package searchstate models the joint state space searched by the
// cooperative multi-agent planner.
//
// A SearchState is an immutable snapshot of every agent at one timestep.
// Agents move simultaneously, but the state space resolves a timestep one
// agent at a time:
//
//	Standard (t)  ──assign A──▶ Intermediate (t) ──assign B──▶ … ──assign last──▶ Standard (t+1)
//
// In a Standard state no agent has a pending move. Each call to
// MakeNextState records one agent's move; the call that assigns the last
// unassigned agent applies every recorded move at once and opens the next
// timestep. The branching factor of one expansion is therefore bounded by
// a single agent's adjacency fan-out rather than the product over all
// agents, at the price of deeper search trees.
//
// Collisions are checked while a move is proposed: a move is rejected if it
// intersects (per core.Position.Intersects) a move already recorded this
// timestep, or if it enters a cell whose occupant has chosen to wait.
// Agents without a recorded move impose no constraint yet; their own check
// happens when they are assigned.
//
// Equivalence:
//
//   - IsEquivalent: same phase, same agents at the same locations with the
//     same pending moves. Used as the goal test.
//   - IsIdentical: IsEquivalent plus the same timestep. Key returns a
//     string that is equal for two states iff they are identical;
//     EquivalenceKey drops the timestep.
//
// Errors:
//
//	Broken preconditions (unknown agent, second move for an assigned agent,
//	destination mismatch between agents sharing an id, missing move when a
//	timestep closes, comparing states over different agent sets) return an
//	*core.InvariantError matching core.ErrInvariantViolation.
package searchstate
