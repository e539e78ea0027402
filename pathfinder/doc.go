// Package pathfinder computes collision-free plans for one or many agents
// with a single best-first search driver.
//
// Overview:
//
//   - FindPath searches positions: rank = HeuristicDistance(node, to),
//     goal = node.Equals(to). The result excludes the origin and ends with
//     the destination; when from equals to it is just [to].
//   - FindMultiPath searches searchstate.SearchState values: rank = the
//     summed per-agent estimate, goal = equivalence with the state where
//     every agent stands on its destination. The result maps each agent ID
//     to its locations at every completed timestep, excluding the start and
//     ending with the destination.
//
// Search discipline:
//
//	Both run the same loop: pop the best-ranked node, stop if it is the
//	goal, otherwise push every successor that has never been discovered and
//	record its parent at discovery time. A node is discovered once and
//	never re-opened, so the search is greedy best-first rather than A*; the
//	multi-agent estimate ignores interference between agents and is not
//	admissible, so joint plans are valid but not guaranteed optimal.
//
// Scalability:
//
//	The explored set grows without bound and, for FindMultiPath, can grow
//	exponentially with the number of agents. With timestep-sensitive
//	deduplication (the default) an unsolvable multi-agent instance never
//	exhausts its frontier. Bound such calls with WithMaxExpansions or a
//	cancellable WithContext; both are checked once per popped node.
//
// Options:
//
//   - WithContext(ctx):          cancellation, checked between pops.
//   - WithMaxExpansions(n):      give up with ErrExpansionLimit after n pops.
//   - WithDedup(mode):           DedupIdentical (default) or DedupEquivalent.
//   - WithOnExpand(fn):          hook called for every popped node.
//   - WithOnDiscover(fn):        hook called for every newly discovered node.
//
// Errors:
//
//   - ErrNoPath:          frontier exhausted; concrete *NoPathError names both ends.
//   - ErrExpansionLimit:  MaxExpansions reached before the goal.
//   - ErrOptionViolation: an invalid option was supplied.
//   - ErrNoAgents:        FindMultiPath called with no agents.
//   - ErrNilPosition:     FindPath called with a nil position.
//   - core.ErrInvariantViolation: broken agent/state precondition.
//   - ctx.Err():          the context was cancelled.
//
// Thread safety:
//
//	A Pathfinder only holds options and may be shared between goroutines.
//	Each call owns its frontier and parent map.
package pathfinder
