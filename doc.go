// Package lvmapf is a small multi-agent pathfinding (MAPF) toolkit: plan
// collision-free routes for several agents that move simultaneously over a
// shared world, one step per timestep.
//
// What is in the box?
//
//	• pqueue/      generic binary-heap priority queue with a caller comparator
//	• core/        the Position contract, Segment, immutable Agent, invariant errors
//	• gridgraph/   a 2D grid world whose cells implement core.Position
//	• searchstate/ joint search states: one agent assigned per transition,
//	               collision checks, successor generation, equivalence
//	• pathfinder/  one best-first driver for single-agent and joint search
//
// Any world can be plugged in by implementing core.Position: a heuristic
// distance, the adjacent positions (including the position itself, which
// is how an agent waits), equality, and a test whether two simultaneous
// moves collide.
//
// Quick example:
//
//	gg, _ := gridgraph.From2D([][]int{{1, 1}, {1, 0}}, gridgraph.Conn8)
//	pf, _ := pathfinder.New(pathfinder.WithMaxExpansions(10_000))
//	plan, err := pf.FindMultiPath([]core.Agent{
//		core.NewAgent(1, gg.At(0, 0), gg.At(0, 1)),
//		core.NewAgent(2, gg.At(1, 0), gg.At(1, 0)),
//	})
//
// The joint search is greedy and its state space grows exponentially with
// the number of agents; see package pathfinder for the limits.
//
//	go get github.com/katalvlaran/lvmapf
package lvmapf
