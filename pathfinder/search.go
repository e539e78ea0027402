package pathfinder

import (
	"github.com/google/uuid"

	"github.com/katalvlaran/lvmapf/pqueue"
)

// problem describes one best-first search over nodes of type N.
type problem[N any] struct {
	start      N
	key        func(N) string
	successors func(N) ([]N, error)
	rank       func(N) float64
	isGoal     func(N) (bool, error)
	from, to   string // endpoint descriptions for NoPathError
}

// frontierItem is a (priority, payload) pair owned by the frontier.
type frontierItem[N any] struct {
	rank float64
	node N
}

// link records how a node was discovered. The start node has root set.
type link[N any] struct {
	node   N
	parent string
	root   bool
}

// runner holds the mutable state for a single search call.
type runner[N any] struct {
	p        problem[N]
	opts     Options
	stats    Stats
	frontier *pqueue.PriorityQueue[frontierItem[N]]
	parents  map[string]link[N] // discovered node key → discovering parent
}

func newRunner[N any](p problem[N], opts Options) (*runner[N], error) {
	frontier, err := pqueue.New(pqueue.ByKey(func(it frontierItem[N]) float64 { return it.rank }))
	if err != nil {
		return nil, err
	}

	return &runner[N]{
		p:        p,
		opts:     opts,
		stats:    Stats{RunID: uuid.New()},
		frontier: frontier,
		parents:  make(map[string]link[N]),
	}, nil
}

// run searches until the goal is popped and returns the discovery chain
// from the first step after the start up to the goal (just [start] when the
// start is already the goal).
func (r *runner[N]) run() ([]N, error) {
	r.discover(r.p.start, r.p.key(r.p.start), link[N]{node: r.p.start, root: true})

	for {
		// cancellation and limits are only checked here, between pops
		select {
		case <-r.opts.Ctx.Done():
			return nil, r.opts.Ctx.Err()
		default:
		}

		item, err := r.frontier.Remove()
		if err != nil {
			return nil, &NoPathError{From: r.p.from, To: r.p.to}
		}
		if r.opts.MaxExpansions > 0 && r.stats.Expanded >= r.opts.MaxExpansions {
			return nil, ErrExpansionLimit
		}
		r.stats.Expanded++

		key := r.p.key(item.node)
		r.opts.OnExpand(Event{RunID: r.stats.RunID, Node: key, Rank: item.rank, Expanded: r.stats.Expanded})

		done, err := r.p.isGoal(item.node)
		if err != nil {
			return nil, err
		}
		if done {
			return r.backtrack(key), nil
		}

		if err = r.expand(item.node, key); err != nil {
			return nil, err
		}
	}
}

// expand pushes every never-discovered successor of node.
func (r *runner[N]) expand(node N, key string) error {
	next, err := r.p.successors(node)
	if err != nil {
		return err
	}
	for _, n := range next {
		k := r.p.key(n)
		if _, seen := r.parents[k]; seen {
			continue
		}
		// Being on the frontier guarantees expansion, so the parent is final now.
		r.discover(n, k, link[N]{node: n, parent: key})
	}

	return nil
}

func (r *runner[N]) discover(n N, key string, l link[N]) {
	rank := r.p.rank(n)
	r.parents[key] = l
	r.frontier.Insert(frontierItem[N]{rank: rank, node: n})
	r.stats.Discovered++
	r.opts.OnDiscover(Event{RunID: r.stats.RunID, Node: key, Rank: rank, Expanded: r.stats.Expanded})
}

// backtrack follows parent links from key to the start and returns the
// nodes in chronological order, start excluded unless it is the only node.
func (r *runner[N]) backtrack(key string) []N {
	var chain []N
	l := r.parents[key]
	for !l.root {
		chain = append(chain, l.node)
		l = r.parents[l.parent]
	}
	if len(chain) == 0 {
		return []N{l.node}
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}

	return chain
}
