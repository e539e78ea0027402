package pathfinder

import (
	"fmt"

	"github.com/katalvlaran/lvmapf/core"
	"github.com/katalvlaran/lvmapf/searchstate"
)

// Pathfinder runs single- and multi-agent searches with a fixed set of
// default options. The zero value is not usable; call New.
type Pathfinder struct {
	defaults []Option
}

// New returns a Pathfinder whose calls start from opts.
// Returns ErrOptionViolation if any option is invalid.
func New(opts ...Option) (*Pathfinder, error) {
	if _, err := buildOptions(opts); err != nil {
		return nil, err
	}

	return &Pathfinder{defaults: append([]Option(nil), opts...)}, nil
}

// buildOptions applies opts over DefaultOptions and surfaces recorded errors.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Options{}, o.err
	}

	return o, nil
}

// options merges the Pathfinder defaults with per-call overrides.
func (pf *Pathfinder) options(call []Option) (Options, error) {
	all := make([]Option, 0, len(pf.defaults)+len(call))
	all = append(all, pf.defaults...)
	all = append(all, call...)

	return buildOptions(all)
}

// FindPath returns a path from 'from' to 'to'. See FindPathStats.
func (pf *Pathfinder) FindPath(from, to core.Position, opts ...Option) ([]core.Position, error) {
	path, _, err := pf.FindPathStats(from, to, opts...)

	return path, err
}

// FindPathStats searches from 'from' toward 'to', ranking positions by
// their heuristic distance to 'to'.
//
// The returned path excludes 'from' and ends with 'to'; if from equals to
// it is [to]. A *NoPathError is returned when 'to' cannot be reached.
func (pf *Pathfinder) FindPathStats(from, to core.Position, opts ...Option) ([]core.Position, Stats, error) {
	if from == nil || to == nil {
		return nil, Stats{}, ErrNilPosition
	}
	o, err := pf.options(opts)
	if err != nil {
		return nil, Stats{}, err
	}

	r, err := newRunner(problem[core.Position]{
		start:      from,
		key:        func(p core.Position) string { return p.String() },
		successors: func(p core.Position) ([]core.Position, error) { return p.Adjacent(), nil },
		rank:       func(p core.Position) float64 { return p.HeuristicDistance(to) },
		isGoal:     func(p core.Position) (bool, error) { return p.Equals(to), nil },
		from:       from.String(),
		to:         to.String(),
	}, o)
	if err != nil {
		return nil, Stats{}, err
	}

	path, err := r.run()
	if err != nil {
		return nil, r.stats, err
	}

	return path, r.stats, nil
}

// FindMultiPath plans every agent at once. See FindMultiPathStats.
func (pf *Pathfinder) FindMultiPath(agents []core.Agent, opts ...Option) (MultiPath, error) {
	paths, _, err := pf.FindMultiPathStats(agents, opts...)

	return paths, err
}

// FindMultiPathStats searches the joint state space from every agent's
// Location to every agent's Destination.
//
// Only Standard states (completed timesteps) appear in the result; each
// agent's sequence excludes its starting location and ends with its
// destination. If all agents already stand on their destinations each
// sequence is [location].
func (pf *Pathfinder) FindMultiPathStats(agents []core.Agent, opts ...Option) (MultiPath, Stats, error) {
	if len(agents) == 0 {
		return nil, Stats{}, ErrNoAgents
	}
	o, err := pf.options(opts)
	if err != nil {
		return nil, Stats{}, err
	}

	start, err := searchstate.MakeInitialState(agents)
	if err != nil {
		return nil, Stats{}, err
	}
	arrived := make([]core.Agent, len(agents))
	for i, a := range agents {
		arrived[i] = a.MoveTo(a.Destination)
	}
	goal, err := searchstate.MakeInitialState(arrived)
	if err != nil {
		return nil, Stats{}, err
	}

	key := (*searchstate.SearchState).Key
	if o.Dedup == DedupEquivalent {
		key = (*searchstate.SearchState).EquivalenceKey
	}

	r, err := newRunner(problem[*searchstate.SearchState]{
		start:      start,
		key:        key,
		successors: (*searchstate.SearchState).Adjacent,
		rank:       (*searchstate.SearchState).HeuristicDistance,
		isGoal:     func(s *searchstate.SearchState) (bool, error) { return s.IsEquivalent(goal) },
		from:       start.String(),
		to:         goal.String(),
	}, o)
	if err != nil {
		return nil, Stats{}, err
	}

	chain, err := r.run()
	if err != nil {
		return nil, r.stats, err
	}

	paths, err := agentPaths(chain)
	if err != nil {
		return nil, r.stats, err
	}

	return paths, r.stats, nil
}

// agentPaths turns a chronological chain of states into per-agent
// location sequences over the Standard states only.
func agentPaths(chain []*searchstate.SearchState) (MultiPath, error) {
	paths := make(MultiPath)
	for _, s := range chain {
		if s.Phase() != searchstate.Standard {
			continue
		}
		for _, a := range s.Agents() {
			paths[a.ID] = append(paths[a.ID], a.Location)
		}
	}
	final := chain[len(chain)-1]
	for id, p := range paths {
		last := p[len(p)-1]
		a, ok := final.Agent(id)
		if !ok {
			return nil, core.Violation("FindMultiPath",
				fmt.Sprintf("agent %d is missing from the final state", id), nil, final)
		}
		if !last.Equals(a.Destination) {
			return nil, core.Violation("FindMultiPath",
				fmt.Sprintf("path of agent %d ends at %v", id, last), &a, final)
		}
	}

	return paths, nil
}
