package pathfinder_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmapf/core"
	"github.com/katalvlaran/lvmapf/gridgraph"
	"github.com/katalvlaran/lvmapf/pathfinder"
)

// grid builds an 8-connected grid from rows of 1 (free) / 0 (blocked).
func grid(t testing.TB, rows ...[]int) *gridgraph.GridGraph {
	t.Helper()
	gg, err := gridgraph.From2D(rows, gridgraph.Conn8)
	require.NoError(t, err)

	return gg
}

func finder(t testing.TB, opts ...pathfinder.Option) *pathfinder.Pathfinder {
	t.Helper()
	pf, err := pathfinder.New(opts...)
	require.NoError(t, err)

	return pf
}

func names(ps []core.Position) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.String()
	}

	return out
}

// checkPlan asserts that plan moves every agent to its destination by
// legal steps without vertex conflicts or swaps.
func checkPlan(t *testing.T, agents []core.Agent, plan pathfinder.MultiPath) {
	t.Helper()
	require.Len(t, plan, len(agents))
	steps := len(plan[agents[0].ID])
	for _, a := range agents {
		path := plan[a.ID]
		require.Len(t, path, steps, "agent %d", a.ID)
		assert.True(t, path[steps-1].Equals(a.Destination), "agent %d ends at %v", a.ID, path[steps-1])
		prev := a.Location
		for _, p := range path {
			assert.Contains(t, names(prev.Adjacent()), p.String(), "agent %d jumps %v -> %v", a.ID, prev, p)
			prev = p
		}
	}

	at := func(a core.Agent, step int) core.Position {
		if step < 0 {
			return a.Location
		}
		return plan[a.ID][step]
	}
	for step := 0; step < steps; step++ {
		for i := range agents {
			for j := i + 1; j < len(agents); j++ {
				a, b := agents[i], agents[j]
				assert.False(t, at(a, step).Equals(at(b, step)),
					"agents %d and %d share %v at step %d", a.ID, b.ID, at(a, step), step)
				swapped := at(a, step).Equals(at(b, step-1)) && at(b, step).Equals(at(a, step-1))
				assert.False(t, swapped, "agents %d and %d swap at step %d", a.ID, b.ID, step)
			}
		}
	}
}

// TestNew_Options checks option validation at construction and per call.
func TestNew_Options(t *testing.T) {
	_, err := pathfinder.New(pathfinder.WithMaxExpansions(-1))
	assert.ErrorIs(t, err, pathfinder.ErrOptionViolation)

	_, err = pathfinder.New(pathfinder.WithDedup(pathfinder.DedupMode(7)))
	assert.ErrorIs(t, err, pathfinder.ErrOptionViolation)

	gg := grid(t, []int{1, 1})
	_, err = finder(t).FindPath(gg.At(0, 0), gg.At(1, 0), pathfinder.WithMaxExpansions(-3))
	assert.ErrorIs(t, err, pathfinder.ErrOptionViolation)
}

// TestFindPath_Corridor walks a straight corridor.
func TestFindPath_Corridor(t *testing.T) {
	gg := grid(t, []int{1, 1, 1, 1, 1})

	path, stats, err := finder(t).FindPathStats(gg.At(0, 0), gg.At(4, 0))
	require.NoError(t, err)
	assert.Equal(t, []string{"(1,0)", "(2,0)", "(3,0)", "(4,0)"}, names(path))
	assert.Equal(t, 5, stats.Expanded)
	assert.Equal(t, 5, stats.Discovered)
	assert.NotEqual(t, uuid.Nil, stats.RunID)
}

// TestFindPath_SamePosition returns just the destination.
func TestFindPath_SamePosition(t *testing.T) {
	gg := grid(t, []int{1, 1}, []int{1, 1})

	path, err := finder(t).FindPath(gg.At(1, 1), gg.At(1, 1))
	require.NoError(t, err)
	assert.Equal(t, []string{"(1,1)"}, names(path))
}

// TestFindPath_AroundWall checks a detour through the only gap.
func TestFindPath_AroundWall(t *testing.T) {
	gg := grid(t,
		[]int{1, 0, 1},
		[]int{1, 0, 1},
		[]int{1, 1, 1},
	)
	from, to := gg.At(0, 0), gg.At(2, 0)

	path, err := finder(t).FindPath(from, to)
	require.NoError(t, err)
	require.NotEmpty(t, path)
	assert.True(t, path[len(path)-1].Equals(to))
	prev := core.Position(from)
	for _, p := range path {
		c := p.(gridgraph.Cell)
		assert.True(t, gg.IsLand(c.X, c.Y), "path crosses the wall at %v", c)
		assert.Contains(t, names(prev.Adjacent()), c.String())
		prev = p
	}
}

// TestFindPath_Errors covers unreachable targets and bad input.
func TestFindPath_Errors(t *testing.T) {
	gg := grid(t, []int{1, 1, 1, 1, 1})
	pf := finder(t)

	_, stats, err := pf.FindPathStats(gg.At(0, 0), gg.At(-1, -1))
	require.ErrorIs(t, err, pathfinder.ErrNoPath)
	var npe *pathfinder.NoPathError
	require.ErrorAs(t, err, &npe)
	assert.Equal(t, "(0,0)", npe.From)
	assert.Equal(t, "(-1,-1)", npe.To)
	assert.Equal(t, 5, stats.Expanded, "every cell of the corridor is tried")

	_, err = pf.FindPath(nil, gg.At(0, 0))
	assert.ErrorIs(t, err, pathfinder.ErrNilPosition)

	_, err = pf.FindPath(gg.At(0, 0), gg.At(4, 0), pathfinder.WithMaxExpansions(2))
	assert.ErrorIs(t, err, pathfinder.ErrExpansionLimit)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = pf.FindPath(gg.At(0, 0), gg.At(4, 0), pathfinder.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestFindPath_OffGridStart checks that a start outside the grid cannot step in.
func TestFindPath_OffGridStart(t *testing.T) {
	gg := grid(t, []int{1, 1}, []int{1, 1})

	path, stats, err := finder(t).FindPathStats(gg.At(-1, -1), gg.At(1, 1))
	assert.ErrorIs(t, err, pathfinder.ErrNoPath)
	assert.Nil(t, path)
	assert.Equal(t, 1, stats.Expanded, "only the start itself is expanded")
}

// TestFindPath_Hooks checks that hooks see every node of one run.
func TestFindPath_Hooks(t *testing.T) {
	gg := grid(t, []int{1, 1, 1, 1, 1})
	var expanded, discovered []pathfinder.Event
	pf := finder(t,
		pathfinder.WithOnExpand(func(e pathfinder.Event) { expanded = append(expanded, e) }),
		pathfinder.WithOnDiscover(func(e pathfinder.Event) { discovered = append(discovered, e) }),
	)

	_, stats, err := pf.FindPathStats(gg.At(0, 0), gg.At(4, 0))
	require.NoError(t, err)
	require.Len(t, expanded, stats.Expanded)
	require.Len(t, discovered, stats.Discovered)

	assert.Equal(t, "(0,0)", discovered[0].Node)
	assert.InDelta(t, 4.0, discovered[0].Rank, 1e-9)
	for i, e := range expanded {
		assert.Equal(t, stats.RunID, e.RunID)
		assert.Equal(t, i+1, e.Expanded)
	}
	assert.Equal(t, "(4,0)", expanded[len(expanded)-1].Node)
}

// TestFindMultiPath_Scenarios runs small solvable instances.
func TestFindMultiPath_Scenarios(t *testing.T) {
	tests := []struct {
		name   string
		rows   [][]int
		agents func(gg *gridgraph.GridGraph) []core.Agent
		want   map[int][]string
	}{
		{
			name: "one mover one stayer",
			rows: [][]int{{1, 1}, {1, 0}},
			agents: func(gg *gridgraph.GridGraph) []core.Agent {
				return []core.Agent{
					core.NewAgent(100, gg.At(0, 0), gg.At(0, 1)),
					core.NewAgent(101, gg.At(1, 0), gg.At(1, 0)),
				}
			},
			want: map[int][]string{100: {"(0,1)"}, 101: {"(1,0)"}},
		},
		{
			name: "rotation in three cells",
			rows: [][]int{{0, 1}, {1, 1}},
			agents: func(gg *gridgraph.GridGraph) []core.Agent {
				return []core.Agent{
					core.NewAgent(101, gg.At(1, 0), gg.At(1, 1)),
					core.NewAgent(102, gg.At(1, 1), gg.At(0, 1)),
					core.NewAgent(103, gg.At(0, 1), gg.At(1, 0)),
				}
			},
			want: map[int][]string{101: {"(1,1)"}, 102: {"(0,1)"}, 103: {"(1,0)"}},
		},
		{
			name: "three columns abreast",
			rows: [][]int{{1, 1, 1}, {1, 1, 1}, {1, 1, 1}},
			agents: func(gg *gridgraph.GridGraph) []core.Agent {
				return []core.Agent{
					core.NewAgent(100, gg.At(0, 0), gg.At(0, 2)),
					core.NewAgent(101, gg.At(1, 0), gg.At(1, 2)),
					core.NewAgent(102, gg.At(2, 0), gg.At(2, 2)),
				}
			},
			want: map[int][]string{
				100: {"(0,1)", "(0,2)"},
				101: {"(1,1)", "(1,2)"},
				102: {"(2,1)", "(2,2)"},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			gg := grid(t, tc.rows...)
			agents := tc.agents(gg)

			plan, err := finder(t).FindMultiPath(agents)
			require.NoError(t, err)
			got := make(map[int][]string, len(plan))
			for id, path := range plan {
				got[id] = names(path)
			}
			assert.Equal(t, tc.want, got)
			checkPlan(t, agents, plan)
		})
	}
}

// TestFindMultiPath_AlreadyArrived maps every agent to its location.
func TestFindMultiPath_AlreadyArrived(t *testing.T) {
	gg := grid(t, []int{1, 1, 1})
	agents := []core.Agent{
		core.NewAgent(1, gg.At(0, 0), gg.At(0, 0)),
		core.NewAgent(2, gg.At(2, 0), gg.At(2, 0)),
	}

	plan, stats, err := finder(t).FindMultiPathStats(agents)
	require.NoError(t, err)
	assert.Equal(t, []string{"(0,0)"}, names(plan[1]))
	assert.Equal(t, []string{"(2,0)"}, names(plan[2]))
	assert.Equal(t, 1, stats.Expanded)
}

// TestFindMultiPath_Unsolvable contrasts the two dedup modes on a swap
// that a one-lane corridor cannot accommodate.
func TestFindMultiPath_Unsolvable(t *testing.T) {
	gg := grid(t, []int{1, 1})
	agents := []core.Agent{
		core.NewAgent(1, gg.At(0, 0), gg.At(1, 0)),
		core.NewAgent(2, gg.At(1, 0), gg.At(0, 0)),
	}

	_, err := finder(t, pathfinder.WithDedup(pathfinder.DedupEquivalent)).FindMultiPath(agents)
	assert.ErrorIs(t, err, pathfinder.ErrNoPath)

	// Timestep-sensitive keys never exhaust: waiting forever is always new.
	_, stats, err := finder(t).FindMultiPathStats(agents, pathfinder.WithMaxExpansions(50))
	assert.ErrorIs(t, err, pathfinder.ErrExpansionLimit)
	assert.Equal(t, 50, stats.Expanded)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = finder(t, pathfinder.WithContext(ctx)).FindMultiPath(agents)
	assert.ErrorIs(t, err, context.Canceled)
}

// TestFindMultiPath_Errors covers rejected input.
func TestFindMultiPath_Errors(t *testing.T) {
	gg := grid(t, []int{1, 1, 1})
	pf := finder(t)

	_, err := pf.FindMultiPath(nil)
	assert.ErrorIs(t, err, pathfinder.ErrNoAgents)

	_, err = pf.FindMultiPath([]core.Agent{
		core.NewAgent(7, gg.At(0, 0), gg.At(2, 0)),
		core.NewAgent(7, gg.At(1, 0), gg.At(0, 0)),
	})
	assert.ErrorIs(t, err, core.ErrInvariantViolation)
}
