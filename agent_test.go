package gridpath

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func corridor() *Grid {
	return NewGrid(5, 1, nil, Cell{0, 0}, Cell{4, 0})
}

func TestNewSearchAgentValidatesTags(t *testing.T) {
	_, err := NewSearchAgent(corridor(), Strategy(0), ManhattanDistance)
	assert.ErrorIs(t, err, ErrUnknownStrategy)

	_, err = NewSearchAgent(corridor(), AStar, HeuristicKind(0))
	assert.ErrorIs(t, err, ErrUnknownHeuristic)

	_, err = NewSearchAgent(nil, BFS, 0)
	assert.ErrorIs(t, err, ErrNilGrid)

	agent, err := NewSearchAgent(corridor(), BFS, 0)
	require.NoError(t, err)
	assert.Equal(t, Idle, agent.State())
}

func TestSearchAgentPlanAndStep(t *testing.T) {
	for _, strategy := range []Strategy{BFS, DFS, UCS, AStar} {
		t.Run(strategy.String(), func(t *testing.T) {
			agent, err := NewSearchAgent(corridor(), strategy, ManhattanDistance)
			require.NoError(t, err)

			route, err := agent.Plan()
			require.NoError(t, err)
			want := Route{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}}
			assert.Equal(t, want, route)
			assert.Equal(t, Planned, agent.State())
			assert.Equal(t, 5, agent.Remaining())

			for i, c := range want {
				assert.Equal(t, c, agent.Step(), "step %d", i)
				if i < len(want)-1 {
					assert.Equal(t, Consuming, agent.State())
				}
			}
			assert.Equal(t, Exhausted, agent.State())

			for i := 0; i < 3; i++ {
				assert.Equal(t, Cell{0, 0}, agent.Step())
			}
		})
	}
}

func TestSearchAgentStepBeforePlan(t *testing.T) {
	grid := NewGrid(3, 3, nil, Cell{1, 2}, Cell{0, 0})
	agent, err := NewSearchAgent(grid, UCS, 0)
	require.NoError(t, err)

	assert.Equal(t, Cell{1, 2}, agent.Step())
	assert.Equal(t, Idle, agent.State())
}

func TestSearchAgentPlanIsRepeatable(t *testing.T) {
	grid := NewGrid(8, 6, []Cell{{2, 0}, {2, 1}, {2, 2}, {2, 3}, {5, 5}, {5, 4}, {5, 3}, {5, 2}}, Cell{0, 0}, Cell{7, 0})

	for _, strategy := range []Strategy{BFS, DFS, UCS, AStar} {
		agent, err := NewSearchAgent(grid, strategy, EuclideanDistance)
		require.NoError(t, err)

		first, err := agent.Plan()
		require.NoError(t, err)
		agent.Step()
		second, err := agent.Plan()
		require.NoError(t, err)

		assert.Equal(t, first, second, strategy.String())
		assert.Equal(t, Planned, agent.State(), "plan resets the cursor")
	}
}

func TestSearchAgentUnreachable(t *testing.T) {
	grid := NewGrid(3, 3, []Cell{{1, 0}, {1, 1}, {1, 2}}, Cell{0, 0}, Cell{2, 2})
	agent, err := NewSearchAgent(grid, AStar, ManhattanDistance)
	require.NoError(t, err)

	route, err := agent.Plan()
	require.NoError(t, err)
	assert.Empty(t, route)
	assert.False(t, agent.LastResult().Found)
	assert.False(t, agent.LastResult().Truncated)
	assert.Equal(t, Exhausted, agent.State())
	assert.Equal(t, grid.Start, agent.Step())
}

func TestSearchAgentReset(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	agent, err := NewSearchAgent(corridor(), BFS, 0, WithLogger(zap.New(core)))
	require.NoError(t, err)

	_, err = agent.Plan()
	require.NoError(t, err)
	agent.Step()

	agent.Reset(Cell{3, 0})
	assert.Equal(t, Idle, agent.State())
	assert.Empty(t, agent.Route())
	assert.Zero(t, agent.Remaining())
	assert.Equal(t, Cell{0, 0}, agent.Grid().Start, "reset does not move the grid start")
	assert.Equal(t, 1, logs.FilterMessage("reset start differs from grid start, ignoring").Len())

	route, err := agent.Plan()
	require.NoError(t, err)
	assert.Equal(t, Cell{0, 0}, route[0])
}

func TestSearchAgentPlanReturnsCopy(t *testing.T) {
	agent, err := NewSearchAgent(corridor(), BFS, 0)
	require.NoError(t, err)

	route, err := agent.Plan()
	require.NoError(t, err)
	route[1] = Cell{9, 9}

	assert.Equal(t, Cell{0, 0}, agent.Step())
	assert.Equal(t, Cell{1, 0}, agent.Step())
}

func TestSearchAgentPlanRejectsCorruptedTag(t *testing.T) {
	agent, err := NewSearchAgent(corridor(), BFS, 0)
	require.NoError(t, err)
	agent.strategy = Strategy(17)

	route, err := agent.Plan()
	assert.ErrorIs(t, err, ErrUnknownStrategy)
	assert.Nil(t, route)
	assert.Equal(t, Idle, agent.State())
}

func TestSearchAgentLogsPlan(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	agent, err := NewSearchAgent(corridor(), UCS, 0, WithLogger(zap.New(core)))
	require.NoError(t, err)

	_, err = agent.Plan()
	require.NoError(t, err)

	entries := logs.FilterMessage("route planned").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "ucs", fields["strategy"])
	assert.Equal(t, "Plan", fields["site"])
	assert.EqualValues(t, 5, fields["length"])
}

func TestSearchAgentCustomCostAndHook(t *testing.T) {
	// Crossing row 0 is expensive, so UCS detours through row 1.
	grid := NewGrid(3, 2, nil, Cell{0, 0}, Cell{2, 0})
	cost := func(_, to Cell) float64 {
		if to.Y == 0 {
			return 5
		}
		return 1
	}
	var expanded []Cell
	agent, err := NewSearchAgent(grid, UCS, 0,
		WithCost(cost),
		WithSearchOptions(WithExpandHook(func(c Cell) { expanded = append(expanded, c) })))
	require.NoError(t, err)

	route, err := agent.Plan()
	require.NoError(t, err)
	assert.Equal(t, Route{{0, 0}, {0, 1}, {1, 1}, {2, 1}, {2, 0}}, route)
	assert.Equal(t, 8.0, agent.LastResult().TotalCost)
	assert.Len(t, expanded, agent.LastResult().ExpandedNodes)
}

func TestSearchAgentMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	metrics, err := NewMetrics(registry)
	require.NoError(t, err)

	agent, err := NewSearchAgent(corridor(), AStar, ManhattanDistance, WithMetrics(metrics))
	require.NoError(t, err)
	_, err = agent.Plan()
	require.NoError(t, err)
	_, err = agent.Plan()
	require.NoError(t, err)

	blocked := NewGrid(3, 1, []Cell{{1, 0}}, Cell{0, 0}, Cell{2, 0})
	other, err := NewSearchAgent(blocked, AStar, ManhattanDistance, WithMetrics(metrics))
	require.NoError(t, err)
	_, err = other.Plan()
	require.NoError(t, err)

	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.plans.WithLabelValues("astar", "found")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.plans.WithLabelValues("astar", "unreachable")))
	assert.Equal(t, 1, testutil.CollectAndCount(metrics.expandedNodes))

	_, err = NewMetrics(registry)
	assert.Error(t, err, "duplicate registration")
}

func TestSearchAgentBudgetIsNotUnreachable(t *testing.T) {
	registry := prometheus.NewRegistry()
	metrics, err := NewMetrics(registry)
	require.NoError(t, err)
	core, logs := observer.New(zapcore.InfoLevel)

	grid := NewGrid(10, 1, nil, Cell{0, 0}, Cell{9, 0})
	agent, err := NewSearchAgent(grid, BFS, 0,
		WithLogger(zap.New(core)),
		WithMetrics(metrics),
		WithSearchOptions(WithMaxExpansions[Cell](3)))
	require.NoError(t, err)

	route, err := agent.Plan()
	require.NoError(t, err)
	assert.Empty(t, route)
	assert.True(t, agent.LastResult().Truncated)
	assert.Equal(t, 3, agent.LastResult().ExpandedNodes)

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.plans.WithLabelValues("bfs", "truncated")))
	assert.Zero(t, testutil.ToFloat64(metrics.plans.WithLabelValues("bfs", "unreachable")))
	assert.Equal(t, 1, logs.FilterMessage("search budget exhausted").Len())
	assert.Zero(t, logs.FilterMessage("goal unreachable").Len())
}
