package gridpath

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Agent plans a route once and then yields it one cell per Step.
type Agent interface {
	Reset(start Cell)
	Plan() (Route, error)
	Step() Cell
}

// AgentState is the lifecycle position of an agent's session.
type AgentState int

const (
	Idle AgentState = iota
	Planned
	Consuming
	Exhausted
)

func (s AgentState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Planned:
		return "planned"
	case Consuming:
		return "consuming"
	case Exhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// AgentOption configures a SearchAgent.
type AgentOption func(*SearchAgent)

// WithLogger sets the agent's logger. The default discards everything.
func WithLogger(logger *zap.Logger) AgentOption {
	return func(a *SearchAgent) { a.logger = logger }
}

// WithMetrics records every Plan call into m.
func WithMetrics(m *Metrics) AgentOption {
	return func(a *SearchAgent) { a.metrics = m }
}

// WithCost replaces the unit step cost used by UCS and A*.
func WithCost(cost CostFunc[Cell]) AgentOption {
	return func(a *SearchAgent) { a.cost = cost }
}

// WithSearchOptions passes options through to every search run.
func WithSearchOptions(options ...Option[Cell]) AgentOption {
	return func(a *SearchAgent) { a.searchOptions = append(a.searchOptions, options...) }
}

// SearchAgent follows a route planned on a Grid by one of the search strategies.
type SearchAgent struct {
	grid          *Grid
	strategy      Strategy
	heuristic     HeuristicKind
	cost          CostFunc[Cell]
	searchOptions []Option[Cell]
	logger        *zap.Logger
	metrics       *Metrics

	route   Route
	stepper *Stepper
	last    Result[Cell]
}

var _ Agent = (*SearchAgent)(nil)

// NewSearchAgent validates the strategy, and for AStar the heuristic, before
// returning an Idle agent.
func NewSearchAgent(grid *Grid, strategy Strategy, heuristic HeuristicKind, options ...AgentOption) (*SearchAgent, error) {
	if grid == nil {
		return nil, ErrNilGrid
	}
	if err := validateTags(strategy, heuristic); err != nil {
		return nil, err
	}
	a := &SearchAgent{
		grid:      grid,
		strategy:  strategy,
		heuristic: heuristic,
		cost:      UnitCost[Cell],
		logger:    zap.NewNop(),
	}
	for _, option := range options {
		option(a)
	}
	a.logger = a.logger.With(zap.Stringer("strategy", strategy))
	return a, nil
}

func validateTags(strategy Strategy, heuristic HeuristicKind) error {
	if !strategy.Valid() {
		return errors.Wrapf(ErrUnknownStrategy, "strategy %d", int(strategy))
	}
	if strategy == AStar && !heuristic.Valid() {
		return errors.Wrapf(ErrUnknownHeuristic, "heuristic %d", int(heuristic))
	}
	return nil
}

// Reset discards the current route and returns the agent to Idle.
// start is not applied to the grid; planning always uses Grid.Start.
func (a *SearchAgent) Reset(start Cell) {
	if start != a.grid.Start {
		a.logger.Debug("reset start differs from grid start, ignoring",
			zap.Stringer("requested", start), zap.Stringer("grid", a.grid.Start))
	}
	a.route = nil
	a.stepper = nil
	a.last = Result[Cell]{}
}

// Plan runs the configured search once from Grid.Start to Grid.Goal, replaces
// the session route and returns a copy of it. An unreachable goal yields an
// empty route and a nil error; LastResult().Truncated tells an exhausted
// expansion budget apart from a goal that cannot be reached.
//
// The tags are checked again before searching. NewSearchAgent already rejects
// invalid ones, so this only fires if the fields were changed inside the
// package afterwards.
func (a *SearchAgent) Plan() (Route, error) {
	logger := a.logger.With(zap.String("site", "Plan"))

	if err := validateTags(a.strategy, a.heuristic); err != nil {
		a.metrics.observeError(a.strategy)
		return nil, err
	}

	logger.Debug("planning",
		zap.Stringer("start", a.grid.Start),
		zap.Stringer("goal", a.grid.Goal),
		zap.Int("width", a.grid.Width),
		zap.Int("height", a.grid.Height))

	result, err := Search[Cell](a.strategy, a.grid, a.grid.Start, a.grid.Goal, a.cost, a.heuristic.Func(), a.searchOptions...)
	if err != nil {
		a.metrics.observeError(a.strategy)
		return nil, err
	}
	a.metrics.observePlan(a.strategy, result)

	a.last = result
	a.route = Route(result.Path)
	a.stepper = NewStepper(a.route)

	if result.Found {
		logger.Info("route planned",
			zap.Int("length", len(a.route)),
			zap.Float64("cost", result.TotalCost),
			zap.Int("expanded", result.ExpandedNodes))
	} else if result.Truncated {
		logger.Warn("search budget exhausted", zap.Int("expanded", result.ExpandedNodes))
	} else {
		logger.Info("goal unreachable", zap.Int("expanded", result.ExpandedNodes))
	}
	return append(Route(nil), a.route...), nil
}

// Step returns the next route cell and advances. Once the route is exhausted,
// or before any Plan, it returns Grid.Start.
func (a *SearchAgent) Step() Cell {
	if a.stepper == nil {
		return a.grid.Start
	}
	cell, ok := a.stepper.Next()
	if !ok {
		return a.grid.Start
	}
	return cell
}

// State reports the session lifecycle position.
func (a *SearchAgent) State() AgentState {
	switch {
	case a.stepper == nil:
		return Idle
	case a.stepper.Done():
		return Exhausted
	case a.stepper.Position() == 0:
		return Planned
	default:
		return Consuming
	}
}

// Route returns a copy of the last planned route.
func (a *SearchAgent) Route() Route { return append(Route(nil), a.route...) }

// LastResult returns the full result of the last Plan call.
func (a *SearchAgent) LastResult() Result[Cell] { return a.last }

// Remaining is the number of route cells Step has yet to return.
func (a *SearchAgent) Remaining() int {
	if a.stepper == nil {
		return 0
	}
	return a.stepper.Remaining()
}

// Grid returns the grid the agent plans on.
func (a *SearchAgent) Grid() *Grid { return a.grid }
