package main

import (
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/pdrpinto/gridpath"
	"github.com/pdrpinto/gridpath/internal/config"
	"github.com/pdrpinto/gridpath/mapfile"
)

// session is everything a command needs after flags are resolved.
type session struct {
	config config.Config
	grid   *gridpath.Grid
	agent  *gridpath.SearchAgent
	logger *zap.Logger
}

func resolveConfig(cCtx *cli.Context) (config.Config, error) {
	c := config.Default()
	if path := cCtx.String(ConfigFlag); path != "" {
		loaded, err := config.LoadFile(path)
		if err != nil {
			return config.Config{}, err
		}
		c = loaded
	}

	if cCtx.IsSet(MapFlag) {
		c.Map = cCtx.String(MapFlag)
	}
	if cCtx.IsSet(AlgorithmFlag) {
		c.Algorithm = cCtx.String(AlgorithmFlag)
	}
	if cCtx.IsSet(HeuristicFlag) {
		c.Heuristic = cCtx.String(HeuristicFlag)
	}
	if cCtx.IsSet(SeedFlag) {
		c.Seed = cCtx.Uint64(SeedFlag)
	}
	if cCtx.IsSet(FPSFlag) {
		c.FPS = cCtx.Int(FPSFlag)
	}
	if cCtx.IsSet(MaxExpansionsFlag) {
		c.MaxExpansions = cCtx.Int(MaxExpansionsFlag)
	}
	if cCtx.IsSet(LogLevelFlag) {
		c.LogLevel = cCtx.String(LogLevelFlag)
	}
	if cCtx.IsSet(LogFileFlag) {
		c.LogFile = cCtx.String(LogFileFlag)
	}

	return c, c.Validate()
}

// newLogger writes to LogFile when set. Without a file, quiet suppresses
// logging entirely so a full-screen UI is not corrupted.
func newLogger(c config.Config, quiet bool) (*zap.Logger, error) {
	if c.LogFile == "" && quiet {
		return zap.NewNop(), nil
	}
	zc := zap.NewDevelopmentConfig()
	zc.Level = zap.NewAtomicLevelAt(c.Level())
	if c.LogFile != "" {
		zc.OutputPaths = []string{c.LogFile}
		zc.ErrorOutputPaths = []string{c.LogFile}
	}
	logger, err := zc.Build()
	if err != nil {
		return nil, errors.Wrap(err, "build logger")
	}
	return logger, nil
}

func newSession(cCtx *cli.Context, quiet bool, options ...gridpath.AgentOption) (*session, error) {
	c, err := resolveConfig(cCtx)
	if err != nil {
		return nil, err
	}
	logger, err := newLogger(c, quiet)
	if err != nil {
		return nil, err
	}

	var loadOptions []mapfile.Option
	if c.Seed != 0 {
		loadOptions = append(loadOptions, mapfile.WithSeed(c.Seed))
	}
	grid, err := mapfile.Load(c.Map, loadOptions...)
	if err != nil {
		return nil, err
	}
	if err := mapfile.Validate(grid); err != nil {
		return nil, errors.Wrap(err, "invalid map")
	}
	logger.Debug("map loaded",
		zap.String("path", c.Map),
		zap.Int("width", grid.Width),
		zap.Int("height", grid.Height),
		zap.Int("walls", len(grid.Blocked)))

	strategy, err := c.Strategy()
	if err != nil {
		return nil, err
	}
	heuristic, err := c.HeuristicKind()
	if err != nil {
		return nil, err
	}

	options = append([]gridpath.AgentOption{gridpath.WithLogger(logger)}, options...)
	if c.MaxExpansions > 0 {
		options = append(options, gridpath.WithSearchOptions(gridpath.WithMaxExpansions[gridpath.Cell](c.MaxExpansions)))
	}
	agent, err := gridpath.NewSearchAgent(grid, strategy, heuristic, options...)
	if err != nil {
		return nil, err
	}
	return &session{config: c, grid: grid, agent: agent, logger: logger}, nil
}

func (s *session) label() string {
	strategy, _ := s.config.Strategy()
	if strategy != gridpath.AStar {
		return strategy.String()
	}
	heuristic, _ := s.config.HeuristicKind()
	return strategy.String() + "/" + heuristic.String()
}
