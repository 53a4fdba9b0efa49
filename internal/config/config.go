package config

import (
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"
	validator "gopkg.in/go-playground/validator.v9"

	"github.com/pdrpinto/gridpath"
)

// Config holds the settings of a planning session.
type Config struct {
	// Map is the path of the text map to load.
	Map string `toml:"map" validate:"required"`

	// Algorithm is one of bfs, dfs, ucs, astar (case-insensitive).
	Algorithm string `toml:"algorithm" validate:"required"`

	// Heuristic is manhattan or euclidean; only used by astar.
	Heuristic string `toml:"heuristic" validate:"required"`

	// Seed drives random start/goal placement. Zero means unseeded.
	Seed uint64 `toml:"seed"`

	// FPS is the playback rate of the terminal renderer.
	FPS int `toml:"fps" validate:"min=1,max=240"`

	// MaxExpansions bounds a single search. Zero means no limit.
	MaxExpansions int `toml:"max_expansions" validate:"min=0"`

	LogLevel string `toml:"log_level" validate:"eq=ERROR|eq=WARN|eq=INFO|eq=DEBUG"`

	// LogFile receives logs during playback so the terminal stays clean.
	LogFile string `toml:"log_file"`
}

// Default returns the baseline configuration. Map is left empty.
func Default() Config {
	return Config{
		Algorithm: "astar",
		Heuristic: "manhattan",
		FPS:       15,
		LogLevel:  "INFO",
	}
}

// LoadFile overlays the TOML file at path onto Default. The result is not validated.
func LoadFile(path string) (Config, error) {
	c := Default()
	md, err := toml.DecodeFile(path, &c)
	if err != nil {
		return Config{}, errors.Wrapf(err, "decode config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, errors.Errorf("config %s: unknown keys %v", path, undecoded)
	}
	return c, nil
}

// Validate checks struct tags, then the strategy and heuristic names.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return errors.Wrap(err, "invalid config")
	}
	if _, err := c.Strategy(); err != nil {
		return err
	}
	if _, err := c.HeuristicKind(); err != nil {
		return err
	}
	return nil
}

// Strategy parses Algorithm.
func (c Config) Strategy() (gridpath.Strategy, error) {
	return gridpath.ParseStrategy(c.Algorithm)
}

// HeuristicKind parses Heuristic.
func (c Config) HeuristicKind() (gridpath.HeuristicKind, error) {
	return gridpath.ParseHeuristic(c.Heuristic)
}

// Level maps LogLevel to a zap level.
func (c Config) Level() zapcore.Level {
	switch c.LogLevel {
	case "ERROR":
		return zapcore.ErrorLevel
	case "WARN":
		return zapcore.WarnLevel
	case "DEBUG":
		return zapcore.DebugLevel
	default:
		return zapcore.InfoLevel
	}
}
