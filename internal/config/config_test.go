package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zapcore"

	"github.com/pdrpinto/gridpath"
)

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

type ConfigTestSuite struct {
	suite.Suite
	dir string
}

func (s *ConfigTestSuite) SetupTest() {
	s.dir = s.T().TempDir()
}

func (s *ConfigTestSuite) writeFile(contents string) string {
	path := filepath.Join(s.dir, "gridpath.toml")
	require.NoError(s.T(), os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func (s *ConfigTestSuite) TestDefaultNeedsMap() {
	c := Default()
	s.Error(c.Validate(), "map is required")

	c.Map = "maze.txt"
	s.NoError(c.Validate())
}

func (s *ConfigTestSuite) TestLoadFileOverlaysDefaults() {
	path := s.writeFile(`
map = "maps/level1.txt"
algorithm = "BFS"
seed = 9
`)
	c, err := LoadFile(path)
	s.Require().NoError(err)

	s.Equal("maps/level1.txt", c.Map)
	s.Equal("BFS", c.Algorithm)
	s.Equal("manhattan", c.Heuristic)
	s.Equal(uint64(9), c.Seed)
	s.Equal(15, c.FPS)
	s.NoError(c.Validate())

	strategy, err := c.Strategy()
	s.Require().NoError(err)
	s.Equal(gridpath.BFS, strategy)
}

func (s *ConfigTestSuite) TestLoadFileRejectsUnknownKeys() {
	path := s.writeFile(`
map = "m.txt"
algoritm = "bfs"
`)
	_, err := LoadFile(path)
	s.Error(err)
	s.Contains(err.Error(), "algoritm")
}

func (s *ConfigTestSuite) TestLoadFileMalformed() {
	_, err := LoadFile(s.writeFile(`map = `))
	s.Error(err)

	_, err = LoadFile(filepath.Join(s.dir, "missing.toml"))
	s.Error(err)
}

func (s *ConfigTestSuite) TestValidation() {
	s.T().Run("unknown algorithm", func(t *testing.T) {
		c := Default()
		c.Map = "m.txt"
		c.Algorithm = "greedy"
		assert.ErrorIs(t, c.Validate(), gridpath.ErrUnknownStrategy)
	})

	s.T().Run("unknown heuristic", func(t *testing.T) {
		c := Default()
		c.Map = "m.txt"
		c.Heuristic = "octile"
		assert.ErrorIs(t, c.Validate(), gridpath.ErrUnknownHeuristic)
	})

	s.T().Run("fps out of range", func(t *testing.T) {
		c := Default()
		c.Map = "m.txt"
		c.FPS = 0
		assert.Error(t, c.Validate())
		c.FPS = 1000
		assert.Error(t, c.Validate())
	})

	s.T().Run("log level", func(t *testing.T) {
		c := Default()
		c.Map = "m.txt"
		c.LogLevel = "VERBOSE"
		assert.Error(t, c.Validate())
		c.LogLevel = "DEBUG"
		assert.NoError(t, c.Validate())
		assert.Equal(t, zapcore.DebugLevel, c.Level())
	})

	s.T().Run("negative expansion budget", func(t *testing.T) {
		c := Default()
		c.Map = "m.txt"
		c.MaxExpansions = -1
		assert.Error(t, c.Validate())
	})
}
