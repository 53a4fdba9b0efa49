// Package mapfile reads and writes text maps for gridpath.
//
// Glyphs:
//
//	' '       empty
//	'*'       wall
//	'#'       start (the first one wins)
//	'x', 'X'  goal (the first one wins)
//
// Any other glyph is read as empty. A missing start or goal is placed on a
// random free cell, the goal always distinct from the start.
package mapfile

import (
	"bufio"
	"io"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/pdrpinto/gridpath"
)

const (
	GlyphEmpty = ' '
	GlyphWall  = '*'
	GlyphStart = '#'
	GlyphGoal  = 'x'
	GlyphRoute = '.'
)

var (
	ErrNoFreeCell = errors.New("mapfile: not enough free cells to place start and goal")
	ErrEmptyMap   = errors.New("mapfile: map has no cells")
)

type options struct {
	rng *rand.Rand
}

// Option configures Parse and Load.
type Option func(*options)

// WithSeed makes random start/goal placement reproducible.
func WithSeed(seed uint64) Option {
	return func(o *options) { o.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)) }
}

// WithRand uses r for random start/goal placement.
func WithRand(r *rand.Rand) Option {
	return func(o *options) { o.rng = r }
}

// Load reads the map at path.
func Load(path string, opts ...Option) (*gridpath.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open map")
	}
	defer f.Close()

	grid, err := Parse(f, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "parse map %s", path)
	}
	return grid, nil
}

// Parse reads a map from r. Width is the longest line, height the line count.
func Parse(r io.Reader, opts ...Option) (*gridpath.Grid, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	var (
		blocked     []gridpath.Cell
		start, goal *gridpath.Cell
		width       int
		height      int
	)

	scanner := bufio.NewScanner(r)
	for y := 0; scanner.Scan(); y++ {
		line := []rune(strings.TrimRight(scanner.Text(), "\r"))
		width = max(width, len(line))
		for x, ch := range line {
			c := gridpath.Cell{X: x, Y: y}
			switch ch {
			case GlyphWall:
				blocked = append(blocked, c)
			case GlyphStart:
				if start == nil {
					start = &c
				}
			case GlyphGoal, 'X':
				if goal == nil {
					goal = &c
				}
			}
		}
		height++
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read map")
	}
	if width == 0 || height == 0 {
		return nil, ErrEmptyMap
	}

	grid := gridpath.NewGrid(width, height, blocked, gridpath.Cell{}, gridpath.Cell{})
	free := freeCells(grid)

	if start == nil {
		c, err := pick(o.rng, free, goal)
		if err != nil {
			return nil, err
		}
		start = &c
	}
	if goal == nil {
		c, err := pick(o.rng, free, start)
		if err != nil {
			return nil, err
		}
		goal = &c
	}
	grid.Start, grid.Goal = *start, *goal
	return grid, nil
}

func freeCells(grid *gridpath.Grid) []gridpath.Cell {
	var free []gridpath.Cell
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			c := gridpath.Cell{X: x, Y: y}
			if grid.Passable(c) {
				free = append(free, c)
			}
		}
	}
	return free
}

func pick(rng *rand.Rand, free []gridpath.Cell, exclude *gridpath.Cell) (gridpath.Cell, error) {
	candidates := free
	if exclude != nil {
		candidates = make([]gridpath.Cell, 0, len(free))
		for _, c := range free {
			if c != *exclude {
				candidates = append(candidates, c)
			}
		}
	}
	if len(candidates) == 0 {
		return gridpath.Cell{}, ErrNoFreeCell
	}
	return candidates[rng.IntN(len(candidates))], nil
}

// Validate reports every violated grid precondition: non-positive size,
// start or goal out of bounds, start or goal on a wall.
func Validate(grid *gridpath.Grid) error {
	if grid == nil {
		return gridpath.ErrNilGrid
	}
	var err error
	if grid.Width <= 0 || grid.Height <= 0 {
		err = multierr.Append(err, errors.Errorf("grid size %dx%d is not positive", grid.Width, grid.Height))
	}
	for _, named := range []struct {
		name string
		cell gridpath.Cell
	}{{"start", grid.Start}, {"goal", grid.Goal}} {
		if !grid.InBounds(named.cell) {
			err = multierr.Append(err, errors.Errorf("%s %s is out of bounds", named.name, named.cell))
		} else if !grid.Passable(named.cell) {
			err = multierr.Append(err, errors.Errorf("%s %s is a wall", named.name, named.cell))
		}
	}
	return err
}

// Encode writes grid back as text, marking route cells with '.'.
// Start and goal glyphs take precedence over the route.
func Encode(w io.Writer, grid *gridpath.Grid, route gridpath.Route) error {
	onRoute := make(map[gridpath.Cell]bool, len(route))
	for _, c := range route {
		onRoute[c] = true
	}

	bw := bufio.NewWriter(w)
	for y := 0; y < grid.Height; y++ {
		line := make([]rune, grid.Width)
		for x := range line {
			c := gridpath.Cell{X: x, Y: y}
			switch {
			case c == grid.Start:
				line[x] = GlyphStart
			case c == grid.Goal:
				line[x] = GlyphGoal
			case grid.IsBlocked(c):
				line[x] = GlyphWall
			case onRoute[c]:
				line[x] = GlyphRoute
			default:
				line[x] = GlyphEmpty
			}
		}
		if _, err := bw.WriteString(string(line) + "\n"); err != nil {
			return errors.Wrap(err, "write map")
		}
	}
	return errors.Wrap(bw.Flush(), "flush map")
}
