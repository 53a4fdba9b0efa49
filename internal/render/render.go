package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/pdrpinto/gridpath"
)

const (
	RuneWall  = '█'
	RuneGoal  = 'X'
	RuneStart = '#'
	RuneRoute = '·'
	RuneAgent = '@'
	RuneEmpty = ' '
)

// Canvas is the drawing subset of tcell.Screen.
type Canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// Renderer draws a grid, a route and the agent position, one terminal cell per grid cell.
type Renderer struct {
	Wall  tcell.Style
	Goal  tcell.Style
	Start tcell.Style
	Route tcell.Style
	Agent tcell.Style
	Text  tcell.Style
}

// DefaultRenderer returns a renderer with a dark palette.
func DefaultRenderer() Renderer {
	base := tcell.StyleDefault
	return Renderer{
		Wall:  base.Foreground(tcell.ColorGray),
		Goal:  base.Foreground(tcell.ColorRed).Bold(true),
		Start: base.Foreground(tcell.ColorBlue),
		Route: base.Foreground(tcell.ColorYellow),
		Agent: base.Foreground(tcell.ColorGreen).Bold(true),
		Text:  base,
	}
}

// Draw paints grid at the canvas origin. Layer order, bottom to top:
// empty, route, start, goal, walls, agent. The status line goes below the grid.
func (r Renderer) Draw(canvas Canvas, grid *gridpath.Grid, route gridpath.Route, current gridpath.Cell, status string) {
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			canvas.SetContent(x, y, RuneEmpty, nil, r.Text)
		}
	}
	for _, c := range route {
		canvas.SetContent(c.X, c.Y, RuneRoute, nil, r.Route)
	}
	canvas.SetContent(grid.Start.X, grid.Start.Y, RuneStart, nil, r.Start)
	canvas.SetContent(grid.Goal.X, grid.Goal.Y, RuneGoal, nil, r.Goal)
	for _, c := range grid.BlockedCells() {
		canvas.SetContent(c.X, c.Y, RuneWall, nil, r.Wall)
	}
	canvas.SetContent(current.X, current.Y, RuneAgent, nil, r.Agent)

	r.DrawText(canvas, 0, grid.Height, status)
}

// DrawText writes s starting at (x, y).
func (r Renderer) DrawText(canvas Canvas, x, y int, s string) {
	for i, ch := range []rune(s) {
		canvas.SetContent(x+i, y, ch, nil, r.Text)
	}
}
