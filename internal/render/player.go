package render

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/pdrpinto/gridpath"
)

// RouteFollower is the part of a planned agent the player consumes.
type RouteFollower interface {
	Step() gridpath.Cell
	Remaining() int
}

// Player animates a planned route: one Step per tick.
type Player struct {
	Grid     *gridpath.Grid
	Route    gridpath.Route
	Agent    RouteFollower
	FPS      int
	Label    string
	Renderer Renderer
	Logger   *zap.Logger

	current gridpath.Cell
	ticks   int
}

// NewPlayer positions the agent marker at the grid start.
func NewPlayer(grid *gridpath.Grid, route gridpath.Route, agent RouteFollower, fps int, label string, logger *zap.Logger) *Player {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Player{
		Grid:     grid,
		Route:    route,
		Agent:    agent,
		FPS:      fps,
		Label:    label,
		Renderer: DefaultRenderer(),
		Logger:   logger,
		current:  grid.Start,
	}
}

// Tick advances the agent one cell while route cells remain. Once they run
// out the marker stays where it stopped.
func (p *Player) Tick() {
	p.ticks++
	if p.Agent.Remaining() > 0 {
		p.current = p.Agent.Step()
	}
}

// Current is the cell the agent marker is drawn at.
func (p *Player) Current() gridpath.Cell { return p.current }

// Frame draws the current state onto canvas.
func (p *Player) Frame(canvas Canvas) {
	p.Renderer.Draw(canvas, p.Grid, p.Route, p.current, p.status())
}

func (p *Player) status() string {
	if len(p.Route) == 0 {
		return fmt.Sprintf("%s: no path found  [q] quit", p.Label)
	}
	done := len(p.Route) - p.Agent.Remaining()
	if p.Agent.Remaining() == 0 && p.current == p.Grid.Goal {
		return fmt.Sprintf("%s: goal reached in %d steps  [q] quit", p.Label, len(p.Route)-1)
	}
	return fmt.Sprintf("%s: step %d/%d  [q] quit", p.Label, done, len(p.Route))
}

// Run draws a frame per tick until ctx is cancelled or the user quits with
// Esc, q or Ctrl-C. The caller owns screen Init and Fini.
func (p *Player) Run(ctx context.Context, screen tcell.Screen) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	fps := p.FPS
	if fps <= 0 {
		fps = 15
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	p.Logger.Debug("playback started", zap.Int("fps", fps), zap.Int("route", len(p.Route)))
	p.draw(screen)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if isQuit(ev) {
					p.Logger.Debug("playback stopped by user", zap.Int("ticks", p.ticks))
					return nil
				}
			case *tcell.EventResize:
				screen.Sync()
				p.draw(screen)
			}
		case <-ticker.C:
			p.Tick()
			p.draw(screen)
		}
	}
}

func (p *Player) draw(screen tcell.Screen) {
	screen.Clear()
	p.Frame(screen)
	screen.Show()
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}
