package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/pdrpinto/gridpath/internal/render"
)

func playAction(cCtx *cli.Context) error {
	s, err := newSession(cCtx, true)
	if err != nil {
		return err
	}
	defer s.logger.Sync() // nolint: errcheck

	route, err := s.agent.Plan()
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "create screen")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "init screen")
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(cCtx.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	player := render.NewPlayer(s.grid, route, s.agent, s.config.FPS, s.label(), s.logger.With(zap.String("site", "play")))
	if err := player.Run(ctx, screen); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
