package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/invite/intro"
	"github.com/lixenwraith/invite/parameter"
	"github.com/lixenwraith/invite/window"
)

func runWindow(ctx context.Context, a *app) error {
	game, err := window.New(a.sched, a.clock, a.events, a.lock, parameter.WindowWidth, parameter.WindowHeight)
	if err != nil {
		return fmt.Errorf("load fonts: %w", err)
	}

	return a.withIntro(ctx, game, func(o *intro.Overlay) error {
		game.Attach(o, a.view)

		ebiten.SetWindowSize(parameter.WindowWidth, parameter.WindowHeight)
		ebiten.SetWindowTitle(a.cfg.EventTitle)
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

		stop := context.AfterFunc(ctx, game.Stop)
		defer stop()

		if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
			return err
		}
		return nil
	})
}
