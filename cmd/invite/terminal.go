package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/invite/core"
	"github.com/lixenwraith/invite/engine"
	"github.com/lixenwraith/invite/intro"
	"github.com/lixenwraith/invite/parameter"
	"github.com/lixenwraith/invite/render"
	"github.com/lixenwraith/invite/terminal"
)

func runTerminal(ctx context.Context, a *app) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}

	host := terminal.New(screen, render.ParseColorMode(*colorModeFlag), a.events, a.lock)
	if err := host.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer host.Fini()

	return a.withIntro(ctx, host, func(o *intro.Overlay) error {
		host.Attach(o, a.view)

		loop := engine.NewLoop(a.sched, a.clock)
		loop.OnStep(host.Draw)

		loopCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		g, gctx := errgroup.WithContext(loopCtx)
		eventChan := make(chan tcell.Event, parameter.EventChannelSize)
		g.Go(core.Guard(func() error {
			for {
				ev := screen.PollEvent()
				if ev == nil {
					return nil
				}
				select {
				case eventChan <- ev:
				case <-gctx.Done():
					return nil
				}
			}
		}))

		mainLoop(gctx, host, loop, o, eventChan)

		// Fini makes PollEvent return nil so the poller exits
		cancel()
		host.Fini()
		return g.Wait()
	})
}

// mainLoop owns the scheduler: events and steps run on this goroutine only
func mainLoop(ctx context.Context, host *terminal.Host, loop *engine.Loop, o *intro.Overlay, eventChan <-chan tcell.Event) {
	interval := parameter.FrameUpdateInterval
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	loop.Step()
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-eventChan:
			if !host.HandleEvent(ev) {
				return
			}
		case <-ticker.C:
			loop.Step()

			// The page only needs countdown granularity once the intro is gone
			want := parameter.FrameUpdateInterval
			if !o.Visible() {
				want = parameter.PageUpdateInterval
			}
			if want != interval {
				interval = want
				ticker.Reset(interval)
			}
		}
	}
}
