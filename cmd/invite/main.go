package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/invite/audio"
	"github.com/lixenwraith/invite/config"
	"github.com/lixenwraith/invite/core"
	"github.com/lixenwraith/invite/engine"
	"github.com/lixenwraith/invite/event"
	"github.com/lixenwraith/invite/intro"
	"github.com/lixenwraith/invite/metrics"
	"github.com/lixenwraith/invite/page"
	"github.com/lixenwraith/invite/parameter"
	"github.com/lixenwraith/invite/sensor"
	"github.com/lixenwraith/invite/store"
)

var (
	configFlag        = flag.String("config", "", "JSON config merged over the built-in defaults")
	backendFlag       = flag.String("backend", "terminal", "Host backend: terminal, window")
	storeFlag         = flag.String("store", "", "Seen-flag store: memory:, a file path, sqlite://path, redis://host:port/db")
	reducedMotionFlag = flag.Bool("reduced-motion", false, "Prefer reduced motion: no trails, gentle warp")
	muteFlag          = flag.Bool("mute", false, "Disable audio")
	debugFlag         = flag.Bool("debug", false, "Write debug logs to logs/invite.log")
	metricsFileFlag   = flag.String("metrics-file", "", "Write prometheus metrics to this textfile on exit")
	colorModeFlag     = flag.String("color", "auto", "Color mode: auto, truecolor, 256")
	iioRootFlag       = flag.String("iio-root", "", "sysfs IIO device root for the orientation sensor")
)

// app is everything the backends share
type app struct {
	cfg *config.Config

	sched  *engine.Scheduler
	clock  engine.Clock
	events *event.Dispatcher
	lock   *intro.InputLock
	view   *page.View
	deps   intro.Deps
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	logFile := setupLogging(*debugFlag)
	session := uuid.NewString()
	log.SetPrefix("[" + session[:8] + "] ")

	err := run(session)
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "invite: %v\n", err)
		os.Exit(1)
	}
}

func run(session string) error {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return err
	}
	if *storeFlag != "" {
		cfg.Store = *storeFlag
	}
	if *reducedMotionFlag {
		cfg.ReducedMotion = true
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := metrics.New(session)
	if *metricsFileFlag != "" {
		defer func() {
			if err := m.WriteTextfile(*metricsFileFlag); err != nil {
				log.Printf("metrics: %v", err)
			}
		}()
	}

	openCtx, cancel := context.WithTimeout(ctx, parameter.StoreTimeout)
	st, err := store.OpenOrUnavailable(openCtx, cfg.Store)
	cancel()
	if err != nil {
		log.Printf("store %q unavailable, intro shows every run: %v", cfg.Store, err)
		m.StoreError("open", err)
	}
	defer st.Close()

	seen := store.NewSeenFlag(st)
	seen.OnError = m.StoreError

	a := &app{
		cfg:    cfg,
		sched:  engine.NewScheduler(time.Now()),
		clock:  engine.NewTimeProvider(),
		events: event.NewDispatcher(),
		lock:   &intro.InputLock{},
	}
	a.view = page.NewView(cfg, time.Local)
	a.deps = intro.Deps{
		Events:      a.events,
		Scheduler:   a.sched,
		Seen:        seen,
		Lock:        a.lock,
		Orientation: sensor.NewIIO(*iioRootFlag, a.sched.Post, a.events),
		Metrics:     m,
	}

	if !*muteFlag {
		sm := audio.NewSoundManager()
		if err := sm.Initialize(); err != nil {
			log.Printf("audio unavailable, continuing without sound: %v", err)
		} else {
			defer sm.Cleanup()
			a.deps.Sound = sm
		}
	}

	log.Printf("session %s: backend=%s store=%q reducedMotion=%t", session, *backendFlag, cfg.Store, cfg.ReducedMotion)

	switch *backendFlag {
	case "terminal":
		return runTerminal(ctx, a)
	case "window":
		return runWindow(ctx, a)
	default:
		return fmt.Errorf("unknown backend %q", *backendFlag)
	}
}

// mount attaches the intro to host
func (a *app) mount(ctx context.Context, host intro.Host) (*intro.Overlay, error) {
	deps := a.deps
	deps.Host = host
	o, err := intro.Mount(ctx, a.cfg.IntroSettings(), a.cfg.ReducedMotion, deps)
	if err != nil {
		return nil, fmt.Errorf("mount intro: %w", err)
	}
	o.OnPhase(func(p intro.Phase, at time.Time) {
		log.Printf("intro phase %s at %s", p, at.Format("15:04:05.000"))
	})
	return o, nil
}

// withIntro mounts the intro on host and runs fn; the overlay is force-closed when fn
// returns so an interrupted intro stops its sensor and releases the input lock
func (a *app) withIntro(ctx context.Context, host intro.Host, fn func(o *intro.Overlay) error) error {
	o, err := a.mount(ctx, host)
	if err != nil {
		return err
	}
	defer o.Close()
	return fn(o)
}
