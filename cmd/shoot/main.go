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

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/shoot/audio"
	"github.com/lixenwraith/shoot/collision"
	"github.com/lixenwraith/shoot/config"
	"github.com/lixenwraith/shoot/core"
	"github.com/lixenwraith/shoot/engine"
	"github.com/lixenwraith/shoot/input"
	"github.com/lixenwraith/shoot/metrics"
	"github.com/lixenwraith/shoot/monitor"
	"github.com/lixenwraith/shoot/parameter"
	"github.com/lixenwraith/shoot/render"
)

var (
	configPath  = flag.String("config", "", "TOML config path (default: ./shoot.toml if present, else built-in)")
	seedFlag    = flag.Uint64("seed", 0, "RNG seed, 0 keeps the config value or derives one from the clock")
	debugFlag   = flag.Bool("debug", false, "Write logs to logs/shoot.log")
	monitorAddr = flag.String("monitor", "", "Serve /metrics, /healthz and /snapshot on this address, e.g. 127.0.0.1:9090")
	muteFlag    = flag.Bool("mute", false, "Disable audio")
)

// session wires one world to the terminal and its side channels
type session struct {
	loop      *engine.Loop
	latch     *input.Latch
	keymap    *input.Keymap
	screen    tcell.Screen
	presenter *render.Presenter
	sink      *audio.Sink
	monitor   *monitor.Server
}

func newSession(world *engine.World, screen tcell.Screen, clock engine.TimeProvider, observer engine.Observer) *session {
	return &session{
		loop:      engine.NewLoop(world, clock, observer),
		latch:     input.NewLatch(parameter.InputHoldWindow),
		keymap:    input.DefaultKeymap(),
		screen:    screen,
		presenter: render.NewPresenter(screen),
		sink:      audio.NewSink(nil),
	}
}

// handleEvent feeds one terminal event into the latch; false means the screen is gone
func (s *session) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case nil:
		return false
	case *tcell.EventKey:
		s.latch.Press(s.keymap.Resolve(ev), ev.When())
	case *tcell.EventResize:
		s.screen.Sync()
	}
	return true
}

// frame ticks once and publishes the result; true means quit was requested
func (s *session) frame(now time.Time) (bool, error) {
	rep, err := s.loop.Step(s.latch.Snapshot(now))
	if err != nil {
		return true, err
	}

	world := s.loop.World()
	s.sink.Drain(world.Events())

	snap := world.Snapshot()
	s.presenter.Render(snap)
	if s.monitor != nil {
		s.monitor.Publish(snap)
	}
	return rep.Quit, nil
}

func (s *session) run(ctx context.Context) error {
	ticker := time.NewTicker(parameter.FrameUpdateInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	core.Go(func() {
		for {
			ev := s.screen.PollEvent()
			eventChan <- ev
			if ev == nil {
				return
			}
		}
	})

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-eventChan:
			if !s.handleEvent(ev) {
				return nil
			}
		case now := <-ticker.C:
			quit, err := s.frame(now)
			if err != nil {
				return fmt.Errorf("frame %d: %w", s.loop.World().Frame(), err)
			}
			if quit {
				return nil
			}
		}
	}
}

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "shoot: %v\n", err)
		// Deferred cleanup already ran inside run
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	switch {
	case *seedFlag != 0:
		cfg.Loop.Seed = *seedFlag
	case cfg.Loop.Seed == 0:
		cfg.Loop.Seed = uint64(time.Now().UnixNano())
	}
	log.Printf("seed %d, collision method %q", cfg.Loop.Seed, cfg.Collision.Method)

	world, err := engine.NewWorld(cfg, collision.NewDriver())
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	collector := metrics.NewCollector()
	var mon *monitor.Server
	if *monitorAddr != "" {
		mon = monitor.New(collector.Handler())
		if _, err := mon.Start(*monitorAddr); err != nil {
			return fmt.Errorf("monitor: %w", err)
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			mon.Shutdown(shutdownCtx)
		}()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	core.SetCrashFinalizer(screen.Fini)
	defer screen.Fini()
	screen.HideCursor()

	audioCfg := audio.LoadConfig()
	if *muteFlag {
		audioCfg.Enabled = false
	}
	sounds := audio.NewSoundManager(audioCfg)
	if err := sounds.Initialize(); err != nil {
		log.Printf("audio initialization failed: %v (continuing without audio)", err)
	}
	defer sounds.Cleanup()

	s := newSession(world, screen, engine.NewTimeProvider(), collector)
	s.sink = audio.NewSink(sounds)
	s.monitor = mon

	err = s.run(ctx)
	log.Printf("exit at frame %d, phase %s, score %d", world.Frame(), world.Phase(), world.Score())
	return err
}
