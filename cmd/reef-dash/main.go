package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/reef-dash/audio"
	"github.com/lixenwraith/reef-dash/config"
	"github.com/lixenwraith/reef-dash/constants"
	"github.com/lixenwraith/reef-dash/engine"
	"github.com/lixenwraith/reef-dash/input"
	"github.com/lixenwraith/reef-dash/leaderboard"
	"github.com/lixenwraith/reef-dash/render"
	"github.com/lixenwraith/reef-dash/session"
)

var (
	debugFlag = flag.Bool("debug", false, "Write logs to logs/reef-dash.log")
	seedFlag  = flag.Int64("seed", 0, "Fixed random seed for every run (0 = time based)")
	muteFlag  = flag.Bool("mute", false, "Start with sound off")
)

func main() {
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}
	// Flags override the environment
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "debug":
			cfg.Debug = *debugFlag
		case "seed":
			cfg.Seed = *seedFlag
		case "mute":
			cfg.Audio = !*muteFlag
		}
	})

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}
	log.Printf("Config: leaderboard=%s top=%d seed=%d audio=%v", cfg.Leaderboard, cfg.LeaderboardTop, cfg.Seed, cfg.Audio)

	store, closeStore, err := openStore(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leaderboard error: %v\n", err)
		os.Exit(1)
	}
	defer closeStore()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}

	// Panic recovery: restore the terminal before printing the trace
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mREEF DASH CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	screen.SetStyle(tcell.StyleDefault.Background(render.RgbWaterDeep))
	screen.HideCursor()
	screen.Clear()

	sound := audio.NewSoundManager()
	if err := sound.Initialize(); err != nil {
		log.Printf("Audio initialization failed: %v (continuing without audio)", err)
	} else {
		defer sound.Cleanup()
	}
	sound.SetMuted(!cfg.Audio)

	run(screen, cfg, store, sound)
}

// openStore selects the leaderboard backend; the returned func releases it
func openStore(cfg *config.Config) (leaderboard.Store, func(), error) {
	noop := func() {}

	switch cfg.Leaderboard {
	case config.BackendMemory:
		return leaderboard.NewMemoryStore(), noop, nil

	case config.BackendPostgres:
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		db, err := leaderboard.OpenPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, noop, err
		}
		pg := leaderboard.NewPostgresStore(db, leaderboard.DefaultTable)
		if err := pg.EnsureSchema(ctx); err != nil {
			db.Close()
			return nil, noop, err
		}
		log.Printf("Leaderboard: postgres table %s", leaderboard.DefaultTable)
		return pg, func() { db.Close() }, nil

	default:
		path := cfg.LeaderboardPath
		if path == "" {
			p, err := leaderboard.DefaultPath()
			if err != nil {
				return nil, noop, err
			}
			path = p
		}
		fs, err := leaderboard.NewFileStore(path)
		if err != nil {
			return nil, noop, err
		}
		log.Printf("Leaderboard: file %s", fs.Path())
		return fs, noop, nil
	}
}

func run(screen tcell.Screen, cfg *config.Config, store leaderboard.Store, sound *audio.SoundManager) {
	renderer := render.NewTerminalRenderer(screen, cfg.Tuning.Field)
	clock := engine.NewPausableClock(engine.NewMonotonicTimeProvider())
	keys := input.NewKeyState(engine.NewMonotonicTimeProvider(), cfg.HoldWindow)
	machine := input.NewMachine()

	manager := session.NewManager(engine.NewScheduler(), session.Options{
		Tuning:         cfg.Tuning,
		Seed:           cfg.Seed,
		Keys:           keys,
		Renderer:       renderer,
		HUD:            renderer,
		Store:          store,
		LeaderboardTop: cfg.LeaderboardTop,
		Handlers:       []engine.EventHandler{sound},
		Audio:          sound,
		Clock:          clock,
	})
	manager.Render()

	eventChan := make(chan tcell.Event, 256)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				screen.Fini()
				fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
				os.Exit(1)
			}
		}()
		for {
			ev := screen.PollEvent()
			// nil after Fini
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	frameTicker := time.NewTicker(constants.FrameUpdateInterval)
	defer frameTicker.Stop()

	for {
		select {
		case ev := <-eventChan:
			machine.SetMode(manager.InputMode())
			in := machine.Process(ev)
			if in == nil {
				continue
			}
			if in.Type == input.IntentResize {
				screen.Sync()
				renderer.Resize()
				manager.Render()
				continue
			}
			if manager.HandleIntent(in) {
				log.Printf("Quit requested")
				return
			}

		case <-frameTicker.C:
			manager.Advance(clock.Delta(constants.MaxFrameDelta))
		}
	}
}
