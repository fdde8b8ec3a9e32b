package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/lixenwraith/firework/audio"
	"github.com/lixenwraith/firework/config"
	"github.com/lixenwraith/firework/core"
	"github.com/lixenwraith/firework/engine"
	"github.com/lixenwraith/firework/input"
	"github.com/lixenwraith/firework/render"
	"github.com/lixenwraith/firework/vmath"
)

var (
	configFlag = flag.String("config", "firework.toml", "Path to TOML config file, empty to skip")
	debugFlag  = flag.Bool("debug", false, "Write debug log to logs/firework.log")
	seedFlag   = flag.Uint64("seed", 0, "Random seed, 0 picks one from the clock")
	muteFlag   = flag.Bool("mute", false, "Disable sound")
	volumeFlag = flag.Float64("volume", 0, "Sound volume in [0, 1]")
	statusFlag = flag.Bool("status", false, "Show the status line at start")
	watchFlag  = flag.Bool("watch", true, "Reload colors when the config file changes")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "firework: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*configFlag, config.DefaultEnvFile)
	if err != nil {
		return err
	}
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("stdout is not a terminal")
	}

	palette, err := cfg.Palette()
	if err != nil {
		return err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Printf("starting: seed=%d", seed)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	core.SetCrashScreen(screen)
	defer screen.Fini()
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()
	screen.HideCursor()

	width, height := screen.Size()
	log.Printf("screen %dx%d", width, height)

	sim := engine.NewSimulation(width, height, vmath.NewFastRand(seed))
	sink := render.NewScreenSink(screen, palette)

	poller := input.NewPoller(screen, nil)
	poller.WatchSignals()
	defer poller.StopSignals()

	loop := engine.NewLoop(cfg.LoopConfig(), sim, sink, poller, nil)

	sounds := audio.NewSoundManager(cfg.AudioConfig())
	if err := sounds.Initialize(); err != nil {
		log.Printf("audio disabled: %v", err)
	}
	defer sounds.Cleanup()
	loop.AddListener(sounds)

	if *watchFlag && *configFlag != "" {
		if w, err := config.NewWatcher(*configFlag); err != nil {
			log.Printf("config watch disabled: %v", err)
		} else {
			defer w.Close()
			loop.WatchPalettes(w.Palettes())
		}
	}

	return loop.Run(context.Background())
}

// applyFlags overrides config values with flags given on the command line
func applyFlags(cfg *config.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "debug":
			cfg.Debug = *debugFlag
		case "seed":
			cfg.Seed = *seedFlag
		case "mute":
			cfg.Audio.Enabled = !*muteFlag
		case "volume":
			cfg.Audio.Volume = *volumeFlag
		case "status":
			cfg.Loop.ShowStatus = *statusFlag
		}
	})
}
