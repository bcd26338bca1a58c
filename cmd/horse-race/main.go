package main

import (
	"cmp"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"runtime/debug"
	"slices"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"

	"github.com/lixenwraith/horse-race/audio"
	"github.com/lixenwraith/horse-race/config"
	"github.com/lixenwraith/horse-race/engine"
	"github.com/lixenwraith/horse-race/history"
)

var (
	configFlag  = flag.String("config", "", "Path to TOML config file")
	debugFlag   = flag.Bool("debug", false, "Write debug log under the log directory")
	seedFlag    = flag.Uint64("seed", 0, "Speed generator seed (0: from clock)")
	historyFlag = flag.String("history", "", "Results journal directory (overrides config)")
	resultsFlag = flag.Int("results", 0, "Print the last N recorded races and exit")
	muteFlag    = flag.Bool("mute", false, "Start with audio muted")
	colorFlag   = flag.String("color", "", "Color mode: auto, truecolor, 256")
)

func main() {
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "horse-race: %v\n", err)
		os.Exit(2)
	}

	if logFile := setupLoggingIn(cfg.Log.Dir, cfg.Log.MaxSize, cfg.Log.Debug); logFile != nil {
		defer logFile.Close()
	}

	if *resultsFlag > 0 {
		if err := printResults(os.Stdout, cfg.History.Dir, *resultsFlag); err != nil {
			fmt.Fprintf(os.Stderr, "horse-race: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(cfg); err != nil {
		log.Error().Err(err).Msg("exited with error")
		fmt.Fprintf(os.Stderr, "horse-race: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig layers file, environment and flags, in that order
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	if *debugFlag {
		cfg.Log.Debug = true
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}
	if *historyFlag != "" {
		cfg.History.Dir = *historyFlag
	}
	if *colorFlag != "" {
		cfg.Terminal.Color = *colorFlag
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyColorMode steers tcell's color detection before the screen is created
func applyColorMode(mode string) {
	switch mode {
	case "truecolor":
		os.Setenv("COLORTERM", "truecolor")
	case "256":
		os.Setenv("TCELL_TRUECOLOR", "disable")
	}
}

func newSpeedSource(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Info().Uint64("seed", seed).Msg("speed generator seeded")
	return rand.New(rand.NewPCG(seed, seed>>1|1))
}

func run(cfg *config.Config) error {
	applyColorMode(cfg.Terminal.Color)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	// Panic Recovery: restore the terminal before printing the crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mHORSE-RACE CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	screen.EnableMouse()
	screen.HideCursor()
	screen.Clear()

	var store *history.Store
	if cfg.History.Dir != "" {
		store, err = history.Open(cfg.History.Dir)
		if err != nil {
			// Racing works without the journal
			log.Warn().Err(err).Str("dir", cfg.History.Dir).Msg("history disabled")
			store = nil
		} else {
			defer store.Close()
		}
	}

	sound := audio.NewSoundManager(cfg.Audio.Volume)
	if cfg.Audio.Enabled {
		if err := sound.Initialize(); err != nil {
			log.Warn().Err(err).Msg("audio initialization failed, continuing without audio")
		} else {
			defer sound.Cleanup()
		}
	}
	sound.SetMuted(*muteFlag)

	clock := engine.NewFrameClock(cfg.FrameInterval, nil)
	a := newApp(cfg, screen, clock, newSpeedSource(cfg.Seed), sound, store)
	a.board.Publish(a.state.Labels())
	screen.Show()

	events := make(chan tcell.Event, 64)
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
			// nil after Fini
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	clock.Start()
	defer clock.Stop()

	log.Info().Dur("interval", cfg.FrameInterval).Msg("race view ready")

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !a.handleEvent(ev) {
				log.Info().Int("recorded", a.saved).Msg("quit")
				return nil
			}
		case now := <-clock.C():
			a.frame(now)
		}
	}
}

// printResults writes the last n journal entries and a win tally
func printResults(w io.Writer, dir string, n int) error {
	if dir == "" {
		return errors.New("no history directory: set -history or history.dir")
	}
	store, err := history.Open(dir)
	if err != nil {
		return err
	}
	defer store.Close()

	records, err := store.Recent(n)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Fprintln(w, "no races recorded")
		return nil
	}

	for _, rec := range records {
		fmt.Fprintln(w, rec.String())
	}

	wins := history.Wins(records)
	names := make([]string, 0, len(wins))
	for name := range wins {
		names = append(names, name)
	}
	slices.SortFunc(names, func(a, b string) int {
		if wins[a] != wins[b] {
			return wins[b] - wins[a]
		}
		return cmp.Compare(a, b)
	})

	fmt.Fprintf(w, "\nwins over last %d:\n", len(records))
	for _, name := range names {
		fmt.Fprintf(w, "  %-12s %d\n", name, wins[name])
	}
	return nil
}
