package main

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"

	"github.com/lixenwraith/horse-race/audio"
	"github.com/lixenwraith/horse-race/config"
	"github.com/lixenwraith/horse-race/engine"
	"github.com/lixenwraith/horse-race/history"
	"github.com/lixenwraith/horse-race/input"
	"github.com/lixenwraith/horse-race/race"
	"github.com/lixenwraith/horse-race/render"
)

// app binds the race model to the terminal, audio and the results journal
type app struct {
	cfg    *config.Config
	screen tcell.Screen
	clock  *engine.FrameClock
	speeds race.SpeedSource
	sound  *audio.SoundManager
	store  *history.Store // nil when the journal is disabled

	state   *race.State
	layout  render.Layout
	surface *render.TerminalSurface
	board   *render.Leaderboard
	bar     *render.ControlBar
	router  *input.Router

	startedAt time.Time
	arrivals  []race.Finish
	saved     int
}

func newApp(cfg *config.Config, screen tcell.Screen, clock *engine.FrameClock, speeds race.SpeedSource, sound *audio.SoundManager, store *history.Store) *app {
	a := &app{
		cfg:    cfg,
		screen: screen,
		clock:  clock,
		speeds: speeds,
		sound:  sound,
		store:  store,
	}

	w, h := screen.Size()
	a.layout = render.NewLayout(w, h, cfg.Terminal.PanelWidth)
	a.surface = render.NewTerminalSurface(a.layout.Canvas, cfg.Terminal.CellWidth, cfg.Terminal.CellHeight)
	a.board = render.NewLeaderboard(screen, a.layout.Panel)
	a.bar = render.NewControlBar(screen, a.layout.Bar)
	a.router = input.NewRouter(input.DefaultKeyTable(), a.bar)
	a.state = race.New(a.track(), cfg.RaceConfig())

	// Bar must be drawn once so the start button accepts clicks before the first frame
	a.drawBar()
	return a
}

// track fits the race track to the current canvas
func (a *app) track() race.Track {
	sw, sh := a.surface.Size()
	return race.TrackFor(sw, sh, a.cfg.Track.Ratio)
}

// relayout recomputes the screen split after a resize
func (a *app) relayout() {
	w, h := a.screen.Size()
	a.layout = render.NewLayout(w, h, a.cfg.Terminal.PanelWidth)
	a.surface.SetRegion(a.layout.Canvas)
	a.board.SetRegion(a.layout.Panel)
	a.bar.SetRegion(a.layout.Bar)
	a.state.Resize(a.track())
	a.screen.Clear()

	log.Debug().Int("width", w).Int("height", h).Int("canvas", a.layout.Canvas.W).Msg("resized")
}

// handleEvent routes one terminal event; it returns false when the program should exit
func (a *app) handleEvent(ev tcell.Event) bool {
	return a.handle(a.router.Resolve(ev))
}

// handle applies an intent; it returns false on quit
func (a *app) handle(intent input.Intent) bool {
	switch intent {
	case input.IntentQuit:
		return false
	case input.IntentStart:
		a.start()
	case input.IntentReset:
		a.reset()
	case input.IntentToggleMute:
		muted := a.sound.ToggleMuted()
		log.Debug().Bool("muted", muted).Msg("audio toggled")
	case input.IntentResize:
		a.screen.Sync()
		a.relayout()
	}
	return true
}

func (a *app) start() {
	if !a.state.Start(a.speeds) {
		return
	}
	a.startedAt = time.Now()
	a.arrivals = a.arrivals[:0]
	a.sound.PlayStart()

	ev := log.Info()
	for _, actor := range a.state.Actors() {
		ev = ev.Float64(actor.Name, actor.Speed)
	}
	ev.Msg("race started")
}

func (a *app) reset() {
	if !a.state.Controls().ResetEnabled {
		return
	}
	a.state.Reset()
	a.arrivals = a.arrivals[:0]
	a.board.Publish(a.state.Labels())
	log.Info().Msg("race reset")
}

// frame runs one clock tick: render and advance the race, then draw the chrome
func (a *app) frame(now time.Time) {
	a.clock.Advance(now)

	result := a.state.Tick(a.surface, a.board)
	for _, f := range result.Finished {
		a.arrivals = append(a.arrivals, f)
		a.sound.PlayFinish(f.Rank)
		log.Debug().Str("name", f.Name).Int("rank", f.Rank).Uint64("frame", f.Frame).Msg("finished")
	}
	if result.Completed {
		a.sound.PlayComplete()
		a.record(time.Now())
	}

	a.surface.Flush(a.screen)
	a.drawBar()
	a.screen.Show()
}

func (a *app) drawBar() {
	a.bar.Draw(render.BarStatus{
		Controls: a.state.Controls(),
		Phase:    a.state.Phase(),
		FPS:      a.clock.FPS(),
		Muted:    a.sound.Muted(),
	})
}

// record journals a completed race and trims the journal to the configured size
func (a *app) record(finishedAt time.Time) {
	if a.store == nil {
		return
	}

	rec, err := history.NewRecord(a.startedAt, finishedAt, a.arrivals)
	if err != nil {
		log.Error().Err(err).Msg("failed to build race record")
		return
	}
	if err := a.store.Save(rec); err != nil {
		log.Error().Err(err).Msg("failed to save race record")
		return
	}
	a.saved++
	log.Info().Str("id", rec.ID).Str("winner", rec.Winner()).Uint64("frames", rec.Frames).Msg("race recorded")

	if keep := a.cfg.History.Keep; keep > 0 {
		if n, err := a.store.Prune(keep); err != nil {
			log.Error().Err(err).Msg("failed to prune history")
		} else if n > 0 {
			log.Debug().Int("removed", n).Msg("history pruned")
		}
	}
}
