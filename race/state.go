package race

import "math/rand/v2"

// Default speed range in surface units per frame, [min, max)
const (
	DefaultSpeedMin = 2.0
	DefaultSpeedMax = 4.0
)

// Phase is the coarse lifecycle position of a race
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseRacing
	PhaseComplete
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRacing:
		return "racing"
	case PhaseComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// Config holds the per-race parameters that do not change between resets
type Config struct {
	Names    [LaneCount]string
	SpeedMin float64
	SpeedMax float64
}

// DefaultConfig returns the stock runners and speed range
func DefaultConfig() Config {
	return Config{
		Names:    DefaultNames,
		SpeedMin: DefaultSpeedMin,
		SpeedMax: DefaultSpeedMax,
	}
}

// Controls reports which host triggers are currently valid
type Controls struct {
	StartEnabled bool
	ResetEnabled bool
}

// State is the whole race: actors, arrival order and the racing flag
// It is owned by a single caller and is not safe for concurrent use
type State struct {
	cfg      Config
	track    Track
	actors   []*Actor
	finished []*Actor
	racing   bool
	frame    uint64
}

// New creates a race on track with all actors on the start line
func New(track Track, cfg Config) *State {
	if cfg.SpeedMax <= cfg.SpeedMin {
		cfg.SpeedMin, cfg.SpeedMax = DefaultSpeedMin, DefaultSpeedMax
	}
	for i, name := range cfg.Names {
		if name == "" {
			cfg.Names[i] = DefaultNames[i]
		}
	}
	s := &State{cfg: cfg}
	s.Initialize(track)
	return s
}

// Initialize replaces all actor state: start line, one lane each, no speed, no rank
func (s *State) Initialize(track Track) {
	s.track = track
	s.actors = make([]*Actor, LaneCount)
	for i := range s.actors {
		s.actors[i] = &Actor{
			Name: s.cfg.Names[i],
			X:    track.Left(),
			Y:    track.LaneY(i),
			Lane: i,
		}
	}
	s.finished = make([]*Actor, 0, LaneCount)
	s.racing = false
	s.frame = 0
}

// Start assigns every actor a speed and enables movement
// Returns false without touching speeds if a race is already running
// Starting after a completed race re-initializes first so the new race begins on the start line
func (s *State) Start(src SpeedSource) bool {
	if s.racing {
		return false
	}
	if s.Complete() {
		s.Initialize(s.track)
	}
	if src == nil {
		src = globalSource{}
	}

	span := s.cfg.SpeedMax - s.cfg.SpeedMin
	for _, a := range s.actors {
		a.Speed = s.cfg.SpeedMin + src.Float64()*span
	}
	s.racing = true
	return true
}

// Reset returns to the start-of-race presentation
func (s *State) Reset() {
	s.Initialize(s.track)
}

// Resize moves the race onto a new track geometry
// Lanes are re-derived from each actor's lane index; x keeps its fraction of the track width
func (s *State) Resize(track Track) {
	old := s.track
	s.track = track
	for _, a := range s.actors {
		a.Y = track.LaneY(a.Lane)
		if a.Finished() {
			a.X = track.Right()
			continue
		}
		a.X = track.X + old.progress(a.X)*track.Width
	}
}

// Racing reports whether actors are moving
func (s *State) Racing() bool { return s.racing }

// Complete reports whether every actor has a finish rank
func (s *State) Complete() bool { return len(s.finished) == len(s.actors) }

// Phase derives the lifecycle phase from the racing flag and arrivals
func (s *State) Phase() Phase {
	switch {
	case s.racing:
		return PhaseRacing
	case s.Complete():
		return PhaseComplete
	default:
		return PhaseIdle
	}
}

// Controls returns the trigger enablement for the host
// Not racing means the race either never started or has completed, so both are allowed
func (s *State) Controls() Controls {
	return Controls{
		StartEnabled: !s.racing,
		ResetEnabled: !s.racing,
	}
}

// Track returns the current geometry
func (s *State) Track() Track { return s.track }

// Frame is the number of movement frames since the race started
func (s *State) Frame() uint64 { return s.frame }

// Actors returns copies of all actors in lane order
func (s *State) Actors() []Actor {
	out := make([]Actor, len(s.actors))
	for i, a := range s.actors {
		out[i] = *a
	}
	return out
}

// Finished returns copies of the finished actors in arrival order
func (s *State) Finished() []Actor {
	out := make([]Actor, len(s.finished))
	for i, a := range s.finished {
		out[i] = *a
	}
	return out
}

type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }
