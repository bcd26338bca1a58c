package race

import (
	"math/rand/v2"
	"testing"
)

func TestNew_ActorsOnStartLine(t *testing.T) {
	track := Track{X: 10, Y: 20, Width: 200, Height: 160}
	s := New(track, DefaultConfig())

	if len(s.actors) != LaneCount {
		t.Fatalf("Expected %d actors, got %d", LaneCount, len(s.actors))
	}
	if s.Racing() {
		t.Error("New race should not be racing")
	}
	if len(s.finished) != 0 {
		t.Errorf("Expected no finishers, got %d", len(s.finished))
	}

	seen := make(map[string]bool)
	for i, a := range s.actors {
		if a.X != track.Left() {
			t.Errorf("Actor %d: expected x=%v, got %v", i, track.Left(), a.X)
		}
		if a.Speed != 0 {
			t.Errorf("Actor %d: expected speed 0, got %v", i, a.Speed)
		}
		if a.Finished() {
			t.Errorf("Actor %d should have no finish rank", i)
		}
		if a.Lane != i {
			t.Errorf("Actor %d: expected lane %d, got %d", i, i, a.Lane)
		}
		if want := track.LaneY(i); a.Y != want {
			t.Errorf("Actor %d: expected y=%v, got %v", i, want, a.Y)
		}
		if seen[a.Name] {
			t.Errorf("Duplicate actor name %q", a.Name)
		}
		seen[a.Name] = true
	}
}

func TestNew_LanesEvenlySpaced(t *testing.T) {
	s := New(Track{X: 0, Y: 0, Width: 100, Height: 80}, DefaultConfig())
	for i := 1; i < LaneCount; i++ {
		gap := s.actors[i].Y - s.actors[i-1].Y
		if gap != 10 {
			t.Errorf("Lane gap %d-%d: expected 10, got %v", i-1, i, gap)
		}
	}
}

func TestNew_FillsMissingConfig(t *testing.T) {
	var cfg Config
	cfg.Names[2] = "Custom"
	s := New(Track{Width: 100, Height: 80}, cfg)

	if s.actors[0].Name != DefaultNames[0] {
		t.Errorf("Expected default name %q, got %q", DefaultNames[0], s.actors[0].Name)
	}
	if s.actors[2].Name != "Custom" {
		t.Errorf("Expected configured name, got %q", s.actors[2].Name)
	}
	if s.cfg.SpeedMin != DefaultSpeedMin || s.cfg.SpeedMax != DefaultSpeedMax {
		t.Errorf("Expected default speed range, got [%v, %v)", s.cfg.SpeedMin, s.cfg.SpeedMax)
	}
}

func TestStart_AssignsSpeedsInRange(t *testing.T) {
	s := newTestRace()
	src := rand.New(rand.NewPCG(1, 2))

	if !s.Start(src) {
		t.Fatal("Start on idle race should succeed")
	}
	if !s.Racing() {
		t.Fatal("Expected racing after Start")
	}
	for _, a := range s.actors {
		if a.Speed < DefaultSpeedMin || a.Speed >= DefaultSpeedMax {
			t.Errorf("%s: speed %v outside [%v, %v)", a.Name, a.Speed, DefaultSpeedMin, DefaultSpeedMax)
		}
	}
}

func TestStart_MapsSourceLinearly(t *testing.T) {
	s := newTestRace()
	s.Start(&fixedSource{values: []float64{0, 0.5, 0.25}})

	want := []float64{2, 3, 2.5}
	for i, w := range want {
		if s.actors[i].Speed != w {
			t.Errorf("Actor %d: expected speed %v, got %v", i, w, s.actors[i].Speed)
		}
	}
}

func TestStart_WhileRacingKeepsSpeeds(t *testing.T) {
	s := newTestRace()
	s.Start(&fixedSource{values: []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8}})
	before := s.Actors()

	if s.Start(&fixedSource{values: []float64{0.9}}) {
		t.Error("Start while racing should report false")
	}
	after := s.Actors()
	for i := range before {
		if before[i].Speed != after[i].Speed {
			t.Errorf("Actor %d: speed changed from %v to %v", i, before[i].Speed, after[i].Speed)
		}
	}
}

func TestStart_NilSourceUsesGlobal(t *testing.T) {
	s := newTestRace()
	s.Start(nil)
	for _, a := range s.actors {
		if a.Speed < DefaultSpeedMin || a.Speed >= DefaultSpeedMax {
			t.Errorf("%s: speed %v outside default range", a.Name, a.Speed)
		}
	}
}

func TestStart_AfterCompletionRestartsFromLine(t *testing.T) {
	s := newTestRace()
	setSpeeds(s, 50, 50, 50, 50, 50, 50, 50, 50)
	s.Tick(nil, nil)
	s.Tick(nil, nil)
	if !s.Complete() {
		t.Fatal("Expected race to complete")
	}

	if !s.Start(&fixedSource{values: []float64{0}}) {
		t.Fatal("Start after completion should succeed")
	}
	if len(s.finished) != 0 {
		t.Errorf("Expected finishers cleared, got %d", len(s.finished))
	}
	for _, a := range s.actors {
		if a.X != 0 || a.Finished() {
			t.Errorf("%s: expected fresh actor on start line, got %v", a.Name, a)
		}
	}
}

func TestReset_Idempotent(t *testing.T) {
	s := newTestRace()
	setSpeeds(s, 3, 3, 3)
	for i := 0; i < 10; i++ {
		s.Tick(nil, nil)
	}

	s.Reset()
	once := s.Actors()
	s.Reset()
	twice := s.Actors()

	if s.Racing() {
		t.Error("Reset should stop racing")
	}
	if len(s.finished) != 0 {
		t.Errorf("Expected no finishers after reset, got %d", len(s.finished))
	}
	for i := range once {
		if once[i] != twice[i] {
			t.Errorf("Actor %d differs between resets: %+v vs %+v", i, once[i], twice[i])
		}
		if twice[i].X != 0 || twice[i].Speed != 0 || twice[i].FinishRank != 0 {
			t.Errorf("Actor %d not at start state: %+v", i, twice[i])
		}
	}
}

func TestControls(t *testing.T) {
	s := newTestRace()

	if c := s.Controls(); !c.StartEnabled || !c.ResetEnabled {
		t.Errorf("Idle race: expected both controls enabled, got %+v", c)
	}
	if s.Phase() != PhaseIdle {
		t.Errorf("Expected idle phase, got %v", s.Phase())
	}

	setSpeeds(s, 60, 60, 60, 60, 60, 60, 60, 60)
	if c := s.Controls(); c.StartEnabled || c.ResetEnabled {
		t.Errorf("Racing: expected both controls disabled, got %+v", c)
	}
	if s.Phase() != PhaseRacing {
		t.Errorf("Expected racing phase, got %v", s.Phase())
	}

	s.Tick(nil, nil)
	s.Tick(nil, nil)
	if c := s.Controls(); !c.StartEnabled || !c.ResetEnabled {
		t.Errorf("Complete race: expected both controls enabled, got %+v", c)
	}
	if s.Phase() != PhaseComplete {
		t.Errorf("Expected complete phase, got %v", s.Phase())
	}
}

func TestResize_KeepsLanesAndProgress(t *testing.T) {
	s := newTestRace()
	setSpeeds(s, 10, 100)
	s.Tick(nil, nil) // lane 0 at 10, lane 1 finished at 100

	next := Track{X: 50, Y: 10, Width: 200, Height: 160}
	s.Resize(next)

	if got := s.actors[0].X; got != 70 {
		t.Errorf("Running actor: expected x=70 (10%% of new width), got %v", got)
	}
	if got := s.actors[1].X; got != next.Right() {
		t.Errorf("Finished actor: expected x at new finish %v, got %v", next.Right(), got)
	}
	for i, a := range s.actors {
		if a.Y != next.LaneY(i) {
			t.Errorf("Actor %d: expected y=%v, got %v", i, next.LaneY(i), a.Y)
		}
		if a.X > next.Right() {
			t.Errorf("Actor %d beyond finish after resize: %v", i, a.X)
		}
	}
}

func TestResize_ShrinkNeverExceedsFinish(t *testing.T) {
	s := newTestRace()
	setSpeeds(s, 99)
	s.Tick(nil, nil)

	s.Resize(Track{X: 0, Y: 0, Width: 10, Height: 80})
	if s.actors[0].X > 10 {
		t.Errorf("Expected x within new track, got %v", s.actors[0].X)
	}
}

func TestTrackFor(t *testing.T) {
	tests := []struct {
		name        string
		w, h, ratio float64
		want        Track
	}{
		{"default ratio", 1000, 500, 0.8, Track{X: 100, Y: 50, Width: 800, Height: 400}},
		{"full surface", 640, 480, 1, Track{X: 0, Y: 0, Width: 640, Height: 480}},
		{"invalid ratio falls back", 1000, 500, 0, Track{X: 100, Y: 50, Width: 800, Height: 400}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TrackFor(tt.w, tt.h, tt.ratio); got != tt.want {
				t.Errorf("TrackFor(%v, %v, %v) = %+v, want %+v", tt.w, tt.h, tt.ratio, got, tt.want)
			}
		})
	}
}
