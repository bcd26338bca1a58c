package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate         = beep.SampleRate(48000)
	speakerBufferDelay = 100 * time.Millisecond

	// DefaultVolume is the linear master gain
	DefaultVolume = 0.6
)

// SoundManager plays race cues through a single speaker mixer.
// Every method is safe to call before Initialize or after a failed one;
// the race runs silently when no audio device is available.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	muted       bool
	initialized bool
}

// NewSoundManager creates a sound manager with linear master volume in [0,1]
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: clampVolume(volume),
	}
}

func clampVolume(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(speakerBufferDelay)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup drops all pending sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	// beep keeps the speaker open for the process lifetime; an empty mixer is silent
	sm.initialized = false
}

// Ready reports whether cues reach the speaker
func (sm *SoundManager) Ready() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized && !sm.muted
}

// SetMuted mutes or unmutes all cues; muting also drops sounds in flight
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.setMutedLocked(muted)
}

// ToggleMuted flips the mute flag and returns the new state
func (sm *SoundManager) ToggleMuted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.setMutedLocked(!sm.muted)
	return sm.muted
}

// Muted reports the mute flag
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

func (sm *SoundManager) setMutedLocked(muted bool) {
	sm.muted = muted
	if muted && sm.initialized {
		speaker.Lock()
		sm.mixer.Clear()
		speaker.Unlock()
	}
}

// PlayStart rings the start bell
func (sm *SoundManager) PlayStart() {
	sm.play(SoundStart, 0)
}

// PlayFinish plays the chime for an actor finishing at rank
func (sm *SoundManager) PlayFinish(rank int) {
	sm.play(SoundFinish, rank)
}

// PlayComplete plays the fanfare after the last finisher
func (sm *SoundManager) PlayComplete() {
	sm.play(SoundComplete, 0)
}

func (sm *SoundManager) play(sound SoundType, rank int) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}

	s := GetSoundEffect(sound, rank, sampleRate, sm.volume)
	if s == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}
