package engine

import (
	"sync"
	"time"
)

// fpsSmoothing is the weight of the newest sample in the FPS moving average
const fpsSmoothing = 0.1

// Frame is one scheduled tick as seen by the host loop
type Frame struct {
	Number uint64
	Time   time.Time
	Delta  time.Duration
}

// FrameClock schedules per-frame callbacks for the host loop
// It stands in for a display refresh callback: the loop selects on C() and calls Next
// Timestamps handed out by Next/Advance are strictly increasing
type FrameClock struct {
	interval time.Duration
	provider TimeProvider

	mu     sync.Mutex
	ticker *time.Ticker
	last   time.Time
	number uint64
	fps    float64
}

// NewFrameClock creates a stopped clock firing every interval
// A nil provider uses the system clock
func NewFrameClock(interval time.Duration, provider TimeProvider) *FrameClock {
	if provider == nil {
		provider = NewMonotonicTimeProvider()
	}
	return &FrameClock{
		interval: interval,
		provider: provider,
	}
}

// Interval returns the nominal frame interval
func (fc *FrameClock) Interval() time.Duration { return fc.interval }

// Start begins firing; calling Start on a running clock is a no-op
func (fc *FrameClock) Start() {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	if fc.ticker != nil {
		return
	}
	fc.ticker = time.NewTicker(fc.interval)
}

// Stop halts firing; C() then blocks forever
func (fc *FrameClock) Stop() {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	if fc.ticker == nil {
		return
	}
	fc.ticker.Stop()
	fc.ticker = nil
}

// Running reports whether the ticker is active
func (fc *FrameClock) Running() bool {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return fc.ticker != nil
}

// C is the frame signal channel, nil while stopped
func (fc *FrameClock) C() <-chan time.Time {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	if fc.ticker == nil {
		return nil
	}
	return fc.ticker.C
}

// Next stamps a new frame with the provider's current time
func (fc *FrameClock) Next() Frame {
	return fc.Advance(fc.provider.Now())
}

// Advance stamps a new frame at now, nudging it forward when the source stalls or steps back
func (fc *FrameClock) Advance(now time.Time) Frame {
	fc.mu.Lock()
	defer fc.mu.Unlock()

	var delta time.Duration
	if fc.number > 0 {
		if !now.After(fc.last) {
			now = fc.last.Add(time.Nanosecond)
		}
		delta = now.Sub(fc.last)

		sample := float64(time.Second) / float64(delta)
		if fc.fps == 0 {
			fc.fps = sample
		} else {
			fc.fps += fpsSmoothing * (sample - fc.fps)
		}
	}

	fc.number++
	fc.last = now
	return Frame{Number: fc.number, Time: now, Delta: delta}
}

// FPS is the smoothed frame rate, 0 before the second frame
func (fc *FrameClock) FPS() float64 {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return fc.fps
}

// Frames is the count of stamped frames
func (fc *FrameClock) Frames() uint64 {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return fc.number
}
