package engine

import (
	"testing"
	"time"
)

func TestMonotonicTimeProvider(t *testing.T) {
	provider := NewMonotonicTimeProvider()

	t1 := provider.Now()
	time.Sleep(5 * time.Millisecond)
	t2 := provider.Now()

	if !t2.After(t1) {
		t.Errorf("Expected t2 to be after t1, but got t1=%v, t2=%v", t1, t2)
	}
}

func TestMockTimeProvider(t *testing.T) {
	startTime := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(startTime)

	if now := mock.Now(); !now.Equal(startTime) {
		t.Errorf("Expected initial time %v, got %v", startTime, now)
	}
	if now := mock.Now(); !now.Equal(startTime) {
		t.Errorf("Expected frozen clock without step, got %v", now)
	}

	mock.Advance(time.Hour)
	if now := mock.Now(); !now.Equal(startTime.Add(time.Hour)) {
		t.Errorf("Expected %v after Advance, got %v", startTime.Add(time.Hour), now)
	}

	mock.SetTime(startTime)
	mock.SetStep(16 * time.Millisecond)
	first := mock.Now()
	second := mock.Now()
	if !first.Equal(startTime) || second.Sub(first) != 16*time.Millisecond {
		t.Errorf("Expected auto step of 16ms, got %v then %v", first, second)
	}
}
