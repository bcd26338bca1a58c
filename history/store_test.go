package history

import (
	"errors"
	"testing"
	"time"

	"github.com/lixenwraith/horse-race/race"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("")
	if err != nil {
		t.Fatalf("Open in-memory store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testRecord(t *testing.T, finishedAt time.Time, winner string) Record {
	t.Helper()
	finishes := []race.Finish{
		{Name: "Second", Lane: 1, Rank: 2, Speed: 2.5, Frame: 140},
		{Name: winner, Lane: 0, Rank: 1, Speed: 3.9, Frame: 120},
	}
	rec, err := NewRecord(finishedAt.Add(-3*time.Second), finishedAt, finishes)
	if err != nil {
		t.Fatalf("NewRecord: %v", err)
	}
	return rec
}

func TestNewRecord(t *testing.T) {
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	rec := testRecord(t, base, "Thunder")

	if rec.ID == "" {
		t.Fatal("Expected generated id")
	}
	if rec.Winner() != "Thunder" {
		t.Errorf("Expected winner Thunder, got %q", rec.Winner())
	}
	if rec.Frames != 140 {
		t.Errorf("Expected frames from last finisher (140), got %d", rec.Frames)
	}
	if rec.Duration() != 3*time.Second {
		t.Errorf("Expected 3s duration, got %v", rec.Duration())
	}
	if rec.Placings[1].Name != "Second" {
		t.Errorf("Expected placings sorted by rank, got %+v", rec.Placings)
	}
}

func TestStore_SaveGet(t *testing.T) {
	s := openTestStore(t)
	rec := testRecord(t, time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC), "Storm")

	if err := s.Save(rec); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := s.Get(rec.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.ID != rec.ID || got.Winner() != "Storm" || len(got.Placings) != 2 {
		t.Errorf("Round trip mismatch: %+v", got)
	}
	if !got.FinishedAt.Equal(rec.FinishedAt) {
		t.Errorf("Expected finish time %v, got %v", rec.FinishedAt, got.FinishedAt)
	}
}

func TestStore_GetMissing(t *testing.T) {
	s := openTestStore(t)
	if _, err := s.Get("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestStore_SaveRequiresID(t *testing.T) {
	s := openTestStore(t)
	if err := s.Save(Record{}); err == nil {
		t.Error("Expected error for record without id")
	}
}

func TestStore_RecentNewestFirst(t *testing.T) {
	s := openTestStore(t)
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	winners := []string{"Thunder", "Lightning", "Storm", "Arrow"}
	for i, w := range winners {
		if err := s.Save(testRecord(t, base.Add(time.Duration(i)*time.Minute), w)); err != nil {
			t.Fatalf("Save %d: %v", i, err)
		}
	}

	recent, err := s.Recent(2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(recent))
	}
	if recent[0].Winner() != "Arrow" || recent[1].Winner() != "Storm" {
		t.Errorf("Expected newest first, got %s, %s", recent[0].Winner(), recent[1].Winner())
	}

	all, err := s.Recent(0)
	if err != nil {
		t.Fatalf("Recent(0): %v", err)
	}
	if len(all) != len(winners) {
		t.Errorf("Expected %d records, got %d", len(winners), len(all))
	}
}

func TestStore_Prune(t *testing.T) {
	s := openTestStore(t)
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		if err := s.Save(testRecord(t, base.Add(time.Duration(i)*time.Hour), "Dash")); err != nil {
			t.Fatal(err)
		}
	}

	removed, err := s.Prune(2)
	if err != nil {
		t.Fatalf("Prune: %v", err)
	}
	if removed != 3 {
		t.Errorf("Expected 3 removed, got %d", removed)
	}
	count, err := s.Count()
	if err != nil {
		t.Fatal(err)
	}
	if count != 2 {
		t.Errorf("Expected 2 remaining, got %d", count)
	}

	recent, _ := s.Recent(0)
	if len(recent) != 2 || !recent[0].FinishedAt.Equal(base.Add(4*time.Hour)) {
		t.Errorf("Expected newest records kept, got %+v", recent)
	}

	removed, err = s.Prune(10)
	if err != nil || removed != 0 {
		t.Errorf("Prune above count: removed=%d err=%v", removed, err)
	}
}

func TestWins(t *testing.T) {
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	records := []Record{
		testRecord(t, base, "Bolt"),
		testRecord(t, base, "Bolt"),
		testRecord(t, base, "Flash"),
		{},
	}
	wins := Wins(records)
	if wins["Bolt"] != 2 || wins["Flash"] != 1 || len(wins) != 2 {
		t.Errorf("Unexpected wins: %v", wins)
	}
}
