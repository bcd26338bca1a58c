package history

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/segmentio/ksuid"

	"github.com/lixenwraith/horse-race/race"
)

// Placing is one runner's result
type Placing struct {
	Rank  int     `msgpack:"rank"`
	Name  string  `msgpack:"name"`
	Lane  int     `msgpack:"lane"`
	Speed float64 `msgpack:"speed"`
	Frame uint64  `msgpack:"frame"`
}

// Record is one completed race
type Record struct {
	ID         string    `msgpack:"id"`
	StartedAt  time.Time `msgpack:"started_at"`
	FinishedAt time.Time `msgpack:"finished_at"`
	Frames     uint64    `msgpack:"frames"`
	Placings   []Placing `msgpack:"placings"`
}

// NewRecord builds a record from the arrivals of a race, in arrival order
// The ID is a KSUID stamped with the finish time so keys sort chronologically
func NewRecord(startedAt, finishedAt time.Time, finishes []race.Finish) (Record, error) {
	id, err := ksuid.NewRandomWithTime(finishedAt)
	if err != nil {
		return Record{}, fmt.Errorf("failed to generate record id: %w", err)
	}

	rec := Record{
		ID:         id.String(),
		StartedAt:  startedAt,
		FinishedAt: finishedAt,
		Placings:   make([]Placing, 0, len(finishes)),
	}
	for _, f := range finishes {
		rec.Placings = append(rec.Placings, Placing{
			Rank:  f.Rank,
			Name:  f.Name,
			Lane:  f.Lane,
			Speed: f.Speed,
			Frame: f.Frame,
		})
		rec.Frames = max(rec.Frames, f.Frame)
	}
	sort.Slice(rec.Placings, func(i, j int) bool { return rec.Placings[i].Rank < rec.Placings[j].Rank })
	return rec, nil
}

// Winner is the rank 1 runner, empty if the record holds no placings
func (r Record) Winner() string {
	if len(r.Placings) == 0 {
		return ""
	}
	return r.Placings[0].Name
}

// Duration is wall-clock race time
func (r Record) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}

// String is a one-line summary: time, winner, order
func (r Record) String() string {
	names := make([]string, len(r.Placings))
	for i, p := range r.Placings {
		names[i] = p.Name
	}
	return fmt.Sprintf("%s  %-10s %6.2fs %4d frames  %s",
		r.FinishedAt.Format(time.DateTime), r.Winner(), r.Duration().Seconds(), r.Frames, strings.Join(names, " > "))
}

// Wins counts first places per runner
func Wins(records []Record) map[string]int {
	wins := make(map[string]int)
	for _, r := range records {
		if w := r.Winner(); w != "" {
			wins[w]++
		}
	}
	return wins
}
