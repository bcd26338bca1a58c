package race

import (
	"cmp"
	"fmt"
	"slices"
)

// Standings orders all actors for the leaderboard
// Finished actors come first by finish rank; running actors follow by distance covered,
// with equal positions broken by lane index
func (s *State) Standings() []Actor {
	out := s.Actors()
	slices.SortStableFunc(out, compareStanding)
	return out
}

func compareStanding(a, b Actor) int {
	switch {
	case a.Finished() && b.Finished():
		return cmp.Compare(a.FinishRank, b.FinishRank)
	case a.Finished():
		return -1
	case b.Finished():
		return 1
	}
	if c := cmp.Compare(b.X, a.X); c != 0 {
		return c
	}
	return cmp.Compare(a.Lane, b.Lane)
}

// Labels renders standings as "<rank>. <name>"
// Finished actors show their stored rank, running actors their current place
func (s *State) Labels() []string {
	standings := s.Standings()
	labels := make([]string, len(standings))
	for i, a := range standings {
		place := i + 1
		if a.Finished() {
			place = a.FinishRank
		}
		labels[i] = fmt.Sprintf("%d. %s", place, a.Name)
	}
	return labels
}
