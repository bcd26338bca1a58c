package race

import "fmt"

// DefaultNames are the eight runners, in lane order
var DefaultNames = [LaneCount]string{
	"Thunder", "Lightning", "Storm", "Arrow",
	"Dash", "Flash", "Blitz", "Bolt",
}

// Actor is one horse
// FinishRank is 0 until the actor crosses the finish line, then its 1-based arrival order
type Actor struct {
	Name       string
	X          float64
	Y          float64
	Lane       int
	Speed      float64
	FinishRank int
}

// Finished reports whether the actor has a finish rank
func (a *Actor) Finished() bool { return a.FinishRank != 0 }

func (a *Actor) String() string {
	if a.Finished() {
		return fmt.Sprintf("%s(lane %d, rank %d)", a.Name, a.Lane, a.FinishRank)
	}
	return fmt.Sprintf("%s(lane %d, x %.1f)", a.Name, a.Lane, a.X)
}
