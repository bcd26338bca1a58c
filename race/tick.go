package race

// Finish records one actor crossing the line during a tick
type Finish struct {
	Name  string
	Lane  int
	Rank  int
	Speed float64
	Frame uint64
}

// TickResult describes what changed during a tick
type TickResult struct {
	Finished  []Finish
	Completed bool
}

// Tick runs one frame: draw the current state, move, then publish standings
// Drawing happens before movement, so a frame shows the positions the previous tick produced
func (s *State) Tick(surface Surface, display RankDisplay) TickResult {
	s.Render(surface)
	res := s.advance()
	if display != nil {
		display.Publish(s.Labels())
	}
	return res
}

// Render draws the track and all markers; it never mutates state
func (s *State) Render(surface Surface) {
	if surface == nil {
		return
	}
	surface.Clear()

	t := s.track
	surface.FillRect(t.Bounds(), ColorTrack)
	for i := 0; i < LaneCount-1; i++ {
		y := t.DividerY(i)
		surface.Line(t.Left(), y, t.Right(), y, ColorDivider, DividerDash)
	}

	for _, a := range s.actors {
		surface.FillCircle(a.X, a.Y, MarkerRadius, ColorMarker)
	}
}

// advance moves every running actor by its speed and records arrivals
func (s *State) advance() TickResult {
	var res TickResult
	if !s.racing {
		return res
	}
	s.frame++

	right := s.track.Right()
	for _, a := range s.actors {
		if a.Finished() {
			continue
		}
		a.X += a.Speed
		if a.X < right {
			continue
		}

		a.X = right
		a.FinishRank = len(s.finished) + 1
		s.finished = append(s.finished, a)
		res.Finished = append(res.Finished, Finish{
			Name:  a.Name,
			Lane:  a.Lane,
			Rank:  a.FinishRank,
			Speed: a.Speed,
			Frame: s.frame,
		})
	}

	if s.Complete() {
		s.racing = false
		res.Completed = true
	}
	return res
}
