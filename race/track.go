package race

// LaneCount is the number of lanes on the track, one actor per lane
const LaneCount = 8

// DefaultTrackRatio is the share of the surface the track occupies on each axis
const DefaultTrackRatio = 0.8

// Rect is an axis-aligned rectangle in surface units
type Rect struct {
	X, Y, Width, Height float64
}

// Track is the racing area inside the drawing surface
type Track Rect

// TrackFor returns a track centred on a w x h surface, scaled by ratio on both axes
func TrackFor(w, h, ratio float64) Track {
	if ratio <= 0 || ratio > 1 {
		ratio = DefaultTrackRatio
	}
	tw := w * ratio
	th := h * ratio
	return Track{
		X:      (w - tw) / 2,
		Y:      (h - th) / 2,
		Width:  tw,
		Height: th,
	}
}

// Left is the start line
func (t Track) Left() float64 { return t.X }

// Right is the finish line
func (t Track) Right() float64 { return t.X + t.Width }

// LaneHeight is the vertical size of a single lane
func (t Track) LaneHeight() float64 { return t.Height / LaneCount }

// LaneY returns the vertical centre of lane i (0-based)
func (t Track) LaneY(i int) float64 {
	return t.Y + (float64(i)+0.5)*t.LaneHeight()
}

// DividerY returns the y of the divider below lane i (0-based), i in [0, LaneCount-2]
func (t Track) DividerY(i int) float64 {
	return t.Y + float64(i+1)*t.LaneHeight()
}

// Bounds returns the track as a Rect for drawing
func (t Track) Bounds() Rect { return Rect(t) }

// progress maps x to [0,1] along the track
func (t Track) progress(x float64) float64 {
	if t.Width <= 0 {
		return 0
	}
	p := (x - t.X) / t.Width
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	}
	return p
}
