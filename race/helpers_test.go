package race

import "fmt"

// fixedSource returns the queued values in order, then repeats the last
type fixedSource struct {
	values []float64
	pos    int
}

func (f *fixedSource) Float64() float64 {
	if len(f.values) == 0 {
		return 0
	}
	v := f.values[f.pos]
	if f.pos < len(f.values)-1 {
		f.pos++
	}
	return v
}

// recordingSurface captures draw calls as strings
type recordingSurface struct {
	w, h  float64
	calls []string
}

func (r *recordingSurface) Clear() { r.calls = append(r.calls, "clear") }

func (r *recordingSurface) FillRect(rect Rect, c Color) {
	r.calls = append(r.calls, fmt.Sprintf("rect %.0f,%.0f %.0fx%.0f #%06x", rect.X, rect.Y, rect.Width, rect.Height, uint32(c)))
}

func (r *recordingSurface) Line(x1, y1, x2, y2 float64, c Color, dash []float64) {
	r.calls = append(r.calls, fmt.Sprintf("line %.0f,%.0f-%.0f,%.0f dash=%d", x1, y1, x2, y2, len(dash)))
}

func (r *recordingSurface) FillCircle(cx, cy, radius float64, c Color) {
	r.calls = append(r.calls, fmt.Sprintf("circle %.1f,%.1f", cx, cy))
}

func (r *recordingSurface) Size() (float64, float64) { return r.w, r.h }

func (r *recordingSurface) count(prefix string) int {
	n := 0
	for _, c := range r.calls {
		if len(c) >= len(prefix) && c[:len(prefix)] == prefix {
			n++
		}
	}
	return n
}

// recordingDisplay keeps the last published list
type recordingDisplay struct {
	publishes int
	labels    []string
}

func (d *recordingDisplay) Publish(labels []string) {
	d.publishes++
	d.labels = append([]string(nil), labels...)
}

// newTestRace builds a race on a 100-unit track starting at x=0
func newTestRace() *State {
	return New(Track{X: 0, Y: 0, Width: 100, Height: 80}, DefaultConfig())
}

// setSpeeds starts the race and overrides speeds with explicit values
func setSpeeds(s *State, speeds ...float64) {
	s.Start(&fixedSource{values: []float64{0}})
	for i, a := range s.actors {
		if i < len(speeds) {
			a.Speed = speeds[i]
		} else {
			a.Speed = 0
		}
	}
}
