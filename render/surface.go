package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/horse-race/race"
)

// Glyphs used by the terminal surface
const (
	GlyphHorizontal = '─'
	GlyphVertical   = '│'
	GlyphMarker     = '█'
	GlyphDot        = '●'
)

// TerminalSurface is a race.Surface drawn into terminal cells
// Each cell spans cellW x cellH surface units, so geometry keeps the pixel scale of a canvas
// and a cell is painted when its centre falls inside the shape
type TerminalSurface struct {
	buf    *Buffer
	region Region
	cellW  float64
	cellH  float64
}

// NewTerminalSurface creates a surface covering region
func NewTerminalSurface(region Region, cellW, cellH int) *TerminalSurface {
	s := &TerminalSurface{
		buf:   NewBuffer(0, 0, RgbBackground),
		cellW: float64(max(cellW, 1)),
		cellH: float64(max(cellH, 1)),
	}
	s.SetRegion(region)
	return s
}

// SetRegion moves and resizes the surface, clearing it
func (s *TerminalSurface) SetRegion(r Region) {
	s.region = r
	s.buf.Resize(r.W, r.H)
}

// Region returns the screen cells covered by the surface
func (s *TerminalSurface) Region() Region { return s.region }

// Buffer exposes the backing cells
func (s *TerminalSurface) Buffer() *Buffer { return s.buf }

// Flush copies the drawn frame onto the screen
func (s *TerminalSurface) Flush(screen tcell.Screen) {
	s.buf.Flush(screen, s.region)
}

// Size reports the surface in surface units
func (s *TerminalSurface) Size() (float64, float64) {
	return float64(s.region.W) * s.cellW, float64(s.region.H) * s.cellH
}

// Clear erases the frame
func (s *TerminalSurface) Clear() { s.buf.Clear() }

func (s *TerminalSurface) col(px float64) int { return int(math.Floor(px / s.cellW)) }
func (s *TerminalSurface) row(py float64) int { return int(math.Floor(py / s.cellH)) }

func (s *TerminalSurface) centerX(col int) float64 { return (float64(col) + 0.5) * s.cellW }
func (s *TerminalSurface) centerY(row int) float64 { return (float64(row) + 0.5) * s.cellH }

// FillRect paints backgrounds of all cells whose centre is inside r
func (s *TerminalSurface) FillRect(r race.Rect, c race.Color) {
	bg := ToTcell(c)
	for row := s.row(r.Y); row <= s.row(r.Y+r.Height); row++ {
		cy := s.centerY(row)
		if cy < r.Y || cy >= r.Y+r.Height {
			continue
		}
		for col := s.col(r.X); col <= s.col(r.X+r.Width); col++ {
			cx := s.centerX(col)
			if cx < r.X || cx >= r.X+r.Width {
				continue
			}
			s.buf.SetBg(col, row, bg)
		}
	}
}

// Line strokes along the major axis one cell at a time, sampling the dash pattern at each cell centre
func (s *TerminalSurface) Line(x1, y1, x2, y2 float64, c race.Color, dash []float64) {
	fg := ToTcell(c)
	dx, dy := x2-x1, y2-y1
	length := math.Hypot(dx, dy)
	if length == 0 {
		s.buf.SetGlyph(s.col(x1), s.row(y1), GlyphDot, fg)
		return
	}

	if math.Abs(dx)/s.cellW >= math.Abs(dy)/s.cellH {
		lo, hi := min(x1, x2), max(x1, x2)
		for col := s.col(lo); col <= s.col(hi); col++ {
			cx := math.Min(math.Max(s.centerX(col), lo), hi)
			t := (cx - x1) / dx
			if dashOn(t*length, dash) {
				s.buf.SetGlyph(col, s.row(y1+t*dy), GlyphHorizontal, fg)
			}
		}
		return
	}

	lo, hi := min(y1, y2), max(y1, y2)
	for row := s.row(lo); row <= s.row(hi); row++ {
		cy := math.Min(math.Max(s.centerY(row), lo), hi)
		t := (cy - y1) / dy
		if dashOn(t*length, dash) {
			s.buf.SetGlyph(s.col(x1+t*dx), row, GlyphVertical, fg)
		}
	}
}

// FillCircle paints every cell whose centre lies within radius; a disc smaller than a cell
// still marks the cell holding its centre
func (s *TerminalSurface) FillCircle(cx, cy, radius float64, c race.Color) {
	fg := ToTcell(c)
	painted := false
	r2 := radius * radius
	for row := s.row(cy - radius); row <= s.row(cy+radius); row++ {
		ddy := s.centerY(row) - cy
		for col := s.col(cx - radius); col <= s.col(cx+radius); col++ {
			ddx := s.centerX(col) - cx
			if ddx*ddx+ddy*ddy <= r2 {
				s.buf.SetGlyph(col, row, GlyphMarker, fg)
				painted = true
			}
		}
	}
	if !painted {
		s.buf.SetGlyph(s.col(cx), s.row(cy), GlyphDot, fg)
	}
}

// dashOn reports whether distance d along a stroke falls on an "on" segment of dash
func dashOn(d float64, dash []float64) bool {
	var period float64
	for _, seg := range dash {
		period += seg
	}
	if len(dash) == 0 || period <= 0 {
		return true
	}

	d = math.Mod(d, period)
	if d < 0 {
		d += period
	}
	for i, seg := range dash {
		if d < seg {
			return i%2 == 0
		}
		d -= seg
	}
	return false
}
