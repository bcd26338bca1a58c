package race

// Color is a 24-bit RGB value, 0xRRGGBB
type Color uint32

// Palette from the browser version of the race
const (
	ColorTrack   Color = 0x2c3e50
	ColorDivider Color = 0x95a5a6
	ColorMarker  Color = 0xe74c3c
)

// MarkerRadius is the actor marker radius in surface units
const MarkerRadius = 10.0

// DividerDash is the on/off dash pattern for lane dividers
var DividerDash = []float64{5, 5}

// Surface is a 2D drawing target owned by the host
// Coordinates are surface units with the origin at the top-left corner
type Surface interface {
	// Clear erases the whole surface
	Clear()
	// FillRect fills r with c
	FillRect(r Rect, c Color)
	// Line strokes a segment; an empty dash draws it solid
	Line(x1, y1, x2, y2 float64, c Color, dash []float64)
	// FillCircle fills a disc centred on (cx, cy)
	FillCircle(cx, cy, radius float64, c Color)
	// Size reports the current surface dimensions
	Size() (w, h float64)
}

// RankDisplay receives the full ordered leaderboard on every publish
type RankDisplay interface {
	Publish(labels []string)
}

// SpeedSource yields uniform values in [0, 1)
// *rand.Rand from math/rand/v2 satisfies it
type SpeedSource interface {
	Float64() float64
}
