package render

// MinCanvasWidth is the narrowest canvas that keeps a side panel; below it the panel is dropped
const MinCanvasWidth = 20

// Region is a rectangle of terminal cells
type Region struct {
	X, Y, W, H int
}

// Contains reports whether cell (x, y) lies inside the region
func (r Region) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Empty reports a zero-area region
func (r Region) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Layout splits the screen into race canvas, leaderboard panel and control bar
type Layout struct {
	Canvas Region
	Panel  Region
	Bar    Region
}

// NewLayout places the bar on the last row and the panel on the right edge
func NewLayout(width, height, panelWidth int) Layout {
	width = max(width, 0)
	height = max(height, 0)

	var l Layout
	if height == 0 {
		return l
	}
	l.Bar = Region{X: 0, Y: height - 1, W: width, H: 1}

	body := height - 1
	if panelWidth > 0 && width-panelWidth >= MinCanvasWidth {
		l.Panel = Region{X: width - panelWidth, Y: 0, W: panelWidth, H: body}
		l.Canvas = Region{X: 0, Y: 0, W: width - panelWidth, H: body}
	} else {
		l.Canvas = Region{X: 0, Y: 0, W: width, H: body}
	}
	return l
}
