package render

import "github.com/gdamore/tcell/v2"

// drawText writes s at (x, y), clipped to maxW cells, and returns the cells used
func drawText(screen tcell.Screen, x, y int, s string, style tcell.Style, maxW int) int {
	n := 0
	for _, r := range s {
		if n >= maxW {
			break
		}
		screen.SetContent(x+n, y, r, nil, style)
		n++
	}
	return n
}

// fillRegion paints every cell of r with a blank in style
func fillRegion(screen tcell.Screen, r Region, style tcell.Style) {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			screen.SetContent(x, y, ' ', nil, style)
		}
	}
}
