package render

import "github.com/gdamore/tcell/v2"

// Cell is one character cell in a Buffer
type Cell struct {
	Rune rune
	Fg   tcell.Color
	Bg   tcell.Color
}

// Buffer is an off-screen cell grid flushed onto a screen region in one pass
type Buffer struct {
	cells  []Cell
	width  int
	height int
	blank  Cell
}

// NewBuffer creates a cleared buffer
func NewBuffer(width, height int, bg tcell.Color) *Buffer {
	b := &Buffer{blank: Cell{Rune: ' ', Fg: RgbText, Bg: bg}}
	b.Resize(width, height)
	return b
}

// Resize adjusts dimensions, reallocating only if capacity is insufficient
func (b *Buffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Bounds returns the buffer dimensions
func (b *Buffer) Bounds() (int, int) { return b.width, b.height }

// Clear resets all cells to blank using exponential copy
func (b *Buffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = b.blank
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the cell at (x, y), or the blank cell when out of bounds
func (b *Buffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return b.blank
	}
	return b.cells[y*b.width+x]
}

// SetBg paints the background and blanks the glyph
func (b *Buffer) SetBg(x, y int, bg tcell.Color) {
	if !b.inBounds(x, y) {
		return
	}
	c := &b.cells[y*b.width+x]
	c.Rune = ' '
	c.Bg = bg
}

// SetGlyph writes a rune and foreground, keeping the background underneath
func (b *Buffer) SetGlyph(x, y int, r rune, fg tcell.Color) {
	if !b.inBounds(x, y) {
		return
	}
	c := &b.cells[y*b.width+x]
	c.Rune = r
	c.Fg = fg
}

// Flush copies the buffer onto screen at the region origin
func (b *Buffer) Flush(screen tcell.Screen, origin Region) {
	for y := 0; y < b.height && y < origin.H; y++ {
		for x := 0; x < b.width && x < origin.W; x++ {
			c := b.cells[y*b.width+x]
			style := tcell.StyleDefault.Foreground(c.Fg).Background(c.Bg)
			screen.SetContent(origin.X+x, origin.Y+y, c.Rune, nil, style)
		}
	}
}
