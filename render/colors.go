package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/horse-race/race"
)

// Screen palette
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbPanel      = tcell.NewRGBColor(36, 40, 59)    // Side panel
	RgbText       = tcell.NewRGBColor(192, 202, 245) // Primary text
	RgbTextDim    = tcell.NewRGBColor(86, 95, 137)   // Hints, disabled buttons
	RgbTitle      = tcell.NewRGBColor(122, 162, 247) // Panel title

	RgbButtonBg       = tcell.NewRGBColor(46, 204, 113) // Enabled button
	RgbButtonText     = tcell.NewRGBColor(0, 0, 0)
	RgbButtonDisabled = tcell.NewRGBColor(52, 59, 88)

	RgbStatusBar = tcell.NewRGBColor(22, 22, 30)
	RgbRacing    = tcell.NewRGBColor(255, 158, 100) // Phase tag while racing
	RgbComplete  = tcell.NewRGBColor(158, 206, 106) // Phase tag after finish

	// Podium colors for the top three rows of the leaderboard
	RgbGold   = tcell.NewRGBColor(255, 215, 0)
	RgbSilver = tcell.NewRGBColor(192, 192, 192)
	RgbBronze = tcell.NewRGBColor(205, 127, 50)
)

// ToTcell converts a race color to a terminal color
func ToTcell(c race.Color) tcell.Color {
	return tcell.NewHexColor(int32(c))
}

// podiumColor returns the highlight for a 1-based leaderboard row
func podiumColor(row int) tcell.Color {
	switch row {
	case 1:
		return RgbGold
	case 2:
		return RgbSilver
	case 3:
		return RgbBronze
	default:
		return RgbText
	}
}
