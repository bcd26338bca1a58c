package render

import (
	"github.com/gdamore/tcell/v2"
)

// LeaderboardTitle heads the standings panel
const LeaderboardTitle = "Positions"

// Leaderboard is a race.RankDisplay drawn in a side panel
// Each Publish replaces the list and redraws the panel
type Leaderboard struct {
	screen tcell.Screen
	region Region
	labels []string
}

// NewLeaderboard creates a panel on screen at region
func NewLeaderboard(screen tcell.Screen, region Region) *Leaderboard {
	return &Leaderboard{screen: screen, region: region}
}

// SetRegion moves the panel; the next Publish or Draw uses it
func (l *Leaderboard) SetRegion(r Region) { l.region = r }

// Labels returns the last published list
func (l *Leaderboard) Labels() []string { return l.labels }

// Publish replaces the displayed list
func (l *Leaderboard) Publish(labels []string) {
	l.labels = append(l.labels[:0], labels...)
	l.Draw()
}

// Draw renders title and rows; rows beyond the panel height are dropped
func (l *Leaderboard) Draw() {
	if l.region.Empty() {
		return
	}
	base := tcell.StyleDefault.Background(RgbPanel)
	fillRegion(l.screen, l.region, base)

	x := l.region.X + 2
	w := l.region.W - 3
	y := l.region.Y + 1
	bottom := l.region.Y + l.region.H

	if y < bottom {
		drawText(l.screen, x, y, LeaderboardTitle, base.Foreground(RgbTitle).Bold(true), w)
	}
	y += 2

	for i, label := range l.labels {
		if y >= bottom {
			break
		}
		drawText(l.screen, x, y, label, base.Foreground(podiumColor(i+1)), w)
		y++
	}
}
