package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/horse-race/input"
	"github.com/lixenwraith/horse-race/race"
)

const (
	labelStart = "[ Start ]"
	labelReset = "[ Reset ]"
	keyHints   = "s start  r reset  m mute  q quit"
)

// button is a clickable span on the control bar
type button struct {
	label   string
	intent  input.Intent
	enabled bool
	x, w    int
}

// ControlBar draws the start/reset buttons and status line and maps clicks to intents
type ControlBar struct {
	screen  tcell.Screen
	region  Region
	buttons [2]button
}

// BarStatus is the per-frame information shown on the bar
type BarStatus struct {
	Controls race.Controls
	Phase    race.Phase
	FPS      float64
	Muted    bool
}

// NewControlBar creates a bar on screen at region
func NewControlBar(screen tcell.Screen, region Region) *ControlBar {
	cb := &ControlBar{
		screen: screen,
		region: region,
		buttons: [2]button{
			{label: labelStart, intent: input.IntentStart},
			{label: labelReset, intent: input.IntentReset},
		},
	}
	cb.layoutButtons()
	return cb
}

// SetRegion moves the bar
func (cb *ControlBar) SetRegion(r Region) {
	cb.region = r
	cb.layoutButtons()
}

func (cb *ControlBar) layoutButtons() {
	x := cb.region.X + 1
	for i := range cb.buttons {
		cb.buttons[i].x = x
		cb.buttons[i].w = len(cb.buttons[i].label)
		x += cb.buttons[i].w + 1
	}
}

// Draw renders the bar for the given status and records button enablement for hit testing
func (cb *ControlBar) Draw(st BarStatus) {
	if cb.region.Empty() {
		return
	}
	cb.buttons[0].enabled = st.Controls.StartEnabled
	cb.buttons[1].enabled = st.Controls.ResetEnabled

	base := tcell.StyleDefault.Background(RgbStatusBar).Foreground(RgbText)
	fillRegion(cb.screen, cb.region, base)

	right := cb.region.X + cb.region.W
	y := cb.region.Y
	x := cb.region.X + 1
	for _, b := range cb.buttons {
		style := base.Background(RgbButtonDisabled).Foreground(RgbTextDim)
		if b.enabled {
			style = base.Background(RgbButtonBg).Foreground(RgbButtonText).Bold(true)
		}
		x += drawText(cb.screen, b.x, y, b.label, style, right-b.x) + 1
	}

	phase := " " + st.Phase.String() + " "
	phaseStyle := base.Foreground(RgbTextDim)
	switch st.Phase {
	case race.PhaseRacing:
		phaseStyle = base.Foreground(RgbRacing).Bold(true)
	case race.PhaseComplete:
		phaseStyle = base.Foreground(RgbComplete).Bold(true)
	}
	x += drawText(cb.screen, x+1, y, phase, phaseStyle, max(right-x-1, 0)) + 2

	tail := fmt.Sprintf("%3.0f fps", st.FPS)
	if st.Muted {
		tail = "muted  " + tail
	}
	tailX := right - len(tail) - 1
	if x+len(keyHints) < tailX {
		drawText(cb.screen, x, y, keyHints, base.Foreground(RgbTextDim), tailX-x)
	}
	if tailX > x {
		drawText(cb.screen, tailX, y, tail, base.Foreground(RgbTextDim), len(tail))
	}
}

// HitTest maps a click on an enabled button to its intent
func (cb *ControlBar) HitTest(x, y int) input.Intent {
	if y != cb.region.Y {
		return input.IntentNone
	}
	for _, b := range cb.buttons {
		if b.enabled && x >= b.x && x < b.x+b.w {
			return b.intent
		}
	}
	return input.IntentNone
}
