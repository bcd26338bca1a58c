package input

import "github.com/gdamore/tcell/v2"

// HitTester maps a screen cell to a clickable intent
type HitTester interface {
	HitTest(x, y int) Intent
}

// Router turns terminal events into intents
type Router struct {
	keys *KeyTable
	hit  HitTester

	// Button1 state from the previous mouse event; clicks fire on press only
	buttonDown bool
}

// NewRouter creates a router; a nil keys table uses the defaults and a nil hit tester ignores the mouse
func NewRouter(keys *KeyTable, hit HitTester) *Router {
	if keys == nil {
		keys = DefaultKeyTable()
	}
	return &Router{keys: keys, hit: hit}
}

// Resolve classifies ev
func (r *Router) Resolve(ev tcell.Event) Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return r.keys.Lookup(ev)
	case *tcell.EventResize:
		return IntentResize
	case *tcell.EventMouse:
		down := ev.Buttons()&tcell.Button1 != 0
		pressed := down && !r.buttonDown
		r.buttonDown = down
		if !pressed || r.hit == nil {
			return IntentNone
		}
		x, y := ev.Position()
		return r.hit.HitTest(x, y)
	}
	return IntentNone
}
