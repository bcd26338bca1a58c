package input

// Intent is the semantic action behind a terminal event
type Intent uint8

const (
	IntentNone Intent = iota
	IntentQuit
	IntentStart
	IntentReset
	IntentToggleMute
	IntentResize
)

func (i Intent) String() string {
	switch i {
	case IntentNone:
		return "none"
	case IntentQuit:
		return "quit"
	case IntentStart:
		return "start"
	case IntentReset:
		return "reset"
	case IntentToggleMute:
		return "toggle-mute"
	case IntentResize:
		return "resize"
	default:
		return "unknown"
	}
}
