package input

// Binding pairs a semantic event with the phases it supports. Holdable
// actions (left, right, down, rotate under auto-repeat) emit PhaseEnd on
// key release; everything else is edge-triggered on the press only.
type Binding struct {
	Event    Event
	Holdable bool
}

// bindings maps raw codes to events. Multiple codes may point to the same
// event (arrows and WASD). The table is fixed: control remapping is out
// of scope for this game.
var bindings = map[string]Binding{
	// Quit (escape key or window close)
	"escape":       {Event: EventQuit},
	"window_close": {Event: EventQuit},

	// Movement (held)
	"arrow_left":  {Event: EventMoveLeft, Holdable: true},
	"a":           {Event: EventMoveLeft, Holdable: true},
	"arrow_right": {Event: EventMoveRight, Holdable: true},
	"d":           {Event: EventMoveRight, Holdable: true},
	"arrow_down":  {Event: EventMoveDown, Holdable: true},
	"s":           {Event: EventMoveDown, Holdable: true},

	// Rotation (held: auto-rotation repeats while the key is down)
	"arrow_up": {Event: EventRotateCW, Holdable: true},
	"w":        {Event: EventRotateCW, Holdable: true},

	// Instantaneous actions
	"space": {Event: EventDrop},
	"f5":    {Event: EventRestart},
	"f1":    {Event: EventPause},
	"f2":    {Event: EventShowNext},
	"f3":    {Event: EventShowShadow},
}

// Lookup returns the binding for a raw code, if any.
func Lookup(code string) (Binding, bool) {
	b, ok := bindings[code]
	return b, ok
}

// Dispatch maps one raw key transition to at most one sink call. A press
// of a bound key forwards PhaseStart; a release forwards PhaseEnd only
// for holdable bindings. Unbound codes are ignored. Every transition is
// forwarded immediately and exactly once; nothing is buffered here.
func Dispatch(raw RawKey, sink Sink) {
	b, ok := bindings[raw.Code]
	if !ok {
		return
	}
	if raw.Down {
		sink.OnEventStart(b.Event)
		return
	}
	if b.Holdable {
		sink.OnEventEnd(b.Event)
	}
}
