package platform

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"blockfall/pkg/engine/input"
)

// keyTable lists every physical key the adapter watches and the raw
// code it reports. The semantic meaning of each code lives in the
// bindings table in pkg/engine/input; anything not listed here is
// never even polled.
var keyTable = []struct {
	key  ebiten.Key
	code string
}{
	{ebiten.KeyEscape, "escape"},

	{ebiten.KeyArrowLeft, "arrow_left"},
	{ebiten.KeyA, "a"},
	{ebiten.KeyArrowRight, "arrow_right"},
	{ebiten.KeyD, "d"},
	{ebiten.KeyArrowDown, "arrow_down"},
	{ebiten.KeyS, "s"},
	{ebiten.KeyArrowUp, "arrow_up"},
	{ebiten.KeyW, "w"},

	{ebiten.KeySpace, "space"},
	{ebiten.KeyF1, "f1"},
	{ebiten.KeyF2, "f2"},
	{ebiten.KeyF3, "f3"},
	{ebiten.KeyF5, "f5"},
}

// pollTransitions collects this tick's key edges from the window
// driver. Both edges of the same tick are reported, press first.
func pollTransitions(now time.Time) []input.RawKey {
	var evs []input.RawKey
	for _, e := range keyTable {
		if inpututil.IsKeyJustPressed(e.key) {
			evs = append(evs, input.RawKey{
				Device:    input.DeviceKeyboard,
				Code:      e.code,
				Down:      true,
				Timestamp: now,
			})
		}
		if inpututil.IsKeyJustReleased(e.key) {
			evs = append(evs, input.RawKey{
				Device:    input.DeviceKeyboard,
				Code:      e.code,
				Down:      false,
				Timestamp: now,
			})
		}
	}
	return evs
}

// pushRaw queues a raw transition for the loop. Non-blocking: if the
// queue is full the transition is dropped rather than stalling the
// window driver.
func (p *Platform) pushRaw(ev input.RawKey) {
	select {
	case p.inputCh <- ev:
	default:
	}
}

// drainInput empties the raw queue into the event mapper. It never
// blocks waiting for new input, and every drained transition is
// forwarded to the engine immediately and exactly once.
func (p *Platform) drainInput(eng Engine) {
	for {
		select {
		case ev := <-p.inputCh:
			input.Dispatch(ev, eng)
		default:
			return
		}
	}
}
