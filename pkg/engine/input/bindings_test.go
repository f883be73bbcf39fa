package input

import (
	"fmt"
	"testing"
)

// sinkRecorder records delivered events in order.
type sinkRecorder struct {
	calls []string
}

func (s *sinkRecorder) OnEventStart(ev Event) {
	s.calls = append(s.calls, fmt.Sprintf("start:%s", EventName(ev)))
}

func (s *sinkRecorder) OnEventEnd(ev Event) {
	s.calls = append(s.calls, fmt.Sprintf("end:%s", EventName(ev)))
}

func press(code string) RawKey {
	return RawKey{Device: DeviceKeyboard, Code: code, Down: true}
}

func release(code string) RawKey {
	return RawKey{Device: DeviceKeyboard, Code: code, Down: false}
}

func TestDispatchHeldKeyPressAndRelease(t *testing.T) {
	sink := &sinkRecorder{}
	Dispatch(press("arrow_left"), sink)
	Dispatch(release("arrow_left"), sink)

	want := []string{"start:Move Left", "end:Move Left"}
	if len(sink.calls) != len(want) {
		t.Fatalf("got %d calls %v, want %v", len(sink.calls), sink.calls, want)
	}
	for i := range want {
		if sink.calls[i] != want[i] {
			t.Errorf("call %d = %q, want %q", i, sink.calls[i], want[i])
		}
	}
}

func TestDispatchInstantaneousKeyHasNoEnd(t *testing.T) {
	sink := &sinkRecorder{}
	Dispatch(press("space"), sink)
	Dispatch(release("space"), sink)

	if len(sink.calls) != 1 {
		t.Fatalf("got %d calls %v, want 1", len(sink.calls), sink.calls)
	}
	if sink.calls[0] != "start:Drop" {
		t.Errorf("call 0 = %q, want %q", sink.calls[0], "start:Drop")
	}
}

func TestDispatchUnmappedKeyIgnored(t *testing.T) {
	sink := &sinkRecorder{}
	Dispatch(press("x"), sink)
	Dispatch(release("x"), sink)

	if len(sink.calls) != 0 {
		t.Errorf("got %d calls %v, want none", len(sink.calls), sink.calls)
	}
}

func TestDispatchWindowCloseIsQuit(t *testing.T) {
	sink := &sinkRecorder{}
	Dispatch(RawKey{Device: DeviceWindow, Code: "window_close", Down: true}, sink)

	if len(sink.calls) != 1 || sink.calls[0] != "start:Quit" {
		t.Errorf("got %v, want [start:Quit]", sink.calls)
	}
}

func TestDispatchEachMappedKeyStartsOnce(t *testing.T) {
	cases := map[string]Event{
		"escape":      EventQuit,
		"arrow_left":  EventMoveLeft,
		"a":           EventMoveLeft,
		"arrow_right": EventMoveRight,
		"d":           EventMoveRight,
		"arrow_down":  EventMoveDown,
		"s":           EventMoveDown,
		"arrow_up":    EventRotateCW,
		"w":           EventRotateCW,
		"space":       EventDrop,
		"f1":          EventPause,
		"f2":          EventShowNext,
		"f3":          EventShowShadow,
		"f5":          EventRestart,
	}
	for code, want := range cases {
		sink := &sinkRecorder{}
		Dispatch(press(code), sink)
		wantCall := "start:" + EventName(want)
		if len(sink.calls) != 1 || sink.calls[0] != wantCall {
			t.Errorf("press(%q): got %v, want [%s]", code, sink.calls, wantCall)
		}
	}
}

func TestLookupHoldablePhases(t *testing.T) {
	holdable := []string{"arrow_left", "arrow_right", "arrow_down", "arrow_up", "a", "d", "s", "w"}
	for _, code := range holdable {
		b, ok := Lookup(code)
		if !ok || !b.Holdable {
			t.Errorf("Lookup(%q) = %+v, %v; want holdable binding", code, b, ok)
		}
	}
	oneShot := []string{"escape", "space", "f1", "f2", "f3", "f5", "window_close"}
	for _, code := range oneShot {
		b, ok := Lookup(code)
		if !ok || b.Holdable {
			t.Errorf("Lookup(%q) = %+v, %v; want non-holdable binding", code, b, ok)
		}
	}
}
