// Package input defines the semantic event vocabulary shared between the
// platform adapter and the rules engine, and the fixed binding table that
// maps raw key transitions onto it.
package input

import "time"

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceWindow // window-manager signals (close button)
)

// Event is a high-level player intent delivered to the engine.
type Event int

const (
	EventNone Event = iota

	// Movement / rotation
	EventMoveLeft
	EventMoveRight
	EventMoveDown
	EventRotateCW
	EventDrop

	// Meta
	EventQuit
	EventPause
	EventRestart
	EventShowNext
	EventShowShadow
)

// Phase distinguishes the press and release edges of an event.
// Instantaneous events (drop, pause, restart) only ever carry PhaseStart.
type Phase int

const (
	PhaseStart Phase = iota
	PhaseEnd
)

// RawKey is a single key transition drained from the platform queue.
// Code is a device-specific identifier (e.g. "arrow_left", "space").
type RawKey struct {
	Device    Device
	Code      string
	Down      bool
	Timestamp time.Time
}

// Sink receives mapped events. The engine implements this; tests use fakes.
type Sink interface {
	OnEventStart(Event)
	OnEventEnd(Event)
}

// EventName returns a human-friendly name for an event.
func EventName(ev Event) string {
	switch ev {
	case EventMoveLeft:
		return "Move Left"
	case EventMoveRight:
		return "Move Right"
	case EventMoveDown:
		return "Move Down"
	case EventRotateCW:
		return "Rotate"
	case EventDrop:
		return "Drop"
	case EventQuit:
		return "Quit"
	case EventPause:
		return "Pause"
	case EventRestart:
		return "Restart"
	case EventShowNext:
		return "Toggle Preview"
	case EventShowShadow:
		return "Toggle Shadow"
	default:
		return "None"
	}
}
