package input

import (
	"fmt"
	"strings"
)

// KeyCode is a platform-independent key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyW
	KeyA
	KeyS
	KeyD
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyEscape
	KeyR
	keyCount
)

var keyNames = [keyCount]string{
	KeyUnknown:    "unknown",
	KeyW:          "w",
	KeyA:          "a",
	KeyS:          "s",
	KeyD:          "d",
	KeyArrowUp:    "up",
	KeyArrowDown:  "down",
	KeyArrowLeft:  "left",
	KeyArrowRight: "right",
	KeyEscape:     "escape",
	KeyR:          "r",
}

func (k KeyCode) String() string {
	if k < keyCount {
		return keyNames[k]
	}
	return fmt.Sprintf("key(%d)", uint16(k))
}

// ParseKey maps a key name (as printed by String) back to its code.
func ParseKey(name string) (KeyCode, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k := KeyW; k < keyCount; k++ {
		if keyNames[k] == name {
			return k, true
		}
	}
	return KeyUnknown, false
}

// EventKind identifies an input event.
type EventKind uint8

const (
	EventKeyDown EventKind = iota + 1
	EventKeyUp
	EventMouseMove
	// EventEngage is the user gesture that captures the pointer.
	EventEngage
	// EventRelease reports that pointer capture was lost.
	EventRelease
)

func (k EventKind) String() string {
	switch k {
	case EventKeyDown:
		return "keydown"
	case EventKeyUp:
		return "keyup"
	case EventMouseMove:
		return "mouse"
	case EventEngage:
		return "engage"
	case EventRelease:
		return "release"
	default:
		return fmt.Sprintf("event(%d)", uint8(k))
	}
}

// Event is one queued input command. DX and DY are raw pointer motion in
// screen pixels and are only set for EventMouseMove.
type Event struct {
	Kind   EventKind
	Key    KeyCode
	DX, DY float64
}

func KeyDown(k KeyCode) Event { return Event{Kind: EventKeyDown, Key: k} }
func KeyUp(k KeyCode) Event   { return Event{Kind: EventKeyUp, Key: k} }
func Engage() Event           { return Event{Kind: EventEngage} }
func Release() Event          { return Event{Kind: EventRelease} }

func MouseMove(dx, dy float64) Event {
	return Event{Kind: EventMouseMove, DX: dx, DY: dy}
}

func (e Event) String() string {
	switch e.Kind {
	case EventKeyDown, EventKeyUp:
		return e.Kind.String() + ":" + e.Key.String()
	case EventMouseMove:
		return fmt.Sprintf("mouse:%g,%g", e.DX, e.DY)
	default:
		return e.Kind.String()
	}
}
