package hal

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"lumen/input"
)

// ScriptEvent is an input event injected before step Tick (0-based).
type ScriptEvent struct {
	Tick  uint64
	Event input.Event
}

// ParseScript parses whitespace-separated entries of the form
//
//	TICK:engage
//	TICK:release
//	TICK:down:KEY
//	TICK:up:KEY
//	TICK:mouse:DX,DY
//
// The result is ordered by tick; entries sharing a tick keep their order.
func ParseScript(s string) ([]ScriptEvent, error) {
	var out []ScriptEvent
	for _, tok := range strings.Fields(s) {
		parts := strings.SplitN(tok, ":", 3)
		if len(parts) < 2 {
			return nil, fmt.Errorf("script %q: want TICK:ACTION", tok)
		}
		tick, err := strconv.ParseUint(parts[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("script %q: bad tick: %w", tok, err)
		}
		arg := ""
		if len(parts) == 3 {
			arg = parts[2]
		}

		var ev input.Event
		switch parts[1] {
		case "engage":
			ev = input.Engage()
		case "release":
			ev = input.Release()
		case "down", "up":
			k, ok := input.ParseKey(arg)
			if !ok {
				return nil, fmt.Errorf("script %q: unknown key %q", tok, arg)
			}
			if parts[1] == "down" {
				ev = input.KeyDown(k)
			} else {
				ev = input.KeyUp(k)
			}
		case "mouse":
			dx, dy, ok := strings.Cut(arg, ",")
			if !ok {
				return nil, fmt.Errorf("script %q: want mouse:DX,DY", tok)
			}
			x, err := strconv.ParseFloat(dx, 64)
			if err != nil {
				return nil, fmt.Errorf("script %q: %w", tok, err)
			}
			y, err := strconv.ParseFloat(dy, 64)
			if err != nil {
				return nil, fmt.Errorf("script %q: %w", tok, err)
			}
			ev = input.MouseMove(x, y)
		default:
			return nil, fmt.Errorf("script %q: unknown action %q", tok, parts[1])
		}
		out = append(out, ScriptEvent{Tick: tick, Event: ev})
	}
	slices.SortStableFunc(out, func(a, b ScriptEvent) int {
		switch {
		case a.Tick < b.Tick:
			return -1
		case a.Tick > b.Tick:
			return 1
		}
		return 0
	})
	return out, nil
}
