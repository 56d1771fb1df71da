// Package input holds the explorer's input state: the pressed-key set, the
// mouse motion accumulated between frames, and the queue that carries input
// events from the host to the frame tick.
package input

import "lumen/geom"

// State is the per-session input state. It is owned by the frame tick and is
// not safe for concurrent use; hosts talk to it through a Queue.
type State struct {
	pressed  map[KeyCode]struct{}
	pending  geom.Point2
	captured bool
}

func NewState() *State {
	return &State{pressed: make(map[KeyCode]struct{})}
}

// KeyDown marks k as pressed. Repeated calls are harmless.
func (s *State) KeyDown(k KeyCode) {
	s.pressed[k] = struct{}{}
}

// KeyUp marks k as released. Repeated calls are harmless.
func (s *State) KeyUp(k KeyCode) {
	delete(s.pressed, k)
}

// Pressed reports whether k is currently held.
func (s *State) Pressed(k KeyCode) bool {
	_, ok := s.pressed[k]
	return ok
}

// ReleaseAll clears the pressed-key set.
func (s *State) ReleaseAll() {
	clear(s.pressed)
}

// MouseMove accumulates raw pointer motion. Motion received while the
// pointer is not captured is discarded.
func (s *State) MouseMove(dx, dy float64) {
	if !s.captured {
		return
	}
	s.pending.X += dx
	s.pending.Y += dy
}

// ConsumeMouseDelta returns the motion accumulated since the previous call
// and resets it to zero.
func (s *State) ConsumeMouseDelta() geom.Point2 {
	d := s.pending
	s.pending = geom.Point2{}
	return d
}

// SetCaptured records whether pointer capture is engaged. Losing capture
// drops any motion not yet consumed.
func (s *State) SetCaptured(on bool) {
	s.captured = on
	if !on {
		s.pending = geom.Point2{}
	}
}

func (s *State) Captured() bool { return s.captured }

// Apply folds one queued event into the state. Engage and Release only
// toggle capture; the caller handles their session-level effects.
func (s *State) Apply(ev Event) {
	switch ev.Kind {
	case EventKeyDown:
		s.KeyDown(ev.Key)
	case EventKeyUp:
		s.KeyUp(ev.Key)
	case EventMouseMove:
		s.MouseMove(ev.DX, ev.DY)
	case EventEngage:
		s.SetCaptured(true)
	case EventRelease:
		s.SetCaptured(false)
		s.ReleaseAll()
	}
}
