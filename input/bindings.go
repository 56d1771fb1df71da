package input

// Bindings maps keys to movement intents.
type Bindings struct {
	Forward []KeyCode
	Back    []KeyCode
	Left    []KeyCode
	Right   []KeyCode
}

// DefaultBindings is WASD plus the arrow keys.
func DefaultBindings() Bindings {
	return Bindings{
		Forward: []KeyCode{KeyW, KeyArrowUp},
		Back:    []KeyCode{KeyS, KeyArrowDown},
		Left:    []KeyCode{KeyA, KeyArrowLeft},
		Right:   []KeyCode{KeyD, KeyArrowRight},
	}
}

// Intent reads the pressed keys and returns forward and strafe intents in
// {-1, 0, +1}. Opposite keys cancel. Positive strafe is to the right.
func (b Bindings) Intent(s *State) (forward, strafe int) {
	if anyPressed(s, b.Forward) {
		forward++
	}
	if anyPressed(s, b.Back) {
		forward--
	}
	if anyPressed(s, b.Right) {
		strafe++
	}
	if anyPressed(s, b.Left) {
		strafe--
	}
	return forward, strafe
}

func anyPressed(s *State, keys []KeyCode) bool {
	for _, k := range keys {
		if s.Pressed(k) {
			return true
		}
	}
	return false
}
