//go:build cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"lumen/input"
)

var hostKeys = []struct {
	key  ebiten.Key
	code input.KeyCode
}{
	{ebiten.KeyW, input.KeyW},
	{ebiten.KeyA, input.KeyA},
	{ebiten.KeyS, input.KeyS},
	{ebiten.KeyD, input.KeyD},
	{ebiten.KeyArrowUp, input.KeyArrowUp},
	{ebiten.KeyArrowDown, input.KeyArrowDown},
	{ebiten.KeyArrowLeft, input.KeyArrowLeft},
	{ebiten.KeyArrowRight, input.KeyArrowRight},
	{ebiten.KeyR, input.KeyR},
}

// hostKeyboard turns ebiten's polled state into queued input events.
type hostKeyboard struct {
	q *input.Queue

	captured bool
	lastX    int
	lastY    int
}

func newHostKeyboard(q *input.Queue) *hostKeyboard {
	return &hostKeyboard{q: q}
}

func (k *hostKeyboard) poll() {
	for _, hk := range hostKeys {
		if inpututil.IsKeyJustPressed(hk.key) {
			k.q.Post(input.KeyDown(hk.code))
		}
		if inpututil.IsKeyJustReleased(hk.key) {
			k.q.Post(input.KeyUp(hk.code))
		}
	}

	switch {
	case !k.captured && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
		k.captured = true
		k.lastX, k.lastY = ebiten.CursorPosition()
		k.q.Post(input.Engage())
	case k.captured && inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		k.release()
	case k.captured && (!ebiten.IsFocused() || ebiten.CursorMode() != ebiten.CursorModeCaptured):
		// Capture lost to the window system.
		k.release()
	}

	if !k.captured {
		return
	}
	x, y := ebiten.CursorPosition()
	if dx, dy := x-k.lastX, y-k.lastY; dx != 0 || dy != 0 {
		k.q.Post(input.MouseMove(float64(dx), float64(dy)))
	}
	k.lastX, k.lastY = x, y
}

func (k *hostKeyboard) release() {
	ebiten.SetCursorMode(ebiten.CursorModeVisible)
	k.captured = false
	k.q.Post(input.Release())
}
