package hal

import (
	"context"
	"fmt"
	"image"
	"io"
	"time"

	"github.com/gdamore/tcell/v2"

	"lumen/input"
)

// DefaultKeyHold is how long a terminal key counts as held after its last
// press or auto-repeat. Terminals report no key releases.
const DefaultKeyHold = 150 * time.Millisecond

// TerminalConfig controls the terminal host.
type TerminalConfig struct {
	Hz      int
	KeyHold time.Duration
	// Screen overrides the terminal, e.g. with tcell.NewSimulationScreen.
	Screen tcell.Screen
}

// RunTerminal renders into the terminal with half-block cells, two pixels
// per cell vertically. Esc releases the pointer; q or Ctrl-C quits.
func RunTerminal(ctx context.Context, newApp App, cfg TerminalConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 30
	}
	if cfg.KeyHold <= 0 {
		cfg.KeyHold = DefaultKeyHold
	}
	screen := cfg.Screen
	if screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return err
		}
		screen = s
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.EnableFocus()
	screen.HideCursor()

	cols, rows := screen.Size()
	if cols <= 0 || rows <= 1 {
		return fmt.Errorf("terminal too small: %dx%d", cols, rows)
	}
	// Last row is the status line.
	fb := newHostFramebuffer(cols, (rows-1)*2)
	h := newHost(fb, newHostClock())
	// The screen owns the terminal; keep log lines off it.
	h.logger = &hostLogger{w: io.Discard}
	step, err := newApp(h)
	if err != nil {
		return err
	}

	events := make(chan tcell.Event, 64)
	done := make(chan struct{})
	defer close(done)
	go pollEvents(screen.PollEvent, events, done)

	ti := newTermInput(h.queue, cfg.KeyHold)
	t := time.NewTicker(time.Second / time.Duration(cfg.Hz))
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if ti.handle(ev, time.Now()) {
				return nil
			}
		case now := <-t.C:
			ti.expire(now)
			if stop, err := runStep(ctx, step); stop {
				return err
			}
			fb.view(func(img *image.RGBA, status string) {
				blitCells(screen, img)
				drawStatus(screen, status)
			})
			screen.Show()
		}
	}
}

// pollEvents forwards terminal events until poll returns nil or done is
// closed; it closes events when the terminal shuts down.
func pollEvents(poll func() tcell.Event, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := poll()
		if ev == nil {
			close(events)
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// termInput synthesises key releases and mouse deltas from terminal events.
type termInput struct {
	q    *input.Queue
	hold time.Duration

	held     map[input.KeyCode]time.Time
	captured bool
	hasLast  bool
	lastX    int
	lastY    int
}

func newTermInput(q *input.Queue, hold time.Duration) *termInput {
	return &termInput{q: q, hold: hold, held: make(map[input.KeyCode]time.Time)}
}

var termRunes = map[rune]input.KeyCode{
	'w': input.KeyW, 'a': input.KeyA, 's': input.KeyS, 'd': input.KeyD,
	'W': input.KeyW, 'A': input.KeyA, 'S': input.KeyS, 'D': input.KeyD,
	'r': input.KeyR,
}

var termKeys = map[tcell.Key]input.KeyCode{
	tcell.KeyUp:    input.KeyArrowUp,
	tcell.KeyDown:  input.KeyArrowDown,
	tcell.KeyLeft:  input.KeyArrowLeft,
	tcell.KeyRight: input.KeyArrowRight,
}

// handle translates one event and reports whether the user asked to quit.
func (ti *termInput) handle(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyCtrlC:
			return true
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return true
		case ev.Key() == tcell.KeyEscape:
			if ti.captured {
				ti.release()
			}
			return false
		}
		code, ok := termKeys[ev.Key()]
		if !ok && ev.Key() == tcell.KeyRune {
			code, ok = termRunes[ev.Rune()]
		}
		if !ok {
			return false
		}
		if _, down := ti.held[code]; !down {
			ti.q.Post(input.KeyDown(code))
		}
		ti.held[code] = now.Add(ti.hold)

	case *tcell.EventMouse:
		x, y := ev.Position()
		if !ti.captured && ev.Buttons()&tcell.Button1 != 0 {
			ti.captured = true
			ti.hasLast = false
			ti.q.Post(input.Engage())
		}
		if ti.captured && ti.hasLast && (x != ti.lastX || y != ti.lastY) {
			// One cell is one pixel across and two pixels down.
			ti.q.Post(input.MouseMove(float64(x-ti.lastX), float64(2*(y-ti.lastY))))
		}
		ti.lastX, ti.lastY, ti.hasLast = x, y, true

	case *tcell.EventFocus:
		if !ev.Focused && ti.captured {
			ti.release()
		}
	}
	return false
}

// expire releases keys whose hold window has passed.
func (ti *termInput) expire(now time.Time) {
	for code, until := range ti.held {
		if !now.Before(until) {
			delete(ti.held, code)
			ti.q.Post(input.KeyUp(code))
		}
	}
}

func (ti *termInput) release() {
	ti.captured = false
	ti.hasLast = false
	clear(ti.held)
	ti.q.Post(input.Release())
}
