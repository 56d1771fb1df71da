// Package accum drives progressive rendering.
//
// A Driver owns the history buffer and decides, once per frame, whether the
// renderer's output is captured back as history. Before the user engages
// the explorer (Idle) every frame refines a static preview; after the first
// engagement (Active) frames are rendered fresh and history is left alone.
package accum

import (
	"errors"
	"fmt"
)

// Mode is the accumulation state.
type Mode uint8

const (
	// ModeIdle accumulates every frame into history.
	ModeIdle Mode = iota
	// ModeActive renders without capturing history.
	ModeActive
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeActive:
		return "active"
	default:
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
}

var (
	ErrNilRenderer = errors.New("accum: nil renderer")
	ErrBadSize     = errors.New("accum: render target must be non-empty")
)

// Driver is the accumulation session: frame counter, history buffer and
// mode. It is not safe for concurrent use.
type Driver struct {
	r Renderer

	width  int
	height int

	mode  Mode
	frame uint32

	history Buffer
	scratch Buffer
	output  Buffer
}

// NewDriver allocates history and scratch buffers of w×h through r.
func NewDriver(r Renderer, w, h int) (*Driver, error) {
	if r == nil {
		return nil, ErrNilRenderer
	}
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadSize, w, h)
	}
	history, err := r.NewBuffer(w, h)
	if err != nil {
		return nil, fmt.Errorf("allocate history: %w", err)
	}
	scratch, err := r.NewBuffer(w, h)
	if err != nil {
		return nil, fmt.Errorf("allocate scratch: %w", err)
	}
	history.Clear()
	scratch.Clear()
	return &Driver{
		r:       r,
		width:   w,
		height:  h,
		history: history,
		scratch: scratch,
		output:  history,
	}, nil
}

func (d *Driver) Mode() Mode       { return d.mode }
func (d *Driver) Moving() bool     { return d.mode == ModeActive }
func (d *Driver) Frame() uint32    { return d.frame }
func (d *Driver) History() Buffer  { return d.history }
func (d *Driver) Size() (int, int) { return d.width, d.height }

// Output returns the buffer produced by the most recent Step, or the
// (cleared) history before the first one.
func (d *Driver) Output() Buffer { return d.output }

// Engage performs the one-way Idle→Active transition: history is cleared
// and the frame counter restarts at zero. It reports whether the transition
// happened; calls after the first are no-ops.
func (d *Driver) Engage() bool {
	if d.mode == ModeActive {
		return false
	}
	d.mode = ModeActive
	d.frame = 0
	d.history.Clear()
	d.output = d.history
	return true
}

// Step renders one frame. The driver fills p.Frame and p.Moving; the
// caller supplies time and camera pose.
//
// In Idle the rendered buffer becomes the new history by swapping buffers
// whole, so the renderer never sees a partially updated history. In Active
// history is passed through untouched.
func (d *Driver) Step(p Params) error {
	p.Frame = d.frame
	p.Moving = d.mode == ModeActive

	if err := d.r.Render(p, d.history, d.scratch); err != nil {
		return fmt.Errorf("render frame %d: %w", d.frame, err)
	}
	d.output = d.scratch
	if d.mode == ModeIdle {
		d.history, d.scratch = d.scratch, d.history
	}
	d.frame++
	return nil
}
