package hal

import (
	"errors"
	"image"
	"time"

	"lumen/input"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var (
	ErrNotImplemented = errors.New("not implemented")
	ErrQuit           = errors.New("quit")
)

// Clock is the host's monotonic time source.
type Clock interface {
	Now() time.Time
}

// Display is the presentation surface.
type Display interface {
	// ScreenSize is the surface size in pixels.
	ScreenSize() (w, h int)
	// Show presents frame with a one-line status. The display must not
	// retain frame past the next call to the step function.
	Show(frame image.Image, status string) error
}

// Input provides the event queue host input is posted to.
type Input interface {
	Queue() *input.Queue
}

// HAL provides the only contact point between the explorer and the host.
type HAL interface {
	Logger() Logger
	Clock() Clock
	Display() Display
	Input() Input
}

// App builds the per-frame step function. Returning an error aborts the
// host before its loop starts.
type App func(HAL) (step func() error, err error)
