package hal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"lumen/input"
)

type hostHAL struct {
	logger *hostLogger
	clock  Clock
	disp   Display
	queue  *input.Queue
}

func newHost(disp Display, clock Clock) *hostHAL {
	return &hostHAL{
		logger: &hostLogger{w: os.Stdout},
		clock:  clock,
		disp:   disp,
		queue:  &input.Queue{},
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Clock() Clock     { return h.clock }
func (h *hostHAL) Display() Display { return h.disp }
func (h *hostHAL) Input() Input     { return hostInput{q: h.queue} }

type hostInput struct {
	q *input.Queue
}

func (in hostInput) Queue() *input.Queue { return in.q }

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

// NewLogger returns a Logger writing to w.
func NewLogger(w io.Writer) Logger { return &hostLogger{w: w} }

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}

// runStep runs one step unless ctx is done. stop reports that the host loop
// must end; ErrQuit ends it with a nil error.
func runStep(ctx context.Context, step func() error) (stop bool, err error) {
	if err := ctx.Err(); err != nil {
		return true, err
	}
	if step == nil {
		return false, nil
	}
	if err := step(); err != nil {
		if errors.Is(err, ErrQuit) {
			return true, nil
		}
		return true, err
	}
	return false, nil
}
