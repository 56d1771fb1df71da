package app

import (
	"fmt"
	"time"

	"lumen/accum"
	"lumen/camera"
	"lumen/geom"
	"lumen/hal"
	"lumen/input"
)

// Session is one explorer run: camera, input, accumulation and the look
// scale. All of its state changes happen inside Tick.
type Session struct {
	cam      *camera.State
	home     camera.State
	input    *input.State
	queue    *input.Queue
	driver   *accum.Driver
	bindings input.Bindings
	rate     accum.RateMeter
	log      hal.Logger

	start time.Time
	// look is the mouse-to-radians divisor, the larger screen dimension.
	look float64
}

func NewSession(d *accum.Driver, cam *camera.State, q *input.Queue, log hal.Logger, start time.Time, look float64) *Session {
	if look <= 0 {
		look = 1
	}
	return &Session{
		cam:      cam,
		home:     *cam,
		input:    input.NewState(),
		queue:    q,
		driver:   d,
		bindings: input.DefaultBindings(),
		log:      log,
		start:    start,
		look:     look,
	}
}

func (s *Session) Camera() *camera.State    { return s.cam }
func (s *Session) Driver() *accum.Driver    { return s.driver }
func (s *Session) Input() *input.State      { return s.input }
func (s *Session) Bindings() input.Bindings { return s.bindings }

// Tick runs one display refresh: drain input queued before the call,
// integrate look and movement while active, render, and time the frame.
func (s *Session) Tick(now time.Time) error {
	s.queue.Drain(s.apply)

	delta := s.input.ConsumeMouseDelta()
	if s.driver.Moving() {
		s.cam.ApplyLook(delta.X/s.look, -delta.Y/s.look)
		s.cam.ApplyMovementIntent(s.bindings.Intent(s.input))
	}

	pos, ori := s.cam.Pose()
	if err := s.driver.Step(accum.Params{
		Time:        now.Sub(s.start).Seconds(),
		Position:    pos,
		Orientation: ori,
	}); err != nil {
		return err
	}
	s.rate.Tick(now)
	return nil
}

func (s *Session) apply(ev input.Event) {
	s.input.Apply(ev)
	switch ev.Kind {
	case input.EventEngage:
		if s.driver.Engage() {
			s.logf("engaged: pointer captured, accumulation reset")
		} else {
			s.logf("pointer captured")
		}
	case input.EventRelease:
		s.logf("pointer released")
	case input.EventKeyDown:
		if ev.Key == input.KeyR && s.driver.Moving() {
			*s.cam = s.home
			s.logf("camera reset")
		}
	}
}

// Status is the one-line diagnostic shown by hosts.
func (s *Session) Status() string {
	pos, ori := s.cam.Pose()
	return fmt.Sprintf("%s %s #%d pos=%s yaw=%.2f pitch=%.2f",
		s.rate.String(), s.driver.Mode(), s.driver.Frame(), fmtPoint(pos), ori.X, ori.Y)
}

func (s *Session) logf(format string, args ...any) {
	if s.log != nil {
		s.log.WriteLineString(fmt.Sprintf(format, args...))
	}
}

func fmtPoint(p geom.Point3) string {
	return fmt.Sprintf("(%.2f,%.2f,%.2f)", p.X, p.Y, p.Z)
}
