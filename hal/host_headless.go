package hal

import (
	"context"
	"fmt"
	"image"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Hz     int
	Ticks  uint64
	Width  int
	Height int
	Script []ScriptEvent
	// Final, if set, receives the last presented frame when the run ends.
	Final func(frame *image.RGBA, status string) error
}

// RunHeadless runs the explorer without opening a window. Scripted events
// are posted at their tick before that tick's step. Time advances exactly
// 1/Hz per step.
func RunHeadless(ctx context.Context, newApp App, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("invalid headless size: %dx%d", cfg.Width, cfg.Height)
	}

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	fb := newHostFramebuffer(cfg.Width, cfg.Height)
	clock := &stepClock{start: time.Now(), dt: d}
	h := newHost(fb, clock)
	step, err := newApp(h)
	if err != nil {
		return err
	}

	t := time.NewTicker(d)
	defer t.Stop()

	script := cfg.Script
	var tick uint64
	err = func() error {
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-t.C:
				for len(script) > 0 && script[0].Tick <= tick {
					h.queue.Post(script[0].Event)
					script = script[1:]
				}
				if stop, err := runStep(ctx, step); stop {
					return err
				}
				clock.step()
				tick++
				if cfg.Ticks > 0 && tick >= cfg.Ticks {
					return nil
				}
			}
		}
	}()

	if cfg.Final != nil {
		img, status := fb.snapshot()
		if ferr := cfg.Final(img, status); ferr != nil && err == nil {
			err = ferr
		}
	}
	return err
}
