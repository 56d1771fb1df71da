//go:build !cgo

package hal

import (
	"context"
	"errors"
)

// WindowConfig sizes the desktop window.
type WindowConfig struct {
	Width  int
	Height int
	HUD    bool
}

func RunWindow(_ context.Context, _ App, _ WindowConfig) error {
	return errors.New("window mode requires cgo (build/run with CGO_ENABLED=1)")
}
