//go:build cgo

package hal

import (
	"context"
	"errors"
	"image"
	"image/color"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"lumen/hud"
	"lumen/internal/buildinfo"
)

// WindowConfig sizes the desktop window.
type WindowConfig struct {
	Width  int
	Height int
	// HUD draws the status line over the frame.
	HUD bool
}

// RunWindow opens a desktop window, runs newApp's step once per vsync and
// presents its frames. It blocks until the window closes or ctx is done;
// cancellation closes the window and returns nil.
func RunWindow(ctx context.Context, newApp App, cfg WindowConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = 960, 540
	}
	disp := &windowDisplay{width: cfg.Width, height: cfg.Height}
	h := newHost(disp, newHostClock())
	step, err := newApp(h)
	if err != nil {
		return err
	}

	g := &hostGame{
		ctx:  ctx,
		h:    h,
		disp: disp,
		kbd:  newHostKeyboard(h.queue),
		step: step,
		hud:  cfg.HUD,
	}
	ebiten.SetWindowTitle("lumen (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetVsyncEnabled(true)
	ebiten.SetTPS(ebiten.SyncWithFPS)
	return ebiten.RunGame(g)
}

// windowDisplay holds the frame handed to Show until the next Draw.
type windowDisplay struct {
	mu     sync.Mutex
	width  int
	height int
	frame  image.Image
	status string
}

func (d *windowDisplay) ScreenSize() (int, int) { return d.width, d.height }

func (d *windowDisplay) Show(frame image.Image, status string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.frame = frame
	d.status = status
	return nil
}

func (d *windowDisplay) take() (image.Image, string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.frame, d.status
}

type hostGame struct {
	ctx  context.Context
	h    *hostHAL
	disp *windowDisplay
	kbd  *hostKeyboard
	step func() error
	hud  bool

	upload    *ebiten.Image
	panel     *ebiten.Image
	panelText string
}

func (g *hostGame) Update() error {
	g.kbd.poll()
	stop, err := runStep(g.ctx, g.step)
	if !stop {
		return nil
	}
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return ebiten.Termination
	}
	return err
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	frame, status := g.disp.take()
	src := g.source(frame)
	if src == nil {
		screen.Fill(color.White)
		return
	}

	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	fw, fh := src.Bounds().Dx(), src.Bounds().Dy()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(sw)/float64(fw), float64(sh)/float64(fh))
	op.Blend = ebiten.BlendCopy
	screen.DrawImage(src, op)

	if g.hud && status != "" {
		g.drawPanel(screen, status)
	}
}

// source returns an ebiten image for frame, uploading CPU frames.
func (g *hostGame) source(frame image.Image) *ebiten.Image {
	switch f := frame.(type) {
	case nil:
		return nil
	case *ebiten.Image:
		return f
	case *image.RGBA:
		b := f.Bounds()
		if g.upload == nil || g.upload.Bounds().Size() != b.Size() {
			if g.upload != nil {
				g.upload.Deallocate()
			}
			g.upload = ebiten.NewImage(b.Dx(), b.Dy())
		}
		g.upload.WritePixels(f.Pix)
		return g.upload
	default:
		return ebiten.NewImageFromImage(f)
	}
}

func (g *hostGame) drawPanel(screen *ebiten.Image, status string) {
	if g.panel == nil || g.panelText != status {
		if g.panel != nil {
			g.panel.Deallocate()
		}
		g.panel = ebiten.NewImageFromImage(hud.Panel(strings.Split(status, "\n")))
		g.panelText = status
	}
	screen.DrawImage(g.panel, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.disp.width, g.disp.height
}
