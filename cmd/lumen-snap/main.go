// Command lumen-snap renders a settled preview of a scene on the CPU and
// writes it as a PNG.
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"os"
	"os/signal"
	"strings"

	"lumen/accum"
	"lumen/assets"
	"lumen/geom"
	"lumen/internal/snapshot"
	"lumen/resource"
	"lumen/scene"
	"lumen/tracer"
)

type options struct {
	scene   string
	width   int
	height  int
	frames  int
	bounces int
	workers int
	// saveScene, when set, receives the scene after overrides.
	saveScene string
}

func main() {
	var (
		opt   options
		out   = flag.String("out", "", "Output PNG path.")
		scale = flag.Int("scale", 1, "Upscale factor.")
		hud   = flag.Bool("hud", false, "Stamp frame count and pose in the corner.")
	)
	flag.StringVar(&opt.scene, "scene", resource.EmbedScheme+assets.SceneName, "Scene: path, http(s) URL or embed:NAME.")
	flag.IntVar(&opt.width, "width", 240, "Render width.")
	flag.IntVar(&opt.height, "height", 135, "Render height.")
	flag.IntVar(&opt.frames, "frames", 64, "Frames to accumulate.")
	flag.IntVar(&opt.bounces, "bounces", 0, "Override the scene's bounce limit (0 = keep).")
	flag.IntVar(&opt.workers, "workers", 0, "Render goroutines (0 = NumCPU).")
	flag.StringVar(&opt.saveScene, "save-scene", "", "Also write the effective scene as JSON to this path.")
	flag.Parse()

	if *out == "" {
		fatalf("usage: lumen-snap -out frame.png [-scene scene.json] [-width 240 -height 135] [-frames 64] [-scale 4] [-hud]")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	img, status, err := render(ctx, opt)
	if err != nil {
		fatalf("lumen-snap: %v", err)
	}
	so := snapshot.Options{Scale: *scale}
	if *hud {
		so.Status = status
	}
	if err := snapshot.Write(*out, img, so); err != nil {
		fatalf("lumen-snap: %v", err)
	}
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}

// render accumulates opt.frames idle frames from the scene's camera pose.
func render(ctx context.Context, opt options) (*image.RGBA, string, error) {
	if opt.frames <= 0 {
		return nil, "", fmt.Errorf("frames must be positive, got %d", opt.frames)
	}
	scn, err := loadScene(ctx, opt.scene)
	if err != nil {
		return nil, "", err
	}
	if opt.bounces > 0 {
		scn.MaxBounce = opt.bounces
		if err := scn.Validate(); err != nil {
			return nil, "", err
		}
	}
	if opt.saveScene != "" {
		if err := scene.Save(opt.saveScene, scn); err != nil {
			return nil, "", err
		}
	}

	r, err := tracer.New(scn.Config(), scn)
	if err != nil {
		return nil, "", err
	}
	r.Workers = opt.workers
	d, err := accum.NewDriver(r, opt.width, opt.height)
	if err != nil {
		return nil, "", err
	}

	c := scn.Camera
	p := accum.Params{
		Position:    geom.P3(c.Position[0], c.Position[1], c.Position[2]),
		Orientation: geom.P2(c.Yaw, c.Pitch),
	}
	for i := 0; i < opt.frames; i++ {
		if err := ctx.Err(); err != nil {
			return nil, "", err
		}
		p.Time = float64(i) / 60
		if err := d.Step(p); err != nil {
			return nil, "", err
		}
	}

	img := d.Output().(*tracer.Image).RGBA()
	status := fmt.Sprintf("%d frames %dx%d\npos=(%.2f,%.2f,%.2f) yaw=%.2f pitch=%.2f",
		d.Frame(), opt.width, opt.height, c.Position[0], c.Position[1], c.Position[2], c.Yaw, c.Pitch)
	return img, status, nil
}

// loadScene reads plain paths from disk and fetches URLs and embed: names.
func loadScene(ctx context.Context, name string) (*scene.Scene, error) {
	if !strings.Contains(name, "://") && !strings.HasPrefix(name, resource.EmbedScheme) {
		scn, err := scene.Load(name)
		if err != nil {
			return nil, fmt.Errorf("scene %s: %w", name, err)
		}
		return scn, nil
	}
	f := resource.Auto{Embed: resource.FSFetcher{FS: assets.FS}}
	data, err := resource.FetchAll(ctx, f, name)
	if err != nil {
		return nil, err
	}
	scn, err := scene.Parse(data[0])
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", name, err)
	}
	return scn, nil
}
