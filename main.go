package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"os"
	"os/signal"
	"syscall"

	"lumen/app"
	"lumen/hal"
	"lumen/internal/buildinfo"
	"lumen/internal/snapshot"
)

func main() {
	if err := run(); err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		fmt.Fprintln(os.Stderr, "lumen:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := app.DefaultConfig()
	var (
		mode    string
		hz      int
		ticks   uint64
		script  string
		out     string
		scale   int
		showVer bool
	)
	flag.StringVar(&mode, "mode", "window", "Host: window|term|headless.")
	flag.StringVar(&cfg.Renderer, "renderer", cfg.Renderer, "Renderer: cpu|gpu (gpu needs -mode window).")
	flag.StringVar(&cfg.Shader, "shader", cfg.Shader, "Shader source: path, http(s) URL or embed:NAME.")
	flag.StringVar(&cfg.Scene, "scene", cfg.Scene, "Scene description: path, http(s) URL or embed:NAME.")
	flag.IntVar(&cfg.Width, "width", cfg.Width, "Surface width in pixels.")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "Surface height in pixels.")
	flag.IntVar(&cfg.Resolution, "resolution", cfg.Resolution, "Render at 1/N of the surface size.")
	flag.IntVar(&cfg.Bounces, "bounces", 0, "Override the scene's bounce limit (0 = keep).")
	flag.Float64Var(&cfg.Speed, "speed", 0, "Override the camera speed in units per tick (0 = keep).")
	flag.BoolVar(&cfg.HUD, "hud", cfg.HUD, "Draw the status overlay.")
	flag.IntVar(&hz, "hz", 60, "Tick rate in term and headless modes.")
	flag.Uint64Var(&ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run until interrupted).")
	flag.StringVar(&script, "script", "", "Headless input script, e.g. \"10:engage 12:down:w 40:up:w\".")
	flag.StringVar(&out, "out", "", "Headless: write the final frame to this PNG.")
	flag.IntVar(&scale, "scale", 1, "Upscale factor for -out.")
	flag.BoolVar(&showVer, "version", false, "Print the version and exit.")
	flag.Parse()

	if showVer {
		fmt.Println(buildinfo.Long())
		return nil
	}
	if cfg.Renderer == "gpu" && mode != "window" {
		return fmt.Errorf("renderer gpu needs -mode window, got %q", mode)
	}
	if _, err := app.RendererFor(cfg.Renderer); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch mode {
	case "window":
		return hal.RunWindow(ctx, app.New(ctx, cfg), hal.WindowConfig{
			Width:  cfg.Width,
			Height: cfg.Height,
			HUD:    cfg.HUD,
		})
	case "term":
		return hal.RunTerminal(ctx, app.New(ctx, cfg), hal.TerminalConfig{Hz: hz})
	case "headless":
		events, err := hal.ParseScript(script)
		if err != nil {
			return err
		}
		hc := hal.HeadlessConfig{
			Hz:     hz,
			Ticks:  ticks,
			Width:  cfg.Width,
			Height: cfg.Height,
			Script: events,
		}
		if out != "" {
			hc.Final = func(frame *image.RGBA, status string) error {
				opt := snapshot.Options{Scale: scale}
				if cfg.HUD {
					opt.Status = status
				}
				return snapshot.Write(out, frame, opt)
			}
		}
		return hal.RunHeadless(ctx, app.New(ctx, cfg), hc)
	default:
		return fmt.Errorf("unknown mode %q (want window, term or headless)", mode)
	}
}
