package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"lumen/assets"
	"lumen/resource"
	"lumen/scene"
)

func TestRenderEmbeddedScene(t *testing.T) {
	img, status, err := render(context.Background(), options{
		scene:  resource.EmbedScheme + assets.SceneName,
		width:  16,
		height: 9,
		frames: 3,
	})
	if err != nil {
		t.Fatalf("render() error = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 16 || b.Dy() != 9 {
		t.Fatalf("render() size = %v, want 16x9", b)
	}
	if !strings.HasPrefix(status, "3 frames 16x9") {
		t.Fatalf("status = %q", status)
	}
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 255 {
			t.Fatalf("pixel %d alpha = %d, want opaque", i/4, img.Pix[i])
		}
	}
}

func TestRenderSceneFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.json")
	if err := scene.Save(path, scene.Default()); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	saved := filepath.Join(t.TempDir(), "effective.json")
	_, _, err := render(context.Background(), options{
		scene: path, width: 4, height: 4, frames: 1, bounces: 2, saveScene: saved,
	})
	if err != nil {
		t.Fatalf("render() error = %v", err)
	}
	got, err := scene.Load(saved)
	if err != nil {
		t.Fatalf("Load(saved) error = %v", err)
	}
	if got.MaxBounce != 2 || len(got.Spheres) != len(scene.Default().Spheres) {
		t.Fatalf("saved scene bounces=%d spheres=%d, want 2 and the default spheres", got.MaxBounce, len(got.Spheres))
	}
}

func TestRenderRejectsBadSceneFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(`{"spheres":[]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	_, _, err := render(context.Background(), options{scene: path, width: 4, height: 4, frames: 1})
	if !errors.Is(err, scene.ErrNoSpheres) {
		t.Fatalf("render(empty scene) error = %v, want ErrNoSpheres", err)
	}
}

func TestRenderRejects(t *testing.T) {
	ctx := context.Background()
	if _, _, err := render(ctx, options{scene: "embed:scene.json", width: 4, height: 4}); err == nil {
		t.Fatalf("render(frames=0) error = nil")
	}
	missing := filepath.Join(t.TempDir(), "nope.json")
	if _, _, err := render(ctx, options{scene: missing, width: 4, height: 4, frames: 1}); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("render(missing) error = %v, want not-exist", err)
	}
	if _, _, err := render(ctx, options{scene: "embed:scene.json", width: 4, height: 4, frames: 1, bounces: 99}); !errors.Is(err, scene.ErrBadBounce) {
		t.Fatalf("render(bounces=99) error = %v, want ErrBadBounce", err)
	}
}
