package assets_test

import (
	"io/fs"
	"reflect"
	"strings"
	"testing"

	"lumen/assets"
	"lumen/scene"
)

func TestEmbeddedSceneMatchesDefault(t *testing.T) {
	data, err := fs.ReadFile(assets.FS, assets.SceneName)
	if err != nil {
		t.Fatalf("ReadFile(%s) error = %v", assets.SceneName, err)
	}
	got, err := scene.Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if want := scene.Default(); !reflect.DeepEqual(got, want) {
		t.Fatalf("embedded scene = %+v, want %+v", got, want)
	}
}

func TestEmbeddedShaderDeclaresUniforms(t *testing.T) {
	data, err := fs.ReadFile(assets.FS, assets.ShaderName)
	if err != nil {
		t.Fatalf("ReadFile(%s) error = %v", assets.ShaderName, err)
	}
	src := string(data)
	if !strings.HasPrefix(src, "//kage:unit pixels") {
		t.Fatalf("shader does not start with the pixels unit directive")
	}
	for _, name := range []string{"Time", "Frame", "Moving", "Size", "CamPos", "CamDir", "Spheres", "Lights", "MaxBounce"} {
		if !strings.Contains(src, "var "+name+" ") {
			t.Fatalf("shader is missing uniform %s", name)
		}
	}
}
