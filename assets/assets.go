// Package assets embeds the default shader and scene so the explorer runs
// without any files next to the binary.
package assets

import "embed"

const (
	ShaderName = "pathtrace.kage"
	SceneName  = "scene.json"
)

//go:embed pathtrace.kage scene.json
var FS embed.FS
