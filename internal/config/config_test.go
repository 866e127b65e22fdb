package config

import (
	"os"
	"path/filepath"
	"testing"

	"cubic/internal/world"
)

func TestRenderDistanceClamped(t *testing.T) {
	defer SetRenderDistance(GetRenderDistance())

	SetRenderDistance(0)
	if got := GetRenderDistance(); got != MinRenderDistance {
		t.Errorf("render distance = %d, want %d", got, MinRenderDistance)
	}
	SetRenderDistance(1000)
	if got := GetRenderDistance(); got != MaxRenderDistance {
		t.Errorf("render distance = %d, want %d", got, MaxRenderDistance)
	}
	SetRenderDistance(6)
	if GetChunkLoadRadius() != 7 {
		t.Errorf("load radius = %d, want 7", GetChunkLoadRadius())
	}
}

func TestParseDefaults(t *testing.T) {
	s, err := Parse([]byte("{}"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if s != DefaultScene() {
		t.Fatalf("empty document should give defaults, got %+v", s)
	}
}

func TestParseOverrides(t *testing.T) {
	doc := `
world:
  seed: 99
  layers: 3
render:
  radius: 2
  vertex_cap: 400
camera:
  position: [1, 2, 3]
  pitch: -45
`
	s, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if s.World.Seed != 99 || s.World.Layers != 3 {
		t.Errorf("world = %+v", s.World)
	}
	if s.Render.Radius != 2 || s.Render.VertexCap != 400 {
		t.Errorf("render = %+v", s.Render)
	}
	if s.Render.IndexCap != DefaultIndexCap {
		t.Errorf("index cap = %d, want default", s.Render.IndexCap)
	}
	if s.Camera.Position != [3]float32{1, 2, 3} || s.Camera.Pitch != -45 {
		t.Errorf("camera = %+v", s.Camera)
	}
	if s.Camera.Yaw != DefaultScene().Camera.Yaw {
		t.Errorf("yaw should keep its default, got %v", s.Camera.Yaw)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := map[string]string{
		"negative radius": "render: {radius: -1}",
		"huge vertex cap": "render: {vertex_cap: 70000}",
		"tiny index cap":  "render: {index_cap: 3}",
		"negative fps":    "render: {fps_limit: -5}",
		"no layers":       "world: {layers: 0}",
		"bad preview":     "preview: {width: 0}",
		"not yaml":        "render: [",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse([]byte(doc)); err == nil {
				t.Fatalf("Parse(%q) succeeded", doc)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	if err := os.WriteFile(path, []byte("atlas: other.png\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Atlas != "other.png" {
		t.Errorf("atlas = %q", s.Atlas)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("loading a missing file should fail")
	}
}

func TestWorldGenSettingsGenerator(t *testing.T) {
	flat := WorldGenSettings{Flat: true, FlatHeight: 3}.Generator()
	if _, ok := flat.(*world.FlatGenerator); !ok || flat.HeightAt(5, 5) != 3 {
		t.Fatalf("flat settings gave %T", flat)
	}
	if _, ok := (WorldGenSettings{Seed: 4}).Generator().(*world.Generator); !ok {
		t.Fatal("default settings should give the noise generator")
	}
}
