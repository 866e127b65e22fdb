package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scene is the on-disk description of what to render and from where.
type Scene struct {
	World   WorldGenSettings `yaml:"world"`
	Render  RenderConfig     `yaml:"render"`
	Camera  CameraConfig     `yaml:"camera"`
	Atlas   string           `yaml:"atlas"`
	Preview PreviewConfig    `yaml:"preview"`
}

type RenderConfig struct {
	Radius    int `yaml:"radius"`
	Workers   int `yaml:"workers"`
	VertexCap int `yaml:"vertex_cap"`
	IndexCap  int `yaml:"index_cap"`
	// FPSLimit caps the viewer frame rate; 0 disables the cap.
	FPSLimit int `yaml:"fps_limit"`
}

type CameraConfig struct {
	Position [3]float32 `yaml:"position"`
	Yaw      float32    `yaml:"yaw"`
	Pitch    float32    `yaml:"pitch"`
}

type PreviewConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Batch caps used when the scene leaves them unset.
const (
	DefaultVertexCap = 10000
	DefaultIndexCap  = 15000
)

// DefaultScene returns the scene used when no file is given.
func DefaultScene() Scene {
	return Scene{
		World: WorldGenSettings{Seed: 1, FlatHeight: 8, Layers: 2},
		Render: RenderConfig{
			Radius:    4,
			Workers:   4,
			VertexCap: DefaultVertexCap,
			IndexCap:  DefaultIndexCap,
			FPSLimit:  120,
		},
		Camera:  CameraConfig{Position: [3]float32{8, 40, 8}, Yaw: -90, Pitch: -30},
		Atlas:   "assets/atlas.png",
		Preview: PreviewConfig{Width: 640, Height: 480},
	}
}

// Load reads a scene file. Fields missing from the file keep their defaults.
func Load(path string) (Scene, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Scene{}, err
	}
	s, err := Parse(raw)
	if err != nil {
		return Scene{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a scene from YAML over the defaults.
func Parse(raw []byte) (Scene, error) {
	s := DefaultScene()
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return Scene{}, err
	}
	if err := s.Validate(); err != nil {
		return Scene{}, err
	}
	return s, nil
}

// Validate rejects values the renderer cannot work with.
func (s Scene) Validate() error {
	if s.Render.Radius < 0 {
		return fmt.Errorf("render.radius must not be negative, got %d", s.Render.Radius)
	}
	if s.Render.VertexCap < 4 || s.Render.VertexCap > 1<<16 {
		return fmt.Errorf("render.vertex_cap %d out of range [4, 65536]", s.Render.VertexCap)
	}
	if s.Render.IndexCap < 6 {
		return fmt.Errorf("render.index_cap %d below one face", s.Render.IndexCap)
	}
	if s.Render.FPSLimit < 0 {
		return fmt.Errorf("render.fps_limit must not be negative, got %d", s.Render.FPSLimit)
	}
	if s.World.Layers < 1 {
		return fmt.Errorf("world.layers must be at least 1, got %d", s.World.Layers)
	}
	if s.Preview.Width <= 0 || s.Preview.Height <= 0 {
		return fmt.Errorf("preview size %dx%d must be positive", s.Preview.Width, s.Preview.Height)
	}
	return nil
}

// Apply pushes the scene's render settings into the process-wide settings.
func (s Scene) Apply() {
	SetRenderDistance(s.Render.Radius)
	SetWorkers(s.Render.Workers)
}
