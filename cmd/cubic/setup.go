package main

import (
	"fmt"
	"runtime"

	"cubic/internal/config"
	"cubic/internal/graphics"
	"cubic/internal/input"
	"cubic/internal/meshing"
	"cubic/internal/player"
	"cubic/internal/scene"
	"cubic/internal/world"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/sirupsen/logrus"
)

func setupWindow() (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	window, err := glfw.CreateWindow(graphics.WinWidth, graphics.WinHeight, "cubic", nil, nil)
	if err != nil {
		return nil, err
	}
	window.MakeContextCurrent()

	// The FPS limiter paces frames instead of v-sync.
	glfw.SwapInterval(0)
	window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)

	return window, nil
}

// Components holds everything the viewer loop drives.
type Components struct {
	Renderer *graphics.Renderer
	Overlay  *graphics.TextOverlay
	World    *world.World
	Scene    *scene.Scene
	Pool     *meshing.WorkerPool
	Player   *player.Player
	Input    *input.InputManager
}

func setupViewer(window *glfw.Window, sc config.Scene) (*Components, error) {
	fbW, fbH := window.GetFramebufferSize()
	r, err := graphics.NewRenderer(fbW, fbH)
	if err != nil {
		return nil, fmt.Errorf("renderer: %w", err)
	}
	r.SetFogDistance(float32(sc.Render.Radius * world.ChunkSize))

	overlay, err := graphics.NewTextOverlay(2)
	if err != nil {
		return nil, fmt.Errorf("overlay: %w", err)
	}

	atlas, err := graphics.GetAtlas(sc.Atlas)
	if err != nil {
		return nil, fmt.Errorf("atlas: %w", err)
	}

	// Generate one ring beyond the render radius so edge chunks see their
	// neighbours.
	w := world.New()
	world.Populate(w, sc.World.Generator(), config.GetChunkLoadRadius(), sc.World.Layers)
	log.WithFields(logrus.Fields{
		"chunks": w.Len(),
		"seed":   sc.World.Seed,
		"flat":   sc.World.Flat,
	}).Info("world generated")

	workers := config.GetWorkers()
	if workers <= 0 {
		workers = max(runtime.NumCPU()/2, 1)
	}
	pool := meshing.NewWorkerPool(workers, workers*4)
	log.WithField("workers", workers).Debug("model pool started")

	cam := sc.Camera
	p := player.New(mgl32.Vec3(cam.Position), float64(cam.Yaw), float64(cam.Pitch))

	return &Components{
		Renderer: r,
		Overlay:  overlay,
		World:    w,
		Scene:    scene.New(w, pool, atlas, sc.Render.VertexCap, sc.Render.IndexCap),
		Pool:     pool,
		Player:   p,
		Input:    input.NewInputManager(),
	}, nil
}

func (c *Components) Close() {
	c.Pool.Shutdown()
	c.Overlay.Delete()
	c.Renderer.Delete()
}
