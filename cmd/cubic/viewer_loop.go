package main

import (
	"context"
	"fmt"
	"time"

	"cubic/internal/config"
	"cubic/internal/graphics"
	"cubic/internal/input"
	"cubic/internal/player"
	"cubic/internal/profiling"
	"cubic/internal/render"
	"cubic/internal/scene"
	"cubic/internal/world"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/sirupsen/logrus"
)

// ViewerLoop owns the per-frame state of the viewer.
type ViewerLoop struct {
	window   *glfw.Window
	renderer *graphics.Renderer
	overlay  *graphics.TextOverlay
	world    *world.World
	scene    *scene.Scene
	player   *player.Player
	input    *input.InputManager

	fpsLimiter  *FPSLimiter
	grabbed     bool
	showProfile bool

	// Geometry is rebuilt only when the camera or the world changes.
	lastCam  render.Camera
	lastMods uint64
	built    bool
	stats    scene.Stats
	buildDur time.Duration

	frames           int
	fps              int
	lastFPSCheckTime time.Time
	lastTime         time.Time
}

func NewViewerLoop(window *glfw.Window, c *Components, fpsLimit int) *ViewerLoop {
	return &ViewerLoop{
		window:           window,
		renderer:         c.Renderer,
		overlay:          c.Overlay,
		world:            c.World,
		scene:            c.Scene,
		player:           c.Player,
		input:            c.Input,
		fpsLimiter:       NewFPSLimiter(fpsLimit),
		grabbed:          true,
		lastFPSCheckTime: time.Now(),
		lastTime:         time.Now(),
	}
}

// Run drives frames until the window closes or Quit is pressed.
func (l *ViewerLoop) Run(ctx context.Context) error {
	for !l.window.ShouldClose() {
		if err := l.tick(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (l *ViewerLoop) tick(ctx context.Context) error {
	profiling.ResetFrame()
	now := time.Now()
	dt := now.Sub(l.lastTime).Seconds()
	l.lastTime = now

	func() { defer profiling.Track("glfw.PollEvents")(); glfw.PollEvents() }()
	l.handleInputActions()

	if l.grabbed {
		l.player.UpdatePosition(dt, moveInput(l.input))
	}

	if err := l.rebuild(ctx); err != nil {
		return err
	}

	l.renderer.Render(l.renderer.Camera().GetViewMatrix(l.player))
	l.overlay.SetText(l.statusLine())
	fbW, fbH := l.window.GetFramebufferSize()
	l.overlay.Draw(fbW, fbH)

	func() { defer profiling.Track("glfw.SwapBuffers")(); l.window.SwapBuffers() }()
	l.input.PostUpdate()

	l.frames++
	if time.Since(l.lastFPSCheckTime) >= time.Second {
		l.fps = l.frames
		l.frames = 0
		l.lastFPSCheckTime = time.Now()
	}

	l.fpsLimiter.Wait()
	return nil
}

func (l *ViewerLoop) handleInputActions() {
	if l.input.JustPressed(input.ActionQuit) {
		l.window.SetShouldClose(true)
	}
	if l.input.JustPressed(input.ActionToggleProfiling) {
		l.showProfile = !l.showProfile
	}
	if l.input.JustPressed(input.ActionToggleGrab) {
		l.grabbed = !l.grabbed
		if l.grabbed {
			l.window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
			l.player.ResetMouse()
		} else {
			l.window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
		}
	}
}

// rebuild recomputes and uploads the frame geometry when the view or the
// world has changed since the last build.
func (l *ViewerLoop) rebuild(ctx context.Context) error {
	cam := l.player.Camera()
	mods := l.world.ModCount()
	if l.built && cam == l.lastCam && mods == l.lastMods {
		return nil
	}

	start := time.Now()
	frame, err := l.scene.Build(ctx, cam, config.GetRenderDistance())
	if err != nil {
		return fmt.Errorf("build frame: %w", err)
	}
	l.renderer.Upload(frame.Batches)
	l.buildDur = time.Since(start)

	l.stats = frame.Stats
	l.lastCam, l.lastMods, l.built = cam, mods, true
	log.WithFields(logrus.Fields{
		"faces":   frame.Stats.Faces,
		"batches": frame.Stats.Batches,
		"took":    l.buildDur,
	}).Debug("frame rebuilt")
	return nil
}

func (l *ViewerLoop) statusLine() string {
	p := l.player.Position
	line := fmt.Sprintf("%d fps  pos %.1f %.1f %.1f  %s  build %s",
		l.fps, p.X(), p.Y(), p.Z(), l.stats, l.buildDur.Round(time.Microsecond))
	if l.showProfile {
		line += "  |  " + profiling.TopN(4)
	}
	return line
}

func logStats(s scene.Stats) {
	log.WithFields(logrus.Fields{
		"chunks":  s.Chunks,
		"culled":  s.Culled,
		"empty":   s.Empty,
		"faces":   s.Faces,
		"batches": s.Batches,
	}).Info("last frame")
}
