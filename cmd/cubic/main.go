// Command cubic opens a window and flies a camera over generated voxel
// terrain, drawing the frame geometry built by the scene package.
package main

import (
	"context"
	"errors"
	"flag"
	"io/fs"
	"os"
	"os/signal"
	"runtime"

	"cubic/internal/config"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/sirupsen/logrus"
)

// log is the standard logrus logger, shared with the internal packages.
var log = logrus.StandardLogger()

func init() {
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "scene.yaml", "scene file; defaults are used if it does not exist")
	debug := flag.Bool("debug", false, "log at debug level")
	flag.Parse()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if *debug {
		log.SetLevel(logrus.DebugLevel)
	}

	sc, err := loadScene(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	sc.Apply()

	if err := glfw.Init(); err != nil {
		log.Fatal(err)
	}
	defer glfw.Terminate()

	window, err := setupWindow()
	if err != nil {
		log.Fatal(err)
	}

	c, err := setupViewer(window, sc)
	if err != nil {
		log.Fatal(err)
	}
	defer c.Close()

	loop := NewViewerLoop(window, c, sc.Render.FPSLimit)
	setupInputHandlers(window, loop, c.Input, c.Player)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := loop.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.WithError(err).Error("viewer stopped")
	}
	logStats(loop.stats)
}

// loadScene reads the scene file, falling back to the defaults when the
// file does not exist.
func loadScene(path string) (config.Scene, error) {
	sc, err := config.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.WithField("path", path).Warn("scene file not found, using defaults")
		return config.DefaultScene(), nil
	}
	return sc, err
}
