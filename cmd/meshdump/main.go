// Command meshdump builds one frame headlessly and reports its batches. It
// can also write a software-rendered preview of the frame and the generated
// texture atlas as PNG files.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"runtime"

	"cubic/internal/config"
	"cubic/internal/meshing"
	"cubic/internal/player"
	"cubic/internal/preview"
	"cubic/internal/profiling"
	"cubic/internal/render"
	"cubic/internal/scene"
	"cubic/internal/world"

	"github.com/fatih/color"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/sirupsen/logrus"
)

var log = logrus.StandardLogger()

type options struct {
	config     string
	out        string
	atlas      string
	seed       int64
	radius     int
	sequential bool
	verbose    bool
}

func main() {
	var opts options
	flag.StringVar(&opts.config, "config", "scene.yaml", "scene file; defaults are used if it does not exist")
	flag.StringVar(&opts.out, "out", "", "write a preview PNG of the frame to this path")
	flag.StringVar(&opts.atlas, "atlas", "", "write the generated texture atlas PNG to this path")
	flag.Int64Var(&opts.seed, "seed", 0, "override the world seed")
	flag.IntVar(&opts.radius, "radius", 0, "override the render radius in chunks")
	flag.BoolVar(&opts.sequential, "seq", false, "build chunk models on one goroutine")
	flag.BoolVar(&opts.verbose, "v", false, "list every batch")
	flag.Parse()

	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if err := run(opts, set); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "meshdump: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options, set map[string]bool) error {
	sc, err := config.Load(opts.config)
	if errors.Is(err, fs.ErrNotExist) {
		log.WithField("path", opts.config).Warn("scene file not found, using defaults")
		sc = config.DefaultScene()
	} else if err != nil {
		return err
	}
	if set["seed"] {
		sc.World.Seed = opts.seed
	}
	if set["radius"] {
		sc.Render.Radius = opts.radius
	}
	if err := sc.Validate(); err != nil {
		return err
	}
	sc.Apply()

	if opts.atlas != "" {
		if err := preview.WritePNG(opts.atlas, render.AtlasImage(16)); err != nil {
			return err
		}
		color.Green("atlas written to %s", opts.atlas)
	}

	color.Blue("Generating world (seed %d)...", sc.World.Seed)
	w := world.New()
	world.Populate(w, sc.World.Generator(), config.GetChunkLoadRadius(), sc.World.Layers)

	cam := player.New(mgl32.Vec3(sc.Camera.Position), float64(sc.Camera.Yaw), float64(sc.Camera.Pitch)).Camera()

	var pool *meshing.WorkerPool
	if !opts.sequential {
		workers := config.GetWorkers()
		if workers <= 0 {
			workers = runtime.NumCPU()
		}
		pool = meshing.NewWorkerPool(workers, workers*4)
		defer pool.Shutdown()
	}
	s := scene.New(w, pool, sc.Atlas, sc.Render.VertexCap, sc.Render.IndexCap)

	color.Blue("Building frame (%d chunks loaded, radius %d)...", w.Len(), config.GetRenderDistance())
	profiling.ResetFrame()
	frame, err := s.Build(context.Background(), cam, config.GetRenderDistance())
	if err != nil {
		return fmt.Errorf("build frame: %w", err)
	}
	report(frame, opts.verbose)

	if opts.out != "" {
		img, drawn := preview.Render(frame.Batches, cam, preview.Options{
			Width:   sc.Preview.Width,
			Height:  sc.Preview.Height,
			Caption: frame.Stats.String(),
		})
		if err := preview.WritePNG(opts.out, img); err != nil {
			return err
		}
		color.Green("preview written to %s (%d faces drawn)", opts.out, drawn)
	}
	return nil
}

func report(frame scene.Frame, verbose bool) {
	color.Green("Frame built: %s", frame.Stats)
	if verbose {
		for i, b := range frame.Batches {
			fmt.Printf("  batch %3d: %5d vertices %5d indices %4d faces base %d\n",
				i, len(b.Vertices), len(b.Indices), b.Faces(), b.BaseVertex)
		}
	}
	log.WithFields(logrus.Fields{
		"timings":  profiling.TopN(5),
		"counters": profiling.CounterLine(),
	}).Info("frame profile")
}
