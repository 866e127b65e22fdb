// Package scene turns the loaded world into one frame of draw batches for a
// camera. Chunk models are built in parallel and emitted in a fixed order,
// so the same world and camera always give the same batches.
package scene

import (
	"context"
	"fmt"

	"cubic/internal/meshing"
	"cubic/internal/profiling"
	"cubic/internal/render"
	"cubic/internal/world"
)

// Stats summarises one frame.
type Stats struct {
	Chunks  int // chunks within radius
	Culled  int // skipped by the coarse view cull
	Empty   int // built but with nothing to draw
	Faces   int
	Batches int
}

func (s Stats) String() string {
	return fmt.Sprintf("chunks=%d culled=%d empty=%d faces=%d batches=%d",
		s.Chunks, s.Culled, s.Empty, s.Faces, s.Batches)
}

// Frame is the geometry for one camera position.
type Frame struct {
	Batches []meshing.Batch
	Stats   Stats
}

// Scene builds frames from a world. The world's chunks must not be modified
// while Build runs.
type Scene struct {
	world   *world.World
	pool    *meshing.WorkerPool
	texture meshing.Texture
	vcap    int
	icap    int
}

// New returns a scene. pool may be nil, in which case Build runs on the
// calling goroutine.
func New(w *world.World, pool *meshing.WorkerPool, texture meshing.Texture, vcap, icap int) *Scene {
	// Fail early on bad caps rather than on the first frame.
	meshing.NewEmitterWithCaps(texture, vcap, icap)
	return &Scene{world: w, pool: pool, texture: texture, vcap: vcap, icap: icap}
}

// SetTexture replaces the handle attached to future batches.
func (s *Scene) SetTexture(t meshing.Texture) { s.texture = t }

// Visible returns the loaded chunks within radius chunks of the camera on
// the horizontal plane, sorted.
func (s *Scene) Visible(cam render.Camera, radius int) []world.ChunkPos {
	center := world.ChunkPosOf(cam.Position)
	var out []world.ChunkPos
	for _, p := range s.world.Positions() {
		if abs(p.X-center.X) <= radius && abs(p.Z-center.Z) <= radius {
			out = append(out, p)
		}
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func (s *Scene) job(cam render.Camera, pos world.ChunkPos, i int) meshing.ModelJob {
	return meshing.ModelJob{
		Pos:       pos,
		Chunk:     s.world.Chunk(pos),
		Connected: s.world.Connected(pos),
		Camera:    cam,
		Index:     i,
	}
}

// Build computes one frame. Chunk models are built on the worker pool and
// joined before emission. It returns ctx's error if ctx is cancelled first.
func (s *Scene) Build(ctx context.Context, cam render.Camera, radius int) (Frame, error) {
	if s.pool == nil {
		return s.BuildSequential(cam, radius), nil
	}
	defer profiling.Track("scene.Build")()

	positions := s.Visible(cam, radius)
	results := make([]meshing.ModelResult, len(positions))
	ch := make(chan meshing.ModelResult, len(positions))

	stopModels := profiling.Track("scene.Models")
	for i, pos := range positions {
		job := s.job(cam, pos, i)
		job.ResultChan = ch
		if err := s.pool.SubmitBlocking(ctx, job); err != nil {
			stopModels()
			return Frame{}, err
		}
	}
	for range positions {
		select {
		case r := <-ch:
			results[r.Index] = r
		case <-ctx.Done():
			stopModels()
			return Frame{}, ctx.Err()
		}
	}
	stopModels()

	return s.emit(results), nil
}

// BuildSequential computes the same frame as Build without the worker pool.
func (s *Scene) BuildSequential(cam render.Camera, radius int) Frame {
	defer profiling.Track("scene.BuildSequential")()

	positions := s.Visible(cam, radius)
	results := make([]meshing.ModelResult, len(positions))
	for i, pos := range positions {
		results[i] = meshing.BuildModel(s.job(cam, pos, i))
	}
	return s.emit(results)
}

func (s *Scene) emit(results []meshing.ModelResult) Frame {
	defer profiling.Track("scene.Emit")()

	var st Stats
	st.Chunks = len(results)
	e := meshing.NewEmitterWithCaps(s.texture, s.vcap, s.icap)
	for i := range results {
		r := &results[i]
		switch {
		case r.Culled:
			st.Culled++
		case r.Model.IsEmpty():
			st.Empty++
		default:
			e.AddChunk(r.Pos, &r.Model)
		}
	}
	batches := e.Batches()
	st.Faces = e.FaceCount()
	st.Batches = len(batches)

	profiling.Count("chunks", st.Chunks)
	profiling.Count("chunks.culled", st.Culled)
	profiling.Count("faces", st.Faces)
	profiling.Count("batches", st.Batches)
	return Frame{Batches: batches, Stats: st}
}
