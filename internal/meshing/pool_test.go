package meshing

import (
	"context"
	"testing"
	"time"

	"cubic/internal/render"
	"cubic/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

func TestWorkerPoolBuildsModels(t *testing.T) {
	pool := NewWorkerPool(3, 8)
	defer pool.Shutdown()

	w := world.New()
	world.Populate(w, world.NewFlatGenerator(4), 1, 1)
	cam := render.Camera{Position: mgl32.Vec3{8, 30, 8}, Front: mgl32.Vec3{0, -1, 0}}

	positions := w.Positions()
	results := make(chan ModelResult, len(positions))
	for i, pos := range positions {
		job := ModelJob{
			Pos:        pos,
			Chunk:      w.Chunk(pos),
			Connected:  w.Connected(pos),
			Camera:     cam,
			Index:      i,
			ResultChan: results,
		}
		if err := pool.SubmitBlocking(context.Background(), job); err != nil {
			t.Fatalf("SubmitBlocking: %v", err)
		}
	}

	got := make([]ModelResult, len(positions))
	for range positions {
		select {
		case r := <-results:
			got[r.Index] = r
		case <-time.After(5 * time.Second):
			t.Fatal("timed out waiting for results")
		}
	}

	for i, pos := range positions {
		if got[i].Pos != pos {
			t.Fatalf("result %d pos = %v, want %v", i, got[i].Pos, pos)
		}
		want := BuildModel(ModelJob{Pos: pos, Chunk: w.Chunk(pos), Connected: w.Connected(pos), Camera: cam})
		if got[i].Model.FaceCount() != want.Model.FaceCount() {
			t.Errorf("chunk %v: pool built %d faces, direct build %d", pos, got[i].Model.FaceCount(), want.Model.FaceCount())
		}
	}
}

func TestBuildModelCulled(t *testing.T) {
	cam := render.Camera{Position: mgl32.Vec3{0, 8, 0}, Front: mgl32.Vec3{1, 0, 0}}
	res := BuildModel(ModelJob{Pos: world.ChunkPos{X: -10}, Chunk: world.EmptyChunk(), Camera: cam})
	if !res.Culled || res.Model.Allocated() {
		t.Fatalf("chunk behind the camera not culled: %+v", res)
	}
}

func TestSubmitBlockingCancelled(t *testing.T) {
	pool := NewWorkerPool(1, 0)
	pool.Shutdown()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := pool.SubmitBlocking(ctx, ModelJob{}); err == nil {
		t.Fatal("SubmitBlocking on a stopped pool should fail")
	}
}

func TestSubmitQueueFull(t *testing.T) {
	pool := NewWorkerPool(1, 1)
	pool.Shutdown()

	if !pool.Submit(ModelJob{}) {
		t.Fatal("first job should fit the queue")
	}
	if pool.Submit(ModelJob{}) {
		t.Fatal("second job should not fit a full queue")
	}
	if pool.QueueLength() != 1 {
		t.Errorf("QueueLength = %d, want 1", pool.QueueLength())
	}
}
