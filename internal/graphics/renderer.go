package graphics

import (
	"unsafe"

	"cubic/internal/meshing"
	"cubic/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	WinWidth  = 1280
	WinHeight = 720
)

var SkyColor = mgl32.Vec3{0.53, 0.81, 0.92}

// batchBuffers holds the GL objects for one uploaded batch.
type batchBuffers struct {
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
	texture    uint32
}

// Renderer draws frame batches, one DrawElements call per batch. Buffers
// are kept between frames and refilled in place.
type Renderer struct {
	mainShader *Shader
	camera     *Camera
	fogEnd     float32

	batches []batchBuffers
	active  int
}

func NewRenderer(width, height int) (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, err
	}

	gl.Enable(gl.DEPTH_TEST)
	// Faces arrive already filtered to those turned towards the camera and
	// their winding varies by side, so face culling stays off.
	gl.Disable(gl.CULL_FACE)

	mainShader, err := NewShaderFromSource(chunkVertexShader, chunkFragmentShader)
	if err != nil {
		return nil, err
	}

	return &Renderer{
		mainShader: mainShader,
		camera:     NewCamera(width, height),
		fogEnd:     160,
	}, nil
}

// Camera returns the projection settings.
func (r *Renderer) Camera() *Camera { return r.camera }

// SetFogDistance sets the distance at which geometry fully fades to sky.
func (r *Renderer) SetFogDistance(d float32) { r.fogEnd = d }

func (r *Renderer) newBatchBuffers() batchBuffers {
	var b batchBuffers
	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)

	gl.GenBuffers(1, &b.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.GenBuffers(1, &b.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.ebo)

	var v meshing.Vertex
	stride := int32(unsafe.Sizeof(v))
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, unsafe.Offsetof(v.Position))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, unsafe.Offsetof(v.UV))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(2, 4, gl.UNSIGNED_BYTE, true, stride, unsafe.Offsetof(v.Color))
	gl.EnableVertexAttribArray(3)
	gl.VertexAttribPointerWithOffset(3, 3, gl.FLOAT, false, stride, unsafe.Offsetof(v.Normal))

	gl.BindVertexArray(0)
	return b
}

// Upload replaces the geometry drawn by Render. A batch's Texture must be a
// GL texture name (uint32); anything else draws with texture 0.
func (r *Renderer) Upload(batches []meshing.Batch) {
	defer profiling.Track("graphics.Upload")()

	for len(r.batches) < len(batches) {
		r.batches = append(r.batches, r.newBatchBuffers())
	}
	var v meshing.Vertex
	vsize := int(unsafe.Sizeof(v))
	for i := range batches {
		src := &batches[i]
		dst := &r.batches[i]
		dst.indexCount = int32(len(src.Indices))
		dst.texture, _ = src.Texture.(uint32)
		if len(src.Vertices) == 0 {
			continue
		}

		gl.BindVertexArray(dst.vao)
		gl.BindBuffer(gl.ARRAY_BUFFER, dst.vbo)
		gl.BufferData(gl.ARRAY_BUFFER, len(src.Vertices)*vsize, gl.Ptr(&src.Vertices[0]), gl.DYNAMIC_DRAW)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(src.Indices)*2, gl.Ptr(&src.Indices[0]), gl.DYNAMIC_DRAW)
	}
	gl.BindVertexArray(0)
	r.active = len(batches)
}

// Render clears the screen and draws the uploaded batches.
func (r *Renderer) Render(view mgl32.Mat4) {
	defer profiling.Track("graphics.Render")()

	gl.ClearColor(SkyColor.X(), SkyColor.Y(), SkyColor.Z(), 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	projection := r.camera.GetProjectionMatrix()
	r.mainShader.Use()
	r.mainShader.SetMatrix4("view", &view[0])
	r.mainShader.SetMatrix4("projection", &projection[0])
	r.mainShader.SetVector3("skyColor", SkyColor.X(), SkyColor.Y(), SkyColor.Z())
	r.mainShader.SetFloat("fogEnd", r.fogEnd)
	r.mainShader.SetInt("atlas", 0)

	gl.ActiveTexture(gl.TEXTURE0)
	for i := range r.active {
		b := &r.batches[i]
		if b.indexCount == 0 {
			continue
		}
		gl.BindTexture(gl.TEXTURE_2D, b.texture)
		gl.BindVertexArray(b.vao)
		gl.DrawElements(gl.TRIANGLES, b.indexCount, gl.UNSIGNED_SHORT, nil)
	}
	gl.BindVertexArray(0)
	profiling.Count("graphics.drawCalls", r.active)
}

// Delete frees all GL objects.
func (r *Renderer) Delete() {
	for _, b := range r.batches {
		gl.DeleteVertexArrays(1, &b.vao)
		gl.DeleteBuffers(1, &b.vbo)
		gl.DeleteBuffers(1, &b.ebo)
	}
	r.batches = nil
	r.active = 0
	r.mainShader.Delete()
}
