package graphics

import (
	"image"
	"image/draw"

	"github.com/go-gl/gl/v4.1-core/gl"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// TextOverlay draws a single line of status text in the top-left corner.
// The line is rasterised on the CPU with the built-in bitmap face and
// uploaded only when it changes.
type TextOverlay struct {
	shader  *Shader
	vao     uint32
	vbo     uint32
	texture uint32

	text   string
	width  int
	height int
	scale  float32
}

const overlayPadding = 4

func NewTextOverlay(scale float32) (*TextOverlay, error) {
	shader, err := NewShaderFromSource(overlayVertexShader, overlayFragmentShader)
	if err != nil {
		return nil, err
	}
	o := &TextOverlay{shader: shader, scale: scale}

	gl.GenVertexArrays(1, &o.vao)
	gl.BindVertexArray(o.vao)
	gl.GenBuffers(1, &o.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, o.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, 6*4*4, nil, gl.DYNAMIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 4*4, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, 4*4, 2*4)
	gl.BindVertexArray(0)

	o.texture = UploadTexture(image.NewRGBA(image.Rect(0, 0, 1, 1)))
	return o, nil
}

// RenderText rasterises s into an RGBA image sized to fit it.
func RenderText(s string) *image.RGBA {
	face := basicfont.Face7x13
	d := font.Drawer{Face: face}
	w := d.MeasureString(s).Ceil() + 2*overlayPadding
	h := face.Metrics().Height.Ceil() + 2*overlayPadding

	img := image.NewRGBA(image.Rect(0, 0, max(w, 1), h))
	draw.Draw(img, img.Bounds(), image.Black, image.Point{}, draw.Src)
	// Translucent backing so text stays readable over bright sky.
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 0x80
	}
	d.Dst = img
	d.Src = image.White
	d.Dot = fixed.P(overlayPadding, overlayPadding+face.Metrics().Ascent.Ceil())
	d.DrawString(s)
	return img
}

// SetText changes the displayed line.
func (o *TextOverlay) SetText(s string) {
	if s == o.text {
		return
	}
	o.text = s
	img := RenderText(s)
	o.width, o.height = img.Bounds().Dx(), img.Bounds().Dy()
	UpdateTexture(o.texture, img)
}

// Draw renders the overlay for a framebuffer of the given size.
func (o *TextOverlay) Draw(fbWidth, fbHeight int) {
	if o.text == "" || fbWidth == 0 || fbHeight == 0 {
		return
	}
	x1 := -1 + 2*float32(o.width)*o.scale/float32(fbWidth)
	y1 := 1 - 2*float32(o.height)*o.scale/float32(fbHeight)
	quad := []float32{
		-1, 1, 0, 0,
		x1, 1, 1, 0,
		x1, y1, 1, 1,
		-1, 1, 0, 0,
		x1, y1, 1, 1,
		-1, y1, 0, 1,
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	o.shader.Use()
	o.shader.SetInt("text", 0)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, o.texture)
	gl.BindVertexArray(o.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, o.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(quad)*4, gl.Ptr(quad))
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.BindVertexArray(0)

	gl.Disable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)
}

func (o *TextOverlay) Delete() {
	gl.DeleteVertexArrays(1, &o.vao)
	gl.DeleteBuffers(1, &o.vbo)
	gl.DeleteTextures(1, &o.texture)
	o.shader.Delete()
}
