// Package preview draws mesh batches into an image without a GPU, for
// inspecting frames from headless tools and tests.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"slices"

	"cubic/internal/meshing"
	"cubic/internal/render"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

type Options struct {
	Width  int
	Height int
	// FovY is the vertical field of view in degrees.
	FovY    float32
	Caption string
}

var (
	Sky          = color.RGBA{0x87, 0xce, 0xeb, 0xff}
	unknownColor = color.RGBA{0xff, 0x00, 0xff, 0xff}
)

const near, far = 0.1, 1000

type face struct {
	pts   [4]mgl32.Vec2
	tris  [6]uint16
	depth float32
	col   color.RGBA
}

// shade darkens a colour by face orientation so adjacent faces stay apart.
func shade(c color.RGBA, n mgl32.Vec3) color.RGBA {
	k := float32(0.8)
	switch {
	case n.Y() > 0.5:
		k = 1
	case n.Y() < -0.5:
		k = 0.5
	case n.X() != 0:
		k = 0.7
	}
	return color.RGBA{uint8(float32(c.R) * k), uint8(float32(c.G) * k), uint8(float32(c.B) * k), c.A}
}

func colorOf(v meshing.Vertex) color.RGBA {
	cell := render.CellOf(v.UV.Y())
	if cell < 0 || cell >= len(render.CellColors) {
		return unknownColor
	}
	return render.CellColors[cell]
}

func viewMatrix(cam render.Camera) mgl32.Mat4 {
	front := cam.Front
	if front.Len() == 0 {
		front = mgl32.Vec3{0, 0, -1}
	}
	up := mgl32.Vec3{0, 1, 0}
	if front.Normalize().Cross(up).Len() < 1e-4 {
		up = mgl32.Vec3{0, 0, -1}
	}
	return mgl32.LookAtV(cam.Position, cam.Position.Add(front), up)
}

// Render draws the batches as seen from cam, far faces first. It returns the
// image and the number of faces drawn.
func Render(batches []meshing.Batch, cam render.Camera, opts Options) (*image.RGBA, int) {
	if opts.FovY == 0 {
		opts.FovY = 70
	}
	w, h := opts.Width, opts.Height
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(Sky), image.Point{}, draw.Src)

	view := viewMatrix(cam)
	mvp := mgl32.Perspective(mgl32.DegToRad(opts.FovY), float32(w)/float32(h), near, far).Mul4(view)

	var faces []face
	for _, b := range batches {
	quads:
		for q := 0; q+3 < len(b.Vertices); q += 4 {
			var f face
			for i := range 4 {
				v := b.Vertices[q+i]
				clip := mvp.Mul4x1(v.Position.Vec4(1))
				if clip.W() < near {
					continue quads
				}
				ndc := clip.Vec3().Mul(1 / clip.W())
				f.pts[i] = mgl32.Vec2{(ndc.X() + 1) / 2 * float32(w), (1 - ndc.Y()) / 2 * float32(h)}
				f.depth += view.Mul4x1(v.Position.Vec4(1)).Z() / 4
			}
			copy(f.tris[:], b.Indices[q/4*6:q/4*6+6])
			base := uint16(q)
			for i := range f.tris {
				f.tris[i] -= base
			}
			f.col = shade(colorOf(b.Vertices[q]), b.Vertices[q].Normal)
			faces = append(faces, f)
		}
	}

	// View space looks down -z: more negative depth is farther.
	slices.SortStableFunc(faces, func(a, b face) int {
		switch {
		case a.depth < b.depth:
			return -1
		case a.depth > b.depth:
			return 1
		}
		return 0
	})

	z := vector.NewRasterizer(w, h)
	for _, f := range faces {
		z.Reset(w, h)
		for t := 0; t < 6; t += 3 {
			a, b, c := f.pts[f.tris[t]], f.pts[f.tris[t+1]], f.pts[f.tris[t+2]]
			z.MoveTo(a.X(), a.Y())
			z.LineTo(b.X(), b.Y())
			z.LineTo(c.X(), c.Y())
			z.ClosePath()
		}
		z.Draw(img, img.Bounds(), image.NewUniform(f.col), image.Point{})
	}

	if opts.Caption != "" {
		d := font.Drawer{
			Dst:  img,
			Src:  image.White,
			Face: basicfont.Face7x13,
			Dot:  fixed.P(4, 14),
		}
		d.DrawString(opts.Caption)
	}
	return img, len(faces)
}

// WritePNG encodes img to path.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create preview: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode preview: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close preview: %w", err)
	}
	return nil
}
