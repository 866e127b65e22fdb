package render

import (
	"image"
	"image/color"
)

// AtlasCells is the number of cells the atlas strip holds.
const AtlasCells = int(1 / CellHeight)

// AtlasImage paints the texture atlas: a strip one cell wide and AtlasCells
// cells tall, each cell cellPx square. Cells without a colour stay
// transparent.
func AtlasImage(cellPx int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, cellPx, cellPx*AtlasCells))
	for n, base := range CellColors {
		for y := range cellPx {
			for x := range cellPx {
				img.SetRGBA(x, n*cellPx+y, grain(base, n, x, y))
			}
		}
	}
	// Grass side: a band of the top colour along the upper edge.
	side := TexGrassSide.Cell()
	top := CellColors[TexGrassTop.Cell()]
	for y := range max(1, cellPx/4) {
		for x := range cellPx {
			img.SetRGBA(x, side*cellPx+y, grain(top, side, x, y))
		}
	}
	return img
}

// grain varies a colour per pixel so flat faces read as textured.
func grain(c color.RGBA, n, x, y int) color.RGBA {
	h := uint32(n*73856093) ^ uint32(x*19349663) ^ uint32(y*83492791)
	h ^= h >> 13
	h *= 0x5bd1e995
	h ^= h >> 15
	d := int(h%25) - 12
	return color.RGBA{clampByte(int(c.R) + d), clampByte(int(c.G) + d), clampByte(int(c.B) + d), c.A}
}

func clampByte(v int) uint8 {
	return uint8(max(0, min(255, v)))
}
