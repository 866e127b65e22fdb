package render

import "image/color"

// CellColors is the base colour of each atlas cell, indexed by cell number.
var CellColors = []color.RGBA{
	{0x86, 0x60, 0x43, 0xff}, // dirt
	{0x6f, 0x8a, 0x3c, 0xff}, // grass side
	{0x5d, 0xa1, 0x30, 0xff}, // grass top
	{0x80, 0x80, 0x80, 0xff}, // stone
	{0xdb, 0xcf, 0x8e, 0xff}, // sand
}

// CellOf returns the atlas cell a v coordinate falls in.
func CellOf(v float32) int {
	return int(v/CellHeight + 0.0001)
}
