package render

import "image/color"

// Palette holds the colors for dead and alive cells.
type Palette struct {
	Dead  color.RGBA
	Alive color.RGBA
}

// DefaultPalette is a dark board with pale live cells.
var DefaultPalette = Palette{
	Dead:  color.RGBA{R: 18, G: 18, B: 24, A: 255},
	Alive: color.RGBA{R: 236, G: 232, B: 214, A: 255},
}

// FillRGBA writes four bytes per cell into buf. buf must hold 4*len(cells) bytes.
func FillRGBA(buf []byte, cells []uint8, p Palette) {
	for i, c := range cells {
		col := p.Dead
		if c != 0 {
			col = p.Alive
		}
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
