package render

import (
	"image/color"

	"conway/pkg/life"
)

// fillGridRGBA converts a grid into RGBA pixels in buf, one pixel per cell in
// row-major order. buf must hold at least 4*width*height bytes.
func fillGridRGBA(buf []byte, grid *life.Grid, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	i := 0
	for p := range grid.Size().Positions() {
		base := i * 4
		i++
		if grid.Cell(p).IsAlive() {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}
