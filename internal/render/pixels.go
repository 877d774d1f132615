package render

import (
	"image/color"

	"github.com/cruzec/conways-game-of-life/internal/core"
)

// fillGridRGBA converts the grid into row-major RGBA pixels in buf, one pixel
// per cell. buf must hold 4*Rows*Columns bytes.
func fillGridRGBA(buf []byte, g *core.Grid, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for r := 0; r < core.Rows; r++ {
		for c, alive := range g.Row(r) {
			base := (r*core.Columns + c) * 4
			if alive {
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
}
