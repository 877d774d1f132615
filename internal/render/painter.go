//go:build ebiten

package render

import (
	"image/color"

	"github.com/cruzec/conways-game-of-life/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter keeps a one-pixel-per-cell image of the board and draws it
// scaled.
type GridPainter struct {
	img *ebiten.Image
	buf []byte
}

// NewGridPainter allocates a painter for the fixed board.
func NewGridPainter() *GridPainter {
	return &GridPainter{
		img: ebiten.NewImage(core.Columns, core.Rows),
		buf: make([]byte, 4*core.Rows*core.Columns),
	}
}

// Blit uploads the grid into the painter image and draws it onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, g *core.Grid, on, off color.Color, scale int) {
	fillGridRGBA(gp.buf, g, on, off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}
