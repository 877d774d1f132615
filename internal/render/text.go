package render

import (
	"bufio"
	"io"
	"strings"

	"github.com/cruzec/conways-game-of-life/internal/core"
)

// Glyphs used by the text renderer.
const (
	AliveGlyph = '*'
	DeadGlyph  = ' '
)

// WriteText writes one line per row, '*' for live cells and a space for dead
// ones, each row terminated by a newline.
func WriteText(w io.Writer, g *core.Grid) error {
	bw := bufio.NewWriterSize(w, core.Rows*(core.Columns+1))
	for r := 0; r < core.Rows; r++ {
		for _, alive := range g.Row(r) {
			glyph := byte(DeadGlyph)
			if alive {
				glyph = AliveGlyph
			}
			bw.WriteByte(glyph)
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// Text returns the rendering of g as a string.
func Text(g *core.Grid) string {
	var sb strings.Builder
	sb.Grow(core.Rows * (core.Columns + 1))
	_ = WriteText(&sb, g)
	return sb.String()
}
