package render

import (
	"image/color"
	"testing"

	"github.com/cruzec/conways-game-of-life/internal/core"
)

func TestFillGridRGBA(t *testing.T) {
	var g core.Grid
	g.Set(1, 2, true)

	buf := make([]byte, 4*core.Rows*core.Columns)
	on := color.RGBA{R: 10, G: 20, B: 30, A: 255}
	fillGridRGBA(buf, &g, on, color.Black)

	live := (1*core.Columns + 2) * 4
	if buf[live] != 10 || buf[live+1] != 20 || buf[live+2] != 30 || buf[live+3] != 255 {
		t.Fatalf("live pixel = %v, want on colour", buf[live:live+4])
	}
	if buf[0] != 0 || buf[3] != 255 {
		t.Fatalf("dead pixel = %v, want opaque black", buf[0:4])
	}
}
