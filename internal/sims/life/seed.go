package life

import "github.com/cruzec/conways-game-of-life/internal/core"

// Seed count bounds accepted by Life.Seed.
const (
	MinSeedCount = 1
	MaxSeedCount = 100
)

// Offset is a cell position relative to a pattern anchor.
type Offset struct {
	Row, Col int
}

// Pattern is a set of live cells stamped relative to an anchor.
type Pattern struct {
	Name  string
	Cells []Offset
}

// Sweep is the row-major anchor scan used to place one pattern family.
type Sweep struct {
	RowStep int
	ColStep int
}

// Glider travels one cell down and right every four generations.
var Glider = Pattern{
	Name:  "glider",
	Cells: []Offset{{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}},
}

// Block is a 2x2 still life, stamped six rows below its anchor.
var Block = Pattern{
	Name:  "block",
	Cells: []Offset{{6, 1}, {6, 2}, {7, 1}, {7, 2}},
}

var (
	gliderSweep = Sweep{RowStep: 10, ColStep: 6}
	blockSweep  = Sweep{RowStep: 8, ColStep: 5}
)

// Placement reports how many patterns of each family were stamped.
type Placement struct {
	Gliders int
	Blocks  int
}

// Stamp marks the pattern alive at the anchor, wrapping at the edges.
func Stamp(g *core.Grid, p Pattern, row, col int) {
	for _, off := range p.Cells {
		g.Set(row+off.Row, col+off.Col, true)
	}
}

// stampSweep places up to count copies of p at the sweep anchors in row-major
// order and returns how many were placed. Anchors themselves never wrap; only
// the stamped cells do.
func stampSweep(g *core.Grid, p Pattern, s Sweep, count int) int {
	placed := 0
	for row := 0; row < core.Rows; row += s.RowStep {
		if placed == count {
			break
		}
		for col := 0; col < core.Columns; col += s.ColStep {
			Stamp(g, p, row, col)
			placed++
			if placed == count {
				break
			}
		}
	}
	return placed
}

// Populate clears g and stamps count gliders followed by count blocks. The
// two families are placed independently and may overlap.
func Populate(g *core.Grid, count int) Placement {
	g.Clear()
	return Placement{
		Gliders: stampSweep(g, Glider, gliderSweep, count),
		Blocks:  stampSweep(g, Block, blockSweep, count),
	}
}
