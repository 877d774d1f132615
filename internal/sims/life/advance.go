package life

import "github.com/cruzec/conways-game-of-life/internal/core"

// Neighbors counts the live cells among the eight toroidal neighbours of
// (row, col).
func Neighbors(g *core.Grid, row, col int) int {
	n := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			if g.Alive(row+dr, col+dc) {
				n++
			}
		}
	}
	return n
}

// nextState applies the four Conway rules to a single cell.
func nextState(alive bool, neighbors int) bool {
	switch {
	case alive && neighbors < 2:
		return false
	case alive && (neighbors == 2 || neighbors == 3):
		return true
	case alive && neighbors > 3:
		return false
	case !alive && neighbors == 3:
		return true
	}
	return alive
}

// Advance computes the generation that follows snapshot. The snapshot is only
// read, never written.
func Advance(snapshot *core.Grid) core.Grid {
	var next core.Grid
	for r := 0; r < core.Rows; r++ {
		for c := 0; c < core.Columns; c++ {
			next.Set(r, c, nextState(snapshot.Alive(r, c), Neighbors(snapshot, r, c)))
		}
	}
	return next
}
