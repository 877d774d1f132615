package core

// Board dimensions. They never change for the lifetime of the process.
const (
	Rows    = 22
	Columns = 80
)

// Grid stores the alive/dead state of every cell on the toroidal board.
// The zero value is an all-dead grid.
type Grid struct {
	cells [Rows][Columns]bool
}

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: Columns, H: Rows} }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(row, col int) (int, int) {
	row = (row%Rows + Rows) % Rows
	col = (col%Columns + Columns) % Columns
	return row, col
}

// Alive reports whether the cell at (row, col) is alive. Coordinates wrap.
func (g *Grid) Alive(row, col int) bool {
	row, col = g.Wrap(row, col)
	return g.cells[row][col]
}

// Set marks the cell at (row, col) alive or dead. Coordinates wrap.
func (g *Grid) Set(row, col int, alive bool) {
	row, col = g.Wrap(row, col)
	g.cells[row][col] = alive
}

// Clear marks every cell dead.
func (g *Grid) Clear() {
	g.cells = [Rows][Columns]bool{}
}

// CopyFrom overwrites g with the contents of src.
func (g *Grid) CopyFrom(src *Grid) {
	g.cells = src.cells
}

// Equal reports whether both grids hold the same cell states.
func (g *Grid) Equal(other *Grid) bool {
	return g.cells == other.cells
}

// Population counts the live cells.
func (g *Grid) Population() int {
	n := 0
	for r := range g.cells {
		for _, alive := range g.cells[r] {
			if alive {
				n++
			}
		}
	}
	return n
}

// Row exposes a read-only copy of a single row.
func (g *Grid) Row(row int) [Columns]bool {
	row, _ = g.Wrap(row, 0)
	return g.cells[row]
}
