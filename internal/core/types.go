package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim is the contract the terminal driver and the GUI run against. Seed
// resets the board; Step commits one generation.
type Sim interface {
	Name() string
	Size() Size
	Seed(count int) error
	Step()
	Board() *Grid
	Generation() int
}
