package life

import (
	"errors"
	"fmt"

	"github.com/cruzec/conways-game-of-life/internal/core"
)

// ErrSeedCount is returned when a seed count falls outside
// [MinSeedCount, MaxSeedCount].
var ErrSeedCount = errors.New("seed count out of range")

// Life implements Conway's Game of Life on the fixed toroidal board. The
// board is what callers see; the snapshot is the stable copy each generation
// is computed from.
type Life struct {
	board    core.Grid
	snapshot core.Grid

	count      int
	placed     Placement
	generation int
}

// New returns an empty Life simulation.
func New() *Life {
	return &Life{}
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return l.board.Size() }

// Board exposes the current generation.
func (l *Life) Board() *core.Grid { return &l.board }

// Snapshot exposes the read-source for the next generation.
func (l *Life) Snapshot() *core.Grid { return &l.snapshot }

// Generation returns the number of generations committed since seeding.
func (l *Life) Generation() int { return l.generation }

// Count returns the seed count of the last successful Seed call.
func (l *Life) Count() int { return l.count }

// Placed reports how many gliders and blocks the last Seed call stamped.
func (l *Life) Placed() Placement { return l.placed }

// Seed clears the board and stamps count gliders and count blocks.
func (l *Life) Seed(count int) error {
	if count < MinSeedCount || count > MaxSeedCount {
		return fmt.Errorf("%w: %d not in [%d,%d]", ErrSeedCount, count, MinSeedCount, MaxSeedCount)
	}
	l.count = count
	l.placed = Populate(&l.board, count)
	l.snapshot.CopyFrom(&l.board)
	l.generation = 0
	return nil
}

// Step advances the simulation by one generation and syncs the snapshot.
func (l *Life) Step() {
	l.board = Advance(&l.snapshot)
	l.snapshot.CopyFrom(&l.board)
	l.generation++
}

// Stable reports whether the next generation would equal the current one.
func (l *Life) Stable() bool {
	next := Advance(&l.snapshot)
	return next.Equal(&l.board)
}
