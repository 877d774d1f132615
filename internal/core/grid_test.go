package core

import "testing"

func TestWrap(t *testing.T) {
	var g Grid
	cases := []struct {
		row, col   int
		wantRow    int
		wantColumn int
	}{
		{0, 0, 0, 0},
		{-1, -1, Rows - 1, Columns - 1},
		{Rows, Columns, 0, 0},
		{Rows + 3, -Columns - 2, 3, Columns - 2},
	}
	for _, tc := range cases {
		r, c := g.Wrap(tc.row, tc.col)
		if r != tc.wantRow || c != tc.wantColumn {
			t.Fatalf("Wrap(%d,%d) = (%d,%d), want (%d,%d)", tc.row, tc.col, r, c, tc.wantRow, tc.wantColumn)
		}
	}
}

func TestSetAliveWraps(t *testing.T) {
	var g Grid
	g.Set(-1, Columns, true)
	if !g.Alive(Rows-1, 0) {
		t.Fatal("Set(-1, Columns) should land on (Rows-1, 0)")
	}
	if g.Population() != 1 {
		t.Fatalf("population = %d, want 1", g.Population())
	}
	g.Set(Rows-1, 0, false)
	if g.Population() != 0 {
		t.Fatalf("population after clearing cell = %d, want 0", g.Population())
	}
}

func TestCopyFromAndEqual(t *testing.T) {
	var src, dst Grid
	src.Set(3, 4, true)
	src.Set(10, 79, true)
	if dst.Equal(&src) {
		t.Fatal("empty grid should differ from populated grid")
	}
	dst.CopyFrom(&src)
	if !dst.Equal(&src) {
		t.Fatal("grids should be equal after CopyFrom")
	}
	src.Set(3, 4, false)
	if !dst.Alive(3, 4) {
		t.Fatal("CopyFrom must not alias the source cells")
	}
	dst.Clear()
	if dst.Population() != 0 {
		t.Fatalf("population after Clear = %d, want 0", dst.Population())
	}
}

func TestSize(t *testing.T) {
	var g Grid
	if s := g.Size(); s.W != Columns || s.H != Rows {
		t.Fatalf("Size() = %+v, want %dx%d", s, Columns, Rows)
	}
}
