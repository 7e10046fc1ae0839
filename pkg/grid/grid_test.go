package grid

import (
	"errors"
	"testing"
)

func mustGrid(t *testing.T, rows, cols int) *Grid {
	t.Helper()
	g, err := New(rows, cols)
	if err != nil {
		t.Fatalf("New(%d, %d): %v", rows, cols, err)
	}
	return g
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		rows    int
		cols    int
		wantErr bool
	}{
		{name: "Square", rows: 5, cols: 5},
		{name: "Rectangular", rows: 3, cols: 7},
		{name: "SingleCell", rows: 1, cols: 1},
		{name: "ZeroRows", rows: 0, cols: 5, wantErr: true},
		{name: "ZeroCols", rows: 5, cols: 0, wantErr: true},
		{name: "NegativeRows", rows: -1, cols: 5, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := New(tt.rows, tt.cols)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidDimension) {
					t.Fatalf("New(%d, %d) err = %v, want ErrInvalidDimension", tt.rows, tt.cols, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("New(%d, %d): %v", tt.rows, tt.cols, err)
			}
			if g.Rows() != tt.rows || g.Cols() != tt.cols {
				t.Errorf("dimensions = %dx%d, want %dx%d", g.Rows(), g.Cols(), tt.rows, tt.cols)
			}
			if g.Cells() != tt.rows*tt.cols {
				t.Errorf("Cells() = %d, want %d", g.Cells(), tt.rows*tt.cols)
			}
			if n := g.LinkCount(); n != 0 {
				t.Errorf("fresh grid has %d links, want 0", n)
			}
		})
	}
}

func TestIndexCoordsRoundTrip(t *testing.T) {
	g := mustGrid(t, 5, 6)

	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			c, err := g.Index(row, col)
			if err != nil {
				t.Fatalf("Index(%d, %d): %v", row, col, err)
			}
			if want := Cell(row*g.Cols() + col); c != want {
				t.Errorf("Index(%d, %d) = %d, want %d", row, col, c, want)
			}
			r2, c2, err := g.Coords(c)
			if err != nil {
				t.Fatalf("Coords(%d): %v", c, err)
			}
			if r2 != row || c2 != col {
				t.Errorf("Coords(%d) = (%d, %d), want (%d, %d)", c, r2, c2, row, col)
			}
		}
	}

	if _, err := g.Index(5, 0); !errors.Is(err, ErrInvalidCell) {
		t.Errorf("Index(5, 0) err = %v, want ErrInvalidCell", err)
	}
	if _, err := g.Index(0, -1); !errors.Is(err, ErrInvalidCell) {
		t.Errorf("Index(0, -1) err = %v, want ErrInvalidCell", err)
	}
	if _, _, err := g.Coords(Cell(g.Cells())); !errors.Is(err, ErrInvalidCell) {
		t.Errorf("Coords(out of range) err = %v, want ErrInvalidCell", err)
	}
}

func TestNeighbors(t *testing.T) {
	g := mustGrid(t, 5, 6)

	for c := Cell(0); int(c) < g.Cells(); c++ {
		neighbors, err := g.Neighbors(c)
		if err != nil {
			t.Fatalf("Neighbors(%d): %v", c, err)
		}
		if len(neighbors) < 2 || len(neighbors) > 4 {
			t.Errorf("cell %d has %d neighbors, want 2..4", c, len(neighbors))
		}
		for _, n := range neighbors {
			if !g.Contains(n) {
				t.Errorf("neighbor %d of cell %d out of bounds", n, c)
			}
			if n == c {
				t.Errorf("cell %d is its own neighbor", c)
			}
			// Symmetry: the relation must hold both ways.
			back, err := g.Neighbors(n)
			if err != nil {
				t.Fatalf("Neighbors(%d): %v", n, err)
			}
			if !containsCell(back, c) {
				t.Errorf("cell %d in Neighbors(%d) but not vice versa", n, c)
			}
		}
	}

	// Corner and interior counts.
	if n, _ := g.Neighbors(0); len(n) != 2 {
		t.Errorf("corner cell has %d neighbors, want 2", len(n))
	}
	mid, _ := g.Index(2, 3)
	if n, _ := g.Neighbors(mid); len(n) != 4 {
		t.Errorf("interior cell has %d neighbors, want 4", len(n))
	}

	if _, err := g.Neighbors(-1); !errors.Is(err, ErrInvalidCell) {
		t.Errorf("Neighbors(-1) err = %v, want ErrInvalidCell", err)
	}
}

func TestCellTo(t *testing.T) {
	g := mustGrid(t, 3, 3)

	center, _ := g.Index(1, 1)
	for _, d := range Directions {
		n, ok, err := g.CellTo(center, d)
		if err != nil || !ok {
			t.Fatalf("CellTo(center, %s) = (%d, %v, %v)", d, n, ok, err)
		}
		back, ok, err := g.CellTo(n, d.Opposite())
		if err != nil || !ok || back != center {
			t.Errorf("CellTo(%d, %s) = (%d, %v, %v), want center", n, d.Opposite(), back, ok, err)
		}
	}

	// Boundary cells have no neighbor off the edge.
	if _, ok, err := g.CellTo(0, North); ok || err != nil {
		t.Errorf("CellTo(0, north) ok = %v, err = %v; want no neighbor", ok, err)
	}
	if _, ok, err := g.CellTo(0, West); ok || err != nil {
		t.Errorf("CellTo(0, west) ok = %v, err = %v; want no neighbor", ok, err)
	}
	if _, _, err := g.CellTo(Cell(9), North); !errors.Is(err, ErrInvalidCell) {
		t.Errorf("CellTo(out of range) err = %v, want ErrInvalidCell", err)
	}
}

func TestLinkUnlink(t *testing.T) {
	g := mustGrid(t, 5, 6)

	for c := Cell(0); int(c) < g.Cells(); c++ {
		east, ok, _ := g.CellTo(c, East)
		if !ok {
			continue
		}
		if err := g.Link(c, east); err != nil {
			t.Fatalf("Link(%d, %d): %v", c, east, err)
		}
		if linked, _ := g.Linked(c, east); !linked {
			t.Errorf("Linked(%d, %d) = false after Link", c, east)
		}
		if linked, _ := g.Linked(east, c); !linked {
			t.Errorf("Linked(%d, %d) = false, link must be symmetric", east, c)
		}

		// Idempotent: relinking changes nothing.
		if err := g.Link(c, east); err != nil {
			t.Fatalf("second Link(%d, %d): %v", c, east, err)
		}

		if err := g.Unlink(c, east); err != nil {
			t.Fatalf("Unlink(%d, %d): %v", c, east, err)
		}
		if linked, _ := g.Linked(c, east); linked {
			t.Errorf("Linked(%d, %d) = true after Unlink", c, east)
		}
		if linked, _ := g.Linked(east, c); linked {
			t.Errorf("Linked(%d, %d) = true after Unlink", east, c)
		}
	}
}

func TestLinkNotAdjacent(t *testing.T) {
	g := mustGrid(t, 5, 6)

	a, _ := g.Index(0, 0)
	tests := []struct {
		name string
		b    Cell
	}{
		{name: "Diagonal", b: mustIndex(t, g, 1, 1)},
		{name: "SameRowFar", b: mustIndex(t, g, 0, 2)},
		{name: "Self", b: a},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := g.Link(a, tt.b); !errors.Is(err, ErrNotAdjacent) {
				t.Fatalf("Link err = %v, want ErrNotAdjacent", err)
			}
			if err := g.Unlink(a, tt.b); !errors.Is(err, ErrNotAdjacent) {
				t.Fatalf("Unlink err = %v, want ErrNotAdjacent", err)
			}
			if n := g.LinkCount(); n != 0 {
				t.Errorf("failed Link mutated state: %d links", n)
			}
		})
	}

	if err := g.Link(a, Cell(99)); !errors.Is(err, ErrInvalidCell) {
		t.Errorf("Link to out-of-range cell err = %v, want ErrInvalidCell", err)
	}
}

func TestLinksAndClear(t *testing.T) {
	g := mustGrid(t, 3, 3)
	center, _ := g.Index(1, 1)

	neighbors, _ := g.Neighbors(center)
	for _, n := range neighbors {
		if err := g.Link(center, n); err != nil {
			t.Fatalf("Link(%d, %d): %v", center, n, err)
		}
	}

	links, err := g.Links(center)
	if err != nil {
		t.Fatalf("Links(%d): %v", center, err)
	}
	if len(links) != 4 {
		t.Fatalf("Links(center) has %d cells, want 4", len(links))
	}
	for _, n := range links {
		if !containsCell(neighbors, n) {
			t.Errorf("Links returned non-neighbor %d", n)
		}
	}

	g.Clear()
	if n := g.LinkCount(); n != 0 {
		t.Errorf("LinkCount() = %d after Clear, want 0", n)
	}
	if g.Rows() != 3 || g.Cols() != 3 {
		t.Errorf("Clear changed dimensions to %dx%d", g.Rows(), g.Cols())
	}
}

func TestLinkedTo(t *testing.T) {
	g := mustGrid(t, 3, 3)
	center, _ := g.Index(1, 1)
	north, _, _ := g.CellTo(center, North)
	if err := g.Link(center, north); err != nil {
		t.Fatal(err)
	}

	for _, d := range Directions {
		got, err := g.LinkedTo(center, d)
		if err != nil {
			t.Fatalf("LinkedTo(center, %s): %v", d, err)
		}
		if want := d == North; got != want {
			t.Errorf("LinkedTo(center, %s) = %v, want %v", d, got, want)
		}
	}

	// No neighbor in that direction means not linked, not an error.
	if got, err := g.LinkedTo(0, North); got || err != nil {
		t.Errorf("LinkedTo(0, north) = (%v, %v), want (false, nil)", got, err)
	}
	if _, err := g.LinkedTo(Cell(9), North); !errors.Is(err, ErrInvalidCell) {
		t.Errorf("LinkedTo(out of range) err = %v, want ErrInvalidCell", err)
	}
}

func TestDeadEnds(t *testing.T) {
	g := mustGrid(t, 2, 3)

	// Carve a corridor 0-1-2; 0 and 2 become dead ends, 3..5 stay isolated.
	if err := g.Link(0, 1); err != nil {
		t.Fatal(err)
	}
	if err := g.Link(1, 2); err != nil {
		t.Fatal(err)
	}

	got := g.DeadEnds()
	want := []Cell{0, 2}
	if len(got) != len(want) {
		t.Fatalf("DeadEnds() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("DeadEnds() = %v, want %v", got, want)
		}
	}
}

func TestDirectionParse(t *testing.T) {
	for _, d := range Directions {
		parsed, err := ParseDirection(d.String())
		if err != nil {
			t.Fatalf("ParseDirection(%q): %v", d.String(), err)
		}
		if parsed != d {
			t.Errorf("ParseDirection(%q) = %v, want %v", d.String(), parsed, d)
		}
		if d.Opposite().Opposite() != d {
			t.Errorf("%v.Opposite().Opposite() != %v", d, d)
		}
	}
	if _, err := ParseDirection("up"); !errors.Is(err, ErrInvalidDirection) {
		t.Errorf("ParseDirection(up) err = %v, want ErrInvalidDirection", err)
	}
}

func mustIndex(t *testing.T, g *Grid, row, col int) Cell {
	t.Helper()
	c, err := g.Index(row, col)
	if err != nil {
		t.Fatalf("Index(%d, %d): %v", row, col, err)
	}
	return c
}

func containsCell(cells []Cell, c Cell) bool {
	for _, x := range cells {
		if x == c {
			return true
		}
	}
	return false
}
