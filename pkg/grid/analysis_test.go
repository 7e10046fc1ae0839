package grid

import (
	"errors"
	"testing"
)

// corridorGrid carves a single west-east corridor through row 0 and a
// single stem down column 0, producing a known tree:
//
//	0-1-2-3
//	|
//	4
//	|
//	8
func corridorGrid(t *testing.T) *Grid {
	t.Helper()
	g := mustGrid(t, 3, 4)
	pairs := [][2]Cell{{0, 1}, {1, 2}, {2, 3}, {0, 4}, {4, 8}}
	for _, p := range pairs {
		if err := g.Link(p[0], p[1]); err != nil {
			t.Fatalf("Link(%d, %d): %v", p[0], p[1], err)
		}
	}
	return g
}

func TestDistances(t *testing.T) {
	g := corridorGrid(t)

	dist, err := g.Distances(0)
	if err != nil {
		t.Fatalf("Distances(0): %v", err)
	}

	want := map[Cell]int{0: 0, 1: 1, 2: 2, 3: 3, 4: 1, 8: 2}
	if len(dist) != len(want) {
		t.Fatalf("Distances covers %d cells, want %d (unreachable cells must be absent)", len(dist), len(want))
	}
	for c, d := range want {
		if dist[c] != d {
			t.Errorf("dist[%d] = %d, want %d", c, dist[c], d)
		}
	}

	// Cells off the tree are absent, not zero.
	if _, ok := dist[5]; ok {
		t.Error("unreachable cell 5 present in distance map")
	}

	if _, err := g.Distances(Cell(99)); !errors.Is(err, ErrInvalidCell) {
		t.Errorf("Distances(out of range) err = %v, want ErrInvalidCell", err)
	}
}

func TestShortestPath(t *testing.T) {
	g := corridorGrid(t)

	tests := []struct {
		name  string
		start Cell
		goal  Cell
		want  []Cell
	}{
		{name: "SingleCell", start: 2, goal: 2, want: []Cell{2}},
		{name: "AlongRow", start: 0, goal: 3, want: []Cell{0, 1, 2, 3}},
		{name: "AroundCorner", start: 8, goal: 1, want: []Cell{8, 4, 0, 1}},
		{name: "Unreachable", start: 0, goal: 5, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := g.ShortestPath(tt.start, tt.goal)
			if err != nil {
				t.Fatalf("ShortestPath(%d, %d): %v", tt.start, tt.goal, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("path = %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Fatalf("path = %v, want %v", got, tt.want)
				}
			}
		})
	}

	if _, err := g.ShortestPath(0, Cell(99)); !errors.Is(err, ErrInvalidCell) {
		t.Errorf("ShortestPath to out-of-range cell err = %v, want ErrInvalidCell", err)
	}
}

func TestPathLengthMatchesDistance(t *testing.T) {
	g := corridorGrid(t)
	dist, err := g.Distances(0)
	if err != nil {
		t.Fatal(err)
	}

	// On a tree the unique path length must equal the BFS distance.
	for c, d := range dist {
		path, err := g.ShortestPath(0, c)
		if err != nil {
			t.Fatalf("ShortestPath(0, %d): %v", c, err)
		}
		if len(path)-1 != d {
			t.Errorf("path 0→%d has %d edges, BFS distance is %d", c, len(path)-1, d)
		}
	}
}

func TestFarthest(t *testing.T) {
	g := corridorGrid(t)

	c, d, err := g.Farthest(0)
	if err != nil {
		t.Fatalf("Farthest(0): %v", err)
	}
	if c != 3 || d != 3 {
		t.Errorf("Farthest(0) = (%d, %d), want (3, 3)", c, d)
	}

	// From cell 3 the far end is the bottom of the stem.
	c, d, err = g.Farthest(3)
	if err != nil {
		t.Fatal(err)
	}
	if c != 8 || d != 5 {
		t.Errorf("Farthest(3) = (%d, %d), want (8, 5)", c, d)
	}
}

func TestLongestPath(t *testing.T) {
	g := corridorGrid(t)

	path := g.LongestPath()
	want := []Cell{3, 2, 1, 0, 4, 8}
	if len(path) != len(want) {
		t.Fatalf("LongestPath() = %v, want %v", path, want)
	}
	for i := range want {
		if path[i] != want[i] {
			t.Fatalf("LongestPath() = %v, want %v", path, want)
		}
	}

	// Endpoints must each be the farthest cell from the other, and the
	// path's edge count must equal their BFS distance.
	start, end := path[0], path[len(path)-1]
	far, dist, err := g.Farthest(start)
	if err != nil {
		t.Fatal(err)
	}
	if far != end {
		t.Errorf("Farthest(%d) = %d, want the other endpoint %d", start, far, end)
	}
	if len(path)-1 != dist {
		t.Errorf("longest path has %d edges, endpoint distance is %d", len(path)-1, dist)
	}
}

func TestDistancesSourceIsZero(t *testing.T) {
	g := corridorGrid(t)
	for _, src := range []Cell{0, 3, 8} {
		dist, err := g.Distances(src)
		if err != nil {
			t.Fatal(err)
		}
		if dist[src] != 0 {
			t.Errorf("dist[%d] = %d from itself, want 0", src, dist[src])
		}
	}
}
