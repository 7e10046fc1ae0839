package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimension is returned by [New] when rows or cols is less
	// than 1. A grid always has at least one cell.
	ErrInvalidDimension = errors.New("rows and cols must be at least 1")

	// ErrInvalidCell is returned by any operation that receives a cell ID
	// or a (row, col) pair outside the grid's bounds.
	ErrInvalidCell = errors.New("cell out of bounds")

	// ErrNotAdjacent is returned by [Grid.Link] and [Grid.Unlink] when the
	// two cells are not geometric neighbors. Only adjacent cells can share
	// a passage.
	ErrNotAdjacent = errors.New("cells are not adjacent")
)

// Cell is a unique integer ID for a grid position. For a grid with C columns
// the cell at (row, col) has ID row*C + col; [Grid.Index] and [Grid.Coords]
// convert between the two addressing schemes.
type Cell int

// Grid is a rectangular grid of cells for building mazes. Each cell may be
// linked to any of its geometric neighbors to the north, south, east, or
// west; in graph terms, cells are nodes and every link is a bidirectional
// edge. A freshly constructed grid has no links at all.
//
// Link state is stored as a per-cell bitmask of open directions, mirrored on
// both sides of every link, so links are symmetric by construction and cells
// never reference each other directly.
//
// Grid is not safe for concurrent use without external synchronization.
type Grid struct {
	rows  int
	cols  int
	links []dirSet
}

// New creates a grid with the given dimensions and no links.
// Returns [ErrInvalidDimension] if rows or cols is less than 1.
func New(rows, cols int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimension, rows, cols)
	}
	return &Grid{
		rows:  rows,
		cols:  cols,
		links: make([]dirSet, rows*cols),
	}, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Cells returns the total number of cells (rows × cols).
func (g *Grid) Cells() int { return g.rows * g.cols }

// Contains reports whether the cell ID lies within the grid.
func (g *Grid) Contains(c Cell) bool {
	return c >= 0 && int(c) < len(g.links)
}

// Index converts a (row, col) pair to a cell ID.
// Returns [ErrInvalidCell] if the pair is out of bounds.
func (g *Grid) Index(row, col int) (Cell, error) {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return 0, fmt.Errorf("%w: (%d,%d) in %dx%d grid", ErrInvalidCell, row, col, g.rows, g.cols)
	}
	return Cell(row*g.cols + col), nil
}

// Coords converts a cell ID to its (row, col) pair.
// Returns [ErrInvalidCell] if the ID is out of bounds.
func (g *Grid) Coords(c Cell) (row, col int, err error) {
	if !g.Contains(c) {
		return 0, 0, fmt.Errorf("%w: cell %d in %dx%d grid", ErrInvalidCell, c, g.rows, g.cols)
	}
	return int(c) / g.cols, int(c) % g.cols, nil
}

// CellTo returns the neighbor of c in direction d.
// ok is false when c sits on the grid boundary in that direction.
// The error is non-nil only when c itself is out of bounds.
func (g *Grid) CellTo(c Cell, d Direction) (next Cell, ok bool, err error) {
	row, col, err := g.Coords(c)
	if err != nil {
		return 0, false, err
	}
	dr, dc := d.Delta()
	row, col = row+dr, col+dc
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return 0, false, nil
	}
	return Cell(row*g.cols + col), true, nil
}

// Neighbors returns the geometrically adjacent cells of c, regardless of
// link state. Every cell has between two and four neighbors, listed in
// N, S, E, W order.
func (g *Grid) Neighbors(c Cell) ([]Cell, error) {
	if !g.Contains(c) {
		return nil, fmt.Errorf("%w: cell %d", ErrInvalidCell, c)
	}
	out := make([]Cell, 0, 4)
	for _, d := range Directions {
		if n, ok, _ := g.CellTo(c, d); ok {
			out = append(out, n)
		}
	}
	return out, nil
}

// direction returns the direction from a to b when they are geometric
// neighbors, and ok=false otherwise. Both cells must be in bounds.
func (g *Grid) direction(a, b Cell) (Direction, bool) {
	ar, ac := int(a)/g.cols, int(a)%g.cols
	br, bc := int(b)/g.cols, int(b)%g.cols
	switch {
	case ar-1 == br && ac == bc:
		return North, true
	case ar+1 == br && ac == bc:
		return South, true
	case ar == br && ac+1 == bc:
		return East, true
	case ar == br && ac-1 == bc:
		return West, true
	}
	return 0, false
}

// Link carves a passage between a and b, marking both directions open in a
// single step. Linking an already-linked pair is a no-op.
// Returns [ErrInvalidCell] if either cell is out of bounds, or
// [ErrNotAdjacent] if the cells are not geometric neighbors; in both cases
// the link state is left unchanged.
func (g *Grid) Link(a, b Cell) error {
	d, err := g.adjacency(a, b)
	if err != nil {
		return err
	}
	g.links[a].add(d)
	g.links[b].add(d.Opposite())
	return nil
}

// Unlink removes the passage between a and b, closing both directions.
// Unlinking cells that are not linked is a no-op. The same validation rules
// as [Grid.Link] apply.
func (g *Grid) Unlink(a, b Cell) error {
	d, err := g.adjacency(a, b)
	if err != nil {
		return err
	}
	g.links[a].remove(d)
	g.links[b].remove(d.Opposite())
	return nil
}

func (g *Grid) adjacency(a, b Cell) (Direction, error) {
	if !g.Contains(a) {
		return 0, fmt.Errorf("%w: cell %d", ErrInvalidCell, a)
	}
	if !g.Contains(b) {
		return 0, fmt.Errorf("%w: cell %d", ErrInvalidCell, b)
	}
	d, ok := g.direction(a, b)
	if !ok {
		return 0, fmt.Errorf("%w: cells %d and %d", ErrNotAdjacent, a, b)
	}
	return d, nil
}

// Linked reports whether a passage exists between a and b. Non-adjacent
// cells are never linked; that is a valid query, not an error.
func (g *Grid) Linked(a, b Cell) (bool, error) {
	if !g.Contains(a) {
		return false, fmt.Errorf("%w: cell %d", ErrInvalidCell, a)
	}
	if !g.Contains(b) {
		return false, fmt.Errorf("%w: cell %d", ErrInvalidCell, b)
	}
	d, ok := g.direction(a, b)
	if !ok {
		return false, nil
	}
	return g.links[a].has(d), nil
}

// LinkedTo reports whether c is linked to its neighbor in direction d.
// Returns false when there is no neighbor that way.
func (g *Grid) LinkedTo(c Cell, d Direction) (bool, error) {
	if !g.Contains(c) {
		return false, fmt.Errorf("%w: cell %d", ErrInvalidCell, c)
	}
	return g.links[c].has(d), nil
}

// Links returns the cells currently linked to c, in N, S, E, W order.
// The slice has between zero and four elements.
func (g *Grid) Links(c Cell) ([]Cell, error) {
	if !g.Contains(c) {
		return nil, fmt.Errorf("%w: cell %d", ErrInvalidCell, c)
	}
	out := make([]Cell, 0, 4)
	for _, d := range Directions {
		if g.links[c].has(d) {
			if n, ok, _ := g.CellTo(c, d); ok {
				out = append(out, n)
			}
		}
	}
	return out, nil
}

// LinkCount returns the total number of links in the grid. A spanning-tree
// maze over the whole grid has exactly Cells()-1 links.
func (g *Grid) LinkCount() int {
	n := 0
	for _, s := range g.links {
		n += s.count()
	}
	return n / 2 // every link is recorded on both sides
}

// Clear removes every link, returning the grid to its fully walled initial
// state. Dimensions are unchanged.
func (g *Grid) Clear() {
	for i := range g.links {
		g.links[i] = 0
	}
}

// DeadEnds returns the cells with exactly one link, in ascending cell
// order. Cells with no links at all are isolated, not dead ends.
func (g *Grid) DeadEnds() []Cell {
	var out []Cell
	for i, s := range g.links {
		if s.count() == 1 {
			out = append(out, Cell(i))
		}
	}
	return out
}
