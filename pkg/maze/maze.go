package maze

import (
	"errors"
	"fmt"

	"github.com/gridworks/mazekit/pkg/grid"
)

// ErrInvalidAlgorithm is returned by [ParseAlgorithm] for unknown names.
var ErrInvalidAlgorithm = errors.New("invalid algorithm")

// Algorithm selects one of the carving strategies. The set is small and
// fixed, so a closed enum is used instead of an open interface.
type Algorithm int

const (
	// BinaryTree links every cell to a random north-or-east neighbor.
	// Fast, but biased toward a diagonal river along the north and east
	// boundaries.
	BinaryTree Algorithm = iota
	// Sidewinder carves west-east runs, closing each with a random north
	// link. The top row is always a single corridor.
	Sidewinder
	// Backtracker carves depth-first with an explicit stack. Long winding
	// corridors, few dead ends.
	Backtracker
	// HuntAndKill random-walks until stuck, then hunts row-major for an
	// unvisited cell bordering the visited region. Lower memory than
	// Backtracker, slower on large grids.
	HuntAndKill
)

// Algorithms lists every carving algorithm.
var Algorithms = []Algorithm{BinaryTree, Sidewinder, Backtracker, HuntAndKill}

// String returns the algorithm's name as accepted by [ParseAlgorithm].
func (a Algorithm) String() string {
	switch a {
	case BinaryTree:
		return "binary-tree"
	case Sidewinder:
		return "sidewinder"
	case Backtracker:
		return "backtracker"
	case HuntAndKill:
		return "hunt-and-kill"
	}
	return fmt.Sprintf("algorithm(%d)", int(a))
}

// ParseAlgorithm converts an algorithm name to an [Algorithm].
// Returns [ErrInvalidAlgorithm] for unknown names.
func ParseAlgorithm(s string) (Algorithm, error) {
	for _, a := range Algorithms {
		if s == a.String() {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidAlgorithm, s)
}

// Carve clears g and carves a maze into it using the chosen algorithm and
// random source. The resulting link graph is always a spanning tree:
// connected, cycle-free, exactly g.Cells()-1 links. Carving is
// deterministic for a deterministic src.
//
// The only possible errors are randomness failures surfaced by src;
// [NewSource] never produces one when called through Carve.
func Carve(g *grid.Grid, a Algorithm, src Source) error {
	g.Clear()
	switch a {
	case BinaryTree:
		return binaryTree(g, src)
	case Sidewinder:
		return sidewinder(g, src)
	case Backtracker:
		return backtracker(g, src)
	case HuntAndKill:
		return huntAndKill(g, src)
	}
	return fmt.Errorf("%w: %d", ErrInvalidAlgorithm, int(a))
}
