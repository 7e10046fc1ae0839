package maze

import "github.com/gridworks/mazekit/pkg/grid"

// binaryTree visits every cell in row-major order and links it to a random
// choice among its north and east neighbors, when any exist. The north-east
// corner cell has neither, which is what terminates the tree.
func binaryTree(g *grid.Grid, src Source) error {
	for c := grid.Cell(0); int(c) < g.Cells(); c++ {
		candidates := make([]grid.Cell, 0, 2)
		if n, ok, _ := g.CellTo(c, grid.North); ok {
			candidates = append(candidates, n)
		}
		if e, ok, _ := g.CellTo(c, grid.East); ok {
			candidates = append(candidates, e)
		}
		if len(candidates) == 0 {
			continue
		}
		pick, err := Sample(src, candidates)
		if err != nil {
			return err
		}
		if err := g.Link(c, pick); err != nil {
			return err
		}
	}
	return nil
}
