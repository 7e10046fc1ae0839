package maze

import "github.com/gridworks/mazekit/pkg/grid"

// sidewinder carves each row left to right, accumulating a run of cells.
// A coin flip decides whether to extend the run eastward or close it by
// linking one random run member north. Row 0 has no north neighbors, so its
// runs only ever extend east, producing the full top corridor.
func sidewinder(g *grid.Grid, src Source) error {
	for row := 0; row < g.Rows(); row++ {
		var run []grid.Cell
		for col := 0; col < g.Cols(); col++ {
			c, err := g.Index(row, col)
			if err != nil {
				return err
			}
			run = append(run, c)

			east, hasEast, _ := g.CellTo(c, grid.East)
			_, hasNorth, _ := g.CellTo(c, grid.North)

			closeOut := !hasEast
			if hasEast && hasNorth {
				flip, err := src.Bool(0.5)
				if err != nil {
					return err
				}
				closeOut = flip
			}

			if !closeOut {
				if err := g.Link(c, east); err != nil {
					return err
				}
				continue
			}

			member, err := Sample(src, run)
			if err != nil {
				return err
			}
			if n, ok, _ := g.CellTo(member, grid.North); ok {
				if err := g.Link(member, n); err != nil {
					return err
				}
			}
			run = run[:0]
		}
	}
	return nil
}
