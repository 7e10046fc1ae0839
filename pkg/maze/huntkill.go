package maze

import "github.com/gridworks/mazekit/pkg/grid"

// huntAndKill random-walks from a random start cell, linking into unvisited
// neighbors until the walk is stuck. It then hunts in row-major order for
// the first unvisited cell with at least one visited neighbor, links the
// two, and walks on from there. Only the current cell is tracked between
// steps, trading the backtracker's stack for repeated hunt scans.
func huntAndKill(g *grid.Grid, src Source) error {
	start, err := src.IntN(0, g.Cells())
	if err != nil {
		return err
	}

	visited := make([]bool, g.Cells())
	visited[start] = true
	current := grid.Cell(start)

	for {
		unvisited, err := unvisitedNeighbors(g, current, visited)
		if err != nil {
			return err
		}

		if len(unvisited) > 0 {
			next, err := Sample(src, unvisited)
			if err != nil {
				return err
			}
			if err := g.Link(current, next); err != nil {
				return err
			}
			visited[next] = true
			current = next
			continue
		}

		// Hunt phase: row-major scan for the frontier of the visited
		// region.
		next, ok, err := hunt(g, src, visited)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		current = next
	}
}

// hunt finds the first unvisited cell (ascending cell order) adjacent to
// the visited region, links it to a random visited neighbor, and marks it
// visited. ok is false once no unvisited cell remains.
func hunt(g *grid.Grid, src Source, visited []bool) (grid.Cell, bool, error) {
	for c := grid.Cell(0); int(c) < g.Cells(); c++ {
		if visited[c] {
			continue
		}
		neighbors, err := g.Neighbors(c)
		if err != nil {
			return 0, false, err
		}
		seen := neighbors[:0]
		for _, n := range neighbors {
			if visited[n] {
				seen = append(seen, n)
			}
		}
		if len(seen) == 0 {
			continue
		}
		pick, err := Sample(src, seen)
		if err != nil {
			return 0, false, err
		}
		if err := g.Link(c, pick); err != nil {
			return 0, false, err
		}
		visited[c] = true
		return c, true, nil
	}
	return 0, false, nil
}
