package maze

import "github.com/gridworks/mazekit/pkg/grid"

// backtracker carves depth-first from a random start cell. The natural
// recursive formulation is rewritten with an explicit stack: grid sizes can
// exceed comfortable call-stack depth, and the translation is direct.
func backtracker(g *grid.Grid, src Source) error {
	start, err := src.IntN(0, g.Cells())
	if err != nil {
		return err
	}

	visited := make([]bool, g.Cells())
	visited[start] = true
	stack := []grid.Cell{grid.Cell(start)}

	for len(stack) > 0 {
		current := stack[len(stack)-1]

		unvisited, err := unvisitedNeighbors(g, current, visited)
		if err != nil {
			return err
		}
		if len(unvisited) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		next, err := Sample(src, unvisited)
		if err != nil {
			return err
		}
		if err := g.Link(current, next); err != nil {
			return err
		}
		visited[next] = true
		stack = append(stack, next)
	}
	return nil
}

// unvisitedNeighbors returns the geometric neighbors of c not yet marked
// visited, in the grid's deterministic N, S, E, W order.
func unvisitedNeighbors(g *grid.Grid, c grid.Cell, visited []bool) ([]grid.Cell, error) {
	neighbors, err := g.Neighbors(c)
	if err != nil {
		return nil, err
	}
	out := neighbors[:0]
	for _, n := range neighbors {
		if !visited[n] {
			out = append(out, n)
		}
	}
	return out, nil
}
