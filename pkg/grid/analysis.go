package grid

import "fmt"

// Distances computes the shortest distance, in links, from src to every
// reachable cell using a breadth-first traversal of the link graph. The
// frontier is expanded in discovery (FIFO) order, so each cell's recorded
// distance is minimal. Cells not reachable from src are absent from the
// result; on a spanning-tree maze the map covers every cell.
// Returns [ErrInvalidCell] if src is out of bounds.
func (g *Grid) Distances(src Cell) (map[Cell]int, error) {
	if !g.Contains(src) {
		return nil, fmt.Errorf("%w: cell %d", ErrInvalidCell, src)
	}

	dist := map[Cell]int{src: 0}
	queue := []Cell{src}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for _, d := range Directions {
			if !g.links[c].has(d) {
				continue
			}
			n, ok, _ := g.CellTo(c, d)
			if !ok {
				continue
			}
			if _, seen := dist[n]; !seen {
				dist[n] = dist[c] + 1
				queue = append(queue, n)
			}
		}
	}
	return dist, nil
}

// ShortestPath returns the shortest path from start to goal over the link
// graph, both endpoints included. If start equals goal the path is the
// single cell. If goal is unreachable the result is nil, possible only on
// link states assembled by hand, never on a carved maze.
// Returns [ErrInvalidCell] if either endpoint is out of bounds.
func (g *Grid) ShortestPath(start, goal Cell) ([]Cell, error) {
	if !g.Contains(start) {
		return nil, fmt.Errorf("%w: cell %d", ErrInvalidCell, start)
	}
	if !g.Contains(goal) {
		return nil, fmt.Errorf("%w: cell %d", ErrInvalidCell, goal)
	}
	if start == goal {
		return []Cell{start}, nil
	}

	// BFS with predecessor tracking, stopping as soon as goal is dequeued.
	prev := map[Cell]Cell{start: start}
	queue := []Cell{start}
	found := false
	for len(queue) > 0 && !found {
		c := queue[0]
		queue = queue[1:]
		if c == goal {
			found = true
			break
		}
		for _, d := range Directions {
			if !g.links[c].has(d) {
				continue
			}
			n, ok, _ := g.CellTo(c, d)
			if !ok {
				continue
			}
			if _, seen := prev[n]; !seen {
				prev[n] = c
				queue = append(queue, n)
			}
		}
	}
	if _, seen := prev[goal]; !seen {
		return nil, nil
	}

	// Walk predecessors backward from goal, then reverse.
	var path []Cell
	for c := goal; ; c = prev[c] {
		path = append(path, c)
		if c == start {
			break
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}

// Farthest returns the reachable cell at maximum link distance from src,
// along with that distance. Ties resolve to the lowest cell ID, since
// candidates are scanned in ascending order with a strict comparison.
// Returns [ErrInvalidCell] if src is out of bounds.
func (g *Grid) Farthest(src Cell) (Cell, int, error) {
	dist, err := g.Distances(src)
	if err != nil {
		return 0, 0, err
	}
	best, bestDist := src, 0
	for c := Cell(0); int(c) < g.Cells(); c++ {
		if d, ok := dist[c]; ok && d > bestDist {
			best, bestDist = c, d
		}
	}
	return best, bestDist, nil
}

// LongestPath returns the longest shortest-path through the grid: the
// diameter of the link graph. It runs two BFS passes, from cell 0 to the
// farthest cell X and then from X to the farthest cell Y, and returns the
// path from X to Y. The farthest-of-farthest pair realizes the diameter
// exactly when the link graph is a tree, which every carving algorithm
// guarantees.
func (g *Grid) LongestPath() []Cell {
	x, _, err := g.Farthest(0)
	if err != nil {
		return nil
	}
	y, _, _ := g.Farthest(x)
	path, _ := g.ShortestPath(x, y)
	return path
}
