package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/gridworks/mazekit/pkg/grid"
	"github.com/gridworks/mazekit/pkg/maze"
	"github.com/gridworks/mazekit/pkg/render"
)

// solveOpts holds the command-line flags for the solve command.
type solveOpts struct {
	rows      int
	cols      int
	algorithm string
	seed      int64
	from      string // start cell as "row,col"
	to        string // goal cell as "row,col"
	longest   bool   // show the longest path instead of point-to-point
	distances bool   // show a distance overlay from the start cell
	deadEnds  bool   // list dead-end cells
	cellWidth int
}

// solveCommand creates the solve command for maze analysis. It re-carves the
// maze from the same parameters (carving is deterministic for a given
// algorithm, dimensions, and seed) and overlays the requested analysis on a
// text rendering.
func (c *CLI) solveCommand() *cobra.Command {
	opts := solveOpts{
		rows:      c.Config.Generate.Rows,
		cols:      c.Config.Generate.Cols,
		algorithm: c.Config.Generate.Algorithm,
	}

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Analyze a maze: paths, distances, dead ends",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("seed") {
				opts.seed = time.Now().UnixNano()
			}
			return c.runSolve(&opts)
		},
	}

	cmd.Flags().IntVarP(&opts.rows, "rows", "r", opts.rows, "grid height in cells")
	cmd.Flags().IntVarP(&opts.cols, "cols", "c", opts.cols, "grid width in cells")
	cmd.Flags().StringVarP(&opts.algorithm, "algorithm", "a", opts.algorithm, "carving algorithm")
	cmd.Flags().Int64VarP(&opts.seed, "seed", "s", 0, "random seed (default: current time)")
	cmd.Flags().StringVar(&opts.from, "from", "", "start cell as row,col (default: top-left)")
	cmd.Flags().StringVar(&opts.to, "to", "", "goal cell as row,col (default: bottom-right)")
	cmd.Flags().BoolVar(&opts.longest, "longest", false, "show the longest path through the maze")
	cmd.Flags().BoolVar(&opts.distances, "distances", false, "overlay distances from the start cell")
	cmd.Flags().BoolVar(&opts.deadEnds, "dead-ends", false, "list dead-end cells")
	cmd.Flags().IntVar(&opts.cellWidth, "cell-width", c.Config.Render.CellWidth, "interior cell width in characters")

	return cmd
}

func (c *CLI) runSolve(opts *solveOpts) error {
	algo, err := maze.ParseAlgorithm(opts.algorithm)
	if err != nil {
		return err
	}
	g, err := grid.New(opts.rows, opts.cols)
	if err != nil {
		return err
	}
	if err := maze.Carve(g, algo, maze.NewSource(opts.seed)); err != nil {
		return err
	}
	c.Logger.Debugf("Carved %dx%d maze (%s, seed %d)", opts.rows, opts.cols, algo, opts.seed)

	switch {
	case opts.deadEnds:
		return c.showDeadEnds(g, opts)
	case opts.distances:
		return c.showDistances(g, opts)
	case opts.longest:
		return c.showLongestPath(g, opts)
	default:
		return c.showShortestPath(g, opts)
	}
}

// showDeadEnds marks every dead end on the rendering and lists the count.
func (c *CLI) showDeadEnds(g *grid.Grid, opts *solveOpts) error {
	ends := g.DeadEnds()
	labels := make(map[grid.Cell]string, len(ends))
	for _, cell := range ends {
		labels[cell] = "x"
	}
	fmt.Print(render.Text(g, render.TextOptions{CellWidth: opts.cellWidth, Labels: labels}))
	printInfo("%d dead ends in %d cells", len(ends), g.Cells())
	return nil
}

// showDistances overlays the distance from the start cell on every cell,
// in base 36 to keep labels short. Auto-width expands cells when distances
// exceed a single character.
func (c *CLI) showDistances(g *grid.Grid, opts *solveOpts) error {
	start, err := parseCell(g, opts.from, 0)
	if err != nil {
		return err
	}
	dists, err := g.Distances(start)
	if err != nil {
		return err
	}
	labels := make(map[grid.Cell]string, len(dists))
	for cell, d := range dists {
		labels[cell] = strconv.FormatInt(int64(d), 36)
	}
	fmt.Print(render.Text(g, render.TextOptions{
		CellWidth: opts.cellWidth,
		Labels:    labels,
		AutoWidth: true,
		Margin:    1,
	}))
	printInfo("Distances from %s", cellName(g, start))
	return nil
}

// showLongestPath renders the longest path through the maze, labeling each
// step with its distance from the path start.
func (c *CLI) showLongestPath(g *grid.Grid, opts *solveOpts) error {
	path := g.LongestPath()
	c.printPath(g, path, opts)
	printInfo("Longest path: %d steps", len(path)-1)
	return nil
}

// showShortestPath renders the shortest path between the start and goal cells.
func (c *CLI) showShortestPath(g *grid.Grid, opts *solveOpts) error {
	start, err := parseCell(g, opts.from, 0)
	if err != nil {
		return err
	}
	goal, err := parseCell(g, opts.to, grid.Cell(g.Cells()-1))
	if err != nil {
		return err
	}
	path, err := g.ShortestPath(start, goal)
	if err != nil {
		return err
	}
	if path == nil {
		printWarning("No path from %s to %s", cellName(g, start), cellName(g, goal))
		return nil
	}
	c.printPath(g, path, opts)
	printInfo("Shortest path %s %s %s: %d steps", cellName(g, start), iconArrow, cellName(g, goal), len(path)-1)
	return nil
}

// printPath renders the maze with each path cell labeled by its step number
// in base 36.
func (c *CLI) printPath(g *grid.Grid, path []grid.Cell, opts *solveOpts) {
	labels := make(map[grid.Cell]string, len(path))
	for i, cell := range path {
		labels[cell] = strconv.FormatInt(int64(i), 36)
	}
	fmt.Print(render.Text(g, render.TextOptions{
		CellWidth: opts.cellWidth,
		Labels:    labels,
		AutoWidth: true,
		Margin:    1,
	}))
}

// parseCell parses a "row,col" flag value into a cell, or returns fallback
// when the flag is empty.
func parseCell(g *grid.Grid, s string, fallback grid.Cell) (grid.Cell, error) {
	if s == "" {
		return fallback, nil
	}
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid cell %q (expected row,col)", s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, fmt.Errorf("invalid cell %q: %w", s, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, fmt.Errorf("invalid cell %q: %w", s, err)
	}
	return g.Index(row, col)
}

// cellName formats a cell as "row,col" for display.
func cellName(g *grid.Grid, c grid.Cell) string {
	row, col, err := g.Coords(c)
	if err != nil {
		return strconv.Itoa(int(c))
	}
	return fmt.Sprintf("%d,%d", row, col)
}
