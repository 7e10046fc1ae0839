package cli

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/gridworks/mazekit/pkg/grid"
	"github.com/gridworks/mazekit/pkg/maze"
	"github.com/gridworks/mazekit/pkg/render"
)

// playOpts holds the command-line flags for the play command.
type playOpts struct {
	rows      int
	cols      int
	algorithm string
	seed      int64
}

// playCommand creates the play command: an interactive maze walk in the
// terminal. Start and goal are the two ends of the longest path, so every
// game is a full traversal.
func (c *CLI) playCommand() *cobra.Command {
	opts := playOpts{
		rows:      c.Config.Generate.Rows,
		cols:      c.Config.Generate.Cols,
		algorithm: c.Config.Generate.Algorithm,
	}

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Walk a maze interactively in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("seed") {
				opts.seed = time.Now().UnixNano()
			}
			return c.runPlay(&opts)
		},
	}

	cmd.Flags().IntVarP(&opts.rows, "rows", "r", opts.rows, "grid height in cells")
	cmd.Flags().IntVarP(&opts.cols, "cols", "c", opts.cols, "grid width in cells")
	cmd.Flags().StringVarP(&opts.algorithm, "algorithm", "a", opts.algorithm, "carving algorithm")
	cmd.Flags().Int64VarP(&opts.seed, "seed", "s", 0, "random seed (default: current time)")

	return cmd
}

func (c *CLI) runPlay(opts *playOpts) error {
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

	model := newPlayModel(g)
	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return err
	}
	if m, ok := final.(playModel); ok && m.won {
		printSuccess("Solved in %d moves (shortest: %d)", m.moves, m.shortest)
	}
	return nil
}

// playModel is the bubbletea model for the interactive maze walk.
type playModel struct {
	grid     *grid.Grid
	player   grid.Cell
	goal     grid.Cell
	visited  map[grid.Cell]bool
	moves    int
	shortest int
	won      bool
}

// newPlayModel places the player and goal at the two ends of the longest
// path through g.
func newPlayModel(g *grid.Grid) playModel {
	path := g.LongestPath()
	start, goal := path[0], path[len(path)-1]
	return playModel{
		grid:     g,
		player:   start,
		goal:     goal,
		visited:  map[grid.Cell]bool{start: true},
		shortest: len(path) - 1,
	}
}

// Init implements tea.Model.
func (m playModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. Arrow keys and hjkl move the player; moves
// through walls are ignored.
func (m playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		return m.move(grid.North)
	case "down", "j":
		return m.move(grid.South)
	case "left", "h":
		return m.move(grid.West)
	case "right", "l":
		return m.move(grid.East)
	}
	return m, nil
}

// move advances the player one cell in direction d if a passage exists.
func (m playModel) move(d grid.Direction) (tea.Model, tea.Cmd) {
	if m.won {
		return m, nil
	}
	open, err := m.grid.LinkedTo(m.player, d)
	if err != nil || !open {
		return m, nil
	}
	next, ok, err := m.grid.CellTo(m.player, d)
	if err != nil || !ok {
		return m, nil
	}
	m.player = next
	m.visited[next] = true
	m.moves++
	if m.player == m.goal {
		m.won = true
		return m, tea.Quit
	}
	return m, nil
}

// View implements tea.Model.
func (m playModel) View() string {
	labels := make(map[grid.Cell]string, len(m.visited)+2)
	for cell := range m.visited {
		labels[cell] = "."
	}
	labels[m.goal] = "G"
	labels[m.player] = "@"

	header := StyleTitle.Render("mazekit") + StyleDim.Render(fmt.Sprintf("  %d moves", m.moves))
	board := render.Text(m.grid, render.TextOptions{Labels: labels})
	footer := StyleDim.Render("arrows/hjkl move · q quits · reach G")

	return header + "\n" + board + footer + "\n"
}
