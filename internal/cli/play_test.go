package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gridworks/mazekit/pkg/grid"
	"github.com/gridworks/mazekit/pkg/maze"
)

// playGrid carves a small deterministic maze for model tests.
func playGrid(t *testing.T) *grid.Grid {
	t.Helper()
	g, err := grid.New(4, 4)
	if err != nil {
		t.Fatal(err)
	}
	if err := maze.Carve(g, maze.Backtracker, maze.NewSource(1)); err != nil {
		t.Fatal(err)
	}
	return g
}

func TestNewPlayModel(t *testing.T) {
	g := playGrid(t)
	m := newPlayModel(g)

	if m.player == m.goal {
		t.Error("player and goal should differ")
	}
	if !m.visited[m.player] {
		t.Error("start cell should be marked visited")
	}
	if m.shortest < 1 {
		t.Errorf("shortest = %d, want >= 1", m.shortest)
	}
}

func TestPlayModelMove(t *testing.T) {
	g := playGrid(t)
	m := newPlayModel(g)

	// Find an open direction from the start and walk it.
	var open grid.Direction
	found := false
	for _, d := range grid.Directions {
		ok, err := g.LinkedTo(m.player, d)
		if err != nil {
			t.Fatal(err)
		}
		if ok {
			open, found = d, true
			break
		}
	}
	if !found {
		t.Fatal("start cell has no open passage")
	}

	next, _ := m.move(open)
	moved := next.(playModel)
	if moved.moves != 1 {
		t.Errorf("moves = %d, want 1", moved.moves)
	}
	if moved.player == m.player {
		t.Error("player should have moved")
	}

	// A blocked direction leaves the model unchanged.
	var blocked grid.Direction
	found = false
	for _, d := range grid.Directions {
		ok, err := g.LinkedTo(moved.player, d)
		if err != nil {
			t.Fatal(err)
		}
		if !ok {
			blocked, found = d, true
			break
		}
	}
	if found {
		next, _ = moved.move(blocked)
		stuck := next.(playModel)
		if stuck.moves != moved.moves || stuck.player != moved.player {
			t.Error("move through a wall should be ignored")
		}
	}
}

func TestPlayModelQuit(t *testing.T) {
	m := newPlayModel(playGrid(t))

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("q should quit")
	}
}

func TestPlayModelView(t *testing.T) {
	m := newPlayModel(playGrid(t))
	view := m.View()

	if !strings.Contains(view, "@") {
		t.Error("view should show the player")
	}
	if !strings.Contains(view, "G") {
		t.Error("view should show the goal")
	}
	if !strings.Contains(view, "+---+") {
		t.Error("view should contain the maze walls")
	}
}
