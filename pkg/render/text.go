package render

import (
	"strings"

	"github.com/gridworks/mazekit/pkg/grid"
)

// minCellWidth is the smallest rendered cell width; narrower settings are
// raised to it.
const minCellWidth = 3

// TextOptions configures [Text].
type TextOptions struct {
	// CellWidth is the interior width of each cell in characters.
	// Values below 3 are treated as 3. Ignored in favor of the computed
	// width when AutoWidth is set and labels demand more room.
	CellWidth int

	// Labels maps cells to short strings written into the cell interiors
	// (for example distance values). Labels longer than the cell width are
	// truncated unless AutoWidth is set.
	Labels map[grid.Cell]string

	// AutoWidth widens cells to max(CellWidth, longest label + 2*Margin).
	AutoWidth bool

	// Margin is the per-side padding used by AutoWidth.
	Margin int
}

// Text draws the grid as an ASCII wall diagram using '+', '-', '|', and
// spaces. A wall is drawn between two adjacent cells exactly when they are
// not linked; the outer boundary is always fully walled. The result ends
// with a newline.
func Text(g *grid.Grid, opts TextOptions) string {
	width := opts.CellWidth
	if width < minCellWidth {
		width = minCellWidth
	}
	if opts.AutoWidth {
		longest := 0
		for _, label := range opts.Labels {
			if len(label) > longest {
				longest = len(label)
			}
		}
		if w := longest + 2*opts.Margin; w > width {
			width = w
		}
	}

	var b strings.Builder

	// Top boundary.
	b.WriteByte('+')
	for col := 0; col < g.Cols(); col++ {
		writeSouth(&b, false, width)
	}

	for row := 0; row < g.Rows(); row++ {
		// Cell body row: interiors and east walls.
		b.WriteString("\n|")
		for col := 0; col < g.Cols(); col++ {
			c, _ := g.Index(row, col)
			writeCell(&b, opts.Labels[c], width)
			if open, _ := g.LinkedTo(c, grid.East); open {
				b.WriteByte(' ')
			} else {
				b.WriteByte('|')
			}
		}

		// Wall row beneath: south walls and corners.
		b.WriteString("\n+")
		for col := 0; col < g.Cols(); col++ {
			c, _ := g.Index(row, col)
			open, _ := g.LinkedTo(c, grid.South)
			writeSouth(&b, open, width)
		}
	}

	b.WriteByte('\n')
	return b.String()
}

// writeCell centers label within width columns, truncating when it does
// not fit.
func writeCell(b *strings.Builder, label string, width int) {
	if len(label) > width {
		label = label[:width]
	}
	left := (width - len(label)) / 2
	right := width - len(label) - left
	b.WriteString(strings.Repeat(" ", left))
	b.WriteString(label)
	b.WriteString(strings.Repeat(" ", right))
}

func writeSouth(b *strings.Builder, open bool, width int) {
	ch := byte('-')
	if open {
		ch = ' '
	}
	for i := 0; i < width; i++ {
		b.WriteByte(ch)
	}
	b.WriteByte('+')
}
