package render

import "github.com/gridworks/mazekit/pkg/grid"

// ImageOptions configures [Image].
type ImageOptions struct {
	// CellSize is the interior size of each square cell block in pixels.
	// Values below 1 are treated as the default of 10.
	CellSize int

	// BorderWidth is the wall line thickness in pixels.
	// Values below 1 are treated as 1.
	BorderWidth int

	// Wall is the wall color. The zero pixel means opaque black.
	Wall Pixel

	// Background is the passage color. The zero pixel means opaque white.
	Background Pixel
}

func (o ImageOptions) normalized() ImageOptions {
	if o.CellSize < 1 {
		o.CellSize = 10
	}
	if o.BorderWidth < 1 {
		o.BorderWidth = 1
	}
	if o.Wall == (Pixel{}) {
		o.Wall = RGB(0, 0, 0)
	}
	if o.Background == (Pixel{}) {
		o.Background = RGB(255, 255, 255)
	}
	return o
}

// Image renders the grid into a [Pixmap]. Each cell maps to a square block
// of CellSize pixels separated by BorderWidth walls; a wall segment is
// drawn along every unlinked edge and along the whole outer boundary, with
// a post at every grid intersection. The buffer measures
// border + cols*(cell+border) by border + rows*(cell+border) pixels.
func Image(g *grid.Grid, opts ImageOptions) *Pixmap {
	opts = opts.normalized()
	cell, border := opts.CellSize, opts.BorderWidth
	step := cell + border

	width := border + g.Cols()*step
	height := border + g.Rows()*step
	m, _ := NewPixmap(width, height)
	m.Fill(opts.Background)

	// Outer top and left boundaries; each cell draws its own east and
	// south walls, which covers the remaining two edges.
	m.fillRect(0, 0, width, border, opts.Wall)
	m.fillRect(0, 0, border, height, opts.Wall)

	for row := 0; row < g.Rows(); row++ {
		oy := border + row*step
		for col := 0; col < g.Cols(); col++ {
			c, _ := g.Index(row, col)
			ox := border + col*step

			if open, _ := g.LinkedTo(c, grid.East); !open {
				m.fillRect(ox+cell, oy, ox+step, oy+step, opts.Wall)
			}
			if open, _ := g.LinkedTo(c, grid.South); !open {
				m.fillRect(ox, oy+cell, ox+step, oy+step, opts.Wall)
			}

			// Intersection post at the cell's south-east corner, drawn
			// even when both passages are open.
			m.fillRect(ox+cell, oy+cell, ox+step, oy+step, opts.Wall)
		}
	}

	return m
}

// ImageWithPath renders the grid like [Image] and then recolors the
// interior blocks of the given path cells. Walls are unaffected, so the
// path reads as a highlighted corridor. Used for solution overlays.
func ImageWithPath(g *grid.Grid, opts ImageOptions, path []grid.Cell, highlight Pixel) *Pixmap {
	opts = opts.normalized()
	m := Image(g, opts)
	cell, border := opts.CellSize, opts.BorderWidth
	step := cell + border

	for i, c := range path {
		row, col, err := g.Coords(c)
		if err != nil {
			continue
		}
		ox, oy := border+col*step, border+row*step
		m.fillRect(ox, oy, ox+cell, oy+cell, highlight)

		// Paint the gap between consecutive path cells too.
		if i == 0 {
			continue
		}
		prow, pcol, err := g.Coords(path[i-1])
		if err != nil {
			continue
		}
		px, py := border+pcol*step, border+prow*step
		switch {
		case prow == row && pcol < col:
			m.fillRect(px+cell, oy, ox, oy+cell, highlight)
		case prow == row && pcol > col:
			m.fillRect(ox+cell, oy, px, oy+cell, highlight)
		case pcol == col && prow < row:
			m.fillRect(ox, py+cell, ox+cell, oy, highlight)
		case pcol == col && prow > row:
			m.fillRect(ox, oy+cell, ox+cell, py, highlight)
		}
	}

	return m
}
