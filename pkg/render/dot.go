package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/gridworks/mazekit/pkg/grid"
)

// DOTOptions configures [ToDOT].
type DOTOptions struct {
	// Labels replaces the default "row,col" node labels (for example with
	// distance values).
	Labels map[grid.Cell]string
}

// ToDOT converts the grid's link graph to Graphviz DOT format. Cells
// become nodes pinned to their grid position so the layout mirrors the
// maze geometry; links become undirected edges. The resulting string can
// be rendered with [RenderSVG] or [RenderPNG].
func ToDOT(g *grid.Grid, opts DOTOptions) string {
	var buf bytes.Buffer
	buf.WriteString("graph maze {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=12];\n")
	buf.WriteString("\n")

	for c := grid.Cell(0); int(c) < g.Cells(); c++ {
		row, col, _ := g.Coords(c)
		label := opts.Labels[c]
		if label == "" {
			label = fmt.Sprintf("%d,%d", row, col)
		}
		// Negative y so row 0 renders at the top, matching the text
		// diagram.
		fmt.Fprintf(&buf, "  %d [label=%q, pos=\"%d,%d!\"];\n", c, label, col, -row)
	}

	buf.WriteString("\n")
	for c := grid.Cell(0); int(c) < g.Cells(); c++ {
		// Emit each undirected edge once, from its lower cell ID.
		for _, d := range []grid.Direction{grid.South, grid.East} {
			if open, _ := g.LinkedTo(c, d); !open {
				continue
			}
			if n, ok, _ := g.CellTo(c, d); ok {
				fmt.Fprintf(&buf, "  %d -- %d;\n", c, n)
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	return renderDOT(ctx, dot, graphviz.SVG)
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return renderDOT(ctx, dot, graphviz.PNG)
}

func renderDOT(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
