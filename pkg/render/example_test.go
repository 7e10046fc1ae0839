package render_test

import (
	"fmt"

	"github.com/gridworks/mazekit/pkg/grid"
	"github.com/gridworks/mazekit/pkg/render"
)

func ExampleText() {
	g, _ := grid.New(1, 2)
	_ = g.Link(0, 1)

	fmt.Print(render.Text(g, render.TextOptions{}))
	// Output:
	// +---+---+
	// |       |
	// +---+---+
}

func ExampleParsePixel() {
	p, _ := render.ParsePixel("#00FF00.80")
	fmt.Println(p.R, p.G, p.B, p.A)
	fmt.Println(p)
	// Output:
	// 0 255 0 128
	// #00ff00.80
}

func ExampleImage() {
	g, _ := grid.New(2, 2)
	_ = g.Link(0, 1)

	m := render.Image(g, render.ImageOptions{CellSize: 4, BorderWidth: 1})
	fmt.Println(m.Width(), m.Height())
	// Output:
	// 11 11
}
