package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// ErrInvalidSize is returned by [NewPixmap] when width or height is less
// than 1.
var ErrInvalidSize = errors.New("pixmap width and height must be at least 1")

// Pixmap is a rectangular, mutable buffer of [Pixel] values addressed by
// (x, y) with (0, 0) at the top-left. It is the engine's only image output;
// encoding to a file format is the caller's concern (see [Pixmap.ToImage]).
type Pixmap struct {
	width  int
	height int
	pix    []Pixel
}

// NewPixmap creates a pixmap of the given size with every pixel set to the
// zero value (transparent black).
func NewPixmap(width, height int) (*Pixmap, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidSize, width, height)
	}
	return &Pixmap{
		width:  width,
		height: height,
		pix:    make([]Pixel, width*height),
	}, nil
}

// Width returns the pixmap width in pixels.
func (m *Pixmap) Width() int { return m.width }

// Height returns the pixmap height in pixels.
func (m *Pixmap) Height() int { return m.height }

// At returns the pixel at (x, y). Out-of-bounds coordinates return the
// zero pixel.
func (m *Pixmap) At(x, y int) Pixel {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return Pixel{}
	}
	return m.pix[y*m.width+x]
}

// Set writes the pixel at (x, y). Out-of-bounds coordinates are ignored.
func (m *Pixmap) Set(x, y int, p Pixel) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	m.pix[y*m.width+x] = p
}

// Fill sets every pixel to p.
func (m *Pixmap) Fill(p Pixel) {
	for i := range m.pix {
		m.pix[i] = p
	}
}

// fillRect sets the rectangle [x0,x1)×[y0,y1) to p, clipped to the buffer.
func (m *Pixmap) fillRect(x0, y0, x1, y1 int, p Pixel) {
	for y := max(y0, 0); y < min(y1, m.height); y++ {
		for x := max(x0, 0); x < min(x1, m.width); x++ {
			m.pix[y*m.width+x] = p
		}
	}
}

// ToImage copies the pixmap into a stdlib image.RGBA so external encoders
// (image/png and friends) can serialize it. The engine itself performs no
// file I/O.
func (m *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, m.width, m.height))
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			p := m.pix[y*m.width+x]
			img.SetRGBA(x, y, color.RGBA{R: p.R, G: p.G, B: p.B, A: p.A})
		}
	}
	return img
}
