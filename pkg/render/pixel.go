package render

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidPixelFormat is returned by [ParsePixel] for anything that is
// not exactly "#rrggbb" or "#rrggbb.aa". Lengths that merely contain valid
// hex digits are rejected rather than guessing a channel split.
var ErrInvalidPixelFormat = errors.New("invalid pixel string")

// Pixel is an RGBA color with four 8-bit channels.
type Pixel struct {
	R, G, B, A uint8
}

// RGB returns an opaque pixel (alpha 255).
func RGB(r, g, b uint8) Pixel {
	return Pixel{R: r, G: g, B: b, A: 255}
}

// String renders the pixel in the textual form accepted by [ParsePixel]:
// "#rrggbb" when fully opaque, "#rrggbb.aa" otherwise.
func (p Pixel) String() string {
	if p.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", p.R, p.G, p.B)
	}
	return fmt.Sprintf("#%02x%02x%02x.%02x", p.R, p.G, p.B, p.A)
}

// ParsePixel parses "#rrggbb" or "#rrggbb.aa" into a [Pixel]. Hex digits
// are case-insensitive; alpha defaults to 255 when omitted. Returns
// [ErrInvalidPixelFormat] for any other length, separator, or non-hex
// character.
func ParsePixel(s string) (Pixel, error) {
	if len(s) != 7 && len(s) != 10 {
		return Pixel{}, fmt.Errorf("%w: %q", ErrInvalidPixelFormat, s)
	}
	if s[0] != '#' {
		return Pixel{}, fmt.Errorf("%w: %q", ErrInvalidPixelFormat, s)
	}

	lower := strings.ToLower(s)
	r, err := parseHex(lower[1:3])
	if err != nil {
		return Pixel{}, fmt.Errorf("%w: %q", ErrInvalidPixelFormat, s)
	}
	g, err := parseHex(lower[3:5])
	if err != nil {
		return Pixel{}, fmt.Errorf("%w: %q", ErrInvalidPixelFormat, s)
	}
	b, err := parseHex(lower[5:7])
	if err != nil {
		return Pixel{}, fmt.Errorf("%w: %q", ErrInvalidPixelFormat, s)
	}

	a := uint8(255)
	if len(s) == 10 {
		if lower[7] != '.' {
			return Pixel{}, fmt.Errorf("%w: %q", ErrInvalidPixelFormat, s)
		}
		a, err = parseHex(lower[8:10])
		if err != nil {
			return Pixel{}, fmt.Errorf("%w: %q", ErrInvalidPixelFormat, s)
		}
	}

	return Pixel{R: r, G: g, B: b, A: a}, nil
}

func parseHex(s string) (uint8, error) {
	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0, err
	}
	return uint8(v), nil
}
