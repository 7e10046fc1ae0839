package grid

import (
	"errors"
	"fmt"
)

// ErrInvalidDirection is returned by [ParseDirection] when the input does not
// name one of the four compass directions.
var ErrInvalidDirection = errors.New("invalid direction")

// Direction identifies one of the four compass directions between
// geometrically adjacent cells. The zero value is North.
type Direction int

const (
	// North points toward row 0.
	North Direction = iota
	// South points toward row rows-1.
	South
	// East points toward column cols-1.
	East
	// West points toward column 0.
	West
)

// Directions lists all four directions in a fixed order (N, S, E, W).
// Iteration over this slice keeps neighbor enumeration deterministic.
var Directions = []Direction{North, South, East, West}

// Opposite returns the inverse direction: North↔South, East↔West.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	default:
		return East
	}
}

// Delta returns the (row, col) offset of a single step in this direction.
func (d Direction) Delta() (dr, dc int) {
	switch d {
	case North:
		return -1, 0
	case South:
		return 1, 0
	case East:
		return 0, 1
	default:
		return 0, -1
	}
}

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	}
	return fmt.Sprintf("direction(%d)", int(d))
}

// ParseDirection converts a lowercase direction name into a [Direction].
// Returns [ErrInvalidDirection] for anything else.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "north":
		return North, nil
	case "south":
		return South, nil
	case "east":
		return East, nil
	case "west":
		return West, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}

// dirSet is a bitmask of open directions for a single cell.
type dirSet uint8

func (s dirSet) has(d Direction) bool { return s&(1<<uint(d)) != 0 }

func (s *dirSet) add(d Direction) { *s |= 1 << uint(d) }

func (s *dirSet) remove(d Direction) { *s &^= 1 << uint(d) }

// count returns the number of open directions.
func (s dirSet) count() int {
	n := 0
	for _, d := range Directions {
		if s.has(d) {
			n++
		}
	}
	return n
}
