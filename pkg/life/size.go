package life

import (
	"fmt"
	"iter"
)

// GridSize describes the dimensions of a grid. Construct it with
// NewGridSize so both dimensions are known to be positive.
type GridSize struct {
	width  int
	height int
}

// NewGridSize validates and returns a GridSize.
func NewGridSize(width, height int) (GridSize, error) {
	if width <= 0 || height <= 0 {
		return GridSize{}, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, width, height)
	}
	return GridSize{width: width, height: height}, nil
}

// MustGridSize is like NewGridSize but panics on invalid dimensions.
func MustGridSize(width, height int) GridSize {
	s, err := NewGridSize(width, height)
	if err != nil {
		panic(err)
	}
	return s
}

// Width returns the number of columns.
func (s GridSize) Width() int { return s.width }

// Height returns the number of rows.
func (s GridSize) Height() int { return s.height }

// Area returns the number of positions in the grid.
func (s GridSize) Area() int { return s.width * s.height }

// Contains reports whether p lies inside the grid.
func (s GridSize) Contains(p Position) bool {
	return p.Row >= 0 && p.Row < s.height && p.Col >= 0 && p.Col < s.width
}

// Positions yields every position exactly once in row-major order. The
// sequence can be ranged over any number of times.
func (s GridSize) Positions() iter.Seq[Position] {
	return func(yield func(Position) bool) {
		for row := 0; row < s.height; row++ {
			for col := 0; col < s.width; col++ {
				if !yield(Position{Row: row, Col: col}) {
					return
				}
			}
		}
	}
}

// index returns the row-major slice index for an in-bounds position.
func (s GridSize) index(p Position) int { return p.Row*s.width + p.Col }

// wrap applies toroidal wrapping to the provided position.
func (s GridSize) wrap(p Position) Position {
	p.Row = (p.Row%s.height + s.height) % s.height
	p.Col = (p.Col%s.width + s.width) % s.width
	return p
}

func (s GridSize) String() string { return fmt.Sprintf("%dx%d", s.width, s.height) }
