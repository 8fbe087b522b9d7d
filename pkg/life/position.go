package life

import "fmt"

// Position addresses a cell by row and column. Positions are comparable and
// can be used directly as map keys.
type Position struct {
	Row int
	Col int
}

// Neighbors returns the eight surrounding positions in row-major order. The
// result is not filtered against any grid bounds.
func (p Position) Neighbors() [8]Position {
	var out [8]Position
	i := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			out[i] = Position{Row: p.Row + dr, Col: p.Col + dc}
			i++
		}
	}
	return out
}

// Offset returns p translated by the given row and column deltas.
func (p Position) Offset(dr, dc int) Position {
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

func (p Position) String() string { return fmt.Sprintf("(%d, %d)", p.Row, p.Col) }
