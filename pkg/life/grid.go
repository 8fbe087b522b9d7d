package life

import (
	"fmt"
	"strings"

	"github.com/zyedidia/generic/mapset"
)

// Edge selects how positions outside the grid are resolved.
type Edge uint8

const (
	// Bounded treats everything beyond the border as permanently dead.
	Bounded Edge = iota
	// Toroidal wraps rows and columns around the opposite border.
	Toroidal
)

func (e Edge) String() string {
	switch e {
	case Bounded:
		return "bounded"
	case Toroidal:
		return "toroidal"
	default:
		return fmt.Sprintf("Edge(%d)", uint8(e))
	}
}

// ParseEdge converts a policy name into an Edge.
func ParseEdge(name string) (Edge, error) {
	switch strings.ToLower(name) {
	case "", "bounded":
		return Bounded, nil
	case "toroidal", "torus", "wrap":
		return Toroidal, nil
	}
	return Bounded, fmt.Errorf("unknown edge policy %q", name)
}

// Grid stores one generation of cells in row-major order. Every position of
// its size has a cell and nothing is stored outside of it.
type Grid struct {
	size  GridSize
	edge  Edge
	cells []Cell
}

// NewGrid returns an all-dead bounded grid.
func NewGrid(size GridSize) *Grid {
	return NewGridWithEdge(size, Bounded)
}

// NewGridWithEdge returns an all-dead grid using the given edge policy.
func NewGridWithEdge(size GridSize, edge Edge) *Grid {
	return &Grid{size: size, edge: edge, cells: make([]Cell, size.Area())}
}

// Size returns the grid dimensions.
func (g *Grid) Size() GridSize { return g.size }

// Edge returns the grid's edge policy.
func (g *Grid) Edge() Edge { return g.edge }

// Cell returns the cell at p. Positions outside a bounded grid are dead;
// on a toroidal grid they wrap.
func (g *Grid) Cell(p Position) Cell {
	if !g.size.Contains(p) {
		if g.edge != Toroidal || g.size.Area() == 0 {
			return DeadCell()
		}
		p = g.size.wrap(p)
	}
	return g.cells[g.size.index(p)]
}

// SetCell overwrites the cell at p. It is meant for seeding; the engine
// never mutates a grid it has handed out.
func (g *Grid) SetCell(p Position, c Cell) error {
	if !g.size.Contains(p) {
		return fmt.Errorf("%w: %s not in %s grid", ErrOutOfBounds, p, g.size)
	}
	g.cells[g.size.index(p)] = c
	return nil
}

// CountLivingNeighbors returns how many of p's eight neighbors are alive.
func (g *Grid) CountLivingNeighbors(p Position) int {
	n := 0
	for _, nb := range p.Neighbors() {
		if g.Cell(nb).IsAlive() {
			n++
		}
	}
	return n
}

// LivingCells returns the set of positions holding a live cell.
func (g *Grid) LivingCells() mapset.Set[Position] {
	set := mapset.New[Position]()
	for p := range g.size.Positions() {
		if g.cells[g.size.index(p)].IsAlive() {
			set.Put(p)
		}
	}
	return set
}

// Population returns the number of live cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.cells {
		if c.IsAlive() {
			n++
		}
	}
	return n
}

// Equal reports whether both grids have the same size, edge policy and
// cell states.
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.size != other.size || g.edge != other.edge {
		return false
	}
	for i, c := range g.cells {
		if other.cells[i] != c {
			return false
		}
	}
	return true
}

// String renders the grid as rows of 'O' (alive) and '.' (dead).
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.size.Area() + g.size.Height())
	for row := 0; row < g.size.Height(); row++ {
		for col := 0; col < g.size.Width(); col++ {
			if g.cells[g.size.index(Position{Row: row, Col: col})].IsAlive() {
				b.WriteByte('O')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
