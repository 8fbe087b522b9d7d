package seed

import (
	"conway/pkg/core"
	"conway/pkg/life"
	"conway/pkg/patterns"
)

// Random returns a grid where each cell is alive with probability density.
// The same seed always yields the same grid.
func Random(size life.GridSize, edge life.Edge, density float64, seed int64) *life.Grid {
	rng := core.NewRNG(seed)
	g := life.NewGridWithEdge(size, edge)
	for p := range size.Positions() {
		if rng.Chance(density) {
			// p comes from size.Positions, so it is always in bounds.
			_ = g.SetCell(p, life.AliveCell())
		}
	}
	return g
}

// Pattern returns an empty grid with the named pattern stamped in the middle.
func Pattern(size life.GridSize, edge life.Edge, name string) (*life.Grid, error) {
	p, err := patterns.Lookup(name)
	if err != nil {
		return nil, err
	}
	g := life.NewGridWithEdge(size, edge)
	if err := patterns.StampCentered(g, p); err != nil {
		return nil, err
	}
	return g, nil
}
