package life

// Rules maps a cell and its living-neighbor count to the cell's next state.
// Implementations must be pure.
type Rules interface {
	NextState(current Cell, livingNeighbors int) Cell
}

// ConwayRules implements B3/S23: a live cell survives with two or three
// living neighbors, a dead cell is born with exactly three.
type ConwayRules struct{}

// NextState applies Conway's rules.
func (ConwayRules) NextState(current Cell, livingNeighbors int) Cell {
	if current.IsAlive() {
		if livingNeighbors == 2 || livingNeighbors == 3 {
			return AliveCell()
		}
		return DeadCell()
	}
	if livingNeighbors == 3 {
		return AliveCell()
	}
	return DeadCell()
}
