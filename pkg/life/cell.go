package life

// Cell is the state of a single grid slot. The zero value is a dead cell.
type Cell struct {
	alive bool
}

// AliveCell returns a living cell.
func AliveCell() Cell { return Cell{alive: true} }

// DeadCell returns a dead cell.
func DeadCell() Cell { return Cell{} }

// IsAlive reports whether the cell is alive.
func (c Cell) IsAlive() bool { return c.alive }

// IsDead reports whether the cell is dead.
func (c Cell) IsDead() bool { return !c.alive }
