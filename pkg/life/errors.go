package life

import "errors"

var (
	// ErrInvalidDimension is returned when a grid is sized with a
	// non-positive width or height.
	ErrInvalidDimension = errors.New("invalid grid dimension")
	// ErrOutOfBounds is returned when writing a cell outside the grid.
	ErrOutOfBounds = errors.New("position out of bounds")
	// ErrEngineRunning is returned by Run while another Run is active.
	ErrEngineRunning = errors.New("engine already running")
	// ErrEngineStopped is returned by Run once the engine has stopped.
	ErrEngineStopped = errors.New("engine stopped")
)
