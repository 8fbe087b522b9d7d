package life

import (
	"context"
	"errors"
	"time"
)

// Display consumes read-only snapshots of the simulation. Implementations
// must not mutate the grids they receive.
type Display interface {
	Render(grid *Grid, gen Generation)
	ShowExitMessage(gen Generation)
}

// State is the lifecycle stage of an Engine.
type State uint8

const (
	// Created engines hold their initial grid and have not run yet.
	Created State = iota
	// Running engines are inside Run.
	Running
	// Stopped engines have left Run and cannot run again.
	Stopped
)

func (s State) String() string {
	switch s {
	case Created:
		return "created"
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Option configures an Engine.
type Option func(*Engine)

// WithRules replaces the default ConwayRules.
func WithRules(r Rules) Option {
	return func(e *Engine) {
		if r != nil {
			e.rules = r
		}
	}
}

// WithDelay sets the pause between rendering a generation and stepping.
func WithDelay(d time.Duration) Option {
	return func(e *Engine) {
		if d >= 0 {
			e.delay = d
		}
	}
}

// Engine owns the current grid and generation and advances them one step at
// a time. It is not safe for concurrent use.
type Engine struct {
	grid    *Grid
	gen     Generation
	rules   Rules
	display Display
	delay   time.Duration
	state   State
}

// NewEngine returns an engine at generation zero.
func NewEngine(grid *Grid, display Display, opts ...Option) (*Engine, error) {
	if grid == nil {
		return nil, errors.New("life: nil grid")
	}
	if display == nil {
		return nil, errors.New("life: nil display")
	}
	e := &Engine{grid: grid, rules: ConwayRules{}, display: display}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Grid returns the current generation's grid.
func (e *Engine) Grid() *Grid { return e.grid }

// Generation returns the current generation.
func (e *Engine) Generation() Generation { return e.gen }

// State returns the engine's lifecycle stage.
func (e *Engine) State() State { return e.state }

// Step advances the simulation by one generation. The next grid is built in
// full before the grid and generation are replaced together.
func (e *Engine) Step() {
	cur := e.grid
	size := cur.Size()
	next := NewGridWithEdge(size, cur.Edge())
	for p := range size.Positions() {
		n := cur.CountLivingNeighbors(p)
		next.cells[size.index(p)] = e.rules.NextState(cur.Cell(p), n)
	}
	e.grid, e.gen = next, e.gen.Next()
}

// Run renders, waits and steps until ctx is cancelled, then shows the exit
// message and returns the last generation reached. Cancellation is the
// normal way to stop and is not reported as an error.
func (e *Engine) Run(ctx context.Context) (Generation, error) {
	switch e.state {
	case Running:
		return e.gen, ErrEngineRunning
	case Stopped:
		return e.gen, ErrEngineStopped
	}
	e.state = Running
	for {
		e.display.Render(e.grid, e.gen)
		if !sleep(ctx, e.delay) {
			break
		}
		e.Step()
	}
	e.state = Stopped
	e.display.ShowExitMessage(e.gen)
	return e.gen, nil
}

// sleep waits for d and reports false if ctx ended first.
func sleep(ctx context.Context, d time.Duration) bool {
	if ctx.Err() != nil {
		return false
	}
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
