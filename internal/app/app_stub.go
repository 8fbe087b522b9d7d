//go:build !ebiten

package app

import (
	"context"
	"io"

	"conway/pkg/life"
)

// Window is a placeholder that satisfies the API expected by the GUI build.
type Window struct{}

// NewWindow returns a placeholder; Run reports ErrUnavailable.
func NewWindow(life.GridSize, int, io.Writer, func()) *Window { return &Window{} }

// Render is a no-op placeholder.
func (w *Window) Render(*life.Grid, life.Generation) {}

// ShowExitMessage is a no-op placeholder.
func (w *Window) ShowExitMessage(life.Generation) {}

// Run always reports that the GUI build tag is missing.
func Run(context.Context, *life.Engine, *Window, string) error {
	return ErrUnavailable
}
