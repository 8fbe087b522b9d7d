//go:build ebiten

package app

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"io"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"conway/internal/render"
	"conway/internal/ui"
	"conway/pkg/life"
)

// Window is a life.Display backed by an ebiten window. Render only records
// the latest snapshot; ebiten's own loop draws it.
type Window struct {
	painter *render.GridPainter
	hud     *ui.HUD
	out     io.Writer
	stop    func()

	onColor  color.Color
	offColor color.Color
	scale    int
	size     life.GridSize

	mu      sync.Mutex
	grid    *life.Grid
	gen     life.Generation
	stopped bool
}

// NewWindow constructs a window display for grids of the given size. stop is
// called when the user asks to quit.
func NewWindow(size life.GridSize, scale int, out io.Writer, stop func()) *Window {
	if scale < 1 {
		scale = 1
	}
	return &Window{
		painter:  render.NewGridPainter(size),
		hud:      ui.NewHUD(size.Width() * scale),
		out:      out,
		stop:     stop,
		onColor:  color.White,
		offColor: color.Black,
		scale:    scale,
		size:     size,
	}
}

// Render stores the snapshot for the next frame.
func (w *Window) Render(grid *life.Grid, gen life.Generation) {
	w.mu.Lock()
	w.grid, w.gen = grid, gen
	w.mu.Unlock()
}

// ShowExitMessage marks the window as finished and prints the final generation.
func (w *Window) ShowExitMessage(gen life.Generation) {
	w.mu.Lock()
	w.gen, w.stopped = gen, true
	w.mu.Unlock()
	fmt.Fprintf(w.out, "Game stopped at generation %d\nThanks for playing!\n", gen.Number())
}

// Update handles quit keys and closes the window once the engine stopped.
func (w *Window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		w.stop()
	}
	w.mu.Lock()
	stopped := w.stopped
	w.mu.Unlock()
	if stopped {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the latest snapshot and the HUD strip.
func (w *Window) Draw(screen *ebiten.Image) {
	w.mu.Lock()
	grid, gen, stopped := w.grid, w.gen, w.stopped
	w.mu.Unlock()
	w.painter.Blit(screen, grid, w.onColor, w.offColor, w.scale)
	w.hud.Draw(screen, w.size.Height()*w.scale, grid, gen, stopped)
}

// Layout returns the logical screen size.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.size.Width() * w.scale, w.size.Height()*w.scale + ui.HUDHeight
}

// Run opens the window and drives engine on its own goroutine until ctx is
// cancelled or the window is closed. ebiten must own the main goroutine.
func Run(ctx context.Context, engine *life.Engine, w *Window, title string) error {
	errc := make(chan error, 1)
	go func() {
		_, err := engine.Run(ctx)
		errc <- err
	}()

	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(w.Layout(0, 0))
	err := ebiten.RunGame(w)
	w.stop()
	runErr := <-errc
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return runErr
}
