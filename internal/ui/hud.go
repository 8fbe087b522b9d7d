//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"conway/pkg/life"
)

// HUDHeight is the height in pixels of the status strip below the grid.
const HUDHeight = 36

const (
	hudPadding   = 6
	lineBaseline = 13
	lineSpacing  = 15
)

// HUD renders the generation counter and population under the simulation view.
type HUD struct {
	panel *ebiten.Image
	width int
}

// NewHUD constructs a HUD spanning the given pixel width.
func NewHUD(width int) *HUD {
	if width < 1 {
		width = 1
	}
	return &HUD{width: width, panel: ebiten.NewImage(width, HUDHeight)}
}

// Draw paints the strip at vertical offset y.
func (h *HUD) Draw(screen *ebiten.Image, y int, grid *life.Grid, gen life.Generation, stopped bool) {
	if h == nil || grid == nil {
		return
	}
	face := basicfont.Face7x13
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	status := fmt.Sprintf("Generation %d", gen.Number())
	if stopped {
		status = fmt.Sprintf("Stopped at generation %d", gen.Number())
	}
	text.Draw(h.panel, status, face, hudPadding, hudPadding+lineBaseline, color.RGBA{R: 220, G: 220, B: 230, A: 255})
	info := fmt.Sprintf("%d alive  %s  %s", grid.Population(), grid.Size(), grid.Edge())
	text.Draw(h.panel, info, face, hudPadding, hudPadding+lineBaseline+lineSpacing, color.RGBA{R: 160, G: 160, B: 170, A: 255})

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, float64(y))
	screen.DrawImage(h.panel, op)
}
