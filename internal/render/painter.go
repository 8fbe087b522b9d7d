//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"conway/pkg/life"
)

// GridPainter updates a single RGBA image from a grid, one pixel per cell.
type GridPainter struct {
	size life.GridSize
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for grids of the given size.
func NewGridPainter(size life.GridSize) *GridPainter {
	return &GridPainter{
		size: size,
		img:  ebiten.NewImage(size.Width(), size.Height()),
		buf:  make([]byte, 4*size.Area()),
	}
}

// Blit uploads the grid into the painter image and draws it scaled onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, grid *life.Grid, on, off color.Color, scale int) {
	if grid == nil || grid.Size() != gp.size {
		return
	}
	fillGridRGBA(gp.buf, grid, on, off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}
