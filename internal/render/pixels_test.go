package render

import (
	"image/color"
	"slices"
	"testing"

	"conway/pkg/life"
)

func TestFillGridRGBA(t *testing.T) {
	g := life.NewGrid(life.MustGridSize(2, 2))
	if err := g.SetCell(life.Position{Row: 1, Col: 0}, life.AliveCell()); err != nil {
		t.Fatal(err)
	}

	buf := make([]byte, 4*4)
	on := color.RGBA{R: 10, G: 20, B: 30, A: 255}
	off := color.RGBA{A: 255}
	fillGridRGBA(buf, g, on, off)

	want := []byte{
		0, 0, 0, 255,
		0, 0, 0, 255,
		10, 20, 30, 255,
		0, 0, 0, 255,
	}
	if !slices.Equal(buf, want) {
		t.Fatalf("pixels = %v, want %v", buf, want)
	}
}
