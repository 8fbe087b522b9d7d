package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"conway/pkg/life"
)

const clearScreen = "\x1b[H\x1b[2J"

// Display writes framed text frames to an io.Writer. Each cell is printed as
// two glyphs so the grid looks roughly square in a terminal.
type Display struct {
	out   io.Writer
	alive string
	dead  string
	clear bool
}

// New returns a Display that writes to out. When clear is set, every frame
// starts with an ANSI clear-screen sequence.
func New(out io.Writer, alive, dead string, clear bool) *Display {
	return &Display{out: out, alive: alive, dead: dead, clear: clear}
}

// Render writes one frame for the given generation.
func (d *Display) Render(grid *life.Grid, gen life.Generation) {
	size := grid.Size()
	width := size.Width() * 2
	w := bufio.NewWriter(d.out)
	if d.clear {
		w.WriteString(clearScreen)
	}
	fmt.Fprintf(w, "╔%s╗\n", strings.Repeat("═", width))
	fmt.Fprintf(w, "║  Conway's Game of Life - Generation %8d  ║\n", gen.Number())
	fmt.Fprintf(w, "╠%s╣\n", strings.Repeat("═", width))
	alive := d.alive + d.alive
	dead := d.dead + d.dead
	for row := 0; row < size.Height(); row++ {
		w.WriteString("║")
		for col := 0; col < size.Width(); col++ {
			if grid.Cell(life.Position{Row: row, Col: col}).IsAlive() {
				w.WriteString(alive)
			} else {
				w.WriteString(dead)
			}
		}
		w.WriteString("║\n")
	}
	fmt.Fprintf(w, "╚%s╝\n", strings.Repeat("═", width))
	w.WriteString("\nPress Ctrl+C to stop\n")
	w.Flush()
}

// ShowExitMessage reports the generation the run stopped at.
func (d *Display) ShowExitMessage(gen life.Generation) {
	fmt.Fprintf(d.out, "\n\nGame stopped at generation %d\nThanks for playing!\n", gen.Number())
}
