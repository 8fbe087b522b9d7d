package term

import (
	"fmt"
	"io"
	"sync"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"conway/pkg/life"
)

// Display renders generations onto a tcell screen. Each cell takes two
// columns so the grid keeps a square-ish aspect.
type Display struct {
	screen tcell.Screen
	out    io.Writer

	alive rune
	dead  rune

	cellStyle   tcell.Style
	headerStyle tcell.Style
	footerStyle tcell.Style

	finiOnce sync.Once
}

// New wraps an initialised screen. The exit message is written to out once
// the screen has been released.
func New(screen tcell.Screen, out io.Writer, alive, dead string) *Display {
	return &Display{
		screen:      screen,
		out:         out,
		alive:       firstRune(alive, '█'),
		dead:        firstRune(dead, ' '),
		cellStyle:   tcell.StyleDefault.Foreground(tcell.ColorGreen),
		headerStyle: tcell.StyleDefault.Bold(true),
		footerStyle: tcell.StyleDefault.Foreground(tcell.ColorGray),
	}
}

func firstRune(s string, fallback rune) rune {
	r, _ := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return fallback
	}
	return r
}

// Render draws the header, the grid and a key hint, then flushes the screen.
func (d *Display) Render(grid *life.Grid, gen life.Generation) {
	size := grid.Size()
	d.screen.Clear()
	d.drawText(0, 0, fmt.Sprintf("Conway's Game of Life - Generation %d  (%s, %d alive)", gen.Number(), size, grid.Population()), d.headerStyle)
	for row := 0; row < size.Height(); row++ {
		for col := 0; col < size.Width(); col++ {
			ch := d.dead
			if grid.Cell(life.Position{Row: row, Col: col}).IsAlive() {
				ch = d.alive
			}
			d.screen.SetContent(col*2, row+1, ch, nil, d.cellStyle)
			d.screen.SetContent(col*2+1, row+1, ch, nil, d.cellStyle)
		}
	}
	d.drawText(0, size.Height()+2, "Press Ctrl+C, Esc or q to stop", d.footerStyle)
	d.screen.Show()
}

func (d *Display) drawText(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		d.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// ShowExitMessage releases the screen and prints the final generation.
func (d *Display) ShowExitMessage(gen life.Generation) {
	d.Close()
	fmt.Fprintf(d.out, "Game stopped at generation %d\nThanks for playing!\n", gen.Number())
}

// Close restores the terminal. It is safe to call more than once.
func (d *Display) Close() {
	d.finiOnce.Do(d.screen.Fini)
}

// HandleInput polls screen events until the screen is closed, calling stop
// when the user presses Ctrl+C, Esc or q. Resizes trigger a full redraw.
func (d *Display) HandleInput(stop func()) {
	for {
		ev := d.screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return
		case *tcell.EventResize:
			d.screen.Sync()
		case *tcell.EventKey:
			if isQuit(ev) {
				stop()
			}
		}
	}
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}
