package console

import (
	"bytes"
	"strings"
	"testing"

	"conway/pkg/life"
)

func TestRenderFrame(t *testing.T) {
	g := life.NewGrid(life.MustGridSize(3, 2))
	if err := g.SetCell(life.Position{Row: 0, Col: 1}, life.AliveCell()); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	New(&buf, "#", ".", false).Render(g, 7)

	lines := strings.Split(buf.String(), "\n")
	want := []string{
		"╔══════╗",
		"║  Conway's Game of Life - Generation        7  ║",
		"╠══════╣",
		"║..##..║",
		"║......║",
		"╚══════╝",
		"",
		"Press Ctrl+C to stop",
		"",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d:\n%s", len(lines), len(want), buf.String())
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestRenderClearsScreen(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, "#", ".", true).Render(life.NewGrid(life.MustGridSize(1, 1)), 0)
	if !strings.HasPrefix(buf.String(), clearScreen) {
		t.Fatal("frame does not start with the clear sequence")
	}
}

func TestShowExitMessage(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, "#", ".", false).ShowExitMessage(42)
	if !strings.Contains(buf.String(), "Game stopped at generation 42") {
		t.Fatalf("exit message = %q", buf.String())
	}
}
