package patterns

import (
	"errors"
	"slices"
	"testing"

	"conway/pkg/life"
)

type nopDisplay struct{}

func (nopDisplay) Render(*life.Grid, life.Generation) {}
func (nopDisplay) ShowExitMessage(life.Generation) {}

func stamped(t *testing.T, p Pattern, origin life.Position) *life.Engine {
	t.Helper()
	g := life.NewGrid(life.MustGridSize(30, 30))
	if err := Stamp(g, p, origin); err != nil {
		t.Fatal(err)
	}
	e, err := life.NewEngine(g, nopDisplay{})
	if err != nil {
		t.Fatal(err)
	}
	return e
}

func TestParse(t *testing.T) {
	p, err := Parse("test", "! comment\n.O\nO.\n")
	if err != nil {
		t.Fatal(err)
	}
	want := []life.Position{{Row: 0, Col: 1}, {Row: 1, Col: 0}}
	if !slices.Equal(p.Cells, want) {
		t.Fatalf("cells = %v, want %v", p.Cells, want)
	}
	if p.Width() != 2 || p.Height() != 2 {
		t.Fatalf("bounds = %dx%d, want 2x2", p.Width(), p.Height())
	}

	if _, err := Parse("bad", "O#O"); err == nil {
		t.Fatal("Parse accepted an unknown glyph")
	}
}

func TestLookup(t *testing.T) {
	for _, name := range []string{"block", "beehive", "blinker", "toad", "glider", "r-pentomino"} {
		if _, err := Lookup(name); err != nil {
			t.Fatalf("Lookup(%q): %v", name, err)
		}
	}
	if _, err := Lookup("Glider"); err != nil {
		t.Fatal("Lookup should be case-insensitive")
	}
	if _, err := Lookup("gosper-gun"); !errors.Is(err, ErrUnknownPattern) {
		t.Fatalf("Lookup of missing pattern err = %v", err)
	}
	if !slices.IsSorted(Names()) || len(Names()) < 6 {
		t.Fatalf("Names() = %v", Names())
	}
}

func TestStampOutOfBoundsWritesNothing(t *testing.T) {
	g := life.NewGrid(life.MustGridSize(4, 4))
	err := Stamp(g, Glider, life.Position{Row: 2, Col: 2})
	if !errors.Is(err, life.ErrOutOfBounds) {
		t.Fatalf("Stamp err = %v, want ErrOutOfBounds", err)
	}
	if g.Population() != 0 {
		t.Fatal("partial stamp left cells behind")
	}
}

func TestStampCentered(t *testing.T) {
	g := life.NewGrid(life.MustGridSize(5, 5))
	if err := StampCentered(g, Blinker); err != nil {
		t.Fatal(err)
	}
	if got, want := g.String(), ".....\n.....\n.OOO.\n.....\n.....\n"; got != want {
		t.Fatalf("centered blinker:\n%s\nwant:\n%s", got, want)
	}
}

func TestStillLifes(t *testing.T) {
	for _, p := range []Pattern{Block, Beehive} {
		e := stamped(t, p, life.Position{Row: 14, Col: 14})
		initial := e.Grid()
		for i := 0; i < 10; i++ {
			e.Step()
		}
		if !e.Grid().Equal(initial) {
			t.Fatalf("%s changed after 10 generations:\n%s", p.Name, e.Grid())
		}
	}
}

func TestPeriodTwoOscillators(t *testing.T) {
	for _, p := range []Pattern{Blinker, Toad} {
		e := stamped(t, p, life.Position{Row: 15, Col: 14})
		initial := e.Grid()

		e.Step()
		if e.Grid().Equal(initial) {
			t.Fatalf("%s unchanged after one step", p.Name)
		}
		if e.Grid().Population() != len(p.Cells) {
			t.Fatalf("%s population %d after one step, want %d", p.Name, e.Grid().Population(), len(p.Cells))
		}

		e.Step()
		if !e.Grid().Equal(initial) {
			t.Fatalf("%s did not return after two steps:\n%s", p.Name, e.Grid())
		}
	}
}

func TestGliderTranslatesEveryFourSteps(t *testing.T) {
	e := stamped(t, Glider, life.Position{Row: 5, Col: 5})
	for i := 0; i < 4; i++ {
		e.Step()
	}

	want := life.NewGrid(life.MustGridSize(30, 30))
	if err := Stamp(want, Glider, life.Position{Row: 6, Col: 6}); err != nil {
		t.Fatal(err)
	}
	if !e.Grid().Equal(want) {
		t.Fatalf("glider after 4 steps:\n%s\nwant:\n%s", e.Grid(), want)
	}
}

func TestRPentominoOutlivesHundredGenerations(t *testing.T) {
	e := stamped(t, RPentomino, life.Position{Row: 15, Col: 15})
	for i := 0; i < 100; i++ {
		e.Step()
	}
	if e.Grid().Population() == 0 {
		t.Fatal("r-pentomino died out within 100 generations")
	}
}
