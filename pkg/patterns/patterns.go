package patterns

import (
	"bufio"
	"errors"
	"fmt"
	"sort"
	"strings"

	"conway/pkg/life"
)

// ErrUnknownPattern is returned by Lookup for names that were never registered.
var ErrUnknownPattern = errors.New("unknown pattern")

// Pattern is a named set of live cells relative to a (0, 0) origin.
type Pattern struct {
	Name  string
	Cells []life.Position
}

// Width returns the number of columns spanned by the pattern.
func (p Pattern) Width() int {
	w := 0
	for _, c := range p.Cells {
		if c.Col+1 > w {
			w = c.Col + 1
		}
	}
	return w
}

// Height returns the number of rows spanned by the pattern.
func (p Pattern) Height() int {
	h := 0
	for _, c := range p.Cells {
		if c.Row+1 > h {
			h = c.Row + 1
		}
	}
	return h
}

// Parse reads a plaintext pattern: 'O' or '*' marks a live cell, '.' or a
// space a dead one, and lines starting with '!' are comments.
func Parse(name, src string) (Pattern, error) {
	p := Pattern{Name: name}
	sc := bufio.NewScanner(strings.NewReader(src))
	row := 0
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.HasPrefix(line, "!") {
			continue
		}
		for col, ch := range []rune(line) {
			switch ch {
			case 'O', '*':
				p.Cells = append(p.Cells, life.Position{Row: row, Col: col})
			case '.', ' ':
			default:
				return Pattern{}, fmt.Errorf("pattern %q: unexpected %q at row %d col %d", name, ch, row, col)
			}
		}
		row++
	}
	if err := sc.Err(); err != nil {
		return Pattern{}, err
	}
	return p, nil
}

// MustParse is like Parse but panics on malformed input.
func MustParse(name, src string) Pattern {
	p, err := Parse(name, src)
	if err != nil {
		panic(err)
	}
	return p
}

// Stamp sets the pattern's cells alive on g with its top-left corner at
// origin. Nothing is written if any cell would fall outside the grid.
func Stamp(g *life.Grid, p Pattern, origin life.Position) error {
	size := g.Size()
	for _, c := range p.Cells {
		if pos := origin.Offset(c.Row, c.Col); !size.Contains(pos) {
			return fmt.Errorf("%w: pattern %q at %s does not fit %s grid", life.ErrOutOfBounds, p.Name, origin, size)
		}
	}
	for _, c := range p.Cells {
		if err := g.SetCell(origin.Offset(c.Row, c.Col), life.AliveCell()); err != nil {
			return err
		}
	}
	return nil
}

// StampCentered stamps the pattern in the middle of g.
func StampCentered(g *life.Grid, p Pattern) error {
	size := g.Size()
	origin := life.Position{
		Row: (size.Height() - p.Height()) / 2,
		Col: (size.Width() - p.Width()) / 2,
	}
	return Stamp(g, p, origin)
}

var registry = map[string]Pattern{}

// Register adds a pattern under its name.
func Register(p Pattern) {
	if p.Name == "" {
		return
	}
	registry[strings.ToLower(p.Name)] = p
}

// Lookup returns the registered pattern with the given name.
func Lookup(name string) (Pattern, error) {
	p, ok := registry[strings.ToLower(name)]
	if !ok {
		return Pattern{}, fmt.Errorf("%w: %q", ErrUnknownPattern, name)
	}
	return p, nil
}

// Names lists registered pattern names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
