package patterns

// Still lifes, oscillators, a spaceship and a methuselah.
var (
	Block = MustParse("block", `
OO
OO`[1:])

	Beehive = MustParse("beehive", `
.OO.
O..O
.OO.`[1:])

	Blinker = MustParse("blinker", "OOO")

	Toad = MustParse("toad", `
.OOO
OOO.`[1:])

	Glider = MustParse("glider", `
.O.
..O
OOO`[1:])

	RPentomino = MustParse("r-pentomino", `
.OO
OO.
.O.`[1:])
)

func init() {
	for _, p := range []Pattern{Block, Beehive, Blinker, Toad, Glider, RPentomino} {
		Register(p)
	}
}
