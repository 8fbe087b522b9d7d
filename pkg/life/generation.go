package life

import "strconv"

// Generation counts completed simulation steps, starting at zero.
type Generation uint64

// Next returns the following generation.
func (g Generation) Next() Generation { return g + 1 }

// Number returns the generation as a plain integer.
func (g Generation) Number() uint64 { return uint64(g) }

func (g Generation) String() string { return strconv.FormatUint(uint64(g), 10) }
