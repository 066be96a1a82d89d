package raster

import "fmt"

// Coord is a position on the character grid, addressed as (row, col).
// Row 0 is the top of the screen, col 0 the left edge.
type Coord struct {
	Row int
	Col int
}

// Shift returns a copy of the coordinate translated by (dRow, dCol).
func (c Coord) Shift(dRow, dCol int) Coord {
	return Coord{Row: c.Row + dRow, Col: c.Col + dCol}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}
