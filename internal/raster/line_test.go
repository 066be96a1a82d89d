package raster

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoordShift(t *testing.T) {
	c := Coord{Row: 3, Col: 7}
	shifted := c.Shift(-1, 2)

	assert.Equal(t, Coord{Row: 2, Col: 9}, shifted)
	assert.Equal(t, Coord{Row: 3, Col: 7}, c, "shift must not mutate the receiver")
}

func TestDrawLineVerticalPaintsStrictlyBetween(t *testing.T) {
	g := NewGrid(10, 10)
	DrawLine(g, Coord{Row: 0, Col: 0}, Coord{Row: 5, Col: 0}, '#')

	assert.Equal(t, ' ', g.At(0, 0), "lower endpoint row stays blank")
	assert.Equal(t, ' ', g.At(5, 0), "upper endpoint row stays blank")
	for row := 1; row <= 4; row++ {
		assert.Equal(t, '#', g.At(row, 0), "row %d should be painted", row)
	}
	assert.Equal(t, 4, g.Count('#'))
}

func TestDrawLineVerticalEndpointOrderIrrelevant(t *testing.T) {
	a := NewGrid(10, 10)
	b := NewGrid(10, 10)

	DrawLine(a, Coord{Row: 2, Col: 4}, Coord{Row: 8, Col: 4}, '#')
	DrawLine(b, Coord{Row: 8, Col: 4}, Coord{Row: 2, Col: 4}, '#')

	assert.Equal(t, a.String(), b.String())
}

func TestDrawLineDegeneratePoint(t *testing.T) {
	g := NewGrid(5, 5)
	DrawLine(g, Coord{Row: 2, Col: 2}, Coord{Row: 2, Col: 2}, '#')

	assert.Equal(t, 0, g.Count('#'), "a zero-length vertical line paints nothing")
}

func TestDrawLineHorizontal(t *testing.T) {
	g := NewGrid(10, 10)
	DrawLine(g, Coord{Row: 3, Col: 2}, Coord{Row: 3, Col: 7}, '#')

	for col := 2; col <= 7; col++ {
		assert.Equal(t, '#', g.At(3, col), "col %d should be painted", col)
	}
	assert.Equal(t, 6, g.Count('#'), "horizontal lines include both endpoints")
}

func TestDrawLineDiagonal(t *testing.T) {
	g := NewGrid(10, 10)
	DrawLine(g, Coord{Row: 0, Col: 0}, Coord{Row: 5, Col: 5}, '#')

	for i := 0; i <= 5; i++ {
		assert.Equal(t, '#', g.At(i, i), "cell (%d,%d) should be painted", i, i)
	}
}

func TestDrawLineSteepCoversEveryRow(t *testing.T) {
	g := NewGrid(10, 10)
	DrawLine(g, Coord{Row: 0, Col: 0}, Coord{Row: 6, Col: 2}, '#')

	// A 3:1 slope must not leave vertical gaps.
	for row := 0; row <= 6; row++ {
		found := false
		for col := 0; col <= 2; col++ {
			if g.At(row, col) == '#' {
				found = true
			}
		}
		assert.True(t, found, "row %d has no painted cell", row)
	}
	assert.Equal(t, '#', g.At(0, 0))
	assert.Equal(t, '#', g.At(6, 2))
}

func TestDrawLineNegativeSlope(t *testing.T) {
	g := NewGrid(10, 10)
	DrawLine(g, Coord{Row: 5, Col: 0}, Coord{Row: 0, Col: 5}, '#')

	assert.Equal(t, '#', g.At(5, 0))
	assert.Equal(t, '#', g.At(0, 5))
	// Every column between the endpoints gets at least one cell.
	for col := 0; col <= 5; col++ {
		found := false
		for row := 0; row <= 5; row++ {
			if g.At(row, col) == '#' {
				found = true
			}
		}
		assert.True(t, found, "col %d has no painted cell", col)
	}
}

func TestDrawLineClipsOutsideGrid(t *testing.T) {
	g := NewGrid(4, 4)
	DrawLine(g, Coord{Row: -3, Col: -3}, Coord{Row: 8, Col: 8}, '#')

	// Out-of-bounds writes are dropped, in-bounds diagonal survives.
	for i := 0; i < 4; i++ {
		assert.Equal(t, '#', g.At(i, i))
	}
}
