package raster

import "strings"

// Canvas is the paint target for the drawing primitives. Implementations
// decide what a cell write means (terminal cell, in-memory buffer).
type Canvas interface {
	// Set paints ch at (row, col). Implementations drop writes that fall
	// outside their bounds.
	Set(row, col int, ch rune)
}

// Grid is an in-memory Canvas backed by a dense rune buffer. It records
// exactly what was painted, which makes it the reference target for tests.
type Grid struct {
	rows, cols int
	cells      []rune
}

// NewGrid returns a cleared rows x cols grid.
func NewGrid(rows, cols int) *Grid {
	g := &Grid{rows: rows, cols: cols, cells: make([]rune, rows*cols)}
	g.Clear()
	return g
}

// Rows returns the grid height in cells.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the grid width in cells.
func (g *Grid) Cols() int { return g.cols }

// Set paints ch at (row, col). Out-of-bounds writes are dropped.
func (g *Grid) Set(row, col int, ch rune) {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return
	}
	g.cells[row*g.cols+col] = ch
}

// At returns the rune at (row, col), or ' ' outside the grid.
func (g *Grid) At(row, col int) rune {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return ' '
	}
	return g.cells[row*g.cols+col]
}

// Clear resets every cell to blank.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = ' '
	}
}

// Count returns how many cells currently hold ch.
func (g *Grid) Count(ch rune) int {
	n := 0
	for _, c := range g.cells {
		if c == ch {
			n++
		}
	}
	return n
}

// String renders the grid one text line per row, for test failure output.
func (g *Grid) String() string {
	var b strings.Builder
	for row := 0; row < g.rows; row++ {
		b.WriteString(string(g.cells[row*g.cols : (row+1)*g.cols]))
		b.WriteByte('\n')
	}
	return b.String()
}
