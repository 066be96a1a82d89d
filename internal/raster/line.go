package raster

import "math"

// DrawLine paints a discrete approximation of the segment between from and to
// using a DDA: one cell per column, with a fractional rows-per-column
// accumulator deciding when to step vertically.
//
// Vertical segments paint only the rows strictly between the two endpoints;
// the endpoint cells themselves are left to the caller. Non-vertical segments
// paint both endpoints.
func DrawLine(c Canvas, from, to Coord, fill rune) {
	start, end := from, to
	if to.Col < from.Col {
		start, end = to, from
	}

	colChange := end.Col - start.Col
	rowChange := end.Row - start.Row

	if colChange == 0 {
		low := min(start.Row, end.Row)
		high := max(start.Row, end.Row)
		for row := low + 1; row < high; row++ {
			c.Set(row, start.Col, fill)
		}
		return
	}

	rowsPerCol := float64(rowChange) / float64(colChange)

	acc := 0.0
	row := start.Row

	for idx := 0; idx <= colChange; idx++ {
		col := start.Col + idx
		c.Set(row, col, fill)
		acc += rowsPerCol

		// Steep slopes cross more than one row per column; emit the extra
		// vertical steps before moving on, keeping the sub-cell remainder.
		if math.Abs(acc) >= 1 {
			left := int(acc)
			step := 1
			if rowChange < 0 {
				step = -1
			}
			for left != 0 {
				left -= step
				c.Set(row, col, fill)
				row += step
			}
			acc -= float64(int(acc))
		}
	}
}
