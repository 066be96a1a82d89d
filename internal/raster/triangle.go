package raster

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

var (
	// ErrTopAndBottomDoNotAlign reports a trapezoid whose top and bottom
	// edges span different column ranges.
	ErrTopAndBottomDoNotAlign = errors.New("top and bottom edges do not align")
	// ErrTopIsBelowBottom reports a trapezoid whose top edge sits below its
	// bottom edge at a shared column.
	ErrTopIsBelowBottom = errors.New("top edge is below bottom edge")
)

// TriangleFillError reports which part of a triangle decomposition failed,
// with the four trapezoid corners involved so the case can be reproduced.
type TriangleFillError struct {
	// Part is 1 or 2 for the halves of the general split, 0 when the
	// triangle had a vertical edge and was filled as a single trapezoid.
	Part        int
	TopStart    Coord
	TopEnd      Coord
	BottomStart Coord
	BottomEnd   Coord
	Err         error
}

func (e *TriangleFillError) Error() string {
	return fmt.Sprintf("triangle fill part %d (top %v..%v, bottom %v..%v): %v",
		e.Part, e.TopStart, e.TopEnd, e.BottomStart, e.BottomEnd, e.Err)
}

func (e *TriangleFillError) Unwrap() error { return e.Err }

// FillTriangle fills the interior of the triangle with corners c1, c2, c3.
// Collinear corners degenerate to a single line and never fail. Any other
// failure comes back as a *TriangleFillError.
func FillTriangle(c Canvas, c1, c2, c3 Coord, fill rune) error {
	corners := []Coord{c1, c2, c3}
	sort.Slice(corners, func(i, j int) bool { return corners[i].Col < corners[j].Col })
	lowCol, midCol, highCol := corners[0], corners[1], corners[2]

	// All corners on one row: a horizontal line.
	if lowCol.Row == midCol.Row && lowCol.Row == highCol.Row {
		DrawLine(c, lowCol, highCol, fill)
		return nil
	}
	// All corners on one column: a vertical line.
	if lowCol.Col == midCol.Col && lowCol.Col == highCol.Col {
		lowest := min(lowCol.Row, midCol.Row, highCol.Row)
		highest := max(lowCol.Row, midCol.Row, highCol.Row)
		DrawLine(c, Coord{Row: lowest, Col: lowCol.Col}, Coord{Row: highest, Col: lowCol.Col}, fill)
		return nil
	}

	fillRegion := func(part int, topStart, topEnd, bottomStart, bottomEnd Coord) error {
		if err := fillRegionBetweenLines(c, topStart, topEnd, bottomStart, bottomEnd, fill); err != nil {
			return &TriangleFillError{
				Part:        part,
				TopStart:    topStart,
				TopEnd:      topEnd,
				BottomStart: bottomStart,
				BottomEnd:   bottomEnd,
				Err:         err,
			}
		}
		return nil
	}

	// Vertical edge on the left: one trapezoid with the high corner as apex.
	if lowCol.Col == midCol.Col {
		topStart, bottomStart := lowCol, midCol
		if lowCol.Row > midCol.Row {
			topStart, bottomStart = midCol, lowCol
		}
		return fillRegion(0, topStart, highCol, bottomStart, highCol)
	}
	// Vertical edge on the right.
	if midCol.Col == highCol.Col {
		topEnd, bottomEnd := midCol, highCol
		if midCol.Row > highCol.Row {
			topEnd, bottomEnd = highCol, midCol
		}
		return fillRegion(0, lowCol, topEnd, lowCol, bottomEnd)
	}

	// General case: split at the middle corner's column. The second midpoint
	// is where that column crosses the low-high edge.
	longSlope := float64(highCol.Row-lowCol.Row) / float64(highCol.Col-lowCol.Col)
	midDist := midCol.Col - lowCol.Col
	secondMid := Coord{Row: lowCol.Row + int(longSlope*float64(midDist)), Col: midCol.Col}

	// Middle corner sits on the low-high edge: the triangle is a line.
	if secondMid.Row == midCol.Row {
		DrawLine(c, lowCol, highCol, fill)
		return nil
	}

	upper, lower := secondMid, midCol
	if secondMid.Row > midCol.Row {
		upper, lower = midCol, secondMid
	}

	if err := fillRegion(1, lowCol, upper, lowCol, lower); err != nil {
		return err
	}
	return fillRegion(2, upper, highCol, lower, highCol)
}

// fillRegionBetweenLines fills the quadrilateral between a top and a bottom
// edge that span the same column range. Each edge advances with its own DDA
// accumulator; at every column the rows from the top edge to the bottom edge
// inclusive are painted.
func fillRegionBetweenLines(c Canvas, topStart, topEnd, bottomStart, bottomEnd Coord, fill rune) error {
	topLeft, topRight := topStart, topEnd
	if topStart.Col > topEnd.Col {
		topLeft, topRight = topEnd, topStart
	}
	bottomLeft, bottomRight := bottomStart, bottomEnd
	if bottomStart.Col > bottomEnd.Col {
		bottomLeft, bottomRight = bottomEnd, bottomStart
	}

	if topLeft.Col != bottomLeft.Col || topRight.Col != bottomRight.Col {
		return ErrTopAndBottomDoNotAlign
	}
	if topLeft.Row > bottomLeft.Row || topRight.Row > bottomRight.Row {
		return ErrTopIsBelowBottom
	}

	colChange := topRight.Col - topLeft.Col

	// Both edges collapsed onto one column: paint the single span.
	if colChange == 0 {
		for row := topLeft.Row; row <= bottomLeft.Row; row++ {
			c.Set(row, topLeft.Col, fill)
		}
		return nil
	}

	topPerCol := float64(topRight.Row-topLeft.Row) / float64(colChange)
	bottomPerCol := float64(bottomRight.Row-bottomLeft.Row) / float64(colChange)

	topAcc, bottomAcc := 0.0, 0.0
	topRow, bottomRow := topLeft.Row, bottomLeft.Row

	for idx := 0; idx <= colChange; idx++ {
		col := topLeft.Col + idx
		for row := topRow; row <= bottomRow; row++ {
			c.Set(row, col, fill)
		}

		topAcc += topPerCol
		bottomAcc += bottomPerCol
		if math.Abs(topAcc) >= 1 {
			n := int(topAcc)
			topRow += n
			topAcc -= float64(n)
		}
		if math.Abs(bottomAcc) >= 1 {
			n := int(bottomAcc)
			bottomRow += n
			bottomAcc -= float64(n)
		}
	}

	return nil
}
