// Package maze generates perfect mazes on a rectangular cell grid and
// translates them into the pillar-and-wall world the renderer consumes.
package maze

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

var (
	// ErrParameterNotPositive reports a maze dimension or spacing <= 0.
	ErrParameterNotPositive = errors.New("parameter must be positive")
	// ErrTooSmallForSpacing reports a grid whose diameter cannot satisfy
	// the requested start/finish spacing.
	ErrTooSmallForSpacing = errors.New("maze too small for requested portal spacing")
)

// Coordinate addresses one cell of the maze grid, zero-based.
type Coordinate struct {
	Row int
	Col int
}

// ManhattanTo returns the Manhattan distance to another cell.
func (c Coordinate) ManhattanTo(o Coordinate) int {
	return abs(o.Row-c.Row) + abs(o.Col-c.Col)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// wallKey identifies the wall between two adjacent cells, independent of the
// order the cells are named in.
type wallKey struct {
	a, b Coordinate
}

func newWallKey(c1, c2 Coordinate) wallKey {
	if c2.Row < c1.Row || (c2.Row == c1.Row && c2.Col < c1.Col) {
		c1, c2 = c2, c1
	}
	return wallKey{a: c1, b: c2}
}

// Maze is a rows x cols cell grid plus the set of interior walls still
// standing between adjacent cells, and a start and finish cell.
type Maze struct {
	rows, cols int
	start      Coordinate
	finish     Coordinate
	walls      map[wallKey]struct{}
}

// Generate carves a perfect maze (every cell reachable, no loops) with
// randomized depth-first search, then picks start and finish cells at least
// portalSpacing apart in Manhattan distance.
func Generate(rows, cols, portalSpacing int, rng *rand.Rand) (*Maze, error) {
	if rows <= 0 {
		return nil, fmt.Errorf("rows %d: %w", rows, ErrParameterNotPositive)
	}
	if cols <= 0 {
		return nil, fmt.Errorf("cols %d: %w", cols, ErrParameterNotPositive)
	}
	if portalSpacing <= 0 {
		return nil, fmt.Errorf("portal spacing %d: %w", portalSpacing, ErrParameterNotPositive)
	}
	// The largest possible Manhattan distance is between opposite corners.
	if portalSpacing > (rows-1)+(cols-1) {
		return nil, fmt.Errorf("%dx%d grid, spacing %d: %w", rows, cols, portalSpacing, ErrTooSmallForSpacing)
	}

	m := &Maze{
		rows:  rows,
		cols:  cols,
		walls: initialWalls(rows, cols),
	}
	m.carve(rng)
	m.pickPortals(portalSpacing, rng)
	return m, nil
}

// initialWalls returns a wall between every pair of adjacent cells.
func initialWalls(rows, cols int) map[wallKey]struct{} {
	walls := make(map[wallKey]struct{}, 2*rows*cols)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			if col+1 < cols {
				walls[newWallKey(Coordinate{row, col}, Coordinate{row, col + 1})] = struct{}{}
			}
			if row+1 < rows {
				walls[newWallKey(Coordinate{row, col}, Coordinate{row + 1, col})] = struct{}{}
			}
		}
	}
	return walls
}

// carve removes walls along a randomized depth-first traversal, leaving a
// spanning tree of open passages.
func (m *Maze) carve(rng *rand.Rand) {
	visited := make(map[Coordinate]bool, m.rows*m.cols)
	origin := Coordinate{Row: 0, Col: 0}
	visited[origin] = true
	stack := []Coordinate{origin}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		next, ok := m.unvisitedNeighbor(cur, visited, rng)
		if !ok {
			stack = stack[:len(stack)-1]
			continue
		}
		delete(m.walls, newWallKey(cur, next))
		visited[next] = true
		stack = append(stack, next)
	}
}

func (m *Maze) unvisitedNeighbor(c Coordinate, visited map[Coordinate]bool, rng *rand.Rand) (Coordinate, bool) {
	candidates := make([]Coordinate, 0, 4)
	for _, n := range [4]Coordinate{
		{c.Row - 1, c.Col},
		{c.Row + 1, c.Col},
		{c.Row, c.Col - 1},
		{c.Row, c.Col + 1},
	} {
		if n.Row < 0 || n.Row >= m.rows || n.Col < 0 || n.Col >= m.cols || visited[n] {
			continue
		}
		candidates = append(candidates, n)
	}
	if len(candidates) == 0 {
		return Coordinate{}, false
	}
	return candidates[rng.IntN(len(candidates))], true
}

// pickPortals selects start and finish by rejection sampling until the
// spacing requirement holds. Generate validated that such a pair exists.
func (m *Maze) pickPortals(spacing int, rng *rand.Rand) {
	for {
		p1 := Coordinate{Row: rng.IntN(m.rows), Col: rng.IntN(m.cols)}
		p2 := Coordinate{Row: rng.IntN(m.rows), Col: rng.IntN(m.cols)}
		if p1.ManhattanTo(p2) >= spacing {
			m.start, m.finish = p1, p2
			return
		}
	}
}

// Rows returns the grid height in cells.
func (m *Maze) Rows() int { return m.rows }

// Cols returns the grid width in cells.
func (m *Maze) Cols() int { return m.cols }

// Start returns the entry cell.
func (m *Maze) Start() Coordinate { return m.start }

// Finish returns the exit cell.
func (m *Maze) Finish() Coordinate { return m.finish }

// HasWall reports whether a wall still stands between two adjacent cells.
func (m *Maze) HasWall(c1, c2 Coordinate) bool {
	_, ok := m.walls[newWallKey(c1, c2)]
	return ok
}

// WallCount returns the number of interior walls still standing.
func (m *Maze) WallCount() int { return len(m.walls) }
