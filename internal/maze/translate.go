package maze

import "pillarwalk/internal/world"

// CellSize is the width of one maze cell in world units.
const CellSize = 4.0

// BuildPillars lays a (rows+1) x (cols+1) pillar grid over the cell corners.
// World x grows with columns and world y with rows.
func BuildPillars(m *Maze) [][]world.Pillar {
	pillars := make([][]world.Pillar, m.rows+1)
	for row := 0; row <= m.rows; row++ {
		pillars[row] = make([]world.Pillar, m.cols+1)
		for col := 0; col <= m.cols; col++ {
			pillars[row][col] = world.PillarAt(float64(col)*CellSize, float64(row)*CellSize)
		}
	}
	return pillars
}

// BuildWalls links pillars into renderable walls: the maze border plus every
// interior wall that survived carving.
func BuildWalls(m *Maze, pillars [][]world.Pillar) []world.Wall {
	var walls []world.Wall

	// Border walls. They are never carved away.
	for col := 0; col < m.cols; col++ {
		walls = append(walls,
			world.NewWall(&pillars[0][col], &pillars[0][col+1]),
			world.NewWall(&pillars[m.rows][col], &pillars[m.rows][col+1]),
		)
	}
	for row := 0; row < m.rows; row++ {
		walls = append(walls,
			world.NewWall(&pillars[row][0], &pillars[row+1][0]),
			world.NewWall(&pillars[row][m.cols], &pillars[row+1][m.cols]),
		)
	}

	// Interior walls. A wall between horizontally adjacent cells runs along
	// the shared vertical corner edge, and vice versa.
	for row := 0; row < m.rows; row++ {
		for col := 0; col < m.cols; col++ {
			if m.HasWall(Coordinate{row, col}, Coordinate{row, col + 1}) {
				walls = append(walls, world.NewWall(&pillars[row][col+1], &pillars[row+1][col+1]))
			}
			if m.HasWall(Coordinate{row, col}, Coordinate{row + 1, col}) {
				walls = append(walls, world.NewWall(&pillars[row+1][col], &pillars[row+1][col+1]))
			}
		}
	}

	return walls
}

// StartPosition returns the world coordinates of the start cell's center,
// where the camera begins.
func StartPosition(m *Maze) (x, y float64) {
	return float64(m.start.Col)*CellSize + CellSize/2,
		float64(m.start.Row)*CellSize + CellSize/2
}
