package scene

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pillarwalk/internal/raster"
	"pillarwalk/internal/world"
)

// recordingDisplay is an in-memory Display that also keeps the paint order,
// so tests can check painter's-algorithm ordering.
type recordingDisplay struct {
	*raster.Grid
	ops     []raster.Coord
	clears  int
	commits int
}

var _ Display = (*recordingDisplay)(nil)

func newRecordingDisplay(rows, cols int) *recordingDisplay {
	return &recordingDisplay{Grid: raster.NewGrid(rows, cols)}
}

func (d *recordingDisplay) Set(row, col int, ch rune) {
	d.ops = append(d.ops, raster.Coord{Row: row, Col: col})
	d.Grid.Set(row, col, ch)
}

func (d *recordingDisplay) Clear() {
	d.clears++
	d.ops = nil
	d.Grid.Clear()
}

func (d *recordingDisplay) Commit() {
	d.commits++
}

func sceneCamera() world.Camera {
	return world.NewCamera(0, 0, 0, math.Pi/2, 2, 15)
}

func TestPillarProjectionCenterScreen(t *testing.T) {
	s := NewScene(24, 80)
	cam := sceneCamera()
	p := world.PillarAt(5, 0)

	coords := s.pillarCoords(cam, &p)

	assert.Equal(t, 40, coords.Top.Col, "pillar dead ahead projects to screen center")
	assert.Equal(t, coords.Top.Col, coords.Bottom.Col)
	assert.Less(t, coords.Top.Row, 12)
	assert.Greater(t, coords.Bottom.Row, 12)
}

func TestPillarProjectionAtFillScreenDistance(t *testing.T) {
	s := NewScene(24, 80)
	cam := sceneCamera()
	p := world.PillarAt(2, 0) // exactly at fill-screen distance

	coords := s.pillarCoords(cam, &p)

	assert.Equal(t, 0, coords.Top.Row, "segment spans the full screen height")
	assert.Equal(t, 24, coords.Bottom.Row)
}

func TestPillarProjectionAtHorizonCollapses(t *testing.T) {
	s := NewScene(24, 80)
	cam := sceneCamera()
	p := world.PillarAt(15, 0) // exactly at the horizon

	coords := s.pillarCoords(cam, &p)

	assert.Equal(t, 12, coords.Top.Row)
	assert.Equal(t, 12, coords.Bottom.Row, "zero extent at the horizon")
}

func TestPillarProjectionColumnSides(t *testing.T) {
	s := NewScene(24, 80)
	cam := sceneCamera()

	left := world.PillarAt(5, 1)
	right := world.PillarAt(5, -1)
	leftCoords := s.pillarCoords(cam, &left)
	rightCoords := s.pillarCoords(cam, &right)

	assert.Less(t, leftCoords.Top.Col, 40, "positive y lands left of center")
	assert.Greater(t, rightCoords.Top.Col, 40, "negative y lands right of center")
}

func TestRenderFrameDrawsVisibleWall(t *testing.T) {
	s := NewScene(24, 80)
	cam := sceneCamera()
	d := newRecordingDisplay(24, 80)

	p1 := world.PillarAt(5, 1)
	p2 := world.PillarAt(5, -1)
	walls := []world.Wall{world.NewWall(&p1, &p2)}

	s.RenderFrame(d, cam, walls)

	assert.Equal(t, 1, d.clears)
	assert.Equal(t, 1, d.commits)
	assert.Positive(t, d.Count('#'), "outline should be painted")
	assert.Positive(t, d.Count('.'), "face should be filled")
	assert.Equal(t, '.', d.At(12, 40), "screen center is inside the wall face")
}

func TestRenderFrameCullsWallBehindCamera(t *testing.T) {
	s := NewScene(24, 80)
	cam := sceneCamera()
	d := newRecordingDisplay(24, 80)

	p1 := world.PillarAt(-5, 1)
	p2 := world.PillarAt(-5, -1)
	walls := []world.Wall{world.NewWall(&p1, &p2)}

	s.RenderFrame(d, cam, walls)

	assert.Equal(t, 1, d.commits, "frame still commits")
	assert.Empty(t, d.ops, "an invisible wall paints nothing")
}

func TestRenderFramePaintsFartherWallFirst(t *testing.T) {
	s := NewScene(24, 80)
	cam := sceneCamera()
	d := newRecordingDisplay(24, 80)

	// Near wall on the left side of the view, far wall on the right, so
	// their screen columns do not overlap and the paint order is visible
	// in the op log.
	nearA := world.PillarAt(4, 2)
	nearB := world.PillarAt(4, 3.5)
	farA := world.PillarAt(8, -2)
	farB := world.PillarAt(8, -3.5)

	near := world.NewWall(&nearA, &nearB)
	far := world.NewWall(&farA, &farB)

	s.RenderFrame(d, cam, []world.Wall{near, far})
	require.NotEmpty(t, d.ops)

	lastFar := -1
	firstNear := len(d.ops)
	for i, op := range d.ops {
		if op.Col > 45 && i > lastFar {
			lastFar = i
		}
		if op.Col < 30 && i < firstNear {
			firstNear = i
		}
	}
	require.GreaterOrEqual(t, lastFar, 0, "far wall should paint cells")
	require.Less(t, firstNear, len(d.ops), "near wall should paint cells")
	assert.Less(t, lastFar, firstNear, "the farther wall must be painted strictly before the nearer one")
}

func TestRenderFrameNearWallOverdrawsFarWall(t *testing.T) {
	s := NewScene(24, 80)
	cam := sceneCamera()
	d := newRecordingDisplay(24, 80)

	// Both walls dead ahead; the near face must end up on top at center.
	nearA := world.PillarAt(5, 1.5)
	nearB := world.PillarAt(5, -1.5)
	farA := world.PillarAt(10, 3)
	farB := world.PillarAt(10, -3)

	walls := []world.Wall{
		world.NewWall(&farA, &farB),
		world.NewWall(&nearA, &nearB),
	}
	s.RenderFrame(d, cam, walls)

	// The near wall at distance 5 rises higher than the far wall at 10, so
	// the cell just inside the near wall's top edge belongs to the near face.
	nearTop := s.pillarCoords(cam, &nearA).Top
	farTop := s.pillarCoords(cam, &farA).Top
	require.Less(t, nearTop.Row, farTop.Row)
	assert.Equal(t, '.', d.At(12, 40), "center cell holds the near wall's fill")
}
