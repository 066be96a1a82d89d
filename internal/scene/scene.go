// Package scene composes rendered frames: it culls walls against the camera,
// orders them back to front and paints them with the raster primitives.
package scene

import (
	"log/slog"
	"math"
	"sort"

	"pillarwalk/internal/raster"
	"pillarwalk/internal/world"
)

// Display is where a composed frame goes: a paint target plus the frame
// lifecycle signals of the screen collaborator.
type Display interface {
	raster.Canvas
	// Clear empties the buffer at frame start.
	Clear()
	// Commit pushes the finished frame to the viewer.
	Commit()
}

const (
	outlineChar = '#'
	fillChar    = '.'
)

// Scene composes frames for a fixed character-grid size. It keeps no
// per-frame state; every frame is recomputed from the camera and wall list.
type Scene struct {
	rows, cols int
}

// NewScene returns a scene for a rows x cols display.
func NewScene(rows, cols int) Scene {
	return Scene{rows: rows, cols: cols}
}

// PillarCoords is a pillar projected to screen space: the top and bottom of
// its vertical segment, sharing a column.
type PillarCoords struct {
	Top    raster.Coord
	Bottom raster.Coord
}

// RenderFrame draws one complete frame. Visible walls are painted farthest
// first so that nearer walls overdraw farther ones; the primitives have no
// depth buffer.
func (s Scene) RenderFrame(d Display, cam world.Camera, walls []world.Wall) {
	d.Clear()

	visible := make([]world.Wall, 0, len(walls))
	for _, w := range walls {
		if cam.CanSeeViewable(w) {
			visible = append(visible, w)
		}
	}
	sort.Slice(visible, func(i, j int) bool {
		return world.Distance(cam, visible[i]) > world.Distance(cam, visible[j])
	})

	for _, w := range visible {
		s.drawWall(d, cam, w)
	}

	d.Commit()
}

func (s Scene) drawWall(d Display, cam world.Camera, w world.Wall) {
	c1 := s.pillarCoords(cam, w.Pillar1())
	c2 := s.pillarCoords(cam, w.Pillar2())

	left, right := c1, c2
	if c2.Top.Col < c1.Top.Col {
		left, right = c2, c1
	}

	// Fill only when there is room between the pillar lines. The fill
	// corners are inset by one cell so the fill cannot clobber the outline.
	if right.Top.Col-left.Top.Col > 2 {
		topLeft := left.Top.Shift(1, 1)
		bottomLeft := left.Bottom.Shift(-1, 1)
		topRight := right.Top.Shift(1, -1)
		bottomRight := right.Bottom.Shift(-1, -1)

		if err := raster.FillTriangle(d, topLeft, bottomLeft, topRight, fillChar); err != nil {
			s.logFillSkip(w, "upper", err)
		}
		if err := raster.FillTriangle(d, bottomLeft, topRight, bottomRight, fillChar); err != nil {
			s.logFillSkip(w, "lower", err)
		}
	}

	raster.DrawLine(d, c1.Top, c1.Bottom, outlineChar)
	raster.DrawLine(d, c2.Top, c2.Bottom, outlineChar)
	raster.DrawLine(d, c1.Top, c2.Top, outlineChar)
	raster.DrawLine(d, c1.Bottom, c2.Bottom, outlineChar)
}

// logFillSkip records a failed wall fill. The wall keeps its outline and the
// frame continues; a malformed projection must not abort rendering.
func (s Scene) logFillSkip(w world.Wall, half string, err error) {
	slog.Warn("wall fill skipped",
		"half", half,
		"p1x", w.Pillar1().X(), "p1y", w.Pillar1().Y(),
		"p2x", w.Pillar2().X(), "p2y", w.Pillar2().Y(),
		"err", err)
}

// pillarCoords projects a pillar to screen space. The vertical extent shrinks
// linearly with distance: at FillScreenDistance the segment spans the whole
// screen, at HorizonDistance it collapses onto the horizon row.
func (s Scene) pillarCoords(cam world.Camera, p *world.Pillar) PillarCoords {
	dist := world.Distance(cam, p)
	ang := world.NormalizeAngle(cam.ViewAngleFromCenter(p), -math.Pi, math.Pi)
	halfRows := s.rows / 2
	halfCols := s.cols / 2

	rise := float64(halfRows) * (1 - (dist-cam.FillScreenDistance())/(cam.HorizonDistance()-cam.FillScreenDistance()))
	top := int(float64(halfRows) - rise)
	bottom := int(float64(halfRows) + rise)
	col := int(ang/cam.FOV()*float64(s.cols)) + halfCols

	return PillarCoords{
		Top:    raster.Coord{Row: top, Col: col},
		Bottom: raster.Coord{Row: bottom, Col: col},
	}
}
