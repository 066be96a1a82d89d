package world

// Pillar is a fixed point obstacle, rendered as a vertical segment.
type Pillar struct {
	x, y float64
}

// PillarAt returns a pillar at the given world position.
func PillarAt(x, y float64) Pillar {
	return Pillar{x: x, y: y}
}

// X returns the pillar's world x position.
func (p Pillar) X() float64 { return p.x }

// Y returns the pillar's world y position.
func (p Pillar) Y() float64 { return p.y }

// Wall is a flat surface spanning two pillars, the renderable unit of the
// environment. The pillars belong to the world that created them; a wall
// only borrows and never mutates them.
type Wall struct {
	p1, p2 *Pillar
}

// NewWall links two pillars into a wall.
func NewWall(p1, p2 *Pillar) Wall {
	return Wall{p1: p1, p2: p2}
}

// Pillar1 returns the first endpoint.
func (w Wall) Pillar1() *Pillar { return w.p1 }

// Pillar2 returns the second endpoint.
func (w Wall) Pillar2() *Pillar { return w.p2 }

// X returns the x of the wall midpoint. Together with Y it gives the wall a
// position of its own for depth sorting.
func (w Wall) X() float64 { return (w.p1.X() + w.p2.X()) / 2 }

// Y returns the y of the wall midpoint.
func (w Wall) Y() float64 { return (w.p1.Y() + w.p2.Y()) / 2 }

// InView reports whether either endpoint is visible. A wall whose endpoints
// are both outside the view cone is treated as not visible even when its
// middle crosses the cone.
func (w Wall) InView(cam Camera) bool {
	return cam.CanSee(w.p1) || cam.CanSee(w.p2)
}
