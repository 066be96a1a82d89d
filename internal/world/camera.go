package world

import "math"

// Camera is the viewer pose: position, facing direction and view parameters.
// All operations return new values, so a Camera in hand is a stable snapshot
// for the duration of a frame.
type Camera struct {
	x, y           float64
	facing         float64 // radians, kept in [0, 2π)
	fov            float64
	fillScreenDist float64 // distance at which a wall spans the full screen height
	horizonDist    float64 // nothing at or beyond this distance is visible
}

// NewCamera returns a camera at (x, y) facing along the given angle.
// fillScreenDist must be positive and smaller than horizonDist; see
// config.Validate.
func NewCamera(x, y, facing, fov, fillScreenDist, horizonDist float64) Camera {
	return Camera{
		x:              x,
		y:              y,
		facing:         NormalizeAngle(facing, 0, TwoPi),
		fov:            fov,
		fillScreenDist: fillScreenDist,
		horizonDist:    horizonDist,
	}
}

// X returns the camera's world x position.
func (c Camera) X() float64 { return c.x }

// Y returns the camera's world y position.
func (c Camera) Y() float64 { return c.y }

// Facing returns the facing direction in radians, normalized to [0, 2π).
func (c Camera) Facing() float64 { return c.facing }

// FOV returns the angular width of the view cone.
func (c Camera) FOV() float64 { return c.fov }

// FillScreenDistance returns the distance at which an entity's projection
// spans the full vertical screen extent.
func (c Camera) FillScreenDistance() float64 { return c.fillScreenDist }

// HorizonDistance returns the maximum visible distance.
func (c Camera) HorizonDistance() float64 { return c.horizonDist }

// ViewAngleFromCenter returns the signed angular offset of the entity from
// the facing direction. The result is raw angle arithmetic and must be
// normalized before any range check.
func (c Camera) ViewAngleFromCenter(e Entity) float64 {
	return c.facing - math.Atan2(e.Y()-c.y, e.X()-c.x)
}

// CanSee reports whether the entity falls inside the view cone and in front
// of the horizon.
func (c Camera) CanSee(e Entity) bool {
	ang := NormalizeAngle(c.ViewAngleFromCenter(e), -math.Pi, math.Pi)
	half := c.fov / 2
	return ang >= -half && ang < half && Distance(c, e) < c.horizonDist
}

// CanSeeViewable delegates the visibility decision to the entity itself.
func (c Camera) CanSeeViewable(v Viewable) bool {
	return v.InView(c)
}

// Update returns a camera rotated by angle and advanced forward along the
// new facing direction. The receiver is untouched.
func (c Camera) Update(forward, angle float64) Camera {
	next := c
	next.facing = NormalizeAngle(c.facing+angle, 0, TwoPi)
	next.x = c.x + forward*math.Cos(next.facing)
	next.y = c.y + forward*math.Sin(next.facing)
	return next
}
