package world

import "math"

// Entity is anything with a position in the 2D world plane.
type Entity interface {
	X() float64
	Y() float64
}

// Viewable lets a composite entity decide its own visibility instead of
// being subjected to a raw distance and angle check.
type Viewable interface {
	InView(cam Camera) bool
}

// Distance returns the Euclidean distance between two entities.
func Distance(a, b Entity) float64 {
	dx := b.X() - a.X()
	dy := b.Y() - a.Y()
	return math.Sqrt(dx*dx + dy*dy)
}
