package gamemath

import (
	"math"

	math2 "github.com/yohamta/donburi/features/math"
)

// Rect is an axis-aligned rectangle in world units. X,Y is the bottom-left
// corner; y grows upward.
type Rect struct {
	X, Y, W, H float64
}

// MaxX returns the x-coordinate of the right edge.
func (r Rect) MaxX() float64 {
	return r.X + r.W
}

// MaxY returns the y-coordinate of the top edge.
func (r Rect) MaxY() float64 {
	return r.Y + r.H
}

// Inside reports whether r lies completely within outer.
func (r Rect) Inside(outer Rect) bool {
	return r.X >= outer.X && r.Y >= outer.Y && r.MaxX() <= outer.MaxX() && r.MaxY() <= outer.MaxY()
}

// Grow returns r expanded by margin on every side.
func (r Rect) Grow(margin float64) Rect {
	return Rect{X: r.X - margin, Y: r.Y - margin, W: r.W + 2*margin, H: r.H + 2*margin}
}

// BoundsOf returns the smallest rectangle containing both points.
func BoundsOf(a, b math2.Vec2) Rect {
	minX, maxX := math.Min(a.X, b.X), math.Max(a.X, b.X)
	minY, maxY := math.Min(a.Y, b.Y), math.Max(a.Y, b.Y)
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// Circle is a collision circle.
type Circle struct {
	Center math2.Vec2
	Radius float64
}

// Bounds returns the bounding square of the circle.
func (c Circle) Bounds() Rect {
	return Rect{X: c.Center.X - c.Radius, Y: c.Center.Y - c.Radius, W: 2 * c.Radius, H: 2 * c.Radius}
}

// Overlaps reports strict overlap; touching circles do not collide.
func (c Circle) Overlaps(other Circle) bool {
	r := c.Radius + other.Radius
	return distanceSq(c.Center, other.Center) < r*r
}

// ContainsPoint reports whether p lies strictly inside the circle.
func (c Circle) ContainsPoint(p math2.Vec2) bool {
	return distanceSq(c.Center, p) < c.Radius*c.Radius
}

// IntersectsSegment reports whether the segment a-b passes strictly inside the circle.
func (c Circle) IntersectsSegment(a, b math2.Vec2) bool {
	return c.ContainsPoint(closestOnSegment(c.Center, a, b))
}

// IntersectsRect reports whether the rectangle overlaps the circle interior.
func (c Circle) IntersectsRect(r Rect) bool {
	closest := math2.Vec2{
		X: ClampFloat(c.Center.X, r.X, r.MaxX()),
		Y: ClampFloat(c.Center.Y, r.Y, r.MaxY()),
	}
	return c.ContainsPoint(closest)
}

// SegmentIntersection returns the crossing point of segments a-b and c-d.
// Parallel segments and crossings outside either segment report false.
func SegmentIntersection(a, b, c, d math2.Vec2) (math2.Vec2, bool) {
	rx, ry := b.X-a.X, b.Y-a.Y
	sx, sy := d.X-c.X, d.Y-c.Y

	det := rx*sy - ry*sx
	if det == 0 {
		return math2.Vec2{}, false
	}

	qx, qy := c.X-a.X, c.Y-a.Y
	t := (qx*sy - qy*sx) / det
	u := (qx*ry - qy*rx) / det
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return math2.Vec2{}, false
	}

	return math2.Vec2{X: a.X + t*rx, Y: a.Y + t*ry}, true
}

// PointOnSegment reports whether p lies on segment a-b, endpoints excluded.
// Axis-aligned segments are tested exactly; tolerance bounds the perpendicular
// deviation for any other segment.
func PointOnSegment(p, a, b math2.Vec2, tolerance float64) bool {
	switch {
	case a.Y == b.Y:
		return p.Y == a.Y && strictlyBetween(p.X, a.X, b.X)
	case a.X == b.X:
		return p.X == a.X && strictlyBetween(p.Y, a.Y, b.Y)
	}

	dx, dy := b.X-a.X, b.Y-a.Y
	lengthSq := dx*dx + dy*dy
	r := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / lengthSq
	if r <= 0 || r >= 1 {
		return false
	}

	deviation := math.Abs(dx*(p.Y-a.Y)-dy*(p.X-a.X)) / math.Sqrt(lengthSq)
	return deviation < tolerance
}

// DistanceSq returns the squared distance between two points.
func DistanceSq(a, b math2.Vec2) float64 {
	return distanceSq(a, b)
}

func distanceSq(a, b math2.Vec2) float64 {
	dx, dy := a.X-b.X, a.Y-b.Y
	return dx*dx + dy*dy
}

func closestOnSegment(p, a, b math2.Vec2) math2.Vec2 {
	dx, dy := b.X-a.X, b.Y-a.Y
	lengthSq := dx*dx + dy*dy
	if lengthSq == 0 {
		return a
	}
	t := ClampFloat(((p.X-a.X)*dx+(p.Y-a.Y)*dy)/lengthSq, 0, 1)
	return math2.Vec2{X: a.X + t*dx, Y: a.Y + t*dy}
}

func strictlyBetween(v, a, b float64) bool {
	return v > math.Min(a, b) && v < math.Max(a, b)
}
