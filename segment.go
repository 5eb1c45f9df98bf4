package implicit

import "math"

// Segment is a short line segment approximating a piece of the zero set.
// The order of its end points carries no meaning.
type Segment struct {
	P0 Node `yaml:"p0"`
	P1 Node `yaml:"p1"`
}

// Seg returns the segment from p0 to p1.
func Seg(p0, p1 Node) Segment {
	return Segment{P0: p0, P1: p1}
}

// Length returns the length of the segment.
func (s Segment) Length() float64 {
	return s.P1.Sub(s.P0).Hypot()
}

// Midpoint returns the point halfway between the end points.
func (s Segment) Midpoint() Node {
	return s.P0.Midpoint(s.P1)
}

func (s Segment) IsInf() bool {
	return s.P0.IsInf() || s.P1.IsInf()
}

func (s Segment) IsNaN() bool {
	return s.P0.IsNaN() || s.P1.IsNaN()
}

func (s Segment) Transform(aff Affine) Segment {
	return Segment{
		P0: s.P0.Transform(aff),
		P1: s.P1.Transform(aff),
	}
}

// Equal reports whether s and o have the same end points, in either order.
func (s Segment) Equal(o Segment) bool {
	return (s.P0 == o.P0 && s.P1 == o.P1) || (s.P0 == o.P1 && s.P1 == o.P0)
}

// BoundingBox returns the smallest viewport containing both end points.
func (s Segment) BoundingBox() Viewport {
	return Viewport{
		X1: math.Min(s.P0.X, s.P1.X),
		X2: math.Max(s.P0.X, s.P1.X),
		Y1: math.Min(s.P0.Y, s.P1.Y),
		Y2: math.Max(s.P0.Y, s.P1.Y),
	}
}
