package implicit

import (
	"fmt"
	"math"
)

// Node is a point in problem space.
type Node struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Pt returns the node (x, y).
func Pt(x, y float64) Node {
	return Node{X: x, Y: y}
}

func (n Node) String() string {
	return fmt.Sprintf("(%g, %g)", n.X, n.Y)
}

func (n Node) Translate(v Vec2) Node {
	return Node{
		X: n.X + v.X,
		Y: n.Y + v.Y,
	}
}

func (n Node) Transform(aff Affine) Node {
	return Node{
		X: aff.N0*n.X + aff.N2*n.Y + aff.N4,
		Y: aff.N1*n.X + aff.N3*n.Y + aff.N5,
	}
}

// Sub computes n−o.
func (n Node) Sub(o Node) Vec2 {
	return Vec2{
		X: n.X - o.X,
		Y: n.Y - o.Y,
	}
}

// Midpoint returns the midpoint of two nodes.
func (n Node) Midpoint(o Node) Node {
	return Node{
		X: 0.5 * (n.X + o.X),
		Y: 0.5 * (n.Y + o.Y),
	}
}

// Distance returns the euclidean distance between two nodes.
func (n Node) Distance(o Node) float64 {
	return math.Hypot(n.X-o.X, n.Y-o.Y)
}

// Within reports whether o lies within d of n along both axes.
func (n Node) Within(o Node, d float64) bool {
	return math.Abs(n.X-o.X) <= d && math.Abs(n.Y-o.Y) <= d
}

// IsInf reports whether at least one of x and y is infinite.
func (n Node) IsInf() bool {
	return math.IsInf(n.X, 0) || math.IsInf(n.Y, 0)
}

// IsNaN reports whether at least one of x and y is NaN.
func (n Node) IsNaN() bool {
	return math.IsNaN(n.X) || math.IsNaN(n.Y)
}
