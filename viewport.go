package implicit

import (
	"fmt"
	"math"
)

// Viewport is the rectangle [X1, X2] × [Y1, Y2] of problem space that is
// plotted. A valid viewport has X1 < X2 and Y1 < Y2.
type Viewport struct {
	X1 float64 `yaml:"x1"`
	X2 float64 `yaml:"x2"`
	Y1 float64 `yaml:"y1"`
	Y2 float64 `yaml:"y2"`
}

// Bounds returns the viewport [x1, x2] × [y1, y2].
func Bounds(x1, x2, y1, y2 float64) Viewport {
	return Viewport{X1: x1, X2: x2, Y1: y1, Y2: y2}
}

func (vp Viewport) String() string {
	return fmt.Sprintf("[%g, %g]×[%g, %g]", vp.X1, vp.X2, vp.Y1, vp.Y2)
}

// Validate returns an error if vp is empty, inverted, or not finite.
func (vp Viewport) Validate() error {
	if vp.IsNaN() || vp.IsInf() {
		return fmt.Errorf("%w: %v is not finite", ErrDegenerateViewport, vp)
	}
	if vp.X2 <= vp.X1 || vp.Y2 <= vp.Y1 {
		return fmt.Errorf("%w: %v", ErrDegenerateViewport, vp)
	}
	return nil
}

// Width returns X2 − X1.
func (vp Viewport) Width() float64 { return vp.X2 - vp.X1 }

// Height returns Y2 − Y1.
func (vp Viewport) Height() float64 { return vp.Y2 - vp.Y1 }

func (vp Viewport) Size() Size {
	return Size{
		Width:  vp.Width(),
		Height: vp.Height(),
	}
}

func (vp Viewport) Center() Node {
	return Node{
		X: 0.5 * (vp.X1 + vp.X2),
		Y: 0.5 * (vp.Y1 + vp.Y2),
	}
}

// Contains reports whether n lies inside vp, borders included.
func (vp Viewport) Contains(n Node) bool {
	return n.X >= vp.X1 &&
		n.X <= vp.X2 &&
		n.Y >= vp.Y1 &&
		n.Y <= vp.Y2
}

// ContainsViewport reports whether o lies entirely inside vp.
func (vp Viewport) ContainsViewport(o Viewport) bool {
	return o.X1 >= vp.X1 && o.X2 <= vp.X2 && o.Y1 >= vp.Y1 && o.Y2 <= vp.Y2
}

// Pan moves the viewport by v.
func (vp Viewport) Pan(v Vec2) Viewport {
	return Viewport{
		X1: vp.X1 + v.X,
		X2: vp.X2 + v.X,
		Y1: vp.Y1 + v.Y,
		Y2: vp.Y2 + v.Y,
	}
}

// Inflate grows the viewport by dx on the left and right and by dy at the
// top and bottom.
func (vp Viewport) Inflate(dx, dy float64) Viewport {
	return Viewport{
		X1: vp.X1 - dx,
		X2: vp.X2 + dx,
		Y1: vp.Y1 - dy,
		Y2: vp.Y2 + dy,
	}
}

// ZoomAbout scales the viewport by 1/factor around focus, which keeps its
// position. A factor above 1 zooms in.
func (vp Viewport) ZoomAbout(focus Node, factor float64) Viewport {
	return Viewport{
		X1: focus.X - (focus.X-vp.X1)/factor,
		X2: focus.X + (vp.X2-focus.X)/factor,
		Y1: focus.Y - (focus.Y-vp.Y1)/factor,
		Y2: focus.Y + (vp.Y2-focus.Y)/factor,
	}
}

// FitAspect adjusts Y1 so that the viewport has the aspect ratio of a
// device of the given size, keeping X1, X2 and Y2. Sizes with a zero
// dimension leave the viewport unchanged.
func (vp Viewport) FitAspect(device Size) Viewport {
	if device.Width == 0 || device.Height == 0 {
		return vp
	}
	vp.Y1 = vp.Y2 - vp.Width()*device.AspectRatio()
	return vp
}

// ToDevice returns the transform from problem space to the pixel space of
// a device of the given size. Pixel space is y-down with its origin in the
// top left corner, so Y2 maps to row 0.
func (vp Viewport) ToDevice(device Size) Affine {
	scaled := Translate(Vec(-vp.X1, -vp.Y1)).ThenScale(device.Width/vp.Width(), device.Height/vp.Height())
	return FlipY.Mul(scaled).ThenTranslate(Vec(0, device.Height))
}

func (vp Viewport) IsInf() bool {
	return math.IsInf(vp.X1, 0) ||
		math.IsInf(vp.X2, 0) ||
		math.IsInf(vp.Y1, 0) ||
		math.IsInf(vp.Y2, 0)
}

func (vp Viewport) IsNaN() bool {
	return math.IsNaN(vp.X1) ||
		math.IsNaN(vp.X2) ||
		math.IsNaN(vp.Y1) ||
		math.IsNaN(vp.Y2)
}

// GridUnit returns the distance between grid lines for a viewport of the
// given width: twice the power of ten one below the width's leading digit,
// scaled by that digit. Widths of 1, 5 and 20 yield 0.2, 1 and 4.
func GridUnit(width float64) float64 {
	exp := math.Floor(math.Log10(width))
	lead := math.Floor(width / math.Pow(10, exp))
	return lead * math.Pow(10, exp-1) * 2
}

// GridLines returns the positions of the vertical and horizontal grid lines
// that fall inside vp. Both directions use the spacing GridUnit(vp.Width()).
func (vp Viewport) GridLines() (xs, ys []float64) {
	unit := GridUnit(vp.Width())
	return gridLines(vp.X1, vp.X2, unit), gridLines(vp.Y1, vp.Y2, unit)
}

// maxGridLines bounds the number of lines per direction for viewports that
// are far from square.
const maxGridLines = 1000

func gridLines(lo, hi, unit float64) []float64 {
	if !(unit > 0) || math.IsInf(unit, 0) {
		return nil
	}
	start := math.Ceil(lo/unit) * unit
	var out []float64
	for k := 0; k < maxGridLines; k++ {
		v := start + float64(k)*unit
		if v >= hi {
			break
		}
		out = append(out, v)
	}
	return out
}

// LabelDigits returns the number of decimals needed to label the grid
// lines of a viewport of the given width.
func LabelDigits(width float64) int {
	if !(width > 0) || math.IsInf(width, 0) {
		return 0
	}
	exp := int(math.Floor(math.Log10(width)))
	return max(0, 1-exp)
}
