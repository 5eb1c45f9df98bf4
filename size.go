package implicit

import "fmt"

// Size is the extent of a viewport or of an output device.
type Size struct {
	Width  float64
	Height float64
}

// Sz returns the size w×h.
func Sz(w, h float64) Size {
	return Size{
		Width:  w,
		Height: h,
	}
}

func (sz Size) String() string {
	return fmt.Sprintf("%g×%g", sz.Width, sz.Height)
}

func (sz Size) MinSide() float64 {
	return min(sz.Width, sz.Height)
}

// AspectRatio returns height divided by width.
func (sz Size) AspectRatio() float64 {
	return sz.Height / sz.Width
}
