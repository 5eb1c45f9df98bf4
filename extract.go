package implicit

import "math"

// sign classifies v as -1, 0 or +1. Both zeros are 0.
func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// differentSign reports whether a and b lie on different sides of zero.
// Values that are NaN or infinite never differ from anything.
func differentSign(a, b float64) bool {
	if math.IsNaN(a) || math.IsInf(a, 0) || math.IsNaN(b) || math.IsInf(b, 0) {
		return false
	}
	return sign(a) != sign(b)
}

// Crossings returns one segment per pair of adjacent samples whose signs
// differ. Each segment spans the boundary between the two cells centred on
// the samples, so it lies within half a grid step of the curve.
func (g *Graph) Crossings(grid *Grid) []Segment {
	var (
		x1, y1 = g.vp.X1, g.vp.Y1
		dx, dy = g.sp.DX, g.sp.DY
		hx, hy = 0.5 * dx, 0.5 * dy
	)
	var segs []Segment
	for i := 0; i < grid.Rows-1; i++ {
		x := x1 + float64(i)*dx
		for j := 0; j < grid.Columns-1; j++ {
			y := y1 + float64(j)*dy
			v := grid.At(i, j)
			if differentSign(v, grid.At(i, j+1)) {
				segs = append(segs, Seg(Pt(x-hx, y+hy), Pt(x+hx, y+hy)))
			}
			if differentSign(v, grid.At(i+1, j)) {
				segs = append(segs, Seg(Pt(x+hx, y-hy), Pt(x+hx, y+hy)))
			}
		}
	}

	if g.opts.edges {
		n := len(segs)
		last := grid.Columns - 1
		for i := 0; i < grid.Rows-1; i++ {
			if differentSign(grid.At(i, last), grid.At(i+1, last)) {
				x := x1 + float64(i)*dx + hx
				segs = append(segs, Seg(Pt(x, g.vp.Y2-hy), Pt(x, g.vp.Y2+hy)))
			}
		}
		last = grid.Rows - 1
		for j := 0; j < grid.Columns-1; j++ {
			if differentSign(grid.At(last, j), grid.At(last, j+1)) {
				y := y1 + float64(j)*dy + hy
				segs = append(segs, Seg(Pt(g.vp.X2-hx, y), Pt(g.vp.X2+hx, y)))
			}
		}
		Logger().Debug("implicit: edge crossings", "count", len(segs)-n)
	}

	Logger().Debug("implicit: crossings extracted", "count", len(segs))
	return segs
}
