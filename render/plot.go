package render

import (
	"fmt"
	"io"
	"math"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"honnef.co/go/implicit"
)

// Segments is a plot.Plotter that strokes unconnected segments.
type Segments struct {
	Segs []implicit.Segment
	draw.LineStyle
}

var (
	_ plot.Plotter    = (*Segments)(nil)
	_ plot.DataRanger = (*Segments)(nil)
)

// NewSegments returns a plotter for segs using the curve color and width
// of style.
func NewSegments(segs []implicit.Segment, style *Style) *Segments {
	if style == nil {
		style = &DefaultStyle
	}
	return &Segments{
		Segs: segs,
		LineStyle: draw.LineStyle{
			Color: style.Curve.Color(),
			Width: vg.Points(style.CurveWidth / 2),
		},
	}
}

// Plot implements plot.Plotter.
func (s *Segments) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	for _, seg := range s.Segs {
		if seg.IsNaN() || seg.IsInf() {
			continue
		}
		line := []vg.Point{
			{X: trX(seg.P0.X), Y: trY(seg.P0.Y)},
			{X: trX(seg.P1.X), Y: trY(seg.P1.Y)},
		}
		c.StrokeLines(s.LineStyle, c.ClipLinesXY(line)...)
	}
}

// DataRange implements plot.DataRanger.
func (s *Segments) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, ymin = math.Inf(1), math.Inf(1)
	xmax, ymax = math.Inf(-1), math.Inf(-1)
	for _, seg := range s.Segs {
		if seg.IsNaN() || seg.IsInf() {
			continue
		}
		bb := seg.BoundingBox()
		xmin, xmax = min(xmin, bb.X1), max(xmax, bb.X2)
		ymin, ymax = min(ymin, bb.Y1), max(ymax, bb.Y2)
	}
	return xmin, xmax, ymin, ymax
}

// gridTicker places ticks at the grid lines of a viewport.
type gridTicker struct {
	unit   float64
	digits int
}

func (t gridTicker) Ticks(lo, hi float64) []plot.Tick {
	if !(t.unit > 0) || math.IsInf(t.unit, 0) {
		return plot.DefaultTicks{}.Ticks(lo, hi)
	}
	var ticks []plot.Tick
	start := math.Ceil(lo/t.unit) * t.unit
	for k := 0; k < 1000; k++ {
		v := start + float64(k)*t.unit
		if v > hi {
			break
		}
		ticks = append(ticks, plot.Tick{Value: v, Label: Label(v, t.digits)})
	}
	return ticks
}

// Plot returns a plot of segs over vp, with grid lines placed like those of
// the raster renderer.
func Plot(segs []implicit.Segment, vp implicit.Viewport, title string, style *Style) (*plot.Plot, error) {
	if err := vp.Validate(); err != nil {
		return nil, err
	}
	if style == nil {
		style = &DefaultStyle
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	ticker := gridTicker{
		unit:   implicit.GridUnit(vp.Width()),
		digits: implicit.LabelDigits(vp.Width()),
	}
	p.X.Tick.Marker = ticker
	p.Y.Tick.Marker = ticker

	if style.GridWidth > 0 {
		grid := plotter.NewGrid()
		grid.Vertical.Color = style.Grid.Color()
		grid.Vertical.Width = vg.Points(style.GridWidth / 2)
		grid.Horizontal = grid.Vertical
		p.Add(grid)
	}
	p.Add(NewSegments(segs, style))

	// Add widens the axes to the data; the plot shows exactly vp.
	p.X.Min, p.X.Max = vp.X1, vp.X2
	p.Y.Min, p.Y.Max = vp.Y1, vp.Y2
	return p, nil
}

// Formats lists the file formats accepted by [SaveVector].
var Formats = []string{"svg", "pdf", "eps"}

// FormatOf returns the vector format for a file name, based on its
// extension.
func FormatOf(name string) (string, bool) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	for _, f := range Formats {
		if f == ext {
			return f, true
		}
	}
	return "", false
}

// SaveVector writes p to w as a width×height document in the given format,
// one of [Formats].
func SaveVector(w io.Writer, p *plot.Plot, width, height vg.Length, format string) error {
	if _, ok := FormatOf("." + format); !ok {
		return fmt.Errorf("unsupported vector format %q", format)
	}
	wt, err := p.WriterTo(width, height, format)
	if err != nil {
		return err
	}
	if _, err := wt.WriteTo(w); err != nil {
		return err
	}
	implicit.Logger().Debug("render: vector written", "format", format)
	return nil
}
