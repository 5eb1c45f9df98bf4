// Package render draws the segments of an implicit plot, either as raster
// images or as vector documents.
package render

import (
	"fmt"
	"image"
	"io"
	"strconv"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"honnef.co/go/implicit"
)

// Style controls the appearance of a plot.
type Style struct {
	Background gg.RGBA
	Curve      gg.RGBA
	Grid       gg.RGBA
	Label      gg.RGBA

	// CurveWidth is the stroke width of segments, in pixels.
	CurveWidth float64
	// GridWidth is the stroke width of grid lines. Zero disables the grid.
	GridWidth float64
	// FontSize is the size of grid labels. Zero disables labels.
	FontSize float64
}

// DefaultStyle draws a dark curve over a light grid with labelled lines.
var DefaultStyle = Style{
	Background: gg.White,
	Curve:      gg.Hex("#1f3a93"),
	Grid:       gg.Hex("#d0d0d0"),
	Label:      gg.Hex("#505050"),
	CurveWidth: 3,
	GridWidth:  1,
	FontSize:   14,
}

var fontSource = sync.OnceValues(func() (*text.FontSource, error) {
	return text.NewFontSource(goregular.TTF)
})

// Canvas is an image of a viewport.
type Canvas struct {
	dc    *gg.Context
	vp    implicit.Viewport
	aff   implicit.Affine
	style Style
}

// NewCanvas returns a width×height canvas showing vp. The viewport is
// stretched to fill the canvas; use [implicit.Viewport.FitAspect] to keep
// its aspect ratio.
func NewCanvas(vp implicit.Viewport, width, height int, style *Style) (*Canvas, error) {
	if err := vp.Validate(); err != nil {
		return nil, err
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid canvas size %d×%d", width, height)
	}
	if style == nil {
		style = &DefaultStyle
	}
	c := &Canvas{
		dc:    gg.NewContext(width, height),
		vp:    vp,
		aff:   vp.ToDevice(implicit.Sz(float64(width), float64(height))),
		style: *style,
	}
	c.dc.ClearWithColor(style.Background)
	return c, nil
}

// Close releases the canvas's resources.
func (c *Canvas) Close() error {
	return c.dc.Close()
}

// DrawGrid draws the grid lines of the viewport and, if the style has a
// font size, labels them with their coordinates.
func (c *Canvas) DrawGrid() error {
	if c.style.GridWidth <= 0 {
		return nil
	}
	w, h := float64(c.dc.Width()), float64(c.dc.Height())
	xs, ys := c.vp.GridLines()

	c.dc.SetColor(c.style.Grid.Color())
	c.dc.SetLineWidth(c.style.GridWidth)
	for _, x := range xs {
		dx := implicit.Pt(x, 0).Transform(c.aff).X
		c.dc.DrawLine(dx, 0, dx, h)
	}
	for _, y := range ys {
		dy := implicit.Pt(0, y).Transform(c.aff).Y
		c.dc.DrawLine(0, dy, w, dy)
	}
	if err := c.dc.Stroke(); err != nil {
		return err
	}

	if c.style.FontSize <= 0 {
		return nil
	}
	src, err := fontSource()
	if err != nil {
		return fmt.Errorf("loading font: %w", err)
	}
	c.dc.SetFont(src.Face(c.style.FontSize))
	c.dc.SetColor(c.style.Label.Color())
	digits := implicit.LabelDigits(c.vp.Width())
	for _, x := range xs {
		dx := implicit.Pt(x, 0).Transform(c.aff).X
		c.dc.DrawString(Label(x, digits), dx+5, c.style.FontSize+4)
	}
	for _, y := range ys {
		dy := implicit.Pt(0, y).Transform(c.aff).Y
		c.dc.DrawString(Label(y, digits), 2, dy-5)
	}
	return nil
}

// DrawSegments strokes segs.
func (c *Canvas) DrawSegments(segs []implicit.Segment) error {
	c.dc.SetColor(c.style.Curve.Color())
	c.dc.SetLineWidth(c.style.CurveWidth)
	c.dc.SetLineCap(gg.LineCapRound)
	for _, s := range segs {
		if s.IsNaN() || s.IsInf() {
			continue
		}
		d := s.Transform(c.aff)
		c.dc.DrawLine(d.P0.X, d.P0.Y, d.P1.X, d.P1.Y)
	}
	return c.dc.Stroke()
}

// Image returns the canvas's pixels.
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

// EncodePNG writes the canvas to w in PNG format.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return c.dc.EncodePNG(w)
}

// Label formats a grid coordinate with the given number of decimals.
func Label(v float64, digits int) string {
	s := strconv.FormatFloat(v, 'f', digits, 64)
	if s == "-"+strconv.FormatFloat(0, 'f', digits, 64) {
		s = s[1:]
	}
	return s
}

// Image draws segs over the grid of vp and returns the resulting image.
func Image(segs []implicit.Segment, vp implicit.Viewport, width, height int, style *Style) (image.Image, error) {
	c, err := rasterize(segs, vp, width, height, style)
	if err != nil {
		return nil, err
	}
	// Close flushes pending drawing.
	if err := c.Close(); err != nil {
		return nil, err
	}
	return c.Image(), nil
}

// PNG draws segs over the grid of vp and writes the image to w.
func PNG(w io.Writer, segs []implicit.Segment, vp implicit.Viewport, width, height int, style *Style) error {
	c, err := rasterize(segs, vp, width, height, style)
	if err != nil {
		return err
	}
	if err := c.Close(); err != nil {
		return err
	}
	return c.EncodePNG(w)
}

func rasterize(segs []implicit.Segment, vp implicit.Viewport, width, height int, style *Style) (*Canvas, error) {
	c, err := NewCanvas(vp, width, height, style)
	if err != nil {
		return nil, err
	}
	if err := c.DrawGrid(); err != nil {
		c.Close()
		return nil, err
	}
	if err := c.DrawSegments(segs); err != nil {
		c.Close()
		return nil, err
	}
	implicit.Logger().Debug("render: raster drawn", "segments", len(segs), "width", width, "height", height)
	return c, nil
}
