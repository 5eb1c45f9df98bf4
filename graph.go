package implicit

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"honnef.co/go/implicit/expr"
)

var (
	ErrDegenerateViewport = errors.New("Degenerate viewport")
	ErrInvalidSpacing     = errors.New("Invalid spacing")
)

// Spacing is the lattice spacing of a [Graph]. DX and DY are the distances
// between samples. DL is the distance between lattice lines; it is carried
// along for renderers and does not affect the computation.
type Spacing struct {
	DX float64 `yaml:"dx"`
	DY float64 `yaml:"dy"`
	DL float64 `yaml:"dl"`
}

// DefaultSpacing returns the spacing used for interactive plots: one
// two-hundredth of the shorter side of vp, in all three directions.
func DefaultSpacing(vp Viewport) Spacing {
	d := vp.Size().MinSide() / 200
	return Spacing{DX: d, DY: d, DL: d}
}

// Validate returns an error if sp cannot be used to sample a grid.
func (sp Spacing) Validate() error {
	if !(sp.DX > 0) || !(sp.DY > 0) || math.IsInf(sp.DX, 0) || math.IsInf(sp.DY, 0) {
		return fmt.Errorf("%w: dx=%g dy=%g", ErrInvalidSpacing, sp.DX, sp.DY)
	}
	if sp.DL < 0 || math.IsNaN(sp.DL) {
		return fmt.Errorf("%w: dl=%g", ErrInvalidSpacing, sp.DL)
	}
	return nil
}

// MaxSamples bounds the number of lattice nodes of a [Graph]. Spacings that
// would sample more nodes are rejected with [ErrInvalidSpacing].
const MaxSamples = 1 << 26

// latticeSize returns the number of samples along each axis of vp.
func latticeSize(vp Viewport, sp Spacing) (rows, columns int, err error) {
	r := math.Ceil(vp.Width()/sp.DX) + 1
	c := math.Ceil(vp.Height()/sp.DY) + 1
	if math.IsInf(r, 0) || math.IsInf(c, 0) || r*c > MaxSamples {
		return 0, 0, fmt.Errorf("%w: dx=%g dy=%g sample %g×%g nodes", ErrInvalidSpacing, sp.DX, sp.DY, r, c)
	}
	return int(r), int(c), nil
}

// Graph computes the zero set of an equation in x and y over a viewport.
//
// A Graph is immutable once constructed. Its methods may be called
// concurrently and each call allocates fresh results.
type Graph struct {
	equation string
	vp       Viewport
	sp       Spacing

	f      expr.Expression
	fx, fy expr.Expression

	rows    int
	columns int

	opts options
}

// New parses equation, which may be an expression f or an equation f=g,
// and prepares it for plotting over vp. The equation may only refer to the
// variables x and y.
func New(equation string, vp Viewport, sp Spacing, opts ...Option) (*Graph, error) {
	if err := vp.Validate(); err != nil {
		return nil, err
	}
	if err := sp.Validate(); err != nil {
		return nil, err
	}
	rows, columns, err := latticeSize(vp, sp)
	if err != nil {
		return nil, err
	}
	f, err := expr.ParseEquation(equation)
	if err != nil {
		return nil, err
	}
	for _, v := range f.Variables() {
		if v != "x" && v != "y" {
			return nil, &expr.UnknownVariableError{Name: v}
		}
	}
	fx, err := f.Derivative("x")
	if err != nil {
		return nil, err
	}
	fy, err := f.Derivative("y")
	if err != nil {
		return nil, err
	}

	g := &Graph{
		equation: equation,
		vp:       vp,
		sp:       sp,
		f:        f,
		fx:       fx,
		fy:       fy,
		rows:     rows,
		columns:  columns,
		opts:     defaultOptions(),
	}
	for _, opt := range opts {
		opt(&g.opts)
	}
	return g, nil
}

// Equation returns the equation the graph was built from.
func (g *Graph) Equation() string { return g.equation }

func (g *Graph) Viewport() Viewport { return g.vp }

func (g *Graph) Spacing() Spacing { return g.sp }

// Expression returns f, the expression whose zero set is plotted.
func (g *Graph) Expression() expr.Expression { return g.f }

// Gradient returns ∂f/∂x and ∂f/∂y.
func (g *Graph) Gradient() (expr.Expression, expr.Expression) { return g.fx, g.fy }

// Rows returns the number of samples along the x axis.
func (g *Graph) Rows() int { return g.rows }

// Columns returns the number of samples along the y axis.
func (g *Graph) Columns() int { return g.columns }

// Node returns the position of sample (i, j).
func (g *Graph) Node(i, j int) Node {
	return Node{
		X: g.vp.X1 + float64(i)*g.sp.DX,
		Y: g.vp.Y1 + float64(j)*g.sp.DY,
	}
}

// Refiner returns the root refiner used by [Graph.Create].
func (g *Graph) Refiner() *Refiner {
	return &Refiner{
		F:             g.f,
		FX:            g.fx,
		FY:            g.fy,
		Radius:        g.sp.DX,
		Epsilon:       g.opts.epsilon,
		MaxIterations: g.opts.maxIterations,
	}
}

// Create samples the grid, extracts the segments that cross the curve and
// moves their end points onto it.
func (g *Graph) Create() []Segment {
	segs, _ := g.CreateContext(context.Background())
	return segs
}

// CreateContext is like [Graph.Create] but stops early with the context's
// error when ctx is cancelled.
func (g *Graph) CreateContext(ctx context.Context) ([]Segment, error) {
	start := time.Now()
	grid, err := g.Sample(ctx)
	if err != nil {
		return nil, err
	}
	segs := g.Crossings(grid)
	iters, err := g.Refine(ctx, segs)
	if err != nil {
		return nil, err
	}
	Logger().Debug("implicit: graph created",
		"equation", g.equation,
		"rows", g.rows,
		"columns", g.columns,
		"segments", len(segs),
		"iterations", iters,
		"elapsed", time.Since(start))
	return segs, nil
}
