package implicit

import (
	"context"
	"math"

	"golang.org/x/sync/errgroup"

	"honnef.co/go/implicit/expr"
)

// Grid holds the values of f at the nodes of a graph's lattice. Row i
// holds the samples with x = X1 + i·DX.
type Grid struct {
	Rows    int
	Columns int
	Values  []float64
}

func newGrid(rows, columns int) *Grid {
	return &Grid{
		Rows:    rows,
		Columns: columns,
		Values:  make([]float64, rows*columns),
	}
}

// At returns the sample at row i, column j.
func (grid *Grid) At(i, j int) float64 {
	return grid.Values[i*grid.Columns+j]
}

func (grid *Grid) set(i, j int, v float64) {
	grid.Values[i*grid.Columns+j] = v
}

// Row returns the samples of row i. The slice aliases the grid.
func (grid *Grid) Row(i int) []float64 {
	return grid.Values[i*grid.Columns : (i+1)*grid.Columns]
}

// evaluator evaluates expressions in x and y, reusing one environment.
// It must not be shared between goroutines.
type evaluator struct {
	env expr.Env
}

func newEvaluator() *evaluator {
	return &evaluator{env: expr.Env{"x": 0, "y": 0}}
}

// eval returns e(x, y). Expressions of a Graph only refer to x and y, so
// evaluation cannot fail; NaN is returned should it do so anyway.
func (ev *evaluator) eval(e expr.Expression, n Node) float64 {
	ev.env["x"] = n.X
	ev.env["y"] = n.Y
	v, err := e.Evaluate(ev.env)
	if err != nil {
		return math.NaN()
	}
	return v
}

// Sample evaluates f at every node of the lattice. Rows are distributed
// over the configured number of workers.
func (g *Graph) Sample(ctx context.Context) (*Grid, error) {
	grid := newGrid(g.rows, g.columns)
	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.opts.workers)
	for i := range g.rows {
		if gctx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			ev := newEvaluator()
			for j := range g.columns {
				grid.set(i, j, ev.eval(g.f, g.Node(i, j)))
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	Logger().Debug("implicit: grid sampled", "rows", g.rows, "columns", g.columns, "workers", g.opts.workers)
	return grid, nil
}
