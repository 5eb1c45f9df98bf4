package implicit

import (
	"context"
	"math"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"honnef.co/go/implicit/expr"
)

// Refiner moves points onto the zero set of F using Newton steps along the
// gradient (FX, FY).
type Refiner struct {
	F, FX, FY expr.Expression

	// Radius bounds how far, along either axis, a point may travel from
	// where it started.
	Radius float64
	// Epsilon is the residual |F| below which a point is accepted.
	Epsilon float64
	// MaxIterations bounds the number of steps. Zero means 64.
	MaxIterations int
}

// Refine returns the refined position of p and the number of Newton steps
// taken.
//
// Refinement stops when |F| drops below Epsilon. If a step leaves the
// trust region around p, the last point inside it is returned. If F or the
// gradient cannot be evaluated to a usable value, the current point is
// returned.
func (r *Refiner) Refine(p Node) (Node, int) {
	return r.refine(newEvaluator(), p)
}

func (r *Refiner) refine(ev *evaluator, p Node) (Node, int) {
	maxIter := r.MaxIterations
	if maxIter <= 0 {
		maxIter = 64
	}
	x, prev := p, p
	for it := 0; it < maxIter; it++ {
		z := ev.eval(r.F, x)
		if math.Abs(z) < r.Epsilon {
			return x, it
		}
		if !x.Within(p, r.Radius) {
			return prev, it
		}
		prev = x

		grad := Vec(ev.eval(r.FX, x), ev.eval(r.FY, x))
		norm := grad.Hypot2()
		if math.IsNaN(norm) || math.IsNaN(z) || norm == 0 || math.IsInf(norm, 0) {
			return x, it
		}
		x = x.Translate(grad.Mul(-z / norm))
	}
	if !x.Within(p, r.Radius) {
		return prev, maxIter
	}
	return x, maxIter
}

// Refine moves both end points of every segment onto the curve, in place.
// It returns the total number of Newton steps taken.
func (g *Graph) Refine(ctx context.Context, segs []Segment) (int, error) {
	r := g.Refiner()
	workers := g.opts.workers
	chunk := (len(segs) + workers - 1) / workers
	if chunk == 0 {
		return 0, nil
	}

	var total atomic.Int64
	eg, gctx := errgroup.WithContext(ctx)
	for lo := 0; lo < len(segs); lo += chunk {
		part := segs[lo:min(lo+chunk, len(segs))]
		eg.Go(func() error {
			ev := newEvaluator()
			n := 0
			for k := range part {
				if k%256 == 0 {
					if err := gctx.Err(); err != nil {
						return err
					}
				}
				var n0, n1 int
				part[k].P0, n0 = r.refine(ev, part[k].P0)
				part[k].P1, n1 = r.refine(ev, part[k].P1)
				n += n0 + n1
			}
			total.Add(int64(n))
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return 0, err
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return int(total.Load()), nil
}
