package implicit

// Option configures a [Graph] during creation.
//
// Example:
//
//	g, err := implicit.New("x^2+y^2=1", vp, implicit.DefaultSpacing(vp),
//		implicit.WithWorkers(runtime.GOMAXPROCS(0)))
type Option func(*options)

type options struct {
	epsilon       float64
	maxIterations int
	workers       int
	edges         bool
}

func defaultOptions() options {
	return options{
		epsilon:       1e-10,
		maxIterations: 64,
		workers:       1,
	}
}

// WithEpsilon sets the residual below which the root refiner accepts a
// point as lying on the curve. Non-positive values are ignored.
func WithEpsilon(eps float64) Option {
	return func(o *options) {
		if eps > 0 {
			o.epsilon = eps
		}
	}
}

// WithMaxIterations bounds the number of Newton steps per end point.
// Non-positive values are ignored.
func WithMaxIterations(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxIterations = n
		}
	}
}

// WithWorkers sets how many goroutines sample the grid and refine segments.
// The result does not depend on the number of workers. Values below 1
// mean 1.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = max(n, 1)
	}
}

// WithEdgeCrossings enables the comparison of neighbouring samples along
// the last row and the last column of the grid, which the interior sweep
// does not reach.
func WithEdgeCrossings(enabled bool) Option {
	return func(o *options) {
		o.edges = enabled
	}
}
