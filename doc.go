// Package implicit plots implicit curves, the sets of points (x, y) at which
// an equation such as x^2+y^2=1 holds.
//
// # Pipeline
//
// A [Graph] is built from an equation string, a [Viewport] and a [Spacing].
// [New] parses the equation with the [honnef.co/go/implicit/expr] package
// and derives its gradient symbolically. [Graph.Create] then
//
//   - samples f on a regular lattice spanning the viewport ([Graph.Sample]),
//   - emits a short [Segment] for every pair of adjacent samples on
//     different sides of zero ([Graph.Crossings]), and
//   - moves both end points of every segment onto the curve with Newton
//     steps along the gradient ([Refiner]).
//
// Samples that are NaN or infinite never produce a crossing, so equations
// such as ln(x)=y or 1/x=y can be plotted over viewports that include points
// outside their domain.
//
// The result is an unordered list of segments in problem space. Use
// [Viewport.ToDevice] to map them to pixels, or the render package to draw
// them.
//
// # Interactive use
//
// [Plotter] runs computations in the background. Each request supersedes
// the previous one, and results that arrive out of order are discarded.
// A [Policy] such as [ExpandPolicy] decides when a change of viewport
// warrants a new request. [State] stores a computed plot, so that it can be
// redrawn later without being recomputed.
//
// # Logging
//
// The package logs through [log/slog]. Nothing is logged until
// [SetLogger] is called.
package implicit
