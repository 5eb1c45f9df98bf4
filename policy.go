package implicit

// Policy decides whether the segments computed for one viewport are still
// good enough to draw another.
type Policy interface {
	NeedsRecompute(computed, current Viewport) bool
}

// PolicyFunc adapts an ordinary function to the [Policy] interface.
type PolicyFunc func(computed, current Viewport) bool

func (fn PolicyFunc) NeedsRecompute(computed, current Viewport) bool {
	return fn(computed, current)
}

// Always is a policy that recomputes on every change of viewport.
var Always Policy = PolicyFunc(func(computed, current Viewport) bool {
	return computed != current
})

// ExpandPolicy recomputes once the view leaves the computed viewport grown
// by Margin times its width and height on every side, or once the view has
// been zoomed in by more than Zoom. The zero value uses a margin of 1 and a
// zoom factor of 1.5.
type ExpandPolicy struct {
	Margin float64
	Zoom   float64
}

func (p ExpandPolicy) params() (margin, zoom float64) {
	margin, zoom = p.Margin, p.Zoom
	if margin <= 0 {
		margin = 1
	}
	if zoom <= 0 {
		zoom = 1.5
	}
	return margin, zoom
}

// Region returns the area in which segments computed for computed may be
// reused.
func (p ExpandPolicy) Region(computed Viewport) Viewport {
	margin, _ := p.params()
	return computed.Inflate(margin*computed.Width(), margin*computed.Height())
}

func (p ExpandPolicy) NeedsRecompute(computed, current Viewport) bool {
	_, zoom := p.params()
	if !p.Region(computed).ContainsViewport(current) {
		return true
	}
	return current.Width()*zoom < computed.Width() || current.Height()*zoom < computed.Height()
}
