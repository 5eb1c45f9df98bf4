package implicit

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"
)

// Result is a set of segments published by a [Plotter].
type Result struct {
	// Seq is the sequence number of the request that produced the result.
	Seq      uint64
	Equation string
	Viewport Viewport
	Spacing  Spacing
	Segments []Segment
	Elapsed  time.Duration
}

// State returns the persistable form of r.
func (r *Result) State() *State {
	return &State{
		Equation: r.Equation,
		Viewport: r.Viewport,
		Spacing:  r.Spacing,
		Segments: r.Segments,
	}
}

type computeFunc func(ctx context.Context, equation string, vp Viewport, sp Spacing, opts ...Option) ([]Segment, error)

func compute(ctx context.Context, equation string, vp Viewport, sp Spacing, opts ...Option) ([]Segment, error) {
	g, err := New(equation, vp, sp, opts...)
	if err != nil {
		return nil, err
	}
	return g.CreateContext(ctx)
}

// Plotter computes graphs in the background and publishes their segments.
//
// Every request is stamped with an increasing sequence number. Issuing a
// request cancels the one before it, and a result is only published if it
// belongs to the most recent request. A request that fails leaves the
// published result in place.
//
// OnPublish and OnError, if set, must be set before the first request.
// They are called from the computing goroutine. Calls to OnPublish do not
// overlap and see strictly increasing sequence numbers; a result that is
// superseded before its callback runs is not passed to OnPublish.
type Plotter struct {
	OnPublish func(*Result)
	OnError   func(seq uint64, err error)

	opts    []Option
	compute computeFunc

	mu     sync.Mutex
	seq    uint64
	cancel context.CancelFunc

	current atomic.Pointer[Result]
	wg      sync.WaitGroup

	// notifyMu serializes OnPublish.
	notifyMu sync.Mutex
}

// NewPlotter returns a plotter that builds graphs with the given options.
func NewPlotter(opts ...Option) *Plotter {
	return &Plotter{
		opts:    opts,
		compute: compute,
	}
}

// Request starts computing the graph of equation over vp and returns the
// request's sequence number.
func (p *Plotter) Request(equation string, vp Viewport, sp Spacing) uint64 {
	p.mu.Lock()
	if p.cancel != nil {
		p.cancel()
	}
	p.seq++
	seq := p.seq
	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel
	p.wg.Add(1)
	p.mu.Unlock()

	go func() {
		defer p.wg.Done()
		defer cancel()
		start := time.Now()
		segs, err := p.compute(ctx, equation, vp, sp, p.opts...)
		res := &Result{
			Seq:      seq,
			Equation: equation,
			Viewport: vp,
			Spacing:  sp,
			Segments: segs,
			Elapsed:  time.Since(start),
		}
		p.finish(res, err)
	}()
	return seq
}

func (p *Plotter) finish(res *Result, err error) {
	p.mu.Lock()
	stale := res.Seq != p.seq
	if !stale && err == nil {
		if cur := p.current.Load(); cur != nil && cur.Seq >= res.Seq {
			stale = true
		} else {
			p.current.Store(res)
		}
	}
	p.mu.Unlock()

	switch {
	case stale:
		if err == nil || !errors.Is(err, context.Canceled) {
			Logger().Warn("implicit: discarding stale result", "seq", res.Seq, "equation", res.Equation, "err", err)
		}
	case errors.Is(err, context.Canceled):
		Logger().Debug("implicit: request cancelled", "seq", res.Seq)
	case err != nil:
		Logger().Warn("implicit: recompute failed", "seq", res.Seq, "equation", res.Equation, "err", err)
		if p.OnError != nil {
			p.OnError(res.Seq, err)
		}
	default:
		Logger().Debug("implicit: result published", "seq", res.Seq, "segments", len(res.Segments), "elapsed", res.Elapsed)
		p.notify(res)
	}
}

// notify passes res to OnPublish unless a newer result has been published
// in the meantime.
func (p *Plotter) notify(res *Result) {
	if p.OnPublish == nil {
		return
	}
	p.notifyMu.Lock()
	defer p.notifyMu.Unlock()
	if p.current.Load() != res {
		Logger().Debug("implicit: result superseded before notification", "seq", res.Seq)
		return
	}
	p.OnPublish(res)
}

// Current returns the most recently published result, or nil.
func (p *Plotter) Current() *Result {
	return p.current.Load()
}

// Publish installs res as the current result without computing it, for
// example after restoring a saved session. Results of requests that are
// still running supersede it.
func (p *Plotter) Publish(res *Result) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if cur := p.current.Load(); cur != nil && cur.Seq > res.Seq {
		return
	}
	p.current.Store(res)
}

// Wait blocks until all requests have finished.
func (p *Plotter) Wait() {
	p.wg.Wait()
}

// Close cancels the running request and waits for it to finish.
func (p *Plotter) Close() {
	p.mu.Lock()
	if p.cancel != nil {
		p.cancel()
	}
	p.mu.Unlock()
	p.Wait()
}
