// Command implicitview is an interactive plotter for equations in x and y.
//
// Drag with the left mouse button to pan and use the wheel to zoom. Type an
// equation and press Enter to plot it; Escape dismisses error messages.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log/slog"
	"math"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"honnef.co/go/implicit"
	"honnef.co/go/implicit/render"
)

const (
	toastDuration = 5 * time.Second
	zoomStep      = 1.1
)

var (
	background = render.DefaultStyle.Background.Color()
	curveColor = render.DefaultStyle.Curve.Color()
	gridColor  = render.DefaultStyle.Grid.Color()
	toastColor = color.NRGBA{R: 0x30, G: 0x30, B: 0x30, A: 0xe0}
)

type viewer struct {
	plotter *implicit.Plotter
	policy  implicit.Policy

	equation string
	input    []rune
	vp       implicit.Viewport
	computed implicit.Viewport
	width    int
	height   int

	dragging     bool
	lastX, lastY int

	mu         sync.Mutex
	toast      string
	toastUntil time.Time
}

func newViewer(equation string, vp implicit.Viewport, workers int) *viewer {
	v := &viewer{
		plotter:  implicit.NewPlotter(implicit.WithWorkers(workers)),
		policy:   implicit.ExpandPolicy{},
		equation: equation,
		input:    []rune(equation),
		vp:       vp,
	}
	v.plotter.OnError = func(seq uint64, err error) {
		v.showError(err)
	}
	return v
}

func (v *viewer) showError(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.toast = err.Error()
	v.toastUntil = time.Now().Add(toastDuration)
}

func (v *viewer) dismissError() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.toast = ""
}

func (v *viewer) currentToast() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	if time.Now().After(v.toastUntil) {
		v.toast = ""
	}
	return v.toast
}

func (v *viewer) size() implicit.Size {
	return implicit.Sz(float64(v.width), float64(v.height))
}

func (v *viewer) recompute() {
	if v.width == 0 || v.height == 0 {
		return
	}
	v.computed = v.vp
	v.plotter.Request(v.equation, v.vp, implicit.DefaultSpacing(v.vp))
}

func (v *viewer) Update() error {
	if v.width == 0 || v.height == 0 {
		return nil
	}
	changed := v.handlePointer()
	v.handleKeys()
	if changed && v.policy.NeedsRecompute(v.computed, v.vp) {
		v.recompute()
	}
	return nil
}

// handlePointer pans and zooms the view and reports whether it changed.
func (v *viewer) handlePointer() bool {
	changed := false
	x, y := ebiten.CursorPosition()

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		v.dragging = true
		v.lastX, v.lastY = x, y
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		v.dragging = false
		v.recompute()
	case v.dragging && (x != v.lastX || y != v.lastY):
		inv := v.vp.ToDevice(v.size()).Invert()
		from := implicit.Pt(float64(v.lastX), float64(v.lastY)).Transform(inv)
		to := implicit.Pt(float64(x), float64(y)).Transform(inv)
		// The view follows the cursor, so the viewport moves the other way.
		v.vp = v.vp.Pan(to.Sub(from).Negate())
		v.lastX, v.lastY = x, y
		changed = true
	}

	if _, wy := ebiten.Wheel(); wy != 0 {
		focus := implicit.Pt(float64(x), float64(y)).Transform(v.vp.ToDevice(v.size()).Invert())
		v.vp = v.vp.ZoomAbout(focus, math.Pow(zoomStep, wy))
		changed = true
	}
	return changed
}

func (v *viewer) handleKeys() {
	v.input = ebiten.AppendInputChars(v.input)
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) && len(v.input) > 0 {
		v.input = v.input[:len(v.input)-1]
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		v.dismissError()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		v.equation = string(v.input)
		v.recompute()
	}
}

func (v *viewer) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	aff := v.vp.ToDevice(v.size())
	w, h := float32(v.width), float32(v.height)

	xs, ys := v.vp.GridLines()
	digits := implicit.LabelDigits(v.vp.Width())
	for _, x := range xs {
		dx := float32(implicit.Pt(x, 0).Transform(aff).X)
		vector.StrokeLine(screen, dx, 0, dx, h, 1, gridColor, false)
		ebitenutil.DebugPrintAt(screen, render.Label(x, digits), int(dx)+4, 2)
	}
	for _, y := range ys {
		dy := float32(implicit.Pt(0, y).Transform(aff).Y)
		vector.StrokeLine(screen, 0, dy, w, dy, 1, gridColor, false)
		ebitenutil.DebugPrintAt(screen, render.Label(y, digits), 2, int(dy)-16)
	}

	if res := v.plotter.Current(); res != nil {
		for _, s := range res.Segments {
			d := s.Transform(aff)
			vector.StrokeLine(screen,
				float32(d.P0.X), float32(d.P0.Y), float32(d.P1.X), float32(d.P1.Y),
				2, curveColor, true)
		}
	}

	ebitenutil.DebugPrintAt(screen, "> "+string(v.input), 4, v.height-20)
	if msg := v.currentToast(); msg != "" {
		vector.DrawFilledRect(screen, 0, h-48, w, 22, toastColor, false)
		ebitenutil.DebugPrintAt(screen, msg+" (Esc)", 4, v.height-44)
	}
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != v.width || outsideHeight != v.height {
		v.width, v.height = outsideWidth, outsideHeight
		v.vp = v.vp.FitAspect(v.size())
		v.recompute()
	}
	return outsideWidth, outsideHeight
}

func (v *viewer) restore(st *implicit.State) {
	v.equation = st.Equation
	v.input = []rune(st.Equation)
	v.vp = st.Viewport
	v.computed = st.Viewport
	v.plotter.Publish(st.Result())
}

func (v *viewer) state() *implicit.State {
	st := &implicit.State{Equation: v.equation, Viewport: v.vp}
	if res := v.plotter.Current(); res != nil {
		st = res.State()
		st.Viewport = v.vp
	}
	return st
}

func main() {
	var (
		equation  string
		statePath string
		workers   int
		verbose   bool
	)
	flag.StringVar(&equation, "eq", "x^2+y^2=1", "equation to plot")
	flag.StringVar(&statePath, "state", "", "YAML file to restore the session from and save it to on exit")
	flag.IntVar(&workers, "workers", runtime.GOMAXPROCS(0), "number of goroutines computing the plot")
	flag.BoolVar(&verbose, "v", false, "log debug output")
	flag.Parse()

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	implicit.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	v := newViewer(equation, implicit.Bounds(-5, 5, -5, 5), workers)
	if statePath != "" {
		if st, err := loadState(statePath); err == nil {
			v.restore(st)
		} else if !os.IsNotExist(err) {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	ebiten.SetWindowTitle("implicitview")
	ebiten.SetWindowSize(800, 800)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	err := ebiten.RunGame(v)
	v.plotter.Close()
	if err == nil && statePath != "" {
		err = saveState(statePath, v.state())
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadState(name string) (*implicit.State, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	st, err := implicit.LoadState(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return st, nil
}

func saveState(name string, st *implicit.State) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return implicit.SaveState(f, st)
}
