// Command implicitplot plots the solutions of an equation in x and y and
// writes them to a PNG, SVG, PDF or EPS file.
//
// Usage:
//
//	implicitplot -eq 'x^2+y^2=1' -o circle.png
//	implicitplot -eq 'sin(x)=cos(y)' -x1 -10 -x2 10 -o waves.svg
//	implicitplot -load session.yaml -o session.pdf
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"

	"gonum.org/v1/plot/vg"

	"honnef.co/go/implicit"
	"honnef.co/go/implicit/expr"
	"honnef.co/go/implicit/render"
)

type config struct {
	equation       string
	x1, x2, y1, y2 float64
	fit            bool
	spacing        float64
	width, height  int
	output         string
	workers        int
	edges          bool
	save, load     string
	grad           bool
}

func main() {
	var (
		cfg     config
		verbose bool
	)
	flag.StringVar(&cfg.equation, "eq", "x^2+y^2=1", "equation to plot")
	flag.Float64Var(&cfg.x1, "x1", -2, "left edge of the viewport")
	flag.Float64Var(&cfg.x2, "x2", 2, "right edge of the viewport")
	flag.Float64Var(&cfg.y1, "y1", -2, "bottom edge of the viewport")
	flag.Float64Var(&cfg.y2, "y2", 2, "top edge of the viewport")
	flag.BoolVar(&cfg.fit, "fit", true, "move the bottom edge so the viewport has the aspect ratio of the image")
	flag.Float64Var(&cfg.spacing, "spacing", 0, "lattice spacing (0 = 1/200 of the shorter side)")
	flag.IntVar(&cfg.width, "width", 800, "image width")
	flag.IntVar(&cfg.height, "height", 800, "image height")
	flag.StringVar(&cfg.output, "o", "plot.png", "output file (.png, .svg, .pdf or .eps)")
	flag.IntVar(&cfg.workers, "workers", runtime.GOMAXPROCS(0), "number of goroutines computing the plot")
	flag.BoolVar(&cfg.edges, "edges", false, "also look for crossings along the last row and column of the lattice")
	flag.StringVar(&cfg.save, "save", "", "save the computed plot to a YAML file")
	flag.StringVar(&cfg.load, "load", "", "load a plot saved with -save instead of computing one")
	flag.BoolVar(&cfg.grad, "grad", false, "print the gradient of the equation in reverse Polish notation")
	flag.BoolVar(&verbose, "v", false, "log debug output")
	flag.Parse()

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	implicit.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := run(ctx, cfg); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cfg config) error {
	var (
		st  *implicit.State
		err error
	)
	if cfg.load != "" {
		st, err = loadState(cfg.load)
	} else {
		st, err = compute(ctx, cfg)
	}
	if err != nil {
		return err
	}

	if cfg.grad {
		if err := printGradient(st.Equation); err != nil {
			return err
		}
	}
	if cfg.save != "" {
		if err := saveState(cfg.save, st); err != nil {
			return err
		}
	}
	if err := write(cfg, st); err != nil {
		return err
	}
	implicit.Logger().Info("plot written", "file", cfg.output, "segments", len(st.Segments), "viewport", st.Viewport)
	return nil
}

func compute(ctx context.Context, cfg config) (*implicit.State, error) {
	vp := implicit.Bounds(cfg.x1, cfg.x2, cfg.y1, cfg.y2)
	if cfg.fit {
		vp = vp.FitAspect(implicit.Sz(float64(cfg.width), float64(cfg.height)))
	}
	sp := implicit.DefaultSpacing(vp)
	if cfg.spacing > 0 {
		sp = implicit.Spacing{DX: cfg.spacing, DY: cfg.spacing, DL: cfg.spacing}
	}
	g, err := implicit.New(cfg.equation, vp, sp,
		implicit.WithWorkers(cfg.workers),
		implicit.WithEdgeCrossings(cfg.edges))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cfg.equation, err)
	}
	segs, err := g.CreateContext(ctx)
	if err != nil {
		return nil, err
	}
	return &implicit.State{
		Equation: cfg.equation,
		Viewport: vp,
		Spacing:  sp,
		Segments: segs,
	}, nil
}

func printGradient(equation string) error {
	f, err := expr.ParseEquation(equation)
	if err != nil {
		return fmt.Errorf("%s: %w", equation, err)
	}
	for _, v := range []string{"x", "y"} {
		d, err := f.Derivative(v)
		if err != nil {
			return err
		}
		fmt.Printf("∂f/∂%s = %s\n", v, d)
	}
	return nil
}

func write(cfg config, st *implicit.State) (err error) {
	isPNG := strings.EqualFold(filepath.Ext(cfg.output), ".png")
	format, ok := render.FormatOf(cfg.output)
	if !isPNG && !ok {
		return fmt.Errorf("%s: unsupported output format", cfg.output)
	}

	f, err := os.Create(cfg.output)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if isPNG {
		return render.PNG(f, st.Segments, st.Viewport, cfg.width, cfg.height, nil)
	}
	p, err := render.Plot(st.Segments, st.Viewport, st.Equation, nil)
	if err != nil {
		return err
	}
	return render.SaveVector(f, p, vg.Points(float64(cfg.width)), vg.Points(float64(cfg.height)), format)
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
