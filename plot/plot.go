// Package plot samples expressions over an interval to produce the point
// series a graphing display draws.
package plot

import (
	"errors"

	"gonum.org/v1/gonum/floats"

	"graphcalc"
)

// Window is the visible region of the graph, in the TI-84 tradition. A
// window whose YMin is not below its YMax disables the vertical cut, for
// callers that autoscale after sampling.
type Window struct {
	XMin, XMax float64
	YMin, YMax float64
}

// DefaultWindow returns the standard -10..10 window.
func DefaultWindow() Window {
	return Window{XMin: -10, XMax: 10, YMin: -10, YMax: 10}
}

// Spec describes one plot request.
type Spec struct {
	// Expr is the expression to graph in terms of Variable.
	Expr string
	// Window bounds the sampled x interval and, when its y bounds are
	// ordered, cuts samples that blow up past the visible region.
	Window Window
	// Samples is the number of equally spaced sample points, at least 2.
	Samples int
	// Mode is the angle unit for trig in Expr.
	Mode graphcalc.AngleMode
	// Variable is the free variable name. Empty means "x".
	Variable string
}

// Point is one sampled point of a function's graph.
type Point struct {
	X, Y float64
}

// Series is an ordered, x-ascending list of sampled points. Samples that
// failed to evaluate are absent, so a series is not necessarily contiguous;
// the gaps are what make poles render as disconnected branches.
type Series []Point

var (
	// ErrSamples indicates a Spec with fewer than two samples.
	ErrSamples = errors.New("plot: need at least 2 samples")
	// ErrRange indicates a Spec whose x range is empty or reversed.
	ErrRange = errors.New("plot: x range is empty")
)

// overscan is the fraction of the window height kept beyond each y edge
// before a sample counts as asymptotic blow-up and is dropped.
const overscan = 0.1

// Plot samples spec.Expr across the window's x range. Syntax errors in the
// expression and malformed specs are returned; evaluation failures at
// individual samples drop those points and sampling continues.
func Plot(spec Spec) (Series, error) {
	if spec.Samples < 2 {
		return nil, ErrSamples
	}
	w := spec.Window
	if w.XMin >= w.XMax {
		return nil, ErrRange
	}
	e, err := graphcalc.ParseString(spec.Expr)
	if err != nil {
		return nil, err
	}
	name := spec.Variable
	if name == "" {
		name = "x"
	}

	cut := w.YMin < w.YMax
	margin := overscan * (w.YMax - w.YMin)
	lo, hi := w.YMin-margin, w.YMax+margin

	ctx := graphcalc.NewContext(graphcalc.Angle(spec.Mode))
	xs := floats.Span(make([]float64, spec.Samples), w.XMin, w.XMax)
	s := make(Series, 0, len(xs))
	for _, x := range xs {
		ctx.Set(name, x)
		y, err := e.Eval(ctx)
		if err != nil {
			// Poles, domain holes, stray names: omit the point.
			continue
		}
		if cut && (y < lo || y > hi) {
			continue
		}
		s = append(s, Point{X: x, Y: y})
	}
	return s, nil
}
