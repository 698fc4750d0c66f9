package graphcalc_test

import (
	"errors"
	"math"
	"testing"

	"graphcalc"
)

// FuzzParse checks that parsing any input either succeeds or fails with a
// positioned syntax error, never a panic or a bare error.
func FuzzParse(f *testing.F) {
	for _, src := range []string{
		"x",
		"2+3*4",
		"5 nPr 3",
		"1×2÷3",
		"sin(90)",
		"cos^2 x",
		"pi(x+1)",
		"2^pi(3)",
		"2x",
		"{[(x)]}",
		"-2^2",
	} {
		f.Add(src)
	}
	f.Fuzz(func(t *testing.T, src string) {
		a, err := graphcalc.ParseString(src)
		if err != nil {
			var ie graphcalc.InputError
			if !errors.As(err, &ie) {
				t.Errorf("parsing %q: error %#v is not an InputError", src, err)
			}
			return
		}
		// The formatted tree must reparse cleanly.
		if _, err := graphcalc.ParseString(a.String()); err != nil {
			t.Errorf("reparsing %q as %v: %v", src, a, err)
		}
	})
}

// FuzzEval checks that any successful evaluation produces a finite result.
func FuzzEval(f *testing.F) {
	for _, c := range []struct {
		src string
		x   float64
	}{
		{"x", 0},
		{"x^2 + 2x + 1", 3},
		{"5 nPr 3", 0},
		{"sin(90)", 0},
		{"1/x", 2},
		{"10^10^10", 0},
	} {
		f.Add(c.src, c.x)
	}
	f.Fuzz(func(t *testing.T, src string, x float64) {
		a, err := graphcalc.ParseString(src)
		if err != nil {
			return
		}
		ctx := graphcalc.NewContext(graphcalc.SetVar("x", x), graphcalc.Angle(graphcalc.Degrees))
		r, err := a.Eval(ctx)
		if err != nil {
			return
		}
		if math.IsInf(r, 0) || math.IsNaN(r) {
			t.Errorf("non-finite result %g evaluating %q at x=%g", r, src, x)
		}
	})
}
