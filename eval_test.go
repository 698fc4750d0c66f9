package graphcalc_test

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"graphcalc"
)

// near reports whether two results agree to within floating point slop.
func near(a, b float64) bool {
	if a == b {
		return true
	}
	m := math.Max(math.Abs(a), math.Abs(b))
	return math.Abs(a-b) <= 1e-12*m
}

func TestEval(t *testing.T) {
	cases := []struct {
		src  string
		vars map[string]float64
		want float64
	}{
		{"2+2", nil, 4},
		{"2+3*4", nil, 14},
		{"(2+3)*4", nil, 20},
		{"1 - 2 - 3", nil, -4},
		{"7/2", nil, 3.5},
		{"10 % 3", nil, 1},
		{"4^3^2", nil, 262144},
		{"-2^2", nil, -4},
		{"(-2)^2", nil, 4},
		{"(-2)^3", nil, -8},
		{"2^-1", nil, 0.5},
		{"5 nPr 3", nil, 60},
		{"5 nCr 2", nil, 10},
		{"5 nCr 0", nil, 1},
		{"5 nCr 5", nil, 1},
		{"0 nCr 0", nil, 1},
		{"5 nCr 2 * 3", nil, 30},
		{"fact(5)", nil, 120},
		{"fact(0)", nil, 1},
		{"sqrt(16)", nil, 4},
		{"sqrt 16", nil, 4},
		{"log 1000", nil, 3},
		{"ln(e)", nil, 1},
		{"exp 1", nil, math.E},
		{"abs(-3)", nil, 3},
		{"floor(2.7)", nil, 2},
		{"ceil(2.2)", nil, 3},
		{"pi", nil, math.Pi},
		{"2pi", nil, 2 * math.Pi},
		{"2^pi(3)", nil, 3 * math.Pow(2, math.Pi)},
		{"2 + pi(3)", nil, 2 + 3*math.Pi},
		{"sinh 0", nil, 0},
		{"cosh 0", nil, 1},
		{"tanh 0", nil, 0},
		{"2x", map[string]float64{"x": 3}, 6},
		{"x^2 + 2x + 1", map[string]float64{"x": 3}, 16},
		{"x y", map[string]float64{"x": 3, "y": 4}, 12},
		{"x nCr y", map[string]float64{"x": 6, "y": 2}, 15},
	}
	for _, c := range cases {
		r, err := graphcalc.EvalString(c.src, graphcalc.SetVars(c.vars))
		if err != nil {
			t.Errorf("evaluating %q: %v", c.src, err)
			continue
		}
		if !near(r, c.want) {
			t.Errorf("evaluating %q: want %g, got %g", c.src, c.want, r)
		}
	}
}

func TestEvalDomainErrors(t *testing.T) {
	cases := []string{
		"1/0",
		"1 % 0",
		"0^(-1)",
		"(-2)^0.5",
		"10^10^10",
		"sqrt(-1)",
		"ln 0",
		"ln(-1)",
		"log(-3)",
		"asin(2)",
		"acos(-1.5)",
		"5 nCr 6",
		"3.5 nCr 2",
		"5 nPr 3.5",
		"(-2) nPr 1",
		"5 nCr (-1)",
		"fact(-1)",
		"fact(1.5)",
	}
	for _, src := range cases {
		r, err := graphcalc.EvalString(src)
		if err == nil {
			t.Errorf("no error evaluating %q: got %g", src, r)
			continue
		}
		var de *graphcalc.DomainError
		if !errors.As(err, &de) {
			t.Errorf("error evaluating %q is %T, not a DomainError: %v", src, err, err)
		}
	}
}

func TestEvalNameError(t *testing.T) {
	_, err := graphcalc.EvalString("2x + q")
	var ne *graphcalc.NameError
	if !errors.As(err, &ne) {
		t.Fatalf("error is %T, not a NameError: %v", err, err)
	}
	if ne.Name != "q" && ne.Name != "x" {
		t.Errorf("wrong missing name: %q", ne.Name)
	}
	// An unspaced word operator is a single identifier, not nPr.
	_, err = graphcalc.EvalString("5nPr3")
	if !errors.As(err, &ne) {
		t.Fatalf("error is %T, not a NameError: %v", err, err)
	}
	if ne.Name != "nPr3" {
		t.Errorf("wrong missing name: %q", ne.Name)
	}
}

func TestAngleModes(t *testing.T) {
	cases := []struct {
		src  string
		mode graphcalc.AngleMode
		want float64
	}{
		{"sin(90)", graphcalc.Degrees, 1},
		{"cos(180)", graphcalc.Degrees, -1},
		{"tan(45)", graphcalc.Degrees, 1},
		{"asin(1)", graphcalc.Degrees, 90},
		{"acos(0)", graphcalc.Degrees, 90},
		{"atan(1)", graphcalc.Degrees, 45},
		{"sin(pi/2)", graphcalc.Radians, 1},
		{"cos(pi)", graphcalc.Radians, -1},
		{"asin(1)", graphcalc.Radians, math.Pi / 2},
		{"sinh(1)", graphcalc.Degrees, math.Sinh(1)},
	}
	for _, c := range cases {
		r, err := graphcalc.EvalString(c.src, graphcalc.Angle(c.mode))
		if err != nil {
			t.Errorf("evaluating %q in %v: %v", c.src, c.mode, err)
			continue
		}
		if !near(r, c.want) {
			t.Errorf("evaluating %q in %v: want %g, got %g", c.src, c.mode, c.want, r)
		}
	}
}

// TestEvalRepeat checks that evaluating the same expression twice with
// different contexts gives independent results.
func TestEvalRepeat(t *testing.T) {
	a, err := graphcalc.ParseString("x^2")
	if err != nil {
		t.Fatal(err)
	}
	for x := float64(-3); x <= 3; x++ {
		r, err := a.Eval(graphcalc.NewContext(graphcalc.SetVar("x", x)))
		if err != nil {
			t.Errorf("evaluating at %g: %v", x, err)
			continue
		}
		if !near(r, x*x) {
			t.Errorf("evaluating at %g: want %g, got %g", x, x*x, r)
		}
	}
}

func TestContext(t *testing.T) {
	ctx := graphcalc.NewContext(graphcalc.SetVar("x", 1), graphcalc.Angle(graphcalc.Degrees))
	if v, ok := ctx.Lookup("x"); !ok || v != 1 {
		t.Errorf("wrong x: %g, %t", v, ok)
	}
	if _, ok := ctx.Lookup("y"); ok {
		t.Error("y defined")
	}
	if ctx.Mode() != graphcalc.Degrees {
		t.Errorf("wrong mode: %v", ctx.Mode())
	}
	d := ctx.Clone(graphcalc.SetVar("x", 2))
	if v, _ := d.Lookup("x"); v != 2 {
		t.Errorf("wrong x in clone: %g", v)
	}
	if v, _ := ctx.Lookup("x"); v != 1 {
		t.Errorf("clone changed original x: %g", v)
	}
	ctx.Set("y", 3).Set("z", 4)
	if v, _ := ctx.Lookup("z"); v != 4 {
		t.Errorf("wrong z: %g", v)
	}
}

func Example() {
	a, err := graphcalc.ParseString("x^3/2 - x")
	if err != nil {
		panic(err)
	}
	ctx := graphcalc.NewContext()
	for x := float64(0); x <= 3; x++ {
		r, err := a.Eval(ctx.Set("x", x))
		if err != nil {
			panic(err)
		}
		fmt.Println(r)
	}
	// Output:
	// 0
	// -0.5
	// 2
	// 10.5
}
