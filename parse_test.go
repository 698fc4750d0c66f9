package graphcalc

import (
	"fmt"
	"testing"
)

// diffnodes structurally compares two parse trees.
func diffnodes(a, b *node) error {
	switch {
	case a == nil && b == nil:
		return nil
	case a == nil, b == nil:
		return fmt.Errorf("mismatched nils: %v versus %v", a, b)
	}
	if a.kind != b.kind {
		return fmt.Errorf("mismatched kinds: %v versus %v", a.kind, b.kind)
	}
	if a.name != b.name {
		return fmt.Errorf("mismatched names: %q versus %q", a.name, b.name)
	}
	if err := diffnodes(a.left, b.left); err != nil {
		return fmt.Errorf("in left of %v: %w", a.kind, err)
	}
	if err := diffnodes(a.right, b.right); err != nil {
		return fmt.Errorf("in right of %v: %w", a.kind, err)
	}
	return nil
}

func TestOpPrecsExist(t *testing.T) {
	for _, op := range []string{"+", "-", "*", "×", "/", "÷", "%", "^"} {
		if prec := binop(op); prec.op == nodeNone {
			t.Errorf("no binary operator for %q", op)
		}
	}
	for _, op := range []string{"+", "-"} {
		if prec := unop(op); prec.op == nodeNone {
			t.Errorf("no unary operator for %q", op)
		}
	}
	for _, op := range []string{"nPr", "nCr"} {
		if prec := wordop(op); prec.op == nodeNone {
			t.Errorf("no word operator for %q", op)
		}
	}
}

func TestTermPrecMatchesMultiplication(t *testing.T) {
	if termprec.prec != binop("*").prec {
		t.Errorf("term precedence %d does not match multiplication precedence %d", termprec.prec, binop("*").prec)
	}
}

// TestParseEquivalences checks that each pair of expressions parses to the
// same tree, pinning down precedence and implicit multiplication.
func TestParseEquivalences(t *testing.T) {
	cases := [][2]string{
		{"2+3*4", "2+(3*4)"},
		{"2*3+4", "(2*3)+4"},
		{"2-3-4", "(2-3)-4"},
		{"2/3/4", "(2/3)/4"},
		{"10%3%2", "(10%3)%2"},
		{"-2^2", "-(2^2)"},
		{"2^3^2", "2^(3^2)"},
		{"2^-3", "2^(-3)"},
		{"1×2÷3", "1*2/3"},
		{"6 nCr 2 * 3", "(6 nCr 2)*3"},
		{"6 nCr 2 + 3", "(6 nCr 2)+3"},
		{"5 nPr 3 nPr 1", "(5 nPr 3) nPr 1"},
		{"-5 nPr 3", "(-5) nPr 3"},
		{"2x", "2*x"},
		{"1.5x", "1.5*x"},
		{"5nPr3", "5*nPr3"},
		{"2 x y", "2*(x*y)"},
		{"2(x+1)", "2*(x+1)"},
		{"(x+1)(x-1)", "(x+1)*(x-1)"},
		{"sin 2x", "sin(2x)"},
		{"sin x + 1", "sin(x) + 1"},
		{"cos^2 x", "(cos(x))^2"},
		{"pi x", "pi*x"},
		{"pi(x+1)", "pi*(x+1)"},
		{"2pi", "2*pi()"},
		{"2^pi(3)", "(2^pi)*3"},
		{"-pi(3)", "(-pi)*3"},
		{"2 + pi(3)", "2 + (pi*3)"},
		{"{[(x)]}", "x"},
	}
	for _, c := range cases {
		a, err := ParseString(c[0])
		if err != nil {
			t.Errorf("parsing %q: %v", c[0], err)
			continue
		}
		b, err := ParseString(c[1])
		if err != nil {
			t.Errorf("parsing %q: %v", c[1], err)
			continue
		}
		if err := diffnodes(a.n, b.n); err != nil {
			t.Errorf("%q and %q disagree: %v\n\t%v\n\t%v", c[0], c[1], err, a, b)
		}
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"", "*graphcalc.EmptyExpressionError"},
		{"2+", "*graphcalc.EmptyExpressionError"},
		{"(2+)", "*graphcalc.EmptyExpressionError"},
		{"()", "*graphcalc.EmptyExpressionError"},
		{"5 nPr", "*graphcalc.EmptyExpressionError"},
		{"(2", "*graphcalc.BracketError"},
		{"2)", "*graphcalc.BracketError"},
		{"[2)", "*graphcalc.BracketError"},
		{"2**3", "*graphcalc.OperatorError"},
		{"*2", "*graphcalc.OperatorError"},
		{"nPr 3", "*graphcalc.OperatorError"},
		{"2 nCr nPr 3", "*graphcalc.OperatorError"},
		{"sin", "*graphcalc.CallError"},
		{"sin()", "*graphcalc.CallError"},
		{"$", "*graphcalc.LexError"},
		{"1.2.3", "*graphcalc.LexError"},
	}
	for _, c := range cases {
		_, err := ParseString(c.src)
		if err == nil {
			t.Errorf("no error parsing %q", c.src)
			continue
		}
		ie, ok := err.(InputError)
		if !ok {
			t.Errorf("error parsing %q is %T, not an InputError", c.src, err)
			continue
		}
		if got := fmt.Sprintf("%T", err); got != c.want {
			t.Errorf("error parsing %q: want %s, got %s (%v)", c.src, c.want, got, err)
		}
		if ie.Pos() < 1 {
			t.Errorf("error parsing %q has position %d", c.src, ie.Pos())
		}
	}
}

func TestVars(t *testing.T) {
	cases := []struct {
		src  string
		vars []string
	}{
		{"1", nil},
		{"x", []string{"x"}},
		{"x + y*z + x", []string{"x", "y", "z"}},
		{"2x", []string{"x"}},
		{"sin x", []string{"x"}},
		{"pi x", []string{"x"}},
	}
	for _, c := range cases {
		a, err := ParseString(c.src)
		if err != nil {
			t.Errorf("parsing %q: %v", c.src, err)
			continue
		}
		vars := a.Vars()
		if len(vars) != len(c.vars) {
			t.Errorf("wrong vars for %q: want %v, got %v", c.src, c.vars, vars)
			continue
		}
		for i, v := range vars {
			if v != c.vars[i] {
				t.Errorf("wrong vars for %q: want %v, got %v", c.src, c.vars, vars)
				break
			}
		}
	}
}

// TestDisableDefaultFuncs checks that with defaults disabled, builtin names
// parse as variables.
func TestDisableDefaultFuncs(t *testing.T) {
	a, err := ParseString("sin x + pi", DisableDefaultFuncs())
	if err != nil {
		t.Fatal(err)
	}
	vars := a.Vars()
	want := []string{"pi", "sin", "x"}
	if len(vars) != len(want) {
		t.Fatalf("wrong vars: want %v, got %v", want, vars)
	}
	for i, v := range vars {
		if v != want[i] {
			t.Fatalf("wrong vars: want %v, got %v", want, vars)
		}
	}
}
