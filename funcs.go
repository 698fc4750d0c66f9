package graphcalc

import (
	"math"
	"strconv"

	"gonum.org/v1/gonum/stat/combin"
)

// Func is a function from reals to reals. Functions may consult the context's
// angle mode but must not look up variables.
type Func interface {
	// Call evaluates the function on args. len(args) is a length for which
	// CanCall returned true.
	Call(ctx *Context, args []float64) (float64, error)

	// CanCall returns whether the function can be called with n arguments.
	// This controls how the expression parser handles instances of this
	// function:
	//
	// 	1.	If a bracketed expression follows a function and CanCall(1), the
	//		parser treats it as the argument. (If !CanCall(1) and CanCall(0),
	//		then it is a multiplication; otherwise, it is rejected.)
	//
	// 	2.	If a bare term follows a function and CanCall(1), then the parser
	//		treats the term as an argument to the function. E.g., "sin x" is
	//		parsed as "sin(x)". (If !CanCall(1), then it is a multiplication.)
	CanCall(n int) bool
}

var globalfuncs = map[string]Func{
	// trig; mode-sensitive per the context
	"sin": angleIn{math.Sin},
	"cos": angleIn{math.Cos},
	"tan": angleIn{math.Tan},
	"asin": angleOut{math.Asin, func(x float64) bool {
		return -1 <= x && x <= 1
	}},
	"acos": angleOut{math.Acos, func(x float64) bool {
		return -1 <= x && x <= 1
	}},
	"atan": angleOut{math.Atan, nil},

	// hyperbolics; angles play no part
	"sinh": Monadic(math.Sinh),
	"cosh": Monadic(math.Cosh),
	"tanh": Monadic(math.Tanh),

	"exp": Monadic(math.Exp),
	"ln": domained{math.Log, func(x float64) bool {
		return x > 0
	}},
	"log": domained{math.Log10, func(x float64) bool {
		return x > 0
	}},
	"sqrt": domained{math.Sqrt, func(x float64) bool {
		return x >= 0
	}},

	"abs":   Monadic(math.Abs),
	"floor": Monadic(math.Floor),
	"ceil":  Monadic(math.Ceil),
	"fact":  domained{factorial, nonNegInt},

	// constants
	"pi": Niladic(func() float64 { return math.Pi }),
	"e":  Niladic(func() float64 { return math.E }),
}

// DefaultFuncs returns the name of every function and constant the parser
// recognizes by default.
func DefaultFuncs() []string {
	v := make([]string, 0, len(globalfuncs))
	for k := range globalfuncs {
		v = append(v, k)
	}
	sortstrs(v)
	return v
}

type monadic struct {
	f func(float64) float64
}

func (m monadic) Call(ctx *Context, args []float64) (float64, error) {
	return m.f(args[0]), nil
}

func (m monadic) CanCall(n int) bool {
	return n == 1
}

// Monadic wraps a function of one variable into a Func. f must be total on
// the reals; functions with restricted domains need their own Func that
// returns a *DomainError instead.
func Monadic(f func(float64) float64) Func {
	return monadic{f}
}

type niladic struct {
	f func() float64
}

func (n niladic) Call(ctx *Context, args []float64) (float64, error) {
	return n.f(), nil
}

func (n niladic) CanCall(k int) bool {
	return k == 0
}

// Niladic wraps a function of zero variables, generally a function which
// computes a constant, into a Func.
func Niladic(f func() float64) Func {
	return niladic{f}
}

// domained is a monadic function restricted to arguments satisfying ok.
type domained struct {
	f  func(float64) float64
	ok func(float64) bool
}

func (d domained) Call(ctx *Context, args []float64) (float64, error) {
	x := args[0]
	if !d.ok(x) {
		// The evaluator fills in the function name.
		return 0, &DomainError{X: x}
	}
	return d.f(x), nil
}

func (d domained) CanCall(n int) bool {
	return n == 1
}

// angleIn is a trig function whose argument is an angle. In degree mode the
// argument converts to radians before applying f.
type angleIn struct {
	f func(float64) float64
}

func (a angleIn) Call(ctx *Context, args []float64) (float64, error) {
	x := args[0]
	if ctx.mode == Degrees {
		x = x * math.Pi / 180
	}
	return a.f(x), nil
}

func (a angleIn) CanCall(n int) bool {
	return n == 1
}

// angleOut is an inverse trig function whose result is an angle. In degree
// mode the result converts from radians after applying f.
type angleOut struct {
	f  func(float64) float64
	ok func(float64) bool
}

func (a angleOut) Call(ctx *Context, args []float64) (float64, error) {
	x := args[0]
	if a.ok != nil && !a.ok(x) {
		return 0, &DomainError{X: x}
	}
	r := a.f(x)
	if ctx.mode == Degrees {
		r = r * 180 / math.Pi
	}
	return r, nil
}

func (a angleOut) CanCall(n int) bool {
	return n == 1
}

func nonNegInt(x float64) bool {
	return x >= 0 && x == math.Trunc(x)
}

func factorial(n float64) float64 {
	return math.Round(math.Gamma(n + 1))
}

// permutations computes n nPr r, the count of ordered selections of r items
// from n.
func permutations(n, r float64) (float64, error) {
	if err := combcheck(n, r, "nPr"); err != nil {
		return 0, err
	}
	return math.Round(combin.GeneralizedBinomial(n, r) * math.Gamma(r+1)), nil
}

// combinations computes n nCr r, the count of unordered selections of r items
// from n.
func combinations(n, r float64) (float64, error) {
	if err := combcheck(n, r, "nCr"); err != nil {
		return 0, err
	}
	return math.Round(combin.GeneralizedBinomial(n, r)), nil
}

// combcheck validates combinatoric operands: both non-negative integers with
// r <= n.
func combcheck(n, r float64, name string) error {
	if !nonNegInt(n) {
		return &DomainError{X: n, Func: name}
	}
	if !nonNegInt(r) || r > n {
		return &DomainError{X: r, Func: name}
	}
	return nil
}

// DomainError is an error returned when a function or operator is applied to
// arguments outside its domain, like dividing by zero or taking the square
// root of a negative number.
type DomainError struct {
	// X is the out-of-domain argument, or the non-finite result for an
	// evaluation that overflowed.
	X float64
	// Func is a name identifying the function or operator.
	Func string
}

func (err *DomainError) Error() string {
	r := strconv.FormatFloat(err.X, 'g', -1, 64) + " outside domain"
	if err.Func != "" {
		r += " of " + err.Func
	}
	return r
}
