package graphcalc

import (
	"io"
	"math"
	"strconv"
	"strings"
)

// AngleMode selects the unit that trigonometric functions use for angles.
type AngleMode uint8

const (
	// Radians is the default angle unit.
	Radians AngleMode = iota
	// Degrees makes sin, cos, and tan interpret their argument in degrees
	// and asin, acos, and atan produce results in degrees.
	Degrees
)

func (m AngleMode) String() string {
	switch m {
	case Radians:
		return "RAD"
	case Degrees:
		return "DEG"
	}
	return "AngleMode(" + strconv.Itoa(int(m)) + ")"
}

// Context is a context for evaluating expressions: variable bindings plus the
// angle mode. It is not safe to use a Context concurrently.
type Context struct {
	names map[string]float64
	mode  AngleMode
}

// ContextOption is an option used when creating a context.
type ContextOption interface {
	ctxOption()
}

type (
	varopt struct {
		name string
		val  float64
	}
	varsopt map[string]float64
	modeopt AngleMode
)

func (varopt) ctxOption()  {}
func (varsopt) ctxOption() {}
func (modeopt) ctxOption() {}

// SetVar sets the value of a variable in the context.
func SetVar(name string, val float64) ContextOption {
	return varopt{name, val}
}

// SetVars sets the values of any number of variables in the context.
func SetVars(vars map[string]float64) ContextOption {
	return varsopt(vars)
}

// Angle sets the angle unit of the context.
func Angle(mode AngleMode) ContextOption {
	return modeopt(mode)
}

// NewContext creates a new evaluation context. If no angle unit is given, the
// default is Radians.
func NewContext(opts ...ContextOption) *Context {
	ctx := Context{}
	return ctx.Clone(opts...)
}

// Clone creates a copy of a context and applies options to it.
func (ctx *Context) Clone(opts ...ContextOption) *Context {
	n := Context{
		names: make(map[string]float64, len(ctx.names)),
		mode:  ctx.mode,
	}
	for name, val := range ctx.names {
		n.names[name] = val
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case varopt:
			n.names[opt.name] = opt.val
		case varsopt:
			for k, v := range opt {
				n.names[k] = v
			}
		case modeopt:
			n.mode = AngleMode(opt)
		default:
			panic("graphcalc: unknown option type")
		}
	}
	return &n
}

// Set sets the value of a variable. Returns ctx for chaining.
func (ctx *Context) Set(name string, value float64) *Context {
	if ctx.names == nil {
		ctx.names = make(map[string]float64)
	}
	ctx.names[name] = value
	return ctx
}

// Lookup returns the value of a variable and whether the context defines it.
func (ctx *Context) Lookup(name string) (float64, bool) {
	v, ok := ctx.names[name]
	return v, ok
}

// Mode returns the angle unit of the context.
func (ctx *Context) Mode() AngleMode {
	return ctx.mode
}

// Eval evaluates the expression with the given context. The result is always
// finite; an evaluation that overflows, like 10^10^10, is a *DomainError the
// same as one that divides by zero.
func (e *Expr) Eval(ctx *Context) (float64, error) {
	r, err := e.n.eval(ctx)
	if err != nil {
		return 0, err
	}
	if math.IsInf(r, 0) || math.IsNaN(r) {
		return 0, &DomainError{X: r, Func: "result"}
	}
	return r, nil
}

// eval computes the node's value.
func (n *node) eval(ctx *Context) (float64, error) {
	switch n.kind {
	case nodeNum:
		v, err := strconv.ParseFloat(n.name, 64)
		if err != nil {
			// The lexer only emits number tokens strconv accepts, modulo
			// overflow to infinity, which the top-level finiteness check
			// reports.
			if !strings.Contains(err.Error(), "value out of range") {
				panic("graphcalc: invalid number: " + n.name + " (" + err.Error() + ")")
			}
		}
		return v, nil
	case nodeName:
		v, ok := ctx.names[n.name]
		if !ok {
			return 0, &NameError{Name: n.name}
		}
		return v, nil
	case nodeCall:
		var args []float64
		if n.left != nil {
			v, err := n.left.eval(ctx)
			if err != nil {
				return 0, err
			}
			args = []float64{v}
		}
		r, err := n.fn.Call(ctx, args)
		if err != nil {
			if de, ok := err.(*DomainError); ok && de.Func == "" {
				de.Func = n.name
			}
			return 0, err
		}
		return r, nil
	case nodeNeg:
		v, err := n.left.eval(ctx)
		return -v, err
	case nodeNop:
		return n.left.eval(ctx)
	}
	l, err := n.left.eval(ctx)
	if err != nil {
		return 0, err
	}
	r, err := n.right.eval(ctx)
	if err != nil {
		return 0, err
	}
	switch n.kind {
	case nodeAdd:
		return l + r, nil
	case nodeSub:
		return l - r, nil
	case nodeMul:
		return l * r, nil
	case nodeDiv:
		if r == 0 {
			return 0, &DomainError{X: r, Func: "/"}
		}
		return l / r, nil
	case nodeMod:
		if r == 0 {
			return 0, &DomainError{X: r, Func: "%"}
		}
		return math.Mod(l, r), nil
	case nodePow:
		// A negative base is fine as long as the exponent is an integer.
		if l < 0 && r != math.Trunc(r) {
			return 0, &DomainError{X: l, Func: "^"}
		}
		if l == 0 && r < 0 {
			return 0, &DomainError{X: r, Func: "^"}
		}
		return math.Pow(l, r), nil
	case nodePerm:
		return permutations(l, r)
	case nodeComb:
		return combinations(l, r)
	default:
		panic("graphcalc: invalid AST node " + n.kind.String())
	}
}

// Eval is a shortcut to parse an expression and return its result using the
// default functions.
func Eval(src io.RuneScanner, opts ...ContextOption) (float64, error) {
	a, err := Parse(src)
	if err != nil {
		return 0, err
	}
	return a.Eval(NewContext(opts...))
}

// EvalString is a shortcut to parse and evaluate a string expression.
func EvalString(src string, opts ...ContextOption) (float64, error) {
	return Eval(strings.NewReader(src), opts...)
}

// NameError is an error from a lookup for a variable that is missing from the
// evaluation context.
type NameError struct {
	// Name is the name that was missing.
	Name string
}

func (err *NameError) Error() string {
	return "undefined variable: " + strconv.Quote(err.Name)
}
