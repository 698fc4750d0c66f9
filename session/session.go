// Package session models the transient state behind a calculator keypad: the
// current entry, the pending binary operation, the memory register, and the
// angle mode. The presentation layer owns a Session, feeds it button labels,
// and shows whatever text Press returns; all arithmetic routes through the
// graphcalc evaluator.
package session

import (
	"math"
	"strconv"
	"strings"

	"graphcalc"
	"graphcalc/display"
)

// ErrorText is what the display shows after a failed operation. Any key but
// C first clears the session when it is showing.
const ErrorText = "Error"

// Session is the state of one calculator keypad. The zero value is not
// usable; call New.
type Session struct {
	entry  string
	acc    float64
	op     string
	reset  bool
	failed bool
	memory float64
	mode   graphcalc.AngleMode
}

// New creates a session showing 0 in degree mode, the power-on state of the
// original calculator.
func New() *Session {
	return &Session{entry: "0", mode: graphcalc.Degrees}
}

// Display returns the current display text.
func (s *Session) Display() string {
	return s.entry
}

// Memory returns the value of the memory register.
func (s *Session) Memory() float64 {
	return s.memory
}

// Mode returns the current angle mode.
func (s *Session) Mode() graphcalc.AngleMode {
	return s.mode
}

// monadicKeys maps function buttons to evaluator functions.
var monadicKeys = map[string]string{
	"sin": "sin", "cos": "cos", "tan": "tan",
	"asin": "asin", "acos": "acos", "atan": "atan",
	"sinh": "sinh", "cosh": "cosh", "tanh": "tanh",
	"ln": "ln", "log": "log", "exp": "exp",
	"abs": "abs", "⌊x⌋": "floor", "⌈x⌉": "ceil",
	"√": "sqrt", "x!": "fact",
}

// Press consumes one button label and returns the new display text. Labels
// follow the original keypad: digits, ".", binary operators (+ - × ÷ ^ nPr
// nCr), "=", "C", "←", "±", "%", "x²", "1/x", monadic function keys, "π",
// "e", MC MR M+ M-, and the DEG and RAD toggles. Unknown labels leave the
// session unchanged.
func (s *Session) Press(key string) string {
	if s.failed && key != "C" {
		s.clear()
	}
	switch key {
	case "0", "1", "2", "3", "4", "5", "6", "7", "8", "9":
		s.digit(key)
	case ".":
		s.dot()
	case "π", "pi":
		s.entry = display.Format(math.Pi)
		s.reset = true
	case "e":
		s.entry = display.Format(math.E)
		s.reset = true
	case "←":
		s.backspace()
	case "C":
		s.clear()
	case "±":
		s.negate()
	case "%":
		// The percent key, not the modulo operator: divide the entry by 100.
		if v, err := s.value(); err != nil {
			s.fail()
		} else {
			s.show(v / 100)
		}
	case "x²":
		if v, err := s.value(); err != nil {
			s.fail()
		} else {
			s.show(v * v)
		}
	case "1/x":
		s.eval("1/(" + s.entry + ")")
	case "+", "-", "×", "÷", "*", "/", "^", "nPr", "nCr":
		s.operator(key)
	case "=":
		s.equals()
	case "MC":
		s.memory = 0
	case "MR":
		s.entry = display.Format(s.memory)
		s.reset = true
	case "M+":
		if v, err := s.value(); err != nil {
			s.fail()
		} else {
			s.memory += v
			s.reset = true
		}
	case "M-":
		if v, err := s.value(); err != nil {
			s.fail()
		} else {
			s.memory -= v
			s.reset = true
		}
	case "DEG":
		s.mode = graphcalc.Degrees
	case "RAD":
		s.mode = graphcalc.Radians
	default:
		if fn, ok := monadicKeys[key]; ok {
			s.eval(fn + "(" + s.entry + ")")
		}
	}
	return s.entry
}

func (s *Session) digit(d string) {
	switch {
	case s.reset:
		s.entry = d
		s.reset = false
	case s.entry == "0":
		s.entry = d
	default:
		s.entry += d
	}
}

func (s *Session) dot() {
	if s.reset {
		s.entry = "0."
		s.reset = false
		return
	}
	if !strings.Contains(s.entry, ".") {
		s.entry += "."
	}
}

func (s *Session) backspace() {
	if len(s.entry) > 1 {
		s.entry = s.entry[:len(s.entry)-1]
	} else {
		s.entry = "0"
	}
}

func (s *Session) negate() {
	if s.entry == "0" {
		return
	}
	if strings.HasPrefix(s.entry, "-") {
		s.entry = s.entry[1:]
	} else {
		s.entry = "-" + s.entry
	}
}

// operator stores a pending binary operation. A second operator key before
// "=" replaces the pending one, as the original calculator did.
func (s *Session) operator(op string) {
	v, err := s.value()
	if err != nil {
		s.fail()
		return
	}
	s.acc = v
	s.op = op
	s.reset = true
}

// equals assembles the pending operation into an expression and runs it
// through the evaluator.
func (s *Session) equals() {
	if s.op == "" {
		return
	}
	if _, err := s.value(); err != nil {
		s.fail()
		return
	}
	lhs := strconv.FormatFloat(s.acc, 'g', -1, 64)
	s.eval("(" + lhs + ") " + s.op + " (" + s.entry + ")")
	s.op = ""
}

// eval evaluates src in the session's angle mode and shows the result, or
// Error on any failure.
func (s *Session) eval(src string) {
	v, err := graphcalc.EvalString(src, graphcalc.Angle(s.mode))
	if err != nil {
		s.fail()
		return
	}
	s.show(v)
}

func (s *Session) show(v float64) {
	s.entry = display.Format(v)
	s.reset = true
}

func (s *Session) value() (float64, error) {
	return display.ParseNumber(s.entry)
}

func (s *Session) fail() {
	s.entry = ErrorText
	s.op = ""
	s.reset = true
	s.failed = true
}

func (s *Session) clear() {
	s.entry = "0"
	s.op = ""
	s.acc = 0
	s.reset = false
	s.failed = false
}
