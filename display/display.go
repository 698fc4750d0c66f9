// Package display converts between calculator results and the text a
// presentation layer shows.
package display

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// sigfigs is how many significant digits a formatted result keeps, the width
// of a classic calculator readout.
const sigfigs = 10

// Format renders a result for the display: integer values print without a
// decimal point and everything else rounds to ten significant digits with
// trailing zeros trimmed.
func Format(v float64) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		// Nothing downstream produces these, but decimal panics on them, so
		// fall back to strconv just in case.
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	d := decimal.NewFromFloat(v)
	if d.IsInteger() {
		return d.String()
	}
	intDigits := int32(d.NumDigits()) + d.Exponent()
	s := d.Round(sigfigs - intDigits).String()
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	return s
}

// ParseNumber converts a display entry to a value. Unlike strconv, it rejects
// infinities and NaN, which are not valid calculator entries.
func ParseNumber(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return v, nil
}
