package operations

import (
	"math"
	"strconv"
	"strings"
)

// Operand is either a numeric-looking string or an already numeric value.
// The zero Operand is an empty string and never parses.
type Operand struct {
	raw     string
	num     float64
	numeric bool
}

// Numeric wraps a string operand, typically a query parameter value.
func Numeric(s string) Operand {
	return Operand{raw: s}
}

// Number wraps a numeric operand.
func Number(f float64) Operand {
	return Operand{num: f, numeric: true}
}

// Float converts the operand to a finite float64.
func (o Operand) Float() (float64, bool) {
	if o.numeric {
		return o.num, isFinite(o.num)
	}

	s := strings.TrimSpace(o.raw)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || !isFinite(f) {
		return 0, false
	}
	return f, true
}

func (o Operand) String() string {
	if o.numeric {
		return strconv.FormatFloat(o.num, 'g', -1, 64)
	}
	return o.raw
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
