// Package operations implements the calculator behind /operaciones.
package operations

// Result is the outcome of Compute. Value is meaningful only when OK is true.
type Result struct {
	Value float64
	OK    bool
}

// Pointer returns the value, or nil when the operation failed.
func (r Result) Pointer() *float64 {
	if !r.OK {
		return nil
	}
	v := r.Value
	return &v
}

var failed = Result{}

// Compute parses both operands and applies the operator named by tag.
//
// Unparseable operands, an unknown tag, division by zero and a non-finite
// result all fail. A result of exactly zero is also reported as a failure:
// clients of /operaciones have always received 502 for it, 0/x included.
func Compute(tag string, a, b Operand) Result {
	x, ok := a.Float()
	if !ok {
		return failed
	}
	y, ok := b.Float()
	if !ok {
		return failed
	}

	op, ok := ParseOperator(tag)
	if !ok {
		return failed
	}

	v, ok := op.apply(x, y)
	if !ok || v == 0 || !isFinite(v) {
		return failed
	}
	return Result{Value: v, OK: true}
}
