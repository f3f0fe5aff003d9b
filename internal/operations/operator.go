package operations

// Operator is one of the four supported arithmetic operations.
type Operator int

const (
	Add Operator = iota + 1
	Sub
	Mul
	Div
)

// Wire tags accepted in the "operacion" query parameter.
const (
	TagAdd = "suma"
	TagSub = "resta"
	TagMul = "multiplicacion"
	TagDiv = "division"
)

// ParseOperator maps a wire tag to its Operator.
func ParseOperator(tag string) (Operator, bool) {
	switch tag {
	case TagAdd:
		return Add, true
	case TagSub:
		return Sub, true
	case TagMul:
		return Mul, true
	case TagDiv:
		return Div, true
	default:
		return 0, false
	}
}

func (o Operator) String() string {
	switch o {
	case Add:
		return TagAdd
	case Sub:
		return TagSub
	case Mul:
		return TagMul
	case Div:
		return TagDiv
	default:
		return "unknown"
	}
}

// apply returns false for a zero divisor and for operators outside the enumeration.
func (o Operator) apply(a, b float64) (float64, bool) {
	switch o {
	case Add:
		return a + b, true
	case Sub:
		return a - b, true
	case Mul:
		return a * b, true
	case Div:
		if b == 0 {
			return 0, false
		}
		return a / b, true
	default:
		return 0, false
	}
}
