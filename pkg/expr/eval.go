package expr

// State classifies the outcome of evaluating an expression.
type State int

const (
	// Incomplete means there is nothing to evaluate yet, or a well-formed
	// prefix ends in an operator that is still waiting for its operand.
	Incomplete State = iota
	// Complete means the expression reduced to exactly one value.
	Complete
	// Invalid means operands are missing in the middle of the expression,
	// or values were left over.
	Invalid
)

// String returns the lowercase name of the state.
func (s State) String() string {
	switch s {
	case Incomplete:
		return "incomplete"
	case Complete:
		return "complete"
	case Invalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// Result is the outcome of evaluating an expression. Value is meaningful
// only when HasValue is true.
type Result struct {
	Value    float64
	HasValue bool
	State    State
}

// Answer evaluates postfix tokens. It returns false when an operator finds
// fewer than two operands or when there are no tokens. If more than one
// value is left on the stack the first one pushed is returned.
func Answer(rpn []Token) (float64, bool) {
	v, _, ok := reduce(rpn)
	return v, ok
}

// reduce folds rpn and also reports how many values were left on the stack.
func reduce(rpn []Token) (float64, int, bool) {
	var stack []float64
	for _, tok := range rpn {
		if !tok.IsOp {
			stack = append(stack, tok.Number)
			continue
		}
		if len(stack) < 2 {
			return 0, len(stack), false
		}
		b := stack[len(stack)-1]
		a := stack[len(stack)-2]
		stack = stack[:len(stack)-2]
		stack = append(stack, tok.Op.Eval(a, b))
	}
	if len(stack) == 0 {
		return 0, 0, false
	}
	return stack[0], len(stack), true
}

// Evaluate computes the three-state result of e.
func Evaluate(e Expression) Result {
	v, left, ok := reduce(e.RPN)
	switch {
	case ok && left == 1:
		return Result{Value: v, HasValue: true, State: Complete}
	case ok:
		return Result{Value: v, HasValue: true, State: Invalid}
	case awaitingOperand(e.Parts):
		return Result{State: Incomplete}
	default:
		return Result{State: Invalid}
	}
}

// awaitingOperand reports whether parts is empty, or alternates number and
// operator starting with a number and ends with an operator, so that typing
// one more number could complete it.
func awaitingOperand(parts []Token) bool {
	if len(parts) == 0 {
		return true
	}
	for i, p := range parts {
		if p.IsOp != (i%2 == 1) {
			return false
		}
	}
	return parts[len(parts)-1].IsOp
}
