package expr

// Postfix reorders infix tokens into postfix order using the shunting-yard
// algorithm restricted to binary operators. An incoming operator pops every
// stacked operator of equal or higher precedence, so all operators,
// including '^', associate to the left. Parentheses are not supported.
func Postfix(tokens []Token) []Token {
	out := make([]Token, 0, len(tokens))
	var stack []Operator

	for _, tok := range tokens {
		if !tok.IsOp {
			out = append(out, tok)
			continue
		}
		p := tok.Op.Precedence()
		for len(stack) > 0 && p <= stack[len(stack)-1].Precedence() {
			out = append(out, OperatorToken(stack[len(stack)-1]))
			stack = stack[:len(stack)-1]
		}
		stack = append(stack, tok.Op)
	}

	for i := len(stack) - 1; i >= 0; i-- {
		out = append(out, OperatorToken(stack[i]))
	}
	return out
}
