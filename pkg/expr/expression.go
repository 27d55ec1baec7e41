package expr

// MaxExpressionLength is the maximum accepted length of a raw expression at
// the outer surfaces (HTTP API). The engine itself accepts any length.
const MaxExpressionLength = 400

// Expression is a parsed snapshot of the input text.
type Expression struct {
	Raw   string
	Parts []Token // tokens in source order
	RPN   []Token // tokens in postfix order
}

// Parse builds an Expression from raw text. It never fails: characters that
// do not form a number or operator are dropped.
func Parse(raw string) Expression {
	parts := ParseTokens(Partition(raw, IsSeparator))
	return Expression{
		Raw:   raw,
		Parts: parts,
		RPN:   Postfix(parts),
	}
}

// Answer returns the value of the expression, if it has one.
func (e Expression) Answer() (float64, bool) {
	return Answer(e.RPN)
}

// Result returns the three-state evaluation of the expression.
func (e Expression) Result() Result {
	return Evaluate(e)
}

// Strings returns the display form of each token.
func Strings(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.String()
	}
	return out
}
