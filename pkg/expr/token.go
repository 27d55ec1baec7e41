// Package expr implements the calculator expression engine: it partitions
// raw input into tokens, reorders them into postfix (RPN) with a
// shunting-yard pass, and evaluates the postfix form.
package expr

import (
	"math"
	"strconv"
	"strings"
)

// Operator is one of the binary arithmetic operators understood by the engine.
type Operator int

const (
	OpAdd      Operator = iota // +
	OpSubtract                 // -
	OpMultiply                 // *
	OpDivide                   // /
	OpPower                    // ^
)

// operatorInfo describes an operator's input symbol, display symbol and
// binding strength.
type operatorInfo struct {
	symbol     string
	display    string
	precedence int
}

var operators = [...]operatorInfo{
	OpAdd:      {symbol: "+", display: "+", precedence: 1},
	OpSubtract: {symbol: "-", display: "-", precedence: 1},
	OpMultiply: {symbol: "*", display: "×", precedence: 2},
	OpDivide:   {symbol: "/", display: "÷", precedence: 2},
	OpPower:    {symbol: "^", display: "^", precedence: 3},
}

// bySymbol maps an input symbol to its operator.
var bySymbol = map[string]Operator{
	"+": OpAdd,
	"-": OpSubtract,
	"*": OpMultiply,
	"/": OpDivide,
	"^": OpPower,
}

// LookupOperator returns the operator typed as symbol.
func LookupOperator(symbol string) (Operator, bool) {
	op, ok := bySymbol[symbol]
	return op, ok
}

// Symbol returns the character used to type the operator.
func (o Operator) Symbol() string { return operators[o].symbol }

// Precedence returns the operator's binding strength; higher binds tighter.
func (o Operator) Precedence() int { return operators[o].precedence }

// String returns the display symbol of the operator.
func (o Operator) String() string {
	if o < 0 || int(o) >= len(operators) {
		return "?"
	}
	return operators[o].display
}

// Eval applies the operator to a left and right operand.
func (o Operator) Eval(a, b float64) float64 {
	switch o {
	case OpAdd:
		return a + b
	case OpSubtract:
		return a - b
	case OpMultiply:
		return a * b
	case OpDivide:
		return a / b
	case OpPower:
		return math.Pow(a, b)
	default:
		return math.NaN()
	}
}

// Token is a number or an operator.
type Token struct {
	Op     Operator
	Number float64
	IsOp   bool
}

// NumberToken returns a number token.
func NumberToken(v float64) Token {
	return Token{Number: v}
}

// OperatorToken returns an operator token.
func OperatorToken(op Operator) Token {
	return Token{Op: op, IsOp: true}
}

// String returns the token as the UI displays it.
func (t Token) String() string {
	if t.IsOp {
		return t.Op.String()
	}
	return FormatNumber(t.Number)
}

// ParseToken parses a single partitioned string. Surrounding whitespace is
// ignored; anything that is neither a decimal number nor an operator symbol
// is rejected.
func ParseToken(s string) (Token, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Token{}, false
	}
	if op, ok := LookupOperator(s); ok {
		return OperatorToken(op), true
	}
	if !isDecimal(s) {
		return Token{}, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Token{}, false
	}
	return NumberToken(v), true
}

// ParseTokens converts partitioned strings into tokens, silently dropping
// the ones that do not parse.
func ParseTokens(parts []string) []Token {
	tokens := make([]Token, 0, len(parts))
	for _, p := range parts {
		if tok, ok := ParseToken(p); ok {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

// isDecimal reports whether s contains only ASCII digits and dots. It keeps
// strconv from accepting forms like "Inf" or "0x1p3".
func isDecimal(s string) bool {
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if (ch < '0' || ch > '9') && ch != '.' {
			return false
		}
	}
	return true
}

// FormatNumber renders v as the shortest decimal that round-trips, never
// using an exponent.
func FormatNumber(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	case math.IsNaN(v):
		return "NaN"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
