// Package report describes evaluated expressions in a serializable form
// shared by the eval command and the HTTP API.
package report

import (
	"github.com/zeeshanok/epic-calc/pkg/expr"
)

// Record is the serialized result of one expression. Answer is the
// formatted value (which may be "inf" or "NaN") and is empty when there is
// no answer.
type Record struct {
	Expression string   `json:"expression" yaml:"expression"`
	Parts      []string `json:"parts" yaml:"parts"`
	RPN        []string `json:"rpn" yaml:"rpn"`
	Answer     string   `json:"answer,omitempty" yaml:"answer,omitempty"`
	State      string   `json:"state" yaml:"state"`
}

// New evaluates raw and describes the outcome.
func New(raw string) Record {
	e := expr.Parse(raw)
	r := e.Result()
	rec := Record{
		Expression: raw,
		Parts:      expr.Strings(e.Parts),
		RPN:        expr.Strings(e.RPN),
		State:      r.State.String(),
	}
	if v, ok := e.Answer(); ok {
		rec.Answer = expr.FormatNumber(v)
	}
	return rec
}
