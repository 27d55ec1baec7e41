package report

import (
	"reflect"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		input string
		want  Record
	}{
		{"2+3*4", Record{
			Expression: "2+3*4",
			Parts:      []string{"2", "+", "3", "×", "4"},
			RPN:        []string{"2", "3", "4", "×", "+"},
			Answer:     "14",
			State:      "complete",
		}},
		{"5+", Record{
			Expression: "5+",
			Parts:      []string{"5", "+"},
			RPN:        []string{"5", "+"},
			State:      "incomplete",
		}},
		{"", Record{
			Expression: "",
			Parts:      []string{},
			RPN:        []string{},
			State:      "incomplete",
		}},
		{"0/0", Record{
			Expression: "0/0",
			Parts:      []string{"0", "÷", "0"},
			RPN:        []string{"0", "0", "÷"},
			Answer:     "NaN",
			State:      "complete",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := New(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}
