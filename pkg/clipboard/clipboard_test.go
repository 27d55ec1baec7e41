package clipboard

import (
	"reflect"
	"testing"
)

func TestMemory(t *testing.T) {
	var m Memory
	if got := m.Contents(); got != "" {
		t.Fatalf("empty clipboard contents = %q", got)
	}

	for _, s := range []string{"2+2", "4"} {
		if err := m.WriteAll(s); err != nil {
			t.Fatalf("WriteAll(%q): %v", s, err)
		}
	}

	if got := m.Contents(); got != "4" {
		t.Errorf("Contents() = %q, want %q", got, "4")
	}
	if got, want := m.History(), []string{"2+2", "4"}; !reflect.DeepEqual(got, want) {
		t.Errorf("History() = %q, want %q", got, want)
	}
}

var _ Clipboard = System{}
var _ Clipboard = (*Memory)(nil)
