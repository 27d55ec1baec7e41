// Package clipboard copies calculator output to the system clipboard.
package clipboard

import (
	"fmt"
	"sync"

	sysclip "github.com/atotto/clipboard"
)

// Clipboard accepts text to be pasted elsewhere.
type Clipboard interface {
	WriteAll(text string) error
}

// System writes to the operating system clipboard.
type System struct{}

// WriteAll implements Clipboard.
func (System) WriteAll(text string) error {
	if sysclip.Unsupported {
		return fmt.Errorf("no clipboard utility available on this system")
	}
	if err := sysclip.WriteAll(text); err != nil {
		return fmt.Errorf("writing clipboard: %w", err)
	}
	return nil
}

// Memory keeps copied text in process. The zero value is ready to use.
type Memory struct {
	mu      sync.Mutex
	history []string
}

// WriteAll implements Clipboard.
func (m *Memory) WriteAll(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.history = append(m.history, text)
	return nil
}

// Contents returns the most recently copied text.
func (m *Memory) Contents() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.history) == 0 {
		return ""
	}
	return m.history[len(m.history)-1]
}

// History returns every copied text, oldest first.
func (m *Memory) History() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.history...)
}
