package ui

import "fmt"

// MenuState is the selection state of one menu invocation.
type MenuState struct {
	Prompt   string
	Options  []string
	Selected int
}

// NewMenuState starts a menu with the first option selected.
func NewMenuState(prompt string, options []string) (*MenuState, error) {
	if len(options) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoOptions, prompt)
	}
	return &MenuState{Prompt: prompt, Options: options}, nil
}

// Next moves the selection down, wrapping from the last option to the first.
func (m *MenuState) Next() {
	m.Selected = (m.Selected + 1) % len(m.Options)
}

// Prev moves the selection up, wrapping from the first option to the last.
func (m *MenuState) Prev() {
	m.Selected = (m.Selected - 1 + len(m.Options)) % len(m.Options)
}

// Label returns the selected option.
func (m *MenuState) Label() string {
	return m.Options[m.Selected]
}
