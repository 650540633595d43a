// Package theme models the light/dark preference shared by every component on
// a page. A State is the single owner of the current value; components read it
// and request transitions through the Facility interface.
package theme

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

// Theme is either Light or Dark.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// ErrInvalidTheme is returned by Parse for values other than light or dark.
var ErrInvalidTheme = errors.New("theme: invalid theme")

// Parse converts s into a Theme.
func Parse(s string) (Theme, error) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case Light:
		return Light, nil
	case Dark:
		return Dark, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidTheme, s)
}

// FromChecked maps a switch position to a theme: checked is dark.
func FromChecked(checked bool) Theme {
	if checked {
		return Dark
	}
	return Light
}

// Checked reports whether a switch showing t is in the checked position.
func (t Theme) Checked() bool {
	return t == Dark
}

// Facility exposes the current theme and a setter.
type Facility interface {
	Current() Theme
	Set(Theme)
}

// State is a Facility that broadcasts changes to its subscribers.
// It is safe for concurrent use.
type State struct {
	mu    sync.RWMutex
	value Theme

	subsMu sync.Mutex
	subs   map[int]func(Theme)
	nextID int
}

// NewState creates a State holding initial. Invalid values fall back to Light.
func NewState(initial Theme) *State {
	if initial != Dark {
		initial = Light
	}
	return &State{value: initial, subs: make(map[int]func(Theme))}
}

// Current returns the current theme.
func (s *State) Current() Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Set stores t and notifies subscribers if the value changed. Values other
// than Light and Dark are ignored.
func (s *State) Set(t Theme) {
	if t != Light && t != Dark {
		return
	}

	s.mu.Lock()
	changed := s.value != t
	s.value = t
	s.mu.Unlock()

	if !changed {
		return
	}

	// notify outside the lock so subscribers may read Current
	s.subsMu.Lock()
	fns := make([]func(Theme), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subsMu.Unlock()

	for _, fn := range fns {
		fn(t)
	}
}

// Subscribe registers fn to be called with each new theme. The returned
// function removes the subscription.
func (s *State) Subscribe(fn func(Theme)) (cancel func()) {
	s.subsMu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.subsMu.Unlock()

	return func() {
		s.subsMu.Lock()
		delete(s.subs, id)
		s.subsMu.Unlock()
	}
}

var _ Facility = (*State)(nil)
