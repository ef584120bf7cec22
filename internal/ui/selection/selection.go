// Package selection tracks a cursor and an independent set of chosen items.
package selection

import (
	"slices"

	"github.com/llehouerou/tunedeck/internal/ui/cursor"
)

// State owns the item count, an optional cursor and the selected set.
// It is rebuilt with New whenever the backing collection changes.
type State struct {
	n        int
	cursor   cursor.Cursor
	selected map[int]struct{}
}

// Option configures a State built by New.
type Option func(*State)

// WithIndex places the cursor at index. A negative index leaves no cursor.
func WithIndex(index int) Option {
	return func(s *State) {
		if index < 0 {
			s.cursor.Deselect()
			return
		}
		s.cursor.Select(index)
	}
}

// WithSelected marks indices as selected.
func WithSelected(indices ...int) Option {
	return func(s *State) {
		for _, i := range indices {
			s.selected[i] = struct{}{}
		}
	}
}

// New builds a State for n items. The cursor is clamped into range (and
// dropped when n is 0); selected indices outside [0, n) are discarded.
func New(n int, opts ...Option) State {
	s := State{
		n:        max(n, 0),
		selected: make(map[int]struct{}),
	}
	for _, opt := range opts {
		opt(&s)
	}
	s.cursor.Clamp(s.n)
	for i := range s.selected {
		if i < 0 || i >= s.n {
			delete(s.selected, i)
		}
	}
	return s
}

// Toggle reports a membership change made by ToggleSelect.
type Toggle struct {
	Index    int
	Selected bool // true if the index was added, false if removed
}

// Len returns the item count.
func (s State) Len() int {
	return s.n
}

// Index returns the cursor and whether one is set.
func (s State) Index() (int, bool) {
	return s.cursor.Selected()
}

// SetIndex moves the cursor; a negative index clears it. No bounds check.
func (s *State) SetIndex(index int) {
	WithIndex(index)(s)
}

// IsSelected reports whether index is in the selected set.
func (s State) IsSelected(index int) bool {
	_, ok := s.selected[index]
	return ok
}

// Selecteds returns the selected indices in ascending order.
func (s State) Selecteds() []int {
	out := make([]int, 0, len(s.selected))
	for i := range s.selected {
		out = append(out, i)
	}
	slices.Sort(out)
	return out
}

// Count returns the number of selected indices.
func (s State) Count() int {
	return len(s.selected)
}

// ToggleSelect adds the cursor index to the set, or removes it if present.
// Without a cursor nothing happens and ok is false.
func (s *State) ToggleSelect() (Toggle, bool) {
	i, ok := s.cursor.Selected()
	if !ok {
		return Toggle{}, false
	}
	if s.selected == nil {
		s.selected = make(map[int]struct{})
	}
	if _, in := s.selected[i]; in {
		delete(s.selected, i)
		return Toggle{Index: i, Selected: false}, true
	}
	s.selected[i] = struct{}{}
	return Toggle{Index: i, Selected: true}, true
}

// Next moves the cursor down, wrapping to the top. Without a cursor it
// starts at the first item.
func (s *State) Next() {
	if s.n == 0 {
		s.cursor.Deselect()
		return
	}
	s.cursor.Next(s.n)
}

// Previous moves the cursor up, wrapping to the bottom. Without a cursor it
// does nothing: only Next seeds a cursor.
func (s *State) Previous() {
	if s.n == 0 {
		s.cursor.Deselect()
		return
	}
	if _, ok := s.cursor.Selected(); !ok {
		return
	}
	s.cursor.Previous(s.n)
}
