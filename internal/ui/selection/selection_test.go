package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ClampsAndFilters(t *testing.T) {
	tests := []struct {
		name         string
		n            int
		opts         []Option
		wantIndex    int
		wantHasIndex bool
		wantSelected []int
	}{
		{
			name:         "no options",
			n:            3,
			wantSelected: []int{},
		},
		{
			name:         "index in range",
			n:            3,
			opts:         []Option{WithIndex(1)},
			wantIndex:    1,
			wantHasIndex: true,
			wantSelected: []int{},
		},
		{
			name:         "index past end is clamped",
			n:            3,
			opts:         []Option{WithIndex(10)},
			wantIndex:    2,
			wantHasIndex: true,
			wantSelected: []int{},
		},
		{
			name:         "empty collection drops index",
			n:            0,
			opts:         []Option{WithIndex(0)},
			wantSelected: []int{},
		},
		{
			name:         "out of range selections are dropped",
			n:            4,
			opts:         []Option{WithSelected(3, 0, 4, -1, 9)},
			wantSelected: []int{0, 3},
		},
		{
			name:         "option order does not matter",
			n:            2,
			opts:         []Option{WithSelected(1, 5), WithIndex(5)},
			wantIndex:    1,
			wantHasIndex: true,
			wantSelected: []int{1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(tt.n, tt.opts...)
			idx, ok := s.Index()
			assert.Equal(t, tt.wantHasIndex, ok)
			if ok {
				assert.Equal(t, tt.wantIndex, idx)
			}
			assert.Equal(t, tt.wantSelected, s.Selecteds())
			assert.Equal(t, tt.n, s.Len())
		})
	}
}

func TestToggleSelect(t *testing.T) {
	s := New(5, WithIndex(2), WithSelected(4))

	ev, ok := s.ToggleSelect()
	require.True(t, ok)
	assert.Equal(t, Toggle{Index: 2, Selected: true}, ev)
	assert.Equal(t, []int{2, 4}, s.Selecteds())

	ev, ok = s.ToggleSelect()
	require.True(t, ok)
	assert.Equal(t, Toggle{Index: 2, Selected: false}, ev)
	assert.Equal(t, []int{4}, s.Selecteds(), "two toggles restore the original set")
}

func TestToggleSelect_NoCursor(t *testing.T) {
	s := New(3, WithSelected(1))
	_, ok := s.ToggleSelect()
	assert.False(t, ok)
	assert.Equal(t, []int{1}, s.Selecteds())
}

func TestToggleSelect_ZeroValue(t *testing.T) {
	var s State
	s.SetIndex(0)
	_, ok := s.ToggleSelect()
	assert.True(t, ok)
	assert.True(t, s.IsSelected(0))
}

func TestNext(t *testing.T) {
	s := New(3)
	s.Next()
	idx, ok := s.Index()
	require.True(t, ok, "Next seeds a cursor")
	assert.Equal(t, 0, idx)

	s.Next()
	s.Next()
	idx, _ = s.Index()
	assert.Equal(t, 2, idx)

	s.Next()
	idx, _ = s.Index()
	assert.Equal(t, 0, idx, "wraps to the top")
}

func TestPrevious(t *testing.T) {
	s := New(3)
	s.Previous()
	_, ok := s.Index()
	assert.False(t, ok, "Previous does not seed a cursor")

	s.SetIndex(0)
	s.Previous()
	idx, _ := s.Index()
	assert.Equal(t, 2, idx, "wraps to the bottom")

	s.Previous()
	idx, _ = s.Index()
	assert.Equal(t, 1, idx)
}

func TestNavigation_EmptyCollection(t *testing.T) {
	s := New(0)
	s.Next()
	_, ok := s.Index()
	assert.False(t, ok)

	s.Previous()
	_, ok = s.Index()
	assert.False(t, ok)
}

func TestNextWrapsAroundAfterLenSteps(t *testing.T) {
	for n := 1; n <= 6; n++ {
		s := New(n, WithIndex(0))
		for range n {
			s.Next()
		}
		idx, _ := s.Index()
		assert.Equal(t, 0, idx, "len=%d", n)
	}
}

func TestSelectedsIsACopy(t *testing.T) {
	s := New(3, WithSelected(1))
	got := s.Selecteds()
	got[0] = 2
	assert.True(t, s.IsSelected(1))
	assert.False(t, s.IsSelected(2))
	assert.Equal(t, 1, s.Count())
}
