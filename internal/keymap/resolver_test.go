package keymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolver_Resolve(t *testing.T) {
	r := Default()

	tests := []struct {
		key      string
		expected Action
	}{
		{"q", ActionQuit},
		{"ctrl+c", ActionQuit},
		{"f1", ActionViewPlayer},
		{"f2", ActionViewManager},
		{"f3", ActionViewLog},
		{"k", ActionMoveUp},
		{"down", ActionMoveDown},
		{"enter", ActionSelect},
		{" ", ActionToggleSelect},
		{"d", ActionDelete},
		{"esc", ActionCancel},
		{"z", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.expected, r.Resolve(tt.key))
		})
	}
}

func TestResolver_LastBindingWins(t *testing.T) {
	r := NewResolver([]Binding{
		{ActionDelete, []string{"d"}, "Delete", "manager"},
		{ActionMoveDown, []string{"d"}, "Down", "global"},
	})

	assert.Equal(t, ActionMoveDown, r.Resolve("d"))
}

func TestResolver_KeysFor(t *testing.T) {
	r := NewResolver([]Binding{
		{ActionMoveUp, []string{"k", "up"}, "Up", "global"},
		{ActionMoveUp, []string{"up", "ctrl+p"}, "Up", "input"},
	})

	assert.Equal(t, []string{"k", "up", "ctrl+p"}, r.KeysFor(ActionMoveUp))
	assert.Empty(t, r.KeysFor(ActionQuit))
}

func TestHint(t *testing.T) {
	hint := Hint([]Binding{
		{ActionToggleSelect, []string{" "}, "Toggle song", "manager"},
		{ActionDelete, []string{"d", "delete"}, "Delete playlist", "manager"},
		{ActionCancel, nil, "Ignored", "input"},
	})

	assert.Equal(t, "space toggle song  d delete playlist", hint)
}
