package render

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"clean ascii untouched", "Blue in Green", "Blue in Green"},
		{"clean unicode untouched", "Café – 東京", "Café – 東京"},
		{"tab kept", "a\tb", "a\tb"},
		{"newline dropped", "a\nb", "ab"},
		{"escape dropped", "a\x1b[31mb", "a[31mb"},
		{"delete dropped", "a\x7fb", "ab"},
		{"invalid byte dropped", "a\xffb", "ab"},
		{"latin-1 byte dropped", "Caf\xe9", "Caf"},
		{"lone continuation byte dropped", "a\xa9b", "ab"},
		{"overlong lead byte dropped", "a\xc0\xafb", "ab"},
		{"nbsp becomes space", "a\u00a0b", "a b"},
		{"c1 control dropped", "a\u0085b", "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.input))
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{"no truncation needed", "hello", 10, "hello"},
		{"exact fit", "hello", 5, "hello"},
		{"truncation with ellipsis", "hello world", 8, "hello..."},
		{"very short max width", "hello", 3, "..."},
		{"empty string", "", 10, ""},
		{"wide characters", "東京タワー", 7, "東京..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Truncate(tt.input, tt.maxWidth))
		})
	}
}

func TestFit(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  string
	}{
		{"pads short", "ok", 5, "ok   "},
		{"truncates long", "hello world", 8, "hello..."},
		{"exact", "abc", 3, "abc"},
		{"wide padded", "東", 4, "東  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Fit(tt.input, tt.width)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.width, lipgloss.Width(got))
		})
	}
}

func TestRow(t *testing.T) {
	tests := []struct {
		name  string
		left  string
		right string
		width int
		want  string
	}{
		{"fills gap", "tunedeck", "F1", 14, "tunedeck    F1"},
		{"minimum one space", "tunedeck", "F1", 5, "tunedeck F1"},
		{"empty right", "a", "", 3, "a  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Row(tt.left, tt.right, tt.width))
		})
	}
}
