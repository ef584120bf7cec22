package buffer

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestNew_Blank(t *testing.T) {
	b := New(4, 2)
	assert.Equal(t, []string{"    ", "    "}, b.Lines())
	assert.Equal(t, Rect{Width: 4, Height: 2}, b.Area())
}

func TestSetStringN_Clips(t *testing.T) {
	b := New(10, 1)
	end := b.SetStringN(2, 0, "hello world", 5, lipgloss.NewStyle())
	assert.Equal(t, 7, end)
	assert.Equal(t, "  hello   ", b.Line(0))
}

func TestSetStringN_StopsAtBufferEdge(t *testing.T) {
	b := New(4, 1)
	end := b.SetStringN(1, 0, "abcdef", 100, lipgloss.NewStyle())
	assert.Equal(t, 4, end)
	assert.Equal(t, " abc", b.Line(0))
}

func TestSetStringN_OutOfBoundsRow(t *testing.T) {
	b := New(4, 1)
	end := b.SetStringN(0, 3, "abc", 4, lipgloss.NewStyle())
	assert.Equal(t, 0, end)
	assert.Equal(t, "    ", b.Line(0))
}

func TestSetStringN_WideSymbols(t *testing.T) {
	b := New(5, 1)
	end := b.SetStringN(0, 0, "日本語", 5, lipgloss.NewStyle())
	assert.Equal(t, 4, end, "third wide symbol does not fit")
	assert.Equal(t, "日", b.Symbol(0, 0))
	assert.Equal(t, "", b.Symbol(1, 0))
	assert.Equal(t, "日本 ", b.Line(0))
}

func TestSetStringN_OverwritesWideSymbols(t *testing.T) {
	tests := []struct {
		name string
		x    int
		s    string
		want string
	}{
		{"narrow over head", 0, "a", "a 本  "},
		{"narrow over tail", 1, "a", " a本  "},
		{"wide across two symbols", 1, "語", " 語   "},
		{"wide over wide", 2, "語", "日語  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(6, 1)
			b.SetString(0, 0, "日本", lipgloss.NewStyle())
			b.SetString(tt.x, 0, tt.s, lipgloss.NewStyle())

			assert.Equal(t, tt.want, b.Line(0))
			assert.Equal(t, 6, lipgloss.Width(b.String()), "rendered row keeps the buffer width")
		})
	}
}

func TestSetStyle_Patches(t *testing.T) {
	b := New(3, 1)
	fg := lipgloss.Color("1")
	bg := lipgloss.Color("4")

	b.SetStyle(b.Area(), lipgloss.NewStyle().Foreground(fg))
	b.SetStyle(NewRect(1, 0, 1, 1), lipgloss.NewStyle().Background(bg))

	assert.Equal(t, fg, b.StyleAt(0, 0).GetForeground())
	assert.Equal(t, fg, b.StyleAt(1, 0).GetForeground(), "foreground survives the patch")
	assert.Equal(t, bg, b.StyleAt(1, 0).GetBackground())
	assert.NotEqual(t, bg, b.StyleAt(2, 0).GetBackground())
}

func TestSetStyle_NewStyleWins(t *testing.T) {
	b := New(1, 1)
	b.SetStyle(b.Area(), lipgloss.NewStyle().Foreground(lipgloss.Color("1")))
	b.SetStyle(b.Area(), lipgloss.NewStyle().Foreground(lipgloss.Color("2")))
	assert.Equal(t, lipgloss.Color("2"), b.StyleAt(0, 0).GetForeground())
}

func TestSetStyle_ClippedToBuffer(t *testing.T) {
	b := New(2, 2)
	b.SetStyle(NewRect(1, 1, 10, 10), lipgloss.NewStyle().Bold(true))
	assert.True(t, b.StyleAt(1, 1).GetBold())
	assert.False(t, b.StyleAt(0, 0).GetBold())
}

func TestSetLine(t *testing.T) {
	b := New(8, 1)
	line := Line{
		{Content: "ab", Style: lipgloss.NewStyle().Bold(true)},
		{Content: "cdef"},
	}
	end := b.SetLine(1, 0, line, 4)
	assert.Equal(t, 5, end)
	assert.Equal(t, " abcd   ", b.Line(0))
	assert.True(t, b.StyleAt(1, 0).GetBold())
	assert.False(t, b.StyleAt(3, 0).GetBold())
}

func TestString_PlainContent(t *testing.T) {
	b := New(3, 2)
	b.SetString(0, 0, "abc", lipgloss.NewStyle())
	b.SetString(0, 1, "de", lipgloss.NewStyle())

	lines := strings.Split(b.String(), "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], "abc")
	assert.Contains(t, lines[1], "de")
}

func TestRaw(t *testing.T) {
	txt := Raw("one\ntwo")
	assert.Equal(t, 2, txt.Height())
	assert.Equal(t, "two", txt[1][0].Content)
	assert.Equal(t, 3, txt.Width())
}

func TestRect(t *testing.T) {
	r := NewRect(2, 3, 10, 4)
	assert.Equal(t, 12, r.Right())
	assert.Equal(t, 7, r.Bottom())
	assert.Equal(t, NewRect(3, 4, 8, 2), r.Inner(1))
	assert.True(t, NewRect(0, 0, 1, 1).Inner(1).Empty())
	assert.Equal(t, NewRect(2, 3, 3, 1), r.Intersect(NewRect(0, 0, 5, 4)))
	assert.True(t, r.Intersect(NewRect(50, 50, 1, 1)).Empty())
}
