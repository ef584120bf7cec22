package buffer

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Span is a run of text sharing one style.
type Span struct {
	Content string
	Style   lipgloss.Style
}

// Line is a single line of styled spans.
type Line []Span

// Width returns the display width of the line.
func (l Line) Width() int {
	w := 0
	for _, s := range l {
		w += runewidth.StringWidth(s.Content)
	}
	return w
}

// Text is styled text spanning one or more lines.
type Text []Line

// Raw splits s on newlines into unstyled text.
func Raw(s string) Text {
	return Styled(s, lipgloss.NewStyle())
}

// Styled splits s on newlines, giving every line the same style.
func Styled(s string, style lipgloss.Style) Text {
	parts := strings.Split(s, "\n")
	t := make(Text, len(parts))
	for i, p := range parts {
		t[i] = Line{{Content: p, Style: style}}
	}
	return t
}

// Height returns the number of lines.
func (t Text) Height() int {
	return len(t)
}

// Width returns the width of the widest line.
func (t Text) Width() int {
	w := 0
	for _, l := range t {
		w = max(w, l.Width())
	}
	return w
}
