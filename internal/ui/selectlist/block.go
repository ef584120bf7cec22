package selectlist

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/tunedeck/internal/ui/buffer"
)

// Block is a titled border drawn around a widget.
type Block struct {
	Title       string
	TitleStyle  lipgloss.Style
	Border      lipgloss.Border
	BorderStyle lipgloss.Style
}

// NewBlock creates a block with a rounded border.
func NewBlock(title string) Block {
	return Block{
		Title:       title,
		TitleStyle:  lipgloss.NewStyle(),
		Border:      lipgloss.RoundedBorder(),
		BorderStyle: lipgloss.NewStyle(),
	}
}

// Inner returns the area left inside the border.
func (b Block) Inner(area buffer.Rect) buffer.Rect {
	return area.Inner(1)
}

// Render draws the border and title into area.
func (b Block) Render(buf *buffer.Buffer, area buffer.Rect) {
	if area.Width < 2 || area.Height < 2 {
		return
	}
	inner := area.Width - 2
	top := b.Border.TopLeft + strings.Repeat(b.Border.Top, inner) + b.Border.TopRight
	bottom := b.Border.BottomLeft + strings.Repeat(b.Border.Bottom, inner) + b.Border.BottomRight

	buf.SetStringN(area.X, area.Top(), top, area.Width, b.BorderStyle)
	buf.SetStringN(area.X, area.Bottom()-1, bottom, area.Width, b.BorderStyle)
	for y := area.Top() + 1; y < area.Bottom()-1; y++ {
		buf.SetStringN(area.X, y, b.Border.Left, 1, b.BorderStyle)
		buf.SetStringN(area.Right()-1, y, b.Border.Right, 1, b.BorderStyle)
	}
	if b.Title != "" {
		buf.SetStringN(area.X+1, area.Top(), b.Title, inner, b.TitleStyle)
	}
}
