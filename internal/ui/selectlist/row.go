package selectlist

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/tunedeck/internal/ui/buffer"
)

// Cell is one column of a row: possibly multi-line styled text.
type Cell struct {
	content buffer.Text
	style   lipgloss.Style
}

// NewCell creates an unstyled cell; newlines start new lines.
func NewCell(s string) Cell {
	return TextCell(buffer.Raw(s))
}

// TextCell creates a cell from prepared styled text.
func TextCell(t buffer.Text) Cell {
	return Cell{content: t, style: lipgloss.NewStyle()}
}

// Style returns a copy of the cell with the given background style.
func (c Cell) Style(s lipgloss.Style) Cell {
	c.style = s
	return c
}

func (c Cell) draw(buf *buffer.Buffer, area buffer.Rect) {
	buf.SetStyle(area, c.style)
	for i, line := range c.content {
		if i >= area.Height {
			break
		}
		buf.SetLine(area.X, area.Y+i, line, area.Width)
	}
}

// Row is an ordered set of cells drawn over height lines.
// Rows are built fresh for every frame; the renderer never modifies them.
type Row struct {
	cells  []Cell
	style  lipgloss.Style
	height int
}

// NewRow creates a row of height 1.
func NewRow(cells ...Cell) Row {
	return Row{
		cells:  cells,
		style:  lipgloss.NewStyle(),
		height: 1,
	}
}

// RowOf creates a row of height 1 with one unstyled cell per string.
func RowOf(texts ...string) Row {
	cells := make([]Cell, len(texts))
	for i, s := range texts {
		cells[i] = NewCell(s)
	}
	return NewRow(cells...)
}

// WithHeight returns a copy of the row spanning h lines. It panics if h < 1.
func (r Row) WithHeight(h int) Row {
	if h < 1 {
		panic(fmt.Sprintf("selectlist: row height %d, want >= 1", h))
	}
	r.height = h
	return r
}

// Style returns a copy of the row with the given style.
func (r Row) Style(s lipgloss.Style) Row {
	r.style = s
	return r
}

// Height returns the number of lines the row spans.
func (r Row) Height() int {
	return r.height
}

// Len returns the number of cells.
func (r Row) Len() int {
	return len(r.cells)
}

func (r Row) draw(buf *buffer.Buffer, areas []buffer.Rect) {
	for i, c := range r.cells {
		if i >= len(areas) {
			break
		}
		c.draw(buf, areas[i])
	}
}
