// Package buffer provides a grid of styled terminal cells that widgets draw into.
//
// Styles are patched rather than replaced: drawing with a style keeps every
// property of the existing cell style that the new style leaves unset.
// A frame is drawn from scratch into a fresh buffer and converted to a string.
package buffer

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

type cell struct {
	symbol string
	width  int // 0 marks the trailing half of a wide symbol
	style  int // index into Buffer.styles
}

type patchKey struct {
	patch, base int
}

// Buffer is a width x height grid of cells.
type Buffer struct {
	width, height int
	cells         []cell
	styles        []lipgloss.Style
	merged        map[patchKey]int
}

// New creates a buffer filled with blank, unstyled cells.
func New(width, height int) *Buffer {
	width, height = max(width, 0), max(height, 0)
	cells := make([]cell, width*height)
	for i := range cells {
		cells[i] = cell{symbol: " ", width: 1}
	}
	return &Buffer{
		width:  width,
		height: height,
		cells:  cells,
		styles: []lipgloss.Style{lipgloss.NewStyle()},
		merged: make(map[patchKey]int),
	}
}

// Area returns the full buffer rectangle.
func (b *Buffer) Area() Rect {
	return Rect{Width: b.width, Height: b.height}
}

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

func (b *Buffer) index(x, y int) int {
	return y*b.width + x
}

func (b *Buffer) addStyle(s lipgloss.Style) int {
	b.styles = append(b.styles, s)
	return len(b.styles) - 1
}

// patch returns the index of the style patch applied over base.
func (b *Buffer) patch(patch, base int) int {
	key := patchKey{patch: patch, base: base}
	if idx, ok := b.merged[key]; ok {
		return idx
	}
	idx := b.addStyle(b.styles[patch].Inherit(b.styles[base]))
	b.merged[key] = idx
	return idx
}

// SetStyle patches style over every cell of area.
func (b *Buffer) SetStyle(area Rect, style lipgloss.Style) {
	area = area.Intersect(b.Area())
	if area.Empty() {
		return
	}
	p := b.addStyle(style)
	for y := area.Top(); y < area.Bottom(); y++ {
		for x := area.Left(); x < area.Right(); x++ {
			c := &b.cells[b.index(x, y)]
			c.style = b.patch(p, c.style)
		}
	}
}

// SetStringN writes s at (x, y) using at most maxWidth columns and patches
// style over the written cells. A wide symbol that would not fit entirely is
// not written. It returns the column after the last written cell.
func (b *Buffer) SetStringN(x, y int, s string, maxWidth int, style lipgloss.Style) int {
	if y < 0 || y >= b.height || maxWidth <= 0 {
		return x
	}
	limit := min(x+maxWidth, b.width)
	p := -1

	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		symbol := gr.Str()
		w := runewidth.StringWidth(symbol)
		if w == 0 {
			continue
		}
		if x+w > limit {
			break
		}
		if x >= 0 {
			if p < 0 {
				p = b.addStyle(style)
			}
			for i := range w {
				b.clearWide(x+i, y)
			}
			c := &b.cells[b.index(x, y)]
			c.symbol = symbol
			c.width = w
			c.style = b.patch(p, c.style)
			for i := 1; i < w; i++ {
				tail := &b.cells[b.index(x+i, y)]
				tail.symbol = ""
				tail.width = 0
				tail.style = c.style
			}
		}
		x += w
	}
	return x
}

// clearWide blanks the whole wide symbol covering (x, y), if any, so that
// overwriting one of its halves never leaves the other half behind.
func (b *Buffer) clearWide(x, y int) {
	head := x
	for head > 0 && b.cells[b.index(head, y)].width == 0 {
		head--
	}
	hc := b.cells[b.index(head, y)]
	if hc.width <= 1 && head == x {
		return
	}
	end := min(head+max(hc.width, 1), b.width)
	for i := head; i < max(end, x+1); i++ {
		c := &b.cells[b.index(i, y)]
		c.symbol = " "
		c.width = 1
	}
}

// SetString writes s at (x, y) up to the right edge of the buffer.
func (b *Buffer) SetString(x, y int, s string, style lipgloss.Style) int {
	return b.SetStringN(x, y, s, b.width-x, style)
}

// SetLine writes the spans of line at (x, y) using at most maxWidth columns.
// It returns the column after the last written cell.
func (b *Buffer) SetLine(x, y int, line Line, maxWidth int) int {
	end := x + maxWidth
	for _, span := range line {
		if x >= end {
			break
		}
		x = b.SetStringN(x, y, span.Content, end-x, span.Style)
	}
	return x
}

// Symbol returns the symbol at (x, y), "" for the tail of a wide symbol or
// outside the buffer.
func (b *Buffer) Symbol(x, y int) string {
	if !b.inBounds(x, y) {
		return ""
	}
	return b.cells[b.index(x, y)].symbol
}

// StyleAt returns the style of the cell at (x, y).
func (b *Buffer) StyleAt(x, y int) lipgloss.Style {
	if !b.inBounds(x, y) {
		return lipgloss.NewStyle()
	}
	return b.styles[b.cells[b.index(x, y)].style]
}

// Line returns row y as plain text.
func (b *Buffer) Line(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	var sb strings.Builder
	for x := range b.width {
		sb.WriteString(b.cells[b.index(x, y)].symbol)
	}
	return sb.String()
}

// Lines returns every row as plain text.
func (b *Buffer) Lines() []string {
	lines := make([]string, b.height)
	for y := range b.height {
		lines[y] = b.Line(y)
	}
	return lines
}

// String renders the buffer with styles, one line per row.
func (b *Buffer) String() string {
	lines := make([]string, b.height)
	for y := range b.height {
		var (
			sb  strings.Builder
			run strings.Builder
			cur = -1
		)
		flush := func() {
			if run.Len() > 0 {
				sb.WriteString(b.styles[cur].Render(run.String()))
				run.Reset()
			}
		}
		for x := range b.width {
			c := b.cells[b.index(x, y)]
			if c.width == 0 {
				continue
			}
			if c.style != cur {
				flush()
				cur = c.style
			}
			run.WriteString(c.symbol)
		}
		flush()
		lines[y] = sb.String()
	}
	return strings.Join(lines, "\n")
}
