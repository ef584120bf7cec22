// Package selectlist renders a virtualized, multi-column list with a cursor
// row and an optional selection set into a cell buffer.
//
// Only the rows needed to keep the cursor on screen are drawn. The rows and
// the state are supplied by the caller on every frame.
package selectlist

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/llehouerou/tunedeck/internal/cond"
	"github.com/llehouerou/tunedeck/internal/ui/buffer"
	"github.com/llehouerou/tunedeck/internal/ui/layout"
)

// DefaultHighlightSymbol marks the cursor row.
const DefaultHighlightSymbol = "> "

// State is the navigation state a SelectList is rendered with.
type State interface {
	// Index returns the cursor row and whether there is one.
	Index() (int, bool)
}

// selectionSet is implemented by states that also track chosen rows.
type selectionSet interface {
	IsSelected(index int) bool
}

// SelectList is a table widget. Configure it with the builder methods, then Render.
type SelectList struct {
	block           *Block
	style           lipgloss.Style
	widths          []layout.Constraint
	columnSpacing   int
	highlightStyle  lipgloss.Style
	selectedStyle   lipgloss.Style
	highlightSymbol string
	header          *Row
	rows            []Row
}

// New creates a list over rows.
func New(rows []Row) SelectList {
	return SelectList{
		style:           lipgloss.NewStyle(),
		columnSpacing:   1,
		highlightStyle:  lipgloss.NewStyle(),
		selectedStyle:   lipgloss.NewStyle(),
		highlightSymbol: DefaultHighlightSymbol,
		rows:            rows,
	}
}

// Block surrounds the list with a titled border.
func (l SelectList) Block(b Block) SelectList {
	l.block = &b
	return l
}

// Header sets a row drawn above the body.
func (l SelectList) Header(h Row) SelectList {
	l.header = &h
	return l
}

// Widths sets one constraint per column. It panics if a percentage lies
// outside [0,100] or a length is negative.
func (l SelectList) Widths(constraints ...layout.Constraint) SelectList {
	if err := layout.Validate(constraints); err != nil {
		panic(fmt.Sprintf("selectlist: %v", err))
	}
	l.widths = append([]layout.Constraint(nil), constraints...)
	return l
}

// Style sets the base style of the whole area.
func (l SelectList) Style(s lipgloss.Style) SelectList {
	l.style = s
	return l
}

// HighlightSymbol sets the string drawn in the gutter of the cursor row.
func (l SelectList) HighlightSymbol(s string) SelectList {
	l.highlightSymbol = s
	return l
}

// HighlightStyle sets the style patched over the cursor row.
func (l SelectList) HighlightStyle(s lipgloss.Style) SelectList {
	l.highlightStyle = s
	return l
}

// SelectedStyle sets the style patched over rows in the state's selection set.
func (l SelectList) SelectedStyle(s lipgloss.Style) SelectList {
	l.selectedStyle = s
	return l
}

// ColumnSpacing sets the gap between adjacent columns.
func (l SelectList) ColumnSpacing(n int) SelectList {
	l.columnSpacing = max(n, 0)
	return l
}

// Len returns the number of body rows.
func (l SelectList) Len() int {
	return len(l.rows)
}

// constraints returns the configured widths, or equal shares over the widest row.
func (l SelectList) constraints() []layout.Constraint {
	if len(l.widths) > 0 {
		return l.widths
	}
	n := 0
	if l.header != nil {
		n = l.header.Len()
	}
	for _, r := range l.rows {
		n = max(n, r.Len())
	}
	if n == 0 {
		return nil
	}
	cs := make([]layout.Constraint, n)
	for i := range cs {
		cs[i] = layout.Percentage(100 / n)
	}
	return cs
}

func (l SelectList) heights() []int {
	hs := make([]int, len(l.rows))
	for i, r := range l.rows {
		if r.height < 1 {
			panic(fmt.Sprintf("selectlist: row %d has height %d, want >= 1", i, r.height))
		}
		hs[i] = r.height
	}
	return hs
}

// columnAreas lays the columns out left to right inside area, after the gutter.
func (l SelectList) columnAreas(area buffer.Rect, widths []int, gutter int) []buffer.Rect {
	areas := make([]buffer.Rect, len(widths))
	x := area.X + min(gutter, area.Width)
	for i, w := range widths {
		areas[i] = buffer.NewRect(x, area.Y, w, area.Height).Intersect(area)
		x += w + l.columnSpacing
	}
	return areas
}

// Render draws the list into area of buf. Nothing outside area is touched.
func (l SelectList) Render(buf *buffer.Buffer, area buffer.Rect, state State) {
	heights := l.heights()

	area = area.Intersect(buf.Area())
	if area.Empty() {
		return
	}
	buf.SetStyle(area, l.style)

	tableArea := area
	if l.block != nil {
		l.block.Render(buf, area)
		tableArea = l.block.Inner(area)
	}
	if tableArea.Empty() {
		return
	}

	cursor, hasCursor := -1, false
	if state != nil {
		if i, ok := state.Index(); ok {
			cursor, hasCursor = i, true
		}
	}

	symbolWidth := runewidth.StringWidth(l.highlightSymbol)
	gutter := cond.If(hasCursor, symbolWidth, 0)
	widths := layout.ColumnWidths(tableArea.Width, l.constraints(), gutter, l.columnSpacing)

	if l.header != nil {
		h := min(l.header.height, tableArea.Height)
		headerArea := buffer.NewRect(tableArea.X, tableArea.Y, tableArea.Width, h)
		buf.SetStyle(headerArea, l.header.style)
		l.header.draw(buf, l.columnAreas(headerArea, widths, gutter))
		tableArea.Y += h
		tableArea.Height -= h
	}

	if len(l.rows) == 0 || tableArea.Height <= 0 {
		return
	}

	start, end := layout.VisibleRows(heights, cursor, tableArea.Height)
	blank := strings.Repeat(" ", symbolWidth)
	selected, _ := state.(selectionSet)

	y := tableArea.Y
	for i := start; i < end; i++ {
		if y >= tableArea.Bottom() {
			break
		}
		row := l.rows[i]
		rowArea := buffer.NewRect(tableArea.X, y, tableArea.Width, min(row.height, tableArea.Bottom()-y))
		buf.SetStyle(rowArea, row.style)

		isCursor := hasCursor && i == cursor
		if hasCursor {
			symbol := cond.Select(cond.Of(isCursor), l.highlightSymbol, blank)
			buf.SetStringN(rowArea.X, rowArea.Y, symbol, rowArea.Width, row.style)
		}
		row.draw(buf, l.columnAreas(rowArea, widths, gutter))

		if selected != nil && selected.IsSelected(i) {
			buf.SetStyle(rowArea, l.selectedStyle)
		}
		if isCursor {
			buf.SetStyle(rowArea, l.highlightStyle)
		}
		y += row.height
	}
}
