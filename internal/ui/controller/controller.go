// Package controller provides single-selection navigation for list and table panes.
//
// List and Table share one contract: the owner passes the current item count
// on every move, the cursor wraps at both ends, and an empty collection clears
// the cursor. They differ only in the state handed to the renderer.
package controller

import "github.com/llehouerou/tunedeck/internal/ui/cursor"

// ListState is the render state of a List.
type ListState struct {
	cursor.Cursor
}

// TableState is the render state of a Table.
type TableState struct {
	cursor.Cursor
}

// List drives the cursor of a single-column list.
type List struct {
	state ListState
}

// NewList creates a list controller with no cursor.
func NewList() List {
	return List{}
}

// WithSelect returns a copy with the cursor set to index, or cleared when index < 0.
func (l List) WithSelect(index int) List {
	l.Select(index)
	return l
}

// Select sets the cursor; a negative index clears it.
func (l *List) Select(index int) {
	selectIndex(&l.state.Cursor, index)
}

// Selected returns the cursor and whether one is set.
func (l List) Selected() (int, bool) {
	return l.state.Selected()
}

// Next moves down, wrapping to the top.
func (l *List) Next(n int) {
	l.state.Next(n)
}

// Previous moves up, wrapping to the bottom.
func (l *List) Previous(n int) {
	l.state.Previous(n)
}

// Clamp repairs a cursor left past the end after the collection shrank.
func (l *List) Clamp(n int) {
	l.state.Clamp(n)
}

// State returns the state to render with.
func (l *List) State() *ListState {
	return &l.state
}

// Table drives the row cursor of a multi-column table.
type Table struct {
	state TableState
}

// NewTable creates a table controller with no cursor.
func NewTable() Table {
	return Table{}
}

// WithSelect returns a copy with the cursor set to index, or cleared when index < 0.
func (t Table) WithSelect(index int) Table {
	t.Select(index)
	return t
}

// Select sets the cursor; a negative index clears it.
func (t *Table) Select(index int) {
	selectIndex(&t.state.Cursor, index)
}

// Selected returns the cursor and whether one is set.
func (t Table) Selected() (int, bool) {
	return t.state.Selected()
}

// Next moves down, wrapping to the top.
func (t *Table) Next(n int) {
	t.state.Next(n)
}

// Previous moves up, wrapping to the bottom.
func (t *Table) Previous(n int) {
	t.state.Previous(n)
}

// Clamp repairs a cursor left past the end after the collection shrank.
func (t *Table) Clamp(n int) {
	t.state.Clamp(n)
}

// State returns the state to render with.
func (t *Table) State() *TableState {
	return &t.state
}

func selectIndex(c *cursor.Cursor, index int) {
	if index < 0 {
		c.Deselect()
		return
	}
	c.Select(index)
}
