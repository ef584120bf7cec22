package layout

// ColumnWidths resolves the data column widths of a table.
//
// When gutter > 0 a leading fixed slot of that width is reserved for the
// highlight symbol. A fixed slot of spacing cells separates adjacent columns.
// Only the data column widths are returned, in order.
func ColumnWidths(width int, columns []Constraint, gutter, spacing int) []int {
	if len(columns) == 0 {
		return nil
	}

	slots := make([]Constraint, 0, len(columns)*2+1)
	first := 0
	if gutter > 0 {
		slots = append(slots, Length(gutter))
		first = 1
	}
	for i, c := range columns {
		if i > 0 {
			slots = append(slots, Length(spacing))
		}
		slots = append(slots, c)
	}

	solved := Split(width, slots)

	widths := make([]int, 0, len(columns))
	for i := first; i < len(solved); i += 2 {
		widths = append(widths, solved[i])
	}
	return widths
}
