package layout

import "slices"

// Split resolves constraints against width and returns one width per constraint.
//
// Lengths are served first, left to right, each taking what it asks for while
// space remains. Percentages then share the space the lengths left over; each
// receives its share of that remainder, rounded so the percentage slots together
// get floor(remaining*sum/100) cells, with leftover cells going to the slots
// with the largest fractional parts. The result never exceeds width.
func Split(width int, constraints []Constraint) []int {
	widths := make([]int, len(constraints))
	remaining := max(width, 0)

	for i, c := range constraints {
		if c.kind != kindLength {
			continue
		}
		w := min(max(c.value, 0), remaining)
		widths[i] = w
		remaining -= w
	}

	type share struct {
		index int
		frac  int
	}
	var (
		shares   []share
		pctTotal int
		assigned int
	)
	for i, c := range constraints {
		if c.kind != kindPercentage {
			continue
		}
		p := min(max(c.value, 0), 100)
		pctTotal += p
		exact := remaining * p
		widths[i] = exact / 100
		assigned += widths[i]
		shares = append(shares, share{index: i, frac: exact % 100})
	}
	if len(shares) == 0 {
		return widths
	}

	target := min(remaining*min(pctTotal, 100)/100, remaining)
	slices.SortStableFunc(shares, func(a, b share) int {
		return b.frac - a.frac
	})
	for k := 0; assigned < target && k < len(shares); k++ {
		widths[shares[k].index]++
		assigned++
	}
	return widths
}
