package layout

import "fmt"

// VisibleRows picks the half-open range [start, end) of rows to draw in a
// viewport of the given height so that the cursor row is on screen.
// cursor is -1 when there is none.
//
// The first page is anchored at the top and holds rows while their total stays
// below height. If the cursor is past it, pages are laid out one after another,
// each holding rows while their total does not exceed height, until the page
// containing the cursor is reached. A cursor row taller than the viewport is
// still returned on its own.
//
// Every height must be at least 1.
func VisibleRows(heights []int, cursor, height int) (start, end int) {
	for i, h := range heights {
		if h < 1 {
			panic(fmt.Sprintf("layout: row %d has height %d, want >= 1", i, h))
		}
	}
	if len(heights) == 0 || height <= 0 {
		return 0, 0
	}

	used := 0
	for _, h := range heights {
		if used+h >= height {
			break
		}
		used += h
		end++
	}
	if cursor < end {
		return 0, end
	}

	start = end
	used = 0
	for end < len(heights) && end <= cursor {
		h := heights[end]
		if used+h > height && end > start {
			start = end
			used = 0
		}
		used += h
		end++
	}
	return start, end
}
