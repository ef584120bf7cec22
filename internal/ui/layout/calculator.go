// Package layout provides pure functions for UI dimension calculations:
// screen partitioning, column width resolution and row windowing.
package layout

import "github.com/llehouerou/tunedeck/internal/ui/buffer"

// NarrowThreshold is the terminal width below which panes are stacked
// vertically instead of side by side.
const NarrowThreshold = 80

const (
	// HeaderHeight is the title/tab bar at the top of the screen.
	HeaderHeight = 1

	// StatusHeight is the status line at the bottom of the screen.
	StatusHeight = 1

	// InputHeight is a bordered single-line text input.
	InputHeight = 3
)

// ContentArea returns the area between the header and the status line.
func ContentArea(windowWidth, windowHeight int) buffer.Rect {
	return buffer.NewRect(0, HeaderHeight, max(windowWidth, 0), max(windowHeight-HeaderHeight-StatusHeight, 0))
}

// IsNarrowMode returns true if the terminal width is below the narrow threshold.
func IsNarrowMode(width int) bool {
	return width < NarrowThreshold
}

// SplitPanes divides content into a side pane and a main pane.
// Side by side, the side pane gets a third of the width.
// In narrow mode it gets the top third of the height instead.
func SplitPanes(content buffer.Rect, narrow bool) (side, main buffer.Rect) {
	if narrow {
		sideHeight := content.Height / 3
		side = buffer.NewRect(content.X, content.Y, content.Width, sideHeight)
		main = buffer.NewRect(content.X, content.Y+sideHeight, content.Width, content.Height-sideHeight)
		return side, main
	}
	sideWidth := content.Width / 3
	side = buffer.NewRect(content.X, content.Y, sideWidth, content.Height)
	main = buffer.NewRect(content.X+sideWidth, content.Y, content.Width-sideWidth, content.Height)
	return side, main
}

// SplitInput carves a text input off the top of area.
func SplitInput(area buffer.Rect) (input, rest buffer.Rect) {
	h := min(InputHeight, area.Height)
	input = buffer.NewRect(area.X, area.Y, area.Width, h)
	rest = buffer.NewRect(area.X, area.Y+h, area.Width, area.Height-h)
	return input, rest
}
