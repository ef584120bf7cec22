package layout

import (
	"testing"

	"github.com/llehouerou/tunedeck/internal/ui/buffer"
)

func TestContentArea(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		height int
		want   buffer.Rect
	}{
		{
			name:   "regular window",
			width:  100,
			height: 40,
			want:   buffer.NewRect(0, 1, 100, 38),
		},
		{
			name:   "too small for content",
			width:  10,
			height: 1,
			want:   buffer.NewRect(0, 1, 10, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ContentArea(tt.width, tt.height); got != tt.want {
				t.Errorf("ContentArea(%d, %d) = %+v, want %+v", tt.width, tt.height, got, tt.want)
			}
		})
	}
}

func TestIsNarrowMode(t *testing.T) {
	if !IsNarrowMode(NarrowThreshold - 1) {
		t.Error("width below threshold should be narrow")
	}
	if IsNarrowMode(NarrowThreshold) {
		t.Error("width at threshold should not be narrow")
	}
}

func TestSplitPanes(t *testing.T) {
	content := buffer.NewRect(0, 1, 90, 30)

	side, main := SplitPanes(content, false)
	if side != buffer.NewRect(0, 1, 30, 30) {
		t.Errorf("wide side = %+v", side)
	}
	if main != buffer.NewRect(30, 1, 60, 30) {
		t.Errorf("wide main = %+v", main)
	}

	side, main = SplitPanes(content, true)
	if side != buffer.NewRect(0, 1, 90, 10) {
		t.Errorf("narrow side = %+v", side)
	}
	if main != buffer.NewRect(0, 11, 90, 20) {
		t.Errorf("narrow main = %+v", main)
	}
}

func TestSplitInput(t *testing.T) {
	input, rest := SplitInput(buffer.NewRect(0, 1, 20, 10))
	if input != buffer.NewRect(0, 1, 20, InputHeight) {
		t.Errorf("input = %+v", input)
	}
	if rest != buffer.NewRect(0, 4, 20, 7) {
		t.Errorf("rest = %+v", rest)
	}

	input, rest = SplitInput(buffer.NewRect(0, 0, 20, 2))
	if input.Height != 2 || rest.Height != 0 {
		t.Errorf("small area split = %+v / %+v", input, rest)
	}
}
