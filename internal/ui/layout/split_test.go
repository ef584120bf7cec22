package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sum(v []int) int {
	s := 0
	for _, x := range v {
		s += x
	}
	return s
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name        string
		width       int
		constraints []Constraint
		want        []int
	}{
		{
			name:        "lengths exactly",
			width:       10,
			constraints: []Constraint{Length(3), Length(4)},
			want:        []int{3, 4},
		},
		{
			name:        "lengths truncated when space runs out",
			width:       5,
			constraints: []Constraint{Length(3), Length(4), Length(2)},
			want:        []int{3, 2, 0},
		},
		{
			name:        "percentages of remaining space",
			width:       100,
			constraints: []Constraint{Percentage(50), Percentage(50)},
			want:        []int{50, 50},
		},
		{
			name:        "percentages share what lengths leave",
			width:       30,
			constraints: []Constraint{Length(10), Percentage(50), Percentage(50)},
			want:        []int{10, 10, 10},
		},
		{
			name:        "largest remainder gets the rounding cell",
			width:       10,
			constraints: []Constraint{Percentage(33), Percentage(67)},
			want:        []int{3, 7},
		},
		{
			name:        "percentages under 100 leave space unused",
			width:       20,
			constraints: []Constraint{Percentage(25), Percentage(25)},
			want:        []int{5, 5},
		},
		{
			name:        "zero width",
			width:       0,
			constraints: []Constraint{Length(2), Percentage(100)},
			want:        []int{0, 0},
		},
		{
			name:        "negative width",
			width:       -4,
			constraints: []Constraint{Percentage(100)},
			want:        []int{0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Split(tt.width, tt.constraints))
		})
	}
}

func TestColumnWidths_PercentagesWithGutter(t *testing.T) {
	widths := ColumnWidths(100, []Constraint{Percentage(50), Percentage(30), Percentage(20)}, 2, 1)
	require.Len(t, widths, 3)
	assert.Equal(t, []int{48, 29, 19}, widths)
	assert.LessOrEqual(t, sum(widths), 98)
}

func TestColumnWidths_NoGutter(t *testing.T) {
	widths := ColumnWidths(21, []Constraint{Length(5), Percentage(100)}, 0, 1)
	assert.Equal(t, []int{5, 15}, widths)
}

func TestColumnWidths_Empty(t *testing.T) {
	assert.Empty(t, ColumnWidths(80, nil, 2, 1))
}

func TestColumnWidths_NeverExceedsWidth(t *testing.T) {
	sets := [][]Constraint{
		{Percentage(100)},
		{Percentage(70), Percentage(15), Percentage(15)},
		{Percentage(33), Percentage(33), Percentage(34)},
		{Percentage(10), Percentage(20), Percentage(30), Percentage(40)},
		{Percentage(1), Percentage(1)},
		{Length(7), Percentage(60), Percentage(40)},
	}
	for _, set := range sets {
		for width := 0; width <= 120; width++ {
			for _, gutter := range []int{0, 2} {
				for _, spacing := range []int{0, 1, 3} {
					overhead := gutter + spacing*(len(set)-1)
					fixed := 0
					for _, c := range set {
						if !c.IsPercentage() {
							fixed += c.Value()
						}
					}
					widths := ColumnWidths(width, set, gutter, spacing)
					for _, w := range widths {
						if w < 0 {
							t.Fatalf("negative width in %v", widths)
						}
					}
					if width >= overhead+fixed && sum(widths)+overhead > width {
						t.Fatalf("set=%v width=%d gutter=%d spacing=%d: used %d",
							set, width, gutter, spacing, sum(widths)+overhead)
					}
					if sum(widths) > width {
						t.Fatalf("set=%v width=%d: data columns alone use %d", set, width, sum(widths))
					}
				}
			}
		}
	}
}

func TestSplit_NeverExceedsWidth(t *testing.T) {
	slots := []Constraint{Length(2), Percentage(40), Length(1), Percentage(60), Length(9)}
	for width := -2; width <= 60; width++ {
		got := Split(width, slots)
		assert.LessOrEqual(t, sum(got), max(width, 0), "width=%d", width)
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate([]Constraint{Percentage(0), Percentage(100), Length(0)}))

	err := Validate([]Constraint{Percentage(50), Percentage(101)})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConstraint)
	assert.Contains(t, err.Error(), "column 1")

	assert.ErrorIs(t, Validate([]Constraint{Percentage(-1)}), ErrInvalidConstraint)
	assert.ErrorIs(t, Validate([]Constraint{Length(-3)}), ErrInvalidConstraint)
}

func TestConstraintString(t *testing.T) {
	assert.Equal(t, "Percentage(40)", Percentage(40).String())
	assert.Equal(t, "Length(3)", Length(3).String())
	assert.True(t, Percentage(1).IsPercentage())
	assert.Equal(t, 3, Length(3).Value())
}
