package layout

import (
	"errors"
	"fmt"
)

// ErrInvalidConstraint is returned by Validate for out-of-range constraints.
var ErrInvalidConstraint = errors.New("invalid constraint")

type constraintKind int

const (
	kindLength constraintKind = iota
	kindPercentage
)

// Constraint describes how wide a column should be.
type Constraint struct {
	kind  constraintKind
	value int
}

// Length asks for exactly n cells.
func Length(n int) Constraint {
	return Constraint{kind: kindLength, value: n}
}

// Percentage asks for p percent of the space left after all lengths.
func Percentage(p int) Constraint {
	return Constraint{kind: kindPercentage, value: p}
}

// IsPercentage reports whether c is a Percentage constraint.
func (c Constraint) IsPercentage() bool {
	return c.kind == kindPercentage
}

// Value returns the cell count or percentage.
func (c Constraint) Value() int {
	return c.value
}

func (c Constraint) String() string {
	if c.kind == kindPercentage {
		return fmt.Sprintf("Percentage(%d)", c.value)
	}
	return fmt.Sprintf("Length(%d)", c.value)
}

// Validate checks that every percentage lies in [0,100] and no length is negative.
func Validate(constraints []Constraint) error {
	for i, c := range constraints {
		switch c.kind {
		case kindPercentage:
			if c.value < 0 || c.value > 100 {
				return fmt.Errorf("%w: column %d: percentage %d out of range [0,100]", ErrInvalidConstraint, i, c.value)
			}
		case kindLength:
			if c.value < 0 {
				return fmt.Errorf("%w: column %d: negative length %d", ErrInvalidConstraint, i, c.value)
			}
		}
	}
	return nil
}
