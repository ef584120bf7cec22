// Package cond provides a two-valued condition used to keep small branches terse.
package cond

// Condition is the result of reducing a bool or an optional value to true/false.
type Condition bool

const (
	True  Condition = true
	False Condition = false
)

// Of converts a bool.
func Of(b bool) Condition {
	return Condition(b)
}

// Present is True when p is non-nil.
func Present[T any](p *T) Condition {
	return Condition(p != nil)
}

// OK is True when ok is set. It accepts the comma-ok pair returned by lookups
// such as Selected() so the value can be discarded inline.
func OK[T any](_ T, ok bool) Condition {
	return Condition(ok)
}

// Select returns a when c is True, b otherwise.
func Select[T any](c Condition, a, b T) T {
	if c {
		return a
	}
	return b
}

// If is Select for a plain bool.
func If[T any](b bool, yes, no T) T {
	return Select(Of(b), yes, no)
}
