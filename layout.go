package scpi

import "strings"

// Part is one serialization fragment of a composite record: either a fixed
// literal or a reference to a field of T.
type Part[T any] func(out *strings.Builder, v *T)

// Lit creates a fragment that always emits literal verbatim. Layouts insert
// no separators on their own; any needed separators belong in literals.
func Lit[T any](literal string) Part[T] {
	return func(out *strings.Builder, _ *T) {
		out.WriteString(literal)
	}
}

// Field creates a fragment that emits one field of the record. The accessor
// returns the field as a Marshaler; converting the field to a different
// marshalable representation happens in the accessor:
//
//	scpi.Field(func(r *SetVoltage) scpi.Marshaler { return scpi.Float32(r.Level) })
func Field[T any](get func(*T) Marshaler) Part[T] {
	return func(out *strings.Builder, v *T) {
		get(v).MarshalSCPI(out)
	}
}

// Layout serializes a composite record as the in-order concatenation of its
// declared parts. Layouts are read-only after construction and safe for
// concurrent use.
//
// Layouts are serialize-only. Arbitrary interleaving of literals and fields
// is not uniquely invertible, so record decoding is hand-written from the
// Cursor primitives in the matching order.
type Layout[T any] struct {
	parts []Part[T]
}

// NewLayout creates a layout from parts in serialization order.
func NewLayout[T any](parts ...Part[T]) *Layout[T] {
	return &Layout[T]{parts: parts}
}

// Append writes the record to out, each part in declared order.
func (l *Layout[T]) Append(out *strings.Builder, v *T) {
	for _, part := range l.parts {
		part(out, v)
	}
}

// Marshal renders the record to a freshly allocated string.
func (l *Layout[T]) Marshal(v *T) string {
	var out strings.Builder
	l.Append(&out, v)
	return out.String()
}
