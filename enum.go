package scpi

import (
	"fmt"
	"strings"
)

// Variant pairs one enum value with its protocol literal.
type Variant[T comparable] struct {
	Value   T
	Literal string
}

// V creates a Variant. It exists to keep NewEnum declarations compact.
func V[T comparable](value T, literal string) Variant[T] {
	return Variant[T]{Value: value, Literal: literal}
}

// Enum is a runtime codec for a closed, ordered set of protocol tokens.
// Declare it once per enum type and reuse it; an Enum is read-only after
// construction and safe for concurrent use.
//
// Decoding tries literals in declaration order and the first literal that
// prefix-matches the remaining input wins. The declarer must choose
// literals so that no earlier literal is a prefix of a later one intended
// for a different value; otherwise the earlier declaration silently
// shadows the later one during decode. This is not checked at runtime.
type Enum[T comparable] struct {
	name     string
	variants []Variant[T]
}

// NewEnum creates an enum codec. name appears in decode error messages.
func NewEnum[T comparable](name string, variants ...Variant[T]) *Enum[T] {
	return &Enum[T]{name: name, variants: variants}
}

// Name returns the declared enum name.
func (e *Enum[T]) Name() string {
	return e.name
}

// Decode consumes the first declared literal that prefix-matches the
// remaining input and returns its value. If no literal matches, it fails
// naming the enum, with the cursor unchanged.
func (e *Enum[T]) Decode(cur *Cursor) (T, error) {
	for _, v := range e.variants {
		if err := cur.MatchLiteral(v.Literal); err == nil {
			return v.Value, nil
		}
	}
	var zero T
	return zero, newDecodeError(e.name+" token", cur.Rest())
}

// Append writes the declared literal for v. Passing a value outside the
// declared set is a programming error and panics.
func (e *Enum[T]) Append(out *strings.Builder, v T) {
	lit, ok := e.Literal(v)
	if !ok {
		panic(fmt.Sprintf("scpi: value %v is not declared for enum %s", v, e.name))
	}
	out.WriteString(lit)
}

// Literal returns the declared literal for v and whether v is declared.
func (e *Enum[T]) Literal(v T) (string, bool) {
	for _, variant := range e.variants {
		if variant.Value == v {
			return variant.Literal, true
		}
	}
	return "", false
}
