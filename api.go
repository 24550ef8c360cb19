// Package scpi provides bidirectional text codecs for SCPI-style
// instrument-control protocols.
//
// The package offers a pair of capability contracts — Marshaler for
// rendering a value to protocol text and Unmarshaler for constructing a
// value from it — along with cursor-based parsing primitives, numeric and
// enumeration codecs, and declarative layout helpers for composite
// request/response records.
//
// # Contracts
//
// A protocol message type implements Marshaler, Unmarshaler, or both:
//
//	type Identify struct{}
//
//	func (Identify) MarshalSCPI(out *strings.Builder) {
//	    out.WriteString("*IDN?")
//	}
//
// Decoding walks a Cursor over the raw response text left to right:
//
//	type Reading struct {
//	    Volts scpi.Float32
//	}
//
//	func (r *Reading) UnmarshalSCPI(cur *scpi.Cursor) error {
//	    return r.Volts.UnmarshalSCPI(cur)
//	}
//
// # Requests and Responses
//
// Request[R] binds a request message to its expected response type at
// compile time. A transport driver serializes the request with Marshal and,
// unless R is NoResponse, decodes the reply with Unmarshal:
//
//	cmd := scpi.Marshal(req)          // → "MEAS:VOLT? CH1"
//	raw := transport.RoundTrip(cmd)   // caller-provided I/O
//	reading, err := scpi.Unmarshal[Reading](raw)
//
// Transport, sessions, and retry policy are outside this package; it
// guarantees correct text-level encode/decode only.
//
// # Declarative Codecs
//
// Enumerated token sets and composite records are declared once and gain
// both directions (records gain serialization; decoding composes the cursor
// primitives by hand):
//
//	var couplings = scpi.NewEnum("Coupling",
//	    scpi.V(CouplingAC, "AC"),
//	    scpi.V(CouplingDC, "DC"),
//	)
//
//	var setVolt = scpi.NewLayout(
//	    scpi.Lit[SetVoltage]("VOLT "),
//	    scpi.Field(func(r *SetVoltage) scpi.Marshaler { return r.Level }),
//	)
//
// Layouts can also be derived from scpi struct tags; see Auto.
package scpi

import (
	"context"
	"strings"
	"time"
)

// Marshaler renders a value as protocol text.
// Implementations append to the caller-owned builder and cannot fail.
type Marshaler interface {
	// MarshalSCPI appends the receiver's textual representation to out.
	MarshalSCPI(out *strings.Builder)
}

// Unmarshaler constructs a value from a prefix of the cursor's remaining
// input. Implementations use pointer receivers and fill the receiver in
// place.
type Unmarshaler interface {
	// UnmarshalSCPI consumes a prefix of cur or fails with the cursor
	// positioned per the cursor-primitive contracts.
	UnmarshalSCPI(cur *Cursor) error
}

// decodable constrains a pointer type to both *T and Unmarshaler, letting
// Decode and Unmarshal construct values without reflection.
type decodable[T any] interface {
	*T
	Unmarshaler
}

// Marshal renders m to a freshly allocated string.
func Marshal(m Marshaler) string {
	var out strings.Builder
	m.MarshalSCPI(&out)
	s := out.String()
	emitMarshal(context.Background(), typeName(m), len(s))
	return s
}

// Decode constructs a T from a prefix of cur. Input after the decoded
// prefix is left for the caller.
func Decode[T any, P decodable[T]](cur *Cursor) (T, error) {
	var v T
	if err := P(&v).UnmarshalSCPI(cur); err != nil {
		return v, err
	}
	return v, nil
}

// Unmarshal decodes a complete message from input. Leftover text after the
// decode is reported as a DecodeError matching ErrTrailing; the partially
// decoded value is returned alongside it so callers can decide how strict
// to be.
func Unmarshal[T any, P decodable[T]](input string) (T, error) {
	start := time.Now()
	cur := NewCursor(input)
	v, err := Decode[T, P](cur)
	if err == nil {
		err = cur.CheckEmpty()
	}
	emitUnmarshal(context.Background(), typeName(v), len(input), time.Since(start), err)
	return v, err
}

// Request binds a request message to its expected response type R.
//
// The binding is compile-time only: Response is never called for its
// result, and implementations return the zero value. Requests whose
// protocol semantics produce no reply bind to NoResponse; a transport
// driver must not attempt to read a reply for those.
type Request[R any] interface {
	Marshaler

	// Response pins R at compile time. The returned value is meaningless.
	Response() R
}

// NoResponse marks requests for which no reply is ever read. It is
// intentionally not an Unmarshaler: an absent reply cannot be decoded.
type NoResponse struct{}

// Option wraps a marshalable value that may be absent. An absent Option
// marshals as nothing; a present one marshals as its inner value. Literal
// fragments around an optional field must account for the absent case.
type Option[T Marshaler] struct {
	value T
	ok    bool
}

// Some creates a present Option.
func Some[T Marshaler](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// None creates an absent Option.
func None[T Marshaler]() Option[T] {
	return Option[T]{}
}

// Get returns the inner value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// IsSome reports whether a value is present.
func (o Option[T]) IsSome() bool {
	return o.ok
}

// MarshalSCPI implements Marshaler.
func (o Option[T]) MarshalSCPI(out *strings.Builder) {
	if o.ok {
		o.value.MarshalSCPI(out)
	}
}
