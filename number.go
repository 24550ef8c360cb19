package scpi

import (
	"regexp"
	"strconv"
	"strings"
)

// Category-specific prefix patterns, compiled once and shared read-only.
// Every sub-part of the float pattern is optional, so it matches the empty
// string; the parse step rejects that case.
var (
	unsignedPattern = regexp.MustCompile(`^\d+`)
	signedPattern   = regexp.MustCompile(`^[+-]?\d+`)
	floatPattern    = regexp.MustCompile(`^[+-]?(?:\d+)?(?:\.\d+)?(?:[eE][+-]?\d+)?`)
)

// numberParser pairs prefix recognition with native parsing for one numeric
// width. Each concrete width instantiates decodeNumber with its own parser
// rather than relying on a blanket implementation.
type numberParser[T any] struct {
	prefix *regexp.Regexp
	parse  func(string) (T, error)
}

// decodeNumber consumes the longest prefix of cur matching p.prefix and
// hands it to p.parse. The matched span stays consumed even when the parse
// fails; a zero-length match triggers a parse of the empty string, which
// fails rather than producing a default value.
func decodeNumber[T any](cur *Cursor, p numberParser[T], want string) (T, error) {
	var zero T
	span, err := cur.ReadExact(prefixLen(p.prefix, cur.Rest()))
	if err != nil {
		return zero, err
	}
	v, err := p.parse(span)
	if err != nil {
		return zero, newParseError(want, span, err)
	}
	return v, nil
}

var (
	uint8Parser  = numberParser[uint64]{unsignedPattern, func(s string) (uint64, error) { return strconv.ParseUint(s, 10, 8) }}
	uint16Parser = numberParser[uint64]{unsignedPattern, func(s string) (uint64, error) { return strconv.ParseUint(s, 10, 16) }}
	uint32Parser = numberParser[uint64]{unsignedPattern, func(s string) (uint64, error) { return strconv.ParseUint(s, 10, 32) }}
	uint64Parser = numberParser[uint64]{unsignedPattern, func(s string) (uint64, error) { return strconv.ParseUint(s, 10, 64) }}

	int8Parser  = numberParser[int64]{signedPattern, func(s string) (int64, error) { return strconv.ParseInt(s, 10, 8) }}
	int16Parser = numberParser[int64]{signedPattern, func(s string) (int64, error) { return strconv.ParseInt(s, 10, 16) }}
	int32Parser = numberParser[int64]{signedPattern, func(s string) (int64, error) { return strconv.ParseInt(s, 10, 32) }}
	int64Parser = numberParser[int64]{signedPattern, func(s string) (int64, error) { return strconv.ParseInt(s, 10, 64) }}

	float32Parser = numberParser[float64]{floatPattern, func(s string) (float64, error) { return strconv.ParseFloat(s, 32) }}
	float64Parser = numberParser[float64]{floatPattern, func(s string) (float64, error) { return strconv.ParseFloat(s, 64) }}
)

// Numeric message field types. Each width marshals in canonical decimal
// form and unmarshals via longest-prefix recognition followed by strconv.
// Floats render as the shortest round-trippable plain decimal, never
// scientific notation: 2e-8 marshals as "0.00000002".
type (
	Uint8   uint8
	Uint16  uint16
	Uint32  uint32
	Uint64  uint64
	Int8    int8
	Int16   int16
	Int32   int32
	Int64   int64
	Float32 float32
	Float64 float64
)

func (v Uint8) MarshalSCPI(out *strings.Builder) { out.WriteString(strconv.FormatUint(uint64(v), 10)) }

func (v Uint16) MarshalSCPI(out *strings.Builder) { out.WriteString(strconv.FormatUint(uint64(v), 10)) }

func (v Uint32) MarshalSCPI(out *strings.Builder) { out.WriteString(strconv.FormatUint(uint64(v), 10)) }

func (v Uint64) MarshalSCPI(out *strings.Builder) { out.WriteString(strconv.FormatUint(uint64(v), 10)) }

func (v Int8) MarshalSCPI(out *strings.Builder) { out.WriteString(strconv.FormatInt(int64(v), 10)) }

func (v Int16) MarshalSCPI(out *strings.Builder) { out.WriteString(strconv.FormatInt(int64(v), 10)) }

func (v Int32) MarshalSCPI(out *strings.Builder) { out.WriteString(strconv.FormatInt(int64(v), 10)) }

func (v Int64) MarshalSCPI(out *strings.Builder) { out.WriteString(strconv.FormatInt(int64(v), 10)) }

func (v Float32) MarshalSCPI(out *strings.Builder) {
	out.WriteString(strconv.FormatFloat(float64(v), 'f', -1, 32))
}

func (v Float64) MarshalSCPI(out *strings.Builder) {
	out.WriteString(strconv.FormatFloat(float64(v), 'f', -1, 64))
}

func (v *Uint8) UnmarshalSCPI(cur *Cursor) error {
	u, err := decodeNumber(cur, uint8Parser, "uint8")
	if err != nil {
		return err
	}
	*v = Uint8(u)
	return nil
}

func (v *Uint16) UnmarshalSCPI(cur *Cursor) error {
	u, err := decodeNumber(cur, uint16Parser, "uint16")
	if err != nil {
		return err
	}
	*v = Uint16(u)
	return nil
}

func (v *Uint32) UnmarshalSCPI(cur *Cursor) error {
	u, err := decodeNumber(cur, uint32Parser, "uint32")
	if err != nil {
		return err
	}
	*v = Uint32(u)
	return nil
}

func (v *Uint64) UnmarshalSCPI(cur *Cursor) error {
	u, err := decodeNumber(cur, uint64Parser, "uint64")
	if err != nil {
		return err
	}
	*v = Uint64(u)
	return nil
}

func (v *Int8) UnmarshalSCPI(cur *Cursor) error {
	i, err := decodeNumber(cur, int8Parser, "int8")
	if err != nil {
		return err
	}
	*v = Int8(i)
	return nil
}

func (v *Int16) UnmarshalSCPI(cur *Cursor) error {
	i, err := decodeNumber(cur, int16Parser, "int16")
	if err != nil {
		return err
	}
	*v = Int16(i)
	return nil
}

func (v *Int32) UnmarshalSCPI(cur *Cursor) error {
	i, err := decodeNumber(cur, int32Parser, "int32")
	if err != nil {
		return err
	}
	*v = Int32(i)
	return nil
}

func (v *Int64) UnmarshalSCPI(cur *Cursor) error {
	i, err := decodeNumber(cur, int64Parser, "int64")
	if err != nil {
		return err
	}
	*v = Int64(i)
	return nil
}

func (v *Float32) UnmarshalSCPI(cur *Cursor) error {
	f, err := decodeNumber(cur, float32Parser, "float32")
	if err != nil {
		return err
	}
	*v = Float32(f)
	return nil
}

func (v *Float64) UnmarshalSCPI(cur *Cursor) error {
	f, err := decodeNumber(cur, float64Parser, "float64")
	if err != nil {
		return err
	}
	*v = Float64(f)
	return nil
}
