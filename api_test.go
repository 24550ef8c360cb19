package scpi_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/zoobzio/scpi"
)

// freqQuery and hzReading exercise the contracts from outside the package.
type freqQuery struct {
	Channel scpi.Uint8
}

func (q freqQuery) MarshalSCPI(out *strings.Builder) {
	out.WriteString("FREQ? CH")
	q.Channel.MarshalSCPI(out)
}

func (freqQuery) Response() hzReading { return hzReading{} }

type hzReading struct {
	Hertz scpi.Float64
}

func (r *hzReading) UnmarshalSCPI(cur *scpi.Cursor) error {
	if err := r.Hertz.UnmarshalSCPI(cur); err != nil {
		return err
	}
	return cur.MatchLiteral(" Hz")
}

type resetCmd struct{}

func (resetCmd) MarshalSCPI(out *strings.Builder) { out.WriteString("*RST") }

func (resetCmd) Response() scpi.NoResponse { return scpi.NoResponse{} }

// Compile-time contract checks.
var (
	_ scpi.Request[hzReading]       = freqQuery{}
	_ scpi.Request[scpi.NoResponse] = resetCmd{}
	_ scpi.Unmarshaler              = (*hzReading)(nil)
	_ scpi.Marshaler                = scpi.Option[scpi.Uint8]{}
)

func TestMarshal(t *testing.T) {
	if got := scpi.Marshal(freqQuery{Channel: 2}); got != "FREQ? CH2" {
		t.Errorf("Marshal() = %q, want %q", got, "FREQ? CH2")
	}
	if got := scpi.Marshal(resetCmd{}); got != "*RST" {
		t.Errorf("Marshal() = %q, want %q", got, "*RST")
	}
}

func TestUnmarshal(t *testing.T) {
	got, err := scpi.Unmarshal[hzReading]("50.5 Hz")
	if err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if got.Hertz != 50.5 {
		t.Errorf("Hertz = %v, want 50.5", got.Hertz)
	}
}

func TestUnmarshal_Trailing(t *testing.T) {
	got, err := scpi.Unmarshal[hzReading]("50.5 Hzjunk")
	if err == nil {
		t.Fatal("Unmarshal() with trailing input should fail")
	}
	if !errors.Is(err, scpi.ErrTrailing) {
		t.Errorf("error = %v, want ErrTrailing", err)
	}

	// The decoded prefix is still returned so the caller decides strictness.
	if got.Hertz != 50.5 {
		t.Errorf("Hertz = %v, want 50.5 alongside the error", got.Hertz)
	}

	var derr *scpi.DecodeError
	if !errors.As(err, &derr) {
		t.Fatalf("error %v should be a *DecodeError", err)
	}
	if derr.Input != "junk" {
		t.Errorf("DecodeError.Input = %q, want %q", derr.Input, "junk")
	}
}

func TestUnmarshal_MalformedBody(t *testing.T) {
	_, err := scpi.Unmarshal[hzReading]("fifty Hz")
	if !errors.Is(err, scpi.ErrDecode) {
		t.Errorf("error = %v, want ErrDecode", err)
	}
}

func TestDecode_LeavesSuffix(t *testing.T) {
	cur := scpi.NewCursor("50.5 Hz;next")
	got, err := scpi.Decode[hzReading](cur)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if got.Hertz != 50.5 {
		t.Errorf("Hertz = %v, want 50.5", got.Hertz)
	}
	if cur.Rest() != ";next" {
		t.Errorf("Rest() = %q, want %q", cur.Rest(), ";next")
	}
}

func TestOption(t *testing.T) {
	some := scpi.Some(scpi.Uint8(7))
	if !some.IsSome() {
		t.Error("Some should report present")
	}
	if v, ok := some.Get(); !ok || v != 7 {
		t.Errorf("Get() = %v, %v; want 7, true", v, ok)
	}
	if got := scpi.Marshal(some); got != "7" {
		t.Errorf("Marshal(Some(7)) = %q, want %q", got, "7")
	}

	none := scpi.None[scpi.Uint8]()
	if none.IsSome() {
		t.Error("None should report absent")
	}
	if got := scpi.Marshal(none); got != "" {
		t.Errorf("Marshal(None) = %q, want empty", got)
	}
}
