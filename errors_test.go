package scpi

import (
	"errors"
	"testing"
)

func TestDecodeError_Is(t *testing.T) {
	err := newDecodeError("literal \"VOLT\"", "CURR")

	if !errors.Is(err, ErrDecode) {
		t.Error("DecodeError should unwrap to ErrDecode")
	}
	if errors.Is(err, ErrTrailing) {
		t.Error("plain DecodeError should not match ErrTrailing")
	}
}

func TestTrailingError_Is(t *testing.T) {
	err := newTrailingError("leftover")

	if !errors.Is(err, ErrTrailing) {
		t.Error("trailing error should match ErrTrailing")
	}
	if !errors.Is(err, ErrDecode) {
		t.Error("trailing error should also match ErrDecode")
	}
}

func TestDecodeError_Message(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "expected and input",
			err:  newDecodeError("uint8", "abc"),
			want: `expected uint8 at "abc"`,
		},
		{
			name: "with parse cause",
			err:  newParseError("uint8", "300", errors.New("value out of range")),
			want: `expected uint8 at "300": value out of range`,
		},
		{
			name: "trailing",
			err:  newTrailingError("x"),
			want: `expected end of input at "x"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDecodeError_As(t *testing.T) {
	var derr *DecodeError
	err := newDecodeError("delimiter ','", "1234")
	if !errors.As(err, &derr) {
		t.Fatal("errors.As should extract *DecodeError")
	}
	if derr.Input != "1234" {
		t.Errorf("Input = %q, want %q", derr.Input, "1234")
	}
}
