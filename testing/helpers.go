// Package testing provides shared message fixtures for scpi tests: a small
// power-supply command set exercising the enum, layout, and request
// contracts the way a real instrument driver would.
package testing

import (
	"strings"

	"github.com/zoobzio/scpi"
)

// Compile-time contract checks for the fixture command set.
var (
	_ scpi.Request[scpi.NoResponse] = SetVoltage{}
	_ scpi.Request[VoltageReading]  = MeasureVoltage{}
	_ scpi.Request[Identity]        = Identify{}
)

// Coupling selects the input coupling of a measurement channel.
type Coupling int

const (
	CouplingAC Coupling = iota
	CouplingDC
	CouplingGround
)

// CouplingCodec maps Coupling values to their protocol tokens. No declared
// literal is a prefix of a later one, so declaration order is safe here.
var CouplingCodec = scpi.NewEnum("Coupling",
	scpi.V(CouplingAC, "AC"),
	scpi.V(CouplingDC, "DC"),
	scpi.V(CouplingGround, "GND"),
)

func (c Coupling) MarshalSCPI(out *strings.Builder) {
	CouplingCodec.Append(out, c)
}

func (c *Coupling) UnmarshalSCPI(cur *scpi.Cursor) error {
	v, err := CouplingCodec.Decode(cur)
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// SetVoltage sets the output level of one source channel.
// The instrument sends no reply.
type SetVoltage struct {
	Channel uint8
	Level   float32
}

var setVoltageLayout = scpi.NewLayout(
	scpi.Lit[SetVoltage]("SOUR"),
	scpi.Field(func(r *SetVoltage) scpi.Marshaler { return scpi.Uint8(r.Channel) }),
	scpi.Lit[SetVoltage](":VOLT "),
	scpi.Field(func(r *SetVoltage) scpi.Marshaler { return scpi.Float32(r.Level) }),
)

func (r SetVoltage) MarshalSCPI(out *strings.Builder) {
	setVoltageLayout.Append(out, &r)
}

// Response implements scpi.Request.
func (SetVoltage) Response() scpi.NoResponse { return scpi.NoResponse{} }

// MeasureVoltage queries the measured level of one channel.
// Its layout is derived from the scpi struct tag.
type MeasureVoltage struct {
	Channel scpi.Uint8 `scpi:"MEAS:VOLT? CH"`
}

var measureVoltageLayout = mustLayout(scpi.Auto[MeasureVoltage]())

func (r MeasureVoltage) MarshalSCPI(out *strings.Builder) {
	measureVoltageLayout.Append(out, &r)
}

// Response implements scpi.Request.
func (MeasureVoltage) Response() VoltageReading { return VoltageReading{} }

// VoltageReading is the reply to MeasureVoltage: "<volts>,<coupling>".
// Decoding composes the cursor primitives by hand in layout order.
type VoltageReading struct {
	Volts    scpi.Float32
	Coupling Coupling
}

func (r *VoltageReading) UnmarshalSCPI(cur *scpi.Cursor) error {
	if err := r.Volts.UnmarshalSCPI(cur); err != nil {
		return err
	}
	if err := cur.MatchLiteral(","); err != nil {
		return err
	}
	return r.Coupling.UnmarshalSCPI(cur)
}

// Identify asks the instrument for its identification string.
type Identify struct{}

func (Identify) MarshalSCPI(out *strings.Builder) {
	out.WriteString("*IDN?")
}

// Response implements scpi.Request.
func (Identify) Response() Identity { return Identity{} }

// Identity is the four-part *IDN? reply: vendor, model, serial, firmware.
type Identity struct {
	Vendor   string
	Model    string
	Serial   string
	Firmware string
}

func (id *Identity) UnmarshalSCPI(cur *scpi.Cursor) error {
	var err error
	if id.Vendor, err = cur.ReadUntil(','); err != nil {
		return err
	}
	if id.Model, err = cur.ReadUntil(','); err != nil {
		return err
	}
	if id.Serial, err = cur.ReadUntil(','); err != nil {
		return err
	}
	id.Firmware = cur.ReadAll()
	return nil
}

func mustLayout[T any](l *scpi.Layout[T], err error) *scpi.Layout[T] {
	if err != nil {
		panic(err)
	}
	return l
}
