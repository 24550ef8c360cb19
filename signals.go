package scpi

import (
	"context"
	"fmt"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for codec events.
var (
	SignalMarshal     = capitan.NewSignal("scpi.marshal", "Message rendered to protocol text")
	SignalUnmarshal   = capitan.NewSignal("scpi.unmarshal", "Protocol text decoded into a message")
	SignalLayoutBuilt = capitan.NewSignal("scpi.layout.built", "Derived layout compiled from struct tags")
)

// Keys for typed event data.
var (
	KeyTypeName = capitan.NewStringKey("type_name")
	KeySize     = capitan.NewIntKey("size")
	KeyDuration = capitan.NewDurationKey("duration")
	KeyError    = capitan.NewErrorKey("error")
)

// typeName names a message value for event data.
func typeName(v any) string {
	return fmt.Sprintf("%T", v)
}

// emitMarshal emits an event when a message is rendered.
func emitMarshal(ctx context.Context, typeName string, size int) {
	capitan.Emit(ctx, SignalMarshal,
		KeyTypeName.Field(typeName),
		KeySize.Field(size),
	)
}

// emitUnmarshal emits an event when a full-message decode finishes.
func emitUnmarshal(ctx context.Context, typeName string, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyTypeName.Field(typeName),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalUnmarshal, fields...)
	} else {
		capitan.Emit(ctx, SignalUnmarshal, fields...)
	}
}

// emitLayoutBuilt emits an event when a derived layout is compiled.
func emitLayoutBuilt(ctx context.Context, typeName string, err error) {
	fields := []capitan.Field{
		KeyTypeName.Field(typeName),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalLayoutBuilt, fields...)
	} else {
		capitan.Emit(ctx, SignalLayoutBuilt, fields...)
	}
}
