package scpi

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/zoobzio/sentinel"
)

func init() {
	// Register the layout tag with sentinel
	sentinel.Tag("scpi")
}

var marshalerType = reflect.TypeOf((*Marshaler)(nil)).Elem()

// Auto derives a Layout for struct type T from its scpi struct tags.
//
// Each exported field whose type implements Marshaler becomes a field
// fragment; a `scpi:"LIT"` tag emits LIT immediately before the field, and
// `scpi:"-"` excludes the field. Untagged fields that do not implement
// Marshaler are skipped; tagged ones error, since the tag declares intent
// the type cannot satisfy.
//
// Derived layouts are cached per type; repeated calls return the same
// Layout. Declarations a tag cannot express (trailing literals, converted
// fields) use NewLayout directly.
func Auto[T any]() (*Layout[T], error) {
	return layoutFor[T]()
}

// buildLayout scans T and compiles its tag declarations into parts.
func buildLayout[T any]() (*Layout[T], error) {
	rt := reflect.TypeFor[T]()
	if rt.Kind() != reflect.Struct {
		return nil, fmt.Errorf("scpi: cannot derive a layout for non-struct type %s", rt)
	}

	spec := sentinel.Scan[T]()

	var parts []Part[T]
	for _, field := range spec.Fields {
		tag, tagged := field.Tags["scpi"]
		if tag == "-" {
			continue
		}

		if !field.ReflectType.Implements(marshalerType) {
			if tagged {
				return nil, fmt.Errorf("%w: field %s of %s is tagged scpi:%q but %s does not implement Marshaler",
					ErrInvalidTag, field.Name, spec.TypeName, tag, field.Type)
			}
			continue
		}

		if tag != "" {
			parts = append(parts, Lit[T](tag))
		}

		index := field.Index
		parts = append(parts, func(out *strings.Builder, v *T) {
			fv := reflect.ValueOf(v).Elem().FieldByIndex(index)
			fv.Interface().(Marshaler).MarshalSCPI(out)
		})
	}

	return NewLayout(parts...), nil
}
