// Package codec converts between Go values and the server's wire
// representation of column values and bind parameters.
package codec

import (
	"reflect"

	"github.com/pgclient/pgclient-go/wire"
)

// Codec converts a family of Go types to and from the wire. Implementations carry no
// per-call state and are safe for concurrent use.
type Codec interface {
	// CanDecode reports whether values of typ sent in format can be decoded.
	CanDecode(typ OID, format wire.Format) (bool, error)

	// CanEncode reports whether value is of a Go type this codec encodes.
	CanEncode(value any) bool

	// Decode converts buf to a value of target, one of Types. A nil buf or
	// wire.NullValue is a SQL NULL.
	Decode(buf *wire.Buffer, typ OID, format wire.Format, target reflect.Type) (any, error)

	// Encode converts a present value into a bind parameter.
	Encode(value any) (wire.Parameter, error)

	// EncodeNull returns the parameter sent for an absent value.
	EncodeNull() wire.Parameter

	// Types lists the Go types the codec decodes into and stands for when a
	// value is absent.
	Types() []reflect.Type
}

// Value is a bind argument that is either present or absent. Build one with
// Present or Absent; the zero Value is neither and is rejected by the
// Registry.
type Value struct {
	v      any
	target reflect.Type
	tag    valueTag
}

type valueTag uint8

const (
	untagged valueTag = iota
	present
	absent
)

// Present wraps a value to be encoded.
func Present(v any) Value {
	return Value{v: v, target: reflect.TypeOf(v), tag: present}
}

// Absent is a SQL NULL for a parameter of the given Go type.
func Absent(target reflect.Type) Value {
	return Value{target: target, tag: absent}
}

// IsPresent reports whether v holds a value.
func (v Value) IsPresent() bool {
	return v.tag == present
}

// Get returns the held value, or nil when v is absent.
func (v Value) Get() any {
	return v.v
}
