package codec

import (
	"reflect"

	"github.com/pgclient/pgclient-go/wire"
)

var stringType = reflect.TypeOf("")

// StringCodec passes the text of character columns through as Go strings.
type StringCodec struct {
	alloc wire.Allocator
}

// NewStringCodec returns a codec that takes parameter buffers from alloc.
func NewStringCodec(alloc wire.Allocator) (*StringCodec, error) {
	if alloc == nil {
		return nil, notNull("allocator")
	}
	return &StringCodec{alloc: alloc}, nil
}

// CanDecode is true for the character types in text format.
func (c *StringCodec) CanDecode(typ OID, format wire.Format) (bool, error) {
	if typ == Unspecified {
		return false, notNull("type")
	}
	return format == wire.TextFormat && isTextual(typ), nil
}

// CanEncode accepts string and *string.
func (c *StringCodec) CanEncode(value any) bool {
	switch value.(type) {
	case string, *string:
		return true
	}
	return false
}

// Decode returns the text of buf, or nil for SQL NULL.
func (c *StringCodec) Decode(buf *wire.Buffer, typ OID, format wire.Format, target reflect.Type) (any, error) {
	if buf == nil || buf == wire.NullValue {
		return nil, nil
	}
	return buf.ReadString(), nil
}

// Encode renders a string as a VARCHAR text parameter.
func (c *StringCodec) Encode(value any) (wire.Parameter, error) {
	switch v := value.(type) {
	case nil:
		return wire.Parameter{}, notNull("value")
	case string:
		return c.encode(v)
	case *string:
		if v == nil {
			return wire.Parameter{}, notNull("value")
		}
		return c.encode(*v)
	}
	return wire.Parameter{}, unsupported(value)
}

func (c *StringCodec) encode(s string) (wire.Parameter, error) {
	b := c.alloc.Buffer()
	if _, err := b.WriteString(s); err != nil {
		c.alloc.Release(b)
		return wire.Parameter{}, err
	}
	return wire.NewParameter(wire.TextFormat, uint32(VARCHAR), b), nil
}

// EncodeNull announces VARCHAR like MonthDayCodec.EncodeNull.
func (c *StringCodec) EncodeNull() wire.Parameter {
	return wire.NewParameter(wire.TextFormat, uint32(VARCHAR), wire.NullValue)
}

// Types returns string.
func (c *StringCodec) Types() []reflect.Type {
	return []reflect.Type{stringType}
}
