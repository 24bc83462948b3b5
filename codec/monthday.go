package codec

import (
	"fmt"
	"reflect"

	"github.com/pgclient/pgclient-go/monthday"
	"github.com/pgclient/pgclient-go/wire"
)

var (
	monthDayType     = reflect.TypeOf(monthday.MonthDay{})
	nullMonthDayType = reflect.TypeOf(monthday.NullMonthDay{})
)

// MonthDayCodec converts monthday.MonthDay values to and from the --MM-DD
// text form of the character types. Only the text format is supported.
type MonthDayCodec struct {
	alloc wire.Allocator
}

// NewMonthDayCodec returns a codec that takes parameter buffers from alloc.
func NewMonthDayCodec(alloc wire.Allocator) (*MonthDayCodec, error) {
	if alloc == nil {
		return nil, notNull("allocator")
	}
	return &MonthDayCodec{alloc: alloc}, nil
}

// CanDecode is true for the character types in text format.
func (c *MonthDayCodec) CanDecode(typ OID, format wire.Format) (bool, error) {
	if typ == Unspecified {
		return false, notNull("type")
	}
	return format == wire.TextFormat && isTextual(typ), nil
}

// CanEncode accepts MonthDay, *MonthDay and NullMonthDay.
func (c *MonthDayCodec) CanEncode(value any) bool {
	switch value.(type) {
	case monthday.MonthDay, *monthday.MonthDay, monthday.NullMonthDay:
		return true
	}
	return false
}

// Decode parses buf as --MM-DD. typ and format are not checked; callers gate
// on CanDecode first. A NullMonthDay target yields a NullMonthDay, any other
// target a MonthDay, or nil for SQL NULL. A malformed value returns the
// *monthday.ParseError unchanged.
func (c *MonthDayCodec) Decode(buf *wire.Buffer, typ OID, format wire.Format, target reflect.Type) (any, error) {
	if buf == nil || buf == wire.NullValue {
		if target == nullMonthDayType {
			return monthday.NullMonthDay{}, nil
		}
		return nil, nil
	}
	m, err := monthday.Parse(buf.ReadString())
	if err != nil {
		return nil, err
	}
	if target == nullMonthDayType {
		return monthday.NullMonthDay{MonthDay: m, Valid: true}, nil
	}
	return m, nil
}

// Encode accepts the types listed by CanEncode. A NullMonthDay that is not
// valid encodes as null.
func (c *MonthDayCodec) Encode(value any) (wire.Parameter, error) {
	switch v := value.(type) {
	case nil:
		return wire.Parameter{}, notNull("value")
	case monthday.MonthDay:
		return c.EncodeMonthDay(&v)
	case *monthday.MonthDay:
		return c.EncodeMonthDay(v)
	case monthday.NullMonthDay:
		if !v.Valid {
			return c.EncodeNull(), nil
		}
		return c.EncodeMonthDay(&v.MonthDay)
	}
	return wire.Parameter{}, unsupported(value)
}

// EncodeMonthDay renders value as a VARCHAR text parameter.
func (c *MonthDayCodec) EncodeMonthDay(value *monthday.MonthDay) (wire.Parameter, error) {
	if value == nil {
		return wire.Parameter{}, notNull("value")
	}
	if value.IsZero() {
		return wire.Parameter{}, fmt.Errorf("%w: zero month-day", ErrInvalidArgument)
	}
	b := c.alloc.Buffer()
	if _, err := b.WriteString(value.String()); err != nil {
		c.alloc.Release(b)
		return wire.Parameter{}, err
	}
	return wire.NewParameter(wire.TextFormat, uint32(VARCHAR), b), nil
}

// EncodeNull always announces VARCHAR, whatever the target column type is.
func (c *MonthDayCodec) EncodeNull() wire.Parameter {
	return wire.NewParameter(wire.TextFormat, uint32(VARCHAR), wire.NullValue)
}

// Types returns MonthDay and NullMonthDay.
func (c *MonthDayCodec) Types() []reflect.Type {
	return []reflect.Type{monthDayType, nullMonthDayType}
}
