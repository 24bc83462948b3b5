package codec

import (
	"fmt"
	"reflect"

	"github.com/pgclient/pgclient-go/wire"
)

// Registry selects a codec from a fixed set for each decode and encode
// request. It is immutable and safe for concurrent use.
type Registry struct {
	codecs []Codec
}

// NewRegistry returns a Registry holding every codec of this package, all
// sharing alloc.
func NewRegistry(alloc wire.Allocator) (*Registry, error) {
	md, err := NewMonthDayCodec(alloc)
	if err != nil {
		return nil, err
	}
	s, err := NewStringCodec(alloc)
	if err != nil {
		return nil, err
	}
	return &Registry{codecs: []Codec{md, s}}, nil
}

// Decode converts buf with the first codec producing target that accepts
// typ and format.
func (r *Registry) Decode(buf *wire.Buffer, typ OID, format wire.Format, target reflect.Type) (any, error) {
	target = baseType(target)
	c, err := r.decoderFor(typ, format, target)
	if err != nil {
		return nil, err
	}
	return c.Decode(buf, typ, format, target)
}

func (r *Registry) decoderFor(typ OID, format wire.Format, target reflect.Type) (Codec, error) {
	for _, c := range r.codecs {
		if !handles(c, target) {
			continue
		}
		ok, err := c.CanDecode(typ, format)
		if err != nil {
			return nil, err
		}
		if ok {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w: decode %s (%s) into %v", ErrNoCodec, typ, format, target)
}

// Encode dispatches a present value to the codec that accepts it, and an
// absent one to the null encoding of the codec for its target type.
func (r *Registry) Encode(v Value) (wire.Parameter, error) {
	switch v.tag {
	case present:
		if v.v == nil {
			return wire.Parameter{}, notNull("value")
		}
		for _, c := range r.codecs {
			if c.CanEncode(v.v) {
				return c.Encode(v.v)
			}
		}
		return wire.Parameter{}, fmt.Errorf("%w: encode %T", ErrNoCodec, v.v)
	case absent:
		for _, c := range r.codecs {
			if handles(c, baseType(v.target)) {
				return c.EncodeNull(), nil
			}
		}
		return wire.Parameter{}, fmt.Errorf("%w: encode null %v", ErrNoCodec, v.target)
	}
	return wire.Parameter{}, notNull("value")
}

// EncodeAll encodes each value in order.
func (r *Registry) EncodeAll(values ...Value) ([]wire.Parameter, error) {
	params := make([]wire.Parameter, 0, len(values))
	for i, v := range values {
		p, err := r.Encode(v)
		if err != nil {
			return nil, fmt.Errorf("parameter %d: %w", i+1, err)
		}
		params = append(params, p)
	}
	return params, nil
}

// baseType strips one level of pointer so *T selects the codec for T.
func baseType(t reflect.Type) reflect.Type {
	if t != nil && t.Kind() == reflect.Ptr {
		return t.Elem()
	}
	return t
}

func handles(c Codec, t reflect.Type) bool {
	for _, ct := range c.Types() {
		if ct == t {
			return true
		}
	}
	return false
}
