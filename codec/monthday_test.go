package codec

import (
	"errors"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/kr/pretty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pgclient/pgclient-go/monthday"
	"github.com/pgclient/pgclient-go/wire"
)

// param is a comparable snapshot of a wire.Parameter.
type param struct {
	Format wire.Format
	Type   uint32
	Null   bool
	Value  string
}

func snapshot(p wire.Parameter) param {
	s := param{Format: p.Format, Type: p.Type, Null: p.IsNull()}
	if !s.Null && p.Value != nil {
		s.Value = string(p.Value.Bytes())
	}
	return s
}

func assertParameter(t *testing.T, want param, got wire.Parameter) {
	t.Helper()
	if diff := pretty.Diff(want, snapshot(got)); len(diff) > 0 {
		t.Errorf("parameter mismatch:\n%s", pretty.Sprint(diff))
	}
}

func newMonthDayCodec(t *testing.T) *MonthDayCodec {
	t.Helper()
	c, err := NewMonthDayCodec(wire.NewPoolAllocator())
	require.NoError(t, err)
	return c
}

func TestNewMonthDayCodec_NoAllocator(t *testing.T) {
	t.Parallel()

	c, err := NewMonthDayCodec(nil)
	assert.Nil(t, c)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	assert.EqualError(t, err, "allocator must not be null")
}

func TestMonthDayCodec_Decode(t *testing.T) {
	t.Parallel()

	m := monthday.Now()
	buf := wire.NewBufferString(m.String())

	v, err := newMonthDayCodec(t).Decode(buf, VARCHAR, wire.TextFormat, monthDayType)
	require.NoError(t, err)
	assert.Equal(t, m, v)
}

func TestMonthDayCodec_DecodeJunkString(t *testing.T) {
	t.Parallel()

	buf := wire.NewBufferString("hello world")

	v, err := newMonthDayCodec(t).Decode(buf, VARCHAR, wire.TextFormat, monthDayType)
	assert.Nil(t, v)

	var perr *monthday.ParseError
	require.True(t, errors.As(err, &perr), "expected *monthday.ParseError got %T", err)
	assert.Equal(t, "hello world", perr.Text)
	assert.Equal(t, 0, perr.Pos)
}

func TestMonthDayCodec_DecodeImpossibleDay(t *testing.T) {
	t.Parallel()

	_, err := newMonthDayCodec(t).Decode(wire.NewBufferString("--02-30"), TEXT, wire.TextFormat, monthDayType)
	assert.True(t, errors.Is(err, monthday.ErrOutOfRange))
}

func TestMonthDayCodec_DecodeNoBuffer(t *testing.T) {
	t.Parallel()

	v, err := newMonthDayCodec(t).Decode(nil, VARCHAR, wire.TextFormat, monthDayType)
	assert.NoError(t, err)
	assert.Nil(t, v)
}

func TestMonthDayCodec_CanDecode(t *testing.T) {
	t.Parallel()

	c := newMonthDayCodec(t)
	for _, typ := range []OID{VARCHAR, CHAR, BPCHAR, NAME, TEXT} {
		ok, err := c.CanDecode(typ, wire.TextFormat)
		require.NoError(t, err)
		assert.True(t, ok, "text %s", typ)

		ok, err = c.CanDecode(typ, wire.BinaryFormat)
		require.NoError(t, err)
		assert.False(t, ok, "binary %s", typ)
	}

	// int4
	ok, err := c.CanDecode(OID(23), wire.TextFormat)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMonthDayCodec_CanDecodeNoType(t *testing.T) {
	t.Parallel()

	_, err := newMonthDayCodec(t).CanDecode(Unspecified, wire.TextFormat)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	assert.EqualError(t, err, "type must not be null")
}

func TestMonthDayCodec_EncodeMonthDayNoValue(t *testing.T) {
	t.Parallel()

	_, err := newMonthDayCodec(t).EncodeMonthDay(nil)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	assert.EqualError(t, err, "value must not be null")
}

func TestMonthDayCodec_EncodeNoValue(t *testing.T) {
	t.Parallel()

	c := newMonthDayCodec(t)

	_, err := c.Encode(nil)
	assert.EqualError(t, err, "value must not be null")

	var m *monthday.MonthDay
	_, err = c.Encode(m)
	assert.EqualError(t, err, "value must not be null")
}

func TestMonthDayCodec_EncodeUnsupported(t *testing.T) {
	t.Parallel()

	c := newMonthDayCodec(t)
	assert.False(t, c.CanEncode(42))

	_, err := c.Encode(42)
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	_, err = c.Encode(monthday.MonthDay{})
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestMonthDayCodec_Encode(t *testing.T) {
	t.Parallel()

	c := newMonthDayCodec(t)
	m := monthday.MustOf(time.March, 7)

	p, err := c.Encode(m)
	require.NoError(t, err)
	assertParameter(t, param{Format: wire.TextFormat, Type: uint32(VARCHAR), Value: "--03-07"}, p)

	p, err = c.Encode(&m)
	require.NoError(t, err)
	assertParameter(t, param{Format: wire.TextFormat, Type: uint32(VARCHAR), Value: "--03-07"}, p)

	p, err = c.Encode(monthday.NullMonthDay{MonthDay: m, Valid: true})
	require.NoError(t, err)
	assertParameter(t, param{Format: wire.TextFormat, Type: uint32(VARCHAR), Value: "--03-07"}, p)

	p, err = c.Encode(monthday.NullMonthDay{})
	require.NoError(t, err)
	assert.True(t, p.IsNull())
}

func TestMonthDayCodec_EncodeNull(t *testing.T) {
	t.Parallel()

	c := newMonthDayCodec(t)
	want := param{Format: wire.TextFormat, Type: uint32(VARCHAR), Null: true}
	assertParameter(t, want, c.EncodeNull())

	_, err := c.Encode(monthday.MustOf(time.December, 31))
	require.NoError(t, err)
	p := c.EncodeNull()
	assertParameter(t, want, p)
	assert.True(t, p.Value == wire.NullValue)
}

func TestMonthDayCodec_RoundTrip(t *testing.T) {
	t.Parallel()

	c := newMonthDayCodec(t)
	for month := time.January; month <= time.December; month++ {
		for day := 1; ; day++ {
			m, err := monthday.Of(month, day)
			if err != nil {
				break
			}
			p, err := c.Encode(m)
			require.NoError(t, err)

			v, err := c.Decode(p.Value, VARCHAR, wire.TextFormat, monthDayType)
			require.NoError(t, err)
			if v != m {
				t.Errorf("expected %v got %v", m, v)
			}
		}
	}
}

func TestMonthDayCodec_Concurrent(t *testing.T) {
	t.Parallel()

	c := newMonthDayCodec(t)
	var wg sync.WaitGroup
	errs := make(chan error, 12)
	for month := time.January; month <= time.December; month++ {
		wg.Add(1)
		go func(month time.Month) {
			defer wg.Done()
			m := monthday.MustOf(month, 1)
			p, err := c.Encode(m)
			if err != nil {
				errs <- err
				return
			}
			v, err := c.Decode(wire.NewBuffer(p.Value.Bytes()), TEXT, wire.TextFormat, reflect.TypeOf(m))
			if err != nil {
				errs <- err
				return
			}
			if v != m {
				errs <- errors.New("round trip mismatch for " + m.String())
			}
		}(month)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}

func TestMonthDayCodec_DecodeNullValue(t *testing.T) {
	t.Parallel()

	c := newMonthDayCodec(t)

	v, err := c.Decode(c.EncodeNull().Value, VARCHAR, wire.TextFormat, monthDayType)
	assert.NoError(t, err)
	assert.Nil(t, v)
	assert.True(t, c.EncodeNull().IsNull())

	v, err = c.Decode(wire.NullValue, VARCHAR, wire.TextFormat, nullMonthDayType)
	assert.NoError(t, err)
	assert.Equal(t, monthday.NullMonthDay{}, v)
}
