package wire

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/jackc/pgx/v5/pgproto3"
)

// MaxParameters is the largest number of values a bind or data row message
// can carry; the count travels as an unsigned 16 bit integer.
const MaxParameters = math.MaxUint16

var errNilValue = errors.New("wire: parameter has no payload, use NullValue")

var epool = sync.Pool{
	New: func() interface{} {
		return &Encoder{buf: &bytes.Buffer{}}
	},
}

// Encoder writes frontend and backend messages carrying encoded values. This
// struct is reusable, you can call Reset method and start encoding new fresh
// values.
//
// To retrieve []byte of the encoded messages use Bytes method.
type Encoder struct {
	buf *bytes.Buffer
}

// NewEncoder returns a new Encoder instance
func NewEncoder() *Encoder {
	return epool.Get().(*Encoder)
}

func PutEncoder(e *Encoder) {
	e.Reset()
	epool.Put(e)
}

//Reset resets the underlying buffer. This will remove any messages that were
//encoded before.
//
//Call this to reuse the Encoder and avoid unnecessary allocations.
func (e *Encoder) Reset() {
	e.buf.Reset()
}

// Bytes returns the buffered encoded bytes
func (e *Encoder) Bytes() []byte {
	return e.buf.Bytes()
}

// Bind writes a bind message for statement into portal, carrying the format
// codes and values of params. Null parameters go out with a length of -1.
func (e *Encoder) Bind(portal, statement string, params []Parameter) error {
	if len(params) > MaxParameters {
		return fmt.Errorf("wire: %d parameters exceed the limit of %d", len(params), MaxParameters)
	}
	msg := &pgproto3.Bind{
		DestinationPortal:    portal,
		PreparedStatement:    statement,
		ParameterFormatCodes: make([]int16, len(params)),
		Parameters:           make([][]byte, len(params)),
	}
	for i, p := range params {
		if p.Value == nil {
			return errNilValue
		}
		msg.ParameterFormatCodes[i] = int16(p.Format)
		if !p.IsNull() {
			msg.Parameters[i] = payload(p.Value)
		}
	}
	return e.write(msg)
}

// DataRow writes a data row message. A nil column or NullValue is SQL NULL.
func (e *Encoder) DataRow(cols []*Buffer) error {
	if len(cols) > MaxParameters {
		return fmt.Errorf("wire: %d columns exceed the limit of %d", len(cols), MaxParameters)
	}
	msg := &pgproto3.DataRow{Values: make([][]byte, len(cols))}
	for i, c := range cols {
		if c != nil && c != NullValue {
			msg.Values[i] = payload(c)
		}
	}
	return e.write(msg)
}

type encodable interface {
	Encode(dst []byte) ([]byte, error)
}

func (e *Encoder) write(msg encodable) error {
	b, err := msg.Encode(nil)
	if err != nil {
		return err
	}
	_, err = e.buf.Write(b)
	return err
}

// payload returns the bytes of b, never nil, so an empty value is not taken
// for SQL NULL.
func payload(b *Buffer) []byte {
	v := b.Bytes()
	if v == nil {
		return []byte{}
	}
	return v
}

// Types returns the type OIDs of params in order, as announced in a parse
// message.
func Types(params []Parameter) []uint32 {
	oids := make([]uint32, len(params))
	for i, p := range params {
		oids[i] = p.Type
	}
	return oids
}
